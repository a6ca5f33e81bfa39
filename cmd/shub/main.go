package main

import (
	"shub/internal/cmd"
)

func main() {
	cmd.Execute()
}
