package render

import (
	"fmt"
	"time"
)

// Since renders how long ago t was, in the coarse buckets the listings use.
func Since(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return SinceDuration(time.Since(t))
}

// SinceDuration renders a duration as relative time.
func SinceDuration(d time.Duration) string {
	days := int(d.Hours() / 24)

	switch {
	case days < 1:
		hours := int(d.Hours())
		if hours < 1 {
			minutes := int(d.Minutes())
			if minutes < 1 {
				return "just now"
			}
			return fmt.Sprintf("%d minutes ago", minutes)
		}
		return fmt.Sprintf("%d hours ago", hours)
	case days < 7:
		return "this week"
	case days < 30:
		return "this month"
	case days < 365:
		return "this year"
	default:
		years := days / 365
		if years == 1 {
			return "1 year ago"
		}
		return fmt.Sprintf("%d years ago", years)
	}
}
