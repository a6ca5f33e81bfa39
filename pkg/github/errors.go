package github

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
)

// ErrorType classifies GitHub API failures.
type ErrorType string

const (
	ErrorTypeAuth       ErrorType = "authentication"
	ErrorTypePermission ErrorType = "permission"
	ErrorTypeNotFound   ErrorType = "not_found"
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeRateLimit  ErrorType = "rate_limit"
	ErrorTypeNetwork    ErrorType = "network"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// APIError is a structured error produced by GitHub operations.
type APIError struct {
	Type      ErrorType `json:"type"`
	Message   string    `json:"message"`
	Cause     error     `json:"-"`
	Resource  string    `json:"resource,omitempty"`
	Retryable bool      `json:"retryable"`
}

func (e *APIError) Error() string {
	if e.Resource != "" {
		return fmt.Sprintf("%s error for %s: %s", e.Type, e.Resource, e.Message)
	}
	return fmt.Sprintf("%s error: %s", e.Type, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// IsRetryable returns whether the error is worth retrying.
func (e *APIError) IsRetryable() bool {
	return e.Retryable
}

// WrapAPIError wraps a go-github error into an APIError, classifying it by
// status code so callers and the retry loop can act on it.
func WrapAPIError(err error, resource string) *APIError {
	if err == nil {
		return nil
	}

	if apiErr, ok := err.(*APIError); ok {
		if apiErr.Resource == "" {
			apiErr.Resource = resource
		}
		return apiErr
	}

	if ghErr, ok := err.(*github.ErrorResponse); ok {
		return classifyErrorResponse(ghErr, resource)
	}

	if rlErr, ok := err.(*github.RateLimitError); ok {
		return &APIError{
			Type:      ErrorTypeRateLimit,
			Message:   fmt.Sprintf("rate limit exceeded, resets at %v", rlErr.Rate.Reset.Time),
			Cause:     err,
			Resource:  resource,
			Retryable: true,
		}
	}

	if isNetworkError(err) {
		return &APIError{
			Type:      ErrorTypeNetwork,
			Message:   "network error, check your connection and try again",
			Cause:     err,
			Resource:  resource,
			Retryable: true,
		}
	}

	return &APIError{
		Type:      ErrorTypeUnknown,
		Message:   err.Error(),
		Cause:     err,
		Resource:  resource,
		Retryable: false,
	}
}

func classifyErrorResponse(ghErr *github.ErrorResponse, resource string) *APIError {
	apiErr := &APIError{
		Resource: resource,
		Cause:    ghErr,
	}

	switch ghErr.Response.StatusCode {
	case http.StatusUnauthorized:
		apiErr.Type = ErrorTypeAuth
		apiErr.Message = "authentication failed, check SHUB_USERNAME and SHUB_TOKEN"

	case http.StatusForbidden:
		if strings.Contains(ghErr.Message, "rate limit") {
			apiErr.Type = ErrorTypeRateLimit
			apiErr.Message = "API rate limit exceeded, wait before retrying"
			apiErr.Retryable = true
		} else {
			apiErr.Type = ErrorTypePermission
			apiErr.Message = "insufficient permissions, the token may be missing the repo scope"
		}

	case http.StatusNotFound:
		apiErr.Type = ErrorTypeNotFound
		apiErr.Message = "not found, check the repository name and your access"

	case http.StatusUnprocessableEntity:
		apiErr.Type = ErrorTypeValidation
		apiErr.Message = "validation failed"
		if len(ghErr.Errors) > 0 {
			var details []string
			for _, e := range ghErr.Errors {
				if e.Field != "" {
					details = append(details, fmt.Sprintf("%s: %s", e.Field, e.Message))
				} else {
					details = append(details, e.Message)
				}
			}
			apiErr.Message = fmt.Sprintf("validation failed: %s", strings.Join(details, "; "))
		}

	case http.StatusInternalServerError, http.StatusBadGateway,
		http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		apiErr.Type = ErrorTypeNetwork
		apiErr.Message = "GitHub API is temporarily unavailable"
		apiErr.Retryable = true

	default:
		apiErr.Type = ErrorTypeUnknown
		apiErr.Message = ghErr.Message
		apiErr.Retryable = ghErr.Response.StatusCode >= 500
	}

	return apiErr
}

func isNetworkError(err error) bool {
	errStr := strings.ToLower(err.Error())
	keywords := []string{
		"connection refused",
		"connection reset",
		"network is unreachable",
		"no such host",
		"timeout",
		"dial tcp",
	}

	for _, keyword := range keywords {
		if strings.Contains(errStr, keyword) {
			return true
		}
	}
	return false
}

// RetryConfig controls the retry loop around API calls.
type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
}

// DefaultRetryConfig returns the retry policy used by the client.
func DefaultRetryConfig() *RetryConfig {
	return &RetryConfig{
		MaxRetries:    3,
		InitialDelay:  time.Second,
		MaxDelay:      30 * time.Second,
		BackoffFactor: 2.0,
	}
}

// WithRetry executes an operation, retrying retryable APIErrors with
// exponential backoff. Rate limit errors wait until the reported reset
// when it is near.
func WithRetry(operation func() error, config *RetryConfig) error {
	if config == nil {
		config = DefaultRetryConfig()
	}

	var lastErr error
	delay := config.InitialDelay

	for attempt := 0; attempt <= config.MaxRetries; attempt++ {
		if attempt > 0 {
			time.Sleep(delay)

			delay = time.Duration(float64(delay) * config.BackoffFactor)
			if delay > config.MaxDelay {
				delay = config.MaxDelay
			}
		}

		err := operation()
		if err == nil {
			return nil
		}
		lastErr = err

		apiErr, ok := err.(*APIError)
		if !ok || !apiErr.IsRetryable() {
			return err
		}

		if apiErr.Type == ErrorTypeRateLimit {
			if rlErr, ok := apiErr.Cause.(*github.RateLimitError); ok {
				wait := time.Until(rlErr.Rate.Reset.Time)
				if wait > 0 && wait < 5*time.Minute {
					time.Sleep(wait)
					continue
				}
			}
		}
	}

	return fmt.Errorf("operation failed after %d retries: %w", config.MaxRetries, lastErr)
}

// ValidationError reports an invalid settings file or argument.
type ValidationError struct {
	Field   string `json:"field"`
	Value   string `json:"value,omitempty"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("validation error for %s (value: %s): %s", e.Field, e.Value, e.Message)
	}
	return fmt.Sprintf("validation error for %s: %s", e.Field, e.Message)
}

// PartialFailureError reports a multi-repository operation where some
// repositories succeeded and others failed.
type PartialFailureError struct {
	Succeeded []string
	Failed    map[string]error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("partial failure: %d succeeded, %d failed", len(e.Succeeded), len(e.Failed))
}

// FailedRepositories returns the repositories that failed, for reporting.
func (e *PartialFailureError) FailedRepositories() []string {
	repos := make([]string, 0, len(e.Failed))
	for repo := range e.Failed {
		repos = append(repos, repo)
	}
	return repos
}
