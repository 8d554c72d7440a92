package gemini

import (
	"fmt"
	"strings"
)

type ErrorCategory string

const (
	ErrorAuth    ErrorCategory = "auth"
	ErrorQuota   ErrorCategory = "quota"
	ErrorNetwork ErrorCategory = "network"
	ErrorSafety  ErrorCategory = "safety"
	ErrorUnknown ErrorCategory = "unknown"
)

// UserError carries a user-facing message for a failed remote call alongside
// the underlying error.
type UserError struct {
	Category ErrorCategory
	Message  string
	Op       string
	Err      error
}

func (e *UserError) Error() string { return e.Message }

func (e *UserError) Unwrap() error { return e.Err }

// Classify maps a remote-call failure to a user-facing message by
// case-insensitive substring matching on the failure text. Unrecognized
// failures fall back to a generic message naming the operation.
func Classify(op string, err error) *UserError {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "api key not valid"):
		return &UserError{
			Category: ErrorAuth,
			Message:  "Your API Key is invalid. Please check your key and try again.",
			Op:       op,
			Err:      err,
		}
	case strings.Contains(msg, "quota") || strings.Contains(msg, "429"):
		return &UserError{
			Category: ErrorQuota,
			Message:  "API Limit Reached. You have exceeded your request limit. Please try again tomorrow or check your plan.",
			Op:       op,
			Err:      err,
		}
	case strings.Contains(msg, "fetch") || strings.Contains(msg, "connection refused") || strings.Contains(msg, "no such host"):
		return &UserError{
			Category: ErrorNetwork,
			Message:  "A network error occurred. Please check your internet connection and try again.",
			Op:       op,
			Err:      err,
		}
	case strings.Contains(msg, "safety"):
		return &UserError{
			Category: ErrorSafety,
			Message:  "The request was blocked for safety reasons. Please adjust your content idea and try again.",
			Op:       op,
			Err:      err,
		}
	}
	return &UserError{
		Category: ErrorUnknown,
		Message:  fmt.Sprintf("An unexpected error occurred during %s. Please try again.", op),
		Op:       op,
		Err:      err,
	}
}
