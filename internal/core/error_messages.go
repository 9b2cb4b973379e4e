package core

// # Error Codes Reference
//
// Errors surfaced to users carry a code that support staff can look up.
//
//	PAGE001 - Page not found: the requested page is not registered
//	          Action: Pick a page from the dashboard
//	          Sentinel: ErrPageNotFound; Patterns: "page not found", "unknown page"
//
//	QRY001  - Invalid query: a query parameter could not be understood
//	          Action: Clear the search and filters and try again
//	          Sentinel: ErrInvalidQuery
//
//	SRC001  - Source unavailable: the page's records could not be loaded
//	          Action: Please try again in a few moments
//	          Sentinel: ErrSourceUnavailable
//
//	DB004   - Connection refused: unable to connect to database
//	DB005   - Connection reset: database connection was interrupted
//	DB006   - Timeout: the database did not answer in time
//
//	REQ001  - Request cancelled
//	REQ002  - Request timed out
//
//	RATE001 - Rate limited: too many requests
//
//	ERR000  - Unknown error: check application logs for the original error
//
// Sentinels are checked first with errors.Is. Remaining errors are matched
// case-insensitively against the message with strings.Contains; the first
// matching pattern wins, so specific patterns come before general ones.

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrPageNotFound is returned when a page key is not registered.
	ErrPageNotFound = errors.New("page not found")

	// ErrInvalidQuery is returned when a request's query cannot be parsed.
	ErrInvalidQuery = errors.New("invalid query")

	// ErrSourceUnavailable wraps record source failures.
	ErrSourceUnavailable = errors.New("source unavailable")
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string `json:"message"` // What happened (user-friendly)
	Action  string `json:"action"`  // What to do about it
	Code    string `json:"code"`    // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

var (
	msgPageNotFound = UserMessage{
		Message: "Page not found",
		Action:  "Pick a page from the dashboard",
		Code:    "PAGE001",
	}
	msgInvalidQuery = UserMessage{
		Message: "The table request could not be understood",
		Action:  "Clear the search and filters and try again",
		Code:    "QRY001",
	}
	msgSourceUnavailable = UserMessage{
		Message: "The records for this page could not be loaded",
		Action:  "Please try again in a few moments",
		Code:    "SRC001",
	}
	msgCanceled = UserMessage{
		Message: "Request was cancelled",
		Action:  "Please try again",
		Code:    "REQ001",
	}
	msgDeadline = UserMessage{
		Message: "Request timed out",
		Action:  "Narrow the search or try again later",
		Code:    "REQ002",
	}
)

// sentinels are checked in order with errors.Is before any pattern.
// Connection failures below a source error are reported by pattern, so the
// source sentinel is checked last.
var sentinels = []struct {
	err error
	msg UserMessage
}{
	{ErrPageNotFound, msgPageNotFound},
	{ErrInvalidQuery, msgInvalidQuery},
	{context.Canceled, msgCanceled},
	{context.DeadlineExceeded, msgDeadline},
}

// errorPatterns maps technical error patterns (case-insensitive) to user messages.
var errorPatterns = []errorPattern{
	// Database connection errors.
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB004",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB005",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Operation timed out",
			Action:  "Narrow the search or try again later",
			Code:    "DB006",
		},
	},

	// Pages.
	{pattern: "unknown page", msg: msgPageNotFound},

	// Rate limiting.
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

// defaultMessage is returned when no pattern matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Sentinel errors are matched first, then known message patterns. If nothing
// matches, a generic fallback message with code ERR000 is returned.
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return s.msg
		}
	}

	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg
		}
	}

	if errors.Is(err, ErrSourceUnavailable) {
		return msgSourceUnavailable
	}

	return defaultMessage
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

// UserError pairs a technical error with its user-facing message.
type UserError struct {
	Technical error       // Original technical error for logging
	User      UserMessage // User-friendly message for display
}

func (e *UserError) Error() string {
	return e.User.Message
}

func (e *UserError) Unwrap() error {
	return e.Technical
}

// NewUserError creates a UserError by mapping a technical error to a
// user-friendly message. Returns nil if err is nil.
func NewUserError(err error) *UserError {
	if err == nil {
		return nil
	}
	return &UserError{
		Technical: err,
		User:      MapError(err),
	}
}
