package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/JonMunkholm/erpgrid/internal/core"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Runtime failure (source unavailable, server error)
	ExitCommandError = 2 // Bad invocation (unknown page, malformed flag)
)

// ExitError carries an exit code. Reported is true when the error has
// already been written in the selected output format.
type ExitError struct {
	Code     int
	Err      error
	Reported bool
}

func (e *ExitError) Error() string { return e.Err.Error() }

func (e *ExitError) Unwrap() error { return e.Err }

// GetExitCode extracts the exit code from an error.
// Returns ExitFailure (1) if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// exitCodeFor classifies err: caller mistakes are command errors.
func exitCodeFor(err error) int {
	if errors.Is(err, core.ErrPageNotFound) || errors.Is(err, core.ErrInvalidQuery) {
		return ExitCommandError
	}
	return ExitFailure
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // diagnostics, kept off Writer so JSON stays parseable
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string    `json:"status"` // "ok" or "error"
	Data   any       `json:"data,omitempty"`
	Error  *CLIError `json:"error,omitempty"`
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Action  string `json:"action,omitempty"`
}

// Success writes data as a JSON envelope, or calls text for text output.
func (f *OutputFormatter) Success(data any, text func(w io.Writer) error) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{Status: "ok", Data: data})
	}
	return text(f.Writer)
}

// Fail reports err in the configured format and returns it as an ExitError.
// Technical detail goes to ErrWriter only in verbose mode.
func (f *OutputFormatter) Fail(err error) error {
	msg := core.MapError(err)
	if f.Format == "json" {
		json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "error",
			Error:  &CLIError{Code: msg.Code, Message: msg.Message, Action: msg.Action},
		})
	} else {
		fmt.Fprintf(f.errWriter(), "Error [%s]: %s\n", msg.Code, msg.Message)
		if msg.Action != "" {
			fmt.Fprintln(f.errWriter(), msg.Action)
		}
	}
	if f.Verbose {
		fmt.Fprintf(f.errWriter(), "Details: %v\n", err)
	}
	return &ExitError{Code: exitCodeFor(err), Err: err, Reported: true}
}

func (f *OutputFormatter) errWriter() io.Writer {
	if f.ErrWriter != nil {
		return f.ErrWriter
	}
	return f.Writer
}
