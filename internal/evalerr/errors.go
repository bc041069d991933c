// Package evalerr defines the error kinds surfaced by an evaluation run.
// None of them are recovered internally; callers match them with errors.As.
package evalerr

import "fmt"

// FileAccessError is returned when an input or template file cannot be read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("cannot read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error {
	return e.Err
}

// ParseError is returned when a line of a JSONL file is not a valid JSON object.
type ParseError struct {
	Path    string
	Line    int
	Content string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: invalid JSON record %q: %v", e.Path, e.Line, e.Content, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// AuthenticationError is returned when the judge service credential is
// missing or rejected.
type AuthenticationError struct {
	// StatusCode is zero when the credential was missing and no request was sent.
	StatusCode int
	Err        error
}

func (e *AuthenticationError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("authentication failed: %v", e.Err)
	}
	return fmt.Sprintf("authentication failed (HTTP %d): %v", e.StatusCode, e.Err)
}

func (e *AuthenticationError) Unwrap() error {
	return e.Err
}

// ServiceError covers every other failure of the judge service: network
// errors, rate limits and malformed responses.
type ServiceError struct {
	StatusCode int
	Err        error
}

func (e *ServiceError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("judge service error: %v", e.Err)
	}
	return fmt.Sprintf("judge service error (HTTP %d): %v", e.StatusCode, e.Err)
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}
