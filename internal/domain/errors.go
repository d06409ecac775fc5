package domain

import "fmt"

// NotInitializedError reports an operation invoked on a gateway surface that
// never reached the ready state.
type NotInitializedError struct {
	Surface string
	Reason  string
}

func (e *NotInitializedError) Error() string {
	return fmt.Sprintf("%s gateway is not initialized: %s", e.Surface, e.Reason)
}

// ValidationError reports a caller-supplied parameter outside its accepted
// range. Field names the offending parameter.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// GenerationFailure reports that a backend model could not produce output.
// It wraps the underlying cause so callers can still inspect it.
type GenerationFailure struct {
	Model string
	Cause error
}

func (e *GenerationFailure) Error() string {
	return fmt.Sprintf("generation failed on %s: %v", e.Model, e.Cause)
}

func (e *GenerationFailure) Unwrap() error {
	return e.Cause
}

// UnsupportedMediaError reports a media payload the gateway cannot analyze.
type UnsupportedMediaError struct {
	MIMEType string
}

func (e *UnsupportedMediaError) Error() string {
	return fmt.Sprintf("unsupported media type %q: only audio payloads are accepted", e.MIMEType)
}
