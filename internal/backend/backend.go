// Package backend abstracts the generative text service the pipeline
// consumes. The pipeline treats it as an untrusted producer: calls can
// fail, and the reply format is advisory only.
package backend

import (
	"context"
	"errors"
	"fmt"
)

// Backend is the single capability the pipeline consumes: a synchronous
// text completion for a system/user prompt pair.
type Backend interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Error marks a completion failure (transport error, timeout, or an
// unusable reply). The orchestrator retries stages that fail with a
// backend Error; every other error kind ends the run.
type Error struct {
	Err error
}

func (e *Error) Error() string {
	return fmt.Sprintf("backend: %v", e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Errorf builds a backend Error from a format string.
func Errorf(format string, args ...any) error {
	return &Error{Err: fmt.Errorf(format, args...)}
}

// IsError reports whether err is (or wraps) a backend Error.
func IsError(err error) bool {
	var be *Error
	return errors.As(err, &be)
}
