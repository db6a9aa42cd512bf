package flare

import (
	"fmt"
	"log"
)

// ErrorFunc receives failures raised while dispatching to a connection. A
// failure never aborts the Fire pass that produced it.
type ErrorFunc func(from *Connection, err error)

func logError(from *Connection, err error) {
	log.Printf("flare: %v", err)
}

// HandlerError wraps a panic recovered from a user handler.
type HandlerError struct {
	value any
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler panic: %v", e.value)
}

// Value returns the recovered panic value.
func (e *HandlerError) Value() any {
	return e.value
}

func (e *HandlerError) Unwrap() error {
	if err, ok := e.value.(error); ok {
		return err
	}
	return nil
}

// ResumeError reports that a runner context could not be resumed. It is
// internal bookkeeping surfaced for completeness; the dispatcher retries the
// delivery on a fresh runner.
type ResumeError struct {
	value any
}

func (e *ResumeError) Error() string {
	return fmt.Sprintf("runner resume failed: %v", e.value)
}
