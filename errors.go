package strix

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNilListener is returned when an operation targets a nil listener.
	ErrNilListener = errors.New("strix: listener is nil")
	// ErrNilRegistry is returned when an operation targets a nil registry.
	ErrNilRegistry = errors.New("strix: registry is nil")
	// ErrListenerFull is returned by Enqueue when the buffer is at capacity.
	ErrListenerFull = errors.New("strix: listener buffer is full")
	// ErrListenerEmpty is returned by Dequeue when the buffer holds no events.
	ErrListenerEmpty = errors.New("strix: listener buffer is empty")
	// ErrRegistryFull is returned by Register when the registry is at capacity.
	ErrRegistryFull = errors.New("strix: registry is full")
	// ErrRegistryEmpty is returned by Deregister when nothing is registered.
	ErrRegistryEmpty = errors.New("strix: registry is empty")
	// ErrNotRegistered is returned by Deregister when the listener is not present.
	ErrNotRegistered = errors.New("strix: listener is not registered")
	// ErrAlreadyRegistered is returned by Register when the listener is present.
	ErrAlreadyRegistered = errors.New("strix: listener is already registered")
)

// DeliveryFailure records a single listener that a broadcast could not
// reach, together with the enqueue error.
type DeliveryFailure struct {
	Listener *Listener
	Err      error
}

func (f DeliveryFailure) Error() string {
	return fmt.Sprintf("%s: %v", f.Listener.Name(), f.Err)
}

func (f DeliveryFailure) Unwrap() error {
	return f.Err
}

// DeliveryError reports a partially failed broadcast: Delivered counts the
// listeners that received the event, Failures names every listener that did
// not. Successful deliveries are never rolled back.
type DeliveryError struct {
	Delivered int
	Failures  []DeliveryFailure
}

func (e *DeliveryError) Error() string {
	names := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		names[i] = f.Error()
	}
	return fmt.Sprintf("strix: broadcast reached %d listener(s), failed for %d: %s",
		e.Delivered, len(e.Failures), strings.Join(names, "; "))
}

// Unwrap exposes the per-listener errors so errors.Is can match the
// underlying sentinels, e.g. errors.Is(err, ErrListenerFull).
func (e *DeliveryError) Unwrap() []error {
	errs := make([]error, len(e.Failures))
	for i, f := range e.Failures {
		errs[i] = f
	}
	return errs
}
