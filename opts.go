package strix

import (
	"fmt"

	"github.com/fogfish/opts"
)

// WithListenerName sets the listener's diagnostic name, used in logs and
// delivery failure reports. When unset the name defaults to the listener's
// ID.
var WithListenerName = opts.ForName[Listener, string]("name")

// WithRegistryName sets the registry's diagnostic name. When unset the name
// defaults to the registry's ID.
var WithRegistryName = opts.ForName[Registry, string]("name")

// WithHook installs an observer for registry activity. Combine several with
// NewCompositeHook. A registry without a hook performs no observer calls.
var WithHook = opts.ForName[Registry, Hook]("hook")

// WithListenerCapacity sets the listener's buffer capacity. The capacity is
// fixed for the life of the listener; the buffer never grows. It must be at
// least 1.
func WithListenerCapacity(capacity int) opts.Option[Listener] {
	return opts.Type[Listener](func(l *Listener) error {
		if capacity < 1 {
			return fmt.Errorf("strix: listener capacity must be at least 1, got %d", capacity)
		}
		l.capacity = capacity
		return nil
	})
}

// WithRegistryCapacity sets the maximum number of listeners the registry
// accepts. It must be at least 1.
func WithRegistryCapacity(capacity int) opts.Option[Registry] {
	return opts.Type[Registry](func(r *Registry) error {
		if capacity < 1 {
			return fmt.Errorf("strix: registry capacity must be at least 1, got %d", capacity)
		}
		r.capacity = capacity
		return nil
	})
}
