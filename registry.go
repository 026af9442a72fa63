package strix

import (
	"context"
	"time"

	"github.com/fogfish/opts"
	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/casualjim/strix/pkg/uuidx"
)

// DefaultMaxListeners is the capacity of a registry constructed without
// WithRegistryCapacity.
const DefaultMaxListeners = 8

// registration is the per-listener bookkeeping the registry keeps alongside
// the borrowed reference.
type registration struct {
	At strfmt.DateTime
}

// Registry is a fixed-capacity set of borrowed listener references with
// broadcast fan-out. Membership is keyed by listener identity and kept in
// registration order, so broadcasts visit listeners in the order they were
// registered and deregistration never needs compaction.
//
// The registry never owns a listener and never extends its lifetime; it is
// the caller's responsibility to deregister a listener before discarding
// it. A Registry is not safe for concurrent use.
type Registry struct {
	id       uuid.UUID
	name     string
	capacity int
	hook     Hook

	listeners *orderedmap.OrderedMap[*Listener, registration]
}

// NewRegistry constructs an empty registry. It panics if an option is
// invalid.
func NewRegistry(options ...opts.Option[Registry]) *Registry {
	r := &Registry{
		id:       uuidx.New(),
		capacity: DefaultMaxListeners,
	}
	if err := opts.Apply(r, options); err != nil {
		panic(err)
	}
	if r.name == "" {
		r.name = r.id.String()
	}
	r.listeners = orderedmap.New[*Listener, registration](r.capacity)
	return r
}

// Name returns the registry's diagnostic name. It defaults to the ID.
func (r *Registry) Name() string {
	if r == nil {
		return "<nil>"
	}
	return r.name
}

// Len returns the number of registered listeners.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return r.listeners.Len()
}

// Cap returns the registration capacity.
func (r *Registry) Cap() int {
	if r == nil {
		return 0
	}
	return r.capacity
}

// Registered reports whether the given listener is currently registered.
// The match is by identity, never by buffer contents.
func (r *Registry) Registered(l *Listener) bool {
	if r == nil || l == nil {
		return false
	}
	_, ok := r.listeners.Get(l)
	return ok
}

// RegisteredAt returns when the listener was registered. The second return
// is false when the listener is not currently registered.
func (r *Registry) RegisteredAt(l *Listener) (strfmt.DateTime, bool) {
	if r == nil || l == nil {
		return strfmt.DateTime{}, false
	}
	reg, ok := r.listeners.Get(l)
	return reg.At, ok
}

// Register stores a borrowed reference to the listener. It fails with
// ErrNilRegistry or ErrNilListener when either handle is absent,
// ErrAlreadyRegistered when the listener is already present, and
// ErrRegistryFull when the registry is at capacity.
func (r *Registry) Register(ctx context.Context, l *Listener) error {
	if r == nil {
		return ErrNilRegistry
	}
	if l == nil {
		return ErrNilListener
	}
	if _, ok := r.listeners.Get(l); ok {
		return ErrAlreadyRegistered
	}
	if r.listeners.Len() >= r.capacity {
		return ErrRegistryFull
	}
	r.listeners.Set(l, registration{At: strfmt.DateTime(time.Now())})
	if r.hook != nil {
		r.hook.OnRegister(ctx, l)
	}
	return nil
}

// Deregister removes the listener's reference. It fails with
// ErrNilRegistry or ErrNilListener when either handle is absent,
// ErrRegistryEmpty when nothing is registered (before any lookup), and
// ErrNotRegistered when the listener is not present. The match is by
// identity: a distinct listener with identical contents is never removed.
func (r *Registry) Deregister(ctx context.Context, l *Listener) error {
	if r == nil {
		return ErrNilRegistry
	}
	if l == nil {
		return ErrNilListener
	}
	if r.listeners.Len() == 0 {
		return ErrRegistryEmpty
	}
	if _, ok := r.listeners.Delete(l); !ok {
		return ErrNotRegistered
	}
	if r.hook != nil {
		r.hook.OnDeregister(ctx, l)
	}
	return nil
}

// Broadcast enqueues a copy of the event into every registered listener in
// registration order. Delivery is not atomic: listeners with room receive
// the event even when others fail. When every enqueue succeeds Broadcast
// returns nil; otherwise it returns a *DeliveryError naming each listener
// that missed the event and why.
func (r *Registry) Broadcast(ctx context.Context, event Event) error {
	if r == nil {
		return ErrNilRegistry
	}

	var failures []DeliveryFailure
	delivered := 0
	for pair := r.listeners.Oldest(); pair != nil; pair = pair.Next() {
		if _, err := pair.Key.Enqueue(event); err != nil {
			failures = append(failures, DeliveryFailure{Listener: pair.Key, Err: err})
			if r.hook != nil {
				r.hook.OnDeliveryFailure(ctx, pair.Key, event, err)
			}
			continue
		}
		delivered++
	}
	if r.hook != nil {
		r.hook.OnBroadcast(ctx, event, delivered)
	}

	if len(failures) > 0 {
		return &DeliveryError{Delivered: delivered, Failures: failures}
	}
	return nil
}
