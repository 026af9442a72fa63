package strix

import (
	"github.com/fogfish/opts"
	"github.com/google/uuid"

	"github.com/casualjim/strix/pkg/uuidx"
)

// DefaultMaxEvents is the buffer capacity of a listener constructed without
// WithListenerCapacity.
const DefaultMaxEvents = 16

// Listener is a fixed-capacity FIFO buffer of events, owned by a single
// state machine instance. The buffer is a ring: Enqueue appends behind the
// newest event, Dequeue removes the oldest, and neither ever reallocates.
//
// A Listener is not safe for concurrent use. Registries hold borrowed
// references only; the owner controls the listener's lifetime and must
// deregister it before discarding it.
type Listener struct {
	id       uuid.UUID
	name     string
	capacity int

	events []Event
	head   int
	count  int
}

// NewListener constructs a listener with an empty buffer. It panics if an
// option is invalid.
func NewListener(options ...opts.Option[Listener]) *Listener {
	l := &Listener{
		id:       uuidx.New(),
		capacity: DefaultMaxEvents,
	}
	if err := opts.Apply(l, options); err != nil {
		panic(err)
	}
	if l.name == "" {
		l.name = l.id.String()
	}
	l.events = make([]Event, l.capacity)
	return l
}

// ID returns the listener's unique identity. Registries match on identity,
// never on buffer contents.
func (l *Listener) ID() uuid.UUID {
	return l.id
}

// Name returns the listener's diagnostic name. It defaults to the ID.
func (l *Listener) Name() string {
	if l == nil {
		return "<nil>"
	}
	return l.name
}

// Len returns the number of buffered events.
func (l *Listener) Len() int {
	if l == nil {
		return 0
	}
	return l.count
}

// Cap returns the buffer capacity.
func (l *Listener) Cap() int {
	if l == nil {
		return 0
	}
	return l.capacity
}

// Enqueue appends an event behind the newest buffered one and returns the
// new occupied count. It fails with ErrNilListener on a nil receiver and
// ErrListenerFull when the buffer is at capacity.
func (l *Listener) Enqueue(event Event) (int, error) {
	if l == nil {
		return 0, ErrNilListener
	}
	if l.count >= l.capacity {
		return l.count, ErrListenerFull
	}
	l.events[(l.head+l.count)%l.capacity] = event
	l.count++
	return l.count, nil
}

// Dequeue removes and returns the oldest buffered event. It fails with
// ErrNilListener on a nil receiver and ErrListenerEmpty when nothing is
// buffered.
func (l *Listener) Dequeue() (Event, error) {
	if l == nil {
		return Event{}, ErrNilListener
	}
	if l.count == 0 {
		return Event{}, ErrListenerEmpty
	}
	event := l.events[l.head]
	l.head = (l.head + 1) % l.capacity
	l.count--
	return event, nil
}

// Reset discards all buffered events. Stale slot contents are left in
// place; the occupied count gates what is reachable.
func (l *Listener) Reset() {
	if l == nil {
		return
	}
	l.head = 0
	l.count = 0
}
