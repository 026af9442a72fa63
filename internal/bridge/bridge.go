package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	json "github.com/goccy/go-json"
	"github.com/nats-io/nats.go"

	"github.com/casualjim/strix"
	"github.com/casualjim/strix/pkg/slogx"
	"github.com/casualjim/strix/pkg/uuidx"
)

// Bridge connects a local registry to a NATS subject. Events published
// through the bridge reach the local listeners and every peer bridge on
// the same subject; events arriving from peers are broadcast locally.
type Bridge struct {
	conn     *nats.Conn
	subject  string
	registry *strix.Registry
	sender   string

	mu  sync.Mutex
	sub *nats.Subscription
}

// NATS creates a bridge between the registry and the given subject and
// starts receiving immediately.
func NATS(conn *nats.Conn, subject string, registry *strix.Registry) (*Bridge, error) {
	if conn == nil {
		return nil, fmt.Errorf("bridge: nats connection is required")
	}
	if subject == "" {
		return nil, fmt.Errorf("bridge: subject is required")
	}
	if registry == nil {
		return nil, strix.ErrNilRegistry
	}

	b := &Bridge{
		conn:     conn,
		subject:  subject,
		registry: registry,
		sender:   "strix-" + uuidx.NewString(),
	}
	sub, err := conn.Subscribe(subject, b.receive)
	if err != nil {
		return nil, err
	}
	b.sub = sub
	return b, nil
}

// Subject returns the NATS subject the bridge is attached to.
func (b *Bridge) Subject() string {
	return b.subject
}

func (b *Bridge) receive(msg *nats.Msg) {
	var envelope strix.Envelope
	if err := envelope.UnmarshalJSON(msg.Data); err != nil {
		slog.Error("failed to unmarshal envelope",
			slogx.Error(err),
			slogx.ByteString("payload", msg.Data),
		)
		return
	}

	// Our own broadcasts echo back on the subject.
	if envelope.Sender == b.sender {
		return
	}

	b.mu.Lock()
	err := b.registry.Broadcast(context.Background(), envelope.Event)
	b.mu.Unlock()
	if err != nil {
		slog.Error("failed to broadcast remote event",
			slogx.Error(err),
			slogx.Stringer("broadcast_id", envelope.BroadcastID),
			slog.String("sender", envelope.Sender),
		)
	}
}

// Publish broadcasts the event to the local registry and forwards it to
// the subject. A partial local delivery failure does not stop the forward;
// the local error is returned after the event is on the wire so callers
// still see which listeners missed it.
func (b *Bridge) Publish(ctx context.Context, event strix.Event) error {
	b.mu.Lock()
	local := b.registry.Broadcast(ctx, event)
	b.mu.Unlock()

	data, err := json.Marshal(strix.NewEnvelope(event, b.sender))
	if err != nil {
		return err
	}
	if err := b.conn.Publish(b.subject, data); err != nil {
		return err
	}
	return local
}

// Close stops receiving from the subject. The registry and its listeners
// are untouched.
func (b *Bridge) Close() {
	if err := b.sub.Unsubscribe(); err != nil {
		slog.Error("failed to unsubscribe",
			slogx.Error(err),
			slog.String("subject", b.subject),
		)
	}
}
