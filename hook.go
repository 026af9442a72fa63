package strix

import (
	"context"
	"log/slog"
	"slices"

	json "github.com/goccy/go-json"

	"github.com/casualjim/strix/pkg/slogx"
)

// Hook observes registry activity. The interface is deliberately designed
// without a base "no-op" implementation so consumers make explicit
// decisions about handling each event kind; when a method is added, all
// implementations must be updated.
//
// The registry invokes hooks synchronously on the calling goroutine, after
// the state change they report has taken effect.
type Hook interface {
	// OnRegister fires after a listener is added to the registry.
	OnRegister(context.Context, *Listener)

	// OnDeregister fires after a listener is removed from the registry.
	OnDeregister(context.Context, *Listener)

	// OnBroadcast fires once per broadcast with the number of listeners
	// that received the event.
	OnBroadcast(context.Context, Event, int)

	// OnDeliveryFailure fires for every listener a broadcast could not
	// reach, before OnBroadcast.
	OnDeliveryFailure(context.Context, *Listener, Event, error)
}

// LoggingHook returns a hook that logs all registry activity through slog.
func LoggingHook() Hook {
	return &loggingHook{}
}

type loggingHook struct{}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

func (loggingHook) OnRegister(ctx context.Context, l *Listener) {
	slog.InfoContext(ctx, "listener registered",
		slog.String("listener", l.Name()),
		slogx.Stringer("listener_id", l.ID()),
	)
}

func (loggingHook) OnDeregister(ctx context.Context, l *Listener) {
	slog.InfoContext(ctx, "listener deregistered",
		slog.String("listener", l.Name()),
		slogx.Stringer("listener_id", l.ID()),
	)
}

func (loggingHook) OnBroadcast(ctx context.Context, event Event, delivered int) {
	slog.InfoContext(ctx, "event broadcast",
		slog.String("event", mustJSON(event)),
		slog.Int("delivered", delivered),
	)
}

func (loggingHook) OnDeliveryFailure(ctx context.Context, l *Listener, event Event, err error) {
	slog.ErrorContext(ctx, "event delivery failed",
		slog.String("listener", l.Name()),
		slog.String("event", mustJSON(event)),
		slogx.Error(err),
	)
}

// NewCompositeHook combines several hooks into one.
func NewCompositeHook(hooks ...Hook) Hook {
	return CompositeHook(hooks)
}

// CompositeHook fans each callback out to every member hook in order.
// Note: this is provided as a utility for combining hooks, not as a way to
// avoid implementing the full interface.
type CompositeHook []Hook

func (c CompositeHook) OnRegister(ctx context.Context, l *Listener) {
	for h := range slices.Values(c) {
		h.OnRegister(ctx, l)
	}
}

func (c CompositeHook) OnDeregister(ctx context.Context, l *Listener) {
	for h := range slices.Values(c) {
		h.OnDeregister(ctx, l)
	}
}

func (c CompositeHook) OnBroadcast(ctx context.Context, event Event, delivered int) {
	for h := range slices.Values(c) {
		h.OnBroadcast(ctx, event, delivered)
	}
}

func (c CompositeHook) OnDeliveryFailure(ctx context.Context, l *Listener, event Event, err error) {
	for h := range slices.Values(c) {
		h.OnDeliveryFailure(ctx, l, event, err)
	}
}
