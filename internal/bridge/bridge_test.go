package bridge

import (
	"testing"

	"github.com/nats-io/nats.go"
	"github.com/stretchr/testify/assert"

	"github.com/casualjim/strix"
)

func TestNATSValidation(t *testing.T) {
	reg := strix.NewRegistry()

	t.Run("requires a connection", func(t *testing.T) {
		b, err := NATS(nil, "fsm.events", reg)
		assert.Nil(t, b)
		assert.EqualError(t, err, "bridge: nats connection is required")
	})

	t.Run("requires a subject", func(t *testing.T) {
		b, err := NATS(&nats.Conn{}, "", reg)
		assert.Nil(t, b)
		assert.EqualError(t, err, "bridge: subject is required")
	})

	t.Run("requires a registry", func(t *testing.T) {
		b, err := NATS(&nats.Conn{}, "fsm.events", nil)
		assert.Nil(t, b)
		assert.ErrorIs(t, err, strix.ErrNilRegistry)
	})
}
