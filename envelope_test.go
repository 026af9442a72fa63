package strix

import (
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/casualjim/strix/pkg/uuidx"
)

func TestNewEnvelope(t *testing.T) {
	envelope := NewEnvelope(NewEvent(42), "unit-a")

	assert.Equal(t, uuid.Version(7), envelope.BroadcastID.Version())
	assert.Equal(t, 42, envelope.Event.ID)
	assert.Equal(t, "unit-a", envelope.Sender)
	assert.False(t, time.Time(envelope.Timestamp).IsZero())
}

func TestEnvelopeJSON(t *testing.T) {
	broadcastID := uuidx.New()
	timestamp := strfmt.DateTime(time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC))
	envelope := Envelope{
		BroadcastID: broadcastID,
		Event:       NewEvent(42),
		Sender:      "unit-a",
		Timestamp:   timestamp,
	}

	t.Run("marshal", func(t *testing.T) {
		data, err := envelope.MarshalJSON()
		require.NoError(t, err)

		result := gjson.ParseBytes(data)
		assert.Equal(t, "event", result.Get("type").String())
		assert.Equal(t, broadcastID.String(), result.Get("broadcast_id").String())
		assert.Equal(t, int64(42), result.Get("event.id").Int())
		assert.Equal(t, "unit-a", result.Get("sender").String())
		assert.Equal(t, timestamp.String(), result.Get("timestamp").String())
		assert.False(t, result.Get("meta").Exists())
	})

	t.Run("marshal with meta", func(t *testing.T) {
		withMeta := envelope
		withMeta.Meta = gjson.Parse(`{"trace":"abc"}`)

		data, err := withMeta.MarshalJSON()
		require.NoError(t, err)
		assert.Equal(t, "abc", gjson.GetBytes(data, "meta.trace").String())
	})

	t.Run("round trip", func(t *testing.T) {
		data, err := envelope.MarshalJSON()
		require.NoError(t, err)

		var decoded Envelope
		require.NoError(t, decoded.UnmarshalJSON(data))
		assert.Equal(t, envelope.BroadcastID, decoded.BroadcastID)
		assert.Equal(t, envelope.Event, decoded.Event)
		assert.Equal(t, envelope.Sender, decoded.Sender)
		assert.Equal(t, envelope.Timestamp.String(), decoded.Timestamp.String())
	})

	t.Run("unmarshal errors", func(t *testing.T) {
		tests := []struct {
			name  string
			input string
		}{
			{
				name:  "invalid json",
				input: "invalid",
			},
			{
				name:  "missing type",
				input: `{"broadcast_id": "` + broadcastID.String() + `"}`,
			},
			{
				name:  "wrong type",
				input: `{"type": "wrong", "broadcast_id": "` + broadcastID.String() + `"}`,
			},
			{
				name:  "missing broadcast_id",
				input: `{"type": "event", "event": {"id": 1}}`,
			},
			{
				name:  "invalid broadcast_id",
				input: `{"type": "event", "broadcast_id": "invalid"}`,
			},
			{
				name:  "missing event",
				input: `{"type": "event", "broadcast_id": "` + broadcastID.String() + `"}`,
			},
			{
				name:  "invalid timestamp",
				input: `{"type": "event", "broadcast_id": "` + broadcastID.String() + `", "event": {"id": 1}, "timestamp": "not-a-time"}`,
			},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				var decoded Envelope
				assert.Error(t, decoded.UnmarshalJSON([]byte(tt.input)))
			})
		}
	})
}
