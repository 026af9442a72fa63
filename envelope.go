package strix

import (
	"fmt"
	"time"

	"github.com/go-openapi/strfmt"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/casualjim/strix/pkg/uuidx"
)

var envelopeJSON = []byte(`{"type":"event"}`)

// Envelope is the wire form of a broadcast, used by the NATS bridge and for
// diagnostics. The in-process core passes events by copy and never
// serializes; an envelope exists only at the boundary.
type Envelope struct {
	BroadcastID uuid.UUID       `json:"broadcast_id"`
	Event       Event           `json:"event"`
	Sender      string          `json:"sender,omitempty"`
	Timestamp   strfmt.DateTime `json:"timestamp,omitempty"`
	Meta        gjson.Result    `json:"meta,omitempty"`
}

// NewEnvelope wraps an event for the wire, stamping a fresh broadcast ID
// and the current time.
func NewEnvelope(event Event, sender string) Envelope {
	return Envelope{
		BroadcastID: uuidx.New(),
		Event:       event,
		Sender:      sender,
		Timestamp:   strfmt.DateTime(time.Now()),
	}
}

// MarshalJSON implements custom JSON marshaling for Envelope.
func (e Envelope) MarshalJSON() ([]byte, error) {
	result := envelopeJSON

	var err error
	result, err = sjson.SetBytes(result, "broadcast_id", e.BroadcastID.String())
	if err != nil {
		return nil, err
	}

	eventJSON, err := json.Marshal(e.Event)
	if err != nil {
		return nil, err
	}
	result, err = sjson.SetRawBytes(result, "event", eventJSON)
	if err != nil {
		return nil, err
	}

	if e.Sender != "" {
		result, err = sjson.SetBytes(result, "sender", e.Sender)
		if err != nil {
			return nil, err
		}
	}

	if !time.Time(e.Timestamp).IsZero() {
		result, err = sjson.SetBytes(result, "timestamp", e.Timestamp.String())
		if err != nil {
			return nil, err
		}
	}

	if e.Meta.Exists() {
		result, err = sjson.SetRawBytes(result, "meta", []byte(e.Meta.Raw))
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// UnmarshalJSON implements custom JSON unmarshaling for Envelope.
func (e *Envelope) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid json: %s", data)
	}

	typ := gjson.GetBytes(data, "type")
	if !typ.Exists() {
		return fmt.Errorf("missing type field")
	}
	if typ.String() != "event" {
		return fmt.Errorf("invalid type field: %s", typ.String())
	}

	broadcastID := gjson.GetBytes(data, "broadcast_id")
	if !broadcastID.Exists() {
		return fmt.Errorf("missing broadcast_id field")
	}
	id, err := uuid.Parse(broadcastID.String())
	if err != nil {
		return fmt.Errorf("invalid broadcast_id field: %w", err)
	}
	e.BroadcastID = id

	event := gjson.GetBytes(data, "event")
	if !event.Exists() {
		return fmt.Errorf("missing event field")
	}
	if err := json.Unmarshal([]byte(event.Raw), &e.Event); err != nil {
		return fmt.Errorf("invalid event field: %w", err)
	}

	if sender := gjson.GetBytes(data, "sender"); sender.Exists() {
		e.Sender = sender.String()
	}

	if ts := gjson.GetBytes(data, "timestamp"); ts.Exists() {
		parsed, err := strfmt.ParseDateTime(ts.String())
		if err != nil {
			return fmt.Errorf("invalid timestamp field: %w", err)
		}
		e.Timestamp = parsed
	}

	if meta := gjson.GetBytes(data, "meta"); meta.Exists() {
		e.Meta = meta
	}

	return nil
}
