package strix

// Event is the unit of distribution: an immutable identifier tag passed by
// copy through every transfer. The meaning of the identifier is owned by
// the consumer; any integer is valid.
type Event struct {
	ID int `json:"id"`
}

// NewEvent constructs an Event carrying the given identifier.
func NewEvent(id int) Event {
	return Event{ID: id}
}
