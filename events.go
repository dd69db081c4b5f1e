package signet

// Event is a one-way notification emitted by the engine on successful
// state transitions. Events are ordered but best-effort: they are not
// part of engine state and are never emitted on a failure path.
type Event struct {
	// Type names the state transition, eg. "proposal_created".
	Type string
	// Attributes carry the transition details for indexing or display.
	Attributes []EventAttribute
}

// EventAttribute is a single key/value detail of an Event.
type EventAttribute struct {
	Key   string
	Value string
}

// Attr is a shorthand constructor for an EventAttribute.
func Attr(key, value string) EventAttribute {
	return EventAttribute{Key: key, Value: value}
}

// Emitter is the broadcast collaborator supplied by the host. The engine
// calls Emit synchronously within the triggering call; transport and
// delivery are the host's problem.
type Emitter interface {
	Emit(Event)
}

// NopEmitter discards all events.
type NopEmitter struct{}

var _ Emitter = NopEmitter{}

func (NopEmitter) Emit(Event) {}
