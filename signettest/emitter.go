package signettest

import "github.com/signet-labs/signet"

// Emitter is a mock implementing signet.Emitter interface that records
// every emitted event.
type Emitter struct {
	events []signet.Event
}

var _ signet.Emitter = (*Emitter)(nil)

func (e *Emitter) Emit(ev signet.Event) {
	e.events = append(e.events, ev)
}

// Events returns all recorded events in emission order.
func (e *Emitter) Events() []signet.Event {
	return e.events
}

// Types returns the types of all recorded events in emission order.
func (e *Emitter) Types() []string {
	types := make([]string, len(e.events))
	for i, ev := range e.events {
		types[i] = ev.Type
	}
	return types
}
