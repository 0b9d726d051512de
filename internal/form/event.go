package form

import "fmt"

// EventType names a user action on the form.
type EventType string

const (
	EventBill      EventType = "bill"
	EventCustomTip EventType = "custom_tip"
	EventPeople    EventType = "people"
	EventPreset    EventType = "preset"
	EventReset     EventType = "reset"
)

// Event is one user action. Value carries the full new text of a field for
// the text events; Percent carries the clicked preset for EventPreset. Seq is
// an optional client counter, echoed back so a front end can tell which
// reply answers its latest event.
type Event struct {
	Type    EventType `json:"type"`
	Value   string    `json:"value,omitempty"`
	Percent int       `json:"percent,omitempty"`
	Seq     uint64    `json:"seq,omitempty"`
}

// String returns a compact description for logs
func (e Event) String() string {
	switch e.Type {
	case EventPreset:
		return fmt.Sprintf("%s(%d)", e.Type, e.Percent)
	case EventReset:
		return string(e.Type)
	default:
		return fmt.Sprintf("%s(%q)", e.Type, e.Value)
	}
}

// Apply runs the transition for e. accepted is false when the validator
// rejected the input, in which case the returned state equals s. An error is
// returned only for events the form does not understand.
func (s State) Apply(e Event) (next State, accepted bool, err error) {
	switch e.Type {
	case EventBill:
		next, accepted = s.setBill(e.Value)
	case EventCustomTip:
		next, accepted = s.setCustomTip(e.Value)
	case EventPeople:
		next, accepted = s.setPeople(e.Value)
	case EventPreset:
		next, accepted = s.selectPreset(e.Percent)
		if !accepted {
			return s, false, fmt.Errorf("%w: %d", ErrUnknownPreset, e.Percent)
		}
	case EventReset:
		next, accepted = s.Reset(), true
	default:
		return s, false, fmt.Errorf("%w: %q", ErrUnknownEvent, e.Type)
	}
	return next, accepted, nil
}
