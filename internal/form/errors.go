package form

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownEvent is returned by Apply for an event type it does not handle
	ErrUnknownEvent = errors.New("unknown event type")

	// ErrUnknownPreset is returned by Apply for a preset outside Presets
	ErrUnknownPreset = errors.New("not a tip preset")
)

// InputError reports a field value rejected by the validator. It is used where
// input arrives all at once (command line flags) rather than per keystroke.
type InputError struct {
	Field FieldKind
	Value string
}

// Error implements the error interface
func (e *InputError) Error() string {
	switch e.Field {
	case KindCount:
		return fmt.Sprintf("invalid %s %q: must be a whole number without leading zeros", e.Field, e.Value)
	default:
		return fmt.Sprintf("invalid %s %q: must be a non-negative decimal number", e.Field, e.Value)
	}
}

// IsInputError reports whether err is or wraps an *InputError
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// NewStateFromInputs builds a state from complete field values, as supplied on
// a command line. tip may be empty, a preset percentage or any other valid
// percentage (which becomes a custom tip). The first invalid field is
// returned as an *InputError.
func NewStateFromInputs(bill, tip, people string) (State, error) {
	s := NewState()

	var ok bool
	if s, ok = s.setBill(bill); !ok {
		return NewState(), &InputError{Field: KindMoney, Value: bill}
	}

	if !Valid(KindPercent, tip) {
		return NewState(), &InputError{Field: KindPercent, Value: tip}
	}
	if p := ParseCount(tip); tip != "" && Valid(KindCount, tip) && IsPreset(p) {
		s = s.SelectPreset(p)
	} else {
		s = s.SetCustomTip(tip)
	}

	if s, ok = s.setPeople(people); !ok {
		return NewState(), &InputError{Field: KindCount, Value: people}
	}

	return s, nil
}
