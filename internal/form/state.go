package form

// ZeroPeopleMessage is shown next to the people field when it holds "0".
const ZeroPeopleMessage = "Can't be zero"

// State is the complete form state. The zero value is the initial state:
// empty bill, no tip, empty people count. All transitions return a new State.
type State struct {
	bill   string
	tip    TipSelection
	people string
}

// NewState returns the initial form state
func NewState() State {
	return State{}
}

// Bill returns the bill field text
func (s State) Bill() string { return s.bill }

// Tip returns the active tip selection
func (s State) Tip() TipSelection { return s.tip }

// People returns the people field text
func (s State) People() string { return s.people }

// ZeroPeople reports the error condition: the people field holds literal zero
func (s State) ZeroPeople() bool {
	return s.people == "0"
}

// IsEmpty reports whether every field is at its initial value
func (s State) IsEmpty() bool {
	return s.bill == "" && s.people == "" && s.tip.Mode() == TipUnset
}

// SetBill applies a new bill field text. Invalid text is ignored.
func (s State) SetBill(raw string) State {
	next, _ := s.setBill(raw)
	return next
}

func (s State) setBill(raw string) (State, bool) {
	v, ok := Accept(KindMoney, s.bill, raw)
	s.bill = v
	return s, ok
}

// SetCustomTip applies a new custom tip field text. Valid non-empty text
// selects a custom tip and deselects any preset. Clearing the text of an
// active custom tip returns the selection to Unset. Invalid text is ignored.
func (s State) SetCustomTip(raw string) State {
	next, _ := s.setCustomTip(raw)
	return next
}

func (s State) setCustomTip(raw string) (State, bool) {
	v, ok := Accept(KindPercent, s.tip.CustomText(), raw)
	if !ok {
		return s, false
	}
	if v == "" && s.tip.Mode() != TipCustom {
		// nothing typed, keep a selected preset
		return s, true
	}
	s.tip = CustomTip(v)
	return s, true
}

// SelectPreset selects one of the Presets and clears any custom text.
// A percentage that is not a preset leaves the state unchanged.
func (s State) SelectPreset(percent int) State {
	next, _ := s.selectPreset(percent)
	return next
}

func (s State) selectPreset(percent int) (State, bool) {
	sel, ok := PresetTip(percent)
	if !ok {
		return s, false
	}
	s.tip = sel
	return s, true
}

// SetPeople applies a new people field text. Invalid text is ignored.
// "0" is stored and raises the zero-people error.
func (s State) SetPeople(raw string) State {
	next, _ := s.setPeople(raw)
	return next
}

func (s State) setPeople(raw string) (State, bool) {
	v, ok := Accept(KindCount, s.people, raw)
	s.people = v
	return s, ok
}

// Reset returns the initial state
func (s State) Reset() State {
	return NewState()
}

// Split returns the derived outputs for this state
func (s State) Split() Split {
	return Derive(s)
}
