// Package form implements the tip-splitting calculator form.
//
// The form is an immutable State value. Every user event (a keystroke in a
// text field, a click on a tip preset, a reset) is a method on State that
// returns the next State; nothing is mutated in place. The derived outputs
// are never stored: Derive recomputes them from the current fields, and
// NewView turns a State into the strings a front end displays.
//
// # Fields
//
// Three text fields are validated on every keystroke:
//
//   - Bill: decimal money, e.g. "", "12", "12.", "12.5", ".5"
//   - Custom tip: decimal percentage with the same grammar
//   - Number of people: "", "0" or a number without leading zeros
//
// A keystroke that would make a field invalid is dropped and the field keeps
// its last valid value.
//
// # Tip Selection
//
// A tip is Unset, one of the Presets (5, 10, 15, 25, 50) or a Custom value
// typed by the user. TipSelection is a tagged union: a preset and a custom
// value can never be active together.
//
// # Zero Guard
//
// Both outputs are zero whenever the people count is empty or zero, or the
// bill is not positive. A people count of exactly "0" additionally raises
// the "Can't be zero" error on the people field.
//
// # Usage
//
//	s := form.NewState().
//	    SetBill("100").
//	    SelectPreset(15).
//	    SetPeople("4")
//
//	v := form.NewView(s)
//	fmt.Println(v.TipPerPerson, v.TotalPerPerson) // $3.75 $28.75
package form
