package form

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var stateOpts = cmp.AllowUnexported(State{}, TipSelection{})

func TestNewStateIsEmpty(t *testing.T) {
	s := NewState()
	if !s.IsEmpty() {
		t.Error("NewState() should be empty")
	}
	if s.Tip().Mode() != TipUnset {
		t.Errorf("NewState().Tip().Mode() = %v, want unset", s.Tip().Mode())
	}
	if s.ZeroPeople() {
		t.Error("NewState() should not flag zero people")
	}
}

func TestSetBill(t *testing.T) {
	s := NewState().SetBill("1").SetBill("10").SetBill("100.")
	if s.Bill() != "100." {
		t.Errorf("Bill() = %q, want %q", s.Bill(), "100.")
	}

	// letters are discarded
	s = s.SetBill("100.a")
	if s.Bill() != "100." {
		t.Errorf("Bill() after invalid keystroke = %q, want %q", s.Bill(), "100.")
	}

	// second separator is discarded
	s = s.SetBill("100..")
	if s.Bill() != "100." {
		t.Errorf("Bill() after second dot = %q, want %q", s.Bill(), "100.")
	}
}

func TestPresetClearsCustom(t *testing.T) {
	s := NewState().SetCustomTip("22")
	if s.Tip().Mode() != TipCustom || s.Tip().CustomText() != "22" {
		t.Fatalf("Tip() = %v, want custom 22", s.Tip().Label())
	}

	s = s.SelectPreset(15)
	if s.Tip().Mode() != TipPreset || s.Tip().Preset() != 15 {
		t.Errorf("Tip() = %v, want preset 15", s.Tip().Label())
	}
	if s.Tip().CustomText() != "" {
		t.Errorf("CustomText() = %q, want empty after preset", s.Tip().CustomText())
	}
}

func TestCustomClearsPreset(t *testing.T) {
	for _, p := range Presets {
		s := NewState().SelectPreset(p).SetCustomTip("7")
		if s.Tip().Mode() != TipCustom {
			t.Errorf("after preset %d + custom: mode = %v, want custom", p, s.Tip().Mode())
		}
		if s.Tip().Selected(p) {
			t.Errorf("preset %d still selected after custom entry", p)
		}
	}
}

func TestSetCustomTip(t *testing.T) {
	tests := []struct {
		name      string
		start     State
		raw       string
		wantMode  TipMode
		wantText  string
		wantPct   float64
		wantLabel string
	}{
		{"type into empty", NewState(), "2", TipCustom, "2", 2, "2% (custom)"},
		{"fractional", NewState(), "12.5", TipCustom, "12.5", 12.5, "12.5% (custom)"},
		{"letters rejected", NewState().SetCustomTip("2"), "2x", TipCustom, "2", 2, "2% (custom)"},
		{"clearing returns to unset", NewState().SetCustomTip("2"), "", TipUnset, "", 0, "none"},
		{"empty keeps preset", NewState().SelectPreset(10), "", TipPreset, "", 10, "10%"},
		{"invalid keeps preset", NewState().SelectPreset(10), "x", TipPreset, "", 10, "10%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.start.SetCustomTip(tt.raw).Tip()
			if got.Mode() != tt.wantMode {
				t.Errorf("Mode() = %v, want %v", got.Mode(), tt.wantMode)
			}
			if got.CustomText() != tt.wantText {
				t.Errorf("CustomText() = %q, want %q", got.CustomText(), tt.wantText)
			}
			if got.Percent() != tt.wantPct {
				t.Errorf("Percent() = %v, want %v", got.Percent(), tt.wantPct)
			}
			if got.Label() != tt.wantLabel {
				t.Errorf("Label() = %q, want %q", got.Label(), tt.wantLabel)
			}
		})
	}
}

func TestSelectPresetRejectsUnknown(t *testing.T) {
	s := NewState().SelectPreset(15)
	if diff := cmp.Diff(s, s.SelectPreset(20), stateOpts); diff != "" {
		t.Errorf("SelectPreset(20) changed state (-want +got):\n%s", diff)
	}
}

func TestSetPeople(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		raw      string
		want     string
		wantZero bool
	}{
		{"digit", "", "4", "4", false},
		{"zero is stored", "", "0", "0", true},
		{"leading zero rejected", "0", "05", "0", true},
		{"letters rejected", "4", "4a", "4", false},
		{"decimal rejected", "4", "4.", "4", false},
		{"clear", "0", "", "", false},
		{"multi digit", "1", "12", "12", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState().SetPeople(tt.start).SetPeople(tt.raw)
			if s.People() != tt.want {
				t.Errorf("People() = %q, want %q", s.People(), tt.want)
			}
			if s.ZeroPeople() != tt.wantZero {
				t.Errorf("ZeroPeople() = %v, want %v", s.ZeroPeople(), tt.wantZero)
			}
		})
	}
}

func TestZeroPeopleForcesZeroOutputs(t *testing.T) {
	for _, bill := range []string{"", "1", "100", "12345.67"} {
		for _, tip := range []int{5, 50} {
			v := NewView(NewState().SetBill(bill).SelectPreset(tip).SetPeople("0"))
			if v.TipPerPerson != "$0.00" || v.TotalPerPerson != "$0.00" {
				t.Errorf("bill %q tip %d: outputs = %s / %s, want $0.00 / $0.00",
					bill, tip, v.TipPerPerson, v.TotalPerPerson)
			}
			if !v.ZeroPeople || v.PeopleError != ZeroPeopleMessage {
				t.Errorf("bill %q tip %d: error indicator not raised", bill, tip)
			}
		}
	}
}

func TestOversizedInputKeepsPreviousValue(t *testing.T) {
	huge := "1" + strings.Repeat("0", 310)

	s := NewState().SetBill("100").SelectPreset(50).SetPeople("2")
	want := s

	s = s.SetBill(huge).SetCustomTip(huge).SetPeople(huge)
	if diff := cmp.Diff(want, s, stateOpts); diff != "" {
		t.Errorf("state changed by oversized input (-want +got):\n%s", diff)
	}

	v := NewView(s)
	if v.TipPerPerson != "$25.00" || v.TotalPerPerson != "$75.00" {
		t.Errorf("outputs = %s / %s, want $25.00 / $75.00", v.TipPerPerson, v.TotalPerPerson)
	}
	if v.TipLabel != "50%" {
		t.Errorf("TipLabel = %q, want %q", v.TipLabel, "50%")
	}
}

func TestResetFromAnyState(t *testing.T) {
	states := []State{
		NewState(),
		NewState().SetBill("100").SelectPreset(25).SetPeople("3"),
		NewState().SetBill("5.").SetCustomTip("18").SetPeople("0"),
		NewState().SetCustomTip("3"),
	}

	want := NewState()
	for i, s := range states {
		got := s.Reset()
		if diff := cmp.Diff(want, got, stateOpts); diff != "" {
			t.Errorf("state %d: Reset() mismatch (-want +got):\n%s", i, diff)
		}

		v := NewView(got)
		if v.Bill != "" || v.People != "" || v.TipMode != "unset" || v.ZeroPeople {
			t.Errorf("state %d: view after reset = %+v", i, v)
		}
		if v.TipPerPerson != "$0.00" || v.TotalPerPerson != "$0.00" {
			t.Errorf("state %d: outputs after reset = %s / %s", i, v.TipPerPerson, v.TotalPerPerson)
		}

		if diff := cmp.Diff(got, got.Reset(), stateOpts); diff != "" {
			t.Errorf("state %d: Reset() is not idempotent:\n%s", i, diff)
		}
	}
}

func TestNewStateFromInputs(t *testing.T) {
	tests := []struct {
		name      string
		bill      string
		tip       string
		people    string
		wantErr   FieldKind
		wantMode  TipMode
		wantTotal string
		fails     bool
	}{
		{name: "preset tip", bill: "100", tip: "15", people: "4", wantMode: TipPreset, wantTotal: "$28.75"},
		{name: "custom tip", bill: "100", tip: "22", people: "4", wantMode: TipCustom, wantTotal: "$30.50"},
		{name: "preset with fraction is custom", bill: "100", tip: "15.0", people: "2", wantMode: TipCustom, wantTotal: "$57.50"},
		{name: "no tip", bill: "90", tip: "", people: "3", wantMode: TipUnset, wantTotal: "$30.00"},
		{name: "bad bill", bill: "ten", tip: "15", people: "4", wantErr: KindMoney, fails: true},
		{name: "bad tip", bill: "10", tip: "15%", people: "4", wantErr: KindPercent, fails: true},
		{name: "bad people", bill: "10", tip: "15", people: "04", wantErr: KindCount, fails: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewStateFromInputs(tt.bill, tt.tip, tt.people)
			if tt.fails {
				var ie *InputError
				if !errors.As(err, &ie) {
					t.Fatalf("error = %v, want *InputError", err)
				}
				if ie.Field != tt.wantErr {
					t.Errorf("InputError.Field = %v, want %v", ie.Field, tt.wantErr)
				}
				if !IsInputError(err) {
					t.Error("IsInputError() = false")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if s.Tip().Mode() != tt.wantMode {
				t.Errorf("Tip().Mode() = %v, want %v", s.Tip().Mode(), tt.wantMode)
			}
			if got := NewView(s).TotalPerPerson; got != tt.wantTotal {
				t.Errorf("TotalPerPerson = %s, want %s", got, tt.wantTotal)
			}
		})
	}
}
