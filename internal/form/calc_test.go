package form

import (
	"math"
	"testing"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		bill      float64
		tip       float64
		people    int
		wantTip   float64
		wantTotal float64
	}{
		{"15% four ways", 100, 15, 4, 3.75, 28.75},
		{"15% two ways", 100, 15, 2, 7.50, 57.50},
		{"22% custom four ways", 100, 22, 4, 5.50, 30.50},
		{"no tip", 60, 0, 3, 0, 20},
		{"one person", 42.5, 10, 1, 4.25, 46.75},
		{"zero people", 100, 15, 0, 0, 0},
		{"negative people", 100, 15, -2, 0, 0},
		{"zero bill", 0, 15, 4, 0, 0},
		{"negative bill", -10, 15, 4, 0, 0},
		{"negative tip treated as zero", 100, -5, 4, 0, 25},
		{"overflowing tip collapses to zero", math.MaxFloat64, 50, 1, 0, 0},
		{"infinite tip collapses to zero", 100, math.Inf(1), 1, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.bill, tt.tip, tt.people)
			if math.Abs(got.TipPerPerson-tt.wantTip) > 1e-9 {
				t.Errorf("TipPerPerson = %v, want %v", got.TipPerPerson, tt.wantTip)
			}
			if math.Abs(got.TotalPerPerson-tt.wantTotal) > 1e-9 {
				t.Errorf("TotalPerPerson = %v, want %v", got.TotalPerPerson, tt.wantTotal)
			}
		})
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "$0.00"},
		{3.75, "$3.75"},
		{7.5, "$7.50"},
		{28.75, "$28.75"},
		{33.333333, "$33.33"},
		{16.666666, "$16.67"},
		{0.125, "$0.13"},
		{1234.5, "$1234.50"},
		{-0.001, "$0.00"},
	}

	for _, tt := range tests {
		if got := FormatCurrency(tt.in); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDeriveFromState(t *testing.T) {
	s := NewState().SetBill("100").SelectPreset(15).SetPeople("4")
	split := Derive(s)
	if FormatCurrency(split.TipPerPerson) != "$3.75" || FormatCurrency(split.TotalPerPerson) != "$28.75" {
		t.Errorf("Derive() = %+v, want $3.75 / $28.75", split)
	}

	// empty people count short-circuits
	s = s.SetPeople("")
	if got := s.Split(); got != (Split{}) {
		t.Errorf("Split() with empty people = %+v, want zero", got)
	}
}
