package form

import (
	"math"
	"strconv"
)

// CurrencySymbol prefixes every formatted amount.
const CurrencySymbol = "$"

// Split holds the derived per-person amounts.
type Split struct {
	TipPerPerson   float64
	TotalPerPerson float64
}

// Compute splits a bill and its tip between people.
//
//	tipAmount      = bill * tipPercent / 100
//	totalAmount    = bill + tipAmount
//	tipPerPerson   = tipAmount / people
//	totalPerPerson = totalAmount / people
//
// When people is not positive or bill is not positive the result is the zero
// Split and no division is performed. A negative tipPercent is treated as 0,
// and a non-finite result collapses to the zero Split.
func Compute(bill, tipPercent float64, people int) Split {
	if people <= 0 || bill <= 0 || math.IsNaN(bill) || math.IsInf(bill, 0) {
		return Split{}
	}
	if tipPercent < 0 || math.IsNaN(tipPercent) {
		tipPercent = 0
	}

	tipAmount := bill * tipPercent / 100
	totalAmount := bill + tipAmount

	split := Split{
		TipPerPerson:   tipAmount / float64(people),
		TotalPerPerson: totalAmount / float64(people),
	}
	if !finite(split.TipPerPerson) || !finite(split.TotalPerPerson) {
		return Split{}
	}
	return split
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Derive computes the outputs for a form state
func Derive(s State) Split {
	return Compute(ParseAmount(s.bill), s.tip.Percent(), ParseCount(s.people))
}

// Round2 rounds half away from zero to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FormatCurrency renders v as "$" followed by exactly two decimals
func FormatCurrency(v float64) string {
	r := Round2(v)
	if r == 0 {
		// avoid "-0.00"
		r = 0
	}
	return CurrencySymbol + strconv.FormatFloat(r, 'f', 2, 64)
}
