package form

import (
	"fmt"
	"regexp"
	"strconv"
)

// FieldKind selects the grammar a text field is validated against.
type FieldKind int

const (
	// KindMoney is a non-negative decimal amount (the bill).
	KindMoney FieldKind = iota
	// KindPercent is a non-negative decimal percentage (the custom tip).
	KindPercent
	// KindCount is a non-negative integer (the number of people).
	KindCount
)

// String returns the field name used in error messages and logs
func (k FieldKind) String() string {
	switch k {
	case KindMoney:
		return "bill"
	case KindPercent:
		return "tip"
	case KindCount:
		return "people"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

var (
	// Optional integer part, at most one '.', optional fraction.
	decimalPattern = regexp.MustCompile(`^[0-9]*\.?[0-9]*$`)

	// Literal zero, or digits without a leading zero.
	countPattern = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)
)

// Longest text each field kind accepts. Keeps every parsed value finite and
// every count within int range.
const (
	MaxMoneyLen   = 12
	MaxPercentLen = 6
	MaxCountLen   = 6
)

// MaxLen returns the longest text accepted for kind.
func MaxLen(kind FieldKind) int {
	switch kind {
	case KindMoney:
		return MaxMoneyLen
	case KindPercent:
		return MaxPercentLen
	case KindCount:
		return MaxCountLen
	default:
		return 0
	}
}

// Valid reports whether raw is an acceptable value for a field of the given
// kind. The empty string is valid for every kind.
func Valid(kind FieldKind, raw string) bool {
	if raw == "" {
		return true
	}
	if len(raw) > MaxLen(kind) {
		return false
	}

	switch kind {
	case KindMoney, KindPercent:
		return decimalPattern.MatchString(raw)
	case KindCount:
		return countPattern.MatchString(raw)
	default:
		return false
	}
}

// Accept validates a keystroke. It returns raw when raw is valid for kind,
// otherwise it returns prev unchanged. The boolean reports whether raw was
// accepted.
func Accept(kind FieldKind, prev, raw string) (string, bool) {
	if Valid(kind, raw) {
		return raw, true
	}
	return prev, false
}

// ParseAmount converts a validated decimal field to a number.
// Empty, "." and anything unparsable are treated as 0.
func ParseAmount(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// ParseCount converts a validated count field to an int.
// Empty and anything unparsable (including overflow) are treated as 0.
func ParseCount(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
