package form

import "testing"

func TestValid(t *testing.T) {
	tests := []struct {
		name string
		kind FieldKind
		raw  string
		want bool
	}{
		{"money: empty", KindMoney, "", true},
		{"money: integer", KindMoney, "100", true},
		{"money: trailing dot", KindMoney, "12.", true},
		{"money: fraction", KindMoney, "12.50", true},
		{"money: leading dot", KindMoney, ".5", true},
		{"money: lone dot", KindMoney, ".", true},
		{"money: leading zeros allowed", KindMoney, "007", true},
		{"money: two dots", KindMoney, "1.2.3", false},
		{"money: letter", KindMoney, "12a", false},
		{"money: negative", KindMoney, "-5", false},
		{"money: comma", KindMoney, "1,000", false},
		{"money: space", KindMoney, "1 0", false},
		{"percent: fraction", KindPercent, "22.5", true},
		{"percent: letters", KindPercent, "abc", false},
		{"count: empty", KindCount, "", true},
		{"count: zero", KindCount, "0", true},
		{"count: number", KindCount, "12", true},
		{"count: leading zero", KindCount, "05", false},
		{"count: double zero", KindCount, "00", false},
		{"count: decimal", KindCount, "1.5", false},
		{"count: letter", KindCount, "abc", false},
		{"count: negative", KindCount, "-1", false},
		{"money: longest", KindMoney, "999999999.99", true},
		{"money: too long", KindMoney, "1000000000000", false},
		{"percent: longest", KindPercent, "999999", true},
		{"percent: too long", KindPercent, "1000000", false},
		{"count: longest", KindCount, "999999", true},
		{"count: too long", KindCount, "1000000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Valid(tt.kind, tt.raw); got != tt.want {
				t.Errorf("Valid(%v, %q) = %v, want %v", tt.kind, tt.raw, got, tt.want)
			}
		})
	}
}

func TestAcceptWellFormedDecimalsUnchanged(t *testing.T) {
	for _, raw := range []string{"", "0", "1", "1.", "1.0", "123.456", ".25", "99999999"} {
		got, ok := Accept(KindMoney, "prev", raw)
		if !ok || got != raw {
			t.Errorf("Accept(KindMoney, %q) = (%q, %v), want (%q, true)", raw, got, ok, raw)
		}
	}
}

func TestAcceptRejectsLettersKeepingPrevious(t *testing.T) {
	for _, raw := range []string{"a", "12a", "1e5", "x.5", "12.5$", "NaN", "Inf"} {
		got, ok := Accept(KindMoney, "12.5", raw)
		if ok || got != "12.5" {
			t.Errorf("Accept(KindMoney, %q) = (%q, %v), want (%q, false)", raw, got, ok, "12.5")
		}
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{".", 0},
		{"12.", 12},
		{".5", 0.5},
		{"100", 100},
		{"abc", 0},
	}

	for _, tt := range tests {
		if got := ParseAmount(tt.in); got != tt.want {
			t.Errorf("ParseAmount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"0", 0},
		{"4", 4},
		{"99999999999999999999999", 0},
	}

	for _, tt := range tests {
		if got := ParseCount(tt.in); got != tt.want {
			t.Errorf("ParseCount(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFieldKindString(t *testing.T) {
	if KindMoney.String() != "bill" || KindPercent.String() != "tip" || KindCount.String() != "people" {
		t.Errorf("unexpected field names: %v %v %v", KindMoney, KindPercent, KindCount)
	}
	if FieldKind(9).String() != "FieldKind(9)" {
		t.Errorf("FieldKind(9).String() = %q", FieldKind(9).String())
	}
}
