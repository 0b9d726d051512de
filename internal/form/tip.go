package form

import (
	"fmt"
	"strconv"
)

// Presets are the tip percentages offered as buttons, in display order.
var Presets = []int{5, 10, 15, 25, 50}

// IsPreset reports whether percent is one of the Presets
func IsPreset(percent int) bool {
	for _, p := range Presets {
		if p == percent {
			return true
		}
	}
	return false
}

// TipMode identifies which variant of TipSelection is active.
type TipMode int

const (
	TipUnset TipMode = iota
	TipPreset
	TipCustom
)

// String returns the wire name of the mode
func (m TipMode) String() string {
	switch m {
	case TipUnset:
		return "unset"
	case TipPreset:
		return "preset"
	case TipCustom:
		return "custom"
	default:
		return fmt.Sprintf("TipMode(%d)", int(m))
	}
}

// TipSelection is Unset, Preset(percent) or Custom(text). The fields are
// unexported so a selection can only be built through the constructors below,
// which keeps preset and custom mutually exclusive.
type TipSelection struct {
	mode   TipMode
	preset int
	custom string
}

// NoTip returns the Unset selection.
func NoTip() TipSelection {
	return TipSelection{}
}

// PresetTip returns the selection for one of the Presets.
// ok is false when percent is not a preset.
func PresetTip(percent int) (sel TipSelection, ok bool) {
	if !IsPreset(percent) {
		return TipSelection{}, false
	}
	return TipSelection{mode: TipPreset, preset: percent}, true
}

// CustomTip returns a custom selection holding the text typed by the user.
// Empty text yields NoTip. The text is expected to have passed the
// KindPercent grammar already.
func CustomTip(text string) TipSelection {
	if text == "" {
		return NoTip()
	}
	return TipSelection{mode: TipCustom, custom: text}
}

// Mode returns the active variant
func (t TipSelection) Mode() TipMode {
	return t.mode
}

// Preset returns the selected preset percentage, or 0 if no preset is active
func (t TipSelection) Preset() int {
	if t.mode != TipPreset {
		return 0
	}
	return t.preset
}

// CustomText returns the custom field text, or "" if no custom value is active
func (t TipSelection) CustomText() string {
	if t.mode != TipCustom {
		return ""
	}
	return t.custom
}

// Percent returns the numeric tip percentage. Unset is 0.
func (t TipSelection) Percent() float64 {
	switch t.mode {
	case TipPreset:
		return float64(t.preset)
	case TipCustom:
		return ParseAmount(t.custom)
	default:
		return 0
	}
}

// Selected reports whether the preset button for percent should be highlighted
func (t TipSelection) Selected(percent int) bool {
	return t.mode == TipPreset && t.preset == percent
}

// Label returns a short description such as "15%", "22.5% (custom)" or "none"
func (t TipSelection) Label() string {
	switch t.mode {
	case TipPreset:
		return strconv.Itoa(t.preset) + "%"
	case TipCustom:
		return strconv.FormatFloat(t.Percent(), 'f', -1, 64) + "% (custom)"
	default:
		return "none"
	}
}
