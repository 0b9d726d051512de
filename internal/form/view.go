package form

import "strconv"

// PresetButton describes one tip preset button
type PresetButton struct {
	Percent  int    `json:"percent"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// View is everything a front end needs to draw the form. It is derived from
// a State and never edited directly.
type View struct {
	Bill      string `json:"bill"`
	CustomTip string `json:"custom_tip"`
	People    string `json:"people"`

	TipMode  string         `json:"tip_mode"`
	TipLabel string         `json:"tip_label"`
	Presets  []PresetButton `json:"presets"`

	ZeroPeople  bool   `json:"zero_people"`
	PeopleError string `json:"people_error,omitempty"`

	TipPerPerson   string `json:"tip_per_person"`
	TotalPerPerson string `json:"total_per_person"`

	CanReset bool `json:"can_reset"`
}

// NewView derives the display values for s
func NewView(s State) View {
	presets := make([]PresetButton, 0, len(Presets))
	for _, p := range Presets {
		presets = append(presets, PresetButton{
			Percent:  p,
			Label:    strconv.Itoa(p) + "%",
			Selected: s.tip.Selected(p),
		})
	}

	split := Derive(s)

	v := View{
		Bill:           s.bill,
		CustomTip:      s.tip.CustomText(),
		People:         s.people,
		TipMode:        s.tip.Mode().String(),
		TipLabel:       s.tip.Label(),
		Presets:        presets,
		ZeroPeople:     s.ZeroPeople(),
		TipPerPerson:   FormatCurrency(split.TipPerPerson),
		TotalPerPerson: FormatCurrency(split.TotalPerPerson),
		CanReset:       !s.IsEmpty(),
	}
	if v.ZeroPeople {
		v.PeopleError = ZeroPeopleMessage
	}
	return v
}
