package form

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewViewInitial(t *testing.T) {
	want := View{
		TipMode:  "unset",
		TipLabel: "none",
		Presets: []PresetButton{
			{Percent: 5, Label: "5%"},
			{Percent: 10, Label: "10%"},
			{Percent: 15, Label: "15%"},
			{Percent: 25, Label: "25%"},
			{Percent: 50, Label: "50%"},
		},
		TipPerPerson:   "$0.00",
		TotalPerPerson: "$0.00",
	}

	if diff := cmp.Diff(want, NewView(NewState())); diff != "" {
		t.Errorf("NewView() mismatch (-want +got):\n%s", diff)
	}
}

func TestNewViewHighlightsPreset(t *testing.T) {
	v := NewView(NewState().SelectPreset(25))
	for _, b := range v.Presets {
		if b.Selected != (b.Percent == 25) {
			t.Errorf("preset %d Selected = %v", b.Percent, b.Selected)
		}
	}
	if v.TipLabel != "25%" || !v.CanReset {
		t.Errorf("TipLabel = %q, CanReset = %v", v.TipLabel, v.CanReset)
	}
}

func TestViewJSON(t *testing.T) {
	v := NewView(NewState().SetBill("100").SetCustomTip("22").SetPeople("4"))
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}

	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if got["custom_tip"] != "22" || got["tip_mode"] != "custom" {
		t.Errorf("custom tip fields = %v / %v", got["custom_tip"], got["tip_mode"])
	}
	if got["tip_per_person"] != "$5.50" || got["total_per_person"] != "$30.50" {
		t.Errorf("outputs = %v / %v", got["tip_per_person"], got["total_per_person"])
	}
	if _, ok := got["people_error"]; ok {
		t.Error("people_error should be omitted when there is no error")
	}
}
