package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/muurk/tipsplit/internal/form"
	"github.com/muurk/tipsplit/internal/logging"
)

// Focus identifies the form control receiving keystrokes
type Focus int

const (
	FocusBill Focus = iota
	FocusTip
	FocusPeople
	FocusReset
	focusCount
)

// String returns the field name
func (f Focus) String() string {
	switch f {
	case FocusBill:
		return "bill"
	case FocusTip:
		return "tip"
	case FocusPeople:
		return "people"
	case FocusReset:
		return "reset"
	default:
		return "unknown"
	}
}

// customSlot is the tip cursor position of the Custom input, after the presets
var customSlot = len(form.Presets)

// Model is the Bubble Tea model for the calculator form
type Model struct {
	State form.State

	// Terminal dimensions
	Width  int
	Height int

	focus     Focus
	tipCursor int

	billInput   textinput.Model
	customInput textinput.Model
	peopleInput textinput.Model

	Help help.Model
	Keys formKeyMap

	sessionID string
}

// New creates a form model with every field empty and the bill focused
func New() Model {
	bill := textinput.New()
	bill.Placeholder = "0"
	bill.Prompt = form.CurrencySymbol + " "
	bill.CharLimit = form.MaxMoneyLen
	bill.Width = FieldWidth - 4

	custom := textinput.New()
	custom.Placeholder = "Custom"
	custom.Prompt = ""
	custom.CharLimit = form.MaxPercentLen
	custom.Width = 8

	people := textinput.New()
	people.Placeholder = "0"
	people.Prompt = "👤 "
	people.CharLimit = form.MaxCountLen
	people.Width = FieldWidth - 5

	m := Model{
		State:       form.NewState(),
		billInput:   bill,
		customInput: custom,
		peopleInput: people,
		Help:        help.New(),
		Keys:        newFormKeyMap(),
		sessionID:   uuid.NewString(),
	}
	m.billInput.Focus()
	return m
}

// Focus returns the focused control
func (m Model) Focus() Focus {
	return m.focus
}

// TipCursor returns the tip row position: an index into form.Presets, or
// len(form.Presets) for the Custom input.
func (m Model) TipCursor() int {
	return m.tipCursor
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = CalculateBoxWidth(msg.Width) - 8
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Cursor blink and other input housekeeping
	var cmd tea.Cmd
	switch {
	case m.focus == FocusBill:
		m.billInput, cmd = m.billInput.Update(msg)
	case m.focus == FocusTip && m.tipCursor == customSlot:
		m.customInput, cmd = m.customInput.Update(msg)
	case m.focus == FocusPeople:
		m.peopleInput, cmd = m.peopleInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Reset):
		m = m.apply(form.Event{Type: form.EventReset})
		return m, nil

	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
		return m, nil

	case key.Matches(msg, m.Keys.Next):
		return m.setFocus((m.focus + 1) % focusCount)

	case key.Matches(msg, m.Keys.Prev):
		return m.setFocus((m.focus + focusCount - 1) % focusCount)
	}

	switch m.focus {
	case FocusBill:
		if key.Matches(msg, m.Keys.Select) && msg.String() == "enter" {
			return m.setFocus(FocusTip)
		}
		return m.editField(form.EventBill, msg)

	case FocusTip:
		return m.handleTipKey(msg)

	case FocusPeople:
		if key.Matches(msg, m.Keys.Select) && msg.String() == "enter" {
			return m.setFocus(FocusReset)
		}
		return m.editField(form.EventPeople, msg)

	case FocusReset:
		if key.Matches(msg, m.Keys.Select) {
			m = m.apply(form.Event{Type: form.EventReset})
		}
	}
	return m, nil
}

func (m Model) handleTipKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	onCustom := m.tipCursor == customSlot
	switch {
	// Inside the Custom input the arrows move the caret; ← leaves it for the
	// presets only from the first position.
	case onCustom && key.Matches(msg, m.Keys.Left) && m.customInput.Position() > 0,
		onCustom && key.Matches(msg, m.Keys.Right):
		return m.editField(form.EventCustomTip, msg)

	case key.Matches(msg, m.Keys.Left):
		if m.tipCursor > 0 {
			return m.setTipCursor(m.tipCursor - 1)
		}
		return m, nil

	case key.Matches(msg, m.Keys.Right):
		return m.setTipCursor(m.tipCursor + 1)

	case m.tipCursor < customSlot && key.Matches(msg, m.Keys.Select):
		m = m.apply(form.Event{Type: form.EventPreset, Percent: form.Presets[m.tipCursor]})
		return m, nil
	}

	if onCustom {
		if msg.String() == "enter" {
			return m.setFocus(FocusPeople)
		}
		return m.editField(form.EventCustomTip, msg)
	}

	// Typing a number on a preset button jumps to the Custom input
	if msg.Type == tea.KeyRunes && startsNumber(msg.Runes) {
		next, cmd := m.setTipCursor(customSlot)
		m = next.(Model)
		updated, editCmd := m.editField(form.EventCustomTip, msg)
		return updated, tea.Batch(cmd, editCmd)
	}
	return m, nil
}

// editField lets the text input behind eventType handle msg, then offers the
// resulting text to the form. A rejected edit restores the input to the last
// accepted value.
func (m Model) editField(eventType form.EventType, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	input := m.inputFor(eventType)
	before := input.Value()

	var cmd tea.Cmd
	*input, cmd = input.Update(msg)
	if input.Value() == before {
		return m, cmd
	}

	m = m.apply(form.Event{Type: eventType, Value: input.Value()})
	return m, cmd
}

func (m *Model) inputFor(eventType form.EventType) *textinput.Model {
	switch eventType {
	case form.EventCustomTip:
		return &m.customInput
	case form.EventPeople:
		return &m.peopleInput
	default:
		return &m.billInput
	}
}

// apply runs e against the form state and brings every input in line with
// the result.
func (m Model) apply(e form.Event) Model {
	next, accepted, err := m.State.Apply(e)
	if err != nil {
		logging.Debug("form event failed: " + err.Error())
		return m
	}
	m.State = next

	split := m.State.Split()
	logging.LogFormEvent(m.sessionID, e.String(), accepted,
		form.FormatCurrency(split.TipPerPerson), form.FormatCurrency(split.TotalPerPerson))

	syncInput(&m.billInput, m.State.Bill())
	syncInput(&m.customInput, m.State.Tip().CustomText())
	syncInput(&m.peopleInput, m.State.People())
	return m
}

// syncInput sets the input text only when it differs, keeping the cursor
// position for accepted edits.
func syncInput(input *textinput.Model, value string) {
	if input.Value() != value {
		input.SetValue(value)
	}
}

func (m Model) setFocus(f Focus) (tea.Model, tea.Cmd) {
	m.focus = f
	m.billInput.Blur()
	m.customInput.Blur()
	m.peopleInput.Blur()

	var cmd tea.Cmd
	switch f {
	case FocusBill:
		cmd = m.billInput.Focus()
	case FocusTip:
		if m.tipCursor == customSlot {
			cmd = m.customInput.Focus()
		}
	case FocusPeople:
		cmd = m.peopleInput.Focus()
	}
	return m, cmd
}

func (m Model) setTipCursor(pos int) (tea.Model, tea.Cmd) {
	m.tipCursor = pos
	return m.setFocus(FocusTip)
}

func startsNumber(runes []rune) bool {
	if len(runes) == 0 {
		return false
	}
	r := runes[0]
	return r == '.' || (r >= '0' && r <= '9')
}

// View renders the form
func (m Model) View() string {
	v := form.NewView(m.State)

	sections := []string{
		TitleStyle.Render(strings.Join(strings.Split(AppName, ""), " ")),
		m.renderBill(),
		m.renderTipRow(v),
		m.renderPeople(v),
		m.renderOutput(v),
	}
	content := lipgloss.JoinVertical(lipgloss.Left, sections...)

	if m.Width == 0 {
		return content + "\n\n" + m.Help.View(m.Keys)
	}
	return RenderApplicationContainer(content, m.Help.View(m.Keys), m.Width, m.Height)
}

func (m Model) label(text string, f Focus) string {
	if m.focus == f {
		return FocusedLabelStyle.Render(text)
	}
	return LabelStyle.Render(text)
}

func (m Model) renderBill() string {
	style := FieldStyle
	if m.focus == FocusBill {
		style = FocusedFieldStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.label("Bill", FocusBill),
		style.Render(m.billInput.View()),
		"",
	)
}

func (m Model) renderTipRow(v form.View) string {
	buttons := make([]string, 0, len(v.Presets)+1)
	for i, p := range v.Presets {
		style := PresetStyle
		switch {
		case p.Selected:
			style = SelectedPresetStyle
		case m.focus == FocusTip && m.tipCursor == i:
			style = CursorPresetStyle
		}
		buttons = append(buttons, style.Render(p.Label))
	}

	customStyle := FieldStyle.Width(10).Padding(0)
	if m.focus == FocusTip && m.tipCursor == customSlot {
		customStyle = customStyle.BorderForeground(PrimaryColor)
	}
	custom := customStyle.Render(m.customInput.View())

	row := lipgloss.JoinHorizontal(lipgloss.Center, append(buttons, custom)...)
	return lipgloss.JoinVertical(lipgloss.Left,
		m.label("Select Tip %", FocusTip),
		row,
		"",
	)
}

func (m Model) renderPeople(v form.View) string {
	label := m.label("Number of People", FocusPeople)
	style := FieldStyle
	if m.focus == FocusPeople {
		style = FocusedFieldStyle
	}
	if v.ZeroPeople {
		label = lipgloss.JoinHorizontal(lipgloss.Top, label, "   ", ErrorLabelStyle.Render(v.PeopleError))
		style = ErrorFieldStyle
	}
	return lipgloss.JoinVertical(lipgloss.Left, label, style.Render(m.peopleInput.View()))
}

func (m Model) renderOutput(v form.View) string {
	line := func(title, amount string) string {
		name := lipgloss.JoinVertical(lipgloss.Left,
			OutputLabelStyle.Render(title),
			PerPersonStyle.Render("/ person"),
		)
		return lipgloss.JoinHorizontal(lipgloss.Top, name, AmountStyle.Render(amount))
	}

	resetStyle := ResetStyle
	switch {
	case m.focus == FocusReset:
		resetStyle = FocusedResetStyle
	case !v.CanReset:
		resetStyle = DisabledResetStyle
	}

	return OutputPanelStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		line("Tip Amount", v.TipPerPerson),
		"",
		line("Total", v.TotalPerPerson),
		resetStyle.Render("RESET"),
	))
}

// Run starts the terminal form and blocks until the user quits
func Run() error {
	_, err := tea.NewProgram(New(), tea.WithAltScreen()).Run()
	return err
}
