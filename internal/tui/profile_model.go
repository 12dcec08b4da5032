package tui

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/healthcalc/internal/health"
)

// ProfileState represents the current state of the profile editor.
type ProfileState int

const (
	// ProfileStateEditing indicates the user is browsing or editing fields.
	ProfileStateEditing ProfileState = iota
	// ProfileStateCalculating indicates an assessment is in progress.
	ProfileStateCalculating
	// ProfileStateQuitting indicates the application is exiting.
	ProfileStateQuitting
)

// Editable profile fields, in display order.
const (
	FieldUnits    = "Units"
	FieldWeight   = "Weight"
	FieldHeight   = "Height"
	FieldAge      = "Age"
	FieldSex      = "Sex"
	FieldActivity = "Activity"
	FieldGoal     = "Goal"
)

// profileFields lists the editable fields in display order.
//
//nolint:gochecknoglobals // Read-only field order.
var profileFields = []string{
	FieldUnits, FieldWeight, FieldHeight, FieldAge, FieldSex, FieldActivity, FieldGoal,
}

// Default dimensions for the profile editor.
const (
	profileDefaultWidth  = 80
	profileDefaultHeight = 30
	categoryTableHeight  = 10
	fieldNameWidth       = 12
)

// AssessFunc computes a report for a profile.
type AssessFunc func(health.Profile) (health.Report, error)

// profileAssessedMsg is sent when an assessment completes.
type profileAssessedMsg struct {
	report health.Report
	err    error
}

// ProfileModel is the Bubble Tea model for the interactive profile editor.
type ProfileModel struct {
	profile health.Profile

	focusedRow int
	editMode   bool
	editBuffer string
	fieldErr   error

	report *health.Report
	err    error

	categories     table.Model
	showCategories bool

	state   ProfileState
	loading bool

	width  int
	height int

	assessFn AssessFunc
}

// NewProfileModel creates a ProfileModel for p. The report is computed on
// Init with assessFn; a nil assessFn validates and then calls health.Assess.
func NewProfileModel(p health.Profile, assessFn AssessFunc) *ProfileModel {
	if assessFn == nil {
		assessFn = ValidateAndAssess
	}
	return &ProfileModel{
		profile:    p,
		assessFn:   assessFn,
		categories: NewCategoryTable(nil, categoryTableHeight),
		state:      ProfileStateEditing,
		width:      profileDefaultWidth,
		height:     profileDefaultHeight,
	}
}

// ValidateAndAssess range-checks p before assessing it.
func ValidateAndAssess(p health.Profile) (health.Report, error) {
	if err := p.Validate(); err != nil {
		return health.Report{}, err
	}
	return health.Assess(p)
}

// Profile returns the profile as currently edited.
func (m *ProfileModel) Profile() health.Profile {
	return m.profile
}

// Report returns the latest report, or nil if the last assessment failed.
func (m *ProfileModel) Report() *health.Report {
	return m.report
}

// Init starts the first assessment.
func (m *ProfileModel) Init() tea.Cmd {
	return m.triggerAssessment()
}

// Update handles messages and updates the model state.
func (m *ProfileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case profileAssessedMsg:
		return m.handleAssessed(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

// handleKeyMsg processes keyboard input.
//
//nolint:exhaustive // Only handling relevant key types for navigation.
func (m *ProfileModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editMode {
		return m.handleEditModeKey(msg)
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		m.state = ProfileStateQuitting
		return m, tea.Quit

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			m.state = ProfileStateQuitting
			return m, tea.Quit
		case "c":
			m.showCategories = !m.showCategories
		}
		return m, nil

	case tea.KeyUp:
		if m.focusedRow > 0 {
			m.focusedRow--
		}
		return m, nil

	case tea.KeyDown:
		if m.focusedRow < len(profileFields)-1 {
			m.focusedRow++
		}
		return m, nil

	case tea.KeyLeft:
		return m, m.cycleField(-1)

	case tea.KeyRight:
		return m, m.cycleField(1)

	case tea.KeyEnter:
		if isChoiceField(profileFields[m.focusedRow]) {
			return m, m.cycleField(1)
		}
		m.editMode = true
		m.fieldErr = nil
		m.editBuffer = m.fieldValue(profileFields[m.focusedRow])
		return m, nil
	}

	return m, nil
}

// handleEditModeKey processes keyboard input while editing a numeric field.
//
//nolint:exhaustive // Only handling relevant key types for text editing.
func (m *ProfileModel) handleEditModeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		field := profileFields[m.focusedRow]
		if err := m.setField(field, m.editBuffer); err != nil {
			m.fieldErr = err
			return m, nil
		}
		m.editMode = false
		m.editBuffer = ""
		m.fieldErr = nil
		return m, m.triggerAssessment()

	case tea.KeyEsc:
		m.editMode = false
		m.editBuffer = ""
		m.fieldErr = nil
		return m, nil

	case tea.KeyBackspace:
		runes := []rune(m.editBuffer)
		if len(runes) > 0 {
			m.editBuffer = string(runes[:len(runes)-1])
		}
		return m, nil

	case tea.KeyRunes:
		m.editBuffer += string(msg.Runes)
		return m, nil
	}

	return m, nil
}

func isChoiceField(field string) bool {
	switch field {
	case FieldUnits, FieldSex, FieldActivity, FieldGoal:
		return true
	default:
		return false
	}
}

// cycleField steps a choice field by delta and reassesses. Numeric fields
// are left alone.
func (m *ProfileModel) cycleField(delta int) tea.Cmd {
	switch profileFields[m.focusedRow] {
	case FieldUnits:
		// Switching units converts the measurements so the person stays the same.
		if m.profile.Units == health.Metric {
			m.profile.BiometricInput = roundMeasurements(health.ToImperial(m.profile.BiometricInput))
		} else {
			m.profile.BiometricInput = roundMeasurements(health.ToMetric(m.profile.BiometricInput))
		}
	case FieldSex:
		if m.profile.Sex == health.Male {
			m.profile.Sex = health.Female
		} else {
			m.profile.Sex = health.Male
		}
	case FieldActivity:
		m.profile.Activity = step(health.AllActivityLevels(), m.profile.Activity, delta)
	case FieldGoal:
		m.profile.Goal = step(health.AllGoals(), m.profile.Goal, delta)
	default:
		return nil
	}
	return m.triggerAssessment()
}

// step returns the element delta positions after cur in values, wrapping
// around. A cur missing from values starts from the first element.
func step[T comparable](values []T, cur T, delta int) T {
	idx := 0
	for i, v := range values {
		if v == cur {
			idx = i
			break
		}
	}
	n := len(values)
	return values[((idx+delta)%n+n)%n]
}

func roundMeasurements(in health.BiometricInput) health.BiometricInput {
	in.Weight = roundTenth(in.Weight)
	in.Height = roundTenth(in.Height)
	return in
}

func roundTenth(v float64) float64 {
	return math.Round(v*10) / 10 //nolint:mnd // One decimal place.
}

// setField parses raw into the named numeric field.
func (m *ProfileModel) setField(field, raw string) error {
	raw = strings.TrimSpace(raw)
	switch field {
	case FieldWeight, FieldHeight:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%s must be a number", strings.ToLower(field))
		}
		if field == FieldWeight {
			m.profile.Weight = v
		} else {
			m.profile.Height = v
		}
	case FieldAge:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return errors.New("age must be a whole number")
		}
		m.profile.Age = v
	default:
		return fmt.Errorf("%s is not editable as text", field)
	}
	return nil
}

// fieldValue returns the display value of the named field.
func (m *ProfileModel) fieldValue(field string) string {
	p := m.profile
	switch field {
	case FieldUnits:
		return p.Units.String()
	case FieldWeight:
		return strconv.FormatFloat(p.Weight, 'f', -1, 64)
	case FieldHeight:
		return strconv.FormatFloat(p.Height, 'f', -1, 64)
	case FieldAge:
		return strconv.Itoa(p.Age)
	case FieldSex:
		return p.Sex.String()
	case FieldActivity:
		return p.Activity.String()
	case FieldGoal:
		return p.Goal.String()
	default:
		return ""
	}
}

// fieldUnit returns the unit suffix of the named field.
func (m *ProfileModel) fieldUnit(field string) string {
	switch field {
	case FieldWeight:
		return m.profile.Units.WeightUnit()
	case FieldHeight:
		return m.profile.Units.HeightUnit()
	case FieldAge:
		return "years"
	default:
		return ""
	}
}

// triggerAssessment creates a command that assesses the current profile.
func (m *ProfileModel) triggerAssessment() tea.Cmd {
	m.loading = true
	m.state = ProfileStateCalculating

	// Capture values before the command runs outside the update loop.
	profile := m.profile
	assessFn := m.assessFn

	return func() tea.Msg {
		report, err := assessFn(profile)
		return profileAssessedMsg{report: report, err: err}
	}
}

// handleAssessed applies the result of an assessment.
func (m *ProfileModel) handleAssessed(msg profileAssessedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	m.state = ProfileStateEditing

	if msg.err != nil {
		m.err = msg.err
		m.report = nil
		return m, nil
	}

	m.err = nil
	report := msg.report
	m.report = &report
	m.categories.SetCursor(int(report.BMI.Category))
	return m, nil
}

// View renders the current view.
func (m *ProfileModel) View() string {
	if m.state == ProfileStateQuitting {
		return ""
	}

	var sb strings.Builder

	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorHeader).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	sb.WriteString(title.Render("Health Calculator"))
	sb.WriteString("\n\n")

	sb.WriteString(m.renderFields())
	sb.WriteString("\n")

	switch {
	case m.loading:
		sb.WriteString(lipgloss.NewStyle().Foreground(ColorSpinner).Bold(true).Render("Calculating..."))
	case m.err != nil:
		sb.WriteString(RenderErrorView("", m.err))
	case m.report != nil:
		sb.WriteString(RenderReportView(*m.report, m.width))
	}
	sb.WriteString("\n")

	if m.showCategories {
		sb.WriteString("\n")
		sb.WriteString(m.categories.View())
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(RenderProfileHelp(m.editMode))

	return sb.String()
}

// renderFields renders the editable field list.
func (m *ProfileModel) renderFields() string {
	var sb strings.Builder

	keyStyle := lipgloss.NewStyle().Foreground(ColorLabel)
	valueStyle := lipgloss.NewStyle().Foreground(ColorValue)
	editStyle := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	for i, field := range profileFields {
		focused := i == m.focusedRow
		switch {
		case focused && m.editMode:
			sb.WriteString("> ")
		case focused:
			sb.WriteString(IconPointer + " ")
		default:
			sb.WriteString("  ")
		}

		sb.WriteString(keyStyle.Render(fmt.Sprintf("%-*s", fieldNameWidth, field)))

		if focused && m.editMode {
			sb.WriteString(editStyle.Render(m.editBuffer + "▌"))
		} else {
			value := m.fieldValue(field)
			if unit := m.fieldUnit(field); unit != "" {
				value += " " + unit
			}
			sb.WriteString(valueStyle.Render(value))
		}

		if focused && m.fieldErr != nil {
			sb.WriteString("  ")
			sb.WriteString(ErrorStyle.Render(m.fieldErr.Error()))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// RenderProfileHelp renders the keyboard shortcut help text.
func RenderProfileHelp(editing bool) string {
	helpStyle := lipgloss.NewStyle().Foreground(ColorMuted)

	shortcuts := []string{"↑/↓: Navigate", "Enter: Edit", "←/→: Change choice", "c: Categories", "q: Quit"}
	if editing {
		shortcuts = []string{"Enter: Apply", "Esc: Cancel"}
	}

	return helpStyle.Render(strings.Join(shortcuts, " | "))
}
