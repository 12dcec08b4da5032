package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/healthcalc/internal/health"
)

func newTestProfile() health.Profile {
	return health.Profile{
		BiometricInput: health.BiometricInput{
			Weight: 70, Height: 170, Age: 25, Sex: health.Male, Units: health.Metric,
		},
		Activity: health.Sedentary,
		Goal:     health.MaintainWeight,
	}
}

// runCmd executes cmd and feeds its message back into the model.
func runCmd(t *testing.T, m *ProfileModel, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd)
	_, next := m.Update(cmd())
	assert.Nil(t, next)
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func TestProfileModel_InitAssesses(t *testing.T) {
	m := NewProfileModel(newTestProfile(), nil)
	cmd := m.Init()
	assert.True(t, m.loading)
	assert.Equal(t, ProfileStateCalculating, m.state)

	runCmd(t, m, cmd)

	require.NotNil(t, m.Report())
	assert.InDelta(t, 24.2, m.Report().BMI.Value, 1e-9)
	assert.Equal(t, 1971, m.Report().Calories.DailyCalories)
	assert.Equal(t, int(health.NormalWeight), m.categories.Cursor())
	assert.False(t, m.loading)
	assert.Equal(t, ProfileStateEditing, m.state)
}

func TestProfileModel_Navigation(t *testing.T) {
	m := NewProfileModel(newTestProfile(), nil)

	m.Update(key(tea.KeyUp))
	assert.Equal(t, 0, m.focusedRow)

	for range profileFields {
		m.Update(key(tea.KeyDown))
	}
	assert.Equal(t, len(profileFields)-1, m.focusedRow)
}

func TestProfileModel_EditWeight(t *testing.T) {
	m := NewProfileModel(newTestProfile(), nil)
	runCmd(t, m, m.Init())

	m.Update(key(tea.KeyDown)) // Weight
	m.Update(key(tea.KeyEnter))
	require.True(t, m.editMode)
	assert.Equal(t, "70", m.editBuffer)

	m.Update(key(tea.KeyBackspace))
	m.Update(key(tea.KeyBackspace))
	m.Update(runes("80"))
	_, cmd := m.Update(key(tea.KeyEnter))
	assert.False(t, m.editMode)
	runCmd(t, m, cmd)

	assert.InDelta(t, 80, m.Profile().Weight, 1e-9)
	require.NotNil(t, m.Report())
	assert.InDelta(t, 27.7, m.Report().BMI.Value, 1e-9)
	assert.Equal(t, health.Overweight, m.Report().BMI.Category)
}

func TestProfileModel_EditRejectsNonNumbers(t *testing.T) {
	m := NewProfileModel(newTestProfile(), nil)
	m.focusedRow = 3 // Age
	m.Update(key(tea.KeyEnter))
	m.editBuffer = "abc"

	_, cmd := m.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd)
	assert.True(t, m.editMode)
	require.Error(t, m.fieldErr)
	assert.Contains(t, m.View(), "age must be a whole number")

	m.Update(key(tea.KeyEsc))
	assert.False(t, m.editMode)
	assert.NoError(t, m.fieldErr)
	assert.Equal(t, 25, m.Profile().Age)
}

func TestProfileModel_ValidationErrorShown(t *testing.T) {
	m := NewProfileModel(newTestProfile(), nil)
	m.focusedRow = 3 // Age
	m.Update(key(tea.KeyEnter))
	m.editBuffer = "0"

	_, cmd := m.Update(key(tea.KeyEnter))
	runCmd(t, m, cmd)

	assert.Nil(t, m.Report())
	require.Error(t, m.err)
	assert.ErrorIs(t, m.err, health.ErrOutOfRange)
}

func TestProfileModel_CycleChoices(t *testing.T) {
	m := NewProfileModel(newTestProfile(), nil)

	m.focusedRow = 4 // Sex
	m.Update(key(tea.KeyRight))
	assert.Equal(t, health.Female, m.Profile().Sex)

	m.focusedRow = 5 // Activity
	m.Update(key(tea.KeyLeft))
	assert.Equal(t, health.ExtremelyActive, m.Profile().Activity)
	m.Update(key(tea.KeyRight))
	assert.Equal(t, health.Sedentary, m.Profile().Activity)

	m.focusedRow = 6 // Goal
	m.Update(key(tea.KeyRight))
	assert.Equal(t, health.GainWeight, m.Profile().Goal)
	m.Update(key(tea.KeyLeft))
	m.Update(key(tea.KeyLeft))
	assert.Equal(t, health.LoseWeight, m.Profile().Goal)

	// Enter on a choice field cycles instead of opening the editor.
	_, cmd := m.Update(key(tea.KeyEnter))
	assert.NotNil(t, cmd)
	assert.False(t, m.editMode)
	assert.Equal(t, health.MaintainWeight, m.Profile().Goal)
}

func TestProfileModel_SwitchUnitsConverts(t *testing.T) {
	m := NewProfileModel(newTestProfile(), nil)

	_, cmd := m.Update(key(tea.KeyRight))
	runCmd(t, m, cmd)

	p := m.Profile()
	assert.Equal(t, health.Imperial, p.Units)
	assert.InDelta(t, 154.3, p.Weight, 1e-9)
	assert.InDelta(t, 66.9, p.Height, 1e-9)
	require.NotNil(t, m.Report())
	assert.Equal(t, health.NormalWeight, m.Report().BMI.Category)

	m.Update(key(tea.KeyLeft))
	assert.Equal(t, health.Metric, m.Profile().Units)
}

func TestProfileModel_CustomAssessFunc(t *testing.T) {
	wantErr := errors.New("backend down")
	m := NewProfileModel(newTestProfile(), func(health.Profile) (health.Report, error) {
		return health.Report{}, wantErr
	})

	runCmd(t, m, m.Init())
	assert.ErrorIs(t, m.err, wantErr)
	assert.Contains(t, m.View(), "backend down")
}

func TestProfileModel_ToggleCategoriesAndQuit(t *testing.T) {
	m := NewProfileModel(newTestProfile(), nil)
	runCmd(t, m, m.Init())

	assert.NotContains(t, m.View(), "Obesity Class III")
	m.Update(runes("c"))
	assert.Contains(t, m.View(), "Obesity Class III")

	_, cmd := m.Update(runes("q"))
	assert.NotNil(t, cmd)
	assert.Equal(t, ProfileStateQuitting, m.state)
	assert.Empty(t, m.View())
}

func TestProfileModel_WindowSize(t *testing.T) {
	m := NewProfileModel(newTestProfile(), nil)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestRenderProfileHelp(t *testing.T) {
	assert.Contains(t, RenderProfileHelp(false), "q: Quit")
	assert.Contains(t, RenderProfileHelp(true), "Esc: Cancel")
}
