package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bjornsen/mouselock/internal/models"
)

func pickerMonitors() []models.Monitor {
	return []models.Monitor{
		{Index: 1, Rect: models.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}, Primary: true},
		{Index: 2, Rect: models.Rect{Left: 1920, Top: 0, Right: 3840, Bottom: 1080}},
		{Index: 3, Rect: models.Rect{Left: 3840, Top: 0, Right: 5120, Bottom: 800}},
	}
}

func update(t *testing.T, m *PickerModel, msg tea.Msg) *PickerModel {
	t.Helper()
	model, _ := m.Update(msg)
	picker, ok := model.(*PickerModel)
	if !ok {
		t.Fatalf("Update returned unexpected model type %T", model)
	}
	return picker
}

func TestNewPickerModel_PreselectsCursorMonitor(t *testing.T) {
	m := NewPickerModel(pickerMonitors(), 2)

	if m.selectedItem != 1 {
		t.Errorf("expected selectedItem to be 1, got %d", m.selectedItem)
	}
}

func TestNewPickerModel_UnknownCursorMonitor(t *testing.T) {
	m := NewPickerModel(pickerMonitors(), 0)

	if m.selectedItem != 0 {
		t.Errorf("expected selectedItem to default to 0, got %d", m.selectedItem)
	}
}

func TestPickerModel_NavigationDown(t *testing.T) {
	m := NewPickerModel(pickerMonitors(), 1)

	for i := 0; i < 3; i++ {
		if m.selectedItem != i {
			t.Errorf("expected selectedItem to be %d, got %d", i, m.selectedItem)
		}
		m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}

	// Should wrap to 0
	if m.selectedItem != 0 {
		t.Errorf("expected selectedItem to wrap to 0, got %d", m.selectedItem)
	}
}

func TestPickerModel_NavigationUp(t *testing.T) {
	m := NewPickerModel(pickerMonitors(), 1)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})

	if m.selectedItem != 2 {
		t.Errorf("expected selectedItem to wrap to 2, got %d", m.selectedItem)
	}
}

func TestPickerModel_VimKeys(t *testing.T) {
	m := NewPickerModel(pickerMonitors(), 1)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	if m.selectedItem != 1 {
		t.Errorf("expected selectedItem to be 1 after 'j', got %d", m.selectedItem)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	if m.selectedItem != 0 {
		t.Errorf("expected selectedItem to be 0 after 'k', got %d", m.selectedItem)
	}
}

func TestPickerModel_EnterSelects(t *testing.T) {
	m := NewPickerModel(pickerMonitors(), 2)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	choice, ok := m.Choice()
	if !ok {
		t.Fatal("expected a choice after enter")
	}
	if choice.Index != 2 {
		t.Errorf("expected monitor 2, got %d", choice.Index)
	}
}

func TestPickerModel_DigitSelects(t *testing.T) {
	m := NewPickerModel(pickerMonitors(), 1)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})

	choice, ok := m.Choice()
	if !ok {
		t.Fatal("expected a choice after pressing 3")
	}
	if choice.Index != 3 {
		t.Errorf("expected monitor 3, got %d", choice.Index)
	}
}

func TestPickerModel_OutOfRangeDigitIgnored(t *testing.T) {
	m := NewPickerModel(pickerMonitors(), 1)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'7'}})

	if _, ok := m.Choice(); ok {
		t.Error("expected no choice for an out-of-range digit")
	}
}

func TestPickerModel_CancelLeavesNoChoice(t *testing.T) {
	m := NewPickerModel(pickerMonitors(), 1)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	if _, ok := m.Choice(); ok {
		t.Error("expected no choice after cancel")
	}
}

func TestPickerModel_ViewMarksCursorMonitor(t *testing.T) {
	m := NewPickerModel(pickerMonitors(), 2)

	view := m.View()

	if !strings.Contains(view, "(cursor)") {
		t.Error("expected the view to mark the monitor under the cursor")
	}
	if !strings.Contains(view, "Monitor 1") || !strings.Contains(view, "Monitor 3") {
		t.Error("expected the view to list all monitors")
	}
}
