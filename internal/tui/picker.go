// Package tui provides the interactive monitor picker shown at startup
// when no monitor was selected on the command line.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bjornsen/mouselock/internal/models"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")).MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("170")).Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1)
)

// PickerModel lets the user choose the monitor to lock to.
type PickerModel struct {
	monitors     []models.Monitor
	cursorOn     int // 1-based index of the monitor under the OS cursor, 0 if unknown
	selectedItem int
	choice       *models.Monitor
	width        int
	height       int
}

// NewPickerModel creates a picker over the given monitors. cursorOn is
// the 1-based index of the monitor currently containing the cursor; it
// becomes the preselected entry.
func NewPickerModel(monitors []models.Monitor, cursorOn int) *PickerModel {
	m := &PickerModel{
		monitors: monitors,
		cursorOn: cursorOn,
	}
	for i, mon := range monitors {
		if mon.Index == cursorOn {
			m.selectedItem = i
		}
	}
	return m
}

// Init initializes the picker
func (m *PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker
func (m *PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch {
		// Cancel
		case key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"))):
			return m, tea.Quit

		// Navigate up
		case key.Matches(msg, key.NewBinding(key.WithKeys("up", "k"))):
			m.selectedItem--
			if m.selectedItem < 0 {
				m.selectedItem = len(m.monitors) - 1
			}
			return m, nil

		// Navigate down
		case key.Matches(msg, key.NewBinding(key.WithKeys("down", "j"))):
			m.selectedItem++
			if m.selectedItem >= len(m.monitors) {
				m.selectedItem = 0
			}
			return m, nil

		// Select highlighted monitor
		case key.Matches(msg, key.NewBinding(key.WithKeys("enter", " "))):
			if m.selectedItem >= 0 && m.selectedItem < len(m.monitors) {
				choice := m.monitors[m.selectedItem]
				m.choice = &choice
			}
			return m, tea.Quit
		}

		// Digits select a monitor by its 1-based index directly
		if s := msg.String(); len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			idx := int(s[0] - '0')
			for _, mon := range m.monitors {
				if mon.Index == idx {
					choice := mon
					m.choice = &choice
					return m, tea.Quit
				}
			}
		}
	}

	return m, nil
}

// View renders the picker
func (m *PickerModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Select the monitor to lock the cursor to"))
	b.WriteString("\n")

	for i, mon := range m.monitors {
		line := mon.Label()
		if mon.Index == m.cursorOn {
			line += cursorStyle.Render(" (cursor)")
		}

		if i == m.selectedItem {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("up/down: navigate - 1-9: pick directly - enter: confirm - q: cancel"))
	b.WriteString("\n")

	return b.String()
}

// Choice returns the selected monitor, if any.
func (m *PickerModel) Choice() (models.Monitor, bool) {
	if m.choice == nil {
		return models.Monitor{}, false
	}
	return *m.choice, true
}

// Pick runs the picker and returns the chosen monitor. ok is false when
// the user cancelled.
func Pick(monitors []models.Monitor, cursorOn int) (models.Monitor, bool, error) {
	p := tea.NewProgram(NewPickerModel(monitors, cursorOn))

	final, err := p.Run()
	if err != nil {
		return models.Monitor{}, false, fmt.Errorf("monitor picker failed: %w", err)
	}

	picker, ok := final.(*PickerModel)
	if !ok {
		return models.Monitor{}, false, fmt.Errorf("unexpected picker model type")
	}

	choice, ok := picker.Choice()
	return choice, ok, nil
}
