//go:build !windows && !cgo

package systray

import (
	"fmt"

	"github.com/bjornsen/mouselock/internal/models"
)

// Stub implementation for builds without a tray backend.

type TrayState int

const (
	StateLocked TrayState = iota
	StateReleased
	StatePaused
)

type Manager struct{}

func New(monitors []models.Monitor, target models.Monitor) *Manager {
	return &Manager{}
}

func (m *Manager) PauseChan() <-chan bool             { return make(chan bool) }
func (m *Manager) TargetChan() <-chan models.Monitor  { return make(chan models.Monitor) }
func (m *Manager) QuitChan() <-chan struct{}          { return make(chan struct{}) }
func (m *Manager) OnReady()                           {}
func (m *Manager) OnExit()                            {}
func (m *Manager) SetState(TrayState, models.Monitor) {}

func Run(m *Manager) {
	fmt.Println("System tray not available in this build.")
}

func Quit() {}

func Available() bool {
	return false
}
