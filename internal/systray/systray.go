//go:build windows || cgo

// Package systray runs the tray icon that mirrors the locker state and
// offers pause/resume, retargeting and quit.
package systray

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"runtime"

	"fyne.io/systray"
	"github.com/sergeymakinen/go-ico"

	"github.com/bjornsen/mouselock/internal/models"
)

// TrayState mirrors the locker state for icon and tooltip selection.
type TrayState int

const (
	StateLocked TrayState = iota
	StateReleased
	StatePaused
)

// Manager handles the system tray icon and menu
type Manager struct {
	monitors []models.Monitor
	target   models.Monitor

	// Menu items
	mStatus   *systray.MenuItem
	mPause    *systray.MenuItem
	mMonitors []*systray.MenuItem
	mQuit     *systray.MenuItem

	// Channels for communication with the lock loop
	pauseChan  chan bool // true = pause, false = resume
	targetChan chan models.Monitor
	quitChan   chan struct{}

	currentState TrayState
	paused       bool

	// Icons per state
	iconLocked   []byte
	iconReleased []byte
	iconPaused   []byte
}

// New creates a new systray manager for the given monitor set.
func New(monitors []models.Monitor, target models.Monitor) *Manager {
	m := &Manager{
		monitors:   monitors,
		target:     target,
		pauseChan:  make(chan bool, 1),
		targetChan: make(chan models.Monitor, 1),
		quitChan:   make(chan struct{}, 1),
	}
	m.renderIcons()
	return m
}

// PauseChan signals pause (true) and resume (false) requests.
func (m *Manager) PauseChan() <-chan bool {
	return m.pauseChan
}

// TargetChan signals monitor retarget requests.
func (m *Manager) TargetChan() <-chan models.Monitor {
	return m.targetChan
}

// QuitChan signals that the user chose Quit.
func (m *Manager) QuitChan() <-chan struct{} {
	return m.quitChan
}

// OnReady builds the menu once the tray is available.
func (m *Manager) OnReady() {
	systray.SetIcon(m.iconLocked)
	systray.SetTitle("mouselock")
	systray.SetTooltip("Cursor locked to " + m.target.Label())

	m.mStatus = systray.AddMenuItem("Locked: "+m.target.Label(), "Current state")
	m.mStatus.Disable()
	systray.AddSeparator()

	m.mPause = systray.AddMenuItem("Pause", "Suspend the lock")
	systray.AddSeparator()

	for _, mon := range m.monitors {
		item := systray.AddMenuItem(mon.Label(), "Lock to this monitor")
		m.mMonitors = append(m.mMonitors, item)
		// One forwarder per item: systray menu items only expose
		// individual click channels
		go func(mon models.Monitor, item *systray.MenuItem) {
			for range item.ClickedCh {
				select {
				case m.targetChan <- mon:
				default:
				}
			}
		}(mon, item)
	}
	systray.AddSeparator()

	m.mQuit = systray.AddMenuItem("Quit", "Unlock and exit")

	go m.handleClicks()
}

// OnExit is called when the tray shuts down.
func (m *Manager) OnExit() {}

func (m *Manager) handleClicks() {
	for {
		select {
		case <-m.mPause.ClickedCh:
			m.paused = !m.paused
			select {
			case m.pauseChan <- m.paused:
			default:
			}
		case <-m.mQuit.ClickedCh:
			select {
			case m.quitChan <- struct{}{}:
			default:
			}
			return
		}
	}
}

// SetState updates icon, tooltip and menu to reflect the locker state.
// Safe to call from the lock loop goroutine.
func (m *Manager) SetState(state TrayState, target models.Monitor) {
	m.currentState = state
	m.target = target

	switch state {
	case StateLocked:
		systray.SetIcon(m.iconLocked)
		systray.SetTooltip("Cursor locked to " + target.Label())
		m.setStatus("Locked: " + target.Label())
		m.setPauseLabel("Pause")
		m.paused = false
	case StateReleased:
		systray.SetIcon(m.iconReleased)
		systray.SetTooltip("Released - re-locks on return to " + target.Label())
		m.setStatus("Released (returns to " + target.Label() + ")")
	case StatePaused:
		systray.SetIcon(m.iconPaused)
		systray.SetTooltip("Lock paused")
		m.setStatus("Paused")
		m.setPauseLabel("Resume")
	}
}

func (m *Manager) setStatus(text string) {
	if m.mStatus != nil {
		m.mStatus.SetTitle(text)
	}
}

func (m *Manager) setPauseLabel(text string) {
	if m.mPause != nil {
		m.mPause.SetTitle(text)
	}
}

// renderIcons draws the three state icons: a filled square with a
// state color inside a light border.
func (m *Manager) renderIcons() {
	m.iconLocked = renderIcon(color.RGBA{R: 0x2e, G: 0xcc, B: 0x71, A: 0xff})   // green
	m.iconReleased = renderIcon(color.RGBA{R: 0xf3, G: 0x9c, B: 0x12, A: 0xff}) // amber
	m.iconPaused = renderIcon(color.RGBA{R: 0x95, G: 0xa5, B: 0xa6, A: 0xff})   // gray
}

func renderIcon(fill color.RGBA) []byte {
	const size = 32
	border := color.RGBA{R: 0xec, G: 0xf0, B: 0xf1, A: 0xff}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			switch {
			case x < 2 || y < 2 || x >= size-2 || y >= size-2:
				img.Set(x, y, border)
			default:
				img.Set(x, y, fill)
			}
		}
	}

	var buf bytes.Buffer
	if runtime.GOOS == "windows" {
		// The Windows tray wants ICO data
		if err := ico.Encode(&buf, img); err != nil {
			return nil
		}
	} else {
		if err := png.Encode(&buf, img); err != nil {
			return nil
		}
	}
	return buf.Bytes()
}

// Run starts the tray loop. Blocks until systray.Quit is called.
func Run(m *Manager) {
	systray.Run(m.OnReady, m.OnExit)
}

// Quit stops the tray loop.
func Quit() {
	systray.Quit()
}

// Available reports whether this build carries a tray implementation.
func Available() bool {
	return true
}
