// Package notify sends desktop notifications and audible cues for lock
// transitions. Both can be disabled from flags or config.
package notify

import (
	"github.com/gen2brain/beeep"

	"github.com/bjornsen/mouselock/internal/models"
)

const appTitle = "Mouse Lock"

// Enabled gates desktop notifications.
var Enabled = true

// BeepEnabled gates audible cues.
var BeepEnabled = true

// Cue frequencies, a high tone for engaging and a low one for releasing
const (
	FreqLock    = 880
	FreqRelease = 554
)

// Send sends a desktop notification.
func Send(title, body string) error {
	if !Enabled {
		return nil
	}
	return beeep.Notify(title, body, "")
}

// Error sends an alert-level notification.
func Error(title, body string) error {
	if !Enabled {
		return nil
	}
	return beeep.Alert(title, body, "")
}

// Beep plays a short tone. Failures are ignored: the cue is best-effort
// and the console output carries the same information.
func Beep(freq float64) {
	if !BeepEnabled {
		return
	}
	_ = beeep.Beep(freq, 120)
}

// LockEngaged notifies that the cursor is confined to a monitor.
func LockEngaged(m models.Monitor) error {
	return Send(appTitle, "Locked to "+m.Label())
}

// LockReleased notifies that the confinement was lifted at the edge.
func LockReleased() error {
	return Send(appTitle, "Released - returning to the monitor re-locks")
}

// TargetChanged notifies that the lock moved to another monitor.
func TargetChanged(m models.Monitor) error {
	return Send(appTitle, "Now locked to "+m.Label())
}

// Paused notifies that the lock is suspended.
func Paused() error {
	return Send(appTitle, "Lock paused")
}
