// Package input samples the global keyboard state for the two hotkeys
// the locker reacts to. State is polled, not event-subscribed, so a
// missed tick costs nothing and no hook installation is required.
package input

// State is a snapshot of the hotkey state at one poll tick.
type State struct {
	Release bool // Ctrl (either side) or left Alt: arm the edge-triggered release
	Switch  bool // F11: retarget the lock to the monitor under the cursor
}

// Sampler reads the global keyboard state without consuming events.
type Sampler interface {
	Sample() State
}

// New returns the platform keyboard sampler.
func New() Sampler {
	return newSampler()
}
