package models

import "time"

// LockState names the clip condition of a running locker.
type LockState string

const (
	LockStateLocked   LockState = "locked"
	LockStateReleased LockState = "released"
	LockStatePaused   LockState = "paused"
)

// LockStatus is the runtime status a locker persists to the status file
// so that other commands (status, systray) can inspect it.
type LockStatus struct {
	PID       int       `json:"pid"`
	State     LockState `json:"state"`
	Monitor   Monitor   `json:"monitor"`
	StartTime time.Time `json:"start_time"`
}
