// Package status persists the running locker's state to a file in the
// temp directory so the status command and the systray can inspect it.
package status

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/bjornsen/mouselock/internal/models"
)

// FileName is the status file written while a locker runs.
const FileName = "mouselock.status"

// FilePath returns the status file location.
func FilePath() string {
	return filepath.Join(os.TempDir(), FileName)
}

// Write records the current lock state.
func Write(st models.LockStatus) error {
	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(FilePath(), data, 0644)
}

// Read returns the recorded state. ok is false when no locker has
// written a status file.
func Read() (models.LockStatus, bool, error) {
	data, err := os.ReadFile(FilePath())
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models.LockStatus{}, false, nil
		}
		return models.LockStatus{}, false, err
	}

	var st models.LockStatus
	if err := json.Unmarshal(data, &st); err != nil {
		return models.LockStatus{}, false, err
	}
	return st, true, nil
}

// Clear removes the status file. A missing file is not an error: the
// locker clears on every exit path.
func Clear() error {
	err := os.Remove(FilePath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Active reports whether the recorded locker process still exists. A
// stale file left by a crashed instance reads as inactive.
func Active(st models.LockStatus) bool {
	if st.PID <= 0 {
		return false
	}
	if st.PID == os.Getpid() {
		return true
	}
	_, err := os.FindProcess(st.PID)
	return err == nil
}
