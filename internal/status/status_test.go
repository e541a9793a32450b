package status

import (
	"os"
	"testing"
	"time"

	"github.com/bjornsen/mouselock/internal/models"
)

func TestWriteReadClear(t *testing.T) {
	t.Cleanup(func() { Clear() })

	st := models.LockStatus{
		PID:   os.Getpid(),
		State: models.LockStateLocked,
		Monitor: models.Monitor{
			Index: 1,
			Rect:  models.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080},
		},
		StartTime: time.Now().Truncate(time.Second),
	}

	if err := Write(st); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, ok, err := Read()
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !ok {
		t.Fatal("expected a status file to exist")
	}
	if got.PID != st.PID {
		t.Errorf("expected PID %d, got %d", st.PID, got.PID)
	}
	if got.State != models.LockStateLocked {
		t.Errorf("expected state %q, got %q", models.LockStateLocked, got.State)
	}
	if got.Monitor.Rect != st.Monitor.Rect {
		t.Errorf("expected rect %v, got %v", st.Monitor.Rect, got.Monitor.Rect)
	}

	if !Active(got) {
		t.Error("expected our own PID to read as active")
	}

	if err := Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, ok, _ := Read(); ok {
		t.Error("expected no status file after Clear")
	}
}

func TestClear_MissingFile(t *testing.T) {
	Clear()
	if err := Clear(); err != nil {
		t.Errorf("expected clearing a missing file to succeed, got %v", err)
	}
}

func TestActive_BadPID(t *testing.T) {
	if Active(models.LockStatus{PID: 0}) {
		t.Error("expected PID 0 to read as inactive")
	}
	if Active(models.LockStatus{PID: -1}) {
		t.Error("expected a negative PID to read as inactive")
	}
}
