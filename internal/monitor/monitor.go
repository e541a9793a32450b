// Package monitor enumerates displays and reports the cursor position,
// both in virtual-desktop coordinates.
package monitor

import (
	"errors"
	"sort"

	"github.com/bjornsen/mouselock/internal/geometry"
	"github.com/bjornsen/mouselock/internal/models"
)

// ErrNoMonitors is returned when enumeration yields no displays.
var ErrNoMonitors = errors.New("no monitors detected")

// ErrUnsupported is returned by the stub implementation on platforms
// without display enumeration support.
var ErrUnsupported = errors.New("monitor queries are only supported on windows")

// List returns all active monitors, ordered left to right (ties broken
// top to bottom) with 1-based indices assigned after sorting.
func List() ([]models.Monitor, error) {
	monitors, err := enumerate()
	if err != nil {
		return nil, err
	}
	if len(monitors) == 0 {
		return nil, ErrNoMonitors
	}

	sortAndIndex(monitors)
	return monitors, nil
}

// CursorMonitor returns the monitor currently containing the cursor.
func CursorMonitor(monitors []models.Monitor) (models.Monitor, error) {
	pos, err := CursorPosition()
	if err != nil {
		return models.Monitor{}, err
	}

	m, ok := geometry.Locate(pos, monitors)
	if !ok {
		return models.Monitor{}, ErrNoMonitors
	}
	return m, nil
}

// ByIndex returns the monitor matching the 1-based index.
func ByIndex(monitors []models.Monitor, idx int) (models.Monitor, bool) {
	for _, m := range monitors {
		if m.Index == idx {
			return m, true
		}
	}
	return models.Monitor{}, false
}

func sortAndIndex(monitors []models.Monitor) {
	sort.SliceStable(monitors, func(i, j int) bool {
		if monitors[i].Rect.Left != monitors[j].Rect.Left {
			return monitors[i].Rect.Left < monitors[j].Rect.Left
		}
		return monitors[i].Rect.Top < monitors[j].Rect.Top
	})
	for i := range monitors {
		monitors[i].Index = i + 1
	}
}
