//go:build !windows

package monitor

import "github.com/bjornsen/mouselock/internal/models"

func enumerate() ([]models.Monitor, error) {
	return nil, ErrUnsupported
}

// CursorPosition is unavailable off Windows; the locker never runs here.
func CursorPosition() (models.CursorPosition, error) {
	return models.CursorPosition{}, ErrUnsupported
}
