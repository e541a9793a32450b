//go:build windows

package monitor

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/bjornsen/mouselock/internal/models"
)

var (
	user32                  = windows.NewLazySystemDLL("user32.dll")
	procEnumDisplayMonitors = user32.NewProc("EnumDisplayMonitors")
	procGetMonitorInfoW     = user32.NewProc("GetMonitorInfoW")
	procGetCursorPos        = user32.NewProc("GetCursorPos")
)

const monitorinfofPrimary = 1

type winRect struct {
	Left, Top, Right, Bottom int32
}

type winPoint struct {
	X, Y int32
}

// MONITORINFOEXW; Device carries the display adapter name (e.g. \\.\DISPLAY1).
type monitorInfoEx struct {
	Size    uint32
	Monitor winRect
	Work    winRect
	Flags   uint32
	Device  [32]uint16
}

func enumerate() ([]models.Monitor, error) {
	var monitors []models.Monitor

	cb := syscall.NewCallback(func(hMonitor, hdc, lprcMonitor, lparam uintptr) uintptr {
		var mi monitorInfoEx
		mi.Size = uint32(unsafe.Sizeof(mi))

		ret, _, _ := procGetMonitorInfoW.Call(hMonitor, uintptr(unsafe.Pointer(&mi)))
		if ret != 0 {
			monitors = append(monitors, models.Monitor{
				Rect: models.Rect{
					Left:   mi.Monitor.Left,
					Top:    mi.Monitor.Top,
					Right:  mi.Monitor.Right,
					Bottom: mi.Monitor.Bottom,
				},
				Device:  windows.UTF16ToString(mi.Device[:]),
				Primary: mi.Flags&monitorinfofPrimary != 0,
			})
		}
		return 1 // continue enumeration
	})

	ret, _, err := procEnumDisplayMonitors.Call(0, 0, cb, 0)
	if ret == 0 {
		return nil, fmt.Errorf("EnumDisplayMonitors failed: %w", err)
	}
	return monitors, nil
}

// CursorPosition returns the cursor location in virtual-desktop coordinates.
func CursorPosition() (models.CursorPosition, error) {
	var pt winPoint
	ret, _, err := procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	if ret == 0 {
		return models.CursorPosition{}, fmt.Errorf("GetCursorPos failed: %w", err)
	}
	return models.CursorPosition{X: pt.X, Y: pt.Y}, nil
}
