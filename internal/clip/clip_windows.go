//go:build windows

package clip

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/bjornsen/mouselock/internal/models"
)

var (
	user32         = windows.NewLazySystemDLL("user32.dll")
	procClipCursor = user32.NewProc("ClipCursor")
)

type winRect struct {
	Left, Top, Right, Bottom int32
}

type cursorClipper struct{}

func newClipper() Clipper {
	return cursorClipper{}
}

func (cursorClipper) Apply(r models.Rect) error {
	rc := winRect{Left: r.Left, Top: r.Top, Right: r.Right, Bottom: r.Bottom}
	ret, _, err := procClipCursor.Call(uintptr(unsafe.Pointer(&rc)))
	if ret == 0 {
		return fmt.Errorf("ClipCursor failed: %w", err)
	}
	return nil
}

func (cursorClipper) Clear() error {
	// ClipCursor(NULL) frees the cursor to the whole virtual desktop
	ret, _, err := procClipCursor.Call(0)
	if ret == 0 {
		return fmt.Errorf("ClipCursor(NULL) failed: %w", err)
	}
	return nil
}
