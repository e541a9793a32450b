package models

import "fmt"

// Rect is a rectangle in virtual-desktop coordinates.
// Coordinates can be negative (e.g. a monitor left of the primary).
type Rect struct {
	Left   int32 `json:"left"`
	Top    int32 `json:"top"`
	Right  int32 `json:"right"`
	Bottom int32 `json:"bottom"`
}

// Width returns the rectangle width in pixels.
func (r Rect) Width() int32 {
	return r.Right - r.Left
}

// Height returns the rectangle height in pixels.
func (r Rect) Height() int32 {
	return r.Bottom - r.Top
}

// Contains reports whether the point lies inside the rectangle.
// The right and bottom edges are exclusive, matching the Win32 convention.
func (r Rect) Contains(p CursorPosition) bool {
	return p.X >= r.Left && p.X < r.Right && p.Y >= r.Top && p.Y < r.Bottom
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d) to (%d,%d)", r.Left, r.Top, r.Right, r.Bottom)
}

// CursorPosition is a cursor location in virtual-desktop coordinates.
type CursorPosition struct {
	X int32 `json:"x"`
	Y int32 `json:"y"`
}

// Monitor describes a display and its bounds.
type Monitor struct {
	Index   int    `json:"index"` // 1-based, ordered left to right
	Rect    Rect   `json:"rect"`
	Device  string `json:"device,omitempty"`
	Primary bool   `json:"primary"`
}

// ContainsCursor reports whether the cursor position is on this monitor.
func (m Monitor) ContainsCursor(pos CursorPosition) bool {
	return m.Rect.Contains(pos)
}

// Label returns a human-readable description for listings and menus.
func (m Monitor) Label() string {
	primary := ""
	if m.Primary {
		primary = " [primary]"
	}
	return fmt.Sprintf("Monitor %d: %dx%d at (%d,%d)%s",
		m.Index, m.Rect.Width(), m.Rect.Height(), m.Rect.Left, m.Rect.Top, primary)
}
