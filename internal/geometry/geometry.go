// Package geometry answers the two questions the locker asks every tick:
// which monitor holds the cursor, and is the cursor at a rectangle edge.
package geometry

import "github.com/bjornsen/mouselock/internal/models"

// Locate returns the monitor containing pt. A point that lies in no
// rectangle (possible only for transient cursor readings during display
// reconfiguration) resolves to the nearest monitor by clamped distance.
// ok is false only for an empty monitor list.
func Locate(pt models.CursorPosition, monitors []models.Monitor) (models.Monitor, bool) {
	if len(monitors) == 0 {
		return models.Monitor{}, false
	}

	for _, m := range monitors {
		if m.Rect.Contains(pt) {
			return m, true
		}
	}

	// Fallback: nearest rectangle by squared distance to the clamped point
	best := monitors[0]
	bestDist := clampedDistance(pt, best.Rect)
	for _, m := range monitors[1:] {
		if d := clampedDistance(pt, m.Rect); d < bestDist {
			best = m
			bestDist = d
		}
	}
	return best, true
}

// AtEdge reports whether pt lies within threshold pixels of any of the
// four sides of r. While the cursor is clipped to r it cannot overshoot
// the rectangle, so a 1-pixel threshold is sufficient at a 16ms poll
// interval; the threshold stays configurable for slower intervals.
func AtEdge(pt models.CursorPosition, r models.Rect, threshold int32) bool {
	return pt.X <= r.Left+threshold || pt.X >= r.Right-threshold ||
		pt.Y <= r.Top+threshold || pt.Y >= r.Bottom-threshold
}

// clampedDistance returns the squared distance from pt to the closest
// point inside r.
func clampedDistance(pt models.CursorPosition, r models.Rect) int64 {
	cx, cy := pt.X, pt.Y
	if cx < r.Left {
		cx = r.Left
	} else if cx > r.Right-1 {
		cx = r.Right - 1
	}
	if cy < r.Top {
		cy = r.Top
	} else if cy > r.Bottom-1 {
		cy = r.Bottom - 1
	}

	dx := int64(pt.X - cx)
	dy := int64(pt.Y - cy)
	return dx*dx + dy*dy
}
