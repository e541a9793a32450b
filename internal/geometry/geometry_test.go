package geometry

import (
	"testing"

	"github.com/bjornsen/mouselock/internal/models"
)

var testMonitors = []models.Monitor{
	{Index: 1, Rect: models.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}, Primary: true},
	{Index: 2, Rect: models.Rect{Left: 1920, Top: 0, Right: 3840, Bottom: 1080}},
}

func TestLocate_Containing(t *testing.T) {
	tests := []struct {
		name string
		pt   models.CursorPosition
		want int
	}{
		{"center of first", models.CursorPosition{X: 960, Y: 540}, 1},
		{"last pixel of first", models.CursorPosition{X: 1919, Y: 1079}, 1},
		{"first pixel of second", models.CursorPosition{X: 1920, Y: 0}, 2},
		{"center of second", models.CursorPosition{X: 2880, Y: 540}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Locate(tt.pt, testMonitors)
			if !ok {
				t.Fatal("expected Locate to succeed")
			}
			if m.Index != tt.want {
				t.Errorf("expected monitor %d, got %d", tt.want, m.Index)
			}
		})
	}
}

func TestLocate_NearestFallback(t *testing.T) {
	tests := []struct {
		name string
		pt   models.CursorPosition
		want int
	}{
		{"below first monitor", models.CursorPosition{X: 500, Y: 1200}, 1},
		{"below second monitor", models.CursorPosition{X: 3000, Y: 1200}, 2},
		{"right of everything", models.CursorPosition{X: 4000, Y: 540}, 2},
		{"left of everything", models.CursorPosition{X: -100, Y: 540}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, ok := Locate(tt.pt, testMonitors)
			if !ok {
				t.Fatal("expected Locate to succeed")
			}
			if m.Index != tt.want {
				t.Errorf("expected monitor %d, got %d", tt.want, m.Index)
			}
		})
	}
}

func TestLocate_EmptyList(t *testing.T) {
	_, ok := Locate(models.CursorPosition{X: 0, Y: 0}, nil)
	if ok {
		t.Error("expected Locate to report failure for an empty list")
	}
}

func TestAtEdge_Interior(t *testing.T) {
	r := models.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}

	// Points strictly inside, beyond the 1px threshold band
	interior := []models.CursorPosition{
		{X: 960, Y: 540},
		{X: 2, Y: 2},
		{X: 1917, Y: 1077},
		{X: 100, Y: 540},
	}

	for _, pt := range interior {
		if AtEdge(pt, r, 1) {
			t.Errorf("expected (%d,%d) to not be at edge", pt.X, pt.Y)
		}
	}
}

func TestAtEdge_Band(t *testing.T) {
	r := models.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}

	band := []models.CursorPosition{
		{X: 0, Y: 540},    // left edge
		{X: 1, Y: 540},    // within left band
		{X: 1919, Y: 540}, // right edge (last reachable pixel while clipped)
		{X: 960, Y: 0},    // top edge
		{X: 960, Y: 1079}, // bottom edge
	}

	for _, pt := range band {
		if !AtEdge(pt, r, 1) {
			t.Errorf("expected (%d,%d) to be at edge", pt.X, pt.Y)
		}
		// Edge points must still locate to the monitor containing them
		m, ok := Locate(pt, testMonitors)
		if !ok || m.Index != 1 {
			t.Errorf("expected (%d,%d) to locate to monitor 1", pt.X, pt.Y)
		}
	}
}

func TestAtEdge_WiderThreshold(t *testing.T) {
	r := models.Rect{Left: 0, Top: 0, Right: 1920, Bottom: 1080}

	if !AtEdge(models.CursorPosition{X: 5, Y: 540}, r, 5) {
		t.Error("expected x=5 to be within a 5px band")
	}
	if AtEdge(models.CursorPosition{X: 6, Y: 540}, r, 5) {
		t.Error("expected x=6 to be outside a 5px band")
	}
}

func TestAtEdge_NegativeOrigin(t *testing.T) {
	// Secondary monitor left of the primary: negative coordinates
	r := models.Rect{Left: -1920, Top: 0, Right: 0, Bottom: 1080}

	if !AtEdge(models.CursorPosition{X: -1, Y: 540}, r, 1) {
		t.Error("expected x=-1 to be at the right edge")
	}
	if AtEdge(models.CursorPosition{X: -960, Y: 540}, r, 1) {
		t.Error("expected the center to not be at edge")
	}
}
