// Package clip wraps the OS cursor-confinement primitive.
package clip

import (
	"errors"

	"github.com/bjornsen/mouselock/internal/models"
)

// ErrUnsupported is returned by the stub implementation on platforms
// without a cursor-confinement primitive.
var ErrUnsupported = errors.New("cursor clipping is only supported on windows")

// Clipper confines the cursor to a rectangle or removes the confinement.
// The confinement region is system-wide state shared with every other
// process on the desktop: only one region can be active at a time, and
// another application or a focus change may silently replace or clear
// it. Callers must re-apply rather than trust an earlier call.
type Clipper interface {
	Apply(r models.Rect) error
	Clear() error
}

// New returns the platform clipper.
func New() Clipper {
	return newClipper()
}
