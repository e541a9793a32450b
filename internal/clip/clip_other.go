//go:build !windows

package clip

import "github.com/bjornsen/mouselock/internal/models"

type nullClipper struct{}

func newClipper() Clipper {
	return nullClipper{}
}

func (nullClipper) Apply(r models.Rect) error {
	return ErrUnsupported
}

func (nullClipper) Clear() error {
	return ErrUnsupported
}
