package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/sliding-boxes/internal/scene"
)

// screenSurface draws on the ebiten screen image.
type screenSurface struct {
	img *ebiten.Image
}

func (s *screenSurface) Clear(c color.Color) {
	s.img.Fill(c)
}

func (s *screenSurface) FillRect(r image.Rectangle, c color.Color) error {
	if r.Empty() {
		return fmt.Errorf("fill %v: %w", r, scene.ErrEmptyRect)
	}
	vector.DrawFilledRect(s.img, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), c, false)
	return nil
}
