package scene

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"
)

// ErrEmptyRect is returned when a surface is asked to fill a rectangle
// without area.
var ErrEmptyRect = errors.New("empty rectangle")

// Surface accepts the draw commands issued by a scene.
type Surface interface {
	Clear(c color.Color)
	FillRect(r image.Rectangle, c color.Color) error
}

// RasterSurface renders off-screen into a gg software context.
type RasterSurface struct {
	dc *gg.Context
}

func NewRasterSurface(width, height int) *RasterSurface {
	return &RasterSurface{dc: gg.NewContext(width, height)}
}

func (r *RasterSurface) Clear(c color.Color) {
	r.dc.ClearWithColor(gg.FromColor(c))
}

func (r *RasterSurface) FillRect(rect image.Rectangle, c color.Color) error {
	if rect.Empty() {
		return fmt.Errorf("fill %v: %w", rect, ErrEmptyRect)
	}
	r.dc.SetColor(c)
	r.dc.DrawRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()))
	return r.dc.Fill()
}

// Image returns the rendered pixels.
func (r *RasterSurface) Image() image.Image {
	return r.dc.Image()
}

func (r *RasterSurface) Close() error {
	return r.dc.Close()
}
