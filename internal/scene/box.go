package scene

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/iburimskiy/sliding-boxes/internal/config"
)

// Direction is the vertical sense a box is moving in.
type Direction int

const (
	Up   Direction = -1
	Down Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Box is a filled rectangle sliding vertically between the top and bottom
// edges of the window.
type Box struct {
	X, Y          int
	Width, Height int
	Color         color.RGBA
	Direction     Direction
	// Delay is how much total elapsed time must pass before the box moves.
	Delay time.Duration
}

// NewBox returns a box holding exactly the given values.
func NewBox(x, y, width, height int, c color.RGBA, dir Direction, delay time.Duration) *Box {
	return &Box{
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		Color:     c,
		Direction: dir,
		Delay:     delay,
	}
}

// Active reports whether the box moves at the given total elapsed time.
func (b *Box) Active(elapsed time.Duration) bool {
	return elapsed >= b.Delay
}

// Update advances the box by one velocity step once elapsed has reached the
// box delay. Elapsed is the total time since start, not the frame time.
//
// The direction flips when the box touches or passes an edge. Y is left where
// the step put it, so a box can sit up to one step outside the window for a
// single frame.
func (b *Box) Update(elapsed time.Duration) {
	if !b.Active(elapsed) {
		return
	}
	b.Y += int(b.Direction) * config.BoxVelocity
	if b.Y <= 0 {
		b.Direction = Down
	} else if b.Y+b.Height >= config.WindowHeight {
		b.Direction = Up
	}
}

// Bounds returns the rectangle currently covered by the box.
func (b *Box) Bounds() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.Width, b.Y+b.Height)
}

// Draw fills the box rectangle on s.
func (b *Box) Draw(s Surface) error {
	if err := s.FillRect(b.Bounds(), b.Color); err != nil {
		return fmt.Errorf("draw box at (%d, %d): %w", b.X, b.Y, err)
	}
	return nil
}
