package scene

import (
	"time"

	"github.com/iburimskiy/sliding-boxes/internal/config"
)

// Scene is the ordered collection of boxes animated by the program.
type Scene struct {
	boxes []*Box
}

// New lays out config.BoxCount boxes in a row. Box i starts i*BoxDelayStep
// after the first one, which produces the wave.
func New() *Scene {
	boxes := make([]*Box, 0, config.BoxCount)
	for i := 0; i < config.BoxCount; i++ {
		dir := Down
		if i%config.DirectionStride == 0 {
			dir = Up
		}
		boxes = append(boxes, NewBox(
			i*config.BoxSpacing+config.BoxOffset,
			config.BoxStartY,
			config.BoxWidth,
			config.BoxHeight,
			config.BoxColor,
			dir,
			time.Duration(i)*config.BoxDelayStep,
		))
	}
	return &Scene{boxes: boxes}
}

// Boxes returns the boxes in draw order.
func (s *Scene) Boxes() []*Box {
	return s.boxes
}

// ActiveCount returns how many boxes are moving at the given elapsed time.
func (s *Scene) ActiveCount(elapsed time.Duration) int {
	n := 0
	for _, b := range s.boxes {
		if b.Active(elapsed) {
			n++
		}
	}
	return n
}

func (s *Scene) Update(elapsed time.Duration) {
	for _, b := range s.boxes {
		b.Update(elapsed)
	}
}

// Draw clears dst to the background color and draws every box in order.
// It stops at the first failing box.
func (s *Scene) Draw(dst Surface) error {
	dst.Clear(config.BackgroundColor)
	for _, b := range s.boxes {
		if err := b.Draw(dst); err != nil {
			return err
		}
	}
	return nil
}

// Step runs one whole frame: clear, then update and draw each box in turn.
func (s *Scene) Step(elapsed time.Duration, dst Surface) error {
	dst.Clear(config.BackgroundColor)
	for _, b := range s.boxes {
		b.Update(elapsed)
		if err := b.Draw(dst); err != nil {
			return err
		}
	}
	return nil
}
