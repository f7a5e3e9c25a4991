package config

import (
	"image/color"
	"time"
)

const (
	WindowWidth  = 640
	WindowHeight = 480
	WindowTitle  = "Sliding Boxes"

	// Pixels per update call, not scaled by time.
	BoxVelocity = 5

	// Box layout
	BoxCount   = 10
	BoxSpacing = 50
	BoxOffset  = 50
	BoxStartY  = 200
	BoxWidth   = 30
	BoxHeight  = 30

	// Each box starts moving BoxDelayStep after the previous one.
	BoxDelayStep = 100 * time.Millisecond

	// Boxes whose index is a multiple of DirectionStride start moving up.
	DirectionStride = 1

	FrameDelay = 10 * time.Millisecond
)

var (
	BackgroundColor = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BoxColor        = color.RGBA{R: 0, G: 100, B: 0, A: 255}
)

// TicksPerSecond is the update rate matching FrameDelay.
func TicksPerSecond() int {
	return int(time.Second / FrameDelay)
}
