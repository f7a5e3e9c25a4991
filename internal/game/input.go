package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Input reports whether the user asked to leave.
type Input interface {
	QuitRequested() bool
}

// ebitenInput treats the window close button and Escape as quit.
// The close button is only reported when ebiten.SetWindowClosingHandled(true)
// is in effect.
type ebitenInput struct{}

func (ebitenInput) QuitRequested() bool {
	return ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}
