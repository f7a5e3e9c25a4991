package game

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/sliding-boxes/internal/config"
	"github.com/iburimskiy/sliding-boxes/internal/scene"
)

// ErrDraw wraps the failure of a frame draw. Once set, the next Update
// returns it and the run ends.
var ErrDraw = errors.New("draw frame")

// Option configures a Game.
type Option func(*Game)

// WithClock replaces the elapsed time source. The clock must return the
// total time since start and never go backwards.
func WithClock(clock func() time.Duration) Option {
	return func(g *Game) { g.clock = clock }
}

func WithInput(in Input) Option {
	return func(g *Game) { g.input = in }
}

func WithLogger(l *slog.Logger) Option {
	return func(g *Game) { g.log = l }
}

// Game drives the scene from ebiten's update and draw callbacks.
type Game struct {
	scene *scene.Scene
	input Input
	clock func() time.Duration
	log   *slog.Logger

	// boxes moving as of the last update
	active int

	quitting bool
	lastErr  error
}

func New(opts ...Option) *Game {
	start := time.Now()
	g := &Game{
		scene: scene.New(),
		input: ebitenInput{},
		clock: func() time.Duration { return time.Since(start) },
		log:   Logger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log.Info("scene ready",
		"boxes", len(g.scene.Boxes()),
		"width", config.WindowWidth,
		"height", config.WindowHeight)
	return g
}

// Scene returns the animated boxes.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

// Quitting reports whether a quit request has been seen.
func (g *Game) Quitting() bool {
	return g.quitting
}

// Update polls input, then moves the boxes. A quit request ends the run on
// the same tick without touching the boxes.
func (g *Game) Update() error {
	if g.lastErr != nil {
		return g.lastErr
	}
	if g.quitting {
		return ebiten.Termination
	}
	if g.input.QuitRequested() {
		g.quitting = true
		g.log.Info("quit requested")
		return ebiten.Termination
	}

	elapsed := g.clock()
	if n := g.scene.ActiveCount(elapsed); n != g.active {
		g.active = n
		g.log.Debug("boxes moving", "active", n, "elapsed", elapsed)
	}
	g.scene.Update(elapsed)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawFrame(&screenSurface{img: screen})
}

func (g *Game) drawFrame(s scene.Surface) {
	if g.quitting || g.lastErr != nil {
		return
	}
	if err := g.scene.Draw(s); err != nil {
		g.lastErr = fmt.Errorf("%w: %w", ErrDraw, err)
		g.log.Error("draw failed", "err", err)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
