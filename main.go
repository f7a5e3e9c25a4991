package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/sliding-boxes/internal/config"
	"github.com/iburimskiy/sliding-boxes/internal/game"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	game.SetLogger(logger)

	if err := run(); err != nil {
		logger.Error("sliding boxes stopped", "err", err)
		if dlgErr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon); dlgErr != nil {
			logger.Warn("could not show error dialog", "err", dlgErr)
		}
		os.Exit(1)
	}
}

func run() error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	// Report the close button through IsWindowBeingClosed so it goes
	// through the same quit path as Escape.
	ebiten.SetWindowClosingHandled(true)
	ebiten.SetTPS(config.TicksPerSecond())

	if err := ebiten.RunGame(game.New()); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
