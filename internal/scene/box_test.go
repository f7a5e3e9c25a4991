package scene

import (
	"image"
	"testing"
	"time"

	"github.com/iburimskiy/sliding-boxes/internal/config"
)

func newTestBox(y int, dir Direction, delay time.Duration) *Box {
	return NewBox(50, y, config.BoxWidth, config.BoxHeight, config.BoxColor, dir, delay)
}

func TestNewBoxKeepsValues(t *testing.T) {
	b := NewBox(7, 11, 13, 17, config.BoxColor, Down, 250*time.Millisecond)
	if b.X != 7 || b.Y != 11 || b.Width != 13 || b.Height != 17 {
		t.Errorf("geometry = (%d, %d, %d, %d), want (7, 11, 13, 17)", b.X, b.Y, b.Width, b.Height)
	}
	if b.Color != config.BoxColor {
		t.Errorf("Color = %v, want %v", b.Color, config.BoxColor)
	}
	if b.Direction != Down {
		t.Errorf("Direction = %v, want down", b.Direction)
	}
	if b.Delay != 250*time.Millisecond {
		t.Errorf("Delay = %v, want 250ms", b.Delay)
	}
}

func TestBoxUpdateBeforeDelay(t *testing.T) {
	b := newTestBox(200, Up, 300*time.Millisecond)
	for _, elapsed := range []time.Duration{0, 100 * time.Millisecond, 299 * time.Millisecond} {
		b.Update(elapsed)
		if b.Y != 200 || b.Direction != Up {
			t.Fatalf("Update(%v) changed box to y=%d dir=%v", elapsed, b.Y, b.Direction)
		}
	}

	b.Update(300 * time.Millisecond)
	if b.Y != 195 {
		t.Errorf("Update at delay: y = %d, want 195", b.Y)
	}
}

func TestBoxUpdateMovesEveryCallOnceActive(t *testing.T) {
	b := newTestBox(200, Up, 100*time.Millisecond)
	// Same elapsed value on every call: the delay is a one-shot gate.
	for i := 0; i < 4; i++ {
		b.Update(100 * time.Millisecond)
	}
	if b.Y != 180 {
		t.Errorf("y = %d, want 180", b.Y)
	}
}

func TestBoxUpdate(t *testing.T) {
	tests := []struct {
		name    string
		y       int
		dir     Direction
		wantY   int
		wantDir Direction
	}{
		{name: "step up", y: 200, dir: Up, wantY: 195, wantDir: Up},
		{name: "step down", y: 200, dir: Down, wantY: 205, wantDir: Down},
		{name: "reach top exactly", y: 5, dir: Up, wantY: 0, wantDir: Down},
		{name: "overshoot top", y: 3, dir: Up, wantY: -2, wantDir: Down},
		{name: "reach bottom exactly", y: 445, dir: Down, wantY: 450, wantDir: Up},
		{name: "overshoot bottom", y: 450, dir: Down, wantY: 455, wantDir: Up},
		{name: "leave top", y: -2, dir: Down, wantY: 3, wantDir: Down},
		{name: "leave bottom", y: 455, dir: Up, wantY: 450, wantDir: Up},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBox(tt.y, tt.dir, 0)
			b.Update(0)
			if b.Y != tt.wantY {
				t.Errorf("y = %d, want %d", b.Y, tt.wantY)
			}
			if b.Direction != tt.wantDir {
				t.Errorf("direction = %v, want %v", b.Direction, tt.wantDir)
			}
		})
	}
}

func TestBoxDirectionStaysUnit(t *testing.T) {
	b := newTestBox(200, Up, 0)
	for i := 0; i < 5000; i++ {
		b.Update(time.Duration(i) * time.Millisecond)
		if b.Direction != Up && b.Direction != Down {
			t.Fatalf("update %d: direction = %d", i, int(b.Direction))
		}
	}
}

func TestBoxBounds(t *testing.T) {
	b := newTestBox(-2, Down, 0)
	want := image.Rect(50, -2, 80, 28)
	if got := b.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestDirectionString(t *testing.T) {
	if Up.String() != "up" || Down.String() != "down" {
		t.Errorf("got %q and %q", Up, Down)
	}
	if got := Direction(0).String(); got != "Direction(0)" {
		t.Errorf("Direction(0).String() = %q", got)
	}
}
