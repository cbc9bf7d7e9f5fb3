package render

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func TestTermRendererDrawsRevealedCells(t *testing.T) {
	screen := newTestScreen(t, 10, 10)
	r := NewTermRenderer(screen, 1, 1)

	r.AddCommand(quarterCommand(color.RGBA{R: 255, A: 255}))
	r.Flush()

	tests := []struct {
		x, y   int
		filled bool
	}{
		{6, 2, true},
		{5, 0, true},
		{1, 1, false},
		{6, 6, false},
		{1, 6, false},
	}
	for _, tt := range tests {
		mainc, _, _, _ := screen.GetContent(tt.x, tt.y)
		if got := mainc == fillRune; got != tt.filled {
			t.Errorf("cell (%d,%d): filled=%v, want %v", tt.x, tt.y, got, tt.filled)
		}
	}
}

func TestTermRendererSkipsTransparentTexels(t *testing.T) {
	screen := newTestScreen(t, 10, 10)
	r := NewTermRenderer(screen, 1, 1)

	r.AddCommand(quarterCommand(color.RGBA{}))
	r.Flush()

	if mainc, _, _, _ := screen.GetContent(6, 2); mainc == fillRune {
		t.Error("transparent texels should not be drawn")
	}
}

func TestNewTermRendererDefaultsCellSize(t *testing.T) {
	r := NewTermRenderer(newTestScreen(t, 4, 4), 0, -1)
	if r.cellWidth != 1 || r.cellHeight != 1 {
		t.Errorf("cell size: got %vx%v, want 1x1", r.cellWidth, r.cellHeight)
	}
}
