package block

import (
	"testing"

	"github.com/vovakirdan/ecoris/internal/core"
)

func fillLayer(b *Board, y int) {
	for z := 0; z < b.Depth(); z++ {
		for x := 0; x < b.Width(); x++ {
			b.Lock([]Vec3{{X: x, Y: y, Z: z}}, core.ColorRed)
		}
	}
}

func TestBoardFits(t *testing.T) {
	b := NewBoard(4, 4, 6)
	b.Lock([]Vec3{{X: 1, Y: 0, Z: 1}}, core.ColorRed)

	tests := []struct {
		name  string
		cells []Vec3
		fits  bool
	}{
		{"empty space", []Vec3{{X: 0, Y: 0, Z: 0}, {X: 3, Y: 5, Z: 3}}, true},
		{"occupied", []Vec3{{X: 1, Y: 0, Z: 1}}, false},
		{"below floor", []Vec3{{X: 0, Y: -1, Z: 0}}, false},
		{"above top", []Vec3{{X: 0, Y: 6, Z: 0}}, false},
		{"outside x", []Vec3{{X: 4, Y: 0, Z: 0}}, false},
		{"outside z", []Vec3{{X: 0, Y: 0, Z: -1}}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Fits(tc.cells); got != tc.fits {
				t.Errorf("Fits() = %v, expected %v", got, tc.fits)
			}
		})
	}
}

func TestBoardClearFullLayers(t *testing.T) {
	b := NewBoard(3, 2, 5)
	fillLayer(b, 0)
	b.Lock([]Vec3{{X: 2, Y: 1, Z: 1}}, core.ColorBlue)
	fillLayer(b, 2)
	b.Lock([]Vec3{{X: 0, Y: 3, Z: 0}}, core.ColorGreen)

	cleared := b.ClearFullLayers()
	if cleared != 2 {
		t.Fatalf("ClearFullLayers() = %d, expected 2", cleared)
	}

	// Layer 1 drops to 0, layer 3 drops to 1
	if b.Cell(Vec3{X: 2, Y: 0, Z: 1}) != core.ColorBlue {
		t.Error("cube from layer 1 should have dropped to layer 0")
	}
	if b.Cell(Vec3{X: 0, Y: 1, Z: 0}) != core.ColorGreen {
		t.Error("cube from layer 3 should have dropped to layer 1")
	}
	if b.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", b.Count())
	}
	if b.StackHeight() != 2 {
		t.Errorf("StackHeight() = %d, expected 2", b.StackHeight())
	}
}

func TestBoardClearNothing(t *testing.T) {
	b := NewBoard(2, 2, 3)
	b.Lock([]Vec3{{X: 0, Y: 0, Z: 0}}, core.ColorRed)

	if n := b.ClearFullLayers(); n != 0 {
		t.Errorf("ClearFullLayers() = %d, expected 0", n)
	}
	if !b.Filled(Vec3{}) {
		t.Error("partial layer must stay in place")
	}
}

func TestBoardColumnHeight(t *testing.T) {
	b := NewBoard(2, 2, 8)
	b.Lock([]Vec3{{X: 1, Y: 4, Z: 0}, {X: 1, Y: 1, Z: 0}}, core.ColorRed)

	if h := b.ColumnHeight(1, 0); h != 5 {
		t.Errorf("ColumnHeight(1, 0) = %d, expected 5", h)
	}
	if h := b.ColumnHeight(0, 0); h != 0 {
		t.Errorf("ColumnHeight(0, 0) = %d, expected 0", h)
	}
	if b.Cell(Vec3{X: 9, Y: 9, Z: 9}) != core.ColorDefault {
		t.Error("out of bounds cell should read as empty")
	}
}
