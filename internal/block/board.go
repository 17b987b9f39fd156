package block

import "github.com/vovakirdan/ecoris/internal/core"

// Board is the occupancy grid of the well. A cell holds the color of the
// cube locked there, or ColorDefault when empty.
type Board struct {
	width, depth, height int
	cells                []core.Color
}

// NewBoard creates an empty well.
func NewBoard(width, depth, height int) *Board {
	return &Board{
		width:  width,
		depth:  depth,
		height: height,
		cells:  make([]core.Color, width*depth*height),
	}
}

func (b *Board) Width() int { return b.width }
func (b *Board) Depth() int { return b.depth }
func (b *Board) Height() int { return b.height }

func (b *Board) index(v Vec3) int {
	return (v.Y*b.depth+v.Z)*b.width + v.X
}

// InBounds reports whether v lies inside the well.
func (b *Board) InBounds(v Vec3) bool {
	return v.X >= 0 && v.X < b.width &&
		v.Z >= 0 && v.Z < b.depth &&
		v.Y >= 0 && v.Y < b.height
}

// Cell returns the color at v; out-of-bounds positions read as empty.
func (b *Board) Cell(v Vec3) core.Color {
	if !b.InBounds(v) {
		return core.ColorDefault
	}
	return b.cells[b.index(v)]
}

// Filled reports whether a cube is locked at v.
func (b *Board) Filled(v Vec3) bool {
	return b.Cell(v) != core.ColorDefault
}

// Fits reports whether every cell is inside the well and empty.
func (b *Board) Fits(cells []Vec3) bool {
	for _, c := range cells {
		if !b.InBounds(c) || b.Filled(c) {
			return false
		}
	}
	return true
}

// Lock stores cubes in the well. Cells outside the well are dropped.
func (b *Board) Lock(cells []Vec3, color core.Color) {
	for _, c := range cells {
		if b.InBounds(c) {
			b.cells[b.index(c)] = color
		}
	}
}

func (b *Board) layerFull(y int) bool {
	for z := 0; z < b.depth; z++ {
		for x := 0; x < b.width; x++ {
			if !b.Filled(Vec3{X: x, Y: y, Z: z}) {
				return false
			}
		}
	}
	return true
}

// ClearFullLayers removes every completely filled layer, drops the layers
// above it and returns how many were removed.
func (b *Board) ClearFullLayers() int {
	layer := b.width * b.depth
	write := 0
	for y := 0; y < b.height; y++ {
		if b.layerFull(y) {
			continue
		}
		if write != y {
			copy(b.cells[write*layer:(write+1)*layer], b.cells[y*layer:(y+1)*layer])
		}
		write++
	}

	cleared := b.height - write
	for i := write * layer; i < len(b.cells); i++ {
		b.cells[i] = core.ColorDefault
	}
	return cleared
}

// ColumnHeight returns one above the highest cube in column (x, z), 0 if empty.
func (b *Board) ColumnHeight(x, z int) int {
	for y := b.height - 1; y >= 0; y-- {
		if b.Filled(Vec3{X: x, Y: y, Z: z}) {
			return y + 1
		}
	}
	return 0
}

// StackHeight returns the tallest column height.
func (b *Board) StackHeight() int {
	h := 0
	for z := 0; z < b.depth; z++ {
		for x := 0; x < b.width; x++ {
			h = max(h, b.ColumnHeight(x, z))
		}
	}
	return h
}

// Count returns the number of locked cubes.
func (b *Board) Count() int {
	n := 0
	for _, c := range b.cells {
		if c != core.ColorDefault {
			n++
		}
	}
	return n
}
