package block

// Shape is a named polycube. Cells are offsets around the pivot at (0,0,0).
type Shape struct {
	Name  string
	Cells []Vec3
}

// Shapes lists the built-in pieces: five flat tetracubes and two 3D ones.
var Shapes = []Shape{
	{Name: "I", Cells: []Vec3{{-1, 0, 0}, {0, 0, 0}, {1, 0, 0}, {2, 0, 0}}},
	{Name: "O", Cells: []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}, {1, 0, 1}}},
	{Name: "T", Cells: []Vec3{{-1, 0, 0}, {0, 0, 0}, {1, 0, 0}, {0, 0, 1}}},
	{Name: "L", Cells: []Vec3{{-1, 0, 0}, {0, 0, 0}, {1, 0, 0}, {1, 0, 1}}},
	{Name: "S", Cells: []Vec3{{-1, 0, 0}, {0, 0, 0}, {0, 0, 1}, {1, 0, 1}}},
	{Name: "Tripod", Cells: []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 0, 1}, {0, 1, 0}}},
	{Name: "Screw", Cells: []Vec3{{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {1, 1, 1}}},
}

// ShapeByName finds a built-in shape.
func ShapeByName(name string) (Shape, bool) {
	for _, s := range Shapes {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

// rotated returns a copy of cells turned a quarter about the axis.
func rotated(cells []Vec3, axis Axis, dir int) []Vec3 {
	out := make([]Vec3, len(cells))
	for i, c := range cells {
		out[i] = c.Rotate(axis, dir)
	}
	return out
}
