// Package block implements the falling-block side of the game: polycube
// pieces, the 3D well they stack in and the entity that drives the active
// piece.
package block

// Vec3 is an integer position in the well. Y points up; X and Z span the floor.
type Vec3 struct {
	X, Y, Z int
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Axis selects the rotation axis of a quarter turn.
type Axis int

const (
	AxisX Axis = iota // pitch
	AxisY             // yaw
	AxisZ             // roll
)

// Rotate turns v a quarter turn about the axis. dir > 0 is clockwise when
// looking down the positive axis; dir < 0 is the inverse turn.
func (v Vec3) Rotate(axis Axis, dir int) Vec3 {
	cw := dir > 0
	switch axis {
	case AxisX:
		if cw {
			return Vec3{X: v.X, Y: -v.Z, Z: v.Y}
		}
		return Vec3{X: v.X, Y: v.Z, Z: -v.Y}
	case AxisY:
		if cw {
			return Vec3{X: v.Z, Y: v.Y, Z: -v.X}
		}
		return Vec3{X: -v.Z, Y: v.Y, Z: v.X}
	case AxisZ:
		if cw {
			return Vec3{X: -v.Y, Y: v.X, Z: v.Z}
		}
		return Vec3{X: v.Y, Y: -v.X, Z: v.Z}
	}
	return v
}

// bounds returns the per-axis minimum and maximum of a non-empty cell set.
func bounds(cells []Vec3) (lo, hi Vec3) {
	lo, hi = cells[0], cells[0]
	for _, c := range cells[1:] {
		lo.X, hi.X = min(lo.X, c.X), max(hi.X, c.X)
		lo.Y, hi.Y = min(lo.Y, c.Y), max(hi.Y, c.Y)
		lo.Z, hi.Z = min(lo.Z, c.Z), max(hi.Z, c.Z)
	}
	return lo, hi
}
