package play

// Camera yaw is counted in quarter turns, 0..3. The top view is the well seen
// from above with the camera at the bottom edge of the screen.

// viewSize returns the view dimensions of a width x depth floor.
func viewSize(width, depth, yaw int) (vw, vd int) {
	if yaw%2 == 1 {
		return depth, width
	}
	return width, depth
}

// viewToWorld maps a view cell to the floor cell it shows.
func viewToWorld(vx, vz, yaw, width, depth int) (x, z int) {
	switch yaw {
	case 1:
		return width - 1 - vz, vx
	case 2:
		return width - 1 - vx, depth - 1 - vz
	case 3:
		return vz, depth - 1 - vx
	default:
		return vx, vz
	}
}

// worldToView is the inverse of viewToWorld.
func worldToView(x, z, yaw, width, depth int) (vx, vz int) {
	switch yaw {
	case 1:
		return z, width - 1 - x
	case 2:
		return width - 1 - x, depth - 1 - z
	case 3:
		return depth - 1 - z, x
	default:
		return x, z
	}
}

// viewDelta turns a camera relative move into a world move.
func viewDelta(dx, dz, yaw int) (int, int) {
	for i := 0; i < yaw; i++ {
		dx, dz = -dz, dx
	}
	return dx, dz
}

func normalizeYaw(yaw int) int {
	return ((yaw % 4) + 4) % 4
}
