package block

import (
	"math/rand"

	"github.com/vovakirdan/ecoris/internal/core"
)

// Options configures an Entity.
type Options struct {
	Width, Depth, Height int
	FallInterval         float64 // Seconds between gravity steps
	Seed                 int64
	Shapes               []Shape // Pieces to draw from; nil means all built-in shapes
}

// Piece is the active falling block in world coordinates.
type Piece struct {
	Shape string
	Cells []Vec3
	Color core.Color
}

// Entity spawns and moves the falling block. It reports cleared layers and
// overflow through callbacks; a disabled entity ignores every command.
type Entity struct {
	board  *Board
	rng    *rand.Rand
	shapes []Shape

	fallInterval float64
	fallTimer    float64
	enabled      bool

	active   *Piece
	offsets  []Vec3 // active piece cells relative to pos
	pos      Vec3
	next     int // index into shapes of the upcoming piece
	colorIdx int
	spawned  int

	onClear    func(layers int)
	onOverflow func()
}

// NewEntity creates an enabled entity over an empty well.
func NewEntity(opts Options) *Entity {
	shapes := opts.Shapes
	if len(shapes) == 0 {
		shapes = Shapes
	}
	interval := opts.FallInterval
	if interval <= 0 {
		interval = 1
	}

	e := &Entity{
		board:        NewBoard(opts.Width, opts.Depth, opts.Height),
		rng:          rand.New(rand.NewSource(opts.Seed)),
		shapes:       shapes,
		fallInterval: interval,
		enabled:      true,
	}
	e.next = e.rng.Intn(len(e.shapes))
	return e
}

// OnClear registers the callback for cleared layers.
func (e *Entity) OnClear(fn func(layers int)) { e.onClear = fn }

// OnOverflow registers the callback for a piece that cannot enter the well.
func (e *Entity) OnOverflow(fn func()) { e.onOverflow = fn }

// Name identifies the entity among the gameplay modules.
func (e *Entity) Name() string { return "BlockEntity" }

// SetEnabled switches the entity on or off.
func (e *Entity) SetEnabled(enabled bool) { e.enabled = enabled }

// Enabled reports whether the entity accepts commands.
func (e *Entity) Enabled() bool { return e.enabled }

// Board returns the well. Callers must treat it as read-only.
func (e *Entity) Board() *Board { return e.board }

// Spawned returns how many pieces entered the well.
func (e *Entity) Spawned() int { return e.spawned }

// NextShape returns the shape that will spawn next.
func (e *Entity) NextShape() Shape { return e.shapes[e.next] }

// SetFallInterval changes the gravity period.
func (e *Entity) SetFallInterval(seconds float64) {
	if seconds > 0 {
		e.fallInterval = seconds
	}
}

// Active returns the falling piece, or false when there is none.
func (e *Entity) Active() (Piece, bool) {
	if e.active == nil {
		return Piece{}, false
	}
	return *e.active, true
}

// Ghost returns where the active piece would land.
func (e *Entity) Ghost() ([]Vec3, bool) {
	if e.active == nil {
		return nil, false
	}
	pos := e.pos
	for e.board.Fits(e.place(e.offsets, pos.Add(Vec3{Y: -1}))) {
		pos.Y--
	}
	return e.place(e.offsets, pos), true
}

// SpawnRandom puts the upcoming piece at the top of the well. When it does
// not fit the well has overflowed.
func (e *Entity) SpawnRandom() {
	if !e.enabled {
		return
	}

	shape := e.shapes[e.next]
	e.next = e.rng.Intn(len(e.shapes))

	offsets := append([]Vec3(nil), shape.Cells...)
	lo, hi := bounds(offsets)
	pos := Vec3{
		X: (e.board.Width()-(hi.X-lo.X+1))/2 - lo.X,
		Y: e.board.Height() - 1 - hi.Y,
		Z: (e.board.Depth()-(hi.Z-lo.Z+1))/2 - lo.Z,
	}

	color := core.PieceColors[e.colorIdx%len(core.PieceColors)]
	e.colorIdx++
	e.fallTimer = 0

	cells := e.place(offsets, pos)
	if !e.board.Fits(cells) {
		e.active = nil
		if e.onOverflow != nil {
			e.onOverflow()
		}
		return
	}

	e.spawned++
	e.offsets = offsets
	e.pos = pos
	e.active = &Piece{Shape: shape.Name, Cells: cells, Color: color}
}

// Move shifts the piece on the floor plane. It returns false when blocked.
func (e *Entity) Move(dx, dz int) bool {
	if !e.enabled || e.active == nil {
		return false
	}
	return e.tryPlace(e.offsets, e.pos.Add(Vec3{X: dx, Z: dz}))
}

// Pitch turns the piece a quarter about X.
func (e *Entity) Pitch(dir int) bool { return e.rotate(AxisX, dir) }

// Yaw turns the piece a quarter about Y.
func (e *Entity) Yaw(dir int) bool { return e.rotate(AxisY, dir) }

// Roll turns the piece a quarter about Z.
func (e *Entity) Roll(dir int) bool { return e.rotate(AxisZ, dir) }

var kicks = []Vec3{{}, {X: 1}, {X: -1}, {Z: 1}, {Z: -1}}

func (e *Entity) rotate(axis Axis, dir int) bool {
	if !e.enabled || e.active == nil || dir == 0 {
		return false
	}
	offsets := rotated(e.offsets, axis, dir)
	for _, k := range kicks {
		if e.tryPlace(offsets, e.pos.Add(k)) {
			return true
		}
	}
	return false
}

// SoftDrop moves the piece down one layer, locking it if it has landed.
func (e *Entity) SoftDrop() bool {
	if !e.enabled || e.active == nil {
		return false
	}
	e.fallTimer = 0
	return e.stepDown()
}

// HardDrop drops the piece until it lands and locks it. It returns the
// number of layers fallen.
func (e *Entity) HardDrop() int {
	if !e.enabled || e.active == nil {
		return 0
	}
	fallen := 0
	for e.tryPlace(e.offsets, e.pos.Add(Vec3{Y: -1})) {
		fallen++
	}
	e.lock()
	return fallen
}

// Update applies gravity for delta seconds.
func (e *Entity) Update(delta float64) {
	if !e.enabled || e.active == nil || delta <= 0 {
		return
	}
	e.fallTimer += delta
	for e.fallTimer >= e.fallInterval && e.enabled && e.active != nil {
		e.fallTimer -= e.fallInterval
		e.stepDown()
	}
}

// stepDown moves one layer down or locks; it returns true if the piece moved.
func (e *Entity) stepDown() bool {
	if e.tryPlace(e.offsets, e.pos.Add(Vec3{Y: -1})) {
		return true
	}
	e.lock()
	return false
}

func (e *Entity) lock() {
	e.board.Lock(e.active.Cells, e.active.Color)
	e.active = nil

	if n := e.board.ClearFullLayers(); n > 0 && e.onClear != nil {
		e.onClear(n)
	}
	e.SpawnRandom()
}

func (e *Entity) tryPlace(offsets []Vec3, pos Vec3) bool {
	cells := e.place(offsets, pos)
	if !e.board.Fits(cells) {
		return false
	}
	e.offsets = offsets
	e.pos = pos
	e.active.Cells = cells
	return true
}

func (e *Entity) place(offsets []Vec3, pos Vec3) []Vec3 {
	cells := make([]Vec3, len(offsets))
	for i, o := range offsets {
		cells[i] = pos.Add(o)
	}
	return cells
}
