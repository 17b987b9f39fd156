package play

import (
	"fmt"

	"github.com/vovakirdan/ecoris/internal/block"
	"github.com/vovakirdan/ecoris/internal/core"
	"github.com/vovakirdan/ecoris/internal/mode"
)

// Layout
const (
	cellW   = 2 // screen columns per well cell
	marginX = 2
	marginY = 2
	gapX    = 3
)

const (
	blockRune = '█'
	ghostRune = '░'
	floorRune = '·'
)

// Render draws the three views of the well, the HUD and any overlay.
func (s *Scene) Render(dst *core.Screen) {
	dst.DrawTextColor(marginX, 0, "ECORIS", core.ColorBrightGreen)

	board := s.entity.Board()
	vw, vd := viewSize(board.Width(), board.Depth(), s.camera.Yaw())
	active := s.activeCells()

	top := core.NewRect(marginX, marginY, vw*cellW+2, vd+2)
	s.drawTop(dst, top, active)
	dst.DrawTextColor(top.X, top.Bottom(), "TOP", core.ColorGray)

	front := core.NewRect(top.Right()+gapX, marginY, vw*cellW+2, board.Height()+2)
	s.drawFront(dst, front, active)
	dst.DrawTextColor(front.X, front.Bottom(), "FRONT", core.ColorGray)

	side := core.NewRect(front.Right()+gapX, marginY, vd*cellW+2, board.Height()+2)
	s.drawSide(dst, side, active)
	dst.DrawTextColor(side.X, side.Bottom(), "SIDE", core.ColorGray)

	s.drawHUD(dst, side.Right()+gapX, marginY)
	s.drawOverlay(dst)
}

func (s *Scene) activeCells() map[block.Vec3]core.Color {
	cells := make(map[block.Vec3]core.Color)
	if p, ok := s.entity.Active(); ok {
		for _, c := range p.Cells {
			cells[c] = p.Color
		}
	}
	return cells
}

// voxel returns what occupies v: the active piece wins over locked cells.
func (s *Scene) voxel(v block.Vec3, active map[block.Vec3]core.Color) (core.Color, bool) {
	if c, ok := active[v]; ok {
		return c, true
	}
	board := s.entity.Board()
	if board.Filled(v) {
		return board.Cell(v), true
	}
	return core.ColorDefault, false
}

func (s *Scene) drawCell(dst *core.Screen, x, y int, r rune, c core.Color) {
	for i := 0; i < cellW; i++ {
		dst.SetColor(x+i, y, r, c)
	}
}

// drawTop draws the height map seen from above. Active cells are solid, the
// landing position is shaded and locked columns show their height.
func (s *Scene) drawTop(dst *core.Screen, r core.Rect, active map[block.Vec3]core.Color) {
	dst.DrawBox(r, core.ColorGray)

	board := s.entity.Board()
	w, d := board.Width(), board.Depth()
	yaw := s.camera.Yaw()
	vw, vd := viewSize(w, d, yaw)

	activeCols := make(map[[2]int]core.Color)
	for v, c := range active {
		activeCols[[2]int{v.X, v.Z}] = c
	}
	ghostCols := make(map[[2]int]bool)
	if ghost, ok := s.entity.Ghost(); ok {
		for _, v := range ghost {
			ghostCols[[2]int{v.X, v.Z}] = true
		}
	}

	for vz := 0; vz < vd; vz++ {
		for vx := 0; vx < vw; vx++ {
			x, z := viewToWorld(vx, vz, yaw, w, d)
			sx, sy := r.X+1+vx*cellW, r.Y+1+vz

			if c, ok := activeCols[[2]int{x, z}]; ok {
				s.drawCell(dst, sx, sy, blockRune, c)
				continue
			}
			if ghostCols[[2]int{x, z}] {
				s.drawCell(dst, sx, sy, ghostRune, core.ColorGray)
				continue
			}

			h := board.ColumnHeight(x, z)
			if h == 0 {
				dst.SetColor(sx+cellW-1, sy, floorRune, core.ColorGray)
				continue
			}
			label := fmt.Sprintf("%*d", cellW, h)
			if h > 9 {
				label = fmt.Sprintf("%*s", cellW, "+")
			}
			dst.DrawTextColor(sx, sy, label, board.Cell(block.Vec3{X: x, Y: h - 1, Z: z}))
		}
	}
}

// drawFront projects the well onto the plane facing the camera; the cell
// nearest the camera is shown.
func (s *Scene) drawFront(dst *core.Screen, r core.Rect, active map[block.Vec3]core.Color) {
	dst.DrawBox(r, core.ColorGray)

	board := s.entity.Board()
	w, d, h := board.Width(), board.Depth(), board.Height()
	yaw := s.camera.Yaw()
	vw, vd := viewSize(w, d, yaw)

	for y := 0; y < h; y++ {
		sy := r.Y + 1 + (h - 1 - y)
		for vx := 0; vx < vw; vx++ {
			sx := r.X + 1 + vx*cellW
			for vz := vd - 1; vz >= 0; vz-- {
				x, z := viewToWorld(vx, vz, yaw, w, d)
				if c, ok := s.voxel(block.Vec3{X: x, Y: y, Z: z}, active); ok {
					s.drawCell(dst, sx, sy, blockRune, c)
					break
				}
			}
		}
	}
}

// drawSide projects the well onto the plane seen from the camera's right.
// The near edge of the well is on the left.
func (s *Scene) drawSide(dst *core.Screen, r core.Rect, active map[block.Vec3]core.Color) {
	dst.DrawBox(r, core.ColorGray)

	board := s.entity.Board()
	w, d, h := board.Width(), board.Depth(), board.Height()
	yaw := s.camera.Yaw()
	vw, vd := viewSize(w, d, yaw)

	for y := 0; y < h; y++ {
		sy := r.Y + 1 + (h - 1 - y)
		for col := 0; col < vd; col++ {
			vz := vd - 1 - col
			sx := r.X + 1 + col*cellW
			for vx := vw - 1; vx >= 0; vx-- {
				x, z := viewToWorld(vx, vz, yaw, w, d)
				if c, ok := s.voxel(block.Vec3{X: x, Y: y, Z: z}, active); ok {
					s.drawCell(dst, sx, sy, blockRune, c)
					break
				}
			}
		}
	}
}

func (s *Scene) drawHUD(dst *core.Screen, x, y int) {
	sess := s.ctrl.Session()

	if !s.hud.enabled {
		dst.DrawTextColor(x, y, sess.Phase.String(), core.ColorGray)
		return
	}

	secs := int(sess.RemainingTime + 0.999)
	timeColor := core.ColorWhite
	if secs <= 10 {
		timeColor = core.ColorBrightRed
	}

	dst.DrawTextColor(x, y, fmt.Sprintf("SCORE %6d", sess.Score), core.ColorBrightYellow)
	dst.DrawTextColor(x, y+1, fmt.Sprintf("LINES %6d", sess.LinesCleared), core.ColorWhite)
	dst.DrawTextColor(x, y+2, fmt.Sprintf("TIME  %3d:%02d", secs/60, secs%60), timeColor)
	dst.DrawTextColor(x, y+4, "NEXT  "+s.entity.NextShape().Name, core.ColorCyan)
	dst.DrawTextColor(x, y+5, fmt.Sprintf("PIECE %6d", s.entity.Spawned()), core.ColorGray)
	dst.DrawTextColor(x, y+6, fmt.Sprintf("VIEW  %3d°", s.camera.Yaw()*90), core.ColorGray)
}

func (s *Scene) drawOverlay(dst *core.Screen) {
	switch {
	case s.countdown.text != "":
		s.drawBanner(dst, core.ColorBrightWhite, s.countdown.text)
	case s.countdown.showGo:
		s.drawBanner(dst, core.ColorBrightGreen, "GO!")
	case s.timesUp.visible:
		s.drawBanner(dst, core.ColorBrightYellow, "TIME'S UP!")
	case s.ctrl.Phase() == mode.PhaseShowingResult && s.result.visible:
		s.drawResult(dst, "RESULT", core.ColorBrightCyan, s.result)
	case s.ctrl.Phase() == mode.PhaseGameOver && s.gameOver.visible:
		s.drawResult(dst, "GAME OVER", core.ColorBrightRed, s.gameOver)
	}
}

func (s *Scene) drawBanner(dst *core.Screen, c core.Color, text string) {
	w := len([]rune(text)) + 8
	box := dst.Bounds().Centered(w, 3)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, text, c)
}

func (s *Scene) drawResult(dst *core.Screen, heading string, c core.Color, r resultCanvas) {
	box := dst.Bounds().Centered(36, 9)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, heading, c)
	dst.DrawTextCentered(box.Y+3, fmt.Sprintf("Score  %d", r.score), core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+4, fmt.Sprintf("Lines  %d", s.ctrl.Session().LinesCleared), core.ColorWhite)
	dst.DrawTextCentered(box.Y+5, r.title, core.ColorBrightGreen)
	if r.next != "" {
		dst.DrawTextCentered(box.Y+6, fmt.Sprintf("%d points to %s", r.needed, r.next), core.ColorGray)
	}
	dst.DrawTextCentered(box.Y+7, "Enter: back to title", core.ColorGray)
}
