package play

import "github.com/vovakirdan/ecoris/internal/award"

// countdownCanvas shows "3", "2", "1" and then the "Go" image.
type countdownCanvas struct {
	text   string
	showGo bool
}

func (c *countdownCanvas) SetText(text string) { c.text = text }
func (c *countdownCanvas) ShowImage(show bool) { c.showGo = show }

// banner is the "Time's up" image.
type banner struct {
	visible bool
}

func (b *banner) Show(show bool) { b.visible = show }

// hud shows score, lines and the remaining time while playing.
type hud struct {
	enabled bool
}

func (h *hud) SetEnabled(enabled bool) { h.enabled = enabled }

// resultCanvas displays the final score and the title it earned.
type resultCanvas struct {
	awards  award.Table
	visible bool
	score   int
	title   string
	next    string // Following title, empty at the top of the table
	needed  int
}

func (r *resultCanvas) ShowResult(score int) {
	r.visible = true
	r.score = score
	r.title = r.awards.Title(score)
	r.next, r.needed, _ = r.awards.Next(score)
}

// sceneRequest holds the scene the controller asked for until the host
// picks it up.
type sceneRequest struct {
	pending string
}

func (s *sceneRequest) LoadScene(id string) { s.pending = id }

func (s *sceneRequest) take() string {
	id := s.pending
	s.pending = ""
	return id
}
