package mode

import (
	"errors"
	"fmt"
)

// Module is a gameplay component that is switched off when the game ends.
type Module interface {
	Name() string
	SetEnabled(enabled bool)
}

// Spawner creates the active falling block.
type Spawner interface {
	SpawnRandom()
}

// CountdownDisplay shows the countdown numbers and the "Go" image.
type CountdownDisplay interface {
	SetText(text string)
	ShowImage(show bool)
}

// Banner is a full-screen image that can be shown or hidden.
type Banner interface {
	Show(show bool)
}

// Toggler is anything that can be enabled or disabled.
type Toggler interface {
	SetEnabled(enabled bool)
}

// ResultPresenter renders the final score.
type ResultPresenter interface {
	ShowResult(score int)
}

// SceneLoader asks the host to replace the current scene.
type SceneLoader interface {
	LoadScene(id string)
}

// Collaborators are the objects the Controller drives. They are resolved
// once, when the Controller is built.
type Collaborators struct {
	Spawner    Spawner
	Countdown  CountdownDisplay
	TimesUp    Banner
	InfoViewer Toggler
	Result     ResultPresenter
	GameOver   ResultPresenter
	Scenes     SceneLoader
	Modules    []Module
}

// ErrMissingCollaborator matches every MissingCollaboratorError.
var ErrMissingCollaborator = errors.New("mode: missing collaborator")

// MissingCollaboratorError names a collaborator absent at construction.
type MissingCollaboratorError struct {
	Name string
}

func (e *MissingCollaboratorError) Error() string {
	return fmt.Sprintf("mode: missing collaborator %q", e.Name)
}

// Is makes errors.Is(err, ErrMissingCollaborator) true.
func (e *MissingCollaboratorError) Is(target error) bool {
	return target == ErrMissingCollaborator
}

// Validate returns one MissingCollaboratorError per absent collaborator,
// joined, or nil when everything is wired.
func (c Collaborators) Validate() error {
	var errs []error
	missing := func(name string) {
		errs = append(errs, &MissingCollaboratorError{Name: name})
	}

	if c.Spawner == nil {
		missing("Spawner")
	}
	if c.Countdown == nil {
		missing("Countdown")
	}
	if c.TimesUp == nil {
		missing("TimesUp")
	}
	if c.InfoViewer == nil {
		missing("InfoViewer")
	}
	if c.Result == nil {
		missing("Result")
	}
	if c.GameOver == nil {
		missing("GameOver")
	}
	if c.Scenes == nil {
		missing("Scenes")
	}
	for i, m := range c.Modules {
		if m == nil {
			missing(fmt.Sprintf("Modules[%d]", i))
		}
	}

	return errors.Join(errs...)
}
