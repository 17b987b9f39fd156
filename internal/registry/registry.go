// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the platform
// to switch scenes by ID without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/ecoris/internal/config"
	"github.com/vovakirdan/ecoris/internal/core"
	"github.com/vovakirdan/ecoris/internal/storage"
)

// Scene is the interface every Ecoris scene implements.
// Scenes contain pure logic with no Bubble Tea dependency.
// The platform handles input mapping, timing, and rendering.
type Scene interface {
	// ID returns the identifier used to load the scene (e.g., "Title", "Main").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the scene. Called once each time the scene is loaded.
	// An error means the scene cannot run and the host must abort.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the scene by dt seconds with the actions of this frame.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the scene into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current scene state.
	State() core.GameState
}

// ScoreSource is the read side of the results store used by scenes.
type ScoreSource interface {
	HighScore() (int, error)
	TopResults(limit int) ([]storage.Result, error)
}

// Deps carries what a factory may hand to the scene it creates.
// Scores may be nil when persistence is disabled.
type Deps struct {
	Config config.Config
	Scores ScoreSource
	Logger *log.Logger
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a scene.
type Factory func(deps Deps) Scene

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene's init() function.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f(Deps{Config: config.DefaultConfig()})
	titles[id] = s.Title()
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SceneInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
// Returns an error if the scene ID is not registered.
func Create(id string, deps Deps) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}

	if deps.Logger == nil {
		deps.Logger = log.Default()
	}
	return f(deps), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
