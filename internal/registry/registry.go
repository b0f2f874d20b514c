// Package registry provides a global registry for frontends.
// Frontends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Options carries everything a frontend needs to start a session.
type Options struct {
	Config   config.RunnerConfig
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	Out      io.Writer // Where non-interactive frontends print results
	FontPath string    // Window frontend: TTF to load, empty for the built-in font
	Frames   int       // Headless frontend: frames to simulate, 0 for one run until game over
}

// Frontend drives a game session: it polls input, steps the simulation
// and presents frames.
type Frontend interface {
	// ID returns a unique identifier used on the command line (e.g., "tui").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run blocks until the player quits or ctx is cancelled.
	Run(ctx context.Context, opts Options) error
}

// FrontendInfo contains metadata about a registered frontend.
type FrontendInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new frontend.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a frontend factory to the registry.
// Panics if a frontend with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: frontend %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered frontends, sorted by ID.
func List() []FrontendInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]FrontendInfo, 0, len(factories))
	for id := range factories {
		result = append(result, FrontendInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a frontend by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown frontend %q", id)
	}

	return f(), nil
}

// Exists checks if a frontend with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
