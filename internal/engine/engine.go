package engine

import (
	"errors"

	"github.com/partyround/gamecore/internal/models"
)

// ErrUnknownGameType is returned when no engine is registered for a type
var ErrUnknownGameType = errors.New("no engine registered for game type")

// Engine is implemented by each game variant's round engine. The session
// layer keeps per-round state as an opaque handle and routes all game
// mutations to the engine registered for the session's game type.
type Engine interface {
	// GameType identifies the variant the engine runs
	GameType() models.GameType
}

// Registry maps game types to their engines. It is populated once at
// wiring time and read-only afterwards.
type Registry struct {
	engines map[models.GameType]Engine
}

// NewRegistry creates an empty engine registry
func NewRegistry() *Registry {
	return &Registry{
		engines: make(map[models.GameType]Engine),
	}
}

// Register adds an engine for its game type, replacing any previous one
func (r *Registry) Register(e Engine) {
	r.engines[e.GameType()] = e
}

// Get returns the engine for a game type
func (r *Registry) Get(gameType models.GameType) (Engine, error) {
	e, ok := r.engines[gameType]
	if !ok {
		return nil, ErrUnknownGameType
	}
	return e, nil
}
