package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/partyround/gamecore/internal/repositories/session Repository

import (
	"context"

	"github.com/partyround/gamecore/internal/models"
)

// Repository defines the interface for session persistence
type Repository interface {
	// SaveSession persists a session
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error)

	// DeleteSession removes a session
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error

	// GetActiveSessions retrieves every session still accepting activity
	GetActiveSessions(ctx context.Context, input *GetActiveSessionsInput) (*GetActiveSessionsOutput, error)

	// SaveResult archives a finished session's outcome
	SaveResult(ctx context.Context, input *SaveResultInput) error

	// GetResult retrieves an archived outcome by session ID
	GetResult(ctx context.Context, input *GetResultInput) (*models.GameResult, error)
}
