package queue

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/partyround/gamecore/internal/repositories/queue Repository

import (
	"context"

	"github.com/partyround/gamecore/internal/models"
)

// Repository defines the interface for matchmaking persistence
type Repository interface {
	// SaveQueue persists a queue
	SaveQueue(ctx context.Context, input *SaveQueueInput) error

	// GetQueue retrieves a queue by ID
	GetQueue(ctx context.Context, input *GetQueueInput) (*models.GameQueue, error)

	// GetQueueByGameType retrieves the active queue for a game type
	GetQueueByGameType(ctx context.Context, input *GetQueueByGameTypeInput) (*models.GameQueue, error)

	// DeleteQueue removes a queue
	DeleteQueue(ctx context.Context, input *DeleteQueueInput) error

	// SaveMatch persists a formed match
	SaveMatch(ctx context.Context, input *SaveMatchInput) error

	// GetMatch retrieves a match by ID
	GetMatch(ctx context.Context, input *GetMatchInput) (*models.GameMatch, error)
}
