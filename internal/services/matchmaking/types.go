package matchmaking

import (
	"time"

	"go.uber.org/zap"

	"github.com/partyround/gamecore/internal/common/clock"
	"github.com/partyround/gamecore/internal/common/uuid"
	"github.com/partyround/gamecore/internal/models"
	"github.com/partyround/gamecore/internal/notifier"
	queueRepo "github.com/partyround/gamecore/internal/repositories/queue"
)

// Config holds configuration for the matchmaking service
type Config struct {
	// Repository dependency
	QueueRepo queueRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Notifier receives match-formed hooks. Optional.
	Notifier notifier.Notifier

	// Logger for queue activity. Optional.
	Logger *zap.Logger
}

// JoinQueueInput contains parameters for joining a queue.
// Exactly one of UserID or Group drives the join: a group join admits
// every member atomically.
type JoinQueueInput struct {
	// GameType selects the queue
	GameType models.GameType

	// UserID is the joining individual
	UserID string

	// UserName is the display name of the joining individual
	UserName string

	// Group, when set, queues the whole group instead of an individual
	Group *models.PlayerGroup
}

// JoinQueueOutput contains the result of joining a queue
type JoinQueueOutput struct {
	// Queue is the queue after the join
	Queue *models.GameQueue

	// CanStartGame indicates the pool now meets the game's minimum
	CanStartGame bool
}

// LeaveQueueInput contains parameters for leaving a queue
type LeaveQueueInput struct {
	// GameType selects the queue
	GameType models.GameType

	// UserID is the departing user
	UserID string
}

// LeaveQueueOutput contains the result of leaving a queue
type LeaveQueueOutput struct {
	// Removed indicates an entry was actually removed
	Removed bool
}

// TryFormMatchInput contains parameters for a matchmaking pass
type TryFormMatchInput struct {
	// GameType selects the queue
	GameType models.GameType
}

// TryFormMatchOutput contains the result of a matchmaking pass
type TryFormMatchOutput struct {
	// Matched indicates a match was formed
	Matched bool

	// Match is the formed match, when Matched is true
	Match *models.GameMatch

	// Remainder is the fresh queue holding unmatched participants
	Remainder *models.GameQueue
}

// CommitMatchInput contains parameters for linking a match to the
// session created from it
type CommitMatchInput struct {
	// MatchID is the match to commit
	MatchID string

	// SessionID is the session created from the match
	SessionID string
}

// CommitMatchOutput contains the committed match
type CommitMatchOutput struct {
	Match *models.GameMatch
}

// ExpireStaleQueuesInput contains parameters for an expiry pass
type ExpireStaleQueuesInput struct {
	// GameType selects the queue
	GameType models.GameType

	// MaxAge is how long the oldest joiner may wait before the queue
	// ages out
	MaxAge time.Duration
}

// ExpireStaleQueuesOutput contains the result of an expiry pass
type ExpireStaleQueuesOutput struct {
	// Expired indicates the queue aged out and was retired
	Expired bool
}

// CancelQueueInput contains parameters for shutting a queue down
type CancelQueueInput struct {
	// GameType selects the queue
	GameType models.GameType
}

// CancelQueueOutput contains the result of shutting a queue down
type CancelQueueOutput struct {
	// Cancelled indicates a queue was actually cancelled
	Cancelled bool
}

// GetQueueInput contains parameters for retrieving a queue
type GetQueueInput struct {
	// GameType selects the queue
	GameType models.GameType
}

// GetQueueOutput contains the retrieved queue
type GetQueueOutput struct {
	Queue *models.GameQueue
}
