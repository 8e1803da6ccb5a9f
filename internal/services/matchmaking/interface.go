package matchmaking

import "context"

// Service defines the interface for matchmaking operations
type Service interface {
	// JoinQueue adds an individual or a whole group to a game type's queue
	JoinQueue(ctx context.Context, input *JoinQueueInput) (*JoinQueueOutput, error)

	// LeaveQueue removes a user from the queue. Idempotent.
	LeaveQueue(ctx context.Context, input *LeaveQueueInput) (*LeaveQueueOutput, error)

	// TryFormMatch attempts to compose a match from the queued pool
	TryFormMatch(ctx context.Context, input *TryFormMatchInput) (*TryFormMatchOutput, error)

	// CommitMatch links a match to the session created from it
	CommitMatch(ctx context.Context, input *CommitMatchInput) (*CommitMatchOutput, error)

	// ExpireStaleQueues retires a queue whose oldest joiner has waited
	// past the allowed age
	ExpireStaleQueues(ctx context.Context, input *ExpireStaleQueuesInput) (*ExpireStaleQueuesOutput, error)

	// CancelQueue shuts a queue down. Idempotent.
	CancelQueue(ctx context.Context, input *CancelQueueInput) (*CancelQueueOutput, error)

	// GetQueue retrieves the active queue for a game type
	GetQueue(ctx context.Context, input *GetQueueInput) (*GetQueueOutput, error)
}
