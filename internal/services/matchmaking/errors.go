package matchmaking

import "errors"

// Define errors
var (
	ErrQueueNotFound    = errors.New("no queue for game type")
	ErrMatchNotFound    = errors.New("no match with that id")
	ErrQueueFull        = errors.New("queue is at maximum capacity")
	ErrQueueNotActive   = errors.New("queue is not accepting participants")
	ErrAlreadyQueued    = errors.New("user is already in the queue")
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilQueueRepo     = errors.New("queue repository cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")
)
