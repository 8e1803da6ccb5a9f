package session

import "errors"

// Define errors
var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrResultNotFound       = errors.New("no result for session")
	ErrInvalidSessionState  = errors.New("operation invalid for session state")
	ErrInsufficientPlayers  = errors.New("not enough active players")
	ErrInvalidGameType      = errors.New("no engine for game type")
	ErrNoRoundInProgress    = errors.New("no round in progress")
	ErrRoundLimitReached    = errors.New("session has played its configured rounds")
	ErrSessionClosed        = errors.New("session runner has shut down")
	ErrNilConfig            = errors.New("config cannot be nil")
	ErrNilSessionRepo       = errors.New("session repository cannot be nil")
	ErrNilEngineRegistry    = errors.New("engine registry cannot be nil")
	ErrNilClock             = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator     = errors.New("UUID generator cannot be nil")
)
