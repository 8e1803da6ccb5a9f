package imposter

import "errors"

// Define errors
var (
	ErrInsufficientPlayers = errors.New("not enough active players to start a round")
	ErrInvalidPhase        = errors.New("operation not valid in current phase")
	ErrNotYourTurn         = errors.New("it is not this player's turn to speak")
	ErrDuplicateVote       = errors.New("player has already voted this phase")
	ErrNotAPlayer          = errors.New("user is not a player in this round")
	ErrNilState            = errors.New("round state cannot be nil")
	ErrNilConfig           = errors.New("config cannot be nil")
	ErrNilWordBank         = errors.New("word bank cannot be nil")
	ErrNilRandom           = errors.New("random source cannot be nil")
	ErrNilClock            = errors.New("clock cannot be nil")
)
