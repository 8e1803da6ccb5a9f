package session

import (
	"go.uber.org/zap"

	"github.com/partyround/gamecore/internal/common/clock"
	"github.com/partyround/gamecore/internal/common/uuid"
	"github.com/partyround/gamecore/internal/engine"
	"github.com/partyround/gamecore/internal/models"
	"github.com/partyround/gamecore/internal/notifier"
	sessionRepo "github.com/partyround/gamecore/internal/repositories/session"
)

// Config holds configuration for the session service
type Config struct {
	// Repository dependency
	SessionRepo sessionRepo.Repository

	// Engines holds the round engine for each supported game type
	Engines *engine.Registry

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Notifier receives phase and lifecycle hooks. Optional.
	Notifier notifier.Notifier

	// Logger for session activity. Optional.
	Logger *zap.Logger
}

// CreateSessionInput contains parameters for creating a session.
// A session is seeded either from a matchmaking result or from a lone
// host who gathers players afterwards.
type CreateSessionInput struct {
	// GameType is the game variant to play
	GameType models.GameType

	// HostID is the user who owns the session. When Match is set and
	// HostID is empty, the first match participant hosts.
	HostID string

	// HostName is the display name of the host
	HostName string

	// Match, when set, seeds the roster from a matchmaking result
	Match *models.GameMatch

	// Config overrides the game type's default session config
	Config *models.GameConfig

	// Highlighted marks the session for discovery ranking
	Highlighted bool
}

// CreateSessionOutput contains the created session
type CreateSessionOutput struct {
	Session *models.GameSession
}

// GetSessionInput contains parameters for retrieving a session
type GetSessionInput struct {
	// SessionID is the session to retrieve
	SessionID string
}

// GetSessionOutput contains the retrieved session
type GetSessionOutput struct {
	Session *models.GameSession
}

// GetResultInput contains parameters for retrieving an archived result
type GetResultInput struct {
	// SessionID is the session whose result to retrieve
	SessionID string
}

// GetResultOutput contains the archived result
type GetResultOutput struct {
	Result *models.GameResult
}

// AddPlayerInput contains parameters for admitting a player
type AddPlayerInput struct {
	// SessionID is the session to join
	SessionID string

	// UserID is the joining user
	UserID string

	// UserName is the display name of the joining user
	UserName string
}

// AddPlayerOutput contains the result of a join attempt. A full roster
// or a duplicate join is an expected condition, not an error.
type AddPlayerOutput struct {
	// Success indicates the player was admitted
	Success bool

	// Session is the session after the attempt
	Session *models.GameSession
}

// RemovePlayerInput contains parameters for soft-removing a player
type RemovePlayerInput struct {
	// SessionID is the session to leave
	SessionID string

	// UserID is the departing user
	UserID string
}

// RemovePlayerOutput contains the result of a removal
type RemovePlayerOutput struct {
	// Removed indicates an active record was actually deactivated
	Removed bool

	// Session is the session after the removal
	Session *models.GameSession
}

// AddSpectatorInput contains parameters for admitting a watcher
type AddSpectatorInput struct {
	// SessionID is the session to watch
	SessionID string

	// UserID is the joining watcher
	UserID string

	// UserName is the display name of the watcher
	UserName string
}

// AddSpectatorOutput contains the result of a spectator join attempt
type AddSpectatorOutput struct {
	// Success indicates the spectator was admitted
	Success bool

	// SpectatorCount is the watcher count after the attempt
	SpectatorCount int
}

// RemoveSpectatorInput contains parameters for removing a watcher
type RemoveSpectatorInput struct {
	// SessionID is the session being watched
	SessionID string

	// UserID is the departing watcher
	UserID string
}

// RemoveSpectatorOutput contains the result of a spectator removal
type RemoveSpectatorOutput struct {
	// Removed indicates a watcher was actually removed
	Removed bool

	// SpectatorCount is the watcher count after the removal
	SpectatorCount int
}

// StartGameInput contains parameters for leaving the lobby
type StartGameInput struct {
	// SessionID is the session to start
	SessionID string
}

// StartGameOutput contains the started session
type StartGameOutput struct {
	Session *models.GameSession
}

// StartRoundInput contains parameters for starting the next round
type StartRoundInput struct {
	// SessionID is the session to advance
	SessionID string
}

// StartRoundOutput contains the result of starting a round
type StartRoundOutput struct {
	// Round is the round number just started
	Round int

	// Session is the session after the round start
	Session *models.GameSession
}

// EndRoundInput contains parameters for closing the current round
type EndRoundInput struct {
	// SessionID is the session to advance
	SessionID string
}

// EndRoundOutput contains the session after the round close
type EndRoundOutput struct {
	Session *models.GameSession
}

// RecordSpokenWordInput contains parameters for logging an utterance
type RecordSpokenWordInput struct {
	// SessionID is the session being played
	SessionID string

	// PlayerID is the speaker
	PlayerID string

	// Word is what they said
	Word string
}

// RecordSpokenWordOutput contains the result of logging an utterance
type RecordSpokenWordOutput struct {
	// NextSpeakerID is whose turn it is now
	NextSpeakerID string

	// SpeakingComplete indicates the session moved to the voting phase
	SpeakingComplete bool
}

// CastVoteInput contains parameters for recording a vote
type CastVoteInput struct {
	// SessionID is the session being played
	SessionID string

	// VoterID is the player casting the vote
	VoterID string

	// TargetID is the accused player
	TargetID string

	// Overwrite allows replacing an earlier vote before the tally
	Overwrite bool
}

// CastVoteOutput contains the result of recording a vote
type CastVoteOutput struct {
	// VotesCast is how many players have voted so far
	VotesCast int

	// AllVotesIn indicates every player in the round has voted
	AllVotesIn bool
}

// TallyVotesInput contains parameters for computing the round outcome
type TallyVotesInput struct {
	// SessionID is the session being played
	SessionID string
}

// TallyVotesOutput contains the computed round outcome
type TallyVotesOutput struct {
	// Results is the immutable outcome of the voting phase
	Results *models.VotingResults

	// Session is the session after the tally
	Session *models.GameSession
}

// EndGameInput contains parameters for finishing a session
type EndGameInput struct {
	// SessionID is the session to finish
	SessionID string

	// WinnerIDs are the winning players
	WinnerIDs []string

	// GameData carries free-form per-game outcome details to archive
	GameData map[string]string
}

// EndGameOutput contains the result of finishing a session
type EndGameOutput struct {
	// Session is the finished session
	Session *models.GameSession

	// Result is the archived outcome. Nil when the session never started.
	Result *models.GameResult
}

// PauseGameInput contains parameters for suspending play
type PauseGameInput struct {
	// SessionID is the session to pause
	SessionID string
}

// PauseGameOutput contains the paused session
type PauseGameOutput struct {
	Session *models.GameSession
}

// ResumeGameInput contains parameters for resuming play
type ResumeGameInput struct {
	// SessionID is the session to resume
	SessionID string
}

// ResumeGameOutput contains the resumed session
type ResumeGameOutput struct {
	Session *models.GameSession
}

// CancelSessionInput contains parameters for tearing a session down
type CancelSessionInput struct {
	// SessionID is the session to cancel
	SessionID string
}

// CancelSessionOutput contains the result of a cancellation
type CancelSessionOutput struct {
	// Cancelled indicates the session was actually cancelled by this call
	Cancelled bool
}

// UpdateTrendingScoreInput contains parameters for recomputing a
// session's discovery score
type UpdateTrendingScoreInput struct {
	// SessionID is the session to score
	SessionID string
}

// UpdateTrendingScoreOutput contains the recomputed score
type UpdateTrendingScoreOutput struct {
	// Score is the stored trending score
	Score float64
}

// ListActiveSessionsInput contains parameters for listing live sessions
type ListActiveSessionsInput struct {
}

// ListActiveSessionsOutput contains the live sessions, most trending first
type ListActiveSessionsOutput struct {
	// Sessions holds every session that has not finished or been cancelled
	Sessions []*models.GameSession
}
