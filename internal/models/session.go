package models

import (
	"time"
)

// SessionStatus represents the coarse lifecycle state of a game session
type SessionStatus string

const (
	// SessionStatusWaiting indicates a session is gathering players
	SessionStatusWaiting SessionStatus = "waiting"

	// SessionStatusStarting indicates a session is preparing its first round
	SessionStatusStarting SessionStatus = "starting"

	// SessionStatusInProgress indicates rounds are being played
	SessionStatusInProgress SessionStatus = "in_progress"

	// SessionStatusPaused indicates play is suspended but resumable
	SessionStatusPaused SessionStatus = "paused"

	// SessionStatusFinished indicates the session ended normally
	SessionStatusFinished SessionStatus = "finished"

	// SessionStatusCancelled indicates the session was torn down early
	SessionStatusCancelled SessionStatus = "cancelled"
)

// GamePhase represents the finer-grained state within an active session
type GamePhase string

const (
	// GamePhaseLobby indicates players are assembling
	GamePhaseLobby GamePhase = "lobby"

	// GamePhasePreparation indicates the session is setting up a round
	GamePhasePreparation GamePhase = "preparation"

	// GamePhasePlaying indicates a round is underway
	GamePhasePlaying GamePhase = "playing"

	// GamePhaseVoting indicates players are casting votes
	GamePhaseVoting GamePhase = "voting"

	// GamePhaseResults indicates the round outcome is being shown
	GamePhaseResults GamePhase = "results"

	// GamePhaseGameOver indicates the session has concluded
	GamePhaseGameOver GamePhase = "game_over"
)

// ParticipantRole distinguishes players from onlookers
type ParticipantRole string

const (
	// RoleHost is the participant who owns the session
	RoleHost ParticipantRole = "host"

	// RolePlayer is an active competitor
	RolePlayer ParticipantRole = "player"

	// RoleSpectator is a non-playing watcher
	RoleSpectator ParticipantRole = "spectator"
)

// DefaultMaxSpectators bounds spectator admission when the config allows
// spectating but sets no explicit cap
const DefaultMaxSpectators = 50

// GameConfig holds the rules a session runs under
type GameConfig struct {
	// GameType is the game variant being played
	GameType GameType

	// MinPlayers is the smallest roster that can start
	MinPlayers int

	// MaxPlayers is the largest roster the session may admit
	MaxPlayers int

	// RoundTimeLimit bounds each playing phase. Zero means no limit.
	RoundTimeLimit time.Duration

	// VotingTimeLimit bounds each voting phase. Zero means no limit.
	VotingTimeLimit time.Duration

	// MaxRounds caps how many rounds the session plays
	MaxRounds int

	// AllowSpectators controls whether non-players may watch
	AllowSpectators bool

	// MaxSpectators caps the spectator list when spectating is allowed
	MaxSpectators int

	// WordCategory selects the word bank category for word games.
	// Empty means a random category each round.
	WordCategory string
}

// DefaultConfig derives a session config from a game type's rules
func DefaultConfig(gameType GameType) GameConfig {
	rules := RulesFor(gameType)
	return GameConfig{
		GameType:        gameType,
		MinPlayers:      rules.MinPlayers,
		MaxPlayers:      rules.MaxPlayers,
		RoundTimeLimit:  3 * time.Minute,
		VotingTimeLimit: time.Minute,
		MaxRounds:       5,
		AllowSpectators: true,
		MaxSpectators:   DefaultMaxSpectators,
	}
}

// GameParticipant represents one user's membership in a session.
// Records are soft-removed: the Active flag flips and LeftAt is set, but
// the entry stays in the backing list so round-scoped indices stay valid.
type GameParticipant struct {
	// UserID is the participating user
	UserID string

	// UserName is the display name of the user
	UserName string

	// Role is the participant's role in the session
	Role ParticipantRole

	// Active indicates the participant has not left
	Active bool

	// JoinedAt is when the participant entered the session
	JoinedAt time.Time

	// LeftAt is set when the participant is soft-removed
	LeftAt *time.Time
}

// GameSession represents one running game instance
type GameSession struct {
	// ID is the unique identifier for the session
	ID string

	// Config holds the rules the session runs under
	Config GameConfig

	// Status is the coarse lifecycle state
	Status SessionStatus

	// Phase is the finer-grained state within the lifecycle
	Phase GamePhase

	// HostID is the user who owns the session
	HostID string

	// MatchID links back to the matchmaking pass that formed the session,
	// when one did
	MatchID string

	// Participants contains every player record, including soft-removed ones
	Participants []*GameParticipant

	// Spectators contains the current watcher list
	Spectators []*GameParticipant

	// CurrentRound counts rounds, starting at 1 on the first StartRound
	CurrentRound int

	// Highlighted marks sessions surfaced by discovery (e.g. a verified host)
	Highlighted bool

	// TrendingScore is the last computed discovery-ranking score
	TrendingScore float64

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// UpdatedAt is when the session was last mutated
	UpdatedAt time.Time

	// StartedAt is set by StartGame
	StartedAt *time.Time

	// EndedAt is set by EndGame
	EndedAt *time.Time

	// RoundStartedAt is when the current round began
	RoundStartedAt *time.Time

	// RoundEndedAt is when the current round finished
	RoundEndedAt *time.Time

	// LastActivity is bumped by every roster or round mutation and feeds
	// the trending score's decay term
	LastActivity time.Time

	// Imposter holds the round state while an imposter round is in
	// progress. One typed field per supported game type keeps per-game
	// state out of free-form maps.
	Imposter *ImposterGameState

	// Result is the archived outcome, present only after EndGame on a
	// session that actually started
	Result *GameResult
}

// ActivePlayerCount returns the number of players who have not left
func (s *GameSession) ActivePlayerCount() int {
	count := 0
	for _, p := range s.Participants {
		if p.Active {
			count++
		}
	}
	return count
}

// ActivePlayerIDs returns the user ids of players who have not left,
// in join order
func (s *GameSession) ActivePlayerIDs() []string {
	ids := make([]string, 0, len(s.Participants))
	for _, p := range s.Participants {
		if p.Active {
			ids = append(ids, p.UserID)
		}
	}
	return ids
}

// Participant returns the record for a user, soft-removed or not
func (s *GameSession) Participant(userID string) *GameParticipant {
	for _, p := range s.Participants {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// IsFull reports whether the active roster has reached the configured maximum
func (s *GameSession) IsFull() bool {
	return s.ActivePlayerCount() >= s.Config.MaxPlayers
}

// CanStartGame reports whether the session is ready to leave the lobby
func (s *GameSession) CanStartGame() bool {
	return s.Status == SessionStatusWaiting && s.ActivePlayerCount() >= s.Config.MinPlayers
}

// CanAcceptSpectators reports whether another watcher may be admitted
func (s *GameSession) CanAcceptSpectators() bool {
	if !s.Config.AllowSpectators {
		return false
	}
	max := s.Config.MaxSpectators
	if max <= 0 {
		max = DefaultMaxSpectators
	}
	return len(s.Spectators) < max
}

// GameResult represents the archived outcome of a finished session
type GameResult struct {
	// SessionID is the session this result belongs to
	SessionID string

	// WinnerIDs contains the user ids of the winning players
	WinnerIDs []string

	// FinalParticipants snapshots the full participant list at game end
	FinalParticipants []*GameParticipant

	// GameData carries free-form per-game outcome details
	GameData map[string]string

	// StartedAt is when the session started
	StartedAt time.Time

	// EndedAt is when the session ended
	EndedAt time.Time

	// Duration is EndedAt minus StartedAt, never negative
	Duration time.Duration
}
