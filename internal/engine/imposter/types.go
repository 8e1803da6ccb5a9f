package imposter

import (
	"time"

	"github.com/partyround/gamecore/internal/common/clock"
	"github.com/partyround/gamecore/internal/models"
	"github.com/partyround/gamecore/internal/random"
	"github.com/partyround/gamecore/internal/wordbank"
)

const (
	// DefaultReadTime is the word-assignment window players get to read
	// their word before speaking starts
	DefaultReadTime = 30 * time.Second

	// DefaultSpeaksPerRound is how many times each player speaks before
	// the round moves to voting
	DefaultSpeaksPerRound = 1
)

// Config holds configuration for the imposter engine
type Config struct {
	// MinPlayers is the smallest roster a round can start with
	MinPlayers int

	// ReadTime is the word-assignment window
	ReadTime time.Duration

	// SpeaksPerRound is how many utterances each player owes per round
	SpeaksPerRound int

	// Dependencies
	WordBank wordbank.WordBank
	Random   random.Source
	Clock    clock.Clock
}

// InitRoundInput contains parameters for starting a round
type InitRoundInput struct {
	// PlayerIDs are the active players at round start
	PlayerIDs []string

	// Round is the session's round counter for this round
	Round int

	// Category selects the word bank category. Empty picks a random one.
	Category string

	// SpeakingTimeLimit bounds the speaking phase. Zero means no deadline.
	SpeakingTimeLimit time.Duration
}

// InitRoundOutput contains the freshly built round state
type InitRoundOutput struct {
	// State is the new round state, owned by the caller
	State *models.ImposterGameState
}

// RecordSpokenWordInput contains parameters for logging an utterance
type RecordSpokenWordInput struct {
	// State is the round being played
	State *models.ImposterGameState

	// PlayerID is the speaker
	PlayerID string

	// Word is what they said
	Word string

	// VotingTimeLimit bounds the voting phase entered when speaking
	// completes. Zero means no deadline.
	VotingTimeLimit time.Duration
}

// RecordSpokenWordOutput contains the result of logging an utterance
type RecordSpokenWordOutput struct {
	// NextSpeakerID is whose turn it is now
	NextSpeakerID string

	// SpeakingComplete indicates the round moved to the voting phase
	SpeakingComplete bool
}

// CastVoteInput contains parameters for recording a vote
type CastVoteInput struct {
	// State is the round being played
	State *models.ImposterGameState

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

// TallyInput contains parameters for computing voting results
type TallyInput struct {
	// State is the round being played
	State *models.ImposterGameState

	// Participants resolves player ids to display names for the
	// per-vote detail records
	Participants []*models.GameParticipant
}

// TallyOutput contains the computed voting results
type TallyOutput struct {
	// Results is the immutable outcome of the voting phase
	Results *models.VotingResults
}

// AdvancePhaseInput contains parameters for a forced phase transition
type AdvancePhaseInput struct {
	// State is the round being played
	State *models.ImposterGameState

	// SpeakingTimeLimit bounds the speaking phase entered from word
	// assignment. Zero means no deadline.
	SpeakingTimeLimit time.Duration

	// VotingTimeLimit bounds the voting phase entered from speaking.
	// Zero means no deadline.
	VotingTimeLimit time.Duration

	// Participants is required when advancing out of the voting phase,
	// which runs the tally
	Participants []*models.GameParticipant
}

// AdvancePhaseOutput contains the result of a forced transition
type AdvancePhaseOutput struct {
	// Phase is the phase the round is now in
	Phase models.ImposterPhase

	// Results is set when the transition ran the tally
	Results *models.VotingResults
}
