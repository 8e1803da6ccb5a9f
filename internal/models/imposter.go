package models

import (
	"time"
)

// ImposterPhase represents the turn/voting state within one imposter round
type ImposterPhase string

const (
	// ImposterPhaseWordAssignment indicates players are reading their word
	ImposterPhaseWordAssignment ImposterPhase = "word_assignment"

	// ImposterPhaseSpeaking indicates players are taking turns speaking
	ImposterPhaseSpeaking ImposterPhase = "speaking"

	// ImposterPhaseVoting indicates players are voting on the imposter
	ImposterPhaseVoting ImposterPhase = "voting"

	// ImposterPhaseResults indicates the tally is being shown
	ImposterPhaseResults ImposterPhase = "results"

	// ImposterPhaseGameOver indicates the round is terminal
	ImposterPhaseGameOver ImposterPhase = "game_over"
)

// SpokenWord records one utterance in the speaking phase
type SpokenWord struct {
	// PlayerID is the speaker
	PlayerID string

	// Word is what they said
	Word string

	// Round tags the utterance with the round it was spoken in
	Round int

	// SpokenAt is when the word was recorded
	SpokenAt time.Time
}

// Vote records one player's accusation
type Vote struct {
	// VoterID is the player casting the vote
	VoterID string

	// TargetID is the accused player
	TargetID string

	// CastAt is when the vote was recorded
	CastAt time.Time
}

// VoteDetail resolves a vote's ids to display names for reporting
type VoteDetail struct {
	// VoterID is the player who cast the vote
	VoterID string

	// VoterName is the display name of the voter
	VoterName string

	// TargetID is the accused player
	TargetID string

	// TargetName is the display name of the accused
	TargetName string
}

// VotingResults represents the outcome of one voting phase.
// Computed once, immutable.
type VotingResults struct {
	// VoteCounts maps each accused player to the votes against them
	VoteCounts map[string]int

	// VotedOutID is the uniquely most-accused player. Empty when the
	// maximum is tied: on a tie nobody is voted out and the imposter
	// survives the round.
	VotedOutID string

	// WasImposterVotedOut reports whether VotedOutID is the imposter
	WasImposterVotedOut bool

	// WinnerIDs is never empty: all non-imposter active players when the
	// imposter was caught, the imposter alone otherwise
	WinnerIDs []string

	// Details resolves every vote to display names
	Details []*VoteDetail
}

// ImposterGameState holds the in-round state for the imposter game.
// Created at round start, mutated each phase, discarded at game over.
type ImposterGameState struct {
	// Round is the round this state belongs to
	Round int

	// ImposterID is the player who did not receive the word.
	// Never present in PlayersWithWord.
	ImposterID string

	// PlayersWithWord contains every player who received the word
	PlayersWithWord []string

	// Word is the secret word for the round
	Word string

	// Category is the word bank category the word came from
	Category string

	// SpokenWords logs every utterance, in order
	SpokenWords []*SpokenWord

	// SpeakingOrder is a permutation of the round's player ids,
	// imposter included
	SpeakingOrder []string

	// CurrentSpeakerID is the player whose turn it is
	CurrentSpeakerID string

	// SpeakCounts tracks how many times each player has spoken this round
	SpeakCounts map[string]int

	// Votes maps voter id to their current vote
	Votes map[string]*Vote

	// Results is set once the tally runs
	Results *VotingResults

	// Phase is the current turn/voting state
	Phase ImposterPhase

	// PhaseDeadline is the soft deadline for the current phase, when one
	// applies
	PhaseDeadline *time.Time

	// StartedAt is when the round was initialized
	StartedAt time.Time
}

// HasSpoken reports whether a player has spoken at least once this round
func (s *ImposterGameState) HasSpoken(playerID string) bool {
	return s.SpeakCounts[playerID] > 0
}

// AllHaveSpoken reports whether every player in the speaking order has
// spoken at least the given number of times
func (s *ImposterGameState) AllHaveSpoken(times int) bool {
	for _, id := range s.SpeakingOrder {
		if s.SpeakCounts[id] < times {
			return false
		}
	}
	return true
}
