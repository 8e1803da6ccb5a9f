package imposter

import (
	"context"
	"fmt"
	"time"

	"github.com/partyround/gamecore/internal/models"
	"github.com/partyround/gamecore/internal/random"
)

// service implements the Service interface
type service struct {
	config *Config
}

// New creates a new imposter engine
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.WordBank == nil {
		return nil, ErrNilWordBank
	}
	if cfg.Random == nil {
		return nil, ErrNilRandom
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.MinPlayers <= 0 {
		cfg.MinPlayers = models.RulesFor(models.GameTypeImposter).MinPlayers
	}
	if cfg.ReadTime <= 0 {
		cfg.ReadTime = DefaultReadTime
	}
	if cfg.SpeaksPerRound <= 0 {
		cfg.SpeaksPerRound = DefaultSpeaksPerRound
	}

	return &service{
		config: cfg,
	}, nil
}

// GameType identifies the variant this engine runs
func (s *service) GameType() models.GameType {
	return models.GameTypeImposter
}

// InitRound builds fresh round state. One player is picked uniformly at
// random as the imposter; everyone else receives the word. The speaking
// order is a random permutation of all players, imposter included.
func (s *service) InitRound(ctx context.Context, input *InitRoundInput) (*InitRoundOutput, error) {
	if input == nil {
		return nil, ErrNilState
	}
	if len(input.PlayerIDs) < s.config.MinPlayers {
		return nil, ErrInsufficientPlayers
	}

	imposterID := random.PickOne(s.config.Random, input.PlayerIDs)

	word, err := s.config.WordBank.GetWord(input.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch word: %w", err)
	}

	playersWithWord := make([]string, 0, len(input.PlayerIDs)-1)
	for _, id := range input.PlayerIDs {
		if id != imposterID {
			playersWithWord = append(playersWithWord, id)
		}
	}

	order := random.Shuffle(s.config.Random, input.PlayerIDs)

	now := s.config.Clock.Now()
	deadline := now.Add(s.config.ReadTime)

	state := &models.ImposterGameState{
		Round:            input.Round,
		ImposterID:       imposterID,
		PlayersWithWord:  playersWithWord,
		Word:             word,
		Category:         input.Category,
		SpeakingOrder:    order,
		CurrentSpeakerID: order[0],
		SpeakCounts:      make(map[string]int, len(order)),
		Votes:            make(map[string]*models.Vote),
		Phase:            models.ImposterPhaseWordAssignment,
		PhaseDeadline:    &deadline,
		StartedAt:        now,
	}

	return &InitRoundOutput{
		State: state,
	}, nil
}

// RecordSpokenWord logs the current speaker's word, advances the turn and,
// once every player has spoken their share, moves the round to voting.
func (s *service) RecordSpokenWord(ctx context.Context, input *RecordSpokenWordInput) (*RecordSpokenWordOutput, error) {
	if input == nil || input.State == nil {
		return nil, ErrNilState
	}

	state := input.State
	if state.Phase != models.ImposterPhaseSpeaking {
		return nil, ErrInvalidPhase
	}
	if !inOrder(state.SpeakingOrder, input.PlayerID) {
		return nil, ErrNotAPlayer
	}
	if input.PlayerID != state.CurrentSpeakerID {
		return nil, ErrNotYourTurn
	}

	state.SpokenWords = append(state.SpokenWords, &models.SpokenWord{
		PlayerID: input.PlayerID,
		Word:     input.Word,
		Round:    state.Round,
		SpokenAt: s.config.Clock.Now(),
	})
	state.SpeakCounts[input.PlayerID]++

	// Advance to the next speaker, wrapping around the order
	for i, id := range state.SpeakingOrder {
		if id == input.PlayerID {
			state.CurrentSpeakerID = state.SpeakingOrder[(i+1)%len(state.SpeakingOrder)]
			break
		}
	}

	output := &RecordSpokenWordOutput{
		NextSpeakerID: state.CurrentSpeakerID,
	}

	if state.AllHaveSpoken(s.config.SpeaksPerRound) {
		s.enterVoting(state, input.VotingTimeLimit)
		output.NextSpeakerID = ""
		output.SpeakingComplete = true
	}

	return output, nil
}

// CastVote records one player's accusation. A second vote from the same
// player is rejected unless Overwrite is set, which replaces the earlier
// vote; votes are mutable until the tally runs.
func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	if input == nil || input.State == nil {
		return nil, ErrNilState
	}

	state := input.State
	if state.Phase != models.ImposterPhaseVoting {
		return nil, ErrInvalidPhase
	}
	if !inOrder(state.SpeakingOrder, input.VoterID) {
		return nil, ErrNotAPlayer
	}
	if !inOrder(state.SpeakingOrder, input.TargetID) {
		return nil, ErrNotAPlayer
	}

	if _, voted := state.Votes[input.VoterID]; voted && !input.Overwrite {
		return nil, ErrDuplicateVote
	}

	state.Votes[input.VoterID] = &models.Vote{
		VoterID:  input.VoterID,
		TargetID: input.TargetID,
		CastAt:   s.config.Clock.Now(),
	}

	return &CastVoteOutput{
		VotesCast:  len(state.Votes),
		AllVotesIn: len(state.Votes) == len(state.SpeakingOrder),
	}, nil
}

// Tally computes the voting results and advances the round to the
// results phase
func (s *service) Tally(ctx context.Context, input *TallyInput) (*TallyOutput, error) {
	if input == nil || input.State == nil {
		return nil, ErrNilState
	}
	if input.State.Phase != models.ImposterPhaseVoting {
		return nil, ErrInvalidPhase
	}

	results := s.tally(input.State, input.Participants)

	return &TallyOutput{
		Results: results,
	}, nil
}

// AdvancePhase forces the next phase transition. The session layer calls
// this when a phase deadline fires before every player has acted.
func (s *service) AdvancePhase(ctx context.Context, input *AdvancePhaseInput) (*AdvancePhaseOutput, error) {
	if input == nil || input.State == nil {
		return nil, ErrNilState
	}

	state := input.State
	output := &AdvancePhaseOutput{}

	switch state.Phase {
	case models.ImposterPhaseWordAssignment:
		state.Phase = models.ImposterPhaseSpeaking
		s.setDeadline(state, input.SpeakingTimeLimit)

	case models.ImposterPhaseSpeaking:
		s.enterVoting(state, input.VotingTimeLimit)

	case models.ImposterPhaseVoting:
		output.Results = s.tally(state, input.Participants)

	case models.ImposterPhaseResults:
		state.Phase = models.ImposterPhaseGameOver
		state.PhaseDeadline = nil

	default:
		// game over is terminal for the round
		return nil, ErrInvalidPhase
	}

	output.Phase = state.Phase
	return output, nil
}

// enterVoting moves the round to the voting phase
func (s *service) enterVoting(state *models.ImposterGameState, limit time.Duration) {
	state.Phase = models.ImposterPhaseVoting
	state.CurrentSpeakerID = ""
	s.setDeadline(state, limit)
}

// setDeadline stamps a soft deadline on the current phase, or clears it
// when the phase has no limit
func (s *service) setDeadline(state *models.ImposterGameState, limit time.Duration) {
	if limit <= 0 {
		state.PhaseDeadline = nil
		return
	}
	deadline := s.config.Clock.Now().Add(limit)
	state.PhaseDeadline = &deadline
}

// tally computes the results, stores them on the state and moves the
// round to the results phase
func (s *service) tally(state *models.ImposterGameState, participants []*models.GameParticipant) *models.VotingResults {
	counts := make(map[string]int)
	for _, vote := range state.Votes {
		counts[vote.TargetID]++
	}

	// The voted-out player is the unique maximum. A tie for the maximum
	// eliminates nobody and the imposter survives the round.
	votedOut := ""
	maxVotes := 0
	tied := false
	for target, count := range counts {
		switch {
		case count > maxVotes:
			maxVotes = count
			votedOut = target
			tied = false
		case count == maxVotes:
			tied = true
		}
	}
	if tied {
		votedOut = ""
	}

	wasImposter := votedOut != "" && votedOut == state.ImposterID

	names := make(map[string]string, len(participants))
	active := make(map[string]bool, len(participants))
	for _, p := range participants {
		names[p.UserID] = p.UserName
		active[p.UserID] = p.Active
	}

	var winners []string
	if wasImposter {
		for _, id := range state.SpeakingOrder {
			if id == state.ImposterID {
				continue
			}
			// Players who left mid-round do not collect the win
			if stillActive, known := active[id]; known && !stillActive {
				continue
			}
			winners = append(winners, id)
		}
	} else {
		winners = []string{state.ImposterID}
	}

	// Details follow speaking order so reports are deterministic
	details := make([]*models.VoteDetail, 0, len(state.Votes))
	for _, voterID := range state.SpeakingOrder {
		vote, ok := state.Votes[voterID]
		if !ok {
			continue
		}
		details = append(details, &models.VoteDetail{
			VoterID:    vote.VoterID,
			VoterName:  names[vote.VoterID],
			TargetID:   vote.TargetID,
			TargetName: names[vote.TargetID],
		})
	}

	results := &models.VotingResults{
		VoteCounts:          counts,
		VotedOutID:          votedOut,
		WasImposterVotedOut: wasImposter,
		WinnerIDs:           winners,
		Details:             details,
	}

	state.Results = results
	state.Phase = models.ImposterPhaseResults
	state.PhaseDeadline = nil

	return results
}

// inOrder reports whether an id is part of the round's speaking order
func inOrder(order []string, id string) bool {
	for _, o := range order {
		if o == id {
			return true
		}
	}
	return false
}
