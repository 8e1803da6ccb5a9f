package imposter

import "context"

// Service defines the interface for the imposter round engine.
// The engine is stateless: every operation takes the round state it acts
// on, so the session layer stays the single owner of in-round state.
type Service interface {
	// InitRound builds fresh round state: imposter pick, word assignment,
	// speaking order
	InitRound(ctx context.Context, input *InitRoundInput) (*InitRoundOutput, error)

	// RecordSpokenWord logs the current speaker's word and advances the turn
	RecordSpokenWord(ctx context.Context, input *RecordSpokenWordInput) (*RecordSpokenWordOutput, error)

	// CastVote records one player's accusation
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// Tally computes the voting results and advances to the results phase
	Tally(ctx context.Context, input *TallyInput) (*TallyOutput, error)

	// AdvancePhase forces the next phase transition, used when a phase
	// deadline fires before every player has acted
	AdvancePhase(ctx context.Context, input *AdvancePhaseInput) (*AdvancePhaseOutput, error)
}
