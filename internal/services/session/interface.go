package session

import "context"

// Service defines the interface for game session operations
type Service interface {
	// CreateSession creates a session from a match or a lone host
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetResult retrieves the archived result for a finished session
	GetResult(ctx context.Context, input *GetResultInput) (*GetResultOutput, error)

	// ListActiveSessions lists live sessions ordered for discovery
	ListActiveSessions(ctx context.Context, input *ListActiveSessionsInput) (*ListActiveSessionsOutput, error)

	// AddPlayer admits a player. Full roster or duplicate join comes back
	// as Success false, not an error.
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// RemovePlayer soft-removes a player, keeping round indices valid
	RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error)

	// AddSpectator admits a watcher when the config and cap allow
	AddSpectator(ctx context.Context, input *AddSpectatorInput) (*AddSpectatorOutput, error)

	// RemoveSpectator drops a watcher. Idempotent.
	RemoveSpectator(ctx context.Context, input *RemoveSpectatorInput) (*RemoveSpectatorOutput, error)

	// StartGame moves the session out of the lobby
	StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error)

	// StartRound begins the next round through the game engine
	StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error)

	// EndRound closes the current round
	EndRound(ctx context.Context, input *EndRoundInput) (*EndRoundOutput, error)

	// RecordSpokenWord forwards an utterance to the round engine
	RecordSpokenWord(ctx context.Context, input *RecordSpokenWordInput) (*RecordSpokenWordOutput, error)

	// CastVote forwards a vote to the round engine
	CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error)

	// TallyVotes computes the round outcome through the round engine
	TallyVotes(ctx context.Context, input *TallyVotesInput) (*TallyVotesOutput, error)

	// EndGame finishes the session and archives a result when the
	// session had actually started
	EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error)

	// PauseGame suspends play
	PauseGame(ctx context.Context, input *PauseGameInput) (*PauseGameOutput, error)

	// ResumeGame resumes suspended play
	ResumeGame(ctx context.Context, input *ResumeGameInput) (*ResumeGameOutput, error)

	// CancelSession tears the session down. Idempotent.
	CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error)

	// UpdateTrendingScore recomputes and stores the discovery score
	UpdateTrendingScore(ctx context.Context, input *UpdateTrendingScoreInput) (*UpdateTrendingScoreOutput, error)
}
