package session

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/partyround/gamecore/internal/common/clock"
	"github.com/partyround/gamecore/internal/common/uuid"
	"github.com/partyround/gamecore/internal/engine"
	"github.com/partyround/gamecore/internal/engine/imposter"
	"github.com/partyround/gamecore/internal/models"
	"github.com/partyround/gamecore/internal/notifier"
	sessionRepo "github.com/partyround/gamecore/internal/repositories/session"
)

// service implements the Service interface. Each session id gets a
// runner goroutine that serializes every mutation against that session,
// so state is single-threaded within a session and parallel across
// sessions.
type service struct {
	sessionRepo sessionRepo.Repository
	engines     *engine.Registry
	clock       clock.Clock
	uuid        uuid.UUID
	notifier    notifier.Notifier
	log         *zap.Logger

	mu      sync.Mutex
	runners map[string]*runner
}

// New creates a new session service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.Engines == nil {
		return nil, ErrNilEngineRegistry
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &service{
		sessionRepo: cfg.SessionRepo,
		engines:     cfg.Engines,
		clock:       cfg.Clock,
		uuid:        cfg.UUIDGenerator,
		notifier:    cfg.Notifier,
		log:         log,
		runners:     make(map[string]*runner),
	}, nil
}

// CreateSession creates a session from a match or a lone host
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if _, err := s.engines.Get(input.GameType); err != nil {
		return nil, ErrInvalidGameType
	}

	cfg := models.DefaultConfig(input.GameType)
	if input.Config != nil {
		cfg = *input.Config
		cfg.GameType = input.GameType
	}

	now := s.clock.Now()
	hostID := input.HostID

	var participants []*models.GameParticipant
	if input.Match != nil {
		if hostID == "" && len(input.Match.Participants) > 0 {
			hostID = input.Match.Participants[0].UserID
		}
		for _, p := range input.Match.Participants {
			role := models.RolePlayer
			if p.UserID == hostID {
				role = models.RoleHost
			}
			participants = append(participants, &models.GameParticipant{
				UserID:   p.UserID,
				UserName: p.UserName,
				Role:     role,
				Active:   true,
				JoinedAt: now,
			})
		}
	} else {
		participants = []*models.GameParticipant{{
			UserID:   hostID,
			UserName: input.HostName,
			Role:     models.RoleHost,
			Active:   true,
			JoinedAt: now,
		}}
	}

	sess := &models.GameSession{
		ID:           s.uuid.NewUUID(),
		Config:       cfg,
		Status:       models.SessionStatusWaiting,
		Phase:        models.GamePhaseLobby,
		HostID:       hostID,
		Participants: participants,
		Spectators:   []*models.GameParticipant{},
		Highlighted:  input.Highlighted,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastActivity: now,
	}
	if input.Match != nil {
		sess.MatchID = input.Match.ID
	}
	sess.TrendingScore = trendingScore(sess, now)

	if err := s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: sess}); err != nil {
		return nil, err
	}

	s.log.Info("session created",
		zap.String("session_id", sess.ID),
		zap.String("game_type", string(cfg.GameType)),
		zap.Int("participants", len(participants)),
	)

	return &CreateSessionOutput{Session: sess}, nil
}

// GetSession retrieves a session by ID
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	sess, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}
	return &GetSessionOutput{Session: sess}, nil
}

// GetResult retrieves the archived result for a finished session
func (s *service) GetResult(ctx context.Context, input *GetResultInput) (*GetResultOutput, error) {
	result, err := s.sessionRepo.GetResult(ctx, &sessionRepo.GetResultInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrResultNotFound) {
			return nil, ErrResultNotFound
		}
		return nil, err
	}
	return &GetResultOutput{Result: result}, nil
}

// ListActiveSessions lists every live session, most trending first
func (s *service) ListActiveSessions(ctx context.Context, input *ListActiveSessionsInput) (*ListActiveSessionsOutput, error) {
	out, err := s.sessionRepo.GetActiveSessions(ctx, &sessionRepo.GetActiveSessionsInput{})
	if err != nil {
		return nil, err
	}

	sessions := out.Sessions
	sort.Slice(sessions, func(i, j int) bool {
		if sessions[i].TrendingScore != sessions[j].TrendingScore {
			return sessions[i].TrendingScore > sessions[j].TrendingScore
		}
		return sessions[i].CreatedAt.Before(sessions[j].CreatedAt)
	})

	return &ListActiveSessionsOutput{Sessions: sessions}, nil
}

// AddPlayer admits a player. A full roster or a duplicate active record
// comes back as Success false with the roster unchanged.
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		if sessionOver(sess) {
			return nil, false, ErrInvalidSessionState
		}

		existing := sess.Participant(input.UserID)
		if existing != nil && existing.Active {
			return &AddPlayerOutput{Success: false, Session: sess}, false, nil
		}
		if sess.IsFull() {
			return &AddPlayerOutput{Success: false, Session: sess}, false, nil
		}

		now := s.clock.Now()
		if existing != nil {
			// Rejoin reactivates the old record so round indices stay valid
			existing.Active = true
			existing.LeftAt = nil
			existing.JoinedAt = now
		} else {
			sess.Participants = append(sess.Participants, &models.GameParticipant{
				UserID:   input.UserID,
				UserName: input.UserName,
				Role:     models.RolePlayer,
				Active:   true,
				JoinedAt: now,
			})
		}
		sess.LastActivity = now

		return &AddPlayerOutput{Success: true, Session: sess}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*AddPlayerOutput), nil
}

// RemovePlayer soft-removes a player: the record stays in the roster,
// flagged inactive, so speaking order and vote keys stay valid mid-round
func (s *service) RemovePlayer(ctx context.Context, input *RemovePlayerInput) (*RemovePlayerOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		p := sess.Participant(input.UserID)
		if p == nil || !p.Active {
			return &RemovePlayerOutput{Removed: false, Session: sess}, false, nil
		}

		now := s.clock.Now()
		p.Active = false
		p.LeftAt = &now
		sess.LastActivity = now

		return &RemovePlayerOutput{Removed: true, Session: sess}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*RemovePlayerOutput), nil
}

// AddSpectator admits a watcher when the config and cap allow
func (s *service) AddSpectator(ctx context.Context, input *AddSpectatorInput) (*AddSpectatorOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		if sessionOver(sess) {
			return nil, false, ErrInvalidSessionState
		}
		if !sess.CanAcceptSpectators() {
			return &AddSpectatorOutput{Success: false, SpectatorCount: len(sess.Spectators)}, false, nil
		}
		for _, w := range sess.Spectators {
			if w.UserID == input.UserID {
				return &AddSpectatorOutput{Success: false, SpectatorCount: len(sess.Spectators)}, false, nil
			}
		}

		sess.Spectators = append(sess.Spectators, &models.GameParticipant{
			UserID:   input.UserID,
			UserName: input.UserName,
			Role:     models.RoleSpectator,
			Active:   true,
			JoinedAt: s.clock.Now(),
		})

		return &AddSpectatorOutput{Success: true, SpectatorCount: len(sess.Spectators)}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*AddSpectatorOutput), nil
}

// RemoveSpectator drops a watcher. Removing an absent watcher is a no-op.
func (s *service) RemoveSpectator(ctx context.Context, input *RemoveSpectatorInput) (*RemoveSpectatorOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		kept := make([]*models.GameParticipant, 0, len(sess.Spectators))
		removed := false
		for _, w := range sess.Spectators {
			if w.UserID == input.UserID {
				removed = true
				continue
			}
			kept = append(kept, w)
		}
		if !removed {
			return &RemoveSpectatorOutput{Removed: false, SpectatorCount: len(sess.Spectators)}, false, nil
		}

		sess.Spectators = kept
		return &RemoveSpectatorOutput{Removed: true, SpectatorCount: len(kept)}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*RemoveSpectatorOutput), nil
}

// StartGame moves the session out of the lobby
func (s *service) StartGame(ctx context.Context, input *StartGameInput) (*StartGameOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		if sess.Status != models.SessionStatusWaiting {
			return nil, false, ErrInvalidSessionState
		}
		if sess.ActivePlayerCount() < sess.Config.MinPlayers {
			return nil, false, ErrInsufficientPlayers
		}

		now := s.clock.Now()
		old := sess.Phase
		sess.Status = models.SessionStatusStarting
		sess.Phase = models.GamePhasePreparation
		sess.StartedAt = &now
		sess.LastActivity = now
		s.queuePhaseNotice(r, sess, old, sess.Phase)

		return &StartGameOutput{Session: sess}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*StartGameOutput), nil
}

// StartRound begins the next round through the game engine. When too few
// players remain active the session falls back to waiting.
func (s *service) StartRound(ctx context.Context, input *StartRoundInput) (*StartRoundOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		if sess.Status != models.SessionStatusStarting && sess.Status != models.SessionStatusInProgress {
			return nil, false, ErrInvalidSessionState
		}
		if sess.Config.MaxRounds > 0 && sess.CurrentRound >= sess.Config.MaxRounds {
			return nil, false, ErrRoundLimitReached
		}

		rounds, err := s.roundEngine(sess.Config.GameType)
		if err != nil {
			return nil, false, err
		}

		if sess.ActivePlayerCount() < sess.Config.MinPlayers {
			old := sess.Phase
			sess.Status = models.SessionStatusWaiting
			sess.Phase = models.GamePhaseLobby
			sess.Imposter = nil
			r.stopTimer()
			s.queuePhaseNotice(r, sess, old, sess.Phase)
			return nil, true, ErrInsufficientPlayers
		}

		out, err := rounds.InitRound(ctx, &imposter.InitRoundInput{
			PlayerIDs:         sess.ActivePlayerIDs(),
			Round:             sess.CurrentRound + 1,
			Category:          sess.Config.WordCategory,
			SpeakingTimeLimit: sess.Config.RoundTimeLimit,
		})
		if err != nil {
			return nil, false, err
		}

		now := s.clock.Now()
		old := sess.Phase
		sess.CurrentRound++
		sess.Imposter = out.State
		sess.Status = models.SessionStatusInProgress
		sess.Phase = models.GamePhasePlaying
		sess.RoundStartedAt = &now
		sess.RoundEndedAt = nil
		sess.LastActivity = now
		r.scheduleDeadline(out.State.Phase, out.State.PhaseDeadline)
		s.queuePhaseNotice(r, sess, old, sess.Phase)

		s.log.Info("round started",
			zap.String("session_id", sess.ID),
			zap.Int("round", sess.CurrentRound),
			zap.Int("players", sess.ActivePlayerCount()),
		)

		return &StartRoundOutput{Round: sess.CurrentRound, Session: sess}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*StartRoundOutput), nil
}

// EndRound closes the current round
func (s *service) EndRound(ctx context.Context, input *EndRoundInput) (*EndRoundOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		if sess.Status != models.SessionStatusInProgress {
			return nil, false, ErrInvalidSessionState
		}
		if sess.Imposter == nil {
			return nil, false, ErrNoRoundInProgress
		}

		now := s.clock.Now()
		old := sess.Phase
		sess.RoundEndedAt = &now
		sess.Phase = models.GamePhaseResults
		sess.LastActivity = now
		r.stopTimer()
		s.queuePhaseNotice(r, sess, old, sess.Phase)

		return &EndRoundOutput{Session: sess}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*EndRoundOutput), nil
}

// RecordSpokenWord forwards an utterance to the round engine
func (s *service) RecordSpokenWord(ctx context.Context, input *RecordSpokenWordInput) (*RecordSpokenWordOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		rounds, err := s.roundState(sess)
		if err != nil {
			return nil, false, err
		}

		out, err := rounds.RecordSpokenWord(ctx, &imposter.RecordSpokenWordInput{
			State:           sess.Imposter,
			PlayerID:        input.PlayerID,
			Word:            input.Word,
			VotingTimeLimit: sess.Config.VotingTimeLimit,
		})
		if err != nil {
			return nil, false, err
		}

		sess.LastActivity = s.clock.Now()
		if out.SpeakingComplete {
			old := sess.Phase
			sess.Phase = models.GamePhaseVoting
			r.scheduleDeadline(sess.Imposter.Phase, sess.Imposter.PhaseDeadline)
			s.queuePhaseNotice(r, sess, old, sess.Phase)
		}

		return &RecordSpokenWordOutput{
			NextSpeakerID:    out.NextSpeakerID,
			SpeakingComplete: out.SpeakingComplete,
		}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*RecordSpokenWordOutput), nil
}

// CastVote forwards a vote to the round engine
func (s *service) CastVote(ctx context.Context, input *CastVoteInput) (*CastVoteOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		rounds, err := s.roundState(sess)
		if err != nil {
			return nil, false, err
		}

		out, err := rounds.CastVote(ctx, &imposter.CastVoteInput{
			State:     sess.Imposter,
			VoterID:   input.VoterID,
			TargetID:  input.TargetID,
			Overwrite: input.Overwrite,
		})
		if err != nil {
			return nil, false, err
		}

		sess.LastActivity = s.clock.Now()

		return &CastVoteOutput{
			VotesCast:  out.VotesCast,
			AllVotesIn: out.AllVotesIn,
		}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*CastVoteOutput), nil
}

// TallyVotes computes the round outcome through the round engine
func (s *service) TallyVotes(ctx context.Context, input *TallyVotesInput) (*TallyVotesOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		rounds, err := s.roundState(sess)
		if err != nil {
			return nil, false, err
		}

		out, err := rounds.Tally(ctx, &imposter.TallyInput{
			State:        sess.Imposter,
			Participants: sess.Participants,
		})
		if err != nil {
			return nil, false, err
		}

		now := s.clock.Now()
		old := sess.Phase
		sess.Phase = models.GamePhaseResults
		sess.RoundEndedAt = &now
		sess.LastActivity = now
		r.stopTimer()
		s.queuePhaseNotice(r, sess, old, sess.Phase)

		return &TallyVotesOutput{Results: out.Results, Session: sess}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*TallyVotesOutput), nil
}

// EndGame finishes the session. A result is archived only when the
// session had actually started.
func (s *service) EndGame(ctx context.Context, input *EndGameInput) (*EndGameOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		if sessionOver(sess) {
			return nil, false, ErrInvalidSessionState
		}

		now := s.clock.Now()
		old := sess.Phase
		sess.Status = models.SessionStatusFinished
		sess.Phase = models.GamePhaseGameOver
		sess.EndedAt = &now
		sess.LastActivity = now
		r.stopTimer()

		var result *models.GameResult
		if sess.StartedAt != nil {
			result = s.buildResult(sess, input.WinnerIDs, input.GameData, now)
			sess.Result = result
			if err := s.sessionRepo.SaveResult(ctx, &sessionRepo.SaveResultInput{Result: result}); err != nil {
				return nil, false, err
			}
			if s.notifier != nil {
				res := result
				r.after(func() { s.notifier.OnGameEnded(res) })
			}
		}

		s.queuePhaseNotice(r, sess, old, sess.Phase)
		r.after(func() { s.release(sess.ID) })

		s.log.Info("game ended",
			zap.String("session_id", sess.ID),
			zap.Int("rounds", sess.CurrentRound),
			zap.Bool("result_archived", result != nil),
		)

		return &EndGameOutput{Session: sess, Result: result}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*EndGameOutput), nil
}

// PauseGame suspends play and disarms any pending phase deadline
func (s *service) PauseGame(ctx context.Context, input *PauseGameInput) (*PauseGameOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		if sess.Status != models.SessionStatusInProgress {
			return nil, false, ErrInvalidSessionState
		}

		sess.Status = models.SessionStatusPaused
		sess.LastActivity = s.clock.Now()
		r.stopTimer()

		return &PauseGameOutput{Session: sess}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*PauseGameOutput), nil
}

// ResumeGame resumes suspended play. A phase deadline that elapsed while
// paused fires immediately and forces the overdue transition.
func (s *service) ResumeGame(ctx context.Context, input *ResumeGameInput) (*ResumeGameOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		if sess.Status != models.SessionStatusPaused {
			return nil, false, ErrInvalidSessionState
		}

		sess.Status = models.SessionStatusInProgress
		sess.LastActivity = s.clock.Now()
		if sess.Imposter != nil {
			r.scheduleDeadline(sess.Imposter.Phase, sess.Imposter.PhaseDeadline)
		}

		return &ResumeGameOutput{Session: sess}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*ResumeGameOutput), nil
}

// CancelSession tears the session down. Cancelling twice is a no-op;
// cancelling a finished session is an error.
func (s *service) CancelSession(ctx context.Context, input *CancelSessionInput) (*CancelSessionOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		if sess.Status == models.SessionStatusFinished {
			return nil, false, ErrInvalidSessionState
		}
		if sess.Status == models.SessionStatusCancelled {
			return &CancelSessionOutput{Cancelled: false}, false, nil
		}

		now := s.clock.Now()
		sess.Status = models.SessionStatusCancelled
		sess.EndedAt = &now
		r.stopTimer()
		r.after(func() { s.release(sess.ID) })

		return &CancelSessionOutput{Cancelled: true}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*CancelSessionOutput), nil
}

// UpdateTrendingScore recomputes and stores the discovery score
func (s *service) UpdateTrendingScore(ctx context.Context, input *UpdateTrendingScoreInput) (*UpdateTrendingScoreOutput, error) {
	v, err := s.do(ctx, input.SessionID, func(r *runner, sess *models.GameSession) (any, bool, error) {
		score := trendingScore(sess, s.clock.Now())
		sess.TrendingScore = score
		return &UpdateTrendingScoreOutput{Score: score}, true, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*UpdateTrendingScoreOutput), nil
}

// do funnels a mutation through the session's runner
func (s *service) do(ctx context.Context, sessionID string, apply func(r *runner, sess *models.GameSession) (any, bool, error)) (any, error) {
	r := s.runnerFor(sessionID)
	return r.submit(ctx, func(sess *models.GameSession) (any, bool, error) {
		return apply(r, sess)
	})
}

// runnerFor returns the runner owning a session id, starting one when
// none is live
func (s *service) runnerFor(sessionID string) *runner {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.runners[sessionID]
	if !ok {
		r = newRunner(sessionID, s)
		s.runners[sessionID] = r
	}
	return r
}

// release stops and forgets a session's runner
func (s *service) release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r, ok := s.runners[sessionID]; ok {
		r.stop()
		delete(s.runners, sessionID)
	}
}

// roundEngine resolves the round engine for a game type
func (s *service) roundEngine(gameType models.GameType) (imposter.Service, error) {
	e, err := s.engines.Get(gameType)
	if err != nil {
		return nil, ErrInvalidGameType
	}
	rounds, ok := e.(imposter.Service)
	if !ok {
		return nil, ErrInvalidGameType
	}
	return rounds, nil
}

// roundState resolves the engine for an in-progress round
func (s *service) roundState(sess *models.GameSession) (imposter.Service, error) {
	if sess.Status != models.SessionStatusInProgress {
		return nil, ErrInvalidSessionState
	}
	if sess.Imposter == nil {
		return nil, ErrNoRoundInProgress
	}
	return s.roundEngine(sess.Config.GameType)
}

// forceAdvance runs the engine's deadline transition for the current
// phase. Called from the runner when a phase deadline fires.
func (s *service) forceAdvance(ctx context.Context, r *runner, sess *models.GameSession) error {
	rounds, err := s.roundEngine(sess.Config.GameType)
	if err != nil {
		return err
	}

	out, err := rounds.AdvancePhase(ctx, &imposter.AdvancePhaseInput{
		State:             sess.Imposter,
		SpeakingTimeLimit: sess.Config.RoundTimeLimit,
		VotingTimeLimit:   sess.Config.VotingTimeLimit,
		Participants:      sess.Participants,
	})
	if err != nil {
		return err
	}

	now := s.clock.Now()
	old := sess.Phase
	sess.Phase = phaseFor(out.Phase)
	if out.Results != nil {
		sess.RoundEndedAt = &now
	}
	sess.LastActivity = now
	r.scheduleDeadline(sess.Imposter.Phase, sess.Imposter.PhaseDeadline)
	s.queuePhaseNotice(r, sess, old, sess.Phase)

	s.log.Debug("phase deadline forced advance",
		zap.String("session_id", sess.ID),
		zap.String("round_phase", string(out.Phase)),
	)

	return nil
}

// queuePhaseNotice queues the phase hook to fire after the save
func (s *service) queuePhaseNotice(r *runner, sess *models.GameSession, old, next models.GamePhase) {
	if s.notifier == nil || old == next {
		return
	}
	r.after(func() { s.notifier.OnPhaseChanged(sess, old, next) })
}

// buildResult snapshots a finished session into its archived outcome
func (s *service) buildResult(sess *models.GameSession, winnerIDs []string, gameData map[string]string, now time.Time) *models.GameResult {
	data := map[string]string{
		"game_type":     string(sess.Config.GameType),
		"rounds_played": strconv.Itoa(sess.CurrentRound),
	}
	if sess.Imposter != nil {
		data["imposter_id"] = sess.Imposter.ImposterID
		data["word"] = sess.Imposter.Word
	}
	for k, v := range gameData {
		data[k] = v
	}

	finals := make([]*models.GameParticipant, len(sess.Participants))
	for i, p := range sess.Participants {
		snapshot := *p
		finals[i] = &snapshot
	}

	duration := now.Sub(*sess.StartedAt)
	if duration < 0 {
		duration = 0
	}

	return &models.GameResult{
		SessionID:         sess.ID,
		WinnerIDs:         winnerIDs,
		FinalParticipants: finals,
		GameData:          data,
		StartedAt:         *sess.StartedAt,
		EndedAt:           now,
		Duration:          duration,
	}
}

// sessionOver reports whether the session's lifecycle has ended
func sessionOver(sess *models.GameSession) bool {
	return sess.Status == models.SessionStatusFinished || sess.Status == models.SessionStatusCancelled
}

// phaseFor maps a round phase onto the session's coarser phase machine
func phaseFor(p models.ImposterPhase) models.GamePhase {
	switch p {
	case models.ImposterPhaseVoting:
		return models.GamePhaseVoting
	case models.ImposterPhaseResults, models.ImposterPhaseGameOver:
		return models.GamePhaseResults
	default:
		return models.GamePhasePlaying
	}
}
