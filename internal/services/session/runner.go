package session

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/partyround/gamecore/internal/models"
	sessionRepo "github.com/partyround/gamecore/internal/repositories/session"
)

// commandResult carries a command's outcome back to the submitter
type commandResult struct {
	value any
	err   error
}

// command is one mutation against a session, applied inside its runner.
// apply reports whether the session should be persisted: expected
// failures that still change state (a round start falling back to
// waiting) persist alongside their error.
type command struct {
	ctx   context.Context
	apply func(sess *models.GameSession) (value any, persist bool, err error)
	reply chan commandResult
}

// runner owns one session id. Every mutation is funneled through its
// command channel and applied by a single goroutine, so roster changes,
// votes and phase transitions never interleave. The runner also owns the
// session's phase deadline timer.
type runner struct {
	sessionID string
	svc       *service

	cmds chan command
	quit chan struct{}

	// pending phase deadline, touched only from the runner goroutine
	timer *time.Timer

	// effects queued during a command, run after a successful save
	effects []func()
}

func newRunner(sessionID string, svc *service) *runner {
	r := &runner{
		sessionID: sessionID,
		svc:       svc,
		cmds:      make(chan command),
		quit:      make(chan struct{}),
	}
	go r.loop()
	return r
}

func (r *runner) loop() {
	for {
		select {
		case cmd := <-r.cmds:
			r.handle(cmd)
		case <-r.quit:
			r.stopTimer()
			return
		}
	}
}

// submit funnels a mutation to the runner and waits for its result
func (r *runner) submit(ctx context.Context, apply func(sess *models.GameSession) (any, bool, error)) (any, error) {
	cmd := command{
		ctx:   ctx,
		apply: apply,
		reply: make(chan commandResult, 1),
	}

	select {
	case r.cmds <- cmd:
	case <-r.quit:
		return nil, ErrSessionClosed
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-cmd.reply:
		return res.value, res.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// handle loads the session, applies the mutation and persists the
// outcome. Side effects queued by the mutation run only after the save
// succeeds, each on its own goroutine so hooks never block the loop.
func (r *runner) handle(cmd command) {
	r.effects = nil

	sess, err := r.svc.sessionRepo.GetSession(cmd.ctx, &sessionRepo.GetSessionInput{
		SessionID: r.sessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			err = ErrSessionNotFound
		}
		cmd.reply <- commandResult{err: err}
		return
	}

	value, persist, err := cmd.apply(sess)
	if persist {
		sess.UpdatedAt = r.svc.clock.Now()
		if saveErr := r.svc.sessionRepo.SaveSession(cmd.ctx, &sessionRepo.SaveSessionInput{
			Session: sess,
		}); saveErr != nil {
			cmd.reply <- commandResult{err: saveErr}
			return
		}
		for _, fn := range r.effects {
			go fn()
		}
	}
	cmd.reply <- commandResult{value: value, err: err}
}

// after queues a side effect to run once the current command's save
// succeeds. Only call from within a command.
func (r *runner) after(fn func()) {
	r.effects = append(r.effects, fn)
}

// scheduleDeadline arms the phase deadline timer. Any previously armed
// timer is stopped first: a phase advanced early must never be fired
// against by a stale deadline. Only call from within a command.
func (r *runner) scheduleDeadline(phase models.ImposterPhase, deadline *time.Time) {
	r.stopTimer()
	if deadline == nil {
		return
	}

	wait := deadline.Sub(r.svc.clock.Now())
	if wait < 0 {
		wait = 0
	}

	at := *deadline
	r.timer = time.AfterFunc(wait, func() {
		r.deadlineFired(phase, at)
	})
}

// stopTimer disarms the pending deadline timer, if any
func (r *runner) stopTimer() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// deadlineFired runs on the timer goroutine and funnels the forced
// transition through the command channel like any other mutation. The
// command revalidates phase and deadline against current state, so a
// timer that lost the race to a player action is a no-op.
func (r *runner) deadlineFired(phase models.ImposterPhase, deadline time.Time) {
	ctx := context.Background()
	_, err := r.submit(ctx, func(sess *models.GameSession) (any, bool, error) {
		state := sess.Imposter
		if state == nil || state.Phase != phase {
			return nil, false, nil
		}
		if state.PhaseDeadline == nil || !state.PhaseDeadline.Equal(deadline) {
			return nil, false, nil
		}
		return nil, true, r.svc.forceAdvance(ctx, r, sess)
	})
	if err != nil && !errors.Is(err, ErrSessionClosed) {
		r.svc.log.Warn("phase deadline advance failed",
			zap.String("session_id", r.sessionID),
			zap.String("phase", string(phase)),
			zap.Error(err),
		)
	}
}

func (r *runner) stop() {
	select {
	case <-r.quit:
	default:
		close(r.quit)
	}
}
