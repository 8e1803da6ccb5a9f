package notifier

import (
	"go.uber.org/zap"

	"github.com/partyround/gamecore/internal/models"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/partyround/gamecore/internal/notifier Notifier

// Notifier receives fire-and-forget hooks at game boundaries. The core
// never blocks on these: callers dispatch them off the mutation path, so
// implementations are free to fan out to push, chat or analytics.
type Notifier interface {
	// OnPhaseChanged fires when a session's phase transitions
	OnPhaseChanged(session *models.GameSession, oldPhase, newPhase models.GamePhase)

	// OnMatchFormed fires when matchmaking produces a match
	OnMatchFormed(match *models.GameMatch)

	// OnGameEnded fires when a session archives its result
	OnGameEnded(result *models.GameResult)
}

// LogNotifier is the default Notifier: it records each hook in the log
// and nothing else
type LogNotifier struct {
	log *zap.Logger
}

// NewLogNotifier creates a notifier backed by the given logger
func NewLogNotifier(log *zap.Logger) *LogNotifier {
	if log == nil {
		log = zap.NewNop()
	}
	return &LogNotifier{log: log}
}

// OnPhaseChanged logs the transition
func (n *LogNotifier) OnPhaseChanged(session *models.GameSession, oldPhase, newPhase models.GamePhase) {
	n.log.Info("phase changed",
		zap.String("session_id", session.ID),
		zap.String("old_phase", string(oldPhase)),
		zap.String("new_phase", string(newPhase)),
	)
}

// OnMatchFormed logs the match
func (n *LogNotifier) OnMatchFormed(match *models.GameMatch) {
	n.log.Info("match formed",
		zap.String("match_id", match.ID),
		zap.String("game_type", string(match.GameType)),
		zap.String("match_type", string(match.Type)),
		zap.Int("participants", len(match.Participants)),
	)
}

// OnGameEnded logs the result
func (n *LogNotifier) OnGameEnded(result *models.GameResult) {
	n.log.Info("game ended",
		zap.String("session_id", result.SessionID),
		zap.Strings("winners", result.WinnerIDs),
		zap.Duration("duration", result.Duration),
	)
}
