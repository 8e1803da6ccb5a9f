package session

import "github.com/partyround/gamecore/internal/models"

type SaveSessionInput struct {
	Session *models.GameSession
}

type GetSessionInput struct {
	SessionID string
}

type DeleteSessionInput struct {
	SessionID string
}

type GetActiveSessionsInput struct {
}

type GetActiveSessionsOutput struct {
	Sessions []*models.GameSession
}

type SaveResultInput struct {
	Result *models.GameResult
}

type GetResultInput struct {
	SessionID string
}
