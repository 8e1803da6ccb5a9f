package queue

import "github.com/partyround/gamecore/internal/models"

type SaveQueueInput struct {
	Queue *models.GameQueue
}

type GetQueueInput struct {
	QueueID string
}

type GetQueueByGameTypeInput struct {
	GameType models.GameType
}

type DeleteQueueInput struct {
	QueueID string
}

type SaveMatchInput struct {
	Match *models.GameMatch
}

type GetMatchInput struct {
	MatchID string
}
