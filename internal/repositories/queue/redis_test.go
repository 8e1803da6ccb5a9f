package queue

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/partyround/gamecore/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	ctx     context.Context
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.ctx = context.Background()
	s.testNow = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) testQueue(id string, status models.QueueStatus) *models.GameQueue {
	return &models.GameQueue{
		ID:       id,
		GameType: models.GameTypeImposter,
		Status:   status,
		Participants: []*models.QueueParticipant{
			{
				ID:       "entry-1",
				UserID:   "user-1",
				UserName: "Alice",
				JoinedAt: s.testNow,
			},
		},
		CreatedAt: s.testNow,
		UpdatedAt: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetQueue() {
	queue := s.testQueue("queue-1", models.QueueStatusActive)

	err := s.repo.SaveQueue(s.ctx, &SaveQueueInput{Queue: queue})
	s.Require().NoError(err)

	got, err := s.repo.GetQueue(s.ctx, &GetQueueInput{QueueID: "queue-1"})
	s.Require().NoError(err)
	s.Equal(queue.ID, got.ID)
	s.Equal(queue.GameType, got.GameType)
	s.Require().Len(got.Participants, 1)
	s.Equal("user-1", got.Participants[0].UserID)
}

func (s *RedisRepositoryTestSuite) TestGetQueueByGameType() {
	queue := s.testQueue("queue-1", models.QueueStatusActive)
	s.Require().NoError(s.repo.SaveQueue(s.ctx, &SaveQueueInput{Queue: queue}))

	got, err := s.repo.GetQueueByGameType(s.ctx, &GetQueueByGameTypeInput{
		GameType: models.GameTypeImposter,
	})
	s.Require().NoError(err)
	s.Equal("queue-1", got.ID)
}

func (s *RedisRepositoryTestSuite) TestMatchedQueueLeavesGameTypeIndex() {
	queue := s.testQueue("queue-1", models.QueueStatusActive)
	s.Require().NoError(s.repo.SaveQueue(s.ctx, &SaveQueueInput{Queue: queue}))

	queue.Status = models.QueueStatusMatched
	s.Require().NoError(s.repo.SaveQueue(s.ctx, &SaveQueueInput{Queue: queue}))

	// The matched queue is still loadable by ID
	_, err := s.repo.GetQueue(s.ctx, &GetQueueInput{QueueID: "queue-1"})
	s.Require().NoError(err)

	// But the game type no longer resolves to it
	_, err = s.repo.GetQueueByGameType(s.ctx, &GetQueueByGameTypeInput{
		GameType: models.GameTypeImposter,
	})
	s.ErrorIs(err, ErrQueueNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteQueue() {
	queue := s.testQueue("queue-1", models.QueueStatusActive)
	s.Require().NoError(s.repo.SaveQueue(s.ctx, &SaveQueueInput{Queue: queue}))

	err := s.repo.DeleteQueue(s.ctx, &DeleteQueueInput{QueueID: "queue-1"})
	s.Require().NoError(err)

	_, err = s.repo.GetQueue(s.ctx, &GetQueueInput{QueueID: "queue-1"})
	s.ErrorIs(err, ErrQueueNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetMatch() {
	match := &models.GameMatch{
		ID:       "match-1",
		GameType: models.GameTypeImposter,
		Type:     models.MatchTypeGroupPlusIndividuals,
		GroupIDs: []string{"group-1"},
		Participants: []*models.QueueParticipant{
			{ID: "entry-1", UserID: "user-1", UserName: "Alice", GroupID: "group-1", JoinedAt: s.testNow},
			{ID: "entry-2", UserID: "user-2", UserName: "Bob", JoinedAt: s.testNow.Add(time.Second)},
		},
		CreatedAt: s.testNow,
	}

	err := s.repo.SaveMatch(s.ctx, &SaveMatchInput{Match: match})
	s.Require().NoError(err)

	got, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "match-1"})
	s.Require().NoError(err)
	s.Equal(models.MatchTypeGroupPlusIndividuals, got.Type)
	s.Len(got.Participants, 2)
}

func (s *RedisRepositoryTestSuite) TestGetMatchNotFound() {
	_, err := s.repo.GetMatch(s.ctx, &GetMatchInput{MatchID: "missing"})
	s.ErrorIs(err, ErrMatchNotFound)
}
