package session

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

func (s *RedisRepositoryTestSuite) testSession(id string, status models.SessionStatus) *models.GameSession {
	return &models.GameSession{
		ID:     id,
		Config: models.DefaultConfig(models.GameTypeImposter),
		Status: status,
		Phase:  models.GamePhaseLobby,
		HostID: "host-1",
		Participants: []*models.GameParticipant{
			{
				UserID:   "host-1",
				UserName: "Host",
				Role:     models.RoleHost,
				Active:   true,
				JoinedAt: s.testNow,
			},
		},
		CreatedAt:    s.testNow,
		UpdatedAt:    s.testNow,
		LastActivity: s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetSession() {
	session := s.testSession("sess-1", models.SessionStatusWaiting)

	err := s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: session})
	s.Require().NoError(err)

	got, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Equal(session.ID, got.ID)
	s.Equal(session.Status, got.Status)
	s.Equal(session.Phase, got.Phase)
	s.Len(got.Participants, 1)
	s.Equal("host-1", got.Participants[0].UserID)
	s.True(got.Participants[0].Active)
}

func (s *RedisRepositoryTestSuite) TestGetSessionNotFound() {
	_, err := s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "missing"})
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestActiveSessionsTracking() {
	waiting := s.testSession("sess-waiting", models.SessionStatusWaiting)
	finished := s.testSession("sess-finished", models.SessionStatusFinished)

	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: waiting}))
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: finished}))

	active, err := s.repo.GetActiveSessions(s.ctx, &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Require().Len(active.Sessions, 1)
	s.Equal("sess-waiting", active.Sessions[0].ID)

	// Finishing a previously active session removes it from the set
	waiting.Status = models.SessionStatusFinished
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: waiting}))

	active, err = s.repo.GetActiveSessions(s.ctx, &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Empty(active.Sessions)
}

func (s *RedisRepositoryTestSuite) TestDeleteSession() {
	session := s.testSession("sess-del", models.SessionStatusWaiting)
	s.Require().NoError(s.repo.SaveSession(s.ctx, &SaveSessionInput{Session: session}))

	err := s.repo.DeleteSession(s.ctx, &DeleteSessionInput{SessionID: "sess-del"})
	s.Require().NoError(err)

	_, err = s.repo.GetSession(s.ctx, &GetSessionInput{SessionID: "sess-del"})
	s.ErrorIs(err, ErrSessionNotFound)

	active, err := s.repo.GetActiveSessions(s.ctx, &GetActiveSessionsInput{})
	s.Require().NoError(err)
	s.Empty(active.Sessions)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetResult() {
	result := &models.GameResult{
		SessionID: "sess-1",
		WinnerIDs: []string{"user-2", "user-3"},
		GameData:  map[string]string{"imposter_id": "user-1"},
		StartedAt: s.testNow,
		EndedAt:   s.testNow.Add(10 * time.Minute),
		Duration:  10 * time.Minute,
	}

	err := s.repo.SaveResult(s.ctx, &SaveResultInput{Result: result})
	s.Require().NoError(err)

	got, err := s.repo.GetResult(s.ctx, &GetResultInput{SessionID: "sess-1"})
	s.Require().NoError(err)
	s.Equal(result.WinnerIDs, got.WinnerIDs)
	s.Equal(result.Duration, got.Duration)
	s.Equal("user-1", got.GameData["imposter_id"])
}

func (s *RedisRepositoryTestSuite) TestGetResultNotFound() {
	_, err := s.repo.GetResult(s.ctx, &GetResultInput{SessionID: "missing"})
	s.ErrorIs(err, ErrResultNotFound)
}
