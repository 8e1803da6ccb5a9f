package group

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

func (s *RedisRepositoryTestSuite) testGroup() *models.PlayerGroup {
	return &models.PlayerGroup{
		ID:         "group-1",
		LeaderID:   "user-1",
		MemberIDs:  []string{"user-1"},
		GameType:   models.GameTypeImposter,
		InviteCode: "123456",
		CreatedAt:  s.testNow,
		UpdatedAt:  s.testNow,
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetGroup() {
	group := s.testGroup()

	err := s.repo.SaveGroup(s.ctx, &SaveGroupInput{Group: group})
	s.Require().NoError(err)

	got, err := s.repo.GetGroup(s.ctx, &GetGroupInput{GroupID: "group-1"})
	s.Require().NoError(err)
	s.Equal(group.LeaderID, got.LeaderID)
	s.Equal(group.MemberIDs, got.MemberIDs)
	s.Equal(group.InviteCode, got.InviteCode)
}

func (s *RedisRepositoryTestSuite) TestGetGroupByCode() {
	group := s.testGroup()
	s.Require().NoError(s.repo.SaveGroup(s.ctx, &SaveGroupInput{Group: group}))

	got, err := s.repo.GetGroupByCode(s.ctx, &GetGroupByCodeInput{InviteCode: "123456"})
	s.Require().NoError(err)
	s.Equal("group-1", got.ID)
}

func (s *RedisRepositoryTestSuite) TestGetGroupByCodeExpires() {
	group := s.testGroup()
	s.Require().NoError(s.repo.SaveGroup(s.ctx, &SaveGroupInput{Group: group}))

	s.mr.FastForward(models.InviteTTL + time.Minute)

	_, err := s.repo.GetGroupByCode(s.ctx, &GetGroupByCodeInput{InviteCode: "123456"})
	s.ErrorIs(err, ErrGroupNotFound)
}

func (s *RedisRepositoryTestSuite) TestDeleteGroup() {
	group := s.testGroup()
	s.Require().NoError(s.repo.SaveGroup(s.ctx, &SaveGroupInput{Group: group}))

	err := s.repo.DeleteGroup(s.ctx, &DeleteGroupInput{GroupID: "group-1"})
	s.Require().NoError(err)

	_, err = s.repo.GetGroup(s.ctx, &GetGroupInput{GroupID: "group-1"})
	s.ErrorIs(err, ErrGroupNotFound)

	_, err = s.repo.GetGroupByCode(s.ctx, &GetGroupByCodeInput{InviteCode: "123456"})
	s.ErrorIs(err, ErrGroupNotFound)
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetInvite() {
	invite := &models.GroupInvite{
		ID:         "invite-1",
		GroupID:    "group-1",
		FromUserID: "user-1",
		ToUserID:   "user-2",
		Status:     models.InviteStatusPending,
		CreatedAt:  s.testNow,
		ExpiresAt:  s.testNow.Add(models.InviteTTL),
	}

	err := s.repo.SaveInvite(s.ctx, &SaveInviteInput{Invite: invite})
	s.Require().NoError(err)

	got, err := s.repo.GetInvite(s.ctx, &GetInviteInput{InviteID: "invite-1"})
	s.Require().NoError(err)
	s.Equal(models.InviteStatusPending, got.Status)
	s.Equal("user-2", got.ToUserID)
	s.Equal(invite.ExpiresAt, got.ExpiresAt.UTC())
}

func (s *RedisRepositoryTestSuite) TestGetInviteNotFound() {
	_, err := s.repo.GetInvite(s.ctx, &GetInviteInput{InviteID: "missing"})
	s.ErrorIs(err, ErrInviteNotFound)
}
