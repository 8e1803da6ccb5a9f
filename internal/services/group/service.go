package group

import (
	"context"
	"errors"
	"fmt"

	"github.com/partyround/gamecore/internal/common/clock"
	"github.com/partyround/gamecore/internal/common/uuid"
	"github.com/partyround/gamecore/internal/models"
	"github.com/partyround/gamecore/internal/random"
	groupRepo "github.com/partyround/gamecore/internal/repositories/group"
)

// service implements the Service interface
type service struct {
	groupRepo groupRepo.Repository
	clock     clock.Clock
	uuid      uuid.UUID
	random    random.Source
}

// New creates a new group service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GroupRepo == nil {
		return nil, ErrNilGroupRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Random == nil {
		return nil, ErrNilRandomSource
	}

	return &service{
		groupRepo: cfg.GroupRepo,
		clock:     cfg.Clock,
		uuid:      cfg.UUIDGenerator,
		random:    cfg.Random,
	}, nil
}

// CreateGroup forms a new group with the leader as sole member and a
// random 6-digit invite code
func (s *service) CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error) {
	now := s.clock.Now()

	group := &models.PlayerGroup{
		ID:         s.uuid.NewUUID(),
		LeaderID:   input.LeaderID,
		MemberIDs:  []string{input.LeaderID},
		GameType:   input.GameType,
		InviteCode: fmt.Sprintf("%06d", s.random.Intn(1000000)),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.groupRepo.SaveGroup(ctx, &groupRepo.SaveGroupInput{Group: group}); err != nil {
		return nil, err
	}

	return &CreateGroupOutput{Group: group}, nil
}

// Invite sends a time-bounded invitation into a group. Expiry is a
// derived property of the invite, not an active timer.
func (s *service) Invite(ctx context.Context, input *InviteInput) (*InviteOutput, error) {
	group, err := s.getGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	if group.Size() >= models.RulesFor(group.GameType).MaxPlayers {
		return nil, ErrGroupFull
	}

	now := s.clock.Now()
	invite := &models.GroupInvite{
		ID:         s.uuid.NewUUID(),
		GroupID:    group.ID,
		FromUserID: input.FromUserID,
		ToUserID:   input.ToUserID,
		Status:     models.InviteStatusPending,
		CreatedAt:  now,
		ExpiresAt:  now.Add(models.InviteTTL),
	}

	if err := s.groupRepo.SaveInvite(ctx, &groupRepo.SaveInviteInput{Invite: invite}); err != nil {
		return nil, err
	}

	return &InviteOutput{Invite: invite}, nil
}

// Respond accepts or declines a pending invite. Status transitions are
// one-way: answering a resolved or expired invite fails.
func (s *service) Respond(ctx context.Context, input *RespondInput) (*RespondOutput, error) {
	invite, err := s.groupRepo.GetInvite(ctx, &groupRepo.GetInviteInput{InviteID: input.InviteID})
	if err != nil {
		if errors.Is(err, groupRepo.ErrInviteNotFound) {
			return nil, ErrInviteNotFound
		}
		return nil, err
	}

	if invite.IsResolved() {
		return nil, ErrStaleInvite
	}

	now := s.clock.Now()
	if invite.IsExpired(now) {
		invite.Status = models.InviteStatusExpired
		if err := s.groupRepo.SaveInvite(ctx, &groupRepo.SaveInviteInput{Invite: invite}); err != nil {
			return nil, err
		}
		return nil, ErrStaleInvite
	}

	output := &RespondOutput{Invite: invite}

	if !input.Accept {
		invite.Status = models.InviteStatusDeclined
		if err := s.groupRepo.SaveInvite(ctx, &groupRepo.SaveInviteInput{Invite: invite}); err != nil {
			return nil, err
		}
		return output, nil
	}

	group, err := s.getGroup(ctx, invite.GroupID)
	if err != nil {
		return nil, err
	}

	// The group may have filled between invite and response
	if group.Size() >= models.RulesFor(group.GameType).MaxPlayers {
		return nil, ErrGroupFull
	}

	if !group.HasMember(invite.ToUserID) {
		group.MemberIDs = append(group.MemberIDs, invite.ToUserID)
		group.UpdatedAt = now
		if err := s.groupRepo.SaveGroup(ctx, &groupRepo.SaveGroupInput{Group: group}); err != nil {
			return nil, err
		}
	}

	invite.Status = models.InviteStatusAccepted
	if err := s.groupRepo.SaveInvite(ctx, &groupRepo.SaveInviteInput{Invite: invite}); err != nil {
		return nil, err
	}

	output.Group = group
	return output, nil
}

// JoinByCode adds a user to a group via its invite code
func (s *service) JoinByCode(ctx context.Context, input *JoinByCodeInput) (*JoinByCodeOutput, error) {
	group, err := s.groupRepo.GetGroupByCode(ctx, &groupRepo.GetGroupByCodeInput{
		InviteCode: input.InviteCode,
	})
	if err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	if group.HasMember(input.UserID) {
		return nil, ErrAlreadyMember
	}
	if group.Size() >= models.RulesFor(group.GameType).MaxPlayers {
		return nil, ErrGroupFull
	}

	group.MemberIDs = append(group.MemberIDs, input.UserID)
	group.UpdatedAt = s.clock.Now()

	if err := s.groupRepo.SaveGroup(ctx, &groupRepo.SaveGroupInput{Group: group}); err != nil {
		return nil, err
	}

	return &JoinByCodeOutput{Group: group}, nil
}

// LeaveGroup removes a member. A departing leader hands the group to its
// oldest remaining member; an emptied group is deleted.
func (s *service) LeaveGroup(ctx context.Context, input *LeaveGroupInput) (*LeaveGroupOutput, error) {
	group, err := s.getGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	if !group.HasMember(input.UserID) {
		return nil, ErrNotAMember
	}

	members := make([]string, 0, len(group.MemberIDs)-1)
	for _, id := range group.MemberIDs {
		if id != input.UserID {
			members = append(members, id)
		}
	}
	group.MemberIDs = members

	if len(group.MemberIDs) == 0 {
		if err := s.groupRepo.DeleteGroup(ctx, &groupRepo.DeleteGroupInput{GroupID: group.ID}); err != nil {
			return nil, err
		}
		return &LeaveGroupOutput{Disbanded: true}, nil
	}

	if group.LeaderID == input.UserID {
		group.LeaderID = group.MemberIDs[0]
	}
	group.UpdatedAt = s.clock.Now()

	if err := s.groupRepo.SaveGroup(ctx, &groupRepo.SaveGroupInput{Group: group}); err != nil {
		return nil, err
	}

	return &LeaveGroupOutput{Group: group}, nil
}

// GetGroup retrieves a group by ID
func (s *service) GetGroup(ctx context.Context, input *GetGroupInput) (*GetGroupOutput, error) {
	group, err := s.getGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}
	return &GetGroupOutput{Group: group}, nil
}

func (s *service) getGroup(ctx context.Context, groupID string) (*models.PlayerGroup, error) {
	group, err := s.groupRepo.GetGroup(ctx, &groupRepo.GetGroupInput{GroupID: groupID})
	if err != nil {
		if errors.Is(err, groupRepo.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}
	return group, nil
}
