package group

import (
	"github.com/partyround/gamecore/internal/common/clock"
	"github.com/partyround/gamecore/internal/common/uuid"
	"github.com/partyround/gamecore/internal/models"
	"github.com/partyround/gamecore/internal/random"
	groupRepo "github.com/partyround/gamecore/internal/repositories/group"
)

// Config holds configuration for the group service
type Config struct {
	// Repository dependency
	GroupRepo groupRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
	Random        random.Source
}

// CreateGroupInput contains parameters for forming a group
type CreateGroupInput struct {
	// LeaderID is the user forming the group
	LeaderID string

	// GameType is the game the group intends to queue for
	GameType models.GameType
}

// CreateGroupOutput contains the formed group
type CreateGroupOutput struct {
	Group *models.PlayerGroup
}

// InviteInput contains parameters for sending an invite
type InviteInput struct {
	// GroupID is the group to invite into
	GroupID string

	// FromUserID is the member sending the invite
	FromUserID string

	// ToUserID is the invited user
	ToUserID string
}

// InviteOutput contains the created invite
type InviteOutput struct {
	Invite *models.GroupInvite
}

// RespondInput contains parameters for answering an invite
type RespondInput struct {
	// InviteID is the invite being answered
	InviteID string

	// Accept indicates whether the invitee joins the group
	Accept bool
}

// RespondOutput contains the result of answering an invite
type RespondOutput struct {
	// Invite is the invite in its terminal state
	Invite *models.GroupInvite

	// Group is the updated group, set when the invite was accepted
	Group *models.PlayerGroup
}

// JoinByCodeInput contains parameters for joining via invite code
type JoinByCodeInput struct {
	// InviteCode is the group's 6-digit code
	InviteCode string

	// UserID is the joining user
	UserID string
}

// JoinByCodeOutput contains the joined group
type JoinByCodeOutput struct {
	Group *models.PlayerGroup
}

// LeaveGroupInput contains parameters for leaving a group
type LeaveGroupInput struct {
	// GroupID is the group being left
	GroupID string

	// UserID is the departing member
	UserID string
}

// LeaveGroupOutput contains the result of leaving
type LeaveGroupOutput struct {
	// Group is the updated group, nil when the group emptied and was
	// deleted
	Group *models.PlayerGroup

	// Disbanded indicates the group was deleted because it emptied
	Disbanded bool
}

// GetGroupInput contains parameters for retrieving a group
type GetGroupInput struct {
	GroupID string
}

// GetGroupOutput contains the retrieved group
type GetGroupOutput struct {
	Group *models.PlayerGroup
}
