package group

import "github.com/partyround/gamecore/internal/models"

type SaveGroupInput struct {
	Group *models.PlayerGroup
}

type GetGroupInput struct {
	GroupID string
}

type GetGroupByCodeInput struct {
	InviteCode string
}

type DeleteGroupInput struct {
	GroupID string
}

type SaveInviteInput struct {
	Invite *models.GroupInvite
}

type GetInviteInput struct {
	InviteID string
}
