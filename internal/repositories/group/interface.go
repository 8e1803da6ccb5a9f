package group

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/partyround/gamecore/internal/repositories/group Repository

import (
	"context"

	"github.com/partyround/gamecore/internal/models"
)

// Repository defines the interface for group and invite persistence
type Repository interface {
	// SaveGroup persists a group
	SaveGroup(ctx context.Context, input *SaveGroupInput) error

	// GetGroup retrieves a group by ID
	GetGroup(ctx context.Context, input *GetGroupInput) (*models.PlayerGroup, error)

	// GetGroupByCode retrieves a group by invite code
	GetGroupByCode(ctx context.Context, input *GetGroupByCodeInput) (*models.PlayerGroup, error)

	// DeleteGroup removes a group
	DeleteGroup(ctx context.Context, input *DeleteGroupInput) error

	// SaveInvite persists an invite
	SaveInvite(ctx context.Context, input *SaveInviteInput) error

	// GetInvite retrieves an invite by ID
	GetInvite(ctx context.Context, input *GetInviteInput) (*models.GroupInvite, error)
}
