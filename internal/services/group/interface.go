package group

import "context"

// Service defines the interface for group operations
type Service interface {
	// CreateGroup forms a new group with the leader as sole member
	CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error)

	// Invite sends a time-bounded invitation into a group
	Invite(ctx context.Context, input *InviteInput) (*InviteOutput, error)

	// Respond accepts or declines a pending invite
	Respond(ctx context.Context, input *RespondInput) (*RespondOutput, error)

	// JoinByCode adds a user to a group via its invite code
	JoinByCode(ctx context.Context, input *JoinByCodeInput) (*JoinByCodeOutput, error)

	// LeaveGroup removes a member, promoting a new leader if needed
	LeaveGroup(ctx context.Context, input *LeaveGroupInput) (*LeaveGroupOutput, error)

	// GetGroup retrieves a group by ID
	GetGroup(ctx context.Context, input *GetGroupInput) (*GetGroupOutput, error)
}
