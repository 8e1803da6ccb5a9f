package models

import (
	"time"
)

// InviteStatus represents the current state of a group invite
type InviteStatus string

const (
	// InviteStatusPending indicates an invite is waiting for a response
	InviteStatusPending InviteStatus = "pending"

	// InviteStatusAccepted indicates the invitee joined the group
	InviteStatusAccepted InviteStatus = "accepted"

	// InviteStatusDeclined indicates the invitee turned the invite down
	InviteStatusDeclined InviteStatus = "declined"

	// InviteStatusExpired indicates the invite aged out before a response
	InviteStatusExpired InviteStatus = "expired"
)

// InviteTTL is how long a group invite stays answerable
const InviteTTL = 24 * time.Hour

// PlayerGroup represents a pre-formed party that queues together
type PlayerGroup struct {
	// ID is the unique identifier for the group
	ID string

	// LeaderID is the user who formed the group
	LeaderID string

	// MemberIDs contains the user IDs of all members, in join order.
	// The leader is always present in this list.
	MemberIDs []string

	// GameType is the game the group intends to queue for
	GameType GameType

	// InviteCode is the 6-digit code others can use to join
	InviteCode string

	// CreatedAt is when the group was formed
	CreatedAt time.Time

	// UpdatedAt is when the group was last mutated
	UpdatedAt time.Time
}

// HasMember reports whether a user is in the group
func (g *PlayerGroup) HasMember(userID string) bool {
	for _, id := range g.MemberIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// Size returns the current member count
func (g *PlayerGroup) Size() int {
	return len(g.MemberIDs)
}

// GroupInvite represents a pending invitation into a group
type GroupInvite struct {
	// ID is the unique identifier for the invite
	ID string

	// GroupID is the group the invite admits into
	GroupID string

	// FromUserID is the member who sent the invite
	FromUserID string

	// ToUserID is the invited user
	ToUserID string

	// Status is the current state of the invite
	Status InviteStatus

	// CreatedAt is when the invite was sent
	CreatedAt time.Time

	// ExpiresAt is the instant after which the invite can no longer be answered
	ExpiresAt time.Time
}

// IsExpired reports whether the invite has aged out as of now.
// Expiry is derived, not driven by a timer: an invite expires strictly
// after ExpiresAt passes.
func (i *GroupInvite) IsExpired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// IsResolved reports whether the invite has reached a terminal status
func (i *GroupInvite) IsResolved() bool {
	return i.Status != InviteStatusPending
}
