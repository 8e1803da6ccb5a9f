package group

import "errors"

// Define errors
var (
	ErrGroupNotFound    = errors.New("group not found")
	ErrInviteNotFound   = errors.New("invite not found")
	ErrGroupFull        = errors.New("group is at maximum size for its game type")
	ErrAlreadyMember    = errors.New("user is already a member of the group")
	ErrNotAMember       = errors.New("user is not a member of the group")
	ErrStaleInvite      = errors.New("invite is expired or already resolved")
	ErrNilConfig        = errors.New("config cannot be nil")
	ErrNilGroupRepo     = errors.New("group repository cannot be nil")
	ErrNilClock         = errors.New("clock cannot be nil")
	ErrNilUUIDGenerator = errors.New("UUID generator cannot be nil")
	ErrNilRandomSource  = errors.New("random source cannot be nil")
)
