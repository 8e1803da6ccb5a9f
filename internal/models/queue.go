package models

import (
	"time"
)

// QueueStatus represents the current state of a matchmaking queue
type QueueStatus string

const (
	// QueueStatusActive indicates a queue is accepting participants
	QueueStatusActive QueueStatus = "active"

	// QueueStatusMatched indicates the queue produced a match
	QueueStatusMatched QueueStatus = "matched"

	// QueueStatusCancelled indicates the queue was shut down
	QueueStatusCancelled QueueStatus = "cancelled"

	// QueueStatusExpired indicates the queue aged out without matching
	QueueStatusExpired QueueStatus = "expired"
)

// MatchType describes how a match was composed from queue contents
type MatchType string

const (
	// MatchTypeCompleteGroup indicates one group alone satisfied the bounds
	MatchTypeCompleteGroup MatchType = "complete_group"

	// MatchTypeGroupPlusIndividuals indicates a group was topped up with
	// unaffiliated individuals
	MatchTypeGroupPlusIndividuals MatchType = "group_plus_individuals"

	// MatchTypeIndividualsOnly indicates the match was built from
	// individuals alone
	MatchTypeIndividualsOnly MatchType = "individuals_only"
)

// QueueParticipant represents one queued individual. Immutable once created.
type QueueParticipant struct {
	// ID is the unique identifier for this queue entry
	ID string

	// UserID is the queued user
	UserID string

	// UserName is the display name of the queued user
	UserName string

	// GroupID is set when the participant queued as part of a group
	GroupID string

	// JoinedAt is when the participant entered the queue. Matchmaking
	// selects individuals oldest-first on this field.
	JoinedAt time.Time
}

// GameQueue represents the waiting pool for one game type
type GameQueue struct {
	// ID is the unique identifier for the queue
	ID string

	// GameType is the game this queue feeds
	GameType GameType

	// Participants contains every queued entry in join order
	Participants []*QueueParticipant

	// GroupIDs contains the ids of groups currently represented in the queue
	GroupIDs []string

	// Status is the current state of the queue
	Status QueueStatus

	// EstimatedWait is a coarse hint recomputed on join
	EstimatedWait time.Duration

	// CreatedAt is when the queue was opened
	CreatedAt time.Time

	// UpdatedAt is when the queue was last mutated
	UpdatedAt time.Time
}

// CanStartGame reports whether enough participants are queued to form a match
func (q *GameQueue) CanStartGame() bool {
	return len(q.Participants) >= RulesFor(q.GameType).MinPlayers
}

// IsFull reports whether the queue has reached the game type's maximum
func (q *GameQueue) IsFull() bool {
	return len(q.Participants) >= RulesFor(q.GameType).MaxPlayers
}

// ParticipantsInGroup returns the queued entries belonging to one group
func (q *GameQueue) ParticipantsInGroup(groupID string) []*QueueParticipant {
	var members []*QueueParticipant
	for _, p := range q.Participants {
		if p.GroupID == groupID {
			members = append(members, p)
		}
	}
	return members
}

// Individuals returns the queued entries not affiliated with any group,
// in join order
func (q *GameQueue) Individuals() []*QueueParticipant {
	var individuals []*QueueParticipant
	for _, p := range q.Participants {
		if p.GroupID == "" {
			individuals = append(individuals, p)
		}
	}
	return individuals
}

// GameMatch represents the result of a successful matchmaking pass.
// The participant list is fixed once formed; SessionID is written back
// when a session is created from the match.
type GameMatch struct {
	// ID is the unique identifier for the match
	ID string

	// GameType is the game the match was formed for
	GameType GameType

	// Participants contains every matched entry, groups first then
	// individuals in join order. No user appears twice.
	Participants []*QueueParticipant

	// GroupIDs contains the ids of groups included in the match
	GroupIDs []string

	// Type describes how the match was composed
	Type MatchType

	// SessionID links to the session created from this match, once committed
	SessionID string

	// CreatedAt is when the match was formed
	CreatedAt time.Time
}
