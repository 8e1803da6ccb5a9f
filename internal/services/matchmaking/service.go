package matchmaking

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/partyround/gamecore/internal/common/clock"
	"github.com/partyround/gamecore/internal/common/uuid"
	"github.com/partyround/gamecore/internal/models"
	"github.com/partyround/gamecore/internal/notifier"
	queueRepo "github.com/partyround/gamecore/internal/repositories/queue"
)

// service implements the Service interface. Joins, leaves and match
// passes against one game type are serialized behind a per-type lock:
// two concurrent joins must not both observe a non-full queue and
// over-admit past the maximum.
type service struct {
	queueRepo queueRepo.Repository
	clock     clock.Clock
	uuid      uuid.UUID
	notifier  notifier.Notifier
	log       *zap.Logger

	mu    sync.Mutex
	locks map[models.GameType]*sync.Mutex
}

// New creates a new matchmaking service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.QueueRepo == nil {
		return nil, ErrNilQueueRepo
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &service{
		queueRepo: cfg.QueueRepo,
		clock:     cfg.Clock,
		uuid:      cfg.UUIDGenerator,
		notifier:  cfg.Notifier,
		log:       log,
		locks:     make(map[models.GameType]*sync.Mutex),
	}, nil
}

// lockFor returns the mutex serializing one game type's queue
func (s *service) lockFor(gameType models.GameType) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.locks[gameType]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[gameType] = lock
	}
	return lock
}

// JoinQueue adds an individual or a whole group to a game type's queue
func (s *service) JoinQueue(ctx context.Context, input *JoinQueueInput) (*JoinQueueOutput, error) {
	lock := s.lockFor(input.GameType)
	lock.Lock()
	defer lock.Unlock()

	queue, err := s.getOrCreateQueue(ctx, input.GameType)
	if err != nil {
		return nil, err
	}

	if queue.Status != models.QueueStatusActive {
		return nil, ErrQueueNotActive
	}

	now := s.clock.Now()
	max := models.RulesFor(input.GameType).MaxPlayers

	if input.Group != nil {
		// A group joins whole or not at all
		if len(queue.Participants)+input.Group.Size() > max {
			return nil, ErrQueueFull
		}
		for _, memberID := range input.Group.MemberIDs {
			if s.findEntry(queue, memberID) != nil {
				return nil, ErrAlreadyQueued
			}
		}
		for _, memberID := range input.Group.MemberIDs {
			queue.Participants = append(queue.Participants, &models.QueueParticipant{
				ID:       s.uuid.NewUUID(),
				UserID:   memberID,
				UserName: memberID,
				GroupID:  input.Group.ID,
				JoinedAt: now,
			})
		}
		queue.GroupIDs = append(queue.GroupIDs, input.Group.ID)
	} else {
		if len(queue.Participants)+1 > max {
			return nil, ErrQueueFull
		}
		if s.findEntry(queue, input.UserID) != nil {
			return nil, ErrAlreadyQueued
		}
		queue.Participants = append(queue.Participants, &models.QueueParticipant{
			ID:       s.uuid.NewUUID(),
			UserID:   input.UserID,
			UserName: input.UserName,
			JoinedAt: now,
		})
	}

	queue.EstimatedWait = s.estimateWait(queue, now)
	queue.UpdatedAt = now

	if err := s.queueRepo.SaveQueue(ctx, &queueRepo.SaveQueueInput{Queue: queue}); err != nil {
		return nil, err
	}

	s.log.Debug("queue join",
		zap.String("game_type", string(input.GameType)),
		zap.Int("queued", len(queue.Participants)),
	)

	return &JoinQueueOutput{
		Queue:        queue,
		CanStartGame: queue.CanStartGame(),
	}, nil
}

// LeaveQueue removes a user from the queue. Removing an absent user is
// a no-op, not an error.
func (s *service) LeaveQueue(ctx context.Context, input *LeaveQueueInput) (*LeaveQueueOutput, error) {
	lock := s.lockFor(input.GameType)
	lock.Lock()
	defer lock.Unlock()

	queue, err := s.queueRepo.GetQueueByGameType(ctx, &queueRepo.GetQueueByGameTypeInput{
		GameType: input.GameType,
	})
	if err != nil {
		if errors.Is(err, queueRepo.ErrQueueNotFound) {
			return &LeaveQueueOutput{Removed: false}, nil
		}
		return nil, err
	}

	entry := s.findEntry(queue, input.UserID)
	if entry == nil {
		return &LeaveQueueOutput{Removed: false}, nil
	}

	remaining := make([]*models.QueueParticipant, 0, len(queue.Participants)-1)
	for _, p := range queue.Participants {
		if p.UserID != input.UserID {
			remaining = append(remaining, p)
		}
	}
	queue.Participants = remaining

	// Drop the group from the index if its last member just left
	if entry.GroupID != "" && len(queue.ParticipantsInGroup(entry.GroupID)) == 0 {
		groups := make([]string, 0, len(queue.GroupIDs))
		for _, id := range queue.GroupIDs {
			if id != entry.GroupID {
				groups = append(groups, id)
			}
		}
		queue.GroupIDs = groups
	}

	queue.UpdatedAt = s.clock.Now()

	if err := s.queueRepo.SaveQueue(ctx, &queueRepo.SaveQueueInput{Queue: queue}); err != nil {
		return nil, err
	}

	return &LeaveQueueOutput{Removed: true}, nil
}

// TryFormMatch attempts to compose a match from the queued pool.
// Composition prefers completing a group over splitting individuals
// across sessions: a queued group is always the match's core when one
// exists, topped up with unaffiliated individuals oldest-first.
func (s *service) TryFormMatch(ctx context.Context, input *TryFormMatchInput) (*TryFormMatchOutput, error) {
	lock := s.lockFor(input.GameType)
	lock.Lock()
	defer lock.Unlock()

	queue, err := s.queueRepo.GetQueueByGameType(ctx, &queueRepo.GetQueueByGameTypeInput{
		GameType: input.GameType,
	})
	if err != nil {
		if errors.Is(err, queueRepo.ErrQueueNotFound) {
			return &TryFormMatchOutput{Matched: false}, nil
		}
		return nil, err
	}

	if queue.Status != models.QueueStatusActive || !queue.CanStartGame() {
		return &TryFormMatchOutput{Matched: false}, nil
	}

	rules := models.RulesFor(input.GameType)
	selected, groupIDs, matchType := s.compose(queue, rules)
	if len(selected) < rules.MinPlayers {
		return &TryFormMatchOutput{Matched: false}, nil
	}

	now := s.clock.Now()
	match := &models.GameMatch{
		ID:           s.uuid.NewUUID(),
		GameType:     input.GameType,
		Participants: selected,
		GroupIDs:     groupIDs,
		Type:         matchType,
		CreatedAt:    now,
	}

	if err := s.queueRepo.SaveMatch(ctx, &queueRepo.SaveMatchInput{Match: match}); err != nil {
		return nil, err
	}

	// Archive the matched queue and reseat the remainder in a fresh one
	matched := make(map[string]bool, len(selected))
	for _, p := range selected {
		matched[p.UserID] = true
	}

	var remainder *models.GameQueue
	leftover := make([]*models.QueueParticipant, 0)
	for _, p := range queue.Participants {
		if !matched[p.UserID] {
			leftover = append(leftover, p)
		}
	}

	queue.Status = models.QueueStatusMatched
	queue.Participants = selected
	queue.UpdatedAt = now
	if err := s.queueRepo.SaveQueue(ctx, &queueRepo.SaveQueueInput{Queue: queue}); err != nil {
		return nil, err
	}

	if len(leftover) > 0 {
		remainder = &models.GameQueue{
			ID:           s.uuid.NewUUID(),
			GameType:     input.GameType,
			Participants: leftover,
			GroupIDs:     groupsOf(leftover),
			Status:       models.QueueStatusActive,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := s.queueRepo.SaveQueue(ctx, &queueRepo.SaveQueueInput{Queue: remainder}); err != nil {
			return nil, err
		}
	}

	s.log.Info("match formed",
		zap.String("match_id", match.ID),
		zap.String("match_type", string(match.Type)),
		zap.Int("participants", len(match.Participants)),
		zap.Int("leftover", len(leftover)),
	)

	if s.notifier != nil {
		// Hooks never block the matchmaking path
		go s.notifier.OnMatchFormed(match)
	}

	return &TryFormMatchOutput{
		Matched:   true,
		Match:     match,
		Remainder: remainder,
	}, nil
}

// CommitMatch records the session created from a match on the match
// record, closing the queue-to-session link.
func (s *service) CommitMatch(ctx context.Context, input *CommitMatchInput) (*CommitMatchOutput, error) {
	match, err := s.queueRepo.GetMatch(ctx, &queueRepo.GetMatchInput{MatchID: input.MatchID})
	if err != nil {
		if errors.Is(err, queueRepo.ErrMatchNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}

	match.SessionID = input.SessionID
	if err := s.queueRepo.SaveMatch(ctx, &queueRepo.SaveMatchInput{Match: match}); err != nil {
		return nil, err
	}

	return &CommitMatchOutput{Match: match}, nil
}

// ExpireStaleQueues retires a queue whose oldest joiner has waited past
// MaxAge without a match forming. Expired entrants must requeue.
func (s *service) ExpireStaleQueues(ctx context.Context, input *ExpireStaleQueuesInput) (*ExpireStaleQueuesOutput, error) {
	lock := s.lockFor(input.GameType)
	lock.Lock()
	defer lock.Unlock()

	queue, err := s.queueRepo.GetQueueByGameType(ctx, &queueRepo.GetQueueByGameTypeInput{
		GameType: input.GameType,
	})
	if err != nil {
		if errors.Is(err, queueRepo.ErrQueueNotFound) {
			return &ExpireStaleQueuesOutput{Expired: false}, nil
		}
		return nil, err
	}

	now := s.clock.Now()
	if queue.Status != models.QueueStatusActive || len(queue.Participants) == 0 {
		return &ExpireStaleQueuesOutput{Expired: false}, nil
	}
	if s.estimateWait(queue, now) < input.MaxAge {
		return &ExpireStaleQueuesOutput{Expired: false}, nil
	}

	queue.Status = models.QueueStatusExpired
	queue.UpdatedAt = now

	if err := s.queueRepo.SaveQueue(ctx, &queueRepo.SaveQueueInput{Queue: queue}); err != nil {
		return nil, err
	}

	s.log.Info("queue expired",
		zap.String("game_type", string(input.GameType)),
		zap.Int("stranded", len(queue.Participants)),
	)

	return &ExpireStaleQueuesOutput{Expired: true}, nil
}

// CancelQueue shuts a queue down. Cancelling an absent queue is a no-op.
func (s *service) CancelQueue(ctx context.Context, input *CancelQueueInput) (*CancelQueueOutput, error) {
	lock := s.lockFor(input.GameType)
	lock.Lock()
	defer lock.Unlock()

	queue, err := s.queueRepo.GetQueueByGameType(ctx, &queueRepo.GetQueueByGameTypeInput{
		GameType: input.GameType,
	})
	if err != nil {
		if errors.Is(err, queueRepo.ErrQueueNotFound) {
			return &CancelQueueOutput{Cancelled: false}, nil
		}
		return nil, err
	}

	queue.Status = models.QueueStatusCancelled
	queue.UpdatedAt = s.clock.Now()

	if err := s.queueRepo.SaveQueue(ctx, &queueRepo.SaveQueueInput{Queue: queue}); err != nil {
		return nil, err
	}

	return &CancelQueueOutput{Cancelled: true}, nil
}

// GetQueue retrieves the active queue for a game type
func (s *service) GetQueue(ctx context.Context, input *GetQueueInput) (*GetQueueOutput, error) {
	queue, err := s.queueRepo.GetQueueByGameType(ctx, &queueRepo.GetQueueByGameTypeInput{
		GameType: input.GameType,
	})
	if err != nil {
		if errors.Is(err, queueRepo.ErrQueueNotFound) {
			return nil, ErrQueueNotFound
		}
		return nil, err
	}
	return &GetQueueOutput{Queue: queue}, nil
}

// compose selects the match participants from the queue.
// One group at most anchors a match; a second queued group stays for the
// next pass rather than being merged or split.
func (s *service) compose(queue *models.GameQueue, rules models.GameTypeRules) ([]*models.QueueParticipant, []string, models.MatchType) {
	if len(queue.GroupIDs) > 0 {
		groupID := queue.GroupIDs[0]
		members := queue.ParticipantsInGroup(groupID)

		selected := make([]*models.QueueParticipant, 0, rules.MaxPlayers)
		selected = append(selected, members...)

		// Top up with individuals oldest-first for fairness
		individuals := sortByJoin(queue.Individuals())
		for _, p := range individuals {
			if len(selected) >= rules.MaxPlayers {
				break
			}
			selected = append(selected, p)
		}

		if len(selected) == len(members) {
			return selected, []string{groupID}, models.MatchTypeCompleteGroup
		}
		return selected, []string{groupID}, models.MatchTypeGroupPlusIndividuals
	}

	individuals := sortByJoin(queue.Individuals())
	if len(individuals) > rules.MaxPlayers {
		individuals = individuals[:rules.MaxPlayers]
	}
	return individuals, nil, models.MatchTypeIndividualsOnly
}

// estimateWait is a coarse hint: how long the oldest joiner has waited
func (s *service) estimateWait(queue *models.GameQueue, now time.Time) time.Duration {
	if len(queue.Participants) == 0 {
		return 0
	}
	oldest := queue.Participants[0].JoinedAt
	for _, p := range queue.Participants[1:] {
		if p.JoinedAt.Before(oldest) {
			oldest = p.JoinedAt
		}
	}
	return now.Sub(oldest)
}

// findEntry returns the queue entry for a user, if any
func (s *service) findEntry(queue *models.GameQueue, userID string) *models.QueueParticipant {
	for _, p := range queue.Participants {
		if p.UserID == userID {
			return p
		}
	}
	return nil
}

// getOrCreateQueue loads the active queue for a game type, opening a
// fresh one when none exists
func (s *service) getOrCreateQueue(ctx context.Context, gameType models.GameType) (*models.GameQueue, error) {
	queue, err := s.queueRepo.GetQueueByGameType(ctx, &queueRepo.GetQueueByGameTypeInput{
		GameType: gameType,
	})
	if err == nil {
		return queue, nil
	}
	if !errors.Is(err, queueRepo.ErrQueueNotFound) {
		return nil, err
	}

	now := s.clock.Now()
	return &models.GameQueue{
		ID:           s.uuid.NewUUID(),
		GameType:     gameType,
		Participants: []*models.QueueParticipant{},
		Status:       models.QueueStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// sortByJoin returns the participants ordered oldest-first, keeping
// join-list order on equal timestamps
func sortByJoin(participants []*models.QueueParticipant) []*models.QueueParticipant {
	ordered := make([]*models.QueueParticipant, len(participants))
	copy(ordered, participants)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].JoinedAt.Before(ordered[j].JoinedAt)
	})
	return ordered
}

// groupsOf collects the distinct group ids present in a participant list
func groupsOf(participants []*models.QueueParticipant) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, p := range participants {
		if p.GroupID != "" && !seen[p.GroupID] {
			seen[p.GroupID] = true
			ids = append(ids, p.GroupID)
		}
	}
	return ids
}
