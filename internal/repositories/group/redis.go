package group

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/partyround/gamecore/internal/models"
)

const (
	// Key prefixes for Redis
	groupKeyPrefix  = "group:"
	codeKeyPrefix   = "group:code:"
	inviteKeyPrefix = "invite:"
)

// ErrGroupNotFound is returned when a group is not found
var ErrGroupNotFound = errors.New("group not found")

// ErrInviteNotFound is returned when an invite is not found
var ErrInviteNotFound = errors.New("invite not found")

// Config holds configuration for the Redis group repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed group repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveGroup persists a group to Redis
func (r *redisRepository) SaveGroup(ctx context.Context, input *SaveGroupInput) error {
	if input == nil || input.Group == nil {
		return errors.New("input and group cannot be nil")
	}

	groupJSON, err := json.Marshal(input.Group)
	if err != nil {
		return fmt.Errorf("failed to marshal group: %w", err)
	}

	pipe := r.client.Pipeline()

	groupKey := fmt.Sprintf("%s%s", groupKeyPrefix, input.Group.ID)
	pipe.Set(ctx, groupKey, groupJSON, 0)

	// Invite codes resolve to group ids with the invite TTL so stale codes
	// fall out on their own
	if input.Group.InviteCode != "" {
		codeKey := fmt.Sprintf("%s%s", codeKeyPrefix, input.Group.InviteCode)
		pipe.Set(ctx, codeKey, input.Group.ID, models.InviteTTL)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save group: %w", err)
	}

	return nil
}

// GetGroup retrieves a group by ID from Redis
func (r *redisRepository) GetGroup(ctx context.Context, input *GetGroupInput) (*models.PlayerGroup, error) {
	if input == nil || input.GroupID == "" {
		return nil, errors.New("input and group ID cannot be empty")
	}

	groupKey := fmt.Sprintf("%s%s", groupKeyPrefix, input.GroupID)
	groupJSON, err := r.client.Get(ctx, groupKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group: %w", err)
	}

	var group models.PlayerGroup
	if err := json.Unmarshal([]byte(groupJSON), &group); err != nil {
		return nil, fmt.Errorf("failed to unmarshal group: %w", err)
	}

	return &group, nil
}

// GetGroupByCode retrieves a group by invite code from Redis
func (r *redisRepository) GetGroupByCode(ctx context.Context, input *GetGroupByCodeInput) (*models.PlayerGroup, error) {
	if input == nil || input.InviteCode == "" {
		return nil, errors.New("input and invite code cannot be empty")
	}

	codeKey := fmt.Sprintf("%s%s", codeKeyPrefix, input.InviteCode)
	groupID, err := r.client.Get(ctx, codeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrGroupNotFound
		}
		return nil, fmt.Errorf("failed to get group ID for code: %w", err)
	}

	return r.GetGroup(ctx, &GetGroupInput{
		GroupID: groupID,
	})
}

// DeleteGroup removes a group from Redis
func (r *redisRepository) DeleteGroup(ctx context.Context, input *DeleteGroupInput) error {
	if input == nil || input.GroupID == "" {
		return errors.New("input and group ID cannot be empty")
	}

	group, err := r.GetGroup(ctx, &GetGroupInput{
		GroupID: input.GroupID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	groupKey := fmt.Sprintf("%s%s", groupKeyPrefix, input.GroupID)
	pipe.Del(ctx, groupKey)

	if group.InviteCode != "" {
		codeKey := fmt.Sprintf("%s%s", codeKeyPrefix, group.InviteCode)
		pipe.Del(ctx, codeKey)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	return nil
}

// SaveInvite persists an invite to Redis
func (r *redisRepository) SaveInvite(ctx context.Context, input *SaveInviteInput) error {
	if input == nil || input.Invite == nil {
		return errors.New("input and invite cannot be nil")
	}

	inviteJSON, err := json.Marshal(input.Invite)
	if err != nil {
		return fmt.Errorf("failed to marshal invite: %w", err)
	}

	inviteKey := fmt.Sprintf("%s%s", inviteKeyPrefix, input.Invite.ID)
	if err := r.client.Set(ctx, inviteKey, inviteJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save invite: %w", err)
	}

	return nil
}

// GetInvite retrieves an invite by ID from Redis
func (r *redisRepository) GetInvite(ctx context.Context, input *GetInviteInput) (*models.GroupInvite, error) {
	if input == nil || input.InviteID == "" {
		return nil, errors.New("input and invite ID cannot be empty")
	}

	inviteKey := fmt.Sprintf("%s%s", inviteKeyPrefix, input.InviteID)
	inviteJSON, err := r.client.Get(ctx, inviteKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrInviteNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	var invite models.GroupInvite
	if err := json.Unmarshal([]byte(inviteJSON), &invite); err != nil {
		return nil, fmt.Errorf("failed to unmarshal invite: %w", err)
	}

	return &invite, nil
}
