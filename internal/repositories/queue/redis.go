package queue

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
	queueKeyPrefix    = "queue:"
	gameTypeKeyPrefix = "queue:gametype:"
	matchKeyPrefix    = "match:"
)

// ErrQueueNotFound is returned when a queue is not found
var ErrQueueNotFound = errors.New("queue not found")

// ErrMatchNotFound is returned when a match is not found
var ErrMatchNotFound = errors.New("match not found")

// Config holds configuration for the Redis queue repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed queue repository
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

// SaveQueue persists a queue to Redis
func (r *redisRepository) SaveQueue(ctx context.Context, input *SaveQueueInput) error {
	if input == nil || input.Queue == nil {
		return errors.New("input and queue cannot be nil")
	}

	queueJSON, err := json.Marshal(input.Queue)
	if err != nil {
		return fmt.Errorf("failed to marshal queue: %w", err)
	}

	pipe := r.client.Pipeline()

	queueKey := fmt.Sprintf("%s%s", queueKeyPrefix, input.Queue.ID)
	pipe.Set(ctx, queueKey, queueJSON, 0)

	// The game-type index points at the active queue only; a matched or
	// cancelled queue stops being the queue new joiners should find
	gameTypeKey := fmt.Sprintf("%s%s", gameTypeKeyPrefix, input.Queue.GameType)
	if input.Queue.Status == models.QueueStatusActive {
		pipe.Set(ctx, gameTypeKey, input.Queue.ID, 0)
	} else {
		pipe.Del(ctx, gameTypeKey)
	}

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save queue: %w", err)
	}

	return nil
}

// GetQueue retrieves a queue by ID from Redis
func (r *redisRepository) GetQueue(ctx context.Context, input *GetQueueInput) (*models.GameQueue, error) {
	if input == nil || input.QueueID == "" {
		return nil, errors.New("input and queue ID cannot be empty")
	}

	queueKey := fmt.Sprintf("%s%s", queueKeyPrefix, input.QueueID)
	queueJSON, err := r.client.Get(ctx, queueKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrQueueNotFound
		}
		return nil, fmt.Errorf("failed to get queue: %w", err)
	}

	var queue models.GameQueue
	if err := json.Unmarshal([]byte(queueJSON), &queue); err != nil {
		return nil, fmt.Errorf("failed to unmarshal queue: %w", err)
	}

	return &queue, nil
}

// GetQueueByGameType retrieves the active queue for a game type
func (r *redisRepository) GetQueueByGameType(ctx context.Context, input *GetQueueByGameTypeInput) (*models.GameQueue, error) {
	if input == nil || input.GameType == "" {
		return nil, errors.New("input and game type cannot be empty")
	}

	gameTypeKey := fmt.Sprintf("%s%s", gameTypeKeyPrefix, input.GameType)
	queueID, err := r.client.Get(ctx, gameTypeKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrQueueNotFound
		}
		return nil, fmt.Errorf("failed to get queue ID for game type: %w", err)
	}

	return r.GetQueue(ctx, &GetQueueInput{
		QueueID: queueID,
	})
}

// DeleteQueue removes a queue from Redis
func (r *redisRepository) DeleteQueue(ctx context.Context, input *DeleteQueueInput) error {
	if input == nil || input.QueueID == "" {
		return errors.New("input and queue ID cannot be empty")
	}

	queue, err := r.GetQueue(ctx, &GetQueueInput{
		QueueID: input.QueueID,
	})
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()

	queueKey := fmt.Sprintf("%s%s", queueKeyPrefix, input.QueueID)
	pipe.Del(ctx, queueKey)

	gameTypeKey := fmt.Sprintf("%s%s", gameTypeKeyPrefix, queue.GameType)
	pipe.Del(ctx, gameTypeKey)

	_, err = pipe.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete queue: %w", err)
	}

	return nil
}

// SaveMatch persists a formed match to Redis
func (r *redisRepository) SaveMatch(ctx context.Context, input *SaveMatchInput) error {
	if input == nil || input.Match == nil {
		return errors.New("input and match cannot be nil")
	}

	matchJSON, err := json.Marshal(input.Match)
	if err != nil {
		return fmt.Errorf("failed to marshal match: %w", err)
	}

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.Match.ID)
	if err := r.client.Set(ctx, matchKey, matchJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save match: %w", err)
	}

	return nil
}

// GetMatch retrieves a match by ID from Redis
func (r *redisRepository) GetMatch(ctx context.Context, input *GetMatchInput) (*models.GameMatch, error) {
	if input == nil || input.MatchID == "" {
		return nil, errors.New("input and match ID cannot be empty")
	}

	matchKey := fmt.Sprintf("%s%s", matchKeyPrefix, input.MatchID)
	matchJSON, err := r.client.Get(ctx, matchKey).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrMatchNotFound
		}
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	var match models.GameMatch
	if err := json.Unmarshal([]byte(matchJSON), &match); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &match, nil
}
