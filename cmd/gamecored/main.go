package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/partyround/gamecore/internal/common/clock"
	"github.com/partyround/gamecore/internal/common/uuid"
	"github.com/partyround/gamecore/internal/config"
	"github.com/partyround/gamecore/internal/engine"
	"github.com/partyround/gamecore/internal/engine/imposter"
	"github.com/partyround/gamecore/internal/logger"
	"github.com/partyround/gamecore/internal/models"
	"github.com/partyround/gamecore/internal/notifier"
	"github.com/partyround/gamecore/internal/random"
	groupRepo "github.com/partyround/gamecore/internal/repositories/group"
	queueRepo "github.com/partyround/gamecore/internal/repositories/queue"
	sessionRepo "github.com/partyround/gamecore/internal/repositories/session"
	groupService "github.com/partyround/gamecore/internal/services/group"
	matchmakingService "github.com/partyround/gamecore/internal/services/matchmaking"
	sessionService "github.com/partyround/gamecore/internal/services/session"
	"github.com/partyround/gamecore/internal/wordbank"
)

// app bundles the service surface the surrounding application mounts.
// The core owns no transport: callers reach these interfaces directly.
type app struct {
	Groups      groupService.Service
	Matchmaking matchmakingService.Service
	Sessions    sessionService.Service
}

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zlog, err := logger.New(&cfg.Logging)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer zlog.Sync()

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		zlog.Fatal("Failed to connect to Redis", zap.Error(err))
	}

	// Initialize repositories
	groups, err := groupRepo.NewRedis(&groupRepo.Config{RedisClient: redisClient})
	if err != nil {
		zlog.Fatal("Failed to create group repository", zap.Error(err))
	}
	queues, err := queueRepo.NewRedis(&queueRepo.Config{RedisClient: redisClient})
	if err != nil {
		zlog.Fatal("Failed to create queue repository", zap.Error(err))
	}
	sessions, err := sessionRepo.NewRedis(&sessionRepo.Config{RedisClient: redisClient})
	if err != nil {
		zlog.Fatal("Failed to create session repository", zap.Error(err))
	}

	// Shared primitives
	clk := &clock.DefaultClock{}
	uuidGen := uuid.New()
	rnd := random.New(&random.Config{Seed: cfg.Game.RandomSeed})

	words, err := wordbank.New(&wordbank.Config{Source: rnd})
	if err != nil {
		zlog.Fatal("Failed to create word bank", zap.Error(err))
	}

	// Round engines
	rounds, err := imposter.New(&imposter.Config{
		ReadTime:       cfg.Game.ReadTime,
		SpeaksPerRound: cfg.Game.SpeaksPerRound,
		WordBank:       words,
		Random:         rnd,
		Clock:          clk,
	})
	if err != nil {
		zlog.Fatal("Failed to create imposter engine", zap.Error(err))
	}
	registry := engine.NewRegistry()
	registry.Register(rounds)

	hooks := notifier.NewLogNotifier(zlog)

	// Services
	groupSvc, err := groupService.New(&groupService.Config{
		GroupRepo:     groups,
		Clock:         clk,
		UUIDGenerator: uuidGen,
		Random:        rnd,
	})
	if err != nil {
		zlog.Fatal("Failed to create group service", zap.Error(err))
	}

	matchSvc, err := matchmakingService.New(&matchmakingService.Config{
		QueueRepo:     queues,
		Clock:         clk,
		UUIDGenerator: uuidGen,
		Notifier:      hooks,
		Logger:        zlog,
	})
	if err != nil {
		zlog.Fatal("Failed to create matchmaking service", zap.Error(err))
	}

	sessionSvc, err := sessionService.New(&sessionService.Config{
		SessionRepo:   sessions,
		Engines:       registry,
		Clock:         clk,
		UUIDGenerator: uuidGen,
		Notifier:      hooks,
		Logger:        zlog,
	})
	if err != nil {
		zlog.Fatal("Failed to create session service", zap.Error(err))
	}

	core := &app{
		Groups:      groupSvc,
		Matchmaking: matchSvc,
		Sessions:    sessionSvc,
	}

	// Periodic match pass: formed matches become sessions
	loopCtx, stopLoop := context.WithCancel(context.Background())
	go core.matchLoop(loopCtx, zlog, &cfg.Matchmaking)

	zlog.Info("gamecore is running")

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	stopLoop()
	zlog.Info("gamecore has shut down")
}

// matchLoop periodically tries to form a match for each game type and
// turns every formed match into a waiting session. Queues whose oldest
// joiner has outwaited the configured TTL are retired first.
func (a *app) matchLoop(ctx context.Context, zlog *zap.Logger, cfg *config.MatchmakingConfig) {
	ticker := time.NewTicker(cfg.MatchInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if cfg.QueueTTL > 0 {
			expired, err := a.Matchmaking.ExpireStaleQueues(ctx, &matchmakingService.ExpireStaleQueuesInput{
				GameType: models.GameTypeImposter,
				MaxAge:   cfg.QueueTTL,
			})
			if err != nil {
				zlog.Warn("queue expiry pass failed", zap.Error(err))
			} else if expired.Expired {
				continue
			}
		}

		out, err := a.Matchmaking.TryFormMatch(ctx, &matchmakingService.TryFormMatchInput{
			GameType: models.GameTypeImposter,
		})
		if err != nil {
			zlog.Warn("match pass failed", zap.Error(err))
			continue
		}
		if !out.Matched {
			continue
		}

		created, err := a.Sessions.CreateSession(ctx, &sessionService.CreateSessionInput{
			GameType: models.GameTypeImposter,
			Match:    out.Match,
		})
		if err != nil {
			zlog.Error("failed to create session from match",
				zap.String("match_id", out.Match.ID),
				zap.Error(err),
			)
			continue
		}

		if _, err := a.Matchmaking.CommitMatch(ctx, &matchmakingService.CommitMatchInput{
			MatchID:   out.Match.ID,
			SessionID: created.Session.ID,
		}); err != nil {
			zlog.Warn("failed to commit match",
				zap.String("match_id", out.Match.ID),
				zap.Error(err),
			)
		}

		zlog.Info("session created from match",
			zap.String("match_id", out.Match.ID),
			zap.String("session_id", created.Session.ID),
		)
	}
}
