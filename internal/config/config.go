package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full service configuration
type Config struct {
	Redis       RedisConfig       `mapstructure:"redis"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Matchmaking MatchmakingConfig `mapstructure:"matchmaking"`
	Game        GameConfig        `mapstructure:"game"`
}

// RedisConfig configures the persistence layer
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// Addr returns the host:port pair for the redis client
func (c RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggingConfig configures structured logging
type LoggingConfig struct {
	// Level is one of debug, info, warn, error
	Level string `mapstructure:"level"`

	// Format is json or console
	Format string `mapstructure:"format"`
}

// MatchmakingConfig tunes the queue's matching behavior
type MatchmakingConfig struct {
	// MatchInterval is how often the periodic match pass runs
	MatchInterval time.Duration `mapstructure:"match_interval"`

	// QueueTTL is how long a queue's oldest joiner may wait before the
	// queue expires. Zero disables expiry.
	QueueTTL time.Duration `mapstructure:"queue_ttl"`
}

// GameConfig tunes round pacing
type GameConfig struct {
	// ReadTime is the word-assignment window at round start
	ReadTime time.Duration `mapstructure:"read_time"`

	// SpeaksPerRound is how many utterances each player owes per round
	SpeaksPerRound int `mapstructure:"speaks_per_round"`

	// RandomSeed seeds the game random source. Zero seeds from entropy.
	RandomSeed int64 `mapstructure:"random_seed"`
}

// Load reads the configuration file at path and overlays GAMECORE_*
// environment variables. An empty path skips the file: defaults and the
// environment carry a bare deployment.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("matchmaking.match_interval", 5*time.Second)
	v.SetDefault("matchmaking.queue_ttl", 10*time.Minute)
	v.SetDefault("game.read_time", 30*time.Second)
	v.SetDefault("game.speaks_per_round", 1)

	v.SetEnvPrefix("GAMECORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
