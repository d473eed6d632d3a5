// shared/config/config.go
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Store backends selectable through OCTOFIT_STORE.
const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// ErrUnknownStore is returned when OCTOFIT_STORE names an unsupported backend.
var ErrUnknownStore = errors.New("unknown store backend")

// CollectionNames maps each seeded entity to its MongoDB collection.
type CollectionNames struct {
	Teams       string
	Users       string
	Activities  string
	Leaderboard string
	Workouts    string
}

// SeederConfig holds configuration for the octofit-seed command.
type SeederConfig struct {
	Store                 string        // "mongo" or "memory"
	MongoDBConnStr        string        // MongoDB connection string
	MongoDBDatabase       string        // MongoDB database name (e.g., "octofit_db")
	MongoDBConnectTimeout time.Duration // Timeout for connect + ping
	Collections           CollectionNames
	RedisAddrs            []string // Empty disables leaderboard publishing
	RedisPassword         string
	LeaderboardRedisKey   string // Sorted set receiving team points
	RandomSeed            int64
	HasRandomSeed         bool // False means seed the generator from the clock
}

// LoadSeederConfig loads configuration from the environment. A .env file in the
// working directory is loaded first when present.
func LoadSeederConfig() (*SeederConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("WARN: Failed to load .env file: %v", err)
	}

	cfg := &SeederConfig{
		Store:           getString("OCTOFIT_STORE", StoreMongo),
		MongoDBConnStr:  getString("MONGODB_CONN_STR", "mongodb://localhost:27017"),
		MongoDBDatabase: getString("MONGODB_DATABASE", "octofit_db"),
		Collections: CollectionNames{
			Teams:       getString("MONGODB_TEAMS_COLLECTION", "teams"),
			Users:       getString("MONGODB_USERS_COLLECTION", "users"),
			Activities:  getString("MONGODB_ACTIVITIES_COLLECTION", "activities"),
			Leaderboard: getString("MONGODB_LEADERBOARD_COLLECTION", "leaderboard"),
			Workouts:    getString("MONGODB_WORKOUTS_COLLECTION", "workouts"),
		},
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		LeaderboardRedisKey: getString("LEADERBOARD_REDIS_KEY", "leaderboard:teams"),
	}

	switch cfg.Store {
	case StoreMongo, StoreMemory:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStore, cfg.Store)
	}

	var err error
	cfg.MongoDBConnectTimeout, err = getDuration("MONGODB_CONNECT_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	if addrs := os.Getenv("REDIS_ADDRS"); addrs != "" {
		for _, addr := range strings.Split(addrs, ",") {
			if addr = strings.TrimSpace(addr); addr != "" {
				cfg.RedisAddrs = append(cfg.RedisAddrs, addr)
			}
		}
	}

	if seedStr := os.Getenv("SEED_RANDOM_SEED"); seedStr != "" {
		cfg.RandomSeed, err = strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer format for SEED_RANDOM_SEED: %w", err)
		}
		cfg.HasRandomSeed = true
	}

	return cfg, nil
}

// RedisEnabled reports whether leaderboard publishing to Redis is configured.
func (c *SeederConfig) RedisEnabled() bool {
	return len(c.RedisAddrs) > 0
}

func getString(envKey, defaultVal string) string {
	if v := strings.TrimSpace(os.Getenv(envKey)); v != "" {
		return v
	}
	return defaultVal
}

// Helper function to parse duration from environment variable
func getDuration(envKey string, defaultVal time.Duration) (time.Duration, error) {
	valStr := os.Getenv(envKey)
	if valStr == "" {
		return defaultVal, nil
	}
	d, err := time.ParseDuration(valStr)
	if err != nil {
		return 0, fmt.Errorf("invalid duration format for %s: %w", envKey, err)
	}
	return d, nil
}
