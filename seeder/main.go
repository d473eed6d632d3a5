// main.go
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/octofit/octofit-tracker/seeder/leaderboard"
	"github.com/octofit/octofit-tracker/seeder/populate"
	"github.com/octofit/octofit-tracker/seeder/store"
	"github.com/octofit/octofit-tracker/shared/config"
	mongodbu "github.com/octofit/octofit-tracker/shared/mongodb"
	redisu "github.com/octofit/octofit-tracker/shared/redis"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "octofit-seed",
		Short:         "Reset and repopulate the OctoFit Tracker database with sample data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(newPopulateCommand(
		"populate",
		"Populate the database with the fixed test data set",
		simpleVariant,
	))
	cmd.AddCommand(newPopulateCommand(
		"populate-comprehensive",
		"Populate the database with the larger randomized data set",
		comprehensiveVariant,
	))
	return cmd
}

type populateFunc func(*populate.Seeder, context.Context) (populate.Summary, error)

// variant is one seeding command. Only randomized variants draw from the seed.
type variant struct {
	run        populateFunc
	randomized bool
}

var (
	simpleVariant        = variant{run: (*populate.Seeder).PopulateSimple}
	comprehensiveVariant = variant{run: (*populate.Seeder).PopulateComprehensive, randomized: true}
)

func newPopulateCommand(use, short string, v variant) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadSeederConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			return runPopulate(cmd.Context(), cfg, v, cmd.OutOrStdout())
		},
	}
}

func runPopulate(ctx context.Context, cfg *config.SeederConfig, v variant, out io.Writer) error {
	// --- 1. Open the store ---
	st, database, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	// --- 2. Random source ---
	seed := time.Now().UnixNano()
	if cfg.HasRandomSeed {
		seed = cfg.RandomSeed
	}
	if v.randomized {
		log.Printf("INFO: Using random seed %d", seed)
	}
	//nolint:gosec // Weak random number generator is fine for sample data
	opts := []populate.Option{populate.WithRand(rand.New(rand.NewSource(seed)))}

	// --- 3. Optional Redis leaderboard mirror ---
	if cfg.RedisEnabled() {
		redisClient, err := redisu.NewRedisClusterClient(ctx, cfg.RedisAddrs, cfg.RedisPassword)
		if err != nil {
			return err
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				log.Printf("ERROR: Error closing Redis client: %v", err)
			}
		}()
		opts = append(opts, populate.WithPublisher(leaderboard.NewRedisPublisher(redisClient, cfg.LeaderboardRedisKey, log.Default())))
	}

	// --- 4. Seed ---
	summary, err := v.run(populate.NewSeeder(st, opts...), ctx)
	if err != nil {
		return err
	}

	// --- 5. Report ---
	return summary.Report(out, database)
}

func openStore(ctx context.Context, cfg *config.SeederConfig) (*store.Store, string, func(), error) {
	if cfg.Store == config.StoreMemory {
		log.Println("WARN: Using the in-memory store, nothing will be persisted.")
		return store.NewMemoryStore(), cfg.MongoDBDatabase, func() {}, nil
	}

	mongoClient, err := mongodbu.NewClient(ctx, cfg.MongoDBConnStr, cfg.MongoDBDatabase, cfg.MongoDBConnectTimeout)
	if err != nil {
		return nil, "", nil, err
	}
	closeFn := func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoClient.Disconnect(shutdownCtx); err != nil {
			log.Printf("ERROR: Failed to disconnect from MongoDB: %v", err)
		}
	}
	return store.NewMongoStore(mongoClient, cfg.Collections), mongoClient.DatabaseName(), closeFn, nil
}
