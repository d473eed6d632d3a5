// seeder/populate/seeder.go
package populate

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/octofit/octofit-tracker/seeder/store"
	"github.com/octofit/octofit-tracker/shared/models"
)

// Random is the source of randomness for the comprehensive run. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// Publisher receives the leaderboard once every collection is populated,
// tagged with the ID of the run that produced it.
type Publisher interface {
	Publish(ctx context.Context, runID string, entries []models.LeaderboardEntry) error
}

// Option configures a Seeder.
type Option func(*Seeder)

// WithRand sets the random source. Tests pass a fixed seed.
func WithRand(rng Random) Option {
	return func(s *Seeder) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithPublisher mirrors the seeded leaderboard somewhere other than the store.
func WithPublisher(p Publisher) Option {
	return func(s *Seeder) {
		s.publisher = p
	}
}

// WithRunID fixes the run identifier instead of generating one per run.
func WithRunID(id string) Option {
	return func(s *Seeder) {
		s.runID = id
	}
}

// WithLogger overrides the logger used for progress messages.
func WithLogger(logger *log.Logger) Option {
	return func(s *Seeder) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// Seeder resets the five OctoFit collections and fills them with sample data.
// Every run deletes everything first; there is no incremental mode and no
// rollback when a store call fails halfway.
type Seeder struct {
	store     *store.Store
	rng       Random
	publisher Publisher
	logger    *log.Logger
	runID     string
}

// NewSeeder creates a Seeder writing to st.
func NewSeeder(st *store.Store, opts ...Option) *Seeder {
	s := &Seeder{
		store: st,
		//nolint:gosec // Weak random number generator is fine for sample data
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
		logger: log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// PopulateSimple replaces the collections with the original fixed data set:
// 2 teams, 4 users, 4 activities, 2 literal leaderboard entries and 3 workouts.
func (s *Seeder) PopulateSimple(ctx context.Context) (Summary, error) {
	runID := s.startRun()
	s.logger.Printf("INFO: Populating OctoFit collections with the simple data set (run %s)...", runID)

	if err := s.clear(ctx); err != nil {
		return Summary{}, err
	}
	if _, err := s.createTeams(ctx, simpleTeams); err != nil {
		return Summary{}, err
	}
	if _, err := createAll(ctx, s.store.Users, simpleUsers); err != nil {
		return Summary{}, fmt.Errorf("create users: %w", err)
	}
	if _, err := createAll(ctx, s.store.Activities, simpleActivities); err != nil {
		return Summary{}, fmt.Errorf("create activities: %w", err)
	}
	entries, err := createAll(ctx, s.store.Leaderboard, simpleLeaderboard)
	if err != nil {
		return Summary{}, fmt.Errorf("create leaderboard: %w", err)
	}
	if _, err := createAll(ctx, s.store.Workouts, simpleWorkouts); err != nil {
		return Summary{}, fmt.Errorf("create workouts: %w", err)
	}

	return s.finish(ctx, runID, entries)
}

// PopulateComprehensive replaces the collections with 7 teams, 22 users, 60
// randomly generated activities, one computed leaderboard entry per team and 25
// workouts.
func (s *Seeder) PopulateComprehensive(ctx context.Context) (Summary, error) {
	runID := s.startRun()
	s.logger.Printf("INFO: Populating OctoFit collections with the comprehensive data set (run %s)...", runID)

	if err := s.clear(ctx); err != nil {
		return Summary{}, err
	}
	teams, err := s.createTeams(ctx, comprehensiveTeams)
	if err != nil {
		return Summary{}, err
	}
	users, err := createAll(ctx, s.store.Users, comprehensiveUsers)
	if err != nil {
		return Summary{}, fmt.Errorf("create users: %w", err)
	}
	activities, err := createAll(ctx, s.store.Activities, s.generateActivities(users))
	if err != nil {
		return Summary{}, fmt.Errorf("create activities: %w", err)
	}
	entries, err := s.scoreLeaderboard(ctx, teams, activities)
	if err != nil {
		return Summary{}, err
	}
	if _, err := createAll(ctx, s.store.Workouts, comprehensiveWorkouts); err != nil {
		return Summary{}, fmt.Errorf("create workouts: %w", err)
	}

	return s.finish(ctx, runID, entries)
}

// clear empties every collection. Nothing enforces references, so order is free.
func (s *Seeder) clear(ctx context.Context) error {
	steps := []struct {
		name string
		del  func(context.Context) (int64, error)
	}{
		{"users", s.store.Users.DeleteAll},
		{"teams", s.store.Teams.DeleteAll},
		{"activities", s.store.Activities.DeleteAll},
		{"leaderboard", s.store.Leaderboard.DeleteAll},
		{"workouts", s.store.Workouts.DeleteAll},
	}
	for _, step := range steps {
		n, err := step.del(ctx)
		if err != nil {
			return fmt.Errorf("clear %s: %w", step.name, err)
		}
		s.logger.Printf("INFO: Cleared %d documents from %s", n, step.name)
	}
	return nil
}

func (s *Seeder) createTeams(ctx context.Context, names []string) ([]models.Team, error) {
	teams := make([]models.Team, 0, len(names))
	for _, name := range names {
		teams = append(teams, models.Team{Name: name})
	}
	created, err := createAll(ctx, s.store.Teams, teams)
	if err != nil {
		return nil, fmt.Errorf("create teams: %w", err)
	}
	return created, nil
}

// createAll inserts copies of docs in order and returns them with their IDs set.
func createAll[T any](ctx context.Context, coll store.Collection[T], docs []T) ([]T, error) {
	created := make([]T, len(docs))
	copy(created, docs)
	for i := range created {
		if err := coll.Create(ctx, &created[i]); err != nil {
			return nil, err
		}
	}
	return created, nil
}

// generateActivities samples ActivityCount activities with replacement: a user,
// a type from the catalog and a duration in [MinActivityDuration, MaxActivityDuration].
func (s *Seeder) generateActivities(users []models.User) []models.Activity {
	if len(users) == 0 {
		return nil
	}
	activities := make([]models.Activity, 0, ActivityCount)
	for i := 0; i < ActivityCount; i++ {
		user := users[s.rng.Intn(len(users))]
		activities = append(activities, models.Activity{
			User:     user.Name,
			Type:     activityTypes[s.rng.Intn(len(activityTypes))],
			Duration: MinActivityDuration + s.rng.Intn(MaxActivityDuration-MinActivityDuration+1),
		})
	}
	return activities
}

// scoreLeaderboard computes and stores one entry per team. Members are read back
// from the users collection, so the score reflects what the store actually holds.
func (s *Seeder) scoreLeaderboard(ctx context.Context, teams []models.Team, activities []models.Activity) ([]models.LeaderboardEntry, error) {
	entries := make([]models.LeaderboardEntry, 0, len(teams))
	for _, team := range teams {
		members, err := s.store.Users.Find(ctx, store.Filter{"team": team.Name})
		if err != nil {
			return nil, fmt.Errorf("load members of team %s: %w", team.Name, err)
		}
		names := make([]string, 0, len(members))
		for _, m := range members {
			names = append(names, m.Name)
		}

		bonus := MinRandomBonus + s.rng.Intn(MaxRandomBonus-MinRandomBonus+1)
		score := ScoreTeam(team.Name, names, activities, bonus)

		entry := models.LeaderboardEntry{Team: team.Name, Points: score.Points()}
		if err := s.store.Leaderboard.Create(ctx, &entry); err != nil {
			return nil, fmt.Errorf("create leaderboard entry for team %s: %w", team.Name, err)
		}
		s.logger.Printf("INFO: Team '%s': %d minutes, %d activity types, bonus %d => %d points",
			team.Name, score.Minutes, score.DistinctTypes, score.Bonus, entry.Points)
		entries = append(entries, entry)
	}
	return entries, nil
}

// startRun returns the fixed run ID if one was configured, else a fresh UUID.
func (s *Seeder) startRun() string {
	if s.runID != "" {
		return s.runID
	}
	return uuid.NewString()
}

func (s *Seeder) finish(ctx context.Context, runID string, entries []models.LeaderboardEntry) (Summary, error) {
	summary, err := s.summarize(ctx)
	if err != nil {
		return Summary{}, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, runID, entries); err != nil {
			s.logger.Printf("WARN: Leaderboard publish failed, store is still populated: %v", err)
		}
	}

	s.logger.Printf("INFO: Seeding finished: %s", summary)
	return summary, nil
}

func (s *Seeder) summarize(ctx context.Context) (Summary, error) {
	var summary Summary
	counts := []struct {
		name  string
		count func(context.Context) (int64, error)
		dst   *int64
	}{
		{"teams", s.store.Teams.Count, &summary.Teams},
		{"users", s.store.Users.Count, &summary.Users},
		{"activities", s.store.Activities.Count, &summary.Activities},
		{"leaderboard", s.store.Leaderboard.Count, &summary.LeaderboardEntries},
		{"workouts", s.store.Workouts.Count, &summary.Workouts},
	}
	for _, c := range counts {
		n, err := c.count(ctx)
		if err != nil {
			return Summary{}, fmt.Errorf("count %s: %w", c.name, err)
		}
		*c.dst = n
	}
	return summary, nil
}
