package populate

import (
	"context"
	"errors"
	"io"
	"log"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/octofit/octofit-tracker/seeder/store"
	"github.com/octofit/octofit-tracker/shared/models"
)

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func newTestSeeder(st *store.Store, seed int64, opts ...Option) *Seeder {
	opts = append([]Option{
		WithRand(rand.New(rand.NewSource(seed))),
		WithLogger(quietLogger()),
	}, opts...)
	return NewSeeder(st, opts...)
}

func TestPopulateSimpleCounts(t *testing.T) {
	st := store.NewMemoryStore()

	summary, err := newTestSeeder(st, 1).PopulateSimple(context.Background())
	require.NoError(t, err)
	require.Equal(t, Summary{Teams: 2, Users: 4, Activities: 4, LeaderboardEntries: 2, Workouts: 3}, summary)
}

func TestPopulateSimpleLookups(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	_, err := newTestSeeder(st, 1).PopulateSimple(ctx)
	require.NoError(t, err)

	for _, name := range []string{"Marvel", "DC"} {
		teams, err := st.Teams.Find(ctx, store.Filter{"name": name})
		require.NoError(t, err)
		require.Len(t, teams, 1, "team %s", name)
		require.NotEmpty(t, teams[0].ID)
	}

	activities, err := st.Activities.Find(ctx, store.Filter{"user": "Iron Man"})
	require.NoError(t, err)
	require.Len(t, activities, 1)
	require.Equal(t, "Running", activities[0].Type)
	require.Equal(t, 30, activities[0].Duration)

	entries, err := st.Leaderboard.Find(ctx, store.Filter{"team": "DC"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, 180, entries[0].Points)

	marvel, err := st.Leaderboard.Find(ctx, store.Filter{"team": "Marvel"})
	require.NoError(t, err)
	require.Len(t, marvel, 1)
	require.Equal(t, 75, marvel[0].Points)

	users, err := st.Users.Find(ctx, store.Filter{"team": "DC"})
	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		require.True(t, u.IsSuperhero)
	}
}

func TestPopulateComprehensiveCounts(t *testing.T) {
	st := store.NewMemoryStore()

	summary, err := newTestSeeder(st, 7).PopulateComprehensive(context.Background())
	require.NoError(t, err)
	require.Equal(t, Summary{Teams: 7, Users: 22, Activities: 60, LeaderboardEntries: 7, Workouts: 25}, summary)
}

func TestPopulateComprehensiveActivitiesWithinCatalog(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	_, err := newTestSeeder(st, 99).PopulateComprehensive(ctx)
	require.NoError(t, err)

	users, err := st.Users.Find(ctx, nil)
	require.NoError(t, err)
	userNames := make(map[string]bool, len(users))
	for _, u := range users {
		userNames[u.Name] = true
	}

	activities, err := st.Activities.Find(ctx, nil)
	require.NoError(t, err)
	require.Len(t, activities, ActivityCount)

	types := ActivityTypes()
	require.Len(t, types, 20)
	for _, a := range activities {
		require.GreaterOrEqual(t, a.Duration, MinActivityDuration)
		require.LessOrEqual(t, a.Duration, MaxActivityDuration)
		require.Contains(t, types, a.Type)
		require.True(t, userNames[a.User], "activity references unknown user %q", a.User)
	}
}

func TestPopulateComprehensiveLeaderboardMatchesActivities(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	_, err := newTestSeeder(st, 2024).PopulateComprehensive(ctx)
	require.NoError(t, err)

	teams, err := st.Teams.Find(ctx, nil)
	require.NoError(t, err)
	activities, err := st.Activities.Find(ctx, nil)
	require.NoError(t, err)

	maxPoints := ActivityCount*MaxActivityDuration + VarietyBonusPerType*len(activityTypes) + MaxRandomBonus
	for _, team := range teams {
		entries, err := st.Leaderboard.Find(ctx, store.Filter{"team": team.Name})
		require.NoError(t, err)
		require.Len(t, entries, 1, "team %s", team.Name)

		members, err := st.Users.Find(ctx, store.Filter{"team": team.Name})
		require.NoError(t, err)
		names := make([]string, 0, len(members))
		for _, m := range members {
			names = append(names, m.Name)
		}
		withoutBonus := ScoreTeam(team.Name, names, activities, 0).Points()

		bonus := entries[0].Points - withoutBonus
		require.GreaterOrEqual(t, bonus, MinRandomBonus, "team %s", team.Name)
		require.LessOrEqual(t, bonus, MaxRandomBonus, "team %s", team.Name)
		require.GreaterOrEqual(t, entries[0].Points, MinRandomBonus)
		require.LessOrEqual(t, entries[0].Points, maxPoints)
	}
}

func TestPopulateComprehensiveIsDeterministicForSeed(t *testing.T) {
	ctx := context.Background()

	first := store.NewMemoryStore()
	_, err := newTestSeeder(first, 5).PopulateComprehensive(ctx)
	require.NoError(t, err)

	second := store.NewMemoryStore()
	_, err = newTestSeeder(second, 5).PopulateComprehensive(ctx)
	require.NoError(t, err)

	a, err := first.Leaderboard.Find(ctx, nil)
	require.NoError(t, err)
	b, err := second.Leaderboard.Find(ctx, nil)
	require.NoError(t, err)
	require.Len(t, b, len(a))
	for i := range a {
		require.Equal(t, a[i].Team, b[i].Team)
		require.Equal(t, a[i].Points, b[i].Points)
	}
}

func TestRepeatedRunsResetInsteadOfAccumulating(t *testing.T) {
	tests := []struct {
		name string
		run  func(*Seeder, context.Context) (Summary, error)
	}{
		{name: "simple", run: (*Seeder).PopulateSimple},
		{name: "comprehensive", run: (*Seeder).PopulateComprehensive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			st := store.NewMemoryStore()
			seeder := newTestSeeder(st, 3)

			first, err := tt.run(seeder, ctx)
			require.NoError(t, err)
			second, err := tt.run(seeder, ctx)
			require.NoError(t, err)
			require.Equal(t, first, second)
		})
	}
}

func TestPopulateOverPreexistingData(t *testing.T) {
	ctx := context.Background()
	st := store.NewMemoryStore()

	require.NoError(t, st.Users.Create(ctx, &models.User{Name: "Stranger", Team: "Nobody"}))
	require.NoError(t, st.Teams.Create(ctx, &models.Team{Name: "Nobody"}))
	require.NoError(t, st.Workouts.Create(ctx, &models.Workout{Name: "Couch", Difficulty: models.DifficultyEasy}))

	cold, err := newTestSeeder(store.NewMemoryStore(), 1).PopulateSimple(ctx)
	require.NoError(t, err)
	warm, err := newTestSeeder(st, 1).PopulateSimple(ctx)
	require.NoError(t, err)
	require.Equal(t, cold, warm)

	leftovers, err := st.Users.Find(ctx, store.Filter{"name": "Stranger"})
	require.NoError(t, err)
	require.Empty(t, leftovers)
}

type recordingPublisher struct {
	runIDs  []string
	entries []models.LeaderboardEntry
	calls   int
	err     error
}

func (p *recordingPublisher) Publish(ctx context.Context, runID string, entries []models.LeaderboardEntry) error {
	p.calls++
	p.runIDs = append(p.runIDs, runID)
	p.entries = entries
	return p.err
}

func TestPublisherReceivesLeaderboard(t *testing.T) {
	pub := &recordingPublisher{}
	st := store.NewMemoryStore()

	_, err := newTestSeeder(st, 1, WithPublisher(pub)).PopulateSimple(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, pub.calls)
	require.Len(t, pub.entries, 2)
	require.Equal(t, "Marvel", pub.entries[0].Team)
	require.Equal(t, 75, pub.entries[0].Points)
	require.NotEmpty(t, pub.entries[0].ID)
}

func TestEachRunGetsItsOwnID(t *testing.T) {
	ctx := context.Background()
	pub := &recordingPublisher{}
	seeder := newTestSeeder(store.NewMemoryStore(), 1, WithPublisher(pub))

	_, err := seeder.PopulateSimple(ctx)
	require.NoError(t, err)
	_, err = seeder.PopulateSimple(ctx)
	require.NoError(t, err)

	require.Len(t, pub.runIDs, 2)
	require.NotEmpty(t, pub.runIDs[0])
	require.NotEqual(t, pub.runIDs[0], pub.runIDs[1])
}

func TestWithRunIDFixesRunID(t *testing.T) {
	pub := &recordingPublisher{}

	_, err := newTestSeeder(store.NewMemoryStore(), 1, WithPublisher(pub), WithRunID("nightly-42")).
		PopulateComprehensive(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"nightly-42"}, pub.runIDs)
}

func TestPublisherFailureDoesNotFailRun(t *testing.T) {
	pub := &recordingPublisher{err: errors.New("redis unavailable")}

	summary, err := newTestSeeder(store.NewMemoryStore(), 1, WithPublisher(pub)).PopulateComprehensive(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, pub.calls)
	require.Len(t, pub.entries, 7)
	require.Equal(t, int64(7), summary.LeaderboardEntries)
}

// failingCollection wraps a collection and fails Create after `after` successful inserts.
type failingCollection[T any] struct {
	store.Collection[T]
	after     int
	createErr error
	deleteErr error
	created   int
}

func (f *failingCollection[T]) Create(ctx context.Context, doc *T) error {
	if f.createErr != nil && f.created >= f.after {
		return f.createErr
	}
	f.created++
	return f.Collection.Create(ctx, doc)
}

func (f *failingCollection[T]) DeleteAll(ctx context.Context) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	return f.Collection.DeleteAll(ctx)
}

func TestStoreFailureAbortsRun(t *testing.T) {
	ctx := context.Background()
	lost := errors.New("connection reset by peer")

	st := store.NewMemoryStore()
	st.Activities = &failingCollection[models.Activity]{
		Collection: st.Activities,
		after:      2,
		createErr:  lost,
	}
	pub := &recordingPublisher{}

	_, err := newTestSeeder(st, 1, WithPublisher(pub)).PopulateSimple(ctx)
	require.ErrorIs(t, err, lost)
	require.Contains(t, err.Error(), lost.Error())
	require.Zero(t, pub.calls)

	// Nothing is rolled back: earlier steps and the first activities stay.
	n, err := st.Users.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(4), n)
	n, err = st.Activities.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
	n, err = st.Workouts.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}

func TestClearFailureAbortsBeforeInserting(t *testing.T) {
	ctx := context.Background()
	lost := errors.New("server selection timeout")

	st := store.NewMemoryStore()
	st.Leaderboard = &failingCollection[models.LeaderboardEntry]{
		Collection: st.Leaderboard,
		deleteErr:  lost,
	}

	_, err := newTestSeeder(st, 1).PopulateComprehensive(ctx)
	require.ErrorIs(t, err, lost)

	n, err := st.Teams.Count(ctx)
	require.NoError(t, err)
	require.Zero(t, n)
}
