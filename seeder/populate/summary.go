// seeder/populate/summary.go
package populate

import (
	"fmt"
	"io"
)

// Summary holds the document count of each collection after a run.
type Summary struct {
	Teams              int64
	Users              int64
	Activities         int64
	LeaderboardEntries int64
	Workouts           int64
}

func (s Summary) String() string {
	return fmt.Sprintf("%d teams, %d users, %d activities, %d leaderboard entries, %d workouts",
		s.Teams, s.Users, s.Activities, s.LeaderboardEntries, s.Workouts)
}

// Report writes the operator-facing result of a run.
func (s Summary) Report(w io.Writer, database string) error {
	_, err := fmt.Fprintf(w, "%s database populated with test data\n"+
		"  Teams:               %d\n"+
		"  Users:               %d\n"+
		"  Activities:          %d\n"+
		"  Leaderboard entries: %d\n"+
		"  Workouts:            %d\n",
		database, s.Teams, s.Users, s.Activities, s.LeaderboardEntries, s.Workouts)
	return err
}
