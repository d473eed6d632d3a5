// seeder/populate/scoring.go
package populate

import "github.com/octofit/octofit-tracker/shared/models"

// Scoring constants for the comprehensive leaderboard.
const (
	VarietyBonusPerType = 10
	MinRandomBonus      = 50
	MaxRandomBonus      = 200

	MinActivityDuration = 15
	MaxActivityDuration = 180
	ActivityCount       = 60
)

// TeamScore is the breakdown of one team's leaderboard points.
type TeamScore struct {
	Team          string
	Minutes       int // sum of member activity durations
	DistinctTypes int
	Bonus         int
}

// Points is Minutes + VarietyBonusPerType per distinct type + Bonus.
func (s TeamScore) Points() int {
	return s.Minutes + VarietyBonusPerType*s.DistinctTypes + s.Bonus
}

// ScoreTeam aggregates the activities whose user is one of members. Activities
// naming unknown users are ignored.
func ScoreTeam(team string, members []string, activities []models.Activity, bonus int) TeamScore {
	memberSet := make(map[string]struct{}, len(members))
	for _, name := range members {
		memberSet[name] = struct{}{}
	}

	score := TeamScore{Team: team, Bonus: bonus}
	types := make(map[string]struct{})
	for _, a := range activities {
		if _, ok := memberSet[a.User]; !ok {
			continue
		}
		score.Minutes += a.Duration
		types[a.Type] = struct{}{}
	}
	score.DistinctTypes = len(types)
	return score
}
