// shared/redis/constants.go
package redis

const (
	// DefaultLeaderboardKey is the sorted set holding team points, member = team name.
	DefaultLeaderboardKey = "leaderboard:teams"

	// LeaderboardSeedInfoSuffix is appended to the leaderboard key for the hash
	// recording the last seed run (fields: run_id, seeded_at).
	LeaderboardSeedInfoSuffix = ":seed"
)
