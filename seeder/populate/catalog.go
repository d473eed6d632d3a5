// seeder/populate/catalog.go
package populate

import "github.com/octofit/octofit-tracker/shared/models"

// Fixed data for the simple population run.
var (
	simpleTeams = []string{"Marvel", "DC"}

	simpleUsers = []models.User{
		{Name: "Iron Man", Email: "ironman@marvel.com", Team: "Marvel", IsSuperhero: true},
		{Name: "Captain America", Email: "cap@marvel.com", Team: "Marvel", IsSuperhero: true},
		{Name: "Batman", Email: "batman@dc.com", Team: "DC", IsSuperhero: true},
		{Name: "Superman", Email: "superman@dc.com", Team: "DC", IsSuperhero: true},
	}

	simpleActivities = []models.Activity{
		{User: "Iron Man", Type: "Running", Duration: 30},
		{User: "Captain America", Type: "Cycling", Duration: 45},
		{User: "Batman", Type: "Swimming", Duration: 60},
		{User: "Superman", Type: "Flying", Duration: 120},
	}

	simpleLeaderboard = []models.LeaderboardEntry{
		{Team: "Marvel", Points: 75},
		{Team: "DC", Points: 180},
	}

	simpleWorkouts = []models.Workout{
		{Name: "Push Ups", Difficulty: models.DifficultyEasy},
		{Name: "Pull Ups", Difficulty: models.DifficultyMedium},
		{Name: "Squats", Difficulty: models.DifficultyHard},
	}
)

// Fixed catalogs for the comprehensive population run.
var (
	comprehensiveTeams = []string{
		"Avengers",
		"Justice League",
		"X-Men",
		"Guardians of the Galaxy",
		"Fantastic Four",
		"Teen Titans",
		"Watchmen",
	}

	// Grouped by team, in comprehensiveTeams order.
	comprehensiveUsers = []models.User{
		{Name: "Iron Man", Email: "ironman@avengers.com", Team: "Avengers", IsSuperhero: true},
		{Name: "Captain America", Email: "cap@avengers.com", Team: "Avengers", IsSuperhero: true},
		{Name: "Thor", Email: "thor@avengers.com", Team: "Avengers", IsSuperhero: true},
		{Name: "Black Widow", Email: "widow@avengers.com", Team: "Avengers", IsSuperhero: true},

		{Name: "Batman", Email: "batman@justiceleague.com", Team: "Justice League", IsSuperhero: true},
		{Name: "Superman", Email: "superman@justiceleague.com", Team: "Justice League", IsSuperhero: true},
		{Name: "Wonder Woman", Email: "diana@justiceleague.com", Team: "Justice League", IsSuperhero: true},
		{Name: "The Flash", Email: "flash@justiceleague.com", Team: "Justice League", IsSuperhero: true},

		{Name: "Wolverine", Email: "logan@xmen.com", Team: "X-Men", IsSuperhero: true},
		{Name: "Storm", Email: "storm@xmen.com", Team: "X-Men", IsSuperhero: true},
		{Name: "Cyclops", Email: "cyclops@xmen.com", Team: "X-Men", IsSuperhero: true},

		{Name: "Star-Lord", Email: "starlord@guardians.com", Team: "Guardians of the Galaxy", IsSuperhero: true},
		{Name: "Gamora", Email: "gamora@guardians.com", Team: "Guardians of the Galaxy", IsSuperhero: true},
		{Name: "Rocket", Email: "rocket@guardians.com", Team: "Guardians of the Galaxy", IsSuperhero: true},

		{Name: "Mister Fantastic", Email: "reed@fantasticfour.com", Team: "Fantastic Four", IsSuperhero: true},
		{Name: "Invisible Woman", Email: "sue@fantasticfour.com", Team: "Fantastic Four", IsSuperhero: true},
		{Name: "The Thing", Email: "ben@fantasticfour.com", Team: "Fantastic Four", IsSuperhero: true},

		{Name: "Robin", Email: "robin@teentitans.com", Team: "Teen Titans", IsSuperhero: true},
		{Name: "Raven", Email: "raven@teentitans.com", Team: "Teen Titans", IsSuperhero: true},
		{Name: "Beast Boy", Email: "beastboy@teentitans.com", Team: "Teen Titans", IsSuperhero: true},

		// Masked vigilantes without powers.
		{Name: "Rorschach", Email: "rorschach@watchmen.com", Team: "Watchmen", IsSuperhero: false},
		{Name: "Nite Owl", Email: "niteowl@watchmen.com", Team: "Watchmen", IsSuperhero: false},
	}

	activityTypes = []string{
		"Running",
		"Cycling",
		"Swimming",
		"Flying",
		"Weightlifting",
		"Yoga",
		"Boxing",
		"Rowing",
		"Hiking",
		"Climbing",
		"Martial Arts",
		"Pilates",
		"CrossFit",
		"Sprinting",
		"Jump Rope",
		"Dancing",
		"Archery",
		"Parkour",
		"Stretching",
		"Meditation",
	}

	comprehensiveWorkouts = []models.Workout{
		{Name: "Push Ups", Difficulty: models.DifficultyEasy},
		{Name: "Pull Ups", Difficulty: models.DifficultyMedium},
		{Name: "Squats", Difficulty: models.DifficultyHard},
		{Name: "Burpees", Difficulty: models.DifficultyMedium},
		{Name: "Plank", Difficulty: models.DifficultyEasy},
		{Name: "Lunges", Difficulty: models.DifficultyEasy},
		{Name: "Deadlifts", Difficulty: models.DifficultyHard},
		{Name: "Bench Press", Difficulty: models.DifficultyMedium},
		{Name: "Mountain Climbers", Difficulty: models.DifficultyMedium},
		{Name: "Jumping Jacks", Difficulty: models.DifficultyEasy},
		{Name: "Box Jumps", Difficulty: models.DifficultyMedium},
		{Name: "Kettlebell Swings", Difficulty: models.DifficultyMedium},
		{Name: "Battle Ropes", Difficulty: models.DifficultyHard},
		{Name: "Muscle Ups", Difficulty: models.DifficultyHard},
		{Name: "Handstand Push Ups", Difficulty: models.DifficultyHard},
		{Name: "Sit Ups", Difficulty: models.DifficultyEasy},
		{Name: "Russian Twists", Difficulty: models.DifficultyEasy},
		{Name: "Wall Sit", Difficulty: models.DifficultyEasy},
		{Name: "Tire Flips", Difficulty: models.DifficultyHard},
		{Name: "Sled Push", Difficulty: models.DifficultyHard},
		{Name: "Dips", Difficulty: models.DifficultyMedium},
		{Name: "Clean and Jerk", Difficulty: models.DifficultyHard},
		{Name: "Bear Crawl", Difficulty: models.DifficultyMedium},
		{Name: "Hollow Hold", Difficulty: models.DifficultyMedium},
		{Name: "Glute Bridge", Difficulty: models.DifficultyEasy},
	}
)

// ActivityTypes returns a copy of the activity type catalog sampled by the
// comprehensive run.
func ActivityTypes() []string {
	return append([]string(nil), activityTypes...)
}
