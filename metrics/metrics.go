// Package metrics computes shooting and impact metrics from raw stat lines.
// All functions are pure; zero-attempt guards return 0 rather than NaN.
package metrics

// TrueShooting is points per two true shot attempts, where free throw trips
// count as 0.44 attempts.
func TrueShooting(points, fieldGoalAttempts, freeThrowAttempts float64) float64 {
	attempts := fieldGoalAttempts + 0.44*freeThrowAttempts
	if attempts == 0 {
		return 0
	}
	return points / (2 * attempts)
}

// EffectiveFieldGoal is field goal percentage with threes weighted 1.5x.
func EffectiveFieldGoal(fieldGoalsMade, threesMade, fieldGoalAttempts float64) float64 {
	if fieldGoalAttempts == 0 {
		return 0
	}
	return (fieldGoalsMade + 0.5*threesMade) / fieldGoalAttempts
}

// Per36 scales a counting stat to a 36-minute pace.
func Per36(stat, minutes float64) float64 {
	if minutes == 0 {
		return 0
	}
	return stat * 36 / minutes
}

// GameScore is Hollinger's single-number box score summary.
func GameScore(points, fieldGoalsMade, fieldGoalAttempts, freeThrowsMade, freeThrowAttempts,
	offensiveRebounds, defensiveRebounds, steals, assists, blocks, personalFouls, turnovers float64) float64 {
	return points +
		0.4*fieldGoalsMade - 0.7*fieldGoalAttempts -
		0.4*(freeThrowAttempts-freeThrowsMade) +
		0.7*offensiveRebounds + 0.3*defensiveRebounds +
		steals + 0.7*assists + 0.7*blocks -
		0.4*personalFouls - turnovers
}

// IsDoubleDouble reports double figures in at least two major categories.
func IsDoubleDouble(points, rebounds, assists, steals, blocks float64) bool {
	return doubles(points, rebounds, assists, steals, blocks) >= 2
}

// IsTripleDouble reports double figures in at least three major categories.
func IsTripleDouble(points, rebounds, assists, steals, blocks float64) bool {
	return doubles(points, rebounds, assists, steals, blocks) >= 3
}

func doubles(stats ...float64) int {
	n := 0
	for _, s := range stats {
		if s >= 10 {
			n++
		}
	}
	return n
}
