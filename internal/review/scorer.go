package review

import (
	"time"

	"github.com/lexilearn/backend/internal/models"
)

const (
	difficultBonus = 10
	wrongWeight    = 3
	correctWeight  = 1
	// maxRecencyDays caps the recency term and is also used for words never reviewed
	maxRecencyDays = 30
)

// Score returns the review priority of a word, higher meaning more urgent
//
// The manual difficult flag adds 10, every wrong answer adds 3, every correct answer
// subtracts 1 and each day since the last review adds 1, up to 30 days.
// Words that were never reviewed get the full 30.
func Score(w models.WordEntry, now time.Time) int {
	score := 0
	if w.Difficulty == models.DifficultyDifficult {
		score += difficultBonus
	}
	score += wrongWeight * w.WrongCount
	score -= correctWeight * w.CorrectCount
	score += min(daysSinceReview(w, now), maxRecencyDays)
	return score
}

// daysSinceReview returns whole days elapsed since the last review
//
// A last review date after now counts as zero days.
func daysSinceReview(w models.WordEntry, now time.Time) int {
	if w.LastReviewed == nil {
		return maxRecencyDays
	}
	elapsed := now.Sub(*w.LastReviewed)
	if elapsed < 0 {
		return 0
	}
	return int(elapsed / (24 * time.Hour))
}
