package review

import (
	"time"

	"github.com/lexilearn/backend/internal/models"
)

// RecordAnswer returns w updated with the outcome of one quiz answer
//
// Exactly one of the counters grows by one and LastReviewed becomes the calendar day of now.
// No other field changes.
func RecordAnswer(w models.WordEntry, wasCorrect bool, now time.Time) models.WordEntry {
	if wasCorrect {
		w.CorrectCount++
	} else {
		w.WrongCount++
	}
	day := models.CalendarDay(now)
	w.LastReviewed = &day
	return w
}

// SetDifficulty returns w with the manual difficulty flag replaced; counters are kept
func SetDifficulty(w models.WordEntry, difficulty models.Difficulty) models.WordEntry {
	w.Difficulty = difficulty
	return w
}
