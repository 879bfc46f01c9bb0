package review

import (
	"github.com/lexilearn/backend/internal/models"
)

const (
	masteryMinCorrect = 3
	// mastery needs correct/attempts >= 7/10
	masteryRatioNum = 7
	masteryRatioDen = 10
)

// Summarize computes a progress snapshot over the whole collection
func Summarize(words []models.WordEntry) models.ProgressSnapshot {
	snapshot := models.ProgressSnapshot{TotalWords: len(words)}

	for _, w := range words {
		snapshot.TotalCorrect += w.CorrectCount
		snapshot.TotalWrong += w.WrongCount

		if IsMastered(w) {
			snapshot.MasteredWords++
		}
		if IsWeak(w) {
			snapshot.WeakWords++
		}
		if w.Difficulty == models.DifficultyDifficult {
			snapshot.DifficultWords++
		}
	}

	snapshot.Accuracy = Percent(snapshot.TotalCorrect, snapshot.TotalCorrect+snapshot.TotalWrong)
	snapshot.MasteryPercent = Percent(snapshot.MasteredWords, snapshot.TotalWords)
	return snapshot
}

// IsMastered reports whether w has at least 3 correct answers and at least 70% accuracy
func IsMastered(w models.WordEntry) bool {
	if w.CorrectCount < masteryMinCorrect {
		return false
	}
	return w.CorrectCount*masteryRatioDen >= w.Attempts()*masteryRatioNum
}

// IsWeak reports whether w is flagged difficult or has more wrong than correct answers
func IsWeak(w models.WordEntry) bool {
	return w.Difficulty == models.DifficultyDifficult || w.WrongCount > w.CorrectCount
}

// Percent returns 100*part/whole rounded half up, or 0 when whole is 0
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return (200*part + whole) / (2 * whole)
}
