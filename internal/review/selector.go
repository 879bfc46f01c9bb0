package review

import (
	"cmp"
	"slices"
	"time"

	"github.com/lexilearn/backend/internal/models"
)

// jitterAmplitude is the full width of the random perturbation added to each score,
// giving a range of ±2.5
const jitterAmplitude = 5.0

type rankedWord struct {
	word     models.WordEntry
	priority float64
}

// SelectForReview picks up to count words that most need re-testing
//
// Each word is scored once, perturbed by (rng()-0.5)*5 and the words are ordered by the
// perturbed score, highest first. The result has min(count, len(words)) entries, never
// repeats an entry and is empty when words is empty or count is not positive.
// The input slice is left untouched.
func SelectForReview(words []models.WordEntry, count int, now time.Time, rng Rand) []models.WordEntry {
	n := min(count, len(words))
	if n <= 0 {
		return []models.WordEntry{}
	}

	ranked := make([]rankedWord, len(words))
	for i, w := range words {
		jitter := (rng.Float64() - 0.5) * jitterAmplitude
		ranked[i] = rankedWord{word: w, priority: float64(Score(w, now)) + jitter}
	}

	slices.SortStableFunc(ranked, func(a, b rankedWord) int {
		return cmp.Compare(b.priority, a.priority)
	})

	selected := make([]models.WordEntry, n)
	for i := range selected {
		selected[i] = ranked[i].word
	}
	return selected
}
