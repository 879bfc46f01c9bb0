package review

import (
	"github.com/lexilearn/backend/internal/models"
)

const (
	// distractorCount is the number of wrong options in every question
	distractorCount = 3
	// MinVocabulary is the number of distinct meanings required to start a session
	MinVocabulary = distractorCount + 1
	// MinQuestions is the smallest session that is worth presenting
	MinQuestions = 2
)

// BuildQuestion builds a multiple-choice question for target
//
// Distractors are drawn from the meanings in pool that differ from target.Meaning.
// When fewer than three distinct distractors exist the question cannot be built and nil
// is returned. The correct answer is placed at a random position among the four options.
func BuildQuestion(target models.WordEntry, pool []models.WordEntry, rng Rand) *models.Question {
	candidates := distractorCandidates(target, pool)
	if len(candidates) < distractorCount {
		return nil
	}

	shuffle(candidates, rng)

	options := make([]string, 0, distractorCount+1)
	options = append(options, candidates[:distractorCount]...)
	options = append(options, target.Meaning)
	shuffle(options, rng)

	return &models.Question{
		Word:          target,
		Options:       options,
		CorrectAnswer: target.Meaning,
	}
}

// distractorCandidates returns the distinct meanings of pool that differ from the target's,
// in first-seen order
func distractorCandidates(target models.WordEntry, pool []models.WordEntry) []string {
	seen := make(map[string]struct{}, len(pool))
	candidates := make([]string, 0, len(pool))
	for _, w := range pool {
		if w.Meaning == target.Meaning {
			continue
		}
		if _, ok := seen[w.Meaning]; ok {
			continue
		}
		seen[w.Meaning] = struct{}{}
		candidates = append(candidates, w.Meaning)
	}
	return candidates
}

// HasEnoughVocabulary reports whether words hold at least MinVocabulary distinct meanings
func HasEnoughVocabulary(words []models.WordEntry) bool {
	meanings := make(map[string]struct{}, len(words))
	for _, w := range words {
		meanings[w.Meaning] = struct{}{}
		if len(meanings) >= MinVocabulary {
			return true
		}
	}
	return false
}

// BuildSession builds one question per selected word, in selection order
//
// Words whose question cannot be built are left out. When fewer than MinQuestions
// questions remain, models.ErrNotEnoughData is returned.
func BuildSession(selected, pool []models.WordEntry, rng Rand) ([]models.Question, error) {
	questions := make([]models.Question, 0, len(selected))
	for _, w := range selected {
		if q := BuildQuestion(w, pool, rng); q != nil {
			questions = append(questions, *q)
		}
	}
	if len(questions) < MinQuestions {
		return nil, models.ErrNotEnoughData
	}
	return questions, nil
}
