package lexicon

import (
	"strings"

	"github.com/lexilearn/backend/internal/models"
)

// BuildDefinition renders a dictionary entry for a learner
//
// query is the word as the user typed it; generated sentences use it, the display word
// comes from the dictionary entry.
func BuildDefinition(query string, entry models.DictionaryEntry) *models.WordDefinition {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		query = strings.ToLower(entry.Word)
	}

	return &models.WordDefinition{
		Word:                    models.CanonicalWord(entry.Word),
		PartOfSpeech:            entry.PartOfSpeech,
		PartOfSpeechExplanation: PartOfSpeechExplanation(entry.PartOfSpeech),
		SimpleMeaning:           Simplify(entry.Definition),
		ELI5:                    ELI5(entry.Definition, entry.PartOfSpeech),
		ExampleSentences:        Examples(query, entry.Example, entry.PartOfSpeech),
		WordForms:               Forms(query, entry.PartOfSpeech),
		UsagePatterns:           UsagePatterns(query, entry.PartOfSpeech),
		Synonyms:                Synonyms(entry.Synonyms),
		Opposites:               Opposites(entry.Antonyms),
	}
}

// NewWordRequest converts a definition into the payload used to save it
func NewWordRequest(def *models.WordDefinition) models.NewWordRequest {
	req := models.NewWordRequest{
		Word:       def.Word,
		Meaning:    def.SimpleMeaning,
		ELI5:       def.ELI5,
		Difficulty: string(models.DifficultyNormal),
	}
	if len(def.ExampleSentences) > 0 {
		req.ExampleSentence = def.ExampleSentences[0]
	}
	return req
}
