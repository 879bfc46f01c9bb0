package lexicon

import (
	"strings"
	"testing"

	"github.com/lexilearn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplify(t *testing.T) {
	tests := []struct {
		name       string
		definition string
		expected   string
	}{
		{
			name:       "no rule applies",
			definition: "A round fruit with red or green skin.",
			expected:   "A round fruit with red or green skin.",
		},
		{
			name:       "phrase replacement",
			definition: "Relating to the sea.",
			expected:   "about the sea.",
		},
		{
			name:       "several rules in one sentence",
			definition: "To utilize numerous tools and subsequently obtain a sufficient result.",
			expected:   "To use many tools and then get a enough result.",
		},
		{
			name:       "case insensitive",
			definition: "COMMENCE the meeting and TERMINATE it later.",
			expected:   "start the meeting and end it later.",
		},
		{
			name:       "whole words only",
			definition: "An employee who possesses approximately nothing.",
			expected:   "An employee who possesses about nothing.",
		},
		{
			name:       "empty",
			definition: "",
			expected:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Simplify(tt.definition))
		})
	}
}

func TestSimplify_LongDefinitionKeepsFirstSentence(t *testing.T) {
	definition := "A large animal that lives in the forest. It has thick fur and eats berries, fish, " +
		"honey and many other things found in the wild during the warm months of the year!"
	require.Greater(t, len(definition), maxMeaningLength)

	assert.Equal(t, "A large animal that lives in the forest.", Simplify(definition))
}

func TestSimplify_LongSingleSentence(t *testing.T) {
	definition := strings.Repeat("very ", 30) + "long"

	assert.Equal(t, definition+".", Simplify(definition))
}

func TestRewrite_Order(t *testing.T) {
	rules := []Rule{
		newRule("second", "first"),
		newRule("third", "second"),
	}

	assert.Equal(t, "third", Rewrite("first", rules))
	assert.Equal(t, "first", Rewrite("first", nil))
}

func TestPartOfSpeechExplanation(t *testing.T) {
	assert.Equal(t, "A word that names a person, place, thing, or idea", PartOfSpeechExplanation("noun"))
	assert.Equal(t, "A word that shows an action or what something does", PartOfSpeechExplanation("Verb"))
	assert.Equal(t, "A type of word", PartOfSpeechExplanation("abbreviation"))
	assert.Equal(t, "A type of word", PartOfSpeechExplanation(""))
}

func TestELI5(t *testing.T) {
	tests := []struct {
		pos      string
		expected string
	}{
		{pos: "noun", expected: "This is a thing or idea. A small house."},
		{pos: "verb", expected: "This is something you do. A small house."},
		{pos: "adjective", expected: "This describes how something is. A small house."},
		{pos: "adverb", expected: "This tells you more about how something happens. A small house."},
		{pos: "interjection", expected: "A small house."},
	}

	for _, tt := range tests {
		t.Run(tt.pos, func(t *testing.T) {
			assert.Equal(t, tt.expected, ELI5("A small house.", tt.pos))
		})
	}
}

func TestExamples(t *testing.T) {
	tests := []struct {
		name       string
		word       string
		apiExample string
		pos        string
		expected   []string
	}{
		{
			name: "adjective templates",
			word: "happy",
			pos:  "adjective",
			expected: []string{
				"She feels happy today.",
				"The happy children are playing outside.",
				"I am happy when I see my friends.",
			},
		},
		{
			name:       "dictionary example comes first",
			word:       "run",
			apiExample: "He runs to school.",
			pos:        "verb",
			expected: []string{
				"He runs to school.",
				"She likes to run.",
				"They run together.",
			},
		},
		{
			name: "fallback templates",
			word: "hello",
			pos:  "interjection",
			expected: []string{
				"I learned about hello.",
				"Hello is interesting.",
				"People often talk about hello.",
			},
		},
		{
			name:       "blank dictionary example is ignored",
			word:       "tree",
			apiExample: "   ",
			pos:        "noun",
			expected: []string{
				"The tree is very important.",
				"I saw a tree yesterday.",
				"Everyone needs tree in their life.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Examples(tt.word, tt.apiExample, tt.pos))
		})
	}
}

func TestForms(t *testing.T) {
	assert.Equal(t, models.WordForms{Adjective: "happy", Adverb: "happily", Noun: "happyness"}, Forms("happy", "adjective"))
	assert.Equal(t, models.WordForms{Adjective: "quick", Adverb: "quickly", Noun: "quickness"}, Forms("quick", "adjective"))
	assert.Equal(t, models.WordForms{Noun: "tree"}, Forms("tree", "noun"))
	assert.Equal(t, models.WordForms{Verb: "jump", Noun: "jumping"}, Forms("jump", "verb"))
	assert.Equal(t, models.WordForms{}, Forms("wow", "interjection"))
}

func TestUsagePatterns(t *testing.T) {
	assert.Equal(t, []string{"(someone) jumps", "to jump (something)", "jumping"}, UsagePatterns("jump", "verb"))
	assert.Equal(t, []string{"the tree of (something)", "a tree", "(someone)'s tree"}, UsagePatterns("tree", "Noun"))
	assert.Equal(t, []string{"use wow", "talk about wow", "wow is important"}, UsagePatterns("wow", ""))
}

func TestSynonymsAndOpposites(t *testing.T) {
	assert.Equal(t, []string{"glad", "joyful", "cheerful", "merry"}, Synonyms([]string{"glad", "", "joyful", "cheerful", "merry", "content"}))
	assert.Equal(t, []string{NoSynonyms}, Synonyms(nil))
	assert.Equal(t, []string{"sad", "unhappy"}, Opposites([]string{"sad", "unhappy", "miserable"}))
	assert.Equal(t, []string{NoOpposites}, Opposites([]string{""}))
}

func TestBuildDefinition(t *testing.T) {
	entry := models.DictionaryEntry{
		Word:         "happy",
		PartOfSpeech: "adjective",
		Definition:   "Characterized by pleasure or joy.",
		Example:      "A happy child.",
		Synonyms:     []string{"glad"},
	}

	def := BuildDefinition("  Happy ", entry)

	require.NotNil(t, def)
	assert.Equal(t, "Happy", def.Word)
	assert.Equal(t, "adjective", def.PartOfSpeech)
	assert.Equal(t, "A word that describes a person, place, or thing", def.PartOfSpeechExplanation)
	assert.Equal(t, "about pleasure or joy.", def.SimpleMeaning)
	assert.Equal(t, "This describes how something is. about pleasure or joy.", def.ELI5)
	assert.Equal(t, []string{
		"A happy child.",
		"The happy children are playing outside.",
		"I am happy when I see my friends.",
	}, def.ExampleSentences)
	assert.Equal(t, "happily", def.WordForms.Adverb)
	assert.Equal(t, []string{"glad"}, def.Synonyms)
	assert.Equal(t, []string{NoOpposites}, def.Opposites)
}

func TestBuildDefinition_EmptyQueryUsesEntryWord(t *testing.T) {
	def := BuildDefinition("", models.DictionaryEntry{Word: "Tree", PartOfSpeech: "noun", Definition: "A plant."})

	assert.Equal(t, "Tree", def.Word)
	assert.Equal(t, "The tree is very important.", def.ExampleSentences[0])
}

func TestNewWordRequest(t *testing.T) {
	def := &models.WordDefinition{
		Word:             "Happy",
		SimpleMeaning:    "feeling good",
		ELI5:             "This describes how something is. feeling good",
		ExampleSentences: []string{"A happy child.", "second"},
	}

	req := NewWordRequest(def)

	assert.Equal(t, models.NewWordRequest{
		Word:            "Happy",
		Meaning:         "feeling good",
		ELI5:            "This describes how something is. feeling good",
		ExampleSentence: "A happy child.",
		Difficulty:      "normal",
	}, req)

	assert.Empty(t, NewWordRequest(&models.WordDefinition{Word: "x"}).ExampleSentence)
}
