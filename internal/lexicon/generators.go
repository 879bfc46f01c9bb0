package lexicon

import (
	"strings"

	"github.com/lexilearn/backend/internal/models"
)

const (
	exampleCount = 3
	maxSynonyms  = 4
	maxOpposites = 2

	NoSynonyms  = "No common synonyms found"
	NoOpposites = "No common opposites found"
)

var partOfSpeechExplanations = map[string]string{
	"noun":         "A word that names a person, place, thing, or idea",
	"verb":         "A word that shows an action or what something does",
	"adjective":    "A word that describes a person, place, or thing",
	"adverb":       "A word that describes how, when, or where something happens",
	"pronoun":      "A word that takes the place of a noun (like he, she, it)",
	"preposition":  "A word that shows position or relationship (like in, on, under)",
	"conjunction":  "A word that connects other words or sentences (like and, but, or)",
	"interjection": "A word that expresses emotion or surprise (like wow, ouch)",
}

var eli5Prefixes = map[string]string{
	"noun":      "This is a thing or idea. ",
	"verb":      "This is something you do. ",
	"adjective": "This describes how something is. ",
	"adverb":    "This tells you more about how something happens. ",
}

// wordPlaceholder marks where the word goes in a template
const wordPlaceholder = "{word}"

var exampleTemplates = map[string][]string{
	"adjective": {
		"She feels {word} today.",
		"The {word} children are playing outside.",
		"I am {word} when I see my friends.",
	},
	"noun": {
		"The {word} is very important.",
		"I saw a {word} yesterday.",
		"Everyone needs {word} in their life.",
	},
	"verb": {
		"I {word} every day.",
		"She likes to {word}.",
		"They {word} together.",
	},
}

var usagePatternTemplates = map[string][]string{
	"adjective": {
		"(something) is {word}",
		"feel {word}",
		"a {word} (thing)",
	},
	"noun": {
		"the {word} of (something)",
		"a {word}",
		"(someone)'s {word}",
	},
	"verb": {
		"(someone) {word}s",
		"to {word} (something)",
		"{word}ing",
	},
}

var defaultUsagePatterns = []string{
	"use {word}",
	"talk about {word}",
	"{word} is important",
}

func normalizePOS(pos string) string {
	return strings.ToLower(strings.TrimSpace(pos))
}

// PartOfSpeechExplanation describes a part of speech in plain words
func PartOfSpeechExplanation(pos string) string {
	if e, ok := partOfSpeechExplanations[normalizePOS(pos)]; ok {
		return e
	}
	return "A type of word"
}

// ELI5 explains a definition as if to a five year old
func ELI5(definition, pos string) string {
	return eli5Prefixes[normalizePOS(pos)] + Simplify(definition)
}

// Examples returns exactly three example sentences for word
//
// The dictionary example, when present, comes first and templates for the part of speech
// fill the rest.
func Examples(word, apiExample, pos string) []string {
	examples := make([]string, 0, exampleCount)
	if apiExample = strings.TrimSpace(apiExample); apiExample != "" {
		examples = append(examples, apiExample)
	}

	templates, ok := exampleTemplates[normalizePOS(pos)]
	if !ok {
		templates = []string{
			"I learned about {word}.",
			models.CanonicalWord(word) + " is interesting.",
			"People often talk about {word}.",
		}
	}

	for len(examples) < exampleCount {
		examples = append(examples, fill(templates[len(examples)], word))
	}
	return examples
}

// Forms derives related word forms from the part of speech
func Forms(word, pos string) models.WordForms {
	switch normalizePOS(pos) {
	case "adjective":
		adverb := word + "ly"
		if base, ok := strings.CutSuffix(word, "y"); ok {
			adverb = base + "ily"
		}
		return models.WordForms{Adjective: word, Adverb: adverb, Noun: word + "ness"}
	case "noun":
		return models.WordForms{Noun: word}
	case "verb":
		return models.WordForms{Verb: word, Noun: word + "ing"}
	default:
		return models.WordForms{}
	}
}

// UsagePatterns lists common phrases the word appears in
func UsagePatterns(word, pos string) []string {
	templates, ok := usagePatternTemplates[normalizePOS(pos)]
	if !ok {
		templates = defaultUsagePatterns
	}
	patterns := make([]string, len(templates))
	for i, t := range templates {
		patterns[i] = fill(t, word)
	}
	return patterns
}

// Synonyms keeps at most four non-empty synonyms, or a placeholder when there are none
func Synonyms(words []string) []string {
	return limit(words, maxSynonyms, NoSynonyms)
}

// Opposites keeps at most two non-empty antonyms, or a placeholder when there are none
func Opposites(words []string) []string {
	return limit(words, maxOpposites, NoOpposites)
}

func limit(words []string, n int, placeholder string) []string {
	kept := make([]string, 0, n)
	for _, w := range words {
		if w == "" {
			continue
		}
		kept = append(kept, w)
		if len(kept) == n {
			break
		}
	}
	if len(kept) == 0 {
		return []string{placeholder}
	}
	return kept
}

func fill(template, word string) string {
	return strings.ReplaceAll(template, wordPlaceholder, word)
}
