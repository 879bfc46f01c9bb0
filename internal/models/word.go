package models

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// Difficulty is a manual flag set by the user, independent of answer history
type Difficulty string

const (
	DifficultyNormal    Difficulty = "normal"
	DifficultyDifficult Difficulty = "difficult"
)

// ParseDifficulty converts a raw value into a Difficulty
//
// An empty value defaults to DifficultyNormal. Unknown values return ErrInvalidDifficulty.
func ParseDifficulty(value string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(value))) {
	case DifficultyNormal, "":
		return DifficultyNormal, nil
	case DifficultyDifficult:
		return DifficultyDifficult, nil
	default:
		return "", ErrInvalidDifficulty
	}
}

// WordEntry is one saved word of a user together with its review history
type WordEntry struct {
	Word            string     `json:"word"`
	Meaning         string     `json:"meaning"`
	ELI5            string     `json:"eli5"`
	ExampleSentence string     `json:"exampleSentence"`
	Difficulty      Difficulty `json:"difficulty"`
	CorrectCount    int        `json:"correctCount"`
	WrongCount      int        `json:"wrongCount"`
	LastReviewed    *time.Time `json:"lastReviewed,omitempty"` // Calendar day of the latest answer
	DateAdded       time.Time  `json:"dateAdded"`              // Calendar day of creation
}

// Attempts returns the number of quiz answers recorded against the word
func (w WordEntry) Attempts() int {
	return w.CorrectCount + w.WrongCount
}

// NewWordRequest is the payload for saving a word
type NewWordRequest struct {
	Word            string `json:"word"`
	Meaning         string `json:"meaning"`
	ELI5            string `json:"eli5"`
	ExampleSentence string `json:"exampleSentence"`
	Difficulty      string `json:"difficulty,omitempty"`
}

// SaveStatus reports the outcome of a save attempt
type SaveStatus string

const (
	SaveStatusSaved         SaveStatus = "saved"
	SaveStatusAlreadyExists SaveStatus = "already_exists"
	SaveStatusNotSaved      SaveStatus = "not_saved"
)

// SaveResult is returned by word save operations
type SaveResult struct {
	Status SaveStatus `json:"status"`
	Word   *WordEntry `json:"word,omitempty"`
}

// CanonicalWord trims the word and upper-cases its first letter
func CanonicalWord(word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}

// WordKey is the case-insensitive identity of a word within a user's vocabulary
func WordKey(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

// CalendarDay truncates t to midnight UTC of its UTC calendar day
func CalendarDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
