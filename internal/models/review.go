package models

// Question is a single multiple-choice question built around one word
type Question struct {
	Word          WordEntry `json:"word"`
	Options       []string  `json:"options"`
	CorrectAnswer string    `json:"correctAnswer"`
}

// ProgressSnapshot summarizes a user's vocabulary
//
// The category counts are not mutually exclusive.
type ProgressSnapshot struct {
	TotalWords     int `json:"totalWords"`
	MasteredWords  int `json:"masteredWords"`
	WeakWords      int `json:"weakWords"`
	DifficultWords int `json:"difficultWords"`
	Accuracy       int `json:"accuracy"` // Percent, 0-100
	TotalCorrect   int `json:"totalCorrect"`
	TotalWrong     int `json:"totalWrong"`
	MasteryPercent int `json:"masteryPercent"` // Percent of words mastered, 0-100
}

// QuestionView is a question as presented to the user, without the answer
type QuestionView struct {
	Index   int      `json:"index"`
	Word    string   `json:"word"`
	Options []string `json:"options"`
}

// SessionView is returned when a review session starts
type SessionView struct {
	ID        string         `json:"id"`
	Questions []QuestionView `json:"questions"`
}

// AnswerResult is returned after each answer in a review session
type AnswerResult struct {
	Correct       bool   `json:"correct"`
	CorrectAnswer string `json:"correctAnswer"`
	Saved         bool   `json:"saved"`
	Answered      int    `json:"answered"`
	Total         int    `json:"total"`
	Finished      bool   `json:"finished"`
	CorrectTotal  int    `json:"correctTotal"`
	Score         int    `json:"score"` // Percent of correct answers so far
}
