package models

import "errors"

// Sentinel errors shared by repositories, services and handlers.
var (
	ErrWordExists         = errors.New("word already exists")
	ErrWordNotFound       = errors.New("word not found")
	ErrInvalidDifficulty  = errors.New("invalid difficulty, must be 'normal' or 'difficult'")
	ErrInvalidWord        = errors.New("word and meaning are required")
	ErrDefinitionNotFound = errors.New("definition not found")
	ErrNotEnoughData      = errors.New("not enough words to start a review session")
	ErrSessionNotFound    = errors.New("review session not found")
	ErrOutOfOrder         = errors.New("answer does not match the current question")
)
