package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/lexilearn/backend/internal/lexicon"
	"github.com/lexilearn/backend/internal/models"
	"go.uber.org/zap"
)

// WordRepository is the interface that wraps methods for Words table data access
type WordRepository interface {
	// Method List retrieve all words of a user, newest first.
	//
	// "userID" parameter identifies the owner of the words.
	// An empty slice is returned when the user has no words. If some error will occur during data retrieve, the error will be returned together with "nil" value.
	List(ctx context.Context, userID string) ([]models.WordEntry, error)
	// Method Insert store a new word for a user.
	//
	// If the user already has the word (compared case-insensitively), models.ErrWordExists is returned.
	Insert(ctx context.Context, userID string, entry models.WordEntry) error
	// Method UpdateDifficulty set the manual difficulty flag of a word and return the updated word.
	//
	// If the word does not exist, models.ErrWordNotFound is returned.
	UpdateDifficulty(ctx context.Context, userID, word string, difficulty models.Difficulty) (*models.WordEntry, error)
	// Method RecordAnswer apply one quiz answer to a word and return the updated word.
	//
	// The read and the write happen in one transaction so concurrent answers are not lost.
	// Please reference UpdateDifficulty method for error values.
	RecordAnswer(ctx context.Context, userID, word string, wasCorrect bool, now time.Time) (*models.WordEntry, error)
	// Method Delete remove a word of a user.
	//
	// Please reference UpdateDifficulty method for error values.
	Delete(ctx context.Context, userID, word string) error
}

// DictionaryClient looks up word definitions in an external dictionary
type DictionaryClient interface {
	// Method Lookup return the first definition of a word or models.ErrDefinitionNotFound.
	Lookup(ctx context.Context, word string) (*models.DictionaryEntry, error)
}

type vocabularyService struct {
	repo       WordRepository
	dictionary DictionaryClient
	now        func() time.Time
	logger     *zap.Logger
}

// NewVocabularyService creates a new vocabulary service
func NewVocabularyService(repo WordRepository, dictionary DictionaryClient, logger *zap.Logger) *vocabularyService {
	return &vocabularyService{
		repo:       repo,
		dictionary: dictionary,
		now:        time.Now,
		logger:     logger,
	}
}

// listWords loads the words of a user and degrades to an empty slice on any failure
func listWords(ctx context.Context, repo WordRepository, logger *zap.Logger, userID string) []models.WordEntry {
	if userID == "" {
		return []models.WordEntry{}
	}

	words, err := repo.List(ctx, userID)
	if err != nil {
		logger.Error("failed to list words", zap.String("user_id", userID), zap.Error(err))
		return []models.WordEntry{}
	}
	return words
}

// ListWords returns the words of a user, newest first
//
// Anonymous users and store failures yield an empty list.
func (s *vocabularyService) ListWords(ctx context.Context, userID string) []models.WordEntry {
	return listWords(ctx, s.repo, s.logger, userID)
}

// SaveWord validates and stores a new word
//
// Invalid input returns models.ErrInvalidWord or models.ErrInvalidDifficulty.
// Otherwise the outcome is reported in the result status: a duplicate is "already_exists",
// an anonymous user or a store failure is "not_saved".
func (s *vocabularyService) SaveWord(ctx context.Context, userID string, req models.NewWordRequest) (models.SaveResult, error) {
	word := models.CanonicalWord(req.Word)
	meaning := strings.TrimSpace(req.Meaning)
	if word == "" || meaning == "" {
		return models.SaveResult{}, models.ErrInvalidWord
	}

	difficulty, err := models.ParseDifficulty(req.Difficulty)
	if err != nil {
		return models.SaveResult{}, err
	}

	entry := models.WordEntry{
		Word:            word,
		Meaning:         meaning,
		ELI5:            strings.TrimSpace(req.ELI5),
		ExampleSentence: strings.TrimSpace(req.ExampleSentence),
		Difficulty:      difficulty,
		DateAdded:       models.CalendarDay(s.now()),
	}

	if userID == "" {
		return models.SaveResult{Status: models.SaveStatusNotSaved}, nil
	}

	if err := s.repo.Insert(ctx, userID, entry); err != nil {
		if errors.Is(err, models.ErrWordExists) {
			s.logger.Info("word already saved", zap.String("user_id", userID), zap.String("word", word))
			return models.SaveResult{Status: models.SaveStatusAlreadyExists}, nil
		}
		s.logger.Error("failed to save word", zap.String("user_id", userID), zap.String("word", word), zap.Error(err))
		return models.SaveResult{Status: models.SaveStatusNotSaved}, nil
	}

	return models.SaveResult{Status: models.SaveStatusSaved, Word: &entry}, nil
}

// LookupWord fetches a learner-friendly definition and saves the word for the user
//
// Returns models.ErrDefinitionNotFound when the dictionary has nothing usable.
// The save outcome never fails the lookup.
func (s *vocabularyService) LookupWord(ctx context.Context, userID, word string) (*models.WordDefinition, models.SaveResult, error) {
	if strings.TrimSpace(word) == "" {
		return nil, models.SaveResult{}, models.ErrInvalidWord
	}

	entry, err := s.dictionary.Lookup(ctx, word)
	if err != nil {
		if !errors.Is(err, models.ErrDefinitionNotFound) {
			s.logger.Error("failed to look up word", zap.String("word", word), zap.Error(err))
		}
		return nil, models.SaveResult{}, models.ErrDefinitionNotFound
	}

	def := lexicon.BuildDefinition(word, *entry)

	result, err := s.SaveWord(ctx, userID, lexicon.NewWordRequest(def))
	if err != nil {
		s.logger.Warn("looked up word cannot be saved", zap.String("word", def.Word), zap.Error(err))
		result = models.SaveResult{Status: models.SaveStatusNotSaved}
	}

	return def, result, nil
}

// SetDifficulty changes the manual difficulty flag of a word
//
// difficulty must be "normal" or "difficult". Returns false without an error when the
// change could not be stored, and models.ErrWordNotFound for an unknown word.
func (s *vocabularyService) SetDifficulty(ctx context.Context, userID, word, difficulty string) (bool, error) {
	d, err := models.ParseDifficulty(difficulty)
	if err != nil || strings.TrimSpace(difficulty) == "" {
		return false, models.ErrInvalidDifficulty
	}

	if userID == "" {
		return false, nil
	}

	if _, err := s.repo.UpdateDifficulty(ctx, userID, word, d); err != nil {
		if errors.Is(err, models.ErrWordNotFound) {
			return false, err
		}
		s.logger.Error("failed to update difficulty", zap.String("user_id", userID), zap.String("word", word), zap.Error(err))
		return false, nil
	}

	return true, nil
}

// DeleteWord removes a word of a user
//
// Returns false without an error when the deletion could not be stored, and
// models.ErrWordNotFound for an unknown word.
func (s *vocabularyService) DeleteWord(ctx context.Context, userID, word string) (bool, error) {
	if userID == "" {
		return false, nil
	}

	if err := s.repo.Delete(ctx, userID, word); err != nil {
		if errors.Is(err, models.ErrWordNotFound) {
			return false, err
		}
		s.logger.Error("failed to delete word", zap.String("user_id", userID), zap.String("word", word), zap.Error(err))
		return false, nil
	}

	return true, nil
}
