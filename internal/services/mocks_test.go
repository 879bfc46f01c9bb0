package services

import (
	"context"
	"sync"
	"time"

	"github.com/lexilearn/backend/internal/models"
)

// recordedAnswer is one call to mockWordRepository.RecordAnswer
type recordedAnswer struct {
	word       string
	wasCorrect bool
}

// mockWordRepository is a mock implementation of WordRepository
type mockWordRepository struct {
	mu sync.Mutex

	words     []models.WordEntry
	listErr   error
	insertErr error
	updateErr error
	recordErr error
	deleteErr error

	inserted []models.WordEntry
	answers  []recordedAnswer
}

func (m *mockWordRepository) List(ctx context.Context, userID string) ([]models.WordEntry, error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	return m.words, nil
}

func (m *mockWordRepository) Insert(ctx context.Context, userID string, entry models.WordEntry) error {
	if m.insertErr != nil {
		return m.insertErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inserted = append(m.inserted, entry)
	return nil
}

func (m *mockWordRepository) UpdateDifficulty(ctx context.Context, userID, word string, difficulty models.Difficulty) (*models.WordEntry, error) {
	if m.updateErr != nil {
		return nil, m.updateErr
	}
	return &models.WordEntry{Word: word, Difficulty: difficulty}, nil
}

func (m *mockWordRepository) RecordAnswer(ctx context.Context, userID, word string, wasCorrect bool, now time.Time) (*models.WordEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.answers = append(m.answers, recordedAnswer{word: word, wasCorrect: wasCorrect})
	if m.recordErr != nil {
		return nil, m.recordErr
	}
	return &models.WordEntry{Word: word}, nil
}

func (m *mockWordRepository) Delete(ctx context.Context, userID, word string) error {
	return m.deleteErr
}

// mockDictionary is a mock implementation of DictionaryClient
type mockDictionary struct {
	entry *models.DictionaryEntry
	err   error
}

func (m *mockDictionary) Lookup(ctx context.Context, word string) (*models.DictionaryEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entry, nil
}
