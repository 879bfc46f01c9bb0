package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/lexilearn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestWordsHandler(svc *mockVocabularyService) http.Handler {
	return newTestRouter(NewWordsHandler(svc, zap.NewNop()))
}

func TestNewWordsHandler(t *testing.T) {
	svc := &mockVocabularyService{}
	logger := zap.NewNop()

	handler := NewWordsHandler(svc, logger)

	assert.NotNil(t, handler)
	assert.Equal(t, svc, handler.service)
	assert.Equal(t, logger, handler.logger)
}

func TestWordsHandler_List(t *testing.T) {
	added := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name           string
		words          []models.WordEntry
		anonymous      bool
		expectedUserID string
		expectedLen    int
	}{
		{
			name:           "user words",
			words:          []models.WordEntry{{Word: "Calm", Meaning: "not excited", Difficulty: models.DifficultyNormal, DateAdded: added}},
			expectedUserID: testUserID,
			expectedLen:    1,
		},
		{
			name:           "anonymous user",
			words:          []models.WordEntry{},
			anonymous:      true,
			expectedUserID: "",
			expectedLen:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockVocabularyService{words: tt.words}

			w := serve(newTestWordsHandler(svc), http.MethodGet, "/api/v1/words", "", tt.anonymous)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.expectedUserID, svc.userID)
			var got []models.WordEntry
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Len(t, got, tt.expectedLen)
		})
	}
}

func TestWordsHandler_Save(t *testing.T) {
	saved := &models.WordEntry{Word: "Calm", Meaning: "not excited", Difficulty: models.DifficultyNormal}

	tests := []struct {
		name           string
		body           string
		result         models.SaveResult
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "saved",
			body:           `{"word":"calm","meaning":"not excited"}`,
			result:         models.SaveResult{Status: models.SaveStatusSaved, Word: saved},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "already exists",
			body:           `{"word":"calm","meaning":"not excited"}`,
			result:         models.SaveResult{Status: models.SaveStatusAlreadyExists},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"already_exists"}`,
		},
		{
			name:           "not saved",
			body:           `{"word":"calm","meaning":"not excited"}`,
			result:         models.SaveResult{Status: models.SaveStatusNotSaved},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"not_saved"}`,
		},
		{
			name:           "validation error",
			body:           `{"word":"","meaning":""}`,
			err:            models.ErrInvalidWord,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"word and meaning are required"}`,
		},
		{
			name:           "malformed body",
			body:           `{"word":`,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid request body"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockVocabularyService{saveResult: tt.result, saveErr: tt.err}

			w := serve(newTestWordsHandler(svc), http.MethodPost, "/api/v1/words", tt.body, false)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestWordsHandler_Save_PassesRequest(t *testing.T) {
	svc := &mockVocabularyService{saveResult: models.SaveResult{Status: models.SaveStatusSaved}}

	serve(newTestWordsHandler(svc), http.MethodPost, "/api/v1/words",
		`{"word":"glow","meaning":"to shine","eli5":"like a lamp","exampleSentence":"The lamp glows.","difficulty":"difficult"}`, false)

	assert.Equal(t, testUserID, svc.userID)
	assert.Equal(t, models.NewWordRequest{
		Word:            "glow",
		Meaning:         "to shine",
		ELI5:            "like a lamp",
		ExampleSentence: "The lamp glows.",
		Difficulty:      "difficult",
	}, svc.request)
}

func TestWordsHandler_Lookup(t *testing.T) {
	def := &models.WordDefinition{Word: "Calm", SimpleMeaning: "not excited"}

	tests := []struct {
		name           string
		body           string
		definition     *models.WordDefinition
		save           models.SaveResult
		err            error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "found",
			body:           `{"word":"calm"}`,
			definition:     def,
			save:           models.SaveResult{Status: models.SaveStatusSaved},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "not found",
			body:           `{"word":"qwzx"}`,
			err:            models.ErrDefinitionNotFound,
			expectedStatus: http.StatusNotFound,
			expectedError:  "word not found, try another word",
		},
		{
			name:           "blank word",
			body:           `{"word":" "}`,
			err:            models.ErrInvalidWord,
			expectedStatus: http.StatusBadRequest,
			expectedError:  "word is required",
		},
		{
			name:           "unexpected error",
			body:           `{"word":"calm"}`,
			err:            errors.New("boom"),
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "failed to look up word",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockVocabularyService{definition: tt.definition, lookupSave: tt.save, lookupErr: tt.err}

			w := serve(newTestWordsHandler(svc), http.MethodPost, "/api/v1/words/lookup", tt.body, false)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.JSONEq(t, `{"error":"`+tt.expectedError+`"}`, w.Body.String())
				return
			}
			var got models.LookupResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, def, got.Definition)
			assert.Equal(t, models.SaveStatusSaved, got.Save.Status)
		})
	}
}

func TestWordsHandler_SetDifficulty(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		saved          bool
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{name: "saved", body: `{"difficulty":"difficult"}`, saved: true, expectedStatus: http.StatusOK, expectedBody: `{"saved":true}`},
		{name: "not saved", body: `{"difficulty":"normal"}`, saved: false, expectedStatus: http.StatusOK, expectedBody: `{"saved":false}`},
		{
			name:           "invalid difficulty",
			body:           `{"difficulty":"hard"}`,
			err:            models.ErrInvalidDifficulty,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"invalid difficulty, must be 'normal' or 'difficult'"}`,
		},
		{name: "unknown word", body: `{"difficulty":"normal"}`, err: models.ErrWordNotFound, expectedStatus: http.StatusNotFound, expectedBody: `{"error":"word not found"}`},
		{name: "unexpected error", body: `{"difficulty":"normal"}`, err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedBody: `{"error":"failed to update word"}`},
		{name: "malformed body", body: `difficult`, expectedStatus: http.StatusBadRequest, expectedBody: `{"error":"invalid request body"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockVocabularyService{mutationSaved: tt.saved, mutationErr: tt.err}

			w := serve(newTestWordsHandler(svc), http.MethodPatch, "/api/v1/words/Calm/difficulty", tt.body, false)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestWordsHandler_SetDifficulty_PassesParams(t *testing.T) {
	svc := &mockVocabularyService{mutationSaved: true}

	serve(newTestWordsHandler(svc), http.MethodPatch, "/api/v1/words/Calm/difficulty", `{"difficulty":"difficult"}`, false)

	assert.Equal(t, testUserID, svc.userID)
	assert.Equal(t, "Calm", svc.word)
	assert.Equal(t, "difficult", svc.difficulty)
}

func TestWordsHandler_Delete(t *testing.T) {
	tests := []struct {
		name           string
		saved          bool
		err            error
		anonymous      bool
		expectedStatus int
		expectedBody   string
	}{
		{name: "deleted", saved: true, expectedStatus: http.StatusOK, expectedBody: `{"saved":true}`},
		{name: "anonymous", saved: false, anonymous: true, expectedStatus: http.StatusOK, expectedBody: `{"saved":false}`},
		{name: "unknown word", err: models.ErrWordNotFound, expectedStatus: http.StatusNotFound, expectedBody: `{"error":"word not found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockVocabularyService{mutationSaved: tt.saved, mutationErr: tt.err}

			w := serve(newTestWordsHandler(svc), http.MethodDelete, "/api/v1/words/Calm", "", tt.anonymous)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
			assert.Equal(t, "Calm", svc.word)
		})
	}
}
