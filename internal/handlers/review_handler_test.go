package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/lexilearn/backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestReviewHandler(svc *mockReviewService) http.Handler {
	return newTestRouter(NewReviewHandler(svc, zap.NewNop()))
}

func TestNewReviewHandler(t *testing.T) {
	svc := &mockReviewService{}
	logger := zap.NewNop()

	handler := NewReviewHandler(svc, logger)

	assert.NotNil(t, handler)
	assert.Equal(t, svc, handler.service)
	assert.Equal(t, logger, handler.logger)
}

func TestReviewHandler_StartSession(t *testing.T) {
	view := &models.SessionView{
		ID: "session-1",
		Questions: []models.QuestionView{
			{Index: 0, Word: "Calm", Options: []string{"weak", "not excited", "to shine", "a fruit"}},
			{Index: 1, Word: "Glow", Options: []string{"to shine", "weak", "not excited", "a fruit"}},
		},
	}

	tests := []struct {
		name           string
		body           string
		session        *models.SessionView
		err            error
		expectedStatus int
		expectedCount  int
		expectedError  string
	}{
		{name: "empty body uses default size", body: "", session: view, expectedStatus: http.StatusCreated, expectedCount: 0},
		{name: "requested size", body: `{"count":10}`, session: view, expectedStatus: http.StatusCreated, expectedCount: 10},
		{name: "not enough words", body: `{}`, err: models.ErrNotEnoughData, expectedStatus: http.StatusUnprocessableEntity, expectedError: notEnoughWordsMessage},
		{name: "unexpected error", body: `{}`, err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedError: "failed to start review session"},
		{name: "malformed body", body: `{"count":"ten"}`, expectedStatus: http.StatusBadRequest, expectedError: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockReviewService{session: tt.session, startErr: tt.err}

			w := serve(newTestReviewHandler(svc), http.MethodPost, "/api/v1/review/sessions", tt.body, false)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var got map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				assert.Equal(t, tt.expectedError, got["error"])
				return
			}
			assert.Equal(t, testUserID, svc.userID)
			assert.Equal(t, tt.expectedCount, svc.count)
			var got models.SessionView
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, *view, got)
		})
	}
}

func TestReviewHandler_StartSession_HidesAnswers(t *testing.T) {
	svc := &mockReviewService{session: &models.SessionView{
		ID:        "session-1",
		Questions: []models.QuestionView{{Index: 0, Word: "Calm", Options: []string{"a", "b", "c", "d"}}},
	}}

	w := serve(newTestReviewHandler(svc), http.MethodPost, "/api/v1/review/sessions", "", false)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NotContains(t, w.Body.String(), "correctAnswer")
}

func TestReviewHandler_SubmitAnswer(t *testing.T) {
	result := &models.AnswerResult{
		Correct:       true,
		CorrectAnswer: "not excited",
		Saved:         true,
		Answered:      1,
		Total:         2,
		CorrectTotal:  1,
		Score:         100,
	}

	tests := []struct {
		name           string
		body           string
		result         *models.AnswerResult
		err            error
		expectedStatus int
		expectedError  string
	}{
		{name: "answered", body: `{"index":0,"answer":"not excited"}`, result: result, expectedStatus: http.StatusOK},
		{name: "unknown session", body: `{"index":0,"answer":"x"}`, err: models.ErrSessionNotFound, expectedStatus: http.StatusNotFound, expectedError: "review session not found"},
		{name: "out of order", body: `{"index":3,"answer":"x"}`, err: models.ErrOutOfOrder, expectedStatus: http.StatusConflict, expectedError: "answer does not match the current question"},
		{name: "unexpected error", body: `{"index":0,"answer":"x"}`, err: errors.New("boom"), expectedStatus: http.StatusInternalServerError, expectedError: "failed to submit answer"},
		{name: "malformed body", body: `[]`, expectedStatus: http.StatusBadRequest, expectedError: "invalid request body"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockReviewService{result: tt.result, answerErr: tt.err}

			w := serve(newTestReviewHandler(svc), http.MethodPost, "/api/v1/review/sessions/session-1/answers", tt.body, false)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				assert.JSONEq(t, `{"error":"`+tt.expectedError+`"}`, w.Body.String())
				return
			}
			assert.Equal(t, "session-1", svc.sessionID)
			assert.Equal(t, 0, svc.index)
			assert.Equal(t, "not excited", svc.answer)
			var got models.AnswerResult
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, *result, got)
		})
	}
}

func TestReviewHandler_AbandonSession(t *testing.T) {
	tests := []struct {
		name           string
		abandoned      bool
		expectedStatus int
	}{
		{name: "abandoned", abandoned: true, expectedStatus: http.StatusNoContent},
		{name: "unknown session", abandoned: false, expectedStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockReviewService{abandoned: tt.abandoned}

			w := serve(newTestReviewHandler(svc), http.MethodDelete, "/api/v1/review/sessions/session-1", "", false)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, testUserID, svc.userID)
			assert.Equal(t, "session-1", svc.sessionID)
		})
	}
}

func TestReviewHandler_Progress(t *testing.T) {
	snapshot := models.ProgressSnapshot{
		TotalWords:     4,
		MasteredWords:  1,
		WeakWords:      2,
		DifficultWords: 1,
		Accuracy:       60,
		TotalCorrect:   6,
		TotalWrong:     4,
		MasteryPercent: 25,
	}
	svc := &mockReviewService{progress: snapshot}

	w := serve(newTestReviewHandler(svc), http.MethodGet, "/api/v1/progress", "", false)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testUserID, svc.userID)
	var got models.ProgressSnapshot
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, snapshot, got)
}

func TestReviewHandler_Progress_Anonymous(t *testing.T) {
	svc := &mockReviewService{}

	w := serve(newTestReviewHandler(svc), http.MethodGet, "/api/v1/progress", "", true)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, svc.userID)
	assert.JSONEq(t, `{"totalWords":0,"masteredWords":0,"weakWords":0,"difficultWords":0,"accuracy":0,"totalCorrect":0,"totalWrong":0,"masteryPercent":0}`, w.Body.String())
}
