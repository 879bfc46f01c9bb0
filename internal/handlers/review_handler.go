package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/lexilearn/backend/internal/middleware"
	"github.com/lexilearn/backend/internal/models"
	"go.uber.org/zap"
)

// notEnoughWordsMessage is shown instead of a session when the vocabulary is too small
const notEnoughWordsMessage = "You need at least 4 words in your vocabulary to take a test. Start by searching and saving some words!"

// ReviewService is the interface that wraps methods for review sessions business logic.
type ReviewService interface {
	// Method StartSession select the words that most need review and build a multiple-choice session.
	//
	// "count" parameter is the requested number of questions; zero or less uses the configured default.
	// If the user has too few words, models.ErrNotEnoughData is returned together with "nil" value.
	StartSession(ctx context.Context, userID string, count int) (*models.SessionView, error)
	// Method SubmitAnswer check and record the answer to the current question of a session.
	//
	// "index" parameter must be the position of the current question, otherwise models.ErrOutOfOrder is returned.
	// If the session does not exist or belongs to another user, models.ErrSessionNotFound is returned.
	SubmitAnswer(ctx context.Context, userID, sessionID string, index int, answer string) (*models.AnswerResult, error)
	// Method AbandonSession discard an unfinished session. Returns false if there was nothing to discard.
	AbandonSession(userID, sessionID string) bool
	// Method Progress summarize the words of a user.
	Progress(ctx context.Context, userID string) models.ProgressSnapshot
}

// ReviewHandler handles HTTP requests for review sessions and progress
type ReviewHandler struct {
	BaseHandler
	service ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(svc ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all review handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *ReviewHandler) RegisterRoutes(r chi.Router) {
	r.Route("/review/sessions", func(r chi.Router) {
		r.Post("/", h.StartSession)
		r.Post("/{id}/answers", h.SubmitAnswer)
		r.Delete("/{id}", h.AbandonSession)
	})
	r.Get("/progress", h.Progress)
}

// StartSessionRequest is the payload of the start session endpoint
type StartSessionRequest struct {
	Count int `json:"count"`
}

// AnswerRequest is the payload of the answer endpoint
type AnswerRequest struct {
	Index  int    `json:"index"`
	Answer string `json:"answer"`
}

// StartSession handles POST /api/v1/review/sessions
// @Summary Start a review session
// @Description Build a multiple-choice session from the words that most need review. The body is optional.
// @Tags review
// @Accept json
// @Produce json
// @Param X-User-ID header string false "User ID (UUID)"
// @Param request body StartSessionRequest false "Number of questions, default from configuration"
// @Success 201 {object} models.SessionView
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string "Not enough words"
// @Router /api/v1/review/sessions [post]
func (h *ReviewHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if !h.decodeJSON(w, r, &req, true) {
		return
	}

	session, err := h.service.StartSession(r.Context(), middleware.GetUserID(r.Context()), req.Count)
	if err != nil {
		if errors.Is(err, models.ErrNotEnoughData) {
			h.respondError(w, http.StatusUnprocessableEntity, notEnoughWordsMessage)
			return
		}
		h.logger.Error("failed to start review session", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to start review session")
		return
	}

	h.respondJSON(w, http.StatusCreated, session)
}

// SubmitAnswer handles POST /api/v1/review/sessions/{id}/answers
// @Summary Answer the current question
// @Description Check the answer to the current question and record it against the word
// @Tags review
// @Accept json
// @Produce json
// @Param X-User-ID header string false "User ID (UUID)"
// @Param id path string true "Session ID"
// @Param request body AnswerRequest true "Question index and chosen option"
// @Success 200 {object} models.AnswerResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/v1/review/sessions/{id}/answers [post]
func (h *ReviewHandler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "id")

	var req AnswerRequest
	if !h.decodeJSON(w, r, &req, false) {
		return
	}

	result, err := h.service.SubmitAnswer(r.Context(), middleware.GetUserID(r.Context()), sessionID, req.Index, req.Answer)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrSessionNotFound):
			h.respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, models.ErrOutOfOrder):
			h.respondError(w, http.StatusConflict, err.Error())
		default:
			h.logger.Error("failed to submit answer", zap.String("session_id", sessionID), zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "failed to submit answer")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// AbandonSession handles DELETE /api/v1/review/sessions/{id}
// @Summary Abandon a review session
// @Description Discard an unfinished session. Answers already given stay recorded.
// @Tags review
// @Param X-User-ID header string false "User ID (UUID)"
// @Param id path string true "Session ID"
// @Success 204
// @Failure 404 {object} map[string]string
// @Router /api/v1/review/sessions/{id} [delete]
func (h *ReviewHandler) AbandonSession(w http.ResponseWriter, r *http.Request) {
	if !h.service.AbandonSession(middleware.GetUserID(r.Context()), chi.URLParam(r, "id")) {
		h.respondError(w, http.StatusNotFound, models.ErrSessionNotFound.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Progress handles GET /api/v1/progress
// @Summary Get progress
// @Description Get totals, mastered, weak and difficult word counts and overall accuracy
// @Tags review
// @Produce json
// @Param X-User-ID header string false "User ID (UUID)"
// @Success 200 {object} models.ProgressSnapshot
// @Router /api/v1/progress [get]
func (h *ReviewHandler) Progress(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, h.service.Progress(r.Context(), middleware.GetUserID(r.Context())))
}
