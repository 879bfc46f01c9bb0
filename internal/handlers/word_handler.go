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

// VocabularyService is the interface that wraps methods for the user's word list business logic.
type VocabularyService interface {
	// Method ListWords retrieve all words of a user, newest first.
	//
	// "userID" parameter identifies the user; an empty value means an anonymous visitor.
	// Anonymous users and storage failures yield an empty list, never an error.
	ListWords(ctx context.Context, userID string) []models.WordEntry
	// Method SaveWord validate and store a new word for a user.
	//
	// "req" parameter contains the word, its meaning and optional explanation, example and difficulty.
	// Validation failures are returned as models.ErrInvalidWord or models.ErrInvalidDifficulty.
	// The storage outcome is reported through the status of the returned result.
	SaveWord(ctx context.Context, userID string, req models.NewWordRequest) (models.SaveResult, error)
	// Method LookupWord retrieve a learner-friendly definition of a word and save it for the user.
	//
	// If the dictionary has no definition, models.ErrDefinitionNotFound is returned together with "nil" value.
	LookupWord(ctx context.Context, userID, word string) (*models.WordDefinition, models.SaveResult, error)
	// Method SetDifficulty change the manual difficulty flag of a word.
	//
	// "difficulty" parameter must be "normal" or "difficult", otherwise models.ErrInvalidDifficulty is returned.
	// If the word does not exist, models.ErrWordNotFound is returned.
	// If the change could not be stored, false is returned without an error.
	SetDifficulty(ctx context.Context, userID, word, difficulty string) (bool, error)
	// Method DeleteWord remove a word of a user.
	//
	// Please reference SetDifficulty method for return values.
	DeleteWord(ctx context.Context, userID, word string) (bool, error)
}

// WordsHandler handles HTTP requests for the user's vocabulary
type WordsHandler struct {
	BaseHandler
	service VocabularyService
}

// NewWordsHandler creates a new words handler
func NewWordsHandler(svc VocabularyService, logger *zap.Logger) *WordsHandler {
	return &WordsHandler{
		service:     svc,
		BaseHandler: BaseHandler{logger: logger},
	}
}

// RegisterRoutes registers all words handler routes
// Note: This assumes the router is already scoped to /api/v1
func (h *WordsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/words", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Save)
		r.Post("/lookup", h.Lookup)
		r.Patch("/{word}/difficulty", h.SetDifficulty)
		r.Delete("/{word}", h.Delete)
	})
}

// LookupRequest is the payload of the lookup endpoint
type LookupRequest struct {
	Word string `json:"word"`
}

// DifficultyRequest is the payload of the difficulty endpoint
type DifficultyRequest struct {
	Difficulty string `json:"difficulty"`
}

// MutationResponse reports whether a change was stored
type MutationResponse struct {
	Saved bool `json:"saved"`
}

// saveStatusCode maps a save outcome to an HTTP status
func saveStatusCode(status models.SaveStatus) int {
	switch status {
	case models.SaveStatusSaved:
		return http.StatusCreated
	case models.SaveStatusAlreadyExists:
		return http.StatusOK
	default:
		return http.StatusServiceUnavailable
	}
}

// List handles GET /api/v1/words
// @Summary List saved words
// @Description Get all words saved by the user, newest first. Anonymous users get an empty list.
// @Tags words
// @Produce json
// @Param X-User-ID header string false "User ID (UUID)"
// @Success 200 {array} models.WordEntry
// @Router /api/v1/words [get]
func (h *WordsHandler) List(w http.ResponseWriter, r *http.Request) {
	words := h.service.ListWords(r.Context(), middleware.GetUserID(r.Context()))
	h.respondJSON(w, http.StatusOK, words)
}

// Save handles POST /api/v1/words
// @Summary Save a word
// @Description Save a new word with its meaning. A word already in the list is reported as already_exists.
// @Tags words
// @Accept json
// @Produce json
// @Param X-User-ID header string false "User ID (UUID)"
// @Param request body models.NewWordRequest true "Word to save"
// @Success 201 {object} models.SaveResult "Word saved"
// @Success 200 {object} models.SaveResult "Word already exists"
// @Failure 400 {object} map[string]string
// @Failure 503 {object} models.SaveResult "Word not saved"
// @Router /api/v1/words [post]
func (h *WordsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req models.NewWordRequest
	if !h.decodeJSON(w, r, &req, false) {
		return
	}

	result, err := h.service.SaveWord(r.Context(), middleware.GetUserID(r.Context()), req)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondJSON(w, saveStatusCode(result.Status), result)
}

// Lookup handles POST /api/v1/words/lookup
// @Summary Look up a word
// @Description Get a learner-friendly definition of a word from the dictionary and save it to the user's list
// @Tags words
// @Accept json
// @Produce json
// @Param X-User-ID header string false "User ID (UUID)"
// @Param request body LookupRequest true "Word to look up"
// @Success 200 {object} models.LookupResult
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/words/lookup [post]
func (h *WordsHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req LookupRequest
	if !h.decodeJSON(w, r, &req, false) {
		return
	}

	def, save, err := h.service.LookupWord(r.Context(), middleware.GetUserID(r.Context()), req.Word)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidWord):
			h.respondError(w, http.StatusBadRequest, "word is required")
		case errors.Is(err, models.ErrDefinitionNotFound):
			h.respondError(w, http.StatusNotFound, "word not found, try another word")
		default:
			h.logger.Error("failed to look up word", zap.Error(err))
			h.respondError(w, http.StatusInternalServerError, "failed to look up word")
		}
		return
	}

	h.respondJSON(w, http.StatusOK, models.LookupResult{Definition: def, Save: save})
}

// SetDifficulty handles PATCH /api/v1/words/{word}/difficulty
// @Summary Set word difficulty
// @Description Mark a word as difficult or normal. Difficult words come up more often in review sessions.
// @Tags words
// @Accept json
// @Produce json
// @Param X-User-ID header string false "User ID (UUID)"
// @Param word path string true "Word"
// @Param request body DifficultyRequest true "Difficulty: normal or difficult"
// @Success 200 {object} MutationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/v1/words/{word}/difficulty [patch]
func (h *WordsHandler) SetDifficulty(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")

	var req DifficultyRequest
	if !h.decodeJSON(w, r, &req, false) {
		return
	}

	saved, err := h.service.SetDifficulty(r.Context(), middleware.GetUserID(r.Context()), word, req.Difficulty)
	if err != nil {
		h.respondMutationError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, MutationResponse{Saved: saved})
}

// Delete handles DELETE /api/v1/words/{word}
// @Summary Delete a word
// @Description Remove a word from the user's list
// @Tags words
// @Produce json
// @Param X-User-ID header string false "User ID (UUID)"
// @Param word path string true "Word"
// @Success 200 {object} MutationResponse
// @Failure 404 {object} map[string]string
// @Router /api/v1/words/{word} [delete]
func (h *WordsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	word := chi.URLParam(r, "word")

	saved, err := h.service.DeleteWord(r.Context(), middleware.GetUserID(r.Context()), word)
	if err != nil {
		h.respondMutationError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, MutationResponse{Saved: saved})
}

func (h *WordsHandler) respondMutationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidDifficulty):
		h.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, models.ErrWordNotFound):
		h.respondError(w, http.StatusNotFound, err.Error())
	default:
		h.logger.Error("failed to update word", zap.Error(err))
		h.respondError(w, http.StatusInternalServerError, "failed to update word")
	}
}
