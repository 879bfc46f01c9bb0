package services

import (
	"context"
	"math/rand/v2"
	"time"

	"github.com/lexilearn/backend/internal/models"
	"github.com/lexilearn/backend/internal/review"
	"go.uber.org/zap"
)

const (
	// DefaultSessionSize is the number of questions asked when the caller does not choose
	DefaultSessionSize = 5
	// MaxSessionSize caps the number of questions in one session
	MaxSessionSize = 20
)

type reviewService struct {
	repo        WordRepository
	sessions    *SessionRegistry
	defaultSize int
	rng         review.Rand
	now         func() time.Time
	logger      *zap.Logger
}

// NewReviewService creates a new review service
//
// defaultSize is used when a session is started without an explicit size.
func NewReviewService(repo WordRepository, sessions *SessionRegistry, defaultSize int, logger *zap.Logger) *reviewService {
	if defaultSize <= 0 {
		defaultSize = DefaultSessionSize
	}
	return &reviewService{
		repo:        repo,
		sessions:    sessions,
		defaultSize: min(defaultSize, MaxSessionSize),
		rng:         review.RandFunc(rand.Float64),
		now:         time.Now,
		logger:      logger,
	}
}

// sessionSize resolves the requested number of questions
func (s *reviewService) sessionSize(count int) int {
	if count <= 0 {
		return s.defaultSize
	}
	return min(count, MaxSessionSize)
}

// StartSession selects the words that most need review and builds a quiz around them
//
// Returns models.ErrNotEnoughData when the user has fewer than four distinct meanings or
// fewer than two questions could be built.
func (s *reviewService) StartSession(ctx context.Context, userID string, count int) (*models.SessionView, error) {
	words := listWords(ctx, s.repo, s.logger, userID)
	if !review.HasEnoughVocabulary(words) {
		return nil, models.ErrNotEnoughData
	}

	now := s.now()
	selected := review.SelectForReview(words, s.sessionSize(count), now, s.rng)
	questions, err := review.BuildSession(selected, words, s.rng)
	if err != nil {
		return nil, err
	}

	session := s.sessions.Create(userID, questions, now)
	s.logger.Info("review session started",
		zap.String("user_id", userID),
		zap.String("session_id", session.ID),
		zap.Int("questions", len(questions)),
	)

	return session.View(), nil
}

// SubmitAnswer checks the answer to the current question and records it
//
// index must be the position of the current question, otherwise models.ErrOutOfOrder is
// returned. The answer is stored before the session advances; a failed write is reported
// through Saved and does not stop the session. After the last question the session is
// discarded.
func (s *reviewService) SubmitAnswer(ctx context.Context, userID, sessionID string, index int, answer string) (*models.AnswerResult, error) {
	session, ok := s.sessions.Get(userID, sessionID)
	if !ok {
		return nil, models.ErrSessionNotFound
	}

	session.mu.Lock()
	defer session.mu.Unlock()

	if index != session.answered || index >= len(session.Questions) {
		return nil, models.ErrOutOfOrder
	}

	question := session.Questions[index]
	correct := answer == question.CorrectAnswer

	saved := true
	if _, err := s.repo.RecordAnswer(ctx, userID, question.Word.Word, correct, s.now()); err != nil {
		s.logger.Error("failed to record answer",
			zap.String("user_id", userID),
			zap.String("session_id", sessionID),
			zap.String("word", question.Word.Word),
			zap.Error(err),
		)
		saved = false
	}

	session.answered++
	if correct {
		session.correct++
	}

	result := &models.AnswerResult{
		Correct:       correct,
		CorrectAnswer: question.CorrectAnswer,
		Saved:         saved,
		Answered:      session.answered,
		Total:         len(session.Questions),
		CorrectTotal:  session.correct,
		Score:         review.Percent(session.correct, session.answered),
	}

	if session.answered == len(session.Questions) {
		result.Finished = true
		s.sessions.Remove(userID, sessionID)
		s.logger.Info("review session finished",
			zap.String("user_id", userID),
			zap.String("session_id", sessionID),
			zap.Int("score", result.Score),
		)
	}

	return result, nil
}

// AbandonSession discards a session before it is finished
func (s *reviewService) AbandonSession(userID, sessionID string) bool {
	return s.sessions.Remove(userID, sessionID)
}

// Progress summarizes the words of a user
func (s *reviewService) Progress(ctx context.Context, userID string) models.ProgressSnapshot {
	return review.Summarize(listWords(ctx, s.repo, s.logger, userID))
}
