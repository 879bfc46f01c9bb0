package services

import (
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lexilearn/backend/internal/models"
	"go.uber.org/zap"
)

// MaxSessionsPerUser is the number of live review sessions a user may keep
const MaxSessionsPerUser = 5

// Session is one review session in progress
//
// Questions are answered strictly in order. A Session is safe for concurrent use.
type Session struct {
	ID        string
	UserID    string
	Questions []models.Question
	CreatedAt time.Time

	mu       sync.Mutex
	answered int
	correct  int
}

// View returns the session as presented to the user
func (s *Session) View() *models.SessionView {
	view := &models.SessionView{
		ID:        s.ID,
		Questions: make([]models.QuestionView, len(s.Questions)),
	}
	for i, q := range s.Questions {
		view.Questions[i] = models.QuestionView{
			Index:   i,
			Word:    q.Word.Word,
			Options: q.Options,
		}
	}
	return view
}

// SessionRegistry keeps review sessions in memory
//
// Sessions have no time limit. When a user starts more than the allowed number of
// sessions the oldest one is dropped.
type SessionRegistry struct {
	mu         sync.Mutex
	sessions   map[string]*Session
	byUser     map[string][]string
	maxPerUser int
	logger     *zap.Logger
}

// NewSessionRegistry creates a new session registry
//
// maxPerUser values below 1 fall back to MaxSessionsPerUser.
func NewSessionRegistry(maxPerUser int, logger *zap.Logger) *SessionRegistry {
	if maxPerUser < 1 {
		maxPerUser = MaxSessionsPerUser
	}
	return &SessionRegistry{
		sessions:   make(map[string]*Session),
		byUser:     make(map[string][]string),
		maxPerUser: maxPerUser,
		logger:     logger,
	}
}

// Create registers a new session for userID
func (r *SessionRegistry) Create(userID string, questions []models.Question, now time.Time) *Session {
	session := &Session{
		ID:        uuid.New().String(),
		UserID:    userID,
		Questions: questions,
		CreatedAt: now,
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.ID] = session
	ids := append(r.byUser[userID], session.ID)
	for len(ids) > r.maxPerUser {
		evicted := ids[0]
		ids = ids[1:]
		delete(r.sessions, evicted)
		r.logger.Debug("review session evicted", zap.String("user_id", userID), zap.String("session_id", evicted))
	}
	r.byUser[userID] = ids

	return session
}

// Get returns the session with the given id if it belongs to userID
func (r *SessionRegistry) Get(userID, sessionID string) (*Session, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok || session.UserID != userID {
		return nil, false
	}
	return session, true
}

// Remove discards a session of userID and reports whether it existed
func (r *SessionRegistry) Remove(userID, sessionID string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[sessionID]
	if !ok || session.UserID != userID {
		return false
	}

	delete(r.sessions, sessionID)
	ids := slices.DeleteFunc(r.byUser[userID], func(id string) bool { return id == sessionID })
	if len(ids) == 0 {
		delete(r.byUser, userID)
	} else {
		r.byUser[userID] = ids
	}
	return true
}

// Count returns the number of live sessions
func (r *SessionRegistry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}
