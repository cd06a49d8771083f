package quiz

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nutrihz/ConsultBack/internal/models"
)

var ErrSessionNotFound = errors.New("wizard session not found")

const sessionTTL = 2 * time.Hour

type session struct {
	wizard   *Wizard
	lastSeen time.Time
}

// Store holds in-flight wizard sessions in memory. Abandoned sessions age out
// after sessionTTL; completed answers are persisted elsewhere, so losing a
// draft on restart only restarts the quiz.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*session
	now      func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions: make(map[string]*session),
		now:      time.Now,
	}
}

// Create opens a new wizard session and returns its ID.
func (s *Store) Create(initial *models.QuizAnswers) string {
	id := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.evictExpiredLocked()
	s.sessions[id] = &session{wizard: NewWizard(initial), lastSeen: s.now()}
	return id
}

// With runs fn against the session's wizard under the store lock.
func (s *Store) With(id string, fn func(*Wizard) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok || s.expired(sess) {
		delete(s.sessions, id)
		return ErrSessionNotFound
	}
	sess.lastSeen = s.now()
	return fn(sess.wizard)
}

// Drop discards a session, normally after completion.
func (s *Store) Drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
}

func (s *Store) expired(sess *session) bool {
	return s.now().Sub(sess.lastSeen) > sessionTTL
}

func (s *Store) evictExpiredLocked() {
	for id, sess := range s.sessions {
		if s.expired(sess) {
			delete(s.sessions, id)
		}
	}
}
