package session

import (
	"sync"
	"time"

	"property-manager/models"

	"github.com/google/uuid"
)

const sessionTTL = 30 * 24 * time.Hour

// Store is an in-memory session store. Sessions don't survive a restart;
// clients just sign in again with their provider token.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*models.Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*models.Session)}
}

func (s *Store) Create(userID, email, name, picture string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sessionID := uuid.New().String()
	session := &models.Session{
		ID:         sessionID,
		UserID:     userID,
		Email:      email,
		Name:       name,
		Picture:    picture,
		ExpiresAt:  time.Now().Add(sessionTTL),
		CreatedAt:  time.Now(),
		LastUsedAt: time.Now(),
	}

	s.sessions[sessionID] = session
	return session, nil
}

func (s *Store) Get(sessionID string) (*models.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.sessions[sessionID]
	if !exists {
		return nil, nil
	}

	if time.Now().After(session.ExpiresAt) {
		return nil, nil
	}

	return session, nil
}

func (s *Store) Touch(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session, exists := s.sessions[sessionID]; exists {
		session.LastUsedAt = time.Now()
	}
}

func (s *Store) Delete(sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

func (s *Store) CleanupExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, session := range s.sessions {
		if time.Now().After(session.ExpiresAt) {
			delete(s.sessions, id)
		}
	}
}

func (s *Store) StartCleanupRoutine() {
	go func() {
		ticker := time.NewTicker(1 * time.Hour)
		defer ticker.Stop()

		for range ticker.C {
			s.CleanupExpired()
		}
	}()
}
