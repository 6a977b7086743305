package collecting

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vfg2006/fluxweave-api/internal/domain"
)

// Session agrupa a coleção de um cliente com os parâmetros da última geração
type Session struct {
	ID         string
	Collection *Collection

	mu      sync.RWMutex
	product string
	brand   domain.BrandSpec
}

func (s *Session) Input() (string, domain.BrandSpec) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.product, s.brand
}

func (s *Session) setInput(product string, brand domain.BrandSpec) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.product = product
	s.brand = brand
}

// Store mantém as sessões em memória; nada sobrevive a um restart
type Store struct {
	mu           sync.RWMutex
	sessions     map[string]*Session
	lastActivity map[string]time.Time
	now          func() time.Time
}

func NewStore() *Store {
	return &Store{
		sessions:     make(map[string]*Session),
		lastActivity: make(map[string]time.Time),
		now:          time.Now,
	}
}

func (s *Store) Create(product string, brand domain.BrandSpec) *Session {
	session := &Session{
		ID:         uuid.NewString(),
		Collection: NewCollection(),
		product:    product,
		brand:      brand,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID] = session
	s.lastActivity[session.ID] = s.now()
	return session
}

func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

// Touch renova a última atividade da sessão
func (s *Store) Touch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	s.lastActivity[id] = s.now()
	return nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	delete(s.lastActivity, id)
	return nil
}

// ExpireIdle remove as sessões sem atividade há mais de ttl e retorna quantas saíram
func (s *Store) ExpireIdle(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-ttl)
	expired := 0
	for id, last := range s.lastActivity {
		if last.Before(cutoff) {
			delete(s.sessions, id)
			delete(s.lastActivity, id)
			expired++
		}
	}
	return expired
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
