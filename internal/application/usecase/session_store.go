package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Resguardos-api/internal/domain"
)

// Límites predeterminados de las sesiones en memoria.
const (
	DefaultSessionTTL = 2 * time.Hour
	DefaultSessionMax = 5000
)

// SessionLimits acota las sesiones abiertas. Una sesión sin uso durante TTL expira; al llegar a Max
// se descarta la usada hace más tiempo. Valores <= 0 toman los predeterminados.
type SessionLimits struct {
	TTL time.Duration
	Max int
}

func (l SessionLimits) withDefaults() SessionLimits {
	if l.TTL <= 0 {
		l.TTL = DefaultSessionTTL
	}
	if l.Max <= 0 {
		l.Max = DefaultSessionMax
	}
	return l
}

type sessionEntry[T any] struct {
	value   *T
	touched time.Time
	seq     uint64 // orden de uso, para descartar la menos reciente
}

// sessionStore sesiones en memoria (una por formulario abierto). Cada sesión protege su propio estado.
// onEvict recibe las sesiones que expiran o se descartan por capacidad, fuera del candado.
type sessionStore[T any] struct {
	mu      sync.Mutex
	items   map[string]*sessionEntry[T]
	limits  SessionLimits
	onEvict func(*T)
	seq     uint64
}

func newSessionStore[T any](limits SessionLimits, onEvict func(*T)) *sessionStore[T] {
	return &sessionStore[T]{
		items:   make(map[string]*sessionEntry[T]),
		limits:  limits.withDefaults(),
		onEvict: onEvict,
	}
}

func (s *sessionStore[T]) create(v *T) string {
	id := uuid.New().String()
	s.mu.Lock()
	now := time.Now()
	evicted := s.expireLocked(now)
	for len(s.items) >= s.limits.Max {
		evicted = append(evicted, s.evictOldestLocked())
	}
	s.seq++
	s.items[id] = &sessionEntry[T]{value: v, touched: now, seq: s.seq}
	s.mu.Unlock()
	s.release(evicted)
	return id
}

func (s *sessionStore[T]) get(id string) (*T, error) {
	s.mu.Lock()
	e, ok := s.items[id]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrSessionNotFound
	}
	now := time.Now()
	if now.Sub(e.touched) > s.limits.TTL {
		delete(s.items, id)
		s.mu.Unlock()
		s.release([]*T{e.value})
		return nil, domain.ErrSessionNotFound
	}
	s.seq++
	e.touched, e.seq = now, s.seq
	s.mu.Unlock()
	return e.value, nil
}

func (s *sessionStore[T]) delete(id string) (*T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	if !ok {
		return nil, false
	}
	delete(s.items, id)
	return e.value, true
}

func (s *sessionStore[T]) expireLocked(now time.Time) []*T {
	var out []*T
	for id, e := range s.items {
		if now.Sub(e.touched) > s.limits.TTL {
			delete(s.items, id)
			out = append(out, e.value)
		}
	}
	return out
}

func (s *sessionStore[T]) evictOldestLocked() *T {
	var oldestID string
	var oldest *sessionEntry[T]
	for id, e := range s.items {
		if oldest == nil || e.seq < oldest.seq {
			oldestID, oldest = id, e
		}
	}
	delete(s.items, oldestID)
	return oldest.value
}

func (s *sessionStore[T]) release(evicted []*T) {
	if s.onEvict == nil {
		return
	}
	for _, v := range evicted {
		s.onEvict(v)
	}
}
