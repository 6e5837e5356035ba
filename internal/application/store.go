package application

import (
	"sync"

	"github.com/bnema/thinkday/internal/domain"
	"go.uber.org/zap"
)

// Listener observes every state produced by Dispatch.
type Listener func(state domain.AppState)

// Store owns the application state. Reductions are serialized. Listeners run
// synchronously after each reduction, in subscription order, outside the lock,
// so they may read State or Dispatch again.
type Store struct {
	mu        sync.Mutex
	state     domain.AppState
	listeners map[int]Listener
	order     []int
	nextID    int
	logger    *zap.Logger
}

func NewStore(initial domain.AppState, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		state:     initial,
		listeners: map[int]Listener{},
		logger:    logger,
	}
}

func (s *Store) State() domain.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) Dispatch(action Action) domain.AppState {
	s.mu.Lock()
	s.logger.Debug("dispatch action", zap.String("kind", string(action.Kind())))
	s.state = Reduce(s.state, action)
	next := s.state
	listeners := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	for _, listener := range listeners {
		listener(next)
	}

	return next
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.order = append(s.order, id)

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		if _, ok := s.listeners[id]; !ok {
			return
		}
		delete(s.listeners, id)
		for i, existing := range s.order {
			if existing == id {
				s.order = append(s.order[:i:i], s.order[i+1:]...)
				break
			}
		}
	}
}
