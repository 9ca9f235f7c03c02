// Package memory provides an in-process PlanStore, useful for tests and for
// single-run CLI invocations that still want cache semantics.
package memory

import (
	"context"
	"sync"

	"github.com/aretw0/strategos/pkg/domain"
)

// Store implements ports.PlanStore with a mutex-guarded map. Plans are
// copied on save and load so callers can never alias the cached value.
type Store struct {
	mu    sync.RWMutex
	plans map[string]*domain.Plan
}

// New creates an empty in-memory store.
func New() *Store {
	return &Store{plans: make(map[string]*domain.Plan)}
}

// Save stores a copy of the plan under the fingerprint.
func (s *Store) Save(_ context.Context, fingerprint string, plan *domain.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[fingerprint] = clone(plan)
	return nil
}

// Load returns a copy of the cached plan, or domain.ErrPlanNotFound.
func (s *Store) Load(_ context.Context, fingerprint string) (*domain.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	plan, ok := s.plans[fingerprint]
	if !ok {
		return nil, domain.ErrPlanNotFound
	}
	return clone(plan), nil
}

// Delete removes the cached plan, if any.
func (s *Store) Delete(_ context.Context, fingerprint string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.plans, fingerprint)
	return nil
}

// List returns every cached fingerprint.
func (s *Store) List(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.plans))
	for k := range s.plans {
		keys = append(keys, k)
	}
	return keys, nil
}

func clone(p *domain.Plan) *domain.Plan {
	steps := make([]domain.Step, len(p.Steps))
	for i, s := range p.Steps {
		steps[i] = domain.Step{Action: s.Action, Args: append([]string(nil), s.Args...)}
	}
	return &domain.Plan{Steps: steps}
}
