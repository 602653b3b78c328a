// Package memory provides in-memory store implementations, suitable for
// tests and single-run sessions without persistence.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"babysteps/internal/domain"
)

// Ensure ChildStore implements the interface.
var _ domain.ChildStore = (*ChildStore)(nil)

// ChildStore is an in-memory implementation of domain.ChildStore.
type ChildStore struct {
	mu       sync.RWMutex
	children map[string]domain.Child
}

// NewChildStore creates an empty in-memory child store.
func NewChildStore() *ChildStore {
	return &ChildStore{children: make(map[string]domain.Child)}
}

// Create stores a new child, assigning an ID and creation time when absent.
func (s *ChildStore) Create(_ context.Context, child *domain.Child) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if child.ID == "" {
		child.ID = uuid.NewString()
	}
	if child.CreatedAt.IsZero() {
		child.CreatedAt = time.Now()
	}
	s.children[child.ID] = *child
	return nil
}

// Get retrieves a child by ID.
func (s *ChildStore) Get(_ context.Context, id string) (*domain.Child, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	child, ok := s.children[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &child, nil
}

// List returns all children, newest first.
func (s *ChildStore) List(_ context.Context) ([]domain.Child, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Child, 0, len(s.children))
	for _, c := range s.children {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Update overwrites an existing child.
func (s *ChildStore) Update(_ context.Context, child *domain.Child) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.children[child.ID]; !ok {
		return domain.ErrNotFound
	}
	s.children[child.ID] = *child
	return nil
}

// Delete removes a child by ID.
func (s *ChildStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.children[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.children, id)
	return nil
}
