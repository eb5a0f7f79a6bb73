// Package repotest provides an in-memory RepositoryFactory for service and
// controller tests. It understands the specifications the services use and
// panics on any other, so a new query shape cannot silently match everything.
package repotest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/repository/contract"
	"swadesh-ai-be/internal/repository/specification"
	"swadesh-ai-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

type Store struct {
	mu       sync.Mutex
	users    map[string]*entity.User
	memories []*entity.Memory // insertion order stands in for storage order

	// Err, when set, is returned from every repository call.
	Err error

	Reads     int
	Writes    int
	Commits   int
	Rollbacks int
}

var _ unitofwork.RepositoryFactory = (*Store)(nil)

func NewStore() *Store {
	return &Store{users: make(map[string]*entity.User)}
}

func (s *Store) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: s}
}

// SeedUser stores u as-is and returns it.
func (s *Store) SeedUser(u *entity.User) *entity.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *u
	s.users[u.Id] = &cp
	return u
}

// SeedMemory appends a memory owned by userId and returns the stored copy.
func (s *Store) SeedMemory(userId, content string) *entity.Memory {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	m := &entity.Memory{
		Id:        uuid.New(),
		UserId:    userId,
		Content:   content,
		Category:  entity.MemoryCategoryGeneral,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.memories = append(s.memories, m)
	cp := *m
	return &cp
}

func (s *Store) Memory(id uuid.UUID) (*entity.Memory, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.memories {
		if m.Id == id {
			cp := *m
			return &cp, true
		}
	}
	return nil, false
}

func (s *Store) User(id string) (*entity.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	cp := *u
	return &cp, true
}

func (s *Store) DeleteUser(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	kept := s.memories[:0]
	for _, m := range s.memories {
		if m.UserId != id {
			kept = append(kept, m)
		}
	}
	s.memories = kept
}

// ReadCount is the number of repository reads so far.
func (s *Store) ReadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Reads
}

type unitOfWork struct {
	store *Store
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	return u.store.Err
}

func (u *unitOfWork) Commit() error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.Commits++
	return nil
}

func (u *unitOfWork) Rollback() error {
	u.store.mu.Lock()
	defer u.store.mu.Unlock()
	u.store.Rollbacks++
	return nil
}

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return &userRepository{store: u.store}
}

func (u *unitOfWork) MemoryRepository() contract.MemoryRepository {
	return &memoryRepository{store: u.store}
}

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByUserID:
			if u.Id != s.ID {
				return false
			}
		default:
			panic(fmt.Sprintf("repotest: unsupported user specification %T", spec))
		}
	}
	return true
}

func matchMemory(m *entity.Memory, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if m.Id != s.ID {
				return false
			}
		case specification.UserOwnedBy:
			if m.UserId != s.UserID {
				return false
			}
		case specification.ByCategory:
			if m.Category != s.Category {
				return false
			}
		default:
			panic(fmt.Sprintf("repotest: unsupported memory specification %T", spec))
		}
	}
	return true
}
