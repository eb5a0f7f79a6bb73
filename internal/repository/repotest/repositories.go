package repotest

import (
	"context"
	"time"

	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/repository/specification"

	"github.com/google/uuid"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) Upsert(ctx context.Context, user *entity.User) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Writes++

	now := time.Now()
	if existing, ok := s.users[user.Id]; ok {
		existing.Email = user.Email
		existing.FirstName = user.FirstName
		existing.LastName = user.LastName
		existing.ProfileImageURL = user.ProfileImageURL
		existing.UpdatedAt = now
		*user = *existing
		return nil
	}

	cp := *user
	cp.CreatedAt = now
	cp.UpdatedAt = now
	s.users[user.Id] = &cp
	*user = cp
	return nil
}

func (r *userRepository) MarkSetupCompleted(ctx context.Context, id string) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Writes++
	if u, ok := s.users[id]; ok && !u.SetupCompleted {
		u.SetupCompleted = true
		u.UpdatedAt = time.Now()
	}
	return nil
}

func (r *userRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.Reads++
	for _, u := range s.users {
		if matchUser(u, specs) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *userRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	s.Reads++
	var n int64
	for _, u := range s.users {
		if matchUser(u, specs) {
			n++
		}
	}
	return n, nil
}

type memoryRepository struct {
	store *Store
}

func (r *memoryRepository) Create(ctx context.Context, memory *entity.Memory) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Writes++
	if memory.Id == uuid.Nil {
		memory.Id = uuid.New()
	}
	cp := *memory
	s.memories = append(s.memories, &cp)
	return nil
}

func (r *memoryRepository) Update(ctx context.Context, memory *entity.Memory) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Writes++
	for i, m := range s.memories {
		if m.Id == memory.Id {
			cp := *memory
			s.memories[i] = &cp
			return nil
		}
	}
	cp := *memory
	s.memories = append(s.memories, &cp)
	return nil
}

func (r *memoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	s.Writes++
	for i, m := range s.memories {
		if m.Id == id {
			s.memories = append(s.memories[:i], s.memories[i+1:]...)
			return nil
		}
	}
	return nil
}

func (r *memoryRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Memory, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.Reads++
	for _, m := range s.memories {
		if matchMemory(m, specs) {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memoryRepository) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Memory, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	s.Reads++
	result := make([]*entity.Memory, 0)
	for _, m := range s.memories {
		if matchMemory(m, specs) {
			cp := *m
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *memoryRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return 0, s.Err
	}
	s.Reads++
	var n int64
	for _, m := range s.memories {
		if matchMemory(m, specs) {
			n++
		}
	}
	return n, nil
}
