package unitofwork

import (
	"context"

	"swadesh-ai-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	MemoryRepository() contract.MemoryRepository
}
