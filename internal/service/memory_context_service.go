package service

import (
	"context"

	"swadesh-ai-be/internal/apperror"
	"swadesh-ai-be/internal/identity"
	"swadesh-ai-be/internal/repository/specification"
	"swadesh-ai-be/internal/repository/unitofwork"
	"swadesh-ai-be/pkg/persona"
)

type IMemoryContextAssembler interface {
	// Assemble prefixes explicit with the caller's memories. Only an
	// authenticated identity causes a storage read.
	Assemble(ctx context.Context, id identity.Identity, explicit string) (string, error)
}

type memoryContextAssembler struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewMemoryContextAssembler(uowFactory unitofwork.RepositoryFactory) IMemoryContextAssembler {
	return &memoryContextAssembler{uowFactory: uowFactory}
}

func (a *memoryContextAssembler) Assemble(ctx context.Context, id identity.Identity, explicit string) (string, error) {
	userId, ok := id.UserID()
	if !ok {
		return explicit, nil
	}
	if a.uowFactory == nil {
		return explicit, apperror.StorageUnavailable(nil)
	}

	uow := a.uowFactory.NewUnitOfWork(ctx)
	// Storage order, pinned rows included with no priority.
	memories, err := uow.MemoryRepository().FindAll(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return explicit, apperror.StorageUnavailable(err)
	}

	contents := make([]string, 0, len(memories))
	for _, m := range memories {
		contents = append(contents, m.Content)
	}
	return persona.JoinContext(persona.MemoryBlock(contents), explicit), nil
}
