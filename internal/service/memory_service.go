package service

import (
	"context"
	"time"

	"swadesh-ai-be/internal/apperror"
	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/internal/repository/specification"
	"swadesh-ai-be/internal/repository/unitofwork"
	"swadesh-ai-be/pkg/events"

	"github.com/google/uuid"
)

const memoryNotFound = "Memory not found"

type IMemoryService interface {
	List(ctx context.Context, userId string, category string) ([]*dto.MemoryResponse, error)
	Create(ctx context.Context, userId string, req *dto.CreateMemoryRequest) (*dto.MemoryResponse, error)
	Update(ctx context.Context, userId string, id string, req *dto.UpdateMemoryRequest) (*dto.MemoryResponse, error)
	Delete(ctx context.Context, userId string, id string) error
}

type memoryService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewMemoryService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IMemoryService {
	return &memoryService{uowFactory: uowFactory, publisher: publisher, logger: log}
}

func (s *memoryService) List(ctx context.Context, userId string, category string) ([]*dto.MemoryResponse, error) {
	if s.uowFactory == nil {
		return nil, apperror.StorageUnavailable(nil)
	}

	specs := []specification.Specification{specification.UserOwnedBy{UserID: userId}}
	if category != "" {
		cat, ok := entity.ParseMemoryCategory(category)
		if !ok {
			return nil, apperror.Validation("Unknown memory category: " + category)
		}
		specs = append(specs, specification.ByCategory{Category: cat})
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	memories, err := uow.MemoryRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}

	res := make([]*dto.MemoryResponse, 0, len(memories))
	for _, m := range memories {
		res = append(res, toMemoryResponse(m))
	}
	return res, nil
}

func (s *memoryService) Create(ctx context.Context, userId string, req *dto.CreateMemoryRequest) (*dto.MemoryResponse, error) {
	if s.uowFactory == nil {
		return nil, apperror.StorageUnavailable(nil)
	}

	category, ok := entity.ParseMemoryCategory(req.Category)
	if !ok {
		return nil, apperror.Validation("Unknown memory category: " + req.Category)
	}

	now := time.Now()
	memory := &entity.Memory{
		Id:        uuid.New(),
		UserId:    userId,
		Content:   req.Content,
		Category:  category,
		Tags:      req.Tags,
		IsPinned:  req.IsPinned,
		CreatedAt: now,
		UpdatedAt: now,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.MemoryRepository().Create(ctx, memory); err != nil {
		return nil, apperror.StorageUnavailable(err)
	}

	s.publish(ctx, events.MemoryCreated, userId, memory)
	return toMemoryResponse(memory), nil
}

func (s *memoryService) Update(ctx context.Context, userId string, id string, req *dto.UpdateMemoryRequest) (*dto.MemoryResponse, error) {
	if s.uowFactory == nil {
		return nil, apperror.StorageUnavailable(nil)
	}

	memoryId, err := uuid.Parse(id)
	if err != nil {
		return nil, apperror.NotFound(memoryNotFound)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	defer uow.Rollback()

	memory, err := uow.MemoryRepository().FindOne(ctx, specification.ByID{ID: memoryId})
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	// Someone else's row is reported exactly like a missing one.
	if !memory.OwnedBy(userId) {
		return nil, apperror.NotFound(memoryNotFound)
	}

	memory.Content = req.Content
	memory.UpdatedAt = time.Now()
	if err := uow.MemoryRepository().Update(ctx, memory); err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	if err := uow.Commit(); err != nil {
		return nil, apperror.StorageUnavailable(err)
	}

	s.publish(ctx, events.MemoryUpdated, userId, memory)
	return toMemoryResponse(memory), nil
}

func (s *memoryService) Delete(ctx context.Context, userId string, id string) error {
	if s.uowFactory == nil {
		return apperror.StorageUnavailable(nil)
	}

	memoryId, err := uuid.Parse(id)
	if err != nil {
		return apperror.NotFound(memoryNotFound)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return apperror.StorageUnavailable(err)
	}
	defer uow.Rollback()

	memory, err := uow.MemoryRepository().FindOne(ctx, specification.ByID{ID: memoryId})
	if err != nil {
		return apperror.StorageUnavailable(err)
	}
	if !memory.OwnedBy(userId) {
		return apperror.NotFound(memoryNotFound)
	}

	if err := uow.MemoryRepository().Delete(ctx, memory.Id); err != nil {
		return apperror.StorageUnavailable(err)
	}
	if err := uow.Commit(); err != nil {
		return apperror.StorageUnavailable(err)
	}

	s.publish(ctx, events.MemoryDeleted, userId, memory)
	return nil
}

func (s *memoryService) publish(ctx context.Context, eventType, userId string, m *entity.Memory) {
	event := events.NewUserEvent(eventType, userId, map[string]interface{}{
		"memoryId": m.Id.String(),
		"category": string(m.Category),
	})
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn("MEMORY", "Failed to publish activity event", map[string]interface{}{
			"event": eventType,
			"error": err.Error(),
		})
	}
}

func toMemoryResponse(m *entity.Memory) *dto.MemoryResponse {
	return &dto.MemoryResponse{
		Id:        m.Id,
		UserId:    m.UserId,
		Content:   m.Content,
		Category:  string(m.Category),
		Tags:      m.Tags,
		IsPinned:  m.IsPinned,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
