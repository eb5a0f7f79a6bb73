package service

import (
	"context"

	"swadesh-ai-be/internal/apperror"
	"swadesh-ai-be/internal/dto"
	"swadesh-ai-be/internal/entity"
	"swadesh-ai-be/internal/pkg/logger"
	"swadesh-ai-be/internal/repository/specification"
	"swadesh-ai-be/internal/repository/unitofwork"
	"swadesh-ai-be/pkg/events"
)

type IUserService interface {
	GetUser(ctx context.Context, userId string) (*dto.UserResponse, error)
	GetProfile(ctx context.Context, userId string) (*dto.ProfileResponse, error)
	// CompleteSetup is idempotent; only the first call changes anything.
	CompleteSetup(ctx context.Context, userId string) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
	publisher  events.Publisher
	logger     logger.ILogger
}

func NewUserService(uowFactory unitofwork.RepositoryFactory, publisher events.Publisher, log logger.ILogger) IUserService {
	return &userService{uowFactory: uowFactory, publisher: publisher, logger: log}
}

func (s *userService) findUser(ctx context.Context, uow unitofwork.UnitOfWork, userId string) (*entity.User, error) {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByUserID{ID: userId})
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (s *userService) GetUser(ctx context.Context, userId string) (*dto.UserResponse, error) {
	if s.uowFactory == nil {
		return nil, apperror.StorageUnavailable(nil)
	}

	user, err := s.findUser(ctx, s.uowFactory.NewUnitOfWork(ctx), userId)
	if err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

func (s *userService) GetProfile(ctx context.Context, userId string) (*dto.ProfileResponse, error) {
	if s.uowFactory == nil {
		return nil, apperror.StorageUnavailable(nil)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.findUser(ctx, uow, userId)
	if err != nil {
		return nil, err
	}

	count, err := uow.MemoryRepository().Count(ctx, specification.UserOwnedBy{UserID: userId})
	if err != nil {
		return nil, apperror.StorageUnavailable(err)
	}

	return &dto.ProfileResponse{User: toUserResponse(user), MemoriesCount: count}, nil
}

func (s *userService) CompleteSetup(ctx context.Context, userId string) error {
	if s.uowFactory == nil {
		return apperror.StorageUnavailable(nil)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := s.findUser(ctx, uow, userId)
	if err != nil {
		return err
	}
	if user.SetupCompleted {
		return nil
	}

	if err := uow.UserRepository().MarkSetupCompleted(ctx, userId); err != nil {
		return apperror.StorageUnavailable(err)
	}

	if err := s.publisher.Publish(ctx, events.NewUserEvent(events.UserSetupCompleted, userId, nil)); err != nil {
		s.logger.Warn("USER", "Failed to publish activity event", map[string]interface{}{
			"event": events.UserSetupCompleted,
			"error": err.Error(),
		})
	}
	return nil
}

func toUserResponse(u *entity.User) *dto.UserResponse {
	return &dto.UserResponse{
		Id:              u.Id,
		Email:           u.Email,
		FirstName:       u.FirstName,
		LastName:        u.LastName,
		ProfileImageURL: u.ProfileImageURL,
		SetupCompleted:  u.SetupCompleted,
		CreatedAt:       u.CreatedAt,
		UpdatedAt:       u.UpdatedAt,
	}
}
