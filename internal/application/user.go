package app

import (
	"context"
	"errors"

	"ring-inspector/internal/domain/entity"
	"ring-inspector/internal/domain/port"
)

// ErrNotAwaitingPhoto фото пришло вне команды /check или во время другой проверки.
var ErrNotAwaitingPhoto = errors.New("user is not awaiting a photo")

type UserService struct {
	repo port.UserRepository
}

func NewUserService(repo port.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Get(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.repo.Get(ctx, userID, chatID)
}

func (s *UserService) SetState(ctx context.Context, userID, chatID int64, state entity.UserState) (*entity.User, error) {
	return s.update(ctx, userID, chatID, func(u *entity.User) { u.SetState(state) })
}

// BeginCheck переводит пользователя в ожидание фото кольца.
func (s *UserService) BeginCheck(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateAwaitingPhoto)
}

// StartProcessing переводит пользователя из ожидания фото в обработку.
// В любом другом состоянии возвращает ErrNotAwaitingPhoto и ничего не меняет.
func (s *UserService) StartProcessing(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}
	if user.State != entity.StateAwaitingPhoto {
		return user, ErrNotAwaitingPhoto
	}

	user.SetState(entity.StateProcessing)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Cancel(ctx context.Context, userID, chatID int64) (*entity.User, error) {
	return s.SetState(ctx, userID, chatID, entity.StateMainMenu)
}

// FinishInspection запоминает проверку и возвращает пользователя в главное меню.
func (s *UserService) FinishInspection(ctx context.Context, userID, chatID int64, recordID string) (*entity.User, error) {
	return s.update(ctx, userID, chatID, func(u *entity.User) {
		if recordID != "" {
			u.RecordInspection(recordID)
		}
		u.SetState(entity.StateMainMenu)
	})
}

func (s *UserService) update(ctx context.Context, userID, chatID int64, apply func(*entity.User)) (*entity.User, error) {
	user, err := s.repo.Get(ctx, userID, chatID)
	if err != nil {
		return nil, err
	}

	apply(user)
	if err := s.repo.Save(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
