package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ring-inspector/internal/domain/entity"
	"ring-inspector/internal/infrastructure/storage"
)

func TestUserService_BeginCheckAndCancel(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.BeginCheck(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingPhoto, user.State)

	user, err = svc.Cancel(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
}

func TestUserService_SetState(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	user, err := svc.SetState(ctx, 2, 20, entity.StateProcessing)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, user.State)

	stored, err := svc.Get(ctx, 2, 20)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, stored.State)
}

func TestUserService_FinishInspection(t *testing.T) {
	repo := storage.NewMemoryUserRepository()
	svc := NewUserService(repo)
	ctx := context.Background()

	_, err := svc.SetState(ctx, 3, 30, entity.StateProcessing)
	require.NoError(t, err)

	user, err := svc.FinishInspection(ctx, 3, 30, "rec-1")
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)
	require.Equal(t, "rec-1", user.LastRecordID)
	require.Equal(t, 1, user.InspectedCount)

	user, err = svc.FinishInspection(ctx, 3, 30, "")
	require.NoError(t, err)
	require.Equal(t, 1, user.InspectedCount)
}

func TestUserService_StartProcessing(t *testing.T) {
	svc := NewUserService(storage.NewMemoryUserRepository())
	ctx := context.Background()

	// без /check фото не принимается
	user, err := svc.StartProcessing(ctx, 3, 30)
	require.ErrorIs(t, err, ErrNotAwaitingPhoto)
	require.Equal(t, entity.StateMainMenu, user.State)

	_, err = svc.BeginCheck(ctx, 3, 30)
	require.NoError(t, err)

	user, err = svc.StartProcessing(ctx, 3, 30)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, user.State)

	// второе фото во время проверки отклоняется
	_, err = svc.StartProcessing(ctx, 3, 30)
	require.ErrorIs(t, err, ErrNotAwaitingPhoto)
}
