package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ring-inspector/internal/domain/entity"
)

func TestMemoryUserRepository_GetCreatesAndSaves(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	user, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, user.State)

	user.SetState(entity.StateAwaitingPhoto)
	// без Save изменения не видны
	again, err := repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateMainMenu, again.State)

	require.NoError(t, repo.Save(ctx, user))
	again, err = repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingPhoto, again.State)

	require.NoError(t, repo.UpdateState(ctx, 1, entity.StateProcessing))
	again, err = repo.Get(ctx, 1, 10)
	require.NoError(t, err)
	require.Equal(t, entity.StateProcessing, again.State)
}
