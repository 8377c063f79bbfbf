package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"ring-inspector/internal/domain/entity"
)

func TestMemoryInspectionRepository_SaveAssignsID(t *testing.T) {
	repo := NewMemoryInspectionRepository(5)
	fixed := time.Date(2025, 9, 27, 12, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return fixed }

	rec := &entity.InspectionRecord{UserID: 1, Source: "good.png", Result: entity.NewGoodResult()}
	require.NoError(t, repo.Save(context.Background(), rec))

	_, err := uuid.Parse(rec.ID)
	require.NoError(t, err)
	require.Equal(t, fixed, rec.CreatedAt)

	require.Error(t, repo.Save(context.Background(), nil))
}

func TestMemoryInspectionRepository_ListNewestFirstWithLimit(t *testing.T) {
	repo := NewMemoryInspectionRepository(3)
	ctx := context.Background()

	for _, src := range []string{"a", "b", "c", "d"} {
		require.NoError(t, repo.Save(ctx, &entity.InspectionRecord{UserID: 7, Source: src}))
	}
	require.NoError(t, repo.Save(ctx, &entity.InspectionRecord{UserID: 8, Source: "other"}))

	list, err := repo.ListByUser(ctx, 7, 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "d", list[0].Source)
	require.Equal(t, "b", list[2].Source)

	list, err = repo.ListByUser(ctx, 7, 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "c", list[1].Source)

	list, err = repo.ListByUser(ctx, 99, 5)
	require.NoError(t, err)
	require.Empty(t, list)
}
