package container

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"ring-inspector/internal/domain/entity"
	"ring-inspector/internal/infrastructure/describer"
	"ring-inspector/internal/infrastructure/storage"
	"ring-inspector/internal/infrastructure/vision"
)

func TestNew_WiresServices(t *testing.T) {
	c := New(
		storage.NewMemoryUserRepository(),
		storage.NewMemoryInspectionRepository(5),
		vision.NewDetector(vision.Options{JumpThreshold: 2.5}),
		describer.NewTextDescriber(),
		nil,
	)
	require.NotNil(t, c.UserService)
	require.NotNil(t, c.InspectionService)

	user, err := c.UserService.BeginCheck(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Equal(t, entity.StateAwaitingPhoto, user.State)

	_, err = c.InspectionService.ProcessPhoto(context.Background(), 1, 1, "p", []byte("not an image"))
	require.Error(t, err)
}
