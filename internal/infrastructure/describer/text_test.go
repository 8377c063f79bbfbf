package describer

import (
	"context"
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"ring-inspector/internal/domain/entity"
)

func TestTextDescriber_Describe(t *testing.T) {
	d := NewTextDescriber()
	ctx := context.Background()

	good := entity.NewGoodResult()
	desc, err := d.Describe(ctx, &good)
	require.NoError(t, err)
	require.Equal(t, "✅ Дефекты не обнаружены.", desc.Text)

	def := entity.NewDefectiveResult(entity.DefectCut, entity.BoundaryOuter, 13.456, image.Pt(93, 35), image.Pt(100, 100))
	desc, err = d.Describe(ctx, &def)
	require.NoError(t, err)
	require.Contains(t, desc.Text, "вырез")
	require.Contains(t, desc.Text, "внешняя граница")
	require.Contains(t, desc.Text, "Точка: (93, 35)")
	require.Contains(t, desc.Text, "Центр: (100, 100)")
	require.Contains(t, desc.Text, "13.46 px")

	failed := entity.NewErrorResult(entity.ReasonMomentsFailed)
	desc, err = d.Describe(ctx, &failed)
	require.NoError(t, err)
	require.Contains(t, desc.Text, "центр не вычислен")

	unknown := entity.NewErrorResult("something else")
	desc, err = d.Describe(ctx, &unknown)
	require.NoError(t, err)
	require.Contains(t, desc.Text, "something else")

	_, err = d.Describe(ctx, nil)
	require.Error(t, err)
}
