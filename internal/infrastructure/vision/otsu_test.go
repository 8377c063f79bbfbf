package vision

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func grayFrom(w, h int, fill func(x, y int) uint8) *image.Gray {
	g := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g.SetGray(x, y, grayValue(fill(x, y)))
		}
	}
	return g
}

func TestOtsuThreshold_Bimodal(t *testing.T) {
	g := grayFrom(10, 10, func(x, y int) uint8 {
		if x < 5 {
			return 40
		}
		return 200
	})
	th := OtsuThreshold(g)
	require.GreaterOrEqual(t, th, uint8(40))
	require.Less(t, th, uint8(200))
	// при равной дисперсии выбирается наименьший порог
	require.Equal(t, uint8(40), th)
}

func TestOtsuThreshold_Uniform(t *testing.T) {
	g := grayFrom(4, 4, func(x, y int) uint8 { return 128 })
	require.Equal(t, uint8(0), OtsuThreshold(g))
}

func TestBinarizeInv_DarkIsForeground(t *testing.T) {
	g := grayFrom(4, 1, func(x, y int) uint8 {
		return []uint8{10, 20, 230, 240}[x]
	})
	mask, th := BinarizeInv(g)
	require.Less(t, th, uint8(230))
	require.Equal(t, []uint8{255, 255, 0, 0}, mask.Pix)
}
