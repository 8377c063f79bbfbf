package ring

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func square(x0, y0, x1, y1 int) Contour {
	return Contour{{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}}
}

// circle равномерно сэмплированная окружность с округлением до пикселя.
func circle(cx, cy, r float64, n int) Contour {
	c := make(Contour, n)
	for i := range c {
		a := 2 * math.Pi * float64(i) / float64(n)
		c[i] = image.Pt(int(math.Round(cx+r*math.Cos(a))), int(math.Round(cy+r*math.Sin(a))))
	}
	return c
}

// withSpike заменяет точку k на точку с радиусом r относительно (cx, cy).
func withSpike(c Contour, k int, cx, cy, r float64) Contour {
	out := make(Contour, len(c))
	copy(out, c)
	a := 2 * math.Pi * float64(k) / float64(len(c))
	out[k] = image.Pt(int(math.Round(cx+r*math.Cos(a))), int(math.Round(cy+r*math.Sin(a))))
	return out
}

func TestContour_Moments(t *testing.T) {
	sq := square(0, 0, 10, 20)
	require.InDelta(t, 200, sq.Area(), 1e-9)

	x, y, ok := sq.Centroid()
	require.True(t, ok)
	require.InDelta(t, 5, x, 1e-9)
	require.InDelta(t, 10, y, 1e-9)

	reversed := Contour{{0, 0}, {0, 20}, {10, 20}, {10, 0}}
	require.InDelta(t, 200, reversed.Area(), 1e-9)
	rx, ry, ok := reversed.Centroid()
	require.True(t, ok)
	require.InDelta(t, 5, rx, 1e-9)
	require.InDelta(t, 10, ry, 1e-9)
}

func TestContour_DegenerateCentroid(t *testing.T) {
	cases := map[string]Contour{
		"single point": {{5, 5}},
		"segment":      {{0, 0}, {10, 0}},
		"collinear":    {{0, 0}, {5, 0}, {10, 0}, {5, 0}},
	}
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			require.Zero(t, c.Area())
			_, _, ok := c.Centroid()
			require.False(t, ok)
		})
	}
}

func TestSelectBoundaries(t *testing.T) {
	small := square(0, 0, 2, 2)
	mid := square(0, 0, 5, 5)
	big := square(0, 0, 10, 10)

	outer, inner, ok := SelectBoundaries([]Contour{small, mid, big})
	require.True(t, ok)
	require.Equal(t, big, outer)
	require.Equal(t, mid, inner)

	_, _, ok = SelectBoundaries([]Contour{big})
	require.False(t, ok)
}

func TestSelectBoundaries_TieKeepsTracerOrder(t *testing.T) {
	first := square(0, 0, 10, 10)
	second := square(50, 50, 60, 60)
	third := square(100, 100, 110, 110)

	outer, inner, ok := SelectBoundaries([]Contour{square(0, 0, 1, 1), first, second, third})
	require.True(t, ok)
	require.Equal(t, first, outer)
	require.Equal(t, second, inner)
}

func TestRegistrationCenter(t *testing.T) {
	outer := square(0, 0, 100, 100) // центр масс (50, 50)

	center, ok := RegistrationCenter(outer, square(44, 38, 64, 58)) // (54, 48)
	require.True(t, ok)
	require.Equal(t, image.Pt(52, 49), center)

	// (50 + 51) / 2 = 50.5 округляется вверх
	center, ok = RegistrationCenter(outer, square(41, 41, 61, 61))
	require.True(t, ok)
	require.Equal(t, image.Pt(51, 51), center)

	// (50 + 55.5) / 2 = 52.75
	center, ok = RegistrationCenter(outer, square(45, 45, 66, 66))
	require.True(t, ok)
	require.Equal(t, image.Pt(53, 53), center)

	_, ok = RegistrationCenter(outer, Contour{{1, 1}, {2, 2}})
	require.False(t, ok)
}
