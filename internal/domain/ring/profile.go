package ring

import (
	"image"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RadialProfile радиусы точек контура относительно центра и
// циклические первые разности между соседними точками.
type RadialProfile struct {
	Radii []float64
	Jumps []float64 // Jumps[i] = |Radii[i] - Radii[i-1]|, Jumps[0] сравнивает с последней точкой
}

// NewRadialProfile строит профиль контура относительно center.
func NewRadialProfile(c Contour, center image.Point) RadialProfile {
	n := len(c)
	radii := make([]float64, n)
	for i, p := range c {
		radii[i] = math.Hypot(float64(p.X-center.X), float64(p.Y-center.Y))
	}

	jumps := make([]float64, n)
	for i := range radii {
		prev := radii[(i-1+n)%n]
		jumps[i] = math.Abs(radii[i] - prev)
	}

	return RadialProfile{Radii: radii, Jumps: jumps}
}

// MeanRadius средний радиус.
func (p RadialProfile) MeanRadius() float64 {
	return stat.Mean(p.Radii, nil)
}

// MaxJump наибольший скачок радиуса и индекс первой точки, где он достигается.
func (p RadialProfile) MaxJump() (float64, int) {
	idx := floats.MaxIdx(p.Jumps)
	return p.Jumps[idx], idx
}

// MaxDeviation индекс точки с наибольшим |r - mean|.
func (p RadialProfile) MaxDeviation(mean float64) int {
	dev := make([]float64, len(p.Radii))
	for i, r := range p.Radii {
		dev[i] = math.Abs(r - mean)
	}
	return floats.MaxIdx(dev)
}

// Scan результат проверки одной границы.
type Scan struct {
	MeanRadius     float64
	MaxJump        float64
	JumpIndex      int
	DeviationIndex int
	DevRadius      float64
}

// scanContour считает статистики профиля. Индекс скачка и индекс
// максимального отклонения считаются независимо и могут не совпадать.
func scanContour(c Contour, center image.Point) Scan {
	profile := NewRadialProfile(c, center)
	mean := profile.MeanRadius()
	jump, jumpIdx := profile.MaxJump()
	devIdx := profile.MaxDeviation(mean)

	return Scan{
		MeanRadius:     mean,
		MaxJump:        jump,
		JumpIndex:      jumpIdx,
		DeviationIndex: devIdx,
		DevRadius:      profile.Radii[devIdx],
	}
}
