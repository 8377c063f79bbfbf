package ring

import (
	"image"
	"math"
	"sort"
)

// Contour замкнутая последовательность точек границы в порядке обхода.
type Contour []image.Point

// Moments геометрические моменты нулевого и первого порядка области,
// ограниченной контуром.
type Moments struct {
	M00, M10, M01 float64
}

// minArea площадь, ниже которой контур считается вырожденным.
const minArea = 1e-7

// Moments считает моменты многоугольника по формуле Грина.
func (c Contour) Moments() Moments {
	n := len(c)
	if n < 3 {
		return Moments{}
	}

	var a00, a10, a01 float64
	prev := c[n-1]
	for _, p := range c {
		xp, yp := float64(prev.X), float64(prev.Y)
		x, y := float64(p.X), float64(p.Y)
		cross := xp*y - x*yp
		a00 += cross
		a10 += cross * (xp + x)
		a01 += cross * (yp + y)
		prev = p
	}

	m := Moments{M00: a00 / 2, M10: a10 / 6, M01: a01 / 6}
	// Направление обхода не должно влиять на знак площади.
	if m.M00 < 0 {
		m.M00, m.M10, m.M01 = -m.M00, -m.M10, -m.M01
	}
	return m
}

// Area площадь, ограниченная контуром.
func (c Contour) Area() float64 {
	return c.Moments().M00
}

// Centroid центр масс области. ok=false для контура нулевой площади.
func (c Contour) Centroid() (x, y float64, ok bool) {
	m := c.Moments()
	if math.Abs(m.M00) < minArea {
		return 0, 0, false
	}
	return m.M10 / m.M00, m.M01 / m.M00, true
}

// SelectBoundaries выбирает внешнюю и внутреннюю границы кольца:
// два контура наибольшей площади, при равенстве сохраняется порядок трассировщика.
func SelectBoundaries(contours []Contour) (outer, inner Contour, ok bool) {
	if len(contours) < SelectedBoundaries {
		return nil, nil, false
	}

	areas := make([]float64, len(contours))
	idx := make([]int, len(contours))
	for i, c := range contours {
		idx[i] = i
		areas[i] = c.Area()
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return areas[idx[a]] > areas[idx[b]]
	})

	return contours[idx[0]], contours[idx[1]], true
}

// RegistrationCenter центр регистрации: середина между центрами масс
// внешней и внутренней границ, округлённая до пикселя.
func RegistrationCenter(outer, inner Contour) (image.Point, bool) {
	ox, oy, ok := outer.Centroid()
	if !ok {
		return image.Point{}, false
	}
	ix, iy, ok := inner.Centroid()
	if !ok {
		return image.Point{}, false
	}

	return image.Pt(
		int(math.Round((ox+ix)/2)),
		int(math.Round((oy+iy)/2)),
	), true
}
