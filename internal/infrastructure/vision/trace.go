package vision

import (
	"image"

	"ring-inspector/internal/domain/ring"
)

// Border граница связной области маски.
type Border struct {
	Contour ring.Contour
	Hole    bool // граница отверстия внутри объекта
	Parent  int  // индекс объемлющей границы, -1 для верхнего уровня
}

// Смещения 8 соседей. Рост индекса — обход против часовой стрелки на экране.
var (
	dirX = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
	dirY = [8]int{0, -1, -1, -1, 0, 1, 1, 1}
)

// TraceBorders находит все внешние границы и границы отверстий маски
// (алгоритм Suzuki–Abe) с полной иерархией. Прямые горизонтальные,
// вертикальные и диагональные участки сжимаются до конечных точек.
func TraceBorders(mask *image.Gray) []Border {
	b := mask.Bounds()
	w, h := b.Dx()+2, b.Dy()+2

	// Рамка из нулей вокруг маски: граница изображения не считается контуром.
	f := make([]int32, w*h)
	for y := 0; y < b.Dy(); y++ {
		row := mask.Pix[y*mask.Stride:]
		for x := 0; x < b.Dx(); x++ {
			if row[x] != 0 {
				f[(y+1)*w+x+1] = 1
			}
		}
	}

	offsets := [8]int{}
	for d := range offsets {
		offsets[d] = dirY[d]*w + dirX[d]
	}

	var borders []Border
	nbd := int32(1) // 1 зарезервирован за рамкой
	for i := 1; i < h-1; i++ {
		lnbd := int32(1)
		for j := 1; j < w-1; j++ {
			pos := i*w + j
			p := f[pos]

			var from int
			var hole bool
			switch {
			case p == 1 && f[pos-1] == 0:
				from = 4
			case p >= 1 && f[pos+1] == 0:
				from, hole = 0, true
				if p > 1 {
					lnbd = p
				}
			default:
				if p != 0 && p != 1 {
					lnbd = abs32(p)
				}
				continue
			}

			nbd++
			pts := follow(f, offsets, w, pos, from, nbd)
			for k := range pts {
				pts[k] = pts[k].Add(b.Min).Sub(image.Pt(1, 1))
			}
			borders = append(borders, Border{
				Contour: compressChain(pts),
				Hole:    hole,
				Parent:  parentOf(borders, lnbd, hole),
			})

			if q := f[pos]; q != 0 && q != 1 {
				lnbd = abs32(q)
			}
		}
	}
	return borders
}

// Contours только контуры, в порядке обнаружения.
func Contours(borders []Border) []ring.Contour {
	out := make([]ring.Contour, len(borders))
	for i, br := range borders {
		out[i] = br.Contour
	}
	return out
}

// follow обходит границу, начиная с пикселя pos. Метки NBD пишутся в f.
func follow(f []int32, offsets [8]int, w, pos, from int, nbd int32) []image.Point {
	at := func(p int) image.Point { return image.Pt(p%w, p/w) }

	first := -1
	for k := 0; k < 8; k++ {
		d := (from - k + 8) % 8
		if f[pos+offsets[d]] != 0 {
			first = d
			break
		}
	}
	if first < 0 {
		f[pos] = -nbd
		return []image.Point{at(pos)}
	}

	p1 := pos + offsets[first]
	p3 := pos
	back := first // направление от p3 к предыдущему пикселю
	var pts []image.Point
	for {
		p4, next := -1, 0
		eastZero := false
		for k := 1; k <= 8; k++ {
			d := (back + k) % 8
			q := p3 + offsets[d]
			if f[q] != 0 {
				p4, next = q, d
				break
			}
			if d == 0 {
				eastZero = true
			}
		}

		if eastZero {
			f[p3] = -nbd
		} else if f[p3] == 1 {
			f[p3] = nbd
		}
		pts = append(pts, at(p3))

		if p4 == pos && p3 == p1 {
			return pts
		}
		back = (next + 4) % 8
		p3 = p4
	}
}

// parentOf определяет объемлющую границу по последней встреченной (LNBD).
func parentOf(borders []Border, lnbd int32, hole bool) int {
	if lnbd <= 1 {
		return -1
	}
	idx := int(lnbd - 2)
	if borders[idx].Hole == hole {
		return borders[idx].Parent
	}
	return idx
}

// compressChain оставляет только точки смены направления обхода.
func compressChain(pts []image.Point) ring.Contour {
	n := len(pts)
	if n < 3 {
		return ring.Contour(pts)
	}
	out := make(ring.Contour, 0, n/2)
	for k := 0; k < n; k++ {
		prev, next := pts[(k-1+n)%n], pts[(k+1)%n]
		if pts[k].Sub(prev) != next.Sub(pts[k]) {
			out = append(out, pts[k])
		}
	}
	if len(out) == 0 {
		return ring.Contour{pts[0]}
	}
	return out
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}
