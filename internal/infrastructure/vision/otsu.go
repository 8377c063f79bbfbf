package vision

import "image"

// Значения пикселей бинарной маски.
const (
	maskBackground uint8 = 0
	maskForeground uint8 = 255
)

// OtsuThreshold порог, максимизирующий межклассовую дисперсию яркости.
// Класс «тёмных» пикселей включает сам порог. При равных дисперсиях
// выбирается наименьший порог.
func OtsuThreshold(gray *image.Gray) uint8 {
	var hist [256]int
	b := gray.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := gray.Pix[(y-b.Min.Y)*gray.Stride:]
		for x := 0; x < b.Dx(); x++ {
			hist[row[x]]++
		}
	}

	total := 0
	sumAll := 0.0
	for i, n := range hist {
		total += n
		sumAll += float64(i * n)
	}

	var (
		best     uint8
		maxSigma float64
		w0       int
		sum0     float64
	)
	for t := 0; t < 256; t++ {
		w0 += hist[t]
		sum0 += float64(t * hist[t])
		if w0 == 0 || w0 == total {
			continue
		}
		w1 := total - w0
		m0 := sum0 / float64(w0)
		m1 := (sumAll - sum0) / float64(w1)
		sigma := float64(w0) * float64(w1) * (m0 - m1) * (m0 - m1)
		if sigma > maxSigma {
			maxSigma = sigma
			best = uint8(t)
		}
	}
	return best
}

// BinarizeInv строит маску с инвертированной полярностью: пиксели не ярче
// порога становятся объектом. Возвращает маску и выбранный порог.
func BinarizeInv(gray *image.Gray) (*image.Gray, uint8) {
	t := OtsuThreshold(gray)
	b := gray.Bounds()
	mask := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		src := gray.Pix[(y-b.Min.Y)*gray.Stride:]
		dst := mask.Pix[(y-b.Min.Y)*mask.Stride:]
		for x := 0; x < b.Dx(); x++ {
			if src[x] > t {
				dst[x] = maskBackground
			} else {
				dst[x] = maskForeground
			}
		}
	}
	return mask, t
}
