package vision

import (
	"image"
	"math"
)

// Фиксированные ядра для малых размеров при автоматической сигме,
// те же, что использует OpenCV.
var smallGaussianKernels = map[int][]float64{
	1: {1},
	3: {0.25, 0.5, 0.25},
	5: {0.0625, 0.25, 0.375, 0.25, 0.0625},
	7: {0.03125, 0.109375, 0.21875, 0.28125, 0.21875, 0.109375, 0.03125},
}

// gaussianKernel одномерное ядро размера ksize с сигмой,
// выведенной из размера ядра.
func gaussianKernel(ksize int) []float64 {
	if k, ok := smallGaussianKernels[ksize]; ok {
		return k
	}
	sigma := 0.3*(float64(ksize-1)*0.5-1) + 0.8
	kernel := make([]float64, ksize)
	half := float64(ksize-1) / 2
	sum := 0.0
	for i := range kernel {
		x := float64(i) - half
		kernel[i] = math.Exp(-x * x / (2 * sigma * sigma))
		sum += kernel[i]
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// GaussianBlur сглаживает изображение разделимым гауссовым фильтром.
// Края отражаются без повторения крайнего пикселя. ksize <= 1 — копия.
func GaussianBlur(src *image.Gray, ksize int) *image.Gray {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	dst := image.NewGray(image.Rect(0, 0, w, h))
	if ksize <= 1 || w == 0 || h == 0 {
		for y := 0; y < h; y++ {
			copy(dst.Pix[y*dst.Stride:y*dst.Stride+w], src.Pix[y*src.Stride:y*src.Stride+w])
		}
		return dst
	}

	kernel := gaussianKernel(ksize)
	r := ksize / 2

	tmp := make([]float64, w*h)
	for y := 0; y < h; y++ {
		row := src.Pix[y*src.Stride:]
		for x := 0; x < w; x++ {
			acc := 0.0
			for k, kv := range kernel {
				acc += kv * float64(row[reflect101(x+k-r, w)])
			}
			tmp[y*w+x] = acc
		}
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			acc := 0.0
			for k, kv := range kernel {
				acc += kv * tmp[reflect101(y+k-r, h)*w+x]
			}
			dst.Pix[y*dst.Stride+x] = clampUint8(acc)
		}
	}
	return dst
}

func reflect101(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i
		}
		if i >= n {
			i = 2*n - 2 - i
		}
	}
	return i
}

func clampUint8(v float64) uint8 {
	v = math.Round(v)
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
