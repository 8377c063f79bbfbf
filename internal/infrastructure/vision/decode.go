package vision

import (
	"bytes"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/nfnt/resize"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// decodeImage распознаёт PNG, JPEG, GIF, BMP, TIFF и WebP.
func decodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// limitSide уменьшает изображение так, чтобы большая сторона не превышала maxSide.
// maxSide <= 0 отключает уменьшение.
func limitSide(img image.Image, maxSide int) image.Image {
	b := img.Bounds()
	longest := maxInt(b.Dx(), b.Dy())
	if maxSide <= 0 || longest <= maxSide {
		return img
	}
	scale := float64(maxSide) / float64(longest)
	newW := uint(float64(b.Dx()) * scale)
	newH := uint(float64(b.Dy()) * scale)
	return resize.Resize(newW, newH, img, resize.Lanczos3)
}

// toGray переводит изображение в оттенки серого с началом координат в (0, 0).
func toGray(img image.Image) *image.Gray {
	b := img.Bounds()
	gray := image.NewGray(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(gray, gray.Bounds(), img, b.Min, draw.Src)
	return gray
}

// toRGBA копия изображения для рисования, начало координат в (0, 0).
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
