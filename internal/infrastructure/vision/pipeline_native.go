//go:build !gocv
// +build !gocv

package vision

import (
	"bytes"
	"image/jpeg"

	"ring-inspector/internal/domain/entity"
	"ring-inspector/internal/domain/ring"
	apperrors "ring-inspector/internal/errors"
)

const jpegQuality = 90

// extractContours декодирует изображение и возвращает все границы маски.
func (d *Detector) extractContours(imageData []byte) ([]ring.Contour, error) {
	img, err := decodeImage(imageData)
	if err != nil {
		return nil, apperrors.NewDecodeFailedError("image", err)
	}
	if img.Bounds().Empty() {
		return nil, apperrors.NewEmptyImageError("image")
	}

	gray := toGray(limitSide(img, d.opts.MaxSide))
	blurred := GaussianBlur(gray, d.opts.BlurKernel)
	mask, threshold := BinarizeInv(blurred)
	borders := TraceBorders(mask)
	d.log.Debug("mask traced", "width", gray.Rect.Dx(), "height", gray.Rect.Dy(),
		"threshold", threshold, "borders", len(borders))

	return Contours(borders), nil
}

// render рисует результат поверх исходного изображения.
func (d *Detector) render(imageData []byte, result *entity.InspectionResult) ([]byte, error) {
	img, err := decodeImage(imageData)
	if err != nil {
		return nil, apperrors.NewDecodeFailedError("image", err)
	}
	if img.Bounds().Empty() {
		return nil, apperrors.NewEmptyImageError("image")
	}

	canvas := toRGBA(limitSide(img, d.opts.MaxSide))
	annotate(canvas, result)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, canvas, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, apperrors.NewRenderFailedError("image", err)
	}
	return buf.Bytes(), nil
}
