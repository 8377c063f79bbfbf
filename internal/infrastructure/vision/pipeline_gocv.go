//go:build gocv
// +build gocv

package vision

import (
	"image"

	"gocv.io/x/gocv"

	"ring-inspector/internal/domain/entity"
	"ring-inspector/internal/domain/ring"
	apperrors "ring-inspector/internal/errors"
)

// extractContours выполняет сегментацию средствами OpenCV.
func (d *Detector) extractContours(imageData []byte) ([]ring.Contour, error) {
	mat, err := d.decodeToMat(imageData, gocv.IMReadGrayScale)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	blur := gocv.NewMat()
	defer blur.Close()
	if d.opts.BlurKernel > 1 {
		k := d.opts.BlurKernel
		gocv.GaussianBlur(mat, &blur, image.Pt(k, k), 0, 0, gocv.BorderDefault)
	} else {
		mat.CopyTo(&blur)
	}

	// Порог Отсу с инверсией: кольцо темнее фона.
	binary := gocv.NewMat()
	defer binary.Close()
	threshold := gocv.Threshold(blur, &binary, 0, 255, gocv.ThresholdBinaryInv+gocv.ThresholdOtsu)

	hierarchy := gocv.NewMat()
	defer hierarchy.Close()
	contours := gocv.FindContoursWithParams(binary, &hierarchy, gocv.RetrievalTree, gocv.ChainApproxSimple)
	defer contours.Close()

	d.log.Debug("mask traced", "width", mat.Cols(), "height", mat.Rows(),
		"threshold", threshold, "borders", contours.Size())

	out := make([]ring.Contour, 0, contours.Size())
	for i := 0; i < contours.Size(); i++ {
		out = append(out, ring.Contour(contours.At(i).ToPoints()))
	}
	return out, nil
}

// render рисует результат средствами OpenCV и кодирует в JPEG.
func (d *Detector) render(imageData []byte, result *entity.InspectionResult) ([]byte, error) {
	mat, err := d.decodeToMat(imageData, gocv.IMReadColor)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	if result.HasDefects() && result.Location != nil && result.Center != nil {
		gocv.Circle(&mat, *result.Location, markerRadius, markerColor, markerThickness)
		gocv.Line(&mat, *result.Center, *result.Location, rayColor, rayThickness)
	}

	textColor := badColor
	if result.Status == entity.StatusGood {
		textColor = goodColor
	}
	gocv.PutText(&mat, caption(result), image.Pt(10, 30), gocv.FontHersheySimplex, 0.8, textColor, 2)

	buf, err := gocv.IMEncode(gocv.JPEGFileExt, mat)
	if err != nil {
		return nil, apperrors.NewRenderFailedError("image", err)
	}
	defer buf.Close()

	return append([]byte(nil), buf.GetBytes()...), nil
}

// decodeToMat превращает байты изображения в gocv.Mat и при необходимости уменьшает его.
func (d *Detector) decodeToMat(imageData []byte, flags gocv.IMReadFlag) (gocv.Mat, error) {
	mat, err := gocv.IMDecode(imageData, flags)
	if err != nil || mat.Empty() {
		mat.Close()
		if err == nil && len(imageData) == 0 {
			return gocv.NewMat(), apperrors.NewEmptyImageError("image")
		}
		return gocv.NewMat(), apperrors.NewDecodeFailedError("image", err)
	}

	maxSide := d.opts.MaxSide
	if maxSide > 0 && (mat.Cols() > maxSide || mat.Rows() > maxSide) {
		scale := float64(maxSide) / float64(maxInt(mat.Cols(), mat.Rows()))
		newW := int(float64(mat.Cols()) * scale)
		newH := int(float64(mat.Rows()) * scale)
		resized := gocv.NewMat()
		gocv.Resize(mat, &resized, image.Pt(newW, newH), 0, 0, gocv.InterpolationArea)
		mat.Close()
		mat = resized
	}
	return mat, nil
}
