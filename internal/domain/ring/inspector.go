// Package ring ищет дефекты формы кольцевых деталей по двум границам кольца.
//
// Порядок работы: выбор двух контуров наибольшей площади, регистрация центра
// по их центрам масс, проверка радиального профиля сначала внешней, затем
// внутренней границы. Все измерения в пикселях.
//
// Ограничение: разности считаются между соседними точками в порядке обхода,
// что предполагает примерно равномерный шаг по длине дуги. После сжатия
// прямых участков контура шаг неравномерен, и на некоторых формах возможны
// ложные или пропущенные скачки.
package ring

import "ring-inspector/internal/domain/entity"

// DefaultJumpThreshold порог скачка радиуса между соседними точками, px.
const DefaultJumpThreshold = 2.5

// SelectedBoundaries сколько контуров наибольшей площади берётся в работу.
const SelectedBoundaries = 2

var scanOrder = [SelectedBoundaries]entity.Boundary{entity.BoundaryOuter, entity.BoundaryInner}

// ScanOrder порядок проверки границ. Проверка останавливается на первом дефекте.
func ScanOrder() [SelectedBoundaries]entity.Boundary {
	return scanOrder
}

// Logger отладочный вывод промежуточных значений.
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}

// Inspector анализирует контуры одного изображения. Не хранит состояние
// между вызовами и безопасен для параллельного использования.
type Inspector struct {
	threshold float64
	log       Logger
}

// NewInspector создаёт анализатор с порогом скачка радиуса.
// Неположительный порог заменяется значением по умолчанию.
func NewInspector(threshold float64, log Logger) *Inspector {
	if threshold <= 0 {
		threshold = DefaultJumpThreshold
	}
	if log == nil {
		log = nopLogger{}
	}
	return &Inspector{threshold: threshold, log: log}
}

// Threshold текущий порог скачка.
func (in *Inspector) Threshold() float64 {
	return in.threshold
}

// Analyze выносит вердикт по всем найденным на маске контурам.
func (in *Inspector) Analyze(contours []Contour) entity.InspectionResult {
	in.log.Debug("contours found", "count", len(contours))

	outer, inner, ok := SelectBoundaries(contours)
	if !ok {
		return entity.NewErrorResult(entity.ReasonSegmentationFailed)
	}

	center, ok := RegistrationCenter(outer, inner)
	if !ok {
		return entity.NewErrorResult(entity.ReasonMomentsFailed)
	}
	in.log.Debug("registration center", "x", center.X, "y", center.Y)

	boundaries := map[entity.Boundary]Contour{
		entity.BoundaryOuter: outer,
		entity.BoundaryInner: inner,
	}
	for _, boundary := range scanOrder {
		c := boundaries[boundary]
		scan := scanContour(c, center)
		in.log.Debug("max radial jump", "boundary", boundary, "jump", scan.MaxJump, "mean_radius", scan.MeanRadius)

		if scan.MaxJump <= in.threshold {
			continue
		}

		defect := entity.Classify(boundary, scan.DevRadius, scan.MeanRadius)
		location := c[scan.JumpIndex]
		in.log.Debug("defect detected", "boundary", boundary, "type", defect,
			"jump_index", scan.JumpIndex, "deviation_index", scan.DeviationIndex)
		return entity.NewDefectiveResult(defect, boundary, scan.MaxJump, location, center)
	}

	return entity.NewGoodResult()
}
