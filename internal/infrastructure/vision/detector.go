// Package vision подготавливает изображение для анализа кольца: декодирование,
// перевод в серый, размытие, бинаризация по Отсу и трассировка границ.
//
// По умолчанию используется реализация на чистом Go. С тегом сборки gocv
// те же шаги выполняет OpenCV.
package vision

import (
	"context"
	"fmt"

	"ring-inspector/internal/domain/entity"
	"ring-inspector/internal/domain/port"
	"ring-inspector/internal/domain/ring"
	"ring-inspector/internal/logging"
)

// Options параметры детектора.
type Options struct {
	JumpThreshold float64 // порог скачка радиуса, px
	BlurKernel    int     // размер ядра размытия, 1 — без размытия
	MaxSide       int     // ограничение большей стороны, 0 — без уменьшения
	Logger        *logging.Logger
}

// Detector ищет дефекты формы кольца на одном изображении.
type Detector struct {
	opts      Options
	inspector *ring.Inspector
	log       *logging.Logger
}

// NewDetector создаёт детектор. Нулевые значения опций заменяются значениями по умолчанию.
func NewDetector(opts Options) *Detector {
	if opts.BlurKernel <= 0 {
		opts.BlurKernel = 5
	}
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	return &Detector{
		opts:      opts,
		inspector: ring.NewInspector(opts.JumpThreshold, opts.Logger),
		log:       opts.Logger,
	}
}

// Inspect запускает анализ изображения. Ошибка возвращается только если
// изображение не удалось прочитать; исходы анализа лежат в результате.
func (d *Detector) Inspect(ctx context.Context, imageData []byte) (*entity.InspectionResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	contours, err := d.extractContours(imageData)
	if err != nil {
		return nil, err
	}

	result := d.inspector.Analyze(contours)
	return &result, nil
}

// HighlightDefects рисует маркер дефекта, луч от центра и подпись. Возвращает JPEG.
func (d *Detector) HighlightDefects(imageData []byte, result *entity.InspectionResult) ([]byte, error) {
	if result == nil {
		return nil, fmt.Errorf("highlight: nil result")
	}
	return d.render(imageData, result)
}

// caption подпись к изображению с результатом.
func caption(result *entity.InspectionResult) string {
	text := fmt.Sprintf("Status: %s", result.Status)
	switch result.Status {
	case entity.StatusDefective:
		text += fmt.Sprintf(" - Type: %s", result.DefectType)
	case entity.StatusError:
		text += fmt.Sprintf(" - %s", result.Reason)
	}
	return text
}

// Проверка реализации интерфейса
var _ port.DefectDetector = (*Detector)(nil)
