package port

import (
	"context"

	"ring-inspector/internal/domain/entity"
)

// DefectDetector интерфейс детектора дефектов кольца
type DefectDetector interface {
	// Inspect анализирует изображение и возвращает результат инспекции.
	// Ошибка означает, что изображение не удалось прочитать.
	Inspect(ctx context.Context, imageData []byte) (*entity.InspectionResult, error)

	// HighlightDefects создаёт изображение с отметкой дефекта и подписью
	HighlightDefects(imageData []byte, result *entity.InspectionResult) ([]byte, error)
}
