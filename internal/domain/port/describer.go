package port

import (
	"context"

	"ring-inspector/internal/domain/entity"
)

// DefectDescriber интерфейс описателя результатов
type DefectDescriber interface {
	// Describe формирует текстовое описание результата проверки
	Describe(ctx context.Context, result *entity.InspectionResult) (*entity.Description, error)
}
