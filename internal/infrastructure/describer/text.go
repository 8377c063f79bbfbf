package describer

import (
	"context"
	"fmt"
	"strings"

	"ring-inspector/internal/domain/entity"
	"ring-inspector/internal/domain/port"
)

var (
	defectNames = map[entity.DefectType]string{
		entity.DefectCut:   "вырез (недостаток материала)",
		entity.DefectFlash: "облой (избыток материала)",
	}
	boundaryNames = map[entity.Boundary]string{
		entity.BoundaryOuter: "внешняя граница",
		entity.BoundaryInner: "граница отверстия",
	}
	reasonNames = map[string]string{
		entity.ReasonSegmentationFailed: "не удалось выделить кольцо на изображении",
		entity.ReasonMomentsFailed:      "граница кольца вырождена, центр не вычислен",
	}
)

// TextDescriber формирует описание результата без обращения к внешним сервисам
type TextDescriber struct{}

// NewTextDescriber создаёт описатель
func NewTextDescriber() *TextDescriber {
	return &TextDescriber{}
}

// Describe возвращает текст для пользователя
func (d *TextDescriber) Describe(ctx context.Context, result *entity.InspectionResult) (*entity.Description, error) {
	if result == nil {
		return nil, fmt.Errorf("describe: nil result")
	}

	var b strings.Builder
	switch result.Status {
	case entity.StatusGood:
		b.WriteString("✅ Дефекты не обнаружены.")

	case entity.StatusDefective:
		b.WriteString("❌ Обнаружен дефект.\n")
		fmt.Fprintf(&b, "Тип: %s\n", nameOr(defectNames[result.DefectType], string(result.DefectType)))
		fmt.Fprintf(&b, "Где: %s\n", nameOr(boundaryNames[result.Boundary], string(result.Boundary)))
		if result.Location != nil {
			fmt.Fprintf(&b, "Точка: (%d, %d)\n", result.Location.X, result.Location.Y)
		}
		if result.Center != nil {
			fmt.Fprintf(&b, "Центр: (%d, %d)\n", result.Center.X, result.Center.Y)
		}
		fmt.Fprintf(&b, "Скачок радиуса: %.2f px", result.MaxJump)

	default:
		fmt.Fprintf(&b, "⚠️ Ошибка анализа: %s", nameOr(reasonNames[result.Reason], result.Reason))
	}

	return &entity.Description{Text: b.String()}, nil
}

func nameOr(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

// Проверка реализации интерфейса
var _ port.DefectDescriber = (*TextDescriber)(nil)
