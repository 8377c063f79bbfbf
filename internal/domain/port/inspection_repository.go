package port

import (
	"context"

	"ring-inspector/internal/domain/entity"
)

// InspectionRepository интерфейс истории проверок
type InspectionRepository interface {
	// Save сохраняет запись, назначая ей ID если он пуст
	Save(ctx context.Context, record *entity.InspectionRecord) error

	// ListByUser возвращает последние проверки пользователя, новые первыми
	ListByUser(ctx context.Context, userID int64, limit int) ([]entity.InspectionRecord, error)
}
