package storage

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"ring-inspector/internal/domain/entity"
	"ring-inspector/internal/domain/port"
)

// MemoryInspectionRepository in-memory история проверок
type MemoryInspectionRepository struct {
	mu      sync.RWMutex
	limit   int
	records map[int64][]entity.InspectionRecord // новые в конце
	now     func() time.Time
}

// NewMemoryInspectionRepository создаёт историю, хранящую не более limit записей на пользователя
func NewMemoryInspectionRepository(limit int) *MemoryInspectionRepository {
	if limit < 1 {
		limit = 1
	}
	return &MemoryInspectionRepository{
		limit:   limit,
		records: make(map[int64][]entity.InspectionRecord),
		now:     time.Now,
	}
}

// Save добавляет запись в историю, вытесняя самые старые
func (r *MemoryInspectionRepository) Save(ctx context.Context, record *entity.InspectionRecord) error {
	if record == nil {
		return fmt.Errorf("save inspection: nil record")
	}
	if record.ID == "" {
		record.ID = uuid.NewString()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = r.now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	list := append(r.records[record.UserID], *record)
	if len(list) > r.limit {
		list = list[len(list)-r.limit:]
	}
	r.records[record.UserID] = list

	return nil
}

// ListByUser возвращает последние записи пользователя, новые первыми
func (r *MemoryInspectionRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]entity.InspectionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.records[userID]
	if limit <= 0 || limit > len(list) {
		limit = len(list)
	}

	out := make([]entity.InspectionRecord, 0, limit)
	for i := len(list) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, list[i])
	}
	return out, nil
}

// Проверка реализации интерфейса
var _ port.InspectionRepository = (*MemoryInspectionRepository)(nil)
