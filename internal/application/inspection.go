package app

import (
	"context"

	"ring-inspector/internal/domain/entity"
	"ring-inspector/internal/domain/port"
	apperrors "ring-inspector/internal/errors"
	"ring-inspector/internal/logging"
)

type InspectionService struct {
	users     *UserService
	detector  port.DefectDetector
	describer port.DefectDescriber
	history   port.InspectionRepository
	log       *logging.Logger
}

// InspectionOutput содержит результат проверки, описание и картинку с отметкой дефекта.
type InspectionOutput struct {
	Record      entity.InspectionRecord
	Description string
	Highlighted []byte
}

// NewInspectionService создаёт сервис, который управляет проверкой фото кольца.
func NewInspectionService(users *UserService, detector port.DefectDetector, describer port.DefectDescriber,
	history port.InspectionRepository, log *logging.Logger) *InspectionService {
	if log == nil {
		log = logging.Discard()
	}
	return &InspectionService{
		users:     users,
		detector:  detector,
		describer: describer,
		history:   history,
		log:       log,
	}
}

// ProcessPhoto проверяет фото, сохраняет результат в историю и возвращает
// пользователя в главное меню при любом исходе. Фото принимается только после
// /check, иначе возвращается ErrNotAwaitingPhoto.
func (s *InspectionService) ProcessPhoto(ctx context.Context, userID, chatID int64, source string, photo []byte) (*InspectionOutput, error) {
	if s.detector == nil {
		return nil, apperrors.NewDetectorUnavailableError()
	}

	if _, err := s.users.StartProcessing(ctx, userID, chatID); err != nil {
		return nil, err
	}

	recordID := ""
	defer func() {
		if _, err := s.users.FinishInspection(ctx, userID, chatID, recordID); err != nil {
			s.log.Error("failed to reset user state", "user", userID, "error", err)
		}
	}()

	result, err := s.detector.Inspect(ctx, photo)
	if err != nil {
		return nil, err
	}
	s.log.Info("analysis result", "user", userID, "source", source, "status", result.Status, "detail", result.Text())

	var highlighted []byte
	if result.HasDefects() {
		highlighted, err = s.detector.HighlightDefects(photo, result)
		if err != nil {
			s.log.Warn("failed to highlight defect", "user", userID, "error", err)
		}
	}

	record := entity.InspectionRecord{UserID: userID, Source: source, Result: *result}
	if s.history != nil {
		if err := s.history.Save(ctx, &record); err != nil {
			return nil, err
		}
		recordID = record.ID
	}

	return &InspectionOutput{
		Record:      record,
		Description: s.describe(ctx, result),
		Highlighted: highlighted,
	}, nil
}

// History возвращает последние проверки пользователя.
func (s *InspectionService) History(ctx context.Context, userID int64, limit int) ([]entity.InspectionRecord, error) {
	if s.history == nil {
		return nil, nil
	}
	return s.history.ListByUser(ctx, userID, limit)
}

func (s *InspectionService) describe(ctx context.Context, result *entity.InspectionResult) string {
	if s.describer != nil {
		desc, err := s.describer.Describe(ctx, result)
		if err == nil {
			return desc.Text
		}
		s.log.Warn("failed to describe result", "error", err)
	}
	text := string(result.Status)
	if detail := result.Text(); detail != "" {
		text += ": " + detail
	}
	return text
}
