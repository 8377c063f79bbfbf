package entity

import (
	"image"
	"time"
)

// InspectionStatus итоговый статус проверки
type InspectionStatus string

const (
	StatusGood      InspectionStatus = "Good"
	StatusDefective InspectionStatus = "Defective"
	StatusError     InspectionStatus = "Error"
)

// Причины ошибок анализа.
const (
	ReasonSegmentationFailed = "Segmentation Failed"
	ReasonMomentsFailed      = "Could not calculate moments"
)

// InspectionResult хранит итог анализа изображения кольца.
// Location и Center заполнены только для статуса Defective.
type InspectionResult struct {
	Status     InspectionStatus // итоговый статус
	DefectType DefectType       // тип дефекта (только Defective)
	Reason     string           // описание ошибки (только Error)
	Boundary   Boundary         // граница, на которой найден дефект
	MaxJump    float64          // максимальный скачок радиуса на этой границе
	Location   *image.Point     // точка наибольшего скачка радиуса
	Center     *image.Point     // центр регистрации
}

// NewGoodResult создаёт результат для детали без дефектов.
func NewGoodResult() InspectionResult {
	return InspectionResult{Status: StatusGood}
}

// NewErrorResult создаёт результат для изображения, которое не удалось разобрать.
func NewErrorResult(reason string) InspectionResult {
	return InspectionResult{Status: StatusError, Reason: reason}
}

// NewDefectiveResult создаёт результат с найденным дефектом.
func NewDefectiveResult(defect DefectType, boundary Boundary, maxJump float64, location, center image.Point) InspectionResult {
	return InspectionResult{
		Status:     StatusDefective,
		DefectType: defect,
		Boundary:   boundary,
		MaxJump:    maxJump,
		Location:   &location,
		Center:     &center,
	}
}

// HasDefects сообщает, найден ли дефект.
func (r InspectionResult) HasDefects() bool {
	return r.Status == StatusDefective
}

// Text возвращает тип дефекта либо текст ошибки.
func (r InspectionResult) Text() string {
	if r.Status == StatusError {
		return r.Reason
	}
	return string(r.DefectType)
}

// InspectionRecord запись в истории проверок.
type InspectionRecord struct {
	ID        string
	UserID    int64
	Source    string // имя файла или идентификатор фото
	Result    InspectionResult
	CreatedAt time.Time
}

// Description текстовое описание результата проверки.
type Description struct {
	Text string
}
