package entity

// DefectType тип дефекта формы кольца
type DefectType string

const (
	DefectNone  DefectType = ""      // дефект не найден
	DefectCut   DefectType = "Cut"   // недостаток материала
	DefectFlash DefectType = "Flash" // избыток материала (облой)
)

// Boundary граница кольца, на которой ищется дефект
type Boundary string

const (
	BoundaryOuter Boundary = "Outer" // внешний контур детали
	BoundaryInner Boundary = "Inner" // контур центрального отверстия
)

// Classify определяет тип дефекта по отклонению радиуса от среднего.
// На внешней границе уменьшение радиуса означает вырез, увеличение — облой.
// На внутренней всё наоборот: отверстие сужается при облое и расширяется при вырезе.
func Classify(boundary Boundary, devRadius, avgRadius float64) DefectType {
	inward := devRadius < avgRadius
	if boundary == BoundaryInner {
		if inward {
			return DefectFlash
		}
		return DefectCut
	}
	if inward {
		return DefectCut
	}
	return DefectFlash
}
