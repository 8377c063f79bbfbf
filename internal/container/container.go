package container

import (
	app "ring-inspector/internal/application"
	"ring-inspector/internal/domain/port"
	"ring-inspector/internal/logging"
)

type Container struct {
	UserService       *app.UserService
	InspectionService *app.InspectionService
}

func New(userRepo port.UserRepository, history port.InspectionRepository, detector port.DefectDetector,
	describer port.DefectDescriber, log *logging.Logger) *Container {
	userService := app.NewUserService(userRepo)
	inspectionService := app.NewInspectionService(userService, detector, describer, history, log)

	return &Container{
		UserService:       userService,
		InspectionService: inspectionService,
	}
}
