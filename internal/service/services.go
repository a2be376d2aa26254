package service

import (
	"tasktracker/internal/logger"
	"tasktracker/internal/store"
)

// Services aggregates the business-logic services injected into the
// transport layer.
type Services struct {
	AuthService AuthService
	TaskService TaskService
}

// NewServices wires the services to the given repositories.
func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, logger),
		TaskService: NewTaskService(storages.TaskRepository, logger),
	}
}
