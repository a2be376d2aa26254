package http

import (
	"tasktracker/internal/config"
	"tasktracker/internal/logger"
	"tasktracker/internal/service"
	"tasktracker/internal/session"
)

// Handler bundles the dependencies of the HTTP transport layer: the business
// services, the session manager, and the application settings that control
// the session cookie.
type Handler struct {
	services *service.Services
	sessions *session.Manager
	cfg      config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, sessions *session.Manager, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		sessions: sessions,
		cfg:      cfg,
		logger:   logger,
	}
}
