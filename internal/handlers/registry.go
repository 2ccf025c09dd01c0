package handlers

import (
	"jobboard_backend/internal/services"
	"jobboard_backend/internal/validator"
)

// AppHandlers bundles every handler behind a single boot-time constructor.
type AppHandlers struct {
	Auth        *AuthHandler
	Job         *JobHandler
	Application *ApplicationHandler
	WebAuth     *WebAuthHandler
	WebJob      *WebJobHandler
	WebAdmin    *WebAdminHandler
}

func NewAppHandlers(container *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		Auth:        NewAuthHandler(base, container.AuthService),
		Job:         NewJobHandler(base, container.JobService),
		Application: NewApplicationHandler(base, container.ApplicationService),
		WebAuth:     NewWebAuthHandler(base, container.AuthService, container.ApplicationService),
		WebJob:      NewWebJobHandler(base, container.JobService, container.ApplicationService, container.AuthService),
		WebAdmin:    NewWebAdminHandler(base, container.AdminService, container.AuthService),
	}
}
