package services

import (
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/storage"

	"gorm.io/gorm"
)

// ServiceContainer wires every service with its repositories once at boot.
type ServiceContainer struct {
	AuthService        AuthService
	JobService         JobService
	ApplicationService ApplicationService
	AdminService       AdminService
}

func NewServiceContainer(db *gorm.DB, store storage.Storage) *ServiceContainer {
	userRepo := repositories.NewUserRepository(db)
	refreshTokenRepo := repositories.NewRefreshTokenRepository(db)
	categoryRepo := repositories.NewCategoryRepository(db)
	jobRepo := repositories.NewJobRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	return &ServiceContainer{
		AuthService:        NewAuthService(userRepo, refreshTokenRepo),
		JobService:         NewJobService(jobRepo, categoryRepo, applicationRepo),
		ApplicationService: NewApplicationService(applicationRepo, jobRepo, store),
		AdminService:       NewAdminService(userRepo, jobRepo, categoryRepo, applicationRepo),
	}
}
