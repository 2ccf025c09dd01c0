package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type AdminService interface {
	Dashboard(callerID uint) (*dto.DashboardData, error)
	Categories() ([]models.Category, error)
	CreateJob(callerID uint, req *dto.CreateJobRequest) (*models.Job, error)
	ViewApplications(callerID, jobID uint) (*models.Job, []models.Application, error)
	SetJobActive(callerID, jobID uint, active bool) error
	UpdateApplicationStatus(callerID, applicationID uint, status string) error
}

type AdminServiceImpl struct {
	userRepo        repositories.UserRepository
	jobRepo         repositories.JobRepository
	categoryRepo    repositories.CategoryRepository
	applicationRepo repositories.ApplicationRepository
}

func NewAdminService(
	userRepo repositories.UserRepository,
	jobRepo repositories.JobRepository,
	categoryRepo repositories.CategoryRepository,
	applicationRepo repositories.ApplicationRepository,
) AdminService {
	return &AdminServiceImpl{
		userRepo:        userRepo,
		jobRepo:         jobRepo,
		categoryRepo:    categoryRepo,
		applicationRepo: applicationRepo,
	}
}

// requireAdmin loads the caller and enforces the admin predicate
// (is_superuser OR is_staff).
func (s *AdminServiceImpl) requireAdmin(callerID uint) (*models.User, error) {
	caller, err := s.userRepo.FindByID(callerID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInsufficientPermissions
		}
		return nil, apperrors.InternalError(err)
	}
	if !caller.IsAdmin() {
		return nil, apperrors.ErrInsufficientPermissions
	}
	return caller, nil
}

// Dashboard lists the caller's own jobs (active or not) and the total number
// of applications across them. Never another poster's jobs.
func (s *AdminServiceImpl) Dashboard(callerID uint) (*dto.DashboardData, error) {
	caller, err := s.requireAdmin(callerID)
	if err != nil {
		return nil, err
	}

	jobs, err := s.jobRepo.ListByPoster(caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	totalApplications, err := s.applicationRepo.CountByPoster(caller.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.DashboardData{
		Jobs:              jobs,
		TotalApplications: totalApplications,
	}, nil
}

// Categories lists every category for the job creation form.
func (s *AdminServiceImpl) Categories() ([]models.Category, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

// CreateJob validates the fields and persists a job with poster = caller. No
// partial record is created on any failure path.
func (s *AdminServiceImpl) CreateJob(callerID uint, req *dto.CreateJobRequest) (*models.Job, error) {
	caller, err := s.requireAdmin(callerID)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil {
		if _, err := s.categoryRepo.FindByID(*req.CategoryID); err != nil {
			if apperrors.Is(err, repositories.ErrCategoryNotFound) {
				return nil, apperrors.ValidationError(map[string]string{
					"category_id": apperrors.ErrCategoryNotFound.Message,
				})
			}
			return nil, apperrors.InternalError(err)
		}
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	job := &models.Job{
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Description:  req.Description,
		Requirements: req.Requirements,
		Salary:       req.Salary,
		JobType:      models.JobType(req.JobType),
		CategoryID:   req.CategoryID,
		PostedByID:   caller.ID,
		IsActive:     isActive,
	}

	if err := s.jobRepo.Create(job); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return job, nil
}

// ViewApplications returns the applications for a job the caller posted.
// Ownership is part of the lookup: another admin's job is NotFound here.
func (s *AdminServiceImpl) ViewApplications(callerID, jobID uint) (*models.Job, []models.Application, error) {
	caller, err := s.requireAdmin(callerID)
	if err != nil {
		return nil, nil, err
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, nil, apperrors.ErrJobNotFound
		}
		return nil, nil, apperrors.InternalError(err)
	}
	if job.PostedByID != caller.ID {
		return nil, nil, apperrors.ErrJobNotFound
	}

	applications, err := s.applicationRepo.ListByJob(job.ID)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	return job, applications, nil
}

// SetJobActive toggles catalog visibility of an owned job without deleting it.
func (s *AdminServiceImpl) SetJobActive(callerID, jobID uint, active bool) error {
	caller, err := s.requireAdmin(callerID)
	if err != nil {
		return err
	}

	job, err := s.jobRepo.FindByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrJobNotFound
		}
		return apperrors.InternalError(err)
	}
	if job.PostedByID != caller.ID {
		return apperrors.ErrJobNotFound
	}

	if err := s.jobRepo.SetActive(job.ID, active); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

// UpdateApplicationStatus lets the job's poster review an application.
func (s *AdminServiceImpl) UpdateApplicationStatus(callerID, applicationID uint, status string) error {
	caller, err := s.requireAdmin(callerID)
	if err != nil {
		return err
	}

	if !models.ValidApplicationStatus(status) {
		return apperrors.ErrInvalidApplicationStatus
	}

	application, err := s.applicationRepo.FindByID(applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrApplicationNotFound
		}
		return apperrors.InternalError(err)
	}
	if application.Job.PostedByID != caller.ID {
		return apperrors.ErrApplicationNotFound
	}

	if err := s.applicationRepo.UpdateStatus(application.ID, models.ApplicationStatus(status)); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
