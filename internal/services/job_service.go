package services

import (
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/pkg/apperrors"
)

type JobService interface {
	ListActiveJobs(categoryID *uint) ([]models.Job, []models.Category, error)
	GetJobDetail(jobID uint, callerID *uint) (*models.Job, bool, error)
}

type JobServiceImpl struct {
	jobRepo         repositories.JobRepository
	categoryRepo    repositories.CategoryRepository
	applicationRepo repositories.ApplicationRepository
}

func NewJobService(
	jobRepo repositories.JobRepository,
	categoryRepo repositories.CategoryRepository,
	applicationRepo repositories.ApplicationRepository,
) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		categoryRepo:    categoryRepo,
		applicationRepo: applicationRepo,
	}
}

// ListActiveJobs returns active jobs newest-first, optionally filtered by
// category, together with the full category list for the filter UI.
func (s *JobServiceImpl) ListActiveJobs(categoryID *uint) ([]models.Job, []models.Category, error) {
	jobs, err := s.jobRepo.ListActive(categoryID)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	return jobs, categories, nil
}

// GetJobDetail returns an active job, and whether callerID has already applied
// to it. Inactive and missing jobs are both NotFound regardless of caller.
func (s *JobServiceImpl) GetJobDetail(jobID uint, callerID *uint) (*models.Job, bool, error) {
	job, err := s.jobRepo.FindActiveByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, false, apperrors.ErrJobNotFound
		}
		return nil, false, apperrors.InternalError(err)
	}

	hasApplied := false
	if callerID != nil {
		hasApplied, err = s.applicationRepo.Exists(job.ID, *callerID)
		if err != nil {
			return nil, false, apperrors.InternalError(err)
		}
	}

	return job, hasApplied, nil
}
