package services

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"jobboard_backend/internal/config"
	"jobboard_backend/internal/logger"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/internal/storage"
	"jobboard_backend/pkg/apperrors"

	"github.com/google/uuid"
)

type ApplicationService interface {
	Submit(ctx context.Context, callerID, jobID uint, coverLetter string, resume *dto.ResumeUpload) (*models.Application, error)
	ListMine(callerID uint) ([]models.Application, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	store           storage.Storage
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	store storage.Storage,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		store:           store,
	}
}

// Submit files an application for callerID against jobID. The existence
// pre-check gives a friendly early answer; the unique index on
// (job_id, applicant_id) is what actually decides a concurrent race, and its
// violation comes back as the same conflict error.
func (s *ApplicationServiceImpl) Submit(ctx context.Context, callerID, jobID uint, coverLetter string, resume *dto.ResumeUpload) (*models.Application, error) {
	job, err := s.jobRepo.FindActiveByID(jobID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	applied, err := s.applicationRepo.Exists(job.ID, callerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if applied {
		return nil, apperrors.ErrAlreadyApplied
	}

	fieldErrors := make(map[string]string)
	if strings.TrimSpace(coverLetter) == "" {
		fieldErrors["cover_letter"] = "This field is required"
	}
	if resume == nil || resume.Reader == nil {
		fieldErrors["resume"] = "This field is required"
	}
	if len(fieldErrors) > 0 {
		return nil, apperrors.ValidationError(fieldErrors)
	}

	if err := s.validateResume(resume); err != nil {
		return nil, err
	}

	resumePath := fmt.Sprintf("resumes/%s%s", uuid.NewString(), filepath.Ext(resume.Filename))
	if err := s.store.Save(ctx, resumePath, resume.Reader, resume.ContentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		JobID:       job.ID,
		ApplicantID: callerID,
		Resume:      resumePath,
		CoverLetter: coverLetter,
		Status:      models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(application); err != nil {
		// Keep the store free of orphans from the failed insert.
		if delErr := s.store.Delete(ctx, resumePath); delErr != nil {
			logger.CtxWithError(ctx, "failed to remove orphaned resume", delErr, "path", resumePath)
		}
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	return application, nil
}

// ListMine returns the caller's applications, job preloaded for enrichment.
func (s *ApplicationServiceImpl) ListMine(callerID uint) ([]models.Application, error) {
	applications, err := s.applicationRepo.ListByApplicant(callerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return applications, nil
}

func (s *ApplicationServiceImpl) validateResume(resume *dto.ResumeUpload) error {
	cfg := config.GetConfig()

	if resume.Size > cfg.Upload.MaxSize {
		return apperrors.ErrResumeTooLarge
	}

	mediaType := resume.ContentType
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = strings.TrimSpace(mediaType[:i])
	}
	for _, allowed := range cfg.Upload.AllowedTypes {
		if mediaType == allowed {
			return nil
		}
	}
	return apperrors.ErrInvalidResumeType
}
