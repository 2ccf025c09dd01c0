package repositories

import (
	"errors"

	"jobboard_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and applicant")
)

type ApplicationRepository interface {
	Create(application *models.Application) error
	FindByID(id uint) (*models.Application, error)
	Exists(jobID, applicantID uint) (bool, error)
	ListByApplicant(applicantID uint) ([]models.Application, error)
	ListByJob(jobID uint) ([]models.Application, error)
	CountByPoster(posterID uint) (int64, error)
	UpdateStatus(id uint, status models.ApplicationStatus) error
}

type ApplicationRepositoryImpl struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &ApplicationRepositoryImpl{db: db}
}

// Create inserts the application. The (job_id, applicant_id) unique index is
// what actually guards against concurrent duplicate submissions; the violation
// is surfaced as ErrDuplicateApplication.
func (r *ApplicationRepositoryImpl) Create(application *models.Application) error {
	err := r.db.Create(application).Error
	if err != nil && isUniqueViolation(err) {
		return ErrDuplicateApplication
	}
	return err
}

func (r *ApplicationRepositoryImpl) FindByID(id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.Preload("Job").Preload("Applicant").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *ApplicationRepositoryImpl) Exists(jobID, applicantID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) ListByApplicant(applicantID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Job").Where("applicant_id = ?", applicantID).
		Order("applied_at DESC").Find(&applications).Error
	return applications, err
}

func (r *ApplicationRepositoryImpl) ListByJob(jobID uint) ([]models.Application, error) {
	var applications []models.Application
	err := r.db.Preload("Applicant").Where("job_id = ?", jobID).
		Order("applied_at DESC").Find(&applications).Error
	return applications, err
}

// CountByPoster counts applications across every job posted by posterID.
func (r *ApplicationRepositoryImpl) CountByPoster(posterID uint) (int64, error) {
	var count int64
	err := r.db.Model(&models.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("jobs.posted_by_id = ?", posterID).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) UpdateStatus(id uint, status models.ApplicationStatus) error {
	result := r.db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
