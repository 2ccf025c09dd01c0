package handlers

import (
	"context"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

// Stub services for driving the handlers over HTTP.

type stubAuthService struct {
	users        map[string]*models.User // by username; password is "sturdy-pass-9"
	refreshToken string
}

func newStubAuthService(users ...*models.User) *stubAuthService {
	s := &stubAuthService{users: make(map[string]*models.User), refreshToken: "refresh-token-1"}
	for _, u := range users {
		s.users[u.Username] = u
	}
	return s
}

func (s *stubAuthService) Register(req *dto.RegisterRequest) (*models.User, error) {
	if _, ok := s.users[req.Username]; ok {
		return nil, apperrors.ValidationError(map[string]string{
			"username": apperrors.ErrUsernameAlreadyExists.Message,
		})
	}
	user := &models.User{ID: uint(len(s.users) + 1), Username: req.Username, Email: req.Email}
	s.users[req.Username] = user
	return user, nil
}

func (s *stubAuthService) Authenticate(username, password string) (*models.User, error) {
	user, ok := s.users[username]
	if !ok || password != "sturdy-pass-9" {
		return nil, apperrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s *stubAuthService) IssueTokens(user *models.User) (*dto.TokenPairResponse, error) {
	access, err := auth.GenerateAccessToken(user.ID, user.Username, user.IsAdmin())
	if err != nil {
		return nil, err
	}
	return &dto.TokenPairResponse{Access: access, Refresh: s.refreshToken}, nil
}

func (s *stubAuthService) Refresh(refreshToken string) (string, error) {
	if refreshToken != s.refreshToken {
		return "", apperrors.ErrInvalidToken
	}
	for _, u := range s.users {
		return auth.GenerateAccessToken(u.ID, u.Username, u.IsAdmin())
	}
	return "", apperrors.ErrInvalidToken
}

func (s *stubAuthService) Logout(string) error { return nil }

func (s *stubAuthService) ChangePassword(uint, string, string) error { return nil }

func (s *stubAuthService) GetUser(userID uint) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return nil, apperrors.ErrNotFound(nil)
}

type stubJobService struct {
	jobs       []models.Job
	categories []models.Category
}

func (s *stubJobService) ListActiveJobs(categoryID *uint) ([]models.Job, []models.Category, error) {
	var out []models.Job
	for _, j := range s.jobs {
		if !j.IsActive {
			continue
		}
		if categoryID != nil && (j.CategoryID == nil || *j.CategoryID != *categoryID) {
			continue
		}
		out = append(out, j)
	}
	return out, s.categories, nil
}

func (s *stubJobService) GetJobDetail(jobID uint, callerID *uint) (*models.Job, bool, error) {
	for i := range s.jobs {
		if s.jobs[i].ID == jobID && s.jobs[i].IsActive {
			return &s.jobs[i], false, nil
		}
	}
	return nil, false, apperrors.ErrJobNotFound
}

type stubApplicationService struct {
	submitErr    error
	submitted    []models.Application
	applications []models.Application
}

func (s *stubApplicationService) Submit(_ context.Context, callerID, jobID uint, coverLetter string, resume *dto.ResumeUpload) (*models.Application, error) {
	if s.submitErr != nil {
		return nil, s.submitErr
	}
	if coverLetter == "" || resume == nil {
		errs := map[string]string{}
		if coverLetter == "" {
			errs["cover_letter"] = "This field is required"
		}
		if resume == nil {
			errs["resume"] = "This field is required"
		}
		return nil, apperrors.ValidationError(errs)
	}
	app := models.Application{
		ID:          uint(len(s.submitted) + 1),
		JobID:       jobID,
		ApplicantID: callerID,
		CoverLetter: coverLetter,
		Resume:      "resumes/stub.pdf",
		Status:      models.ApplicationStatusPending,
	}
	s.submitted = append(s.submitted, app)
	return &app, nil
}

func (s *stubApplicationService) ListMine(callerID uint) ([]models.Application, error) {
	var out []models.Application
	for _, a := range s.applications {
		if a.ApplicantID == callerID {
			out = append(out, a)
		}
	}
	return out, nil
}

// stubAdminService treats exactly one caller as admin and owner of its job.
type stubAdminService struct {
	adminID       uint
	job           *models.Job
	applications  []models.Application
	categories    []models.Category
	created       []dto.CreateJobRequest
	activeCalls   map[uint]bool
	statusUpdates map[uint]string
}

func newStubAdminService(adminID uint, job *models.Job) *stubAdminService {
	return &stubAdminService{
		adminID:       adminID,
		job:           job,
		activeCalls:   make(map[uint]bool),
		statusUpdates: make(map[uint]string),
	}
}

func (s *stubAdminService) Dashboard(callerID uint) (*dto.DashboardData, error) {
	if callerID != s.adminID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	data := &dto.DashboardData{TotalApplications: int64(len(s.applications))}
	if s.job != nil {
		data.Jobs = []models.Job{*s.job}
	}
	return data, nil
}

func (s *stubAdminService) Categories() ([]models.Category, error) {
	return s.categories, nil
}

func (s *stubAdminService) CreateJob(callerID uint, req *dto.CreateJobRequest) (*models.Job, error) {
	if callerID != s.adminID {
		return nil, apperrors.ErrInsufficientPermissions
	}
	s.created = append(s.created, *req)
	return &models.Job{ID: 99, Title: req.Title, PostedByID: callerID}, nil
}

func (s *stubAdminService) ViewApplications(callerID, jobID uint) (*models.Job, []models.Application, error) {
	if callerID != s.adminID {
		return nil, nil, apperrors.ErrInsufficientPermissions
	}
	if s.job == nil || s.job.ID != jobID {
		return nil, nil, apperrors.ErrJobNotFound
	}
	return s.job, s.applications, nil
}

func (s *stubAdminService) SetJobActive(callerID, jobID uint, active bool) error {
	if callerID != s.adminID {
		return apperrors.ErrInsufficientPermissions
	}
	if s.job == nil || s.job.ID != jobID {
		return apperrors.ErrJobNotFound
	}
	s.activeCalls[jobID] = active
	return nil
}

func (s *stubAdminService) UpdateApplicationStatus(callerID, applicationID uint, status string) error {
	if callerID != s.adminID {
		return apperrors.ErrInsufficientPermissions
	}
	if !models.ValidApplicationStatus(status) {
		return apperrors.ErrInvalidApplicationStatus
	}
	s.statusUpdates[applicationID] = status
	return nil
}
