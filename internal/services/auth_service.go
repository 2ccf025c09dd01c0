package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"jobboard_backend/internal/auth"
	"jobboard_backend/internal/config"
	"jobboard_backend/internal/models"
	"jobboard_backend/internal/repositories"
	"jobboard_backend/internal/services/dto"
	"jobboard_backend/pkg/apperrors"
)

type AuthService interface {
	Register(req *dto.RegisterRequest) (*models.User, error)
	Authenticate(username, password string) (*models.User, error)
	IssueTokens(user *models.User) (*dto.TokenPairResponse, error)
	Refresh(refreshToken string) (string, error)
	Logout(refreshToken string) error
	ChangePassword(userID uint, currentPassword, newPassword string) error
	GetUser(userID uint) (*models.User, error)
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

func NewAuthService(
	userRepo repositories.UserRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Register creates a user after form-level checks. Collisions surface as the
// same field-level messages the registration form shows for any other invalid
// input; nothing beyond that leaks.
func (s *AuthServiceImpl) Register(req *dto.RegisterRequest) (*models.User, error) {
	fieldErrors := make(map[string]string)

	if req.Password1 != req.Password2 {
		fieldErrors["password2"] = apperrors.ErrPasswordMismatch.Message
	} else if err := auth.ValidatePassword(req.Password1); err != nil {
		fieldErrors["password1"] = apperrors.ErrWeakPassword.Message
	}

	if taken, err := s.userRepo.UsernameExists(req.Username); err != nil {
		return nil, apperrors.InternalError(err)
	} else if taken {
		fieldErrors["username"] = apperrors.ErrUsernameAlreadyExists.Message
	}

	if taken, err := s.userRepo.EmailExists(req.Email); err != nil {
		return nil, apperrors.InternalError(err)
	} else if taken {
		fieldErrors["email"] = apperrors.ErrEmailAlreadyExists.Message
	}

	if len(fieldErrors) > 0 {
		return nil, apperrors.ValidationError(fieldErrors)
	}

	hashedPassword, err := auth.HashPassword(req.Password1)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			// Lost a race with a concurrent registration.
			return nil, apperrors.ValidationError(map[string]string{
				"username": apperrors.ErrUsernameAlreadyExists.Message,
			})
		}
		return nil, apperrors.InternalError(err)
	}

	return user, nil
}

// Authenticate verifies credentials without disclosing which one was wrong.
func (s *AuthServiceImpl) Authenticate(username, password string) (*models.User, error) {
	user, err := s.userRepo.FindByUsername(username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return user, nil
}

// IssueTokens returns a signed access token plus a stored refresh token.
func (s *AuthServiceImpl) IssueTokens(user *models.User) (*dto.TokenPairResponse, error) {
	accessToken, err := auth.GenerateAccessToken(user.ID, user.Username, user.IsAdmin())
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := s.createRefreshToken(user.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenPairResponse{
		Access:  accessToken,
		Refresh: refreshToken,
	}, nil
}

// Refresh exchanges a valid refresh token for a new access token. The refresh
// token itself stays valid until its expiry.
func (s *AuthServiceImpl) Refresh(refreshToken string) (string, error) {
	token, err := s.refreshTokenRepo.FindByToken(refreshToken)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		s.refreshTokenRepo.DeleteByToken(refreshToken)
		return "", apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return "", apperrors.ErrInvalidToken
	}

	accessToken, err := auth.GenerateAccessToken(user.ID, user.Username, user.IsAdmin())
	if err != nil {
		return "", apperrors.InternalError(err)
	}

	return accessToken, nil
}

// Logout invalidates a refresh token. Always succeeds for unknown tokens.
func (s *AuthServiceImpl) Logout(refreshToken string) error {
	return s.refreshTokenRepo.DeleteByToken(refreshToken)
}

func (s *AuthServiceImpl) ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return err
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}
	user.PasswordHash = hashedPassword

	if err := s.userRepo.Update(user); err != nil {
		return apperrors.InternalError(err)
	}

	// Force re-login on other devices.
	s.refreshTokenRepo.DeleteByUserID(userID)
	return nil
}

func (s *AuthServiceImpl) GetUser(userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

func (s *AuthServiceImpl) createRefreshToken(userID uint) (string, error) {
	cfg := config.GetConfig()

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", err
	}
	token := hex.EncodeToString(raw)

	refreshToken := &models.RefreshToken{
		UserID:    userID,
		Token:     token,
		ExpiresAt: time.Now().Add(time.Duration(cfg.JWT.RefreshTTL) * time.Hour),
	}

	if err := s.refreshTokenRepo.Create(refreshToken); err != nil {
		return "", err
	}

	return token, nil
}
