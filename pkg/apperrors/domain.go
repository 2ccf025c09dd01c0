package apperrors

import (
	"net/http"
)

// Factories for wrapping repository errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// Predefined errors for the job-board domain.

var ErrJobNotFound = New(
	CodeNotFound,
	"jobs",
	"Job not found",
	http.StatusNotFound,
)

var ErrCategoryNotFound = New(
	CodeNotFound,
	"jobs",
	"Category not found",
	http.StatusNotFound,
)

var ErrApplicationNotFound = New(
	CodeNotFound,
	"applications",
	"Application not found",
	http.StatusNotFound,
)

// ErrAlreadyApplied carries the exact message the API contract promises for a
// duplicate (job, applicant) pair. HTTP 400, not 409, to match existing clients.
var ErrAlreadyApplied = New(
	CodeConflict,
	"applications",
	"You have already applied for this job",
	http.StatusBadRequest,
)

var ErrInvalidApplicationStatus = New(
	CodeInvalidOperation,
	"applications",
	"Invalid application status",
	http.StatusBadRequest,
)

var ErrInsufficientPermissions = New(
	CodeForbidden,
	"auth",
	"Insufficient permissions",
	http.StatusForbidden,
)

var ErrUsernameAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"A user with that username already exists",
	http.StatusConflict,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"auth",
	"A user with that email already exists",
	http.StatusConflict,
)

// ErrInvalidCredentials deliberately does not say which credential was wrong.
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"No active account found with the given credentials",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Token is invalid or expired",
	http.StatusUnauthorized,
)

var ErrWeakPassword = New(
	CodeValidationFailed,
	"validation",
	"Password must be at least 8 characters and not entirely numeric",
	http.StatusBadRequest,
)

var ErrPasswordMismatch = New(
	CodeValidationFailed,
	"validation",
	"The two password fields didn't match",
	http.StatusBadRequest,
)

var ErrResumeTooLarge = New(
	CodeValidationFailed,
	"validation",
	"Resume file exceeds the allowed size",
	http.StatusRequestEntityTooLarge,
)

var ErrInvalidResumeType = New(
	CodeValidationFailed,
	"validation",
	"Resume file type is not allowed",
	http.StatusUnsupportedMediaType,
)
