// Package server provides the HTTP REST API for cv-studio.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/adaeze/cv-studio/internal/interchange"
	"github.com/adaeze/cv-studio/internal/themes"
)

// ErrEmailAlreadyExists indicates email is already registered
type ErrEmailAlreadyExists struct {
	Email string
}

func (e *ErrEmailAlreadyExists) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// ErrInvalidCredentials indicates invalid login credentials
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// ErrUserNotFound indicates user was not found
type ErrUserNotFound struct {
	UserID uuid.UUID
}

func (e *ErrUserNotFound) Error() string {
	return fmt.Sprintf("user not found: %s", e.UserID)
}

// ErrPasswordMismatch indicates current password is incorrect
type ErrPasswordMismatch struct{}

func (e *ErrPasswordMismatch) Error() string {
	return "current password is incorrect"
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		emailExists   *ErrEmailAlreadyExists
		invalidCreds  *ErrInvalidCredentials
		userNotFound  *ErrUserNotFound
		passMismatch  *ErrPasswordMismatch
		validation    *ErrValidation
		parseErr      *interchange.ParseError
		validationErr *interchange.ValidationError
		themeErr      *themes.UnknownTemplateError
	)
	switch {
	case errors.As(err, &emailExists):
		return http.StatusConflict
	case errors.As(err, &invalidCreds), errors.As(err, &passMismatch):
		return http.StatusUnauthorized
	case errors.As(err, &userNotFound):
		return http.StatusNotFound
	case errors.As(err, &validation), errors.As(err, &parseErr),
		errors.As(err, &validationErr), errors.As(err, &themeErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
