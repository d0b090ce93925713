// Package errors provides custom error types for the application.
package errors

import "errors"

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrPasswordMismatch   = errors.New("current password is incorrect")
)

// Auth errors
var (
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidToken      = errors.New("invalid token")
	ErrResetTokenInvalid = errors.New("password reset token is invalid or has expired")
	ErrRoleNotAllowed    = errors.New("role is not allowed to access this resource")
)

// Job errors
var (
	ErrJobNotFound    = errors.New("Job Not Found.")
	ErrNotJobOwner    = errors.New("you can only modify jobs you have published")
	ErrAlreadyApplied = errors.New("you have already applied to this job")
	ErrJobClosed      = errors.New("the application deadline for this job has passed")
	ErrMailQueueFull  = errors.New("mail queue is full, please try again later")
)

// Geocoding errors
var (
	ErrLocationNotFound = errors.New("location not found for the given postal code")
)
