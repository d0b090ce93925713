// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User roles.
const (
	RoleUser     = "user"
	RoleEmployer = "employer"
	RoleAdmin    = "admin"
)

// User represents an account in the system.
type User struct {
	ID                  primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Name                string             `json:"name" bson:"name" example:"John Doe"`
	Email               string             `json:"email" bson:"email" example:"user@example.com"`
	Role                string             `json:"role" bson:"role" example:"employer"`
	Password            string             `json:"-" bson:"password"` // "-" = never include in JSON response
	CreatedAt           time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	ResetPasswordToken  string             `json:"-" bson:"resetPasswordToken,omitempty"`
	ResetPasswordExpire *time.Time         `json:"-" bson:"resetPasswordExpire,omitempty"`
}

// RegisterRequest is the payload for creating an account.
// Admin accounts cannot be self-registered.
type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2" example:"John Doe"`
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required,min=8" example:"secret123"`
	Role     string `json:"role" binding:"omitempty,oneof=user employer" example:"employer"`
}

// LoginRequest is the payload for logging in.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"user@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// AuthResponse is returned after successful registration, login or
// password reset.
type AuthResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  User   `json:"user"`
}

// UpdateUserRequest is the payload for updating an account (admin only).
type UpdateUserRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=2" example:"Jane Doe"`
	Email *string `json:"email" binding:"omitempty,email" example:"newemail@example.com"`
	Role  *string `json:"role" binding:"omitempty,oneof=user employer admin" example:"employer"`
}

// UpdatePasswordRequest is the payload for changing the current password.
type UpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required" example:"secret123"`
	NewPassword     string `json:"newPassword" binding:"required,min=8" example:"newsecret456"`
}

// ForgotPasswordRequest is the payload for requesting a password reset.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email" example:"user@example.com"`
}

// ResetPasswordRequest is the payload for completing a password reset.
type ResetPasswordRequest struct {
	Password string `json:"password" binding:"required,min=8" example:"newsecret456"`
}
