// Package service contains business logic for the application.
package service

import (
	"context"
	"net/url"

	"gin-jobs/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthServicer defines the interface for authentication operations.
type AuthServicer interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	UpdatePassword(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) (*models.AuthResponse, error)
}

// UserServicer defines the interface for user management operations.
type UserServicer interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// JobServicer defines the interface for job operations.
type JobServicer interface {
	ListJobs(ctx context.Context, params url.Values) ([]models.Job, error)
	JobsInRadius(ctx context.Context, zipcode string, distance float64) ([]models.Job, error)
	CreateJob(ctx context.Context, userID primitive.ObjectID, req *models.CreateJobRequest) (*models.Job, error)
	GetJob(ctx context.Context, id, slug string) (*models.Job, error)
	UpdateJob(ctx context.Context, id string, caller *models.User, req *models.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id string, caller *models.User) error
	Stats(ctx context.Context, topic string) ([]models.JobStats, error)
	Apply(ctx context.Context, jobID string, userID primitive.ObjectID) (*models.ApplyResponse, error)
}
