// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"
	"net/url"

	"gin-jobs/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	RegisterFunc       func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	LoginFunc          func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error)
	UpdatePasswordFunc func(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) error
	ForgotPasswordFunc func(ctx context.Context, email string) error
	ResetPasswordFunc  func(ctx context.Context, token, newPassword string) (*models.AuthResponse, error)
}

func (m *MockAuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if m.LoginFunc != nil {
		return m.LoginFunc(ctx, req)
	}
	return nil, nil
}

func (m *MockAuthService) UpdatePassword(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, userID, req)
	}
	return nil
}

func (m *MockAuthService) ForgotPassword(ctx context.Context, email string) error {
	if m.ForgotPasswordFunc != nil {
		return m.ForgotPasswordFunc(ctx, email)
	}
	return nil
}

func (m *MockAuthService) ResetPassword(ctx context.Context, token, newPassword string) (*models.AuthResponse, error) {
	if m.ResetPasswordFunc != nil {
		return m.ResetPasswordFunc(ctx, token, newPassword)
	}
	return nil, nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	GetUserFunc     func(ctx context.Context, id string) (*models.User, error)
	GetAllUsersFunc func(ctx context.Context) ([]models.User, error)
	UpdateUserFunc  func(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error)
	DeleteUserFunc  func(ctx context.Context, id string) error
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	if m.GetAllUsersFunc != nil {
		return m.GetAllUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, req *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, req)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockJobService is a mock implementation of JobServicer.
type MockJobService struct {
	ListJobsFunc     func(ctx context.Context, params url.Values) ([]models.Job, error)
	JobsInRadiusFunc func(ctx context.Context, zipcode string, distance float64) ([]models.Job, error)
	CreateJobFunc    func(ctx context.Context, userID primitive.ObjectID, req *models.CreateJobRequest) (*models.Job, error)
	GetJobFunc       func(ctx context.Context, id, slug string) (*models.Job, error)
	UpdateJobFunc    func(ctx context.Context, id string, caller *models.User, req *models.UpdateJobRequest) (*models.Job, error)
	DeleteJobFunc    func(ctx context.Context, id string, caller *models.User) error
	StatsFunc        func(ctx context.Context, topic string) ([]models.JobStats, error)
	ApplyFunc        func(ctx context.Context, jobID string, userID primitive.ObjectID) (*models.ApplyResponse, error)
}

func (m *MockJobService) ListJobs(ctx context.Context, params url.Values) ([]models.Job, error) {
	if m.ListJobsFunc != nil {
		return m.ListJobsFunc(ctx, params)
	}
	return nil, nil
}

func (m *MockJobService) JobsInRadius(ctx context.Context, zipcode string, distance float64) ([]models.Job, error) {
	if m.JobsInRadiusFunc != nil {
		return m.JobsInRadiusFunc(ctx, zipcode, distance)
	}
	return nil, nil
}

func (m *MockJobService) CreateJob(ctx context.Context, userID primitive.ObjectID, req *models.CreateJobRequest) (*models.Job, error) {
	if m.CreateJobFunc != nil {
		return m.CreateJobFunc(ctx, userID, req)
	}
	return nil, nil
}

func (m *MockJobService) GetJob(ctx context.Context, id, slug string) (*models.Job, error) {
	if m.GetJobFunc != nil {
		return m.GetJobFunc(ctx, id, slug)
	}
	return nil, nil
}

func (m *MockJobService) UpdateJob(ctx context.Context, id string, caller *models.User, req *models.UpdateJobRequest) (*models.Job, error) {
	if m.UpdateJobFunc != nil {
		return m.UpdateJobFunc(ctx, id, caller, req)
	}
	return nil, nil
}

func (m *MockJobService) DeleteJob(ctx context.Context, id string, caller *models.User) error {
	if m.DeleteJobFunc != nil {
		return m.DeleteJobFunc(ctx, id, caller)
	}
	return nil
}

func (m *MockJobService) Stats(ctx context.Context, topic string) ([]models.JobStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, topic)
	}
	return nil, nil
}

func (m *MockJobService) Apply(ctx context.Context, jobID string, userID primitive.ObjectID) (*models.ApplyResponse, error) {
	if m.ApplyFunc != nil {
		return m.ApplyFunc(ctx, jobID, userID)
	}
	return nil, nil
}
