// Package mocks provides mock implementations of repository interfaces for testing.
package mocks

import (
	"context"
	"time"

	"gin-jobs/internal/models"
	"gin-jobs/internal/query"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	CreateFunc           func(ctx context.Context, user *models.User) error
	FindByIDFunc         func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmailFunc      func(ctx context.Context, email string) (*models.User, error)
	FindAllFunc          func(ctx context.Context) ([]models.User, error)
	UpdateFunc           func(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error)
	DeleteFunc           func(ctx context.Context, id primitive.ObjectID) error
	UpdatePasswordFunc   func(ctx context.Context, id primitive.ObjectID, hashedPassword string) error
	SetResetTokenFunc    func(ctx context.Context, id primitive.ObjectID, tokenHash string, expire time.Time) error
	FindByResetTokenFunc func(ctx context.Context, tokenHash string) (*models.User, error)
	ClearResetTokenFunc  func(ctx context.Context, id primitive.ObjectID) error
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, user)
	}
	return nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateUserRequest) (*models.User, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id primitive.ObjectID, hashedPassword string) error {
	if m.UpdatePasswordFunc != nil {
		return m.UpdatePasswordFunc(ctx, id, hashedPassword)
	}
	return nil
}

func (m *MockUserRepository) SetResetToken(ctx context.Context, id primitive.ObjectID, tokenHash string, expire time.Time) error {
	if m.SetResetTokenFunc != nil {
		return m.SetResetTokenFunc(ctx, id, tokenHash, expire)
	}
	return nil
}

func (m *MockUserRepository) FindByResetToken(ctx context.Context, tokenHash string) (*models.User, error) {
	if m.FindByResetTokenFunc != nil {
		return m.FindByResetTokenFunc(ctx, tokenHash)
	}
	return nil, nil
}

func (m *MockUserRepository) ClearResetToken(ctx context.Context, id primitive.ObjectID) error {
	if m.ClearResetTokenFunc != nil {
		return m.ClearResetTokenFunc(ctx, id)
	}
	return nil
}

// MockJobRepository is a mock implementation of JobRepository.
type MockJobRepository struct {
	CreateFunc           func(ctx context.Context, job *models.Job) error
	FindFunc             func(ctx context.Context, spec query.Spec) ([]models.Job, error)
	FindByIDFunc         func(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	FindByIDAndSlugFunc  func(ctx context.Context, id primitive.ObjectID, slug string) (*models.Job, error)
	FindWithinRadiusFunc func(ctx context.Context, longitude, latitude, radius float64) ([]models.Job, error)
	UpdateFunc           func(ctx context.Context, id primitive.ObjectID, update *models.UpdateJobRequest) (*models.Job, error)
	DeleteFunc           func(ctx context.Context, id primitive.ObjectID) error
	StatsFunc            func(ctx context.Context, topic string) ([]models.JobStats, error)
	AddApplicantFunc     func(ctx context.Context, id primitive.ObjectID, applicant models.Applicant) error
}

func (m *MockJobRepository) Create(ctx context.Context, job *models.Job) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, job)
	}
	return nil
}

func (m *MockJobRepository) Find(ctx context.Context, spec query.Spec) ([]models.Job, error) {
	if m.FindFunc != nil {
		return m.FindFunc(ctx, spec)
	}
	return nil, nil
}

func (m *MockJobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockJobRepository) FindByIDAndSlug(ctx context.Context, id primitive.ObjectID, slug string) (*models.Job, error) {
	if m.FindByIDAndSlugFunc != nil {
		return m.FindByIDAndSlugFunc(ctx, id, slug)
	}
	return nil, nil
}

func (m *MockJobRepository) FindWithinRadius(ctx context.Context, longitude, latitude, radius float64) ([]models.Job, error) {
	if m.FindWithinRadiusFunc != nil {
		return m.FindWithinRadiusFunc(ctx, longitude, latitude, radius)
	}
	return nil, nil
}

func (m *MockJobRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateJobRequest) (*models.Job, error) {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, update)
	}
	return nil, nil
}

func (m *MockJobRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockJobRepository) Stats(ctx context.Context, topic string) ([]models.JobStats, error) {
	if m.StatsFunc != nil {
		return m.StatsFunc(ctx, topic)
	}
	return nil, nil
}

func (m *MockJobRepository) AddApplicant(ctx context.Context, id primitive.ObjectID, applicant models.Applicant) error {
	if m.AddApplicantFunc != nil {
		return m.AddApplicantFunc(ctx, id, applicant)
	}
	return nil
}
