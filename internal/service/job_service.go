package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"gin-jobs/internal/cache"
	apperrors "gin-jobs/internal/errors"
	"gin-jobs/internal/geocode"
	"gin-jobs/internal/models"
	"gin-jobs/internal/query"
	"gin-jobs/internal/repository"
	"gin-jobs/internal/storage"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// earthRadiusMiles converts a distance in miles into the radians
	// expected by $centerSphere.
	earthRadiusMiles = 3963

	jobCacheTTL   = 5 * time.Minute
	statsCacheTTL = 10 * time.Minute

	resumeUploadExpiry = 15 * time.Minute
)

// JobService handles job business logic.
type JobService struct {
	jobRepo  repository.JobRepository
	geocoder geocode.Geocoder
	cache    cache.Cache
	storage  storage.Storage
}

// NewJobService creates a new JobService.
func NewJobService(jobRepo repository.JobRepository, geocoder geocode.Geocoder, c cache.Cache, st storage.Storage) *JobService {
	return &JobService{
		jobRepo:  jobRepo,
		geocoder: geocoder,
		cache:    c,
		storage:  st,
	}
}

// ListJobs returns jobs matching the request query string. Filtering,
// keyword search, field selection, sorting and pagination all come from
// the query builder.
func (s *JobService) ListJobs(ctx context.Context, params url.Values) ([]models.Job, error) {
	spec := query.New(params).
		Filter().
		Search().
		LimitFields().
		Sort().
		Paginate().
		Build()

	return s.jobRepo.Find(ctx, spec)
}

// JobsInRadius returns jobs within distance miles of the given zipcode.
func (s *JobService) JobsInRadius(ctx context.Context, zipcode string, distance float64) ([]models.Job, error) {
	locations, err := s.geocoder.Geocode(ctx, zipcode)
	if err != nil {
		return nil, err
	}

	loc, err := geocode.First(locations)
	if err != nil {
		return nil, err
	}

	radius := distance / earthRadiusMiles
	return s.jobRepo.FindWithinRadius(ctx, loc.Longitude, loc.Latitude, radius)
}

// CreateJob publishes a new job owned by userID.
func (s *JobService) CreateJob(ctx context.Context, userID primitive.ObjectID, req *models.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:        req.Title,
		Slug:         req.Slug,
		Description:  req.Description,
		Email:        req.Email,
		Address:      req.Address,
		Location:     req.Location,
		Company:      req.Company,
		Industry:     req.Industry,
		JobType:      req.JobType,
		MinEducation: req.MinEducation,
		Experiance:   req.Experiance,
		Salary:       req.Salary,
		Positions:    req.Positions,
		LastDate:     req.LastDate,
		User:         userID,
	}

	if err := s.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// GetJob retrieves a job by ID and slug, reading through the cache.
// The cache key is the ID alone, so a hit is still checked against the
// requested slug.
func (s *JobService) GetJob(ctx context.Context, id, slug string) (*models.Job, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrJobNotFound
	}

	var cached models.Job
	if hit, err := s.cache.Get(ctx, cache.JobCacheKey(id), &cached); err == nil && hit {
		if cached.Slug == slug {
			return &cached, nil
		}
		return nil, apperrors.ErrJobNotFound
	}

	job, err := s.jobRepo.FindByIDAndSlug(ctx, objectID, slug)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, cache.JobCacheKey(id), job, jobCacheTTL)
	return job, nil
}

// UpdateJob applies a partial update. Only the publishing user or an
// admin may update a job.
func (s *JobService) UpdateJob(ctx context.Context, id string, caller *models.User, req *models.UpdateJobRequest) (*models.Job, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrJobNotFound
	}

	job, err := s.jobRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}
	if job.User != caller.ID && caller.Role != models.RoleAdmin {
		return nil, apperrors.ErrNotJobOwner
	}

	updated, err := s.jobRepo.Update(ctx, objectID, req)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.JobCacheKey(id))
	return updated, nil
}

// DeleteJob removes a job. Only the publishing user or an admin may
// delete a job.
func (s *JobService) DeleteJob(ctx context.Context, id string, caller *models.User) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrJobNotFound
	}

	job, err := s.jobRepo.FindByID(ctx, objectID)
	if err != nil {
		return err
	}
	if job.User != caller.ID && caller.Role != models.RoleAdmin {
		return apperrors.ErrNotJobOwner
	}

	if err := s.jobRepo.Delete(ctx, objectID); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.JobCacheKey(id))
	return nil
}

// Stats returns aggregated statistics for jobs matching topic, reading
// through the cache.
func (s *JobService) Stats(ctx context.Context, topic string) ([]models.JobStats, error) {
	var cached []models.JobStats
	if hit, err := s.cache.Get(ctx, cache.StatsCacheKey(topic), &cached); err == nil && hit {
		return cached, nil
	}

	stats, err := s.jobRepo.Stats(ctx, topic)
	if err != nil {
		return nil, err
	}

	if len(stats) > 0 {
		_ = s.cache.Set(ctx, cache.StatsCacheKey(topic), stats, statsCacheTTL)
	}
	return stats, nil
}

// Apply records userID as an applicant and returns a pre-signed URL for
// the resume upload. A user may apply to a given job once.
func (s *JobService) Apply(ctx context.Context, jobID string, userID primitive.ObjectID) (*models.ApplyResponse, error) {
	objectID, err := primitive.ObjectIDFromHex(jobID)
	if err != nil {
		return nil, apperrors.ErrJobNotFound
	}

	job, err := s.jobRepo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	if !job.LastDate.IsZero() && time.Now().After(job.LastDate) {
		return nil, apperrors.ErrJobClosed
	}

	for _, applicant := range job.Applicants {
		if applicant.UserID == userID {
			return nil, apperrors.ErrAlreadyApplied
		}
	}

	resumeKey := fmt.Sprintf("resumes/%s/%s.pdf", jobID, userID.Hex())
	uploadURL, err := s.storage.PresignUpload(ctx, resumeKey, "application/pdf", resumeUploadExpiry)
	if err != nil {
		return nil, err
	}

	applicant := models.Applicant{
		UserID:    userID,
		ResumeKey: resumeKey,
		AppliedAt: time.Now(),
	}
	if err := s.jobRepo.AddApplicant(ctx, objectID, applicant); err != nil {
		return nil, err
	}

	return &models.ApplyResponse{UploadURL: uploadURL}, nil
}
