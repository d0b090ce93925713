package repository

import (
	"context"
	"errors"
	"time"

	apperrors "gin-jobs/internal/errors"
	"gin-jobs/internal/models"
	"gin-jobs/internal/query"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, job *models.Job) error
	Find(ctx context.Context, spec query.Spec) ([]models.Job, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error)
	FindByIDAndSlug(ctx context.Context, id primitive.ObjectID, slug string) (*models.Job, error)
	FindWithinRadius(ctx context.Context, longitude, latitude, radius float64) ([]models.Job, error)
	Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Stats(ctx context.Context, topic string) ([]models.JobStats, error)
	AddApplicant(ctx context.Context, id primitive.ObjectID, applicant models.Applicant) error
}

// jobRepository implements JobRepository using MongoDB.
type jobRepository struct {
	collection *mongo.Collection
}

// NewJobRepository creates a new JobRepository.
func NewJobRepository(db *mongo.Database) JobRepository {
	return &jobRepository{
		collection: db.Collection("jobs"),
	}
}

// Create inserts a new job posting.
func (r *jobRepository) Create(ctx context.Context, job *models.Job) error {
	job.PostingDate = time.Now()

	result, err := r.collection.InsertOne(ctx, job)
	if err != nil {
		return err
	}

	job.ID = result.InsertedID.(primitive.ObjectID)
	return nil
}

// Find runs a compiled query specification against the jobs collection.
func (r *jobRepository) Find(ctx context.Context, spec query.Spec) ([]models.Job, error) {
	opts := options.Find().
		SetSkip(spec.Skip).
		SetLimit(spec.Limit)
	if spec.Sort != nil {
		opts.SetSort(spec.Sort)
	}
	if spec.Projection != nil {
		opts.SetProjection(spec.Projection)
	}

	cursor, err := r.collection.Find(ctx, spec.Filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil
	if jobs == nil {
		jobs = []models.Job{}
	}

	return jobs, nil
}

// FindByID finds a job by its ID.
func (r *jobRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Job, error) {
	var job models.Job

	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	return &job, nil
}

// FindByIDAndSlug finds the job matching both the ID and the slug.
func (r *jobRepository) FindByIDAndSlug(ctx context.Context, id primitive.ObjectID, slug string) (*models.Job, error) {
	var job models.Job

	filter := bson.M{"$and": bson.A{
		bson.M{"_id": id},
		bson.M{"slug": slug},
	}}

	err := r.collection.FindOne(ctx, filter).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, err
	}

	return &job, nil
}

// FindWithinRadius returns jobs whose location falls inside a spherical
// cap centered on [longitude, latitude]. The radius is in radians.
func (r *jobRepository) FindWithinRadius(ctx context.Context, longitude, latitude, radius float64) ([]models.Job, error) {
	filter := bson.M{
		"location.coordinates": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{
					bson.A{longitude, latitude},
					radius,
				},
			},
		},
	}

	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}

	if jobs == nil {
		jobs = []models.Job{}
	}

	return jobs, nil
}

// Update applies a partial update and returns the updated job.
func (r *jobRepository) Update(ctx context.Context, id primitive.ObjectID, update *models.UpdateJobRequest) (*models.Job, error) {
	updateDoc := bson.M{}

	if update.Title != nil {
		updateDoc["title"] = *update.Title
	}
	if update.Slug != nil {
		updateDoc["slug"] = *update.Slug
	}
	if update.Description != nil {
		updateDoc["description"] = *update.Description
	}
	if update.Email != nil {
		updateDoc["email"] = *update.Email
	}
	if update.Address != nil {
		updateDoc["address"] = *update.Address
	}
	if update.Location != nil {
		updateDoc["location"] = update.Location
	}
	if update.Company != nil {
		updateDoc["company"] = *update.Company
	}
	if update.Industry != nil {
		updateDoc["industry"] = update.Industry
	}
	if update.JobType != nil {
		updateDoc["jobType"] = *update.JobType
	}
	if update.MinEducation != nil {
		updateDoc["minEducation"] = *update.MinEducation
	}
	if update.Experiance != nil {
		updateDoc["experiance"] = *update.Experiance
	}
	if update.Salary != nil {
		updateDoc["salary"] = *update.Salary
	}
	if update.Positions != nil {
		updateDoc["positions"] = *update.Positions
	}
	if update.LastDate != nil {
		updateDoc["lastDate"] = *update.LastDate
	}

	if len(updateDoc) == 0 {
		return r.FindByID(ctx, id)
	}

	result := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": updateDoc},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)

	if result.Err() != nil {
		if errors.Is(result.Err(), mongo.ErrNoDocuments) {
			return nil, apperrors.ErrJobNotFound
		}
		return nil, result.Err()
	}

	var job models.Job
	if err := result.Decode(&job); err != nil {
		return nil, err
	}

	return &job, nil
}

// Delete physically removes a job posting.
func (r *jobRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return apperrors.ErrJobNotFound
	}

	return nil
}

// Stats aggregates jobs matching a full-text topic search, grouped by
// upper-cased experience level.
func (r *jobRepository) Stats(ctx context.Context, topic string) ([]models.JobStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"$text": bson.M{"$search": "\"" + topic + "\""},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":         bson.M{"$toUpper": "$experiance"},
			"totalJobs":   bson.M{"$sum": 1},
			"avgPosition": bson.M{"$avg": "$positions"},
			"avgSalary":   bson.M{"$avg": "$salary"},
			"minSalary":   bson.M{"$min": "$salary"},
			"maxSalary":   bson.M{"$max": "$salary"},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var stats []models.JobStats
	if err := cursor.All(ctx, &stats); err != nil {
		return nil, err
	}

	if stats == nil {
		stats = []models.JobStats{}
	}

	return stats, nil
}

// AddApplicant appends an applicant entry to a job.
func (r *jobRepository) AddApplicant(ctx context.Context, id primitive.ObjectID, applicant models.Applicant) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$push": bson.M{"applicants": applicant}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return apperrors.ErrJobNotFound
	}
	return nil
}
