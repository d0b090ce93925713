package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeoPoint is a GeoJSON point stored in a 2dsphere-indexed field.
// Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type" bson:"type" example:"Point"`
	Coordinates []float64 `json:"coordinates" bson:"coordinates" binding:"omitempty,coordinates" example:"-74.0,40.7"`
	City        string    `json:"city,omitempty" bson:"city,omitempty" example:"New York"`
	State       string    `json:"state,omitempty" bson:"state,omitempty" example:"NY"`
	ZipCode     string    `json:"zipcode,omitempty" bson:"zipcode,omitempty" example:"10001"`
}

// Applicant records a user's application to a job.
type Applicant struct {
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	ResumeKey string             `json:"-" bson:"resumeKey"`
	AppliedAt time.Time          `json:"appliedAt" bson:"appliedAt"`
}

// Job represents a job posting.
// The "experiance" spelling is kept for compatibility with stored documents.
type Job struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title        string             `json:"title" bson:"title" example:"Backend Engineer"`
	Slug         string             `json:"slug" bson:"slug" example:"backend-engineer"`
	Description  string             `json:"description" bson:"description" example:"Build and run our Go services."`
	Email        string             `json:"email" bson:"email" example:"jobs@example.com"`
	Address      string             `json:"address" bson:"address" example:"651 Rr 2, Oquawka, IL"`
	Location     *GeoPoint          `json:"location,omitempty" bson:"location,omitempty"`
	Company      string             `json:"company" bson:"company" example:"Knack Ltd"`
	Industry     []string           `json:"industry" bson:"industry" example:"Information Technology"`
	JobType      string             `json:"jobType" bson:"jobType" example:"permanent"`
	MinEducation string             `json:"minEducation" bson:"minEducation" example:"bachelors"`
	Experiance   string             `json:"experiance" bson:"experiance" example:"senior"`
	Salary       float64            `json:"salary" bson:"salary" example:"90000"`
	Positions    int                `json:"positions" bson:"positions" example:"2"`
	PostingDate  time.Time          `json:"postingDate" bson:"postingDate"`
	LastDate     time.Time          `json:"lastDate" bson:"lastDate"`
	Applicants   []Applicant        `json:"applicants,omitempty" bson:"applicants,omitempty"`
	User         primitive.ObjectID `json:"user" bson:"user"`
}

// CreateJobRequest is the payload for publishing a job.
type CreateJobRequest struct {
	Title        string    `json:"title" binding:"required,max=100" example:"Backend Engineer"`
	Slug         string    `json:"slug" binding:"required,slug" example:"backend-engineer"`
	Description  string    `json:"description" binding:"required,max=1000" example:"Build and run our Go services."`
	Email        string    `json:"email" binding:"omitempty,email" example:"jobs@example.com"`
	Address      string    `json:"address" binding:"required" example:"651 Rr 2, Oquawka, IL"`
	Location     *GeoPoint `json:"location" binding:"omitempty"`
	Company      string    `json:"company" binding:"required" example:"Knack Ltd"`
	Industry     []string  `json:"industry" binding:"max=5" example:"Information Technology"`
	JobType      string    `json:"jobType" binding:"omitempty,oneof=permanent temporary internship" example:"permanent"`
	MinEducation string    `json:"minEducation" binding:"omitempty,oneof=bachelors masters phd" example:"bachelors"`
	Experiance   string    `json:"experiance" binding:"omitempty" example:"senior"`
	Salary       float64   `json:"salary" binding:"required,gt=0" example:"90000"`
	Positions    int       `json:"positions" binding:"required,gt=0" example:"2"`
	LastDate     time.Time `json:"lastDate" binding:"omitempty"`
}

// UpdateJobRequest is the payload for a partial job update.
type UpdateJobRequest struct {
	Title        *string    `json:"title" binding:"omitempty,max=100"`
	Slug         *string    `json:"slug" binding:"omitempty,slug"`
	Description  *string    `json:"description" binding:"omitempty,max=1000"`
	Email        *string    `json:"email" binding:"omitempty,email"`
	Address      *string    `json:"address" binding:"omitempty"`
	Location     *GeoPoint  `json:"location" binding:"omitempty"`
	Company      *string    `json:"company" binding:"omitempty"`
	Industry     []string   `json:"industry" binding:"omitempty,max=5"`
	JobType      *string    `json:"jobType" binding:"omitempty,oneof=permanent temporary internship"`
	MinEducation *string    `json:"minEducation" binding:"omitempty,oneof=bachelors masters phd"`
	Experiance   *string    `json:"experiance" binding:"omitempty"`
	Salary       *float64   `json:"salary" binding:"omitempty,gt=0"`
	Positions    *int       `json:"positions" binding:"omitempty,gt=0"`
	LastDate     *time.Time `json:"lastDate" binding:"omitempty"`
}

// JobStats is one aggregation bucket of the per-topic statistics,
// grouped by upper-cased experience level.
type JobStats struct {
	Experiance  string  `json:"experiance" bson:"_id" example:"SENIOR"`
	TotalJobs   int     `json:"totalJobs" bson:"totalJobs" example:"12"`
	AvgPosition float64 `json:"avgPosition" bson:"avgPosition" example:"2.5"`
	AvgSalary   float64 `json:"avgSalary" bson:"avgSalary" example:"85000"`
	MinSalary   float64 `json:"minSalary" bson:"minSalary" example:"60000"`
	MaxSalary   float64 `json:"maxSalary" bson:"maxSalary" example:"120000"`
}

// ApplyResponse is returned when a user applies to a job. The caller
// uploads the resume to UploadURL with an HTTP PUT.
type ApplyResponse struct {
	UploadURL string `json:"uploadUrl" example:"https://bucket.s3.amazonaws.com/resumes/...?X-Amz-Signature=..."`
}
