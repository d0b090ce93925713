package repository

import (
	"context"
	"net/url"
	"testing"
	"time"

	apperrors "gin-jobs/internal/errors"
	"gin-jobs/internal/models"
	"gin-jobs/internal/query"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func seedJob(t *testing.T, repo JobRepository, title, slug, experiance string, salary float64, positions int, coords []float64) *models.Job {
	t.Helper()

	job := &models.Job{
		Title:       title,
		Slug:        slug,
		Description: "A " + title + " role",
		Address:     "651 Rr 2, Oquawka, IL",
		Company:     "Knack Ltd",
		Experiance:  experiance,
		Salary:      salary,
		Positions:   positions,
		User:        primitive.NewObjectID(),
	}
	if coords != nil {
		job.Location = &models.GeoPoint{Type: "Point", Coordinates: coords}
	}
	require.NoError(t, repo.Create(context.Background(), job))
	return job
}

func TestJobRepository_CreateAndFindByID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewJobRepository(tdb.Database)
	ctx := context.Background()

	t.Run("create sets id and posting date", func(t *testing.T) {
		tdb.ClearCollection(t, "jobs")

		job := seedJob(t, repo, "Backend Engineer", "backend-engineer", "senior", 90000, 2, nil)

		assert.False(t, job.ID.IsZero())
		assert.WithinDuration(t, time.Now(), job.PostingDate, 5*time.Second)

		found, err := repo.FindByID(ctx, job.ID)
		require.NoError(t, err)
		assert.Equal(t, "Backend Engineer", found.Title)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrJobNotFound, err)
	})
}

func TestJobRepository_Find(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewJobRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "jobs")
	seedJob(t, repo, "Backend Engineer", "backend-engineer", "senior", 90000, 2, nil)
	seedJob(t, repo, "Frontend Engineer", "frontend-engineer", "junior", 50000, 1, nil)
	seedJob(t, repo, "Data Analyst", "data-analyst", "junior", 40000, 3, nil)

	t.Run("salary comparison filter", func(t *testing.T) {
		params := url.Values{}
		params.Set("salary[gte]", "50000")

		spec := query.New(params).Filter().Search().LimitFields().Sort().Paginate().Build()
		jobs, err := repo.Find(ctx, spec)

		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})

	t.Run("keyword search on title", func(t *testing.T) {
		params := url.Values{}
		params.Set("keyword", "engineer")

		spec := query.New(params).Filter().Search().LimitFields().Sort().Paginate().Build()
		jobs, err := repo.Find(ctx, spec)

		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})

	t.Run("sort ascending by salary", func(t *testing.T) {
		params := url.Values{}
		params.Set("sort", "salary")

		spec := query.New(params).Filter().Search().LimitFields().Sort().Paginate().Build()
		jobs, err := repo.Find(ctx, spec)

		require.NoError(t, err)
		require.Len(t, jobs, 3)
		assert.Equal(t, float64(40000), jobs[0].Salary)
		assert.Equal(t, float64(90000), jobs[2].Salary)
	})

	t.Run("projection limits fields", func(t *testing.T) {
		params := url.Values{}
		params.Set("fields", "title")

		spec := query.New(params).Filter().Search().LimitFields().Sort().Paginate().Build()
		jobs, err := repo.Find(ctx, spec)

		require.NoError(t, err)
		require.NotEmpty(t, jobs)
		assert.NotEmpty(t, jobs[0].Title)
		assert.Empty(t, jobs[0].Company)
	})

	t.Run("page beyond results is empty, not an error", func(t *testing.T) {
		params := url.Values{}
		params.Set("page", "5")

		spec := query.New(params).Filter().Search().LimitFields().Sort().Paginate().Build()
		jobs, err := repo.Find(ctx, spec)

		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestJobRepository_FindByIDAndSlug(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewJobRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "jobs")
	job := seedJob(t, repo, "Backend Engineer", "backend-engineer", "senior", 90000, 2, nil)

	t.Run("both id and slug match", func(t *testing.T) {
		found, err := repo.FindByIDAndSlug(ctx, job.ID, "backend-engineer")

		require.NoError(t, err)
		assert.Equal(t, job.ID, found.ID)
	})

	t.Run("matching id with wrong slug is not found", func(t *testing.T) {
		_, err := repo.FindByIDAndSlug(ctx, job.ID, "frontend-engineer")

		assert.Equal(t, apperrors.ErrJobNotFound, err)
	})
}

func TestJobRepository_FindWithinRadius(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewJobRepository(tdb.Database)
	tdb.EnsureJobIndexes(t)
	ctx := context.Background()

	tdb.ClearCollection(t, "jobs")
	// Manhattan
	seedJob(t, repo, "NYC Job", "nyc-job", "senior", 90000, 1, []float64{-74.0, 40.7})
	// Los Angeles, far outside a 10 mile radius of NYC
	seedJob(t, repo, "LA Job", "la-job", "senior", 90000, 1, []float64{-118.2, 34.0})

	t.Run("finds jobs inside the spherical cap", func(t *testing.T) {
		radius := 10.0 / 3963.0
		jobs, err := repo.FindWithinRadius(ctx, -74.0, 40.7, radius)

		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, "NYC Job", jobs[0].Title)
	})

	t.Run("empty set is a valid outcome", func(t *testing.T) {
		radius := 1.0 / 3963.0
		jobs, err := repo.FindWithinRadius(ctx, 0, 0, radius)

		require.NoError(t, err)
		assert.Empty(t, jobs)
	})
}

func TestJobRepository_Update(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewJobRepository(tdb.Database)
	ctx := context.Background()

	t.Run("applies partial update and returns updated record", func(t *testing.T) {
		tdb.ClearCollection(t, "jobs")
		job := seedJob(t, repo, "Backend Engineer", "backend-engineer", "senior", 90000, 2, nil)

		newSalary := 95000.0
		updated, err := repo.Update(ctx, job.ID, &models.UpdateJobRequest{Salary: &newSalary})

		require.NoError(t, err)
		assert.Equal(t, newSalary, updated.Salary)
		assert.Equal(t, "Backend Engineer", updated.Title)
	})

	t.Run("missing id", func(t *testing.T) {
		title := "New Title"
		_, err := repo.Update(ctx, primitive.NewObjectID(), &models.UpdateJobRequest{Title: &title})

		assert.Equal(t, apperrors.ErrJobNotFound, err)
	})
}

func TestJobRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewJobRepository(tdb.Database)
	ctx := context.Background()

	t.Run("physically removes the job", func(t *testing.T) {
		tdb.ClearCollection(t, "jobs")
		job := seedJob(t, repo, "Backend Engineer", "backend-engineer", "senior", 90000, 2, nil)

		require.NoError(t, repo.Delete(ctx, job.ID))

		_, err := repo.FindByID(ctx, job.ID)
		assert.Equal(t, apperrors.ErrJobNotFound, err)
	})

	t.Run("missing id", func(t *testing.T) {
		err := repo.Delete(ctx, primitive.NewObjectID())

		assert.Equal(t, apperrors.ErrJobNotFound, err)
	})
}

func TestJobRepository_Stats(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewJobRepository(tdb.Database)
	tdb.EnsureJobIndexes(t)
	ctx := context.Background()

	tdb.ClearCollection(t, "jobs")
	seedJob(t, repo, "Go Developer", "go-developer", "senior", 90000, 2, nil)
	seedJob(t, repo, "Go Developer II", "go-developer-ii", "senior", 70000, 4, nil)
	seedJob(t, repo, "Go Intern", "go-intern", "junior", 30000, 1, nil)

	t.Run("groups by upper-cased experience level", func(t *testing.T) {
		stats, err := repo.Stats(ctx, "go")

		require.NoError(t, err)
		require.Len(t, stats, 2)

		byLevel := map[string]models.JobStats{}
		for _, s := range stats {
			byLevel[s.Experiance] = s
		}

		senior, ok := byLevel["SENIOR"]
		require.True(t, ok)
		assert.Equal(t, 2, senior.TotalJobs)
		assert.Equal(t, float64(80000), senior.AvgSalary)
		assert.Equal(t, float64(70000), senior.MinSalary)
		assert.Equal(t, float64(90000), senior.MaxSalary)
		assert.Equal(t, 3.0, senior.AvgPosition)
	})

	t.Run("unmatched topic yields empty stats", func(t *testing.T) {
		stats, err := repo.Stats(ctx, "astronaut")

		require.NoError(t, err)
		assert.Empty(t, stats)
	})
}

func TestJobRepository_AddApplicant(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewJobRepository(tdb.Database)
	ctx := context.Background()

	t.Run("appends applicant entry", func(t *testing.T) {
		tdb.ClearCollection(t, "jobs")
		job := seedJob(t, repo, "Backend Engineer", "backend-engineer", "senior", 90000, 2, nil)

		applicant := models.Applicant{
			UserID:    primitive.NewObjectID(),
			ResumeKey: "resumes/abc.pdf",
			AppliedAt: time.Now(),
		}
		require.NoError(t, repo.AddApplicant(ctx, job.ID, applicant))

		found, err := repo.FindByID(ctx, job.ID)
		require.NoError(t, err)
		require.Len(t, found.Applicants, 1)
		assert.Equal(t, applicant.UserID, found.Applicants[0].UserID)
	})

	t.Run("missing job", func(t *testing.T) {
		err := repo.AddApplicant(ctx, primitive.NewObjectID(), models.Applicant{})

		assert.Equal(t, apperrors.ErrJobNotFound, err)
	})
}
