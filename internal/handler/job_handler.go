package handler

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "gin-jobs/internal/errors"
	"gin-jobs/internal/middleware"
	"gin-jobs/internal/models"
	"gin-jobs/internal/service"
	"gin-jobs/pkg/response"

	"github.com/gin-gonic/gin"
)

// JobHandler handles HTTP requests for job operations.
type JobHandler struct {
	service service.JobServicer
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service service.JobServicer) *JobHandler {
	return &JobHandler{service: service}
}

// ListJobs godoc
// @Summary      List jobs
// @Description  List jobs with filtering, keyword search, field selection, sorting and pagination
// @Tags         jobs
// @Produce      json
// @Param        keyword  query     string  false  "Case-insensitive title search"
// @Param        sort     query     string  false  "Comma-separated sort fields, prefix with - for descending"
// @Param        fields   query     string  false  "Comma-separated fields to return"
// @Param        page     query     int     false  "Page number (10 results per page)"
// @Success      200      {object}  response.Response{data=[]models.Job}
// @Failure      500      {object}  response.Response
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListJobs(c.Request.Context(), c.Request.URL.Query())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.List(c, len(jobs), jobs)
}

// JobsInRadius godoc
// @Summary      Jobs within a radius
// @Description  List jobs within the given distance in miles of a zipcode
// @Tags         jobs
// @Produce      json
// @Param        zipcode   path      string  true  "Postal code to search around"
// @Param        distance  path      number  true  "Search radius in miles"
// @Success      200       {object}  response.Response{data=[]models.Job}
// @Failure      400       {object}  response.Response
// @Failure      404       {object}  response.Response
// @Failure      500       {object}  response.Response
// @Router       /jobs/{zipcode}/{distance} [get]
func (h *JobHandler) JobsInRadius(c *gin.Context) {
	distance, err := strconv.ParseFloat(c.Param("distance"), 64)
	if err != nil || distance <= 0 {
		response.BadRequest(c, "distance must be a positive number")
		return
	}

	jobs, err := h.service.JobsInRadius(c.Request.Context(), c.Param("zipcode"), distance)
	if err != nil {
		if errors.Is(err, apperrors.ErrLocationNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.List(c, len(jobs), jobs)
}

// CreateJob godoc
// @Summary      Publish a job
// @Description  Create a new job posting owned by the authenticated employer
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.CreateJobRequest  true  "Job details"
// @Success      200      {object}  response.Response{data=models.Job}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /job/new [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req models.CreateJobRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.GetUser(c)
	if user == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	job, err := h.service.CreateJob(c.Request.Context(), user.ID, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.SuccessMessage(c, "Job Created.", job)
}

// GetJob godoc
// @Summary      Get a job
// @Description  Retrieve a single job by ID and slug
// @Tags         jobs
// @Produce      json
// @Param        id    path      string  true  "Job ID"
// @Param        slug  path      string  true  "Job slug"
// @Success      200   {object}  response.Response{data=models.Job}
// @Failure      404   {object}  response.Response
// @Failure      500   {object}  response.Response
// @Router       /job/{id}/{slug} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	job, err := h.service.GetJob(c.Request.Context(), c.Param("id"), c.Param("slug"))
	if err != nil {
		if errors.Is(err, apperrors.ErrJobNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c)
		return
	}

	response.Success(c, job)
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Partially update a job owned by the authenticated user
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                   true  "Job ID"
// @Param        request  body      models.UpdateJobRequest  true  "Fields to update"
// @Success      200      {object}  response.Response{data=models.Job}
// @Failure      400      {object}  response.Response
// @Failure      401      {object}  response.Response
// @Failure      403      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /job/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req models.UpdateJobRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	user := middleware.GetUser(c)
	if user == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	job, err := h.service.UpdateJob(c.Request.Context(), c.Param("id"), user, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrJobNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotJobOwner):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.Success(c, job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Delete a job owned by the authenticated user
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /job/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), c.Param("id"), user); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrJobNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrNotJobOwner):
			response.Forbidden(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.SuccessMessage(c, "Job is deleted.", nil)
}

// Stats godoc
// @Summary      Job statistics
// @Description  Aggregate salary and position statistics for jobs matching a topic, grouped by experience level
// @Tags         jobs
// @Produce      json
// @Param        topic  path      string  true  "Topic to match against the job text index"
// @Success      200    {object}  response.Response{data=[]models.JobStats}
// @Failure      500    {object}  response.Response
// @Router       /stats/{topic} [get]
func (h *JobHandler) Stats(c *gin.Context) {
	topic := c.Param("topic")

	stats, err := h.service.Stats(c.Request.Context(), topic)
	if err != nil {
		response.InternalError(c)
		return
	}

	// No matching jobs is reported in the error shape but with a 200,
	// which is what existing clients expect.
	if len(stats) == 0 {
		response.Error(c, http.StatusOK, "no stats found for - "+topic)
		return
	}

	response.Success(c, stats)
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Record an application and return a pre-signed URL for the resume upload
// @Tags         jobs
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  response.Response{data=models.ApplyResponse}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /job/{id}/apply [put]
func (h *JobHandler) Apply(c *gin.Context) {
	user := middleware.GetUser(c)
	if user == nil {
		response.Unauthorized(c, "user not authenticated")
		return
	}

	result, err := h.service.Apply(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrJobNotFound):
			response.NotFound(c, err.Error())
		case errors.Is(err, apperrors.ErrAlreadyApplied):
			response.Conflict(c, err.Error())
		case errors.Is(err, apperrors.ErrJobClosed):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c)
		}
		return
	}

	response.SuccessMessage(c, "applied to the job successfully", result)
}
