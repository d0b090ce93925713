// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "gin-jobs/swagger" // Import generated swagger docs

	"gin-jobs/internal/handler"
	"gin-jobs/internal/middleware"
	"gin-jobs/internal/models"
	"gin-jobs/pkg/auth"
	"gin-jobs/pkg/response"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler *handler.AuthHandler
	UserHandler *handler.UserHandler
	JobHandler  *handler.JobHandler
	JWTManager  auth.TokenManager
	UserLoader  middleware.UserLoader
}

// Setup creates and configures the Gin router.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authenticated := middleware.Auth(cfg.JWTManager, cfg.UserLoader)

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Account routes (public)
		v1.POST("/register", cfg.AuthHandler.Register)
		v1.POST("/login", cfg.AuthHandler.Login)
		v1.POST("/password/forgot", cfg.AuthHandler.ForgotPassword)
		v1.PUT("/password/reset/:token", cfg.AuthHandler.ResetPassword)

		// Account routes (protected)
		v1.GET("/me", authenticated, cfg.AuthHandler.Me)
		v1.PUT("/password/update", authenticated, cfg.AuthHandler.UpdatePassword)

		// Job routes
		v1.GET("/jobs", cfg.JobHandler.ListJobs)
		v1.GET("/jobs/:zipcode/:distance", cfg.JobHandler.JobsInRadius)
		v1.GET("/stats/:topic", cfg.JobHandler.Stats)

		job := v1.Group("/job")
		{
			job.POST("/new", authenticated,
				middleware.RequireRoles(models.RoleEmployer, models.RoleAdmin), cfg.JobHandler.CreateJob)
			job.GET("/:id/:slug", cfg.JobHandler.GetJob)
			job.PUT("/:id", authenticated, cfg.JobHandler.UpdateJob)
			job.DELETE("/:id", authenticated, cfg.JobHandler.DeleteJob)
			job.PUT("/:id/apply", authenticated,
				middleware.RequireRoles(models.RoleUser), cfg.JobHandler.Apply)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(authenticated, middleware.RequireRoles(models.RoleAdmin))
		{
			admin.GET("/users", cfg.UserHandler.GetAllUsers)
			admin.GET("/users/:id", cfg.UserHandler.GetUser)
			admin.PUT("/users/:id", cfg.UserHandler.UpdateUser)
			admin.DELETE("/users/:id", cfg.UserHandler.DeleteUser)
		}
	}

	// Unknown routes get the standard error shape.
	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, c.Request.URL.Path+" route not found")
	})

	return r
}
