package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "gin-jobs/internal/errors"
	"gin-jobs/internal/middleware"
	"gin-jobs/internal/models"
	"gin-jobs/internal/service/mocks"
	"gin-jobs/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
	validator.RegisterCustomValidators()
}

// asUser injects an authenticated user the way the auth middleware does.
func asUser(user *models.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.UserIDKey, user.ID.Hex())
		c.Set(middleware.UserKey, user)
	}
}

func marshalBody(t *testing.T, body interface{}) []byte {
	t.Helper()
	if s, ok := body.(string); ok {
		return []byte(s)
	}
	b, err := json.Marshal(body)
	assert.NoError(t, err)
	return b
}

func TestAuthHandler_Register(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "successful registration",
			body: models.RegisterRequest{
				Name:     "Test User",
				Email:    "test@example.com",
				Password: "password123",
				Role:     models.RoleEmployer,
			},
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
					return &models.AuthResponse{
						Token: "session-token",
						User: models.User{
							ID:    userID,
							Name:  req.Name,
							Email: req.Email,
							Role:  req.Role,
						},
					}, nil
				}
			},
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, true, resp["success"])
				data := resp["data"].(map[string]interface{})
				assert.Equal(t, "session-token", data["token"])
			},
		},
		{
			name:           "invalid JSON body",
			body:           "not json",
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "admin role is rejected at binding",
			body: map[string]string{
				"name":     "Sneaky",
				"email":    "sneaky@example.com",
				"password": "password123",
				"role":     "admin",
			},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "user already exists",
			body: models.RegisterRequest{
				Name:     "Test User",
				Email:    "existing@example.com",
				Password: "password123",
			},
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
					return nil, apperrors.ErrUserAlreadyExists
				}
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name: "internal server error",
			body: models.RegisterRequest{
				Name:     "Test User",
				Email:    "test@example.com",
				Password: "password123",
			},
			mockSetup: func(m *mocks.MockAuthService) {
				m.RegisterFunc = func(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
					return nil, errors.New("database error")
				}
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.POST("/register", NewAuthHandler(mockService).Register)

			req := httptest.NewRequest(http.MethodPost, "/register", bytes.NewBuffer(marshalBody(t, tt.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestAuthHandler_Login(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful login",
			body: models.LoginRequest{Email: "test@example.com", Password: "password123"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
					return &models.AuthResponse{Token: "session-token"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "invalid credentials",
			body: models.LoginRequest{Email: "test@example.com", Password: "wrong"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.LoginFunc = func(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
					return nil, apperrors.ErrInvalidCredentials
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "missing password",
			body:           map[string]string{"email": "test@example.com"},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.POST("/login", NewAuthHandler(mockService).Login)

			req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(marshalBody(t, tt.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_Me(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID(), Name: "Test User", Email: "test@example.com", Role: models.RoleUser}

	t.Run("returns the authenticated user", func(t *testing.T) {
		router := gin.New()
		router.GET("/me", asUser(user), NewAuthHandler(&mocks.MockAuthService{}).Me)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var resp map[string]interface{}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		data := resp["data"].(map[string]interface{})
		assert.Equal(t, user.Email, data["email"])
	})

	t.Run("rejects when not authenticated", func(t *testing.T) {
		router := gin.New()
		router.GET("/me", NewAuthHandler(&mocks.MockAuthService{}).Me)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	user := &models.User{ID: primitive.NewObjectID()}

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "successful update",
			body: models.UpdatePasswordRequest{CurrentPassword: "oldpassword1", NewPassword: "newpassword1"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.UpdatePasswordFunc = func(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) error {
					assert.Equal(t, user.ID, userID)
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "wrong current password",
			body: models.UpdatePasswordRequest{CurrentPassword: "wrongpassword", NewPassword: "newpassword1"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.UpdatePasswordFunc = func(ctx context.Context, userID primitive.ObjectID, req *models.UpdatePasswordRequest) error {
					return apperrors.ErrPasswordMismatch
				}
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.PUT("/password/update", asUser(user), NewAuthHandler(mockService).UpdatePassword)

			req := httptest.NewRequest(http.MethodPut, "/password/update", bytes.NewBuffer(marshalBody(t, tt.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_ForgotPassword(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name: "sends reset email",
			body: models.ForgotPasswordRequest{Email: "test@example.com"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.ForgotPasswordFunc = func(ctx context.Context, email string) error {
					assert.Equal(t, "test@example.com", email)
					return nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "unknown email",
			body: models.ForgotPasswordRequest{Email: "ghost@example.com"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.ForgotPasswordFunc = func(ctx context.Context, email string) error {
					return apperrors.ErrUserNotFound
				}
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "mail queue full",
			body: models.ForgotPasswordRequest{Email: "test@example.com"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.ForgotPasswordFunc = func(ctx context.Context, email string) error {
					return apperrors.ErrMailQueueFull
				}
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
		{
			name:           "malformed email",
			body:           map[string]string{"email": "not-an-email"},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.POST("/password/forgot", NewAuthHandler(mockService).ForgotPassword)

			req := httptest.NewRequest(http.MethodPost, "/password/forgot", bytes.NewBuffer(marshalBody(t, tt.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestAuthHandler_ResetPassword(t *testing.T) {
	tests := []struct {
		name           string
		token          string
		body           interface{}
		mockSetup      func(*mocks.MockAuthService)
		expectedStatus int
	}{
		{
			name:  "resets with valid token",
			token: "sometoken",
			body:  models.ResetPasswordRequest{Password: "newpassword1"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.ResetPasswordFunc = func(ctx context.Context, token, newPassword string) (*models.AuthResponse, error) {
					assert.Equal(t, "sometoken", token)
					assert.Equal(t, "newpassword1", newPassword)
					return &models.AuthResponse{Token: "fresh-session"}, nil
				}
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "invalid or expired token",
			token: "stale",
			body:  models.ResetPasswordRequest{Password: "newpassword1"},
			mockSetup: func(m *mocks.MockAuthService) {
				m.ResetPasswordFunc = func(ctx context.Context, token, newPassword string) (*models.AuthResponse, error) {
					return nil, apperrors.ErrResetTokenInvalid
				}
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "password too short",
			token:          "sometoken",
			body:           map[string]string{"password": "short"},
			mockSetup:      func(m *mocks.MockAuthService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockAuthService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.PUT("/password/reset/:token", NewAuthHandler(mockService).ResetPassword)

			req := httptest.NewRequest(http.MethodPut, "/password/reset/"+tt.token, bytes.NewBuffer(marshalBody(t, tt.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}
