package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	apperrors "gin-jobs/internal/errors"
	"gin-jobs/internal/models"
	"gin-jobs/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubUserLoader struct {
	user *models.User
	err  error
}

func (s *stubUserLoader) GetUser(ctx context.Context, id string) (*models.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func TestAuth(t *testing.T) {
	jwtManager := auth.NewJWTManager("testsecret", 15*time.Minute)
	userID := primitive.NewObjectID()
	loader := &stubUserLoader{user: &models.User{ID: userID, Role: models.RoleEmployer}}
	authMiddleware := Auth(jwtManager, loader)

	t.Run("allows request with valid token and loads user", func(t *testing.T) {
		token, _ := jwtManager.GenerateToken(userID.Hex())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer "+token)

		authMiddleware(c)

		assert.False(t, c.IsAborted())
		assert.Equal(t, userID.Hex(), GetUserID(c))
		loaded := GetUser(c)
		assert.NotNil(t, loaded)
		assert.Equal(t, models.RoleEmployer, loaded.Role)
	})

	t.Run("rejects request without authorization header", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		authMiddleware(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("rejects request with wrong prefix", func(t *testing.T) {
		token, _ := jwtManager.GenerateToken(userID.Hex())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Basic "+token)

		authMiddleware(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("rejects request with invalid token", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer invalid.token.here")

		authMiddleware(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("rejects request with expired token", func(t *testing.T) {
		shortManager := auth.NewJWTManager("testsecret", 1*time.Millisecond)
		token, _ := shortManager.GenerateToken(userID.Hex())
		time.Sleep(10 * time.Millisecond)

		shortAuthMiddleware := Auth(shortManager, loader)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer "+token)

		shortAuthMiddleware(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("rejects request with token signed by different secret", func(t *testing.T) {
		otherManager := auth.NewJWTManager("differentsecret", 15*time.Minute)
		token, _ := otherManager.GenerateToken(userID.Hex())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer "+token)

		authMiddleware(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})

	t.Run("rejects valid token for deleted account", func(t *testing.T) {
		goneLoader := &stubUserLoader{err: apperrors.ErrUserNotFound}
		goneMiddleware := Auth(jwtManager, goneLoader)
		token, _ := jwtManager.GenerateToken(userID.Hex())

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
		c.Request.Header.Set("Authorization", "Bearer "+token)

		goneMiddleware(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})
}

func TestRequireRoles(t *testing.T) {
	tests := []struct {
		name           string
		userRole       string
		allowedRoles   []string
		expectedStatus int
	}{
		{
			name:           "allows matching role",
			userRole:       models.RoleEmployer,
			allowedRoles:   []string{models.RoleEmployer, models.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "allows admin when listed",
			userRole:       models.RoleAdmin,
			allowedRoles:   []string{models.RoleEmployer, models.RoleAdmin},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "rejects role not in list",
			userRole:       models.RoleUser,
			allowedRoles:   []string{models.RoleEmployer, models.RoleAdmin},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "empty list allows any authenticated user",
			userRole:       models.RoleUser,
			allowedRoles:   nil,
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Set(UserKey, &models.User{ID: primitive.NewObjectID(), Role: tt.userRole})

			RequireRoles(tt.allowedRoles...)(c)

			if tt.expectedStatus == http.StatusOK {
				assert.False(t, c.IsAborted())
			} else {
				assert.Equal(t, tt.expectedStatus, w.Code)
				assert.True(t, c.IsAborted())
			}
		})
	}

	t.Run("rejects when no user in context", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

		RequireRoles(models.RoleAdmin)(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.True(t, c.IsAborted())
	})
}
