package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/auth"
	"github.com/abdulrehmanafzal-webdeveloper/Shopease-e-commerce/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.GuestSession{}, &models.User{}))
	return db
}

func newIdentityRouter(db *gorm.DB, captured *auth.Identity) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/probe", ResolveIdentity(db), func(c *gin.Context) {
		*captured = RequestIdentity(c)
		c.Status(http.StatusOK)
	})
	return r
}

func TestResolveIdentityBearerWins(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)

	token, err := auth.IssueToken("alice@example.com", "user")
	require.NoError(t, err)

	var identity auth.Identity
	r := newIdentityRouter(db, &identity)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	// A session header alongside a valid token is ignored.
	req.Header.Set("X-Session-ID", "sess-ignored")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, auth.IdentityUser, identity.Kind)
	assert.Equal(t, "alice@example.com", identity.Value)
}

func TestResolveIdentityGuestSession(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.GuestSession{
		Token:     "sess-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}).Error)

	var identity auth.Identity
	r := newIdentityRouter(db, &identity)

	t.Run("header", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-Session-ID", "sess-1")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, auth.IdentitySession, identity.Kind)
		assert.Equal(t, "sess-1", identity.Value)
	})

	t.Run("query parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe?session_id=sess-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, auth.IdentitySession, identity.Kind)
	})
}

func TestResolveIdentityRejections(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.Create(&models.GuestSession{
		Token:     "sess-old",
		ExpiresAt: time.Now().Add(-time.Minute),
	}).Error)

	var identity auth.Identity
	r := newIdentityRouter(db, &identity)

	t.Run("no credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("unknown session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-Session-ID", "sess-nope")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired session", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-Session-ID", "sess-old")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
