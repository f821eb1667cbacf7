// Package testutil wires the real router and schema to an in-memory
// sqlite database for the handler test suites.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"inventory-app/config"
	"inventory-app/database"
	"inventory-app/internal/api/auth"
	routes "inventory-app/internal/app/http"
	"inventory-app/internal/domain/users"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// SetupRouter opens a fresh in-memory database, installs it as the
// process-wide handle and returns the fully registered gin engine.
func SetupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.JWT_SECRET = "test-secret-at-least-32-chars-long!!"
	config.UPLOAD_DIR = t.TempDir()

	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	database.DB = db

	r := gin.New()
	routes.RegisterRoutes(r)
	return r, db
}

// CreateProfile inserts a login-capable profile and returns it.
func CreateProfile(t *testing.T, db *gorm.DB, username, password string) users.UserProfile {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	hash := string(hashed)

	profile := users.UserProfile{
		Username:     username,
		PasswordHash: &hash,
		AuthProvider: "local",
		UserRole:     "user",
	}
	if err := db.Create(&profile).Error; err != nil {
		t.Fatalf("create profile %s: %v", username, err)
	}
	return profile
}

// DoJSON performs a request against the router, marshaling body when it is
// non-nil and attaching the bearer token when it is non-empty.
func DoJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		req = httptest.NewRequest(method, path, bytes.NewReader(buf))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// TokenFor issues a bearer token for the profile through the production
// signer.
func TokenFor(t *testing.T, profileID uint) string {
	t.Helper()

	token, err := auth.IssueToken(profileID)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return token
}
