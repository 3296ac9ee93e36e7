package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"chirp/internal/config"
	"chirp/internal/database"
	"chirp/internal/middleware"
	"chirp/internal/models"
	"chirp/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestApp(t *testing.T) (*fiber.App, *Server, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=1"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(database.PersistentModels()...); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	cfg := &config.Config{
		JWTSecret: "test-secret-key-12345678901234567890123456789012",
		Port:      "3000",
		Env:       "test",
	}

	s, err := NewServerWithDeps(cfg, db, nil)
	require.NoError(t, err)

	app := fiber.New()
	s.SetupRoutes(app)
	return app, s, db
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

func withSession(req *http.Request, session string) *http.Request {
	if session != "" {
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: session})
	}
	return req
}

// createUser seeds a user with a bcrypt-hashed password and returns it.
func createUser(t *testing.T, db *gorm.DB, userName, password string) *models.User {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), service.BcryptCost)
	require.NoError(t, err)
	user := &models.User{
		FirstName: "Test",
		LastName:  "User",
		UserName:  userName,
		Email:     userName + "@example.com",
		Password:  string(hashed),
		Birthday:  time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Bio:       "hello",
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// sessionFor signs in as the given user and returns the session cookie value.
func sessionFor(t *testing.T, s *Server, user *models.User) string {
	t.Helper()
	signed, err := s.tokens.Issue(user.ID, user.UserName)
	require.NoError(t, err)
	return signed
}

// decodeBody decodes the response body into a generic map.
func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body), "body: %s", raw)
	return body
}

// sessionCookie extracts the session cookie from a response, or nil.
func sessionCookie(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == middleware.SessionCookie {
			return ck
		}
	}
	return nil
}
