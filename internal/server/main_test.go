package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"blogapi/internal/auth"
	"blogapi/internal/config"
	"blogapi/internal/models"
	"blogapi/internal/repository"
	"blogapi/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// testServer bundles a server wired to an in-memory database with the full
// route table registered.
type testServer struct {
	app *fiber.App
	db  *gorm.DB
	srv *Server
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Category{}, &models.Tag{}, &models.Post{}))

	userRepo := repository.NewUserRepository(db)
	postRepo := repository.NewPostRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	tagRepo := repository.NewTagRepository(db)

	s := &Server{
		config:       &config.Config{JWTSecret: "test_secret", Env: "test", Port: "0"},
		db:           db,
		userRepo:     userRepo,
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		tagRepo:      tagRepo,
		tokens:       auth.NewTokenCodec("test_secret"),
		credentials:  auth.NewCredentialVerifier(userRepo),
	}
	s.postService = service.NewPostService(postRepo, categoryRepo, tagRepo)
	s.categoryService = service.NewCategoryService(categoryRepo, postRepo)
	s.tagService = service.NewTagService(tagRepo, postRepo)

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return models.RespondError(c, models.NewInternalError(err))
		},
	})
	s.SetupRoutes(app)

	return &testServer{app: app, db: db, srv: s}
}

// createUser stores a user with the given plaintext password.
func (ts *testServer) createUser(t *testing.T, name, email, password string) *models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	user := &models.User{Name: name, Email: email, Password: hash}
	require.NoError(t, ts.db.Create(user).Error)
	return user
}

func (ts *testServer) createCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name}
	require.NoError(t, ts.db.Create(category).Error)
	return category
}

func (ts *testServer) createTag(t *testing.T, name string) *models.Tag {
	t.Helper()
	tag := &models.Tag{Name: name}
	require.NoError(t, ts.db.Create(tag).Error)
	return tag
}

// tokenFor issues a valid bearer token for the user.
func (ts *testServer) tokenFor(t *testing.T, userID uuid.UUID) string {
	t.Helper()
	token, _, err := ts.srv.tokens.Issue(userID)
	require.NoError(t, err)
	return token
}

// request performs an HTTP request against the app and returns the response.
func (ts *testServer) request(t *testing.T, method, path string, body any, token string) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := ts.app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// envelope mirrors the uniform response body for decoding in assertions.
type envelope struct {
	Success   bool            `json:"success"`
	Timestamp string          `json:"timestamp"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}
