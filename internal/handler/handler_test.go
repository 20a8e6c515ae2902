package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/lakhoreJanvi/feedback-system/internal/auth"
	"github.com/lakhoreJanvi/feedback-system/internal/config"
	"github.com/lakhoreJanvi/feedback-system/internal/domain"
	"github.com/lakhoreJanvi/feedback-system/internal/middleware"
	"github.com/lakhoreJanvi/feedback-system/internal/repository"
)

type testEnv struct {
	app *fiber.App
	db  *gorm.DB
	jwt *auth.JWTService
}

// setupTestApp wires the full route surface against an in-memory SQLite
// database, mirroring cmd/api.
func setupTestApp(t *testing.T) *testEnv {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&domain.User{},
		&domain.Feedback{},
		&domain.FeedbackComment{},
		&domain.FeedbackRequest{},
		&domain.RefreshToken{},
	)
	require.NoError(t, err)

	cfg := &config.Config{
		JWT: config.JWTConfig{
			AccessSecret:  "test-secret",
			AccessExpiry:  time.Hour,
			RefreshExpiry: 24 * time.Hour,
		},
	}
	jwtService := auth.NewJWTService(cfg)

	userRepo := repository.NewUserRepository(db)
	authRepo := repository.NewAuthRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	authHandler := NewAuthHandler(userRepo, authRepo, jwtService)
	userHandler := NewUserHandler(userRepo)
	feedbackHandler := NewFeedbackHandler(feedbackRepo, userRepo)
	requestHandler := NewRequestHandler(requestRepo, userRepo)

	authMiddleware := middleware.NewAuthMiddleware(jwtService)

	app := fiber.New()
	api := app.Group("/api/v1")

	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", authHandler.Register)
	authRoutes.Post("/login", authHandler.Login)
	authRoutes.Post("/refresh", authHandler.Refresh)
	authRoutes.Post("/logout", authMiddleware.Required(), authHandler.Logout)

	api.Get("/me", authMiddleware.Required(), authHandler.Me)

	userRoutes := api.Group("/users", authMiddleware.Required())
	userRoutes.Get("/team", userHandler.ListTeam)
	userRoutes.Get("/employees", userHandler.ListEmployees)
	userRoutes.Get("/managers", userHandler.ListManagers)

	feedbackRoutes := api.Group("/feedback", authMiddleware.Required())
	feedbackRoutes.Post("/", feedbackHandler.Create)
	feedbackRoutes.Get("/given", feedbackHandler.ListGiven)
	feedbackRoutes.Get("/received", feedbackHandler.ListReceived)
	feedbackRoutes.Get("/team", feedbackHandler.ListTeam)
	feedbackRoutes.Put("/:id", feedbackHandler.Update)
	feedbackRoutes.Post("/:id/acknowledge", feedbackHandler.Acknowledge)
	feedbackRoutes.Post("/:id/comments", feedbackHandler.Comment)

	requestRoutes := api.Group("/feedback-requests", authMiddleware.Required())
	requestRoutes.Post("/", requestHandler.Create)
	requestRoutes.Get("/", requestHandler.List)

	return &testEnv{app: app, db: db, jwt: jwtService}
}

func (env *testEnv) createUser(t *testing.T, role domain.UserRole, email string, managerID *uuid.UUID) *domain.User {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &domain.User{
		Name:         "Test " + email,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         role,
		ManagerID:    managerID,
	}
	require.NoError(t, env.db.Create(user).Error)
	return user
}

func (env *testEnv) tokenFor(t *testing.T, user *domain.User) string {
	token, err := env.jwt.GenerateAccessToken(user.ID, string(user.Role))
	require.NoError(t, err)
	return token
}

type apiResponse struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (env *testEnv) request(t *testing.T, method, path, token string, body interface{}) (*http.Response, apiResponse) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := env.app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var parsed apiResponse
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp, parsed
}
