// file: router/router_test.go

package router_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"go-shop-api/handler"
	"go-shop-api/logger"
	"go-shop-api/model"
	"go-shop-api/repository"
	"go-shop-api/router"
	"go-shop-api/service"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

var (
	testDB     *sql.DB
	testRouter http.Handler
)

// TestMain wires the full stack against a real database. The suite is
// skipped entirely when TEST_DATABASE_URL is not set, so unit runs do
// not need infrastructure.
func TestMain(m *testing.M) {
	logger.Init()

	connStr := os.Getenv("TEST_DATABASE_URL")
	if connStr == "" {
		os.Exit(m.Run())
	}

	var err error
	testDB, err = sql.Open("postgres", connStr)
	if err != nil {
		log.Fatalf("could not connect to test database: %v", err)
	}

	for i := 0; i < 5; i++ {
		if err = testDB.Ping(); err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatalf("database not ready: %v", err)
	}

	runMigrations(connStr)
	testRouter = buildRouter(testDB)

	exitCode := m.Run()

	testDB.Close()
	os.Exit(exitCode)
}

func runMigrations(connStr string) {
	mig, err := migrate.New("file://../db/migrations", connStr)
	if err != nil {
		log.Fatalf("cannot create migrate instance: %v", err)
	}
	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatalf("failed to run migrate up: %v", err)
	}
}

func buildRouter(database *sql.DB) http.Handler {
	tokens := service.NewTokenService("integration-test-secret", 15*time.Minute, 7*24*time.Hour)

	userRepo := repository.NewUserRepository(database)
	sessionRepo := repository.NewSessionRepository(database)
	authService := service.NewAuthService(userRepo, sessionRepo, tokens, 7*24*time.Hour)
	authHandler := handler.NewAuthHandler(authService)

	classifier := handler.NewRouteClassifier([]string{
		"/api/users/login",
		"/api/users/register",
		"/api/users/refresh",
		"/api/users/ping",
		"/api/products",
		"/health",
		"/swagger",
	})

	return router.NewRouter(authHandler, nil, classifier, tokens)
}

func requireDB(t *testing.T) {
	t.Helper()
	if testDB == nil {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}
}

func postJSON(t *testing.T, path string, payload interface{}, header string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	rr := httptest.NewRecorder()
	testRouter.ServeHTTP(rr, req)
	return rr
}

func TestAuthFlow_Integration(t *testing.T) {
	requireDB(t)

	email := "flow@example.com"
	register := model.RegisterRequest{Username: "flowuser", Email: email, Password: "secret123!"}

	// Register.
	rr := postJSON(t, "/api/users/register", register, "")
	assert.Equal(t, http.StatusCreated, rr.Code)

	// Duplicate registration is rejected.
	rr = postJSON(t, "/api/users/register", register, "")
	assert.Equal(t, http.StatusConflict, rr.Code)

	// Login.
	rr = postJSON(t, "/api/users/login", model.LoginRequest{Email: email, Password: "secret123!"}, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var pair model.TokenPair
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pair))
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	// Profile resolves through the gate and the session store.
	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set("Authorization", "Bearer "+pair.AccessToken)
	profileRR := httptest.NewRecorder()
	testRouter.ServeHTTP(profileRR, req)
	assert.Equal(t, http.StatusOK, profileRR.Code)
	assert.Contains(t, profileRR.Body.String(), email)

	// Refresh replaces the access token but keeps the refresh token.
	rr = postJSON(t, "/api/users/refresh", model.RefreshRequest{RefreshToken: pair.RefreshToken}, "")
	assert.Equal(t, http.StatusOK, rr.Code)

	var refreshed model.TokenPair
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &refreshed))
	assert.NotEqual(t, pair.AccessToken, refreshed.AccessToken)
	assert.Equal(t, pair.RefreshToken, refreshed.RefreshToken)

	// Logout with the refreshed access token.
	rr = postJSON(t, "/api/users/logout", struct{}{}, "Bearer "+refreshed.AccessToken)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	// The revoked session no longer resolves a profile.
	req = httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set("Authorization", "Bearer "+refreshed.AccessToken)
	goneRR := httptest.NewRecorder()
	testRouter.ServeHTTP(goneRR, req)
	assert.Equal(t, http.StatusUnauthorized, goneRR.Code)
}

func TestProtectedRouteWithoutHeader_Integration(t *testing.T) {
	requireDB(t)

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	rr := httptest.NewRecorder()
	testRouter.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
