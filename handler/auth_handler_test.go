package handler

import (
	"bytes"
	"encoding/json"
	"go-shop-api/model"
	"go-shop-api/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(req *model.RegisterRequest) (*model.User, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}
func (m *mockAuthService) Login(email, password string) (*model.TokenPair, error) {
	args := m.Called(email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenPair), args.Error(1)
}
func (m *mockAuthService) Refresh(refreshToken string) (*model.TokenPair, error) {
	args := m.Called(refreshToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.TokenPair), args.Error(1)
}
func (m *mockAuthService) Logout(authorizationHeader string) error {
	args := m.Called(authorizationHeader)
	return args.Error(0)
}
func (m *mockAuthService) CurrentUser(authorizationHeader string) (*model.User, error) {
	args := m.Called(authorizationHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)

		svc.On("Register", mock.AnythingOfType("*model.RegisterRequest")).
			Return(&model.User{ID: 1, Username: "bob", Email: "bob@x.com"}, nil).Once()

		body, _ := json.Marshal(model.RegisterRequest{Username: "bob", Email: "bob@x.com", Password: "secret123!"})
		req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		ErrorHandlingMiddleware(h.Register).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Contains(t, rr.Body.String(), `"bob@x.com"`)
		assert.NotContains(t, rr.Body.String(), "password")
	})

	t.Run("duplicate identity maps to 409", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)

		svc.On("Register", mock.Anything).Return(nil, service.ErrDuplicateIdentity).Once()

		body, _ := json.Marshal(model.RegisterRequest{Username: "bob", Email: "bob@x.com", Password: "secret123!"})
		req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		ErrorHandlingMiddleware(h.Register).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("invalid payload maps to 400", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)

		body, _ := json.Marshal(model.RegisterRequest{Username: "x", Email: "not-an-email", Password: "short"})
		req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		ErrorHandlingMiddleware(h.Register).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		svc.AssertNotCalled(t, "Register")
	})
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("returns the token pair", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)

		svc.On("Login", "alice@x.com", "secret123!").
			Return(&model.TokenPair{AccessToken: "a", RefreshToken: "r"}, nil).Once()

		body, _ := json.Marshal(model.LoginRequest{Email: "alice@x.com", Password: "secret123!"})
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		ErrorHandlingMiddleware(h.Login).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)

		var pair model.TokenPair
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &pair))
		assert.Equal(t, "a", pair.AccessToken)
		assert.Equal(t, "r", pair.RefreshToken)
	})

	t.Run("invalid credentials map to 401", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)

		svc.On("Login", "alice@x.com", "wrongpassword").
			Return(nil, service.ErrInvalidCredentials).Once()

		body, _ := json.Marshal(model.LoginRequest{Email: "alice@x.com", Password: "wrongpassword"})
		req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		ErrorHandlingMiddleware(h.Login).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestAuthHandler_Refresh(t *testing.T) {
	t.Run("expired refresh token maps to 401", func(t *testing.T) {
		svc := new(mockAuthService)
		h := NewAuthHandler(svc)

		svc.On("Refresh", "stale").Return(nil, service.ErrExpiredRefreshToken).Once()

		body, _ := json.Marshal(model.RefreshRequest{RefreshToken: "stale"})
		req := httptest.NewRequest(http.MethodPost, "/api/users/refresh", bytes.NewReader(body))
		rr := httptest.NewRecorder()

		ErrorHandlingMiddleware(h.Refresh).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Contains(t, rr.Body.String(), "refresh token expired")
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	svc := new(mockAuthService)
	h := NewAuthHandler(svc)

	svc.On("Logout", "Bearer some-token").Return(nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/users/logout", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rr := httptest.NewRecorder()

	ErrorHandlingMiddleware(h.Logout).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	svc.AssertExpectations(t)
}

func TestAuthHandler_Profile(t *testing.T) {
	svc := new(mockAuthService)
	h := NewAuthHandler(svc)

	svc.On("CurrentUser", "Bearer some-token").
		Return(&model.User{ID: 1, Username: "alice", Email: "alice@x.com"}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/users/profile", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rr := httptest.NewRecorder()

	ErrorHandlingMiddleware(h.Profile).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"alice@x.com"`)
}
