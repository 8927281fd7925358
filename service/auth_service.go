// file: service/auth_service.go

package service

import (
	"database/sql"
	"errors"
	"go-shop-api/logger"
	"go-shop-api/model"
	"go-shop-api/repository"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// IAuthService exposes the authentication use cases consumed by the
// HTTP layer.
type IAuthService interface {
	Register(req *model.RegisterRequest) (*model.User, error)
	Login(email, password string) (*model.TokenPair, error)
	Refresh(refreshToken string) (*model.TokenPair, error)
	Logout(authorizationHeader string) error
	CurrentUser(authorizationHeader string) (*model.User, error)
}

// AuthService orchestrates the register, login, refresh, logout and
// profile-resolution use cases by composing the token service and the
// user and session repositories.
type AuthService struct {
	userRepo    repository.IUserRepository
	sessionRepo repository.ISessionRepository
	tokens      ITokenService
	refreshTTL  time.Duration
}

func NewAuthService(userRepo repository.IUserRepository, sessionRepo repository.ISessionRepository, tokens ITokenService, refreshTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		tokens:      tokens,
		refreshTTL:  refreshTTL,
	}
}

func (s *AuthService) HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		logger.Log.WithError(err).Error("Failed to hash password")
		return "", err
	}
	return string(bytes), nil
}

func (s *AuthService) CheckPasswordHash(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// Register persists a new user with a hashed credential. A username or
// email collision surfaces as ErrDuplicateIdentity.
func (s *AuthService) Register(req *model.RegisterRequest) (*model.User, error) {
	hashedPassword, err := s.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Address:   req.Address,
	}
	if req.BirthDate != "" {
		birthDate, err := time.Parse("2006-01-02", req.BirthDate)
		if err != nil {
			return nil, err
		}
		user.BirthDate = &birthDate
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateIdentity
		}
		return nil, err
	}

	logger.Log.WithField("email", user.Email).Info("New user registered")
	return user, nil
}

// Login checks the credentials, mints an access/refresh token pair and
// persists the session binding them to the user. Unknown email and
// wrong password both surface as ErrInvalidCredentials.
func (s *AuthService) Login(email, password string) (*model.TokenPair, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.CheckPasswordHash(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := s.tokens.IssueAccessToken(user.Email)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.tokens.IssueRefreshToken(user.Email)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	session := &model.Session{
		UserID:       user.ID,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		CreatedAt:    now,
		ExpiresAt:    now.Add(s.refreshTTL),
	}
	if err := s.sessionRepo.Create(session); err != nil {
		return nil, err
	}

	logger.Log.WithField("email", user.Email).Info("User logged in, session created")
	return &model.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// Refresh mints a new access token for the session owning the presented
// refresh token. The session's expiry bounds the refresh token's
// lifetime and is never extended here; only the access token column is
// swapped, with a compare-and-swap so concurrent refreshes of the same
// session cannot both commit.
func (s *AuthService) Refresh(refreshToken string) (*model.TokenPair, error) {
	session, err := s.sessionRepo.GetByRefreshToken(refreshToken)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnknownSession
		}
		return nil, err
	}

	if session.ExpiresAt.Before(time.Now()) {
		return nil, ErrExpiredRefreshToken
	}

	claims, err := s.tokens.Decode(session.RefreshToken)
	if err != nil {
		return nil, ErrUnknownSession
	}

	newAccessToken, err := s.tokens.IssueAccessToken(claims.Subject)
	if err != nil {
		return nil, err
	}

	if err := s.sessionRepo.UpdateAccessToken(session.ID, session.AccessToken, newAccessToken); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Lost the swap to a concurrent refresh; the session we
			// read no longer exists in that state.
			return nil, ErrUnknownSession
		}
		return nil, err
	}

	logger.Log.WithField("session_id", session.ID).Info("Access token refreshed")
	return &model.TokenPair{AccessToken: newAccessToken, RefreshToken: session.RefreshToken}, nil
}

// Logout revokes the single session matching the presented access
// token. The header may arrive with or without the Bearer prefix.
func (s *AuthService) Logout(authorizationHeader string) error {
	session, err := s.findSessionByHeader(authorizationHeader)
	if err != nil {
		return err
	}

	if err := s.sessionRepo.Delete(session.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrUnknownSession
		}
		return err
	}

	logger.Log.WithField("session_id", session.ID).Info("Session revoked")
	return nil
}

// CurrentUser resolves the user owning the session that matches the
// presented access token.
func (s *AuthService) CurrentUser(authorizationHeader string) (*model.User, error) {
	session, err := s.findSessionByHeader(authorizationHeader)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetUserByID(session.UserID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnknownSession
		}
		return nil, err
	}
	return user, nil
}

func (s *AuthService) findSessionByHeader(authorizationHeader string) (*model.Session, error) {
	token := StripBearerPrefix(authorizationHeader)

	session, err := s.sessionRepo.GetByAccessToken(token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUnknownSession
		}
		return nil, err
	}
	return session, nil
}

// StripBearerPrefix removes a leading "Bearer " scheme marker if
// present, leaving bare tokens untouched.
func StripBearerPrefix(header string) string {
	if len(header) >= 7 && strings.EqualFold(header[:7], "Bearer ") {
		return strings.TrimSpace(header[7:])
	}
	return strings.TrimSpace(header)
}
