// file: service/token_service.go

package service

import (
	"fmt"
	"go-shop-api/logger"
	"go-shop-api/model"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ITokenService mints and verifies the signed tokens carried by
// clients. Tokens are self-contained HS256 JWTs whose subject is the
// user's email.
type ITokenService interface {
	IssueAccessToken(email string) (string, error)
	IssueRefreshToken(email string) (string, error)
	Verify(tokenString string) (*model.AuthClaims, error)
	Decode(tokenString string) (*model.AuthClaims, error)
}

// TokenService implements ITokenService. The signing key is loaded once
// at startup and never mutated, so concurrent verification needs no
// synchronization.
type TokenService struct {
	secretKey  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenService(secretKey string, accessTTL, refreshTTL time.Duration) *TokenService {
	return &TokenService{
		secretKey:  []byte(secretKey),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// IssueAccessToken mints a short-lived token for the given email.
func (s *TokenService) IssueAccessToken(email string) (string, error) {
	return s.issue(email, s.accessTTL)
}

// IssueRefreshToken mints a long-lived token for the given email.
func (s *TokenService) IssueRefreshToken(email string) (string, error) {
	return s.issue(email, s.refreshTTL)
}

func (s *TokenService) issue(email string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &model.AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		logger.Log.WithError(err).WithField("email", email).Error("Failed to sign token")
		return "", fmt.Errorf("failed to sign token string: %w", err)
	}

	return tokenString, nil
}

// Verify checks the signature and expiry of a token. Every failure mode
// collapses into ErrInvalidToken; callers must not learn which check
// rejected the token.
func (s *TokenService) Verify(tokenString string) (*model.AuthClaims, error) {
	claims := &model.AuthClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// Decode extracts the claims without checking the signature. It is only
// used on tokens that already passed Verify in the same call path.
func (s *TokenService) Decode(tokenString string) (*model.AuthClaims, error) {
	claims := &model.AuthClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
