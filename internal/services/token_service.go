package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const adminTokenPurpose = "admin"

var (
	ErrInvalidAdminToken = errors.New("invalid admin token")
	ErrMissingSubject    = errors.New("admin token subject is required")
)

type adminClaims struct {
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies the bearer tokens that guard the admin API.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (service *TokenService) IssueAdminToken(subject string) (string, time.Time, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return "", time.Time{}, ErrMissingSubject
	}

	now := service.now()
	expiresAt := now.Add(service.ttl)
	claims := adminClaims{
		Purpose: adminTokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(service.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign admin token: %w", err)
	}
	return signed, expiresAt, nil
}

// VerifyAdminToken returns the token subject.
func (service *TokenService) VerifyAdminToken(raw string) (string, error) {
	claims := &adminClaims{}
	token, err := jwt.ParseWithClaims(
		strings.TrimSpace(raw),
		claims,
		func(token *jwt.Token) (any, error) {
			return service.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(service.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidAdminToken
	}
	if claims.Purpose != adminTokenPurpose || strings.TrimSpace(claims.Subject) == "" {
		return "", ErrInvalidAdminToken
	}
	return claims.Subject, nil
}
