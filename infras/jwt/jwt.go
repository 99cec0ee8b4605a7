package jwt

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"studioops/config"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

// Claims represents the claims carried by tokens issued by the external
// identity service.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// JWT validates admin tokens. Token issuance lives in the identity
// service, not here.
type JWT interface {
	ValidateToken(tokenString string) (*Claims, error)
}

type Service struct {
	config *config.Config
}

// New creates a new JWT validation service
func New(cfg *config.Config) JWT {
	return &Service{
		config: cfg,
	}
}

// ValidateToken parses and validates a token string against the shared
// access secret.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}

		return []byte(s.config.JWT.AccessSecret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}

		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.UserID == "" {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ExtractTokenFromHeader extracts the bearer token from an Authorization header.
func ExtractTokenFromHeader(header string) (string, error) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", ErrInvalidToken
	}

	return parts[1], nil
}
