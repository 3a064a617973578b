package service

//go:generate mockgen -destination=../../mocks/mock_token_generator.go -package=mocks github.com/adarsh0128/Mailgic-AI/internal/auth/service TokenGenerator

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	autherror "github.com/adarsh0128/Mailgic-AI/internal/errors"
)

type TokenGenerator interface {
	Issue(userID, email string) (string, error)
	Verify(tokenString string) (*SessionClaims, error)
	SessionTTL() time.Duration
}

// TokenService issues and verifies the stateless session tokens. The secret
// lives only in process memory; tokens are never persisted server-side.
type TokenService struct {
	secret     string
	sessionTTL time.Duration
}

type SessionClaims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email,omitempty"`
}

func NewTokenService(secret string, sessionTTL time.Duration) *TokenService {
	return &TokenService{
		secret:     secret,
		sessionTTL: sessionTTL,
	}
}

// Issue signs an HS256 token for the user with issued-at and expiration
// timestamps covered by the signature.
func (ts *TokenService) Issue(userID, email string) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.secret))
}

// Verify parses and validates a session token. Every failure mode (malformed
// structure, bad signature, expired) collapses into ErrInvalidToken so
// callers cannot tell the causes apart.
func (ts *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(ts.secret), nil
	})

	if err != nil || !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}

func (ts *TokenService) SessionTTL() time.Duration {
	return ts.sessionTTL
}
