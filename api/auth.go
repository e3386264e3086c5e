/*
auth.go - Supervisor authentication

PURPOSE:
  Issues and validates the bearer tokens supervisors use for the review
  endpoints. Tokens are signed JWTs; passwords are verified against the
  bcrypt hashes stored with each supervisor account.

TOKEN LIFECYCLE:
  POST /api/auth/login exchanges username+password for a signed token.
  Every protected request carries it as "Authorization: Bearer <token>".
  Logout is client-side; tokens simply expire after their TTL.

SEE ALSO:
  - handlers.go: Login handler that calls Issue
  - server.go: Route groups wrapped in RequireAuth
*/
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carries the authenticated supervisor's identity.
type Claims struct {
	Username    string `json:"username"`
	DisplayName string `json:"displayName"`
	jwtv5.RegisteredClaims
}

// TokenManager signs and verifies supervisor session tokens.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager creates a manager signing with secret. Tokens expire
// after ttl.
func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for one supervisor session.
func (m *TokenManager) Issue(username, displayName string) (string, error) {
	now := time.Now()
	claims := Claims{
		Username:    username,
		DisplayName: displayName,
		RegisteredClaims: jwtv5.RegisteredClaims{
			ID:        uuid.New().String(),
			IssuedAt:  jwtv5.NewNumericDate(now),
			ExpiresAt: jwtv5.NewNumericDate(now.Add(m.ttl)),
			Issuer:    "timeclock-engine",
		},
	}
	token := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates a token string and returns its claims.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	token, err := jwtv5.ParseWithClaims(tokenString, &Claims{}, func(t *jwtv5.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwtv5.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtv5.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

type contextKey int

const claimsKey contextKey = iota

// RequireAuth rejects requests without a valid bearer token and injects
// the supervisor's claims into the request context.
func RequireAuth(tokens *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeError(w, http.StatusUnauthorized, "Missing bearer token", nil)
				return
			}
			claims, err := tokens.Parse(parts[1])
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Invalid or expired token", nil)
				return
			}
			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// claimsFrom returns the authenticated supervisor, or nil on public routes.
func claimsFrom(r *http.Request) *Claims {
	claims, _ := r.Context().Value(claimsKey).(*Claims)
	return claims
}
