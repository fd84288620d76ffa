package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/taskify-app/taskify-api/internal/config"
	"github.com/taskify-app/taskify-api/internal/models"
)

// Claims carries the identity embedded in an access token. The numeric user
// id travels in the registered subject claim.
type Claims struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	jwt.RegisteredClaims
}

// UserID returns the numeric subject of the claims.
func (c *Claims) UserID() (uint64, error) {
	return strconv.ParseUint(c.Subject, 10, 64)
}

// TokenManager issues and verifies HMAC-SHA256 signed access tokens. The
// signing key and validation parameters are fixed at construction.
type TokenManager struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

// NewTokenManager creates a TokenManager from JWT configuration.
func NewTokenManager(cfg config.JWT) *TokenManager {
	return &TokenManager{
		secret:   []byte(cfg.Secret),
		issuer:   cfg.Issuer,
		audience: cfg.Audience,
		ttl:      time.Duration(cfg.ExpirationMinutes) * time.Minute,
	}
}

// Generate signs a token for the user and returns it together with its
// absolute expiry.
func (m *TokenManager) Generate(user *models.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(m.ttl)

	claims := Claims{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(user.ID, 10),
			Issuer:    m.issuer,
			Audience:  jwt.ClaimStrings{m.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	if user.FirstName != nil {
		claims.FirstName = *user.FirstName
	}
	if user.LastName != nil {
		claims.LastName = *user.LastName
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, expiresAt, nil
}

// Validate parses and verifies a token. Signature, issuer, audience and
// expiry must all check out; expiry is exact, with no leeway.
func (m *TokenManager) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithAudience(m.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ExtractUserID reads the subject claim without verifying the token. Callers
// must only rely on it after the token has been validated elsewhere.
func (m *TokenManager) ExtractUserID(tokenString string) (uint64, bool) {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return 0, false
	}

	id, err := claims.UserID()
	if err != nil {
		return 0, false
	}

	return id, true
}
