package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	appErrors "team-portal/pkg/errors"
)

// SessionClaims is the identity embedded in a session token. The token
// is the only session state; there is no server-side session table.
type SessionClaims struct {
	UserID uuid.UUID `json:"id"`
	Email  string    `json:"email"`
	Name   string    `json:"name"`
	Role   string    `json:"role"`
	jwt.RegisteredClaims
}

// GenerateSessionToken mints a signed HS256 token for the given
// identity, valid for expiryHours from now.
func GenerateSessionToken(userID uuid.UUID, email, name, role, secret string, expiryHours int) (string, error) {
	now := time.Now()
	claims := SessionClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expiryHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSessionToken recomputes the signature and checks expiry.
// Returns ErrTokenExpired past the expiry instant and ErrTokenInvalid
// for a bad signature or malformed token.
func ValidateSessionToken(tokenString, secret string) (*SessionClaims, error) {
	claims := &SessionClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, appErrors.ErrTokenExpired
		}
		return nil, appErrors.ErrTokenInvalid
	}

	if !token.Valid {
		return nil, appErrors.ErrTokenInvalid
	}

	return claims, nil
}

// GenerateResetToken returns 32 random bytes hex-encoded, the opaque
// value stored with a password-reset request.
func GenerateResetToken() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		// crypto/rand failing means the process has no usable entropy
		// source; nothing sensible can be issued.
		panic(err)
	}
	return hex.EncodeToString(bytes)
}
