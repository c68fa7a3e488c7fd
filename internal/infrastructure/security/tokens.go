// Package security holds the bearer token issuers and the password hasher.
package security

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/hearthapp/hearth-api/internal/core/domain"
)

// IDTokens hands out the user's store ID as the bearer token. Tokens never
// expire; they stay valid for as long as the account exists.
type IDTokens struct{}

func (IDTokens) Issue(user *domain.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", errors.New("issue token: user has no id")
	}
	return user.ID, nil
}

func (IDTokens) Resolve(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", domain.ErrUnauthorized
	}
	return token, nil
}

type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTTokens issues HS256-signed, expiring tokens whose subject is the user ID.
type JWTTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTTokens(secret string, ttl time.Duration) *JWTTokens {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTTokens{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *JWTTokens) Issue(user *domain.User) (string, error) {
	if user == nil || user.ID == "" {
		return "", errors.New("issue token: user has no id")
	}

	now := t.now()
	claims := tokenClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (t *JWTTokens) Resolve(token string) (string, error) {
	claims := &tokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrUnauthorized
	}
	return claims.Subject, nil
}
