package infrastructure

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var errInvalidToken = errors.New("invalid session token")

// TokenService signs and verifies the cookie value. The cookie carries only
// a session id; the id must still resolve in the SessionStore, so logout
// invalidates the token even before its exp.
type TokenService struct {
	secretKey []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secretKey: []byte(secret)}
}

func (t *TokenService) Issue(sessionID string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sid": sessionID,
		"exp": time.Now().Add(ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secretKey)
}

// Parse returns the session id embedded in a valid token. Any failure mode
// (bad signature, wrong method, expired, malformed claims) collapses to a
// single error: the caller treats it as anonymous.
func (t *TokenService) Parse(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return t.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errInvalidToken
	}

	sessionID, ok := claims["sid"].(string)
	if !ok || sessionID == "" {
		return "", errInvalidToken
	}
	return sessionID, nil
}
