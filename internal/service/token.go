// File: internal/service/token.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers malformed structure, signature mismatch and
// expiry in the past. Callers never learn which; the distinction stays
// inside this package.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the signed token payload.
type Claims struct {
	UserID int `json:"id"`
	jwt.RegisteredClaims
}

// Codec signs and verifies bearer tokens with an HS256 secret held for the
// process lifetime. The secret and TTL come from config exactly once at
// startup; the codec never re-reads them.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// seams for tests
var (
	timeNow         = time.Now
	parseWithClaims = jwt.ParseWithClaims
)

// Encode mints a signed token for the given user id. Every token carries
// an expiry claim; the second return value is that expiry.
func (c *Codec) Encode(userID int) (string, time.Time, error) {
	now := timeNow()
	expiresAt := now.Add(c.ttl)
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Decode verifies the signature before reading any claim, requires the
// expiry claim and applies no clock-skew leeway.
func (c *Codec) Decode(tokenString string) (*Claims, error) {
	token, err := parseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}), jwt.WithExpirationRequired())
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
