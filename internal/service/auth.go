// File: internal/service/auth.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"vidchef/internal/database"
	"vidchef/internal/model"
	"vidchef/internal/store"
)

var (
	// ErrAuthenticationFailed is returned for unknown email and wrong
	// password alike, so responses cannot be used to enumerate accounts.
	ErrAuthenticationFailed = errors.New("invalid credentials")

	// ErrUnauthorized is returned when a presented token cannot be resolved
	// to an existing user.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInvalidInput is returned for malformed credentials, e.g. a blank
	// password on registration.
	ErrInvalidInput = errors.New("invalid credentials input")
)

// Principal is the resolved caller of one authenticated request. It is
// derived from a valid token on every request and never cached.
type Principal struct {
	ID       int
	Email    string
	FullName string
}

// Auth orchestrates registration, login and token resolution over the
// credential store, the password hasher and the token codec.
type Auth struct {
	db    database.DB
	codec *Codec
	cost  int
}

func NewAuth(db database.DB, codec *Codec, bcryptCost int) *Auth {
	return &Auth{db: db, codec: codec, cost: bcryptCost}
}

// Register creates a user and mints a token bound to the new id, so no
// separate login is needed after signing up. A blank password is rejected
// before any storage access.
func (a *Auth) Register(ctx context.Context, email, password, fullName string) (string, time.Time, error) {
	if strings.TrimSpace(password) == "" {
		return "", time.Time{}, ErrInvalidInput
	}

	// Hashing is CPU-bound; do it before touching storage so no
	// transaction stays open while bcrypt runs.
	hash, err := HashPassword(password, a.cost)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("Register: %w", err)
	}

	user, err := store.CreateUser(ctx, a.db, &model.User{
		Email:        email,
		FullName:     fullName,
		PasswordHash: hash,
	})
	if err != nil {
		return "", time.Time{}, err
	}

	return a.codec.Encode(user.ID)
}

// noUserHash is a valid bcrypt hash compared against when the email lookup
// misses, so the miss takes as long as a wrong password.
const noUserHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// Login verifies the email/password pair and mints a token. Unknown email
// and wrong password produce the same ErrAuthenticationFailed, in about
// the same time.
func (a *Auth) Login(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := store.GetUserByEmail(ctx, a.db, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			_ = ComparePassword(noUserHash, password)
			return "", time.Time{}, ErrAuthenticationFailed
		}
		return "", time.Time{}, err
	}

	if err := ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, ErrAuthenticationFailed
	}

	return a.codec.Encode(user.ID)
}

// ResolvePrincipal decodes a bearer token and loads the referenced user.
// Invalid or expired tokens, and tokens whose user has since been deleted,
// all come back as ErrUnauthorized.
func (a *Auth) ResolvePrincipal(ctx context.Context, token string) (*Principal, error) {
	claims, err := a.codec.Decode(token)
	if err != nil {
		return nil, ErrUnauthorized
	}

	user, err := store.GetUserByID(ctx, a.db, claims.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return nil, ErrUnauthorized
		}
		return nil, err
	}

	return &Principal{ID: user.ID, Email: user.Email, FullName: user.FullName}, nil
}
