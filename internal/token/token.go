// Package token issues and verifies the signed access/refresh token pair.
// Tokens are stateless: nothing is persisted server-side and logout is a
// client-side discard.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Kind distinguishes the two token classes. Each class is signed with
// its own secret so compromise of one cannot forge the other.
type Kind string

const (
	KindAccess  Kind = "access"
	KindRefresh Kind = "refresh"
)

// Lifetimes are fixed policy: short-lived access, 7-day refresh.
const (
	AccessTTL  = 15 * time.Minute
	RefreshTTL = 7 * 24 * time.Hour
)

const issuer = "inkwell-api"

var (
	// ErrExpired marks a token past its expiry.
	ErrExpired = errors.New("token expired")
	// ErrMalformed covers every other verification failure: bad signature,
	// wrong signing method, wrong class, garbage input.
	ErrMalformed = errors.New("token malformed or invalid")
)

// Pair is an access/refresh token pair issued together.
type Pair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Manager signs and verifies tokens.
type Manager struct {
	accessSecret  []byte
	refreshSecret []byte
}

// NewManager returns a Manager using the two class secrets.
func NewManager(accessSecret, refreshSecret string) *Manager {
	return &Manager{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}
}

// Issue mints a fresh token pair for the given user id.
func (m *Manager) Issue(userID string) (Pair, error) {
	access, err := m.sign(userID, KindAccess, AccessTTL)
	if err != nil {
		return Pair{}, err
	}
	refresh, err := m.sign(userID, KindRefresh, RefreshTTL)
	if err != nil {
		return Pair{}, err
	}
	return Pair{Access: access, Refresh: refresh}, nil
}

func (m *Manager) sign(userID string, kind Kind, ttl time.Duration) (string, error) {
	secret := m.secretFor(kind)
	if len(secret) == 0 {
		return "", fmt.Errorf("%s token secret not configured", kind)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"kind": string(kind),
		"iss":  issuer,
		"iat":  now.Unix(),
		"nbf":  now.Unix(),
		"exp":  now.Add(ttl).Unix(),
		"jti":  fmt.Sprintf("%d-%s", now.Unix(), uuid.NewString()[:8]),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Verify checks a token against the given class and returns the subject
// user id. Failures are always ErrExpired or ErrMalformed; nothing else
// escapes.
func (m *Manager) Verify(tokenString string, kind Kind) (string, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return m.secretFor(kind), nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrMalformed
	}
	if !tok.Valid {
		return "", ErrMalformed
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrMalformed
	}
	// Class check on top of the per-class secret, so a token signed while
	// both secrets were identical still cannot cross classes.
	if k, _ := claims["kind"].(string); k != string(kind) {
		return "", ErrMalformed
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", ErrMalformed
	}
	return sub, nil
}

func (m *Manager) secretFor(kind Kind) []byte {
	if kind == KindRefresh {
		return m.refreshSecret
	}
	return m.accessSecret
}
