package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/gauravkdm/admin-portal/internal/domain/auth"
	"github.com/gauravkdm/admin-portal/internal/pkg/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const issuer = "admin-portal"

// Claims are the JWT claims of an admin session
type Claims struct {
	Phone     string `json:"phone"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Avatar    string `json:"avatar"`
	IsAdmin   bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// JWTManager issues and parses HS256-signed session tokens
type JWTManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTManager creates a JWTManager from the session settings
func NewJWTManager(settings *config.SessionSettings) (*JWTManager, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return &JWTManager{
		secret: []byte(settings.Secret),
		ttl:    settings.TTL,
		now:    time.Now,
	}, nil
}

// Issue signs a token for the principal valid for the configured TTL
func (m *JWTManager) Issue(principal auth.Principal) (*auth.Session, error) {
	now := m.now()
	expiresAt := now.Add(m.ttl)

	claims := &Claims{
		Phone:     principal.Phone,
		FirstName: principal.FirstName,
		LastName:  principal.LastName,
		Avatar:    principal.Avatar,
		IsAdmin:   principal.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Subject:   principal.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session: %w", err)
	}

	return &auth.Session{
		Token:     signed,
		ExpiresAt: expiresAt,
		User:      principal,
	}, nil
}

// Parse verifies the signature and expiry and returns the principal
func (m *JWTManager) Parse(tokenStr string) (*auth.Principal, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid session: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid session")
	}

	return &auth.Principal{
		UserID:    claims.Subject,
		Phone:     claims.Phone,
		FirstName: claims.FirstName,
		LastName:  claims.LastName,
		Avatar:    claims.Avatar,
		IsAdmin:   claims.IsAdmin,
	}, nil
}
