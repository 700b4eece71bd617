// Package token issues and validates the HS256 bearer tokens API callers use.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	id "tpb/pkg/domain"
	dErrors "tpb/pkg/domain-errors"
)

// Claims are the access token claims.
type Claims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Service handles JWT creation and validation.
type Service struct {
	signingKey []byte
	issuer     string
	audience   string
}

func NewService(signingKey, issuer, audience string) *Service {
	return &Service{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
	}
}

// Issue signs an access token for userID.
func (s *Service) Issue(userID id.UserID, expiresIn time.Duration) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UserID: userID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Audience:  []string{s.audience},
			ID:        uuid.NewString(),
		},
	})
	return t.SignedString(s.signingKey)
}

// Validate checks signature, expiry, issuer and audience and returns the user.
func (s *Service) Validate(tokenString string) (id.UserID, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	}, jwt.WithIssuer(s.issuer), jwt.WithAudience(s.audience))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, dErrors.New(dErrors.CodeUnauthorized, "token has expired")
		}
		return 0, dErrors.New(dErrors.CodeUnauthorized, "invalid token")
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return 0, dErrors.New(dErrors.CodeUnauthorized, "invalid token claims")
	}
	userID, err := id.ParseUserID(claims.UserID)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeUnauthorized, "invalid token subject")
	}
	return userID, nil
}
