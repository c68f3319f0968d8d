package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	uuid "github.com/satori/go.uuid"

	"snapgram/apperr"
	"snapgram/models"
)

type Claims struct {
	UserID string `json:"id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenMaker signs and verifies HS256 JWTs carrying (id, role).
type TokenMaker struct {
	secret    []byte
	expiresIn time.Duration
}

func NewTokenMaker(secret string, expiresIn time.Duration) *TokenMaker {
	return &TokenMaker{secret: []byte(secret), expiresIn: expiresIn}
}

func (m *TokenMaker) Sign(id uuid.UUID, role models.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: id.String(),
		Role:   string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expiresIn)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

func (m *TokenMaker) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperr.New(apperr.InvalidToken, "unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, apperr.Wrap(apperr.InvalidToken, "invalid token", err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, apperr.New(apperr.InvalidToken, "invalid token")
	}
	id, err := uuid.FromString(claims.UserID)
	if err != nil {
		return nil, apperr.New(apperr.InvalidToken, "invalid token")
	}
	return &Identity{ID: id, Role: models.Role(claims.Role)}, nil
}
