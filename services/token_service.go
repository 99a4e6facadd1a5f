package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/mirkashi/Grazieoutfits/models"
)

// tokenTTL is how long an issued admin token stays valid.
const tokenTTL = 7 * 24 * time.Hour

// TokenService issues and validates HS256 bearer tokens for admin sessions.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a new TokenService.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Generate signs a token carrying the admin's id, username, and role.
func (s *TokenService) Generate(admin *models.Admin) (string, error) {
	claims := jwt.MapClaims{
		"id":       admin.ID.Hex(),
		"username": admin.Username,
		"role":     admin.Role,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Validate parses tokenStr and returns its claims. Signature, expiry, and
// signing method are all checked; any failure is reported the same way.
func (s *TokenService) Validate(tokenStr string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}
