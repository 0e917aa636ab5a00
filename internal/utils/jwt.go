package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type TokenType string

const (
	UserToken  TokenType = "user"
	AdminToken TokenType = "admin"
)

// TokenTTL applies to both customer and admin tokens.
const TokenTTL = 24 * time.Hour

type Claims struct {
	UserID uint   `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Type   string `json:"type"`
	jwt.RegisteredClaims
}

func generateToken(userID uint, email, role string, tokenType TokenType, jwtSecret string) (string, time.Time, error) {
	expirationTime := time.Now().Add(TokenTTL)

	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		Type:   string(tokenType),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expirationTime),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Subject:   email,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expirationTime, nil
}

// GenerateUserToken issues a customer token (24h).
func GenerateUserToken(userID uint, email, jwtSecret string) (string, time.Time, error) {
	return generateToken(userID, email, "customer", UserToken, jwtSecret)
}

// GenerateAdminToken issues an admin bearer token (24h). The role is
// carried in the claims but the gate accepts admin and super_admin
// identically.
func GenerateAdminToken(adminID uint, email, role, jwtSecret string) (string, time.Time, error) {
	return generateToken(adminID, email, role, AdminToken, jwtSecret)
}

// ValidateToken parses and verifies signature and expiry.
func ValidateToken(tokenString, jwtSecret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(jwtSecret), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ValidateAdminToken additionally requires the payload type to be the
// literal "admin". All failure modes collapse into one error so the
// gate never reveals why a token was rejected.
func ValidateAdminToken(tokenString, jwtSecret string) (*Claims, error) {
	claims, err := ValidateToken(tokenString, jwtSecret)
	if err != nil {
		return nil, errors.New("authentication required")
	}
	if claims.Type != string(AdminToken) {
		return nil, errors.New("authentication required")
	}
	return claims, nil
}
