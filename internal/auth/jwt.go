package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claim keys carried in every access token.
const (
	ClaimUserID = "userID"
	ClaimEmail  = "email"
	ClaimRole   = "role"
)

// tokenTTL bounds how long an editor session lives before the user has
// to log in again.
const tokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

func getJWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

func GenerateToken(userID, email, role string) (string, error) {
	if userID == "" {
		return "", errors.New("empty userID passed to GenerateToken")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		ClaimUserID: userID,
		ClaimEmail:  email,
		ClaimRole:   role,
		"exp":       time.Now().Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken checks signature and expiry and returns the identity
// claims in (userID, email, role) order.
func ValidateToken(tokenString string) (string, string, string, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return "", "", "", err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return "", "", "", ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", "", ErrInvalidToken
	}

	userID, _ := claims[ClaimUserID].(string)
	email, _ := claims[ClaimEmail].(string)
	role, _ := claims[ClaimRole].(string)

	return userID, email, role, nil
}
