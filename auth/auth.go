// auth holds credential hashing and the JWT access token format shared by the
// sign-up/login handlers and the request middleware.
package auth

import (
	"os"
	"time"

	"bookmates/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

// Claims carried by every access token.
type Claims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

// GenerateToken creates a signed access token for the given user.
func GenerateToken(userId, name string) (string, error) {
	return GenerateTokenWithExpiry(userId, name, time.Now().Add(tokenLifetime))
}

// GenerateTokenWithExpiry creates a signed access token with a custom expiry,
// used by tests to produce expired tokens.
func GenerateTokenWithExpiry(userId, name string, expiry time.Time) (string, error) {
	claims := Claims{
		UserID: userId,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiry),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret())
	if err != nil {
		return "", errors.Wrap(err, "fail to sign access token")
	}
	return signed, nil
}

// ValidateToken parses and verifies an access token, returning its claims.
// Any parse or signature failure is surfaced as ErrUnauthorized.
func ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return secret(), nil
	})
	if err != nil {
		return nil, errors.Wrap(model.ErrUnauthorized, err.Error())
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.Wrap(model.ErrUnauthorized, "invalid token")
	}
	return claims, nil
}

// HashPassword returns the bcrypt hash stored on the user record.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Wrap(err, "fail to hash password")
	}
	return string(hash), nil
}

// CheckPassword compares a candidate password against the stored hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
