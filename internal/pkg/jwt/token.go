package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/kshitijrv/mingle/internal/pkg/models"
)

// Validation outcomes. Expired and malformed/forged tokens are classified
// distinctly so callers can answer with the right status.
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// SessionClaims is the claim set carried by a session token
type SessionClaims struct {
	UserID uuid.UUID
	Email  string
}

// GenerateToken mints a signed session token for the given user
func GenerateToken(userID uuid.UUID, email string, cfg *models.Config) (string, int64, error) {
	expirationTime := time.Now().Add(time.Duration(cfg.JWT.Expiration) * time.Hour)
	expiresAt := expirationTime.Unix()

	claims := jwt.MapClaims{
		"id":    userID.String(),
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt,
		"iss":   cfg.JWT.Issuer,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(cfg.JWT.Secret))
	if err != nil {
		return "", 0, err
	}

	return tokenString, expiresAt, nil
}

// ValidateToken checks the signature and expiry of a session token and
// returns its claims. Returns ErrTokenExpired for expired tokens and
// ErrTokenInvalid for anything that fails to decode or verify.
func ValidateToken(tokenString string, secret string) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	idStr, ok := claims["id"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}
	userID, err := uuid.Parse(idStr)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return &SessionClaims{UserID: userID, Email: email}, nil
}
