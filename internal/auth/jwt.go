package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"unijobs_backend/internal/config"
	"unijobs_backend/internal/models"
)

var (
	ErrInvalidSessionToken = errors.New("invalid session token")
)

// Claims - полезная нагрузка сессионного токена.
// Для клиента токен остается непрозрачной строкой.
type Claims struct {
	UserID   string          `json:"user_id"`
	UserType models.UserType `json:"user_type"`
	jwt.RegisteredClaims
}

// GenerateToken выпускает сессионный токен для аккаунта
func GenerateToken(userID string, userType models.UserType) (string, error) {
	cfg := config.GetConfig()

	claims := &Claims{
		UserID:   userID,
		UserType: userType,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Duration(cfg.JWT.TTL) * time.Minute)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.JWT.Secret))
}

// ParseToken разбирает и проверяет сессионный токен
func ParseToken(tokenStr string) (*Claims, error) {
	cfg := config.GetConfig()

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSessionToken
		}
		return []byte(cfg.JWT.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidSessionToken
	}
	return claims, nil
}
