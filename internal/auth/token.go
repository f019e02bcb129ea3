// Package auth выпускает и проверяет access-токены сервиса (HS256).
//
// Токен несёт идентификатор пользователя в клейме "uid"; именно он
// становится callerID для всех операций каталога.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Ошибки уровня auth. Транспорт маппит обе в 401 Unauthorized.
var (
	// ErrInvalidToken — токен не прошёл проверку подписи или структуры.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — срок действия токена истёк.
	ErrTokenExpired = errors.New("token expired")
)

type accessClaims struct {
	UserID string `json:"uid"`
	jwt.RegisteredClaims
}

// Manager подписывает и валидирует токены одним симметричным секретом.
type Manager struct {
	secret   []byte
	tokenTTL time.Duration
}

func NewManager(secret string, tokenTTL time.Duration) *Manager {
	return &Manager{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

// IssueToken выпускает подписанный токен для userID.
func (m *Manager) IssueToken(userID string) (string, error) {
	const op = "auth/token/IssueToken"

	now := time.Now().UTC()
	claims := accessClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return signed, nil
}

// ParseToken проверяет подпись и срок действия токена и возвращает
// идентификатор пользователя из клейма "uid".
func (m *Manager) ParseToken(tokenStr string) (string, error) {
	const op = "auth/token/ParseToken"

	token, err := jwt.ParseWithClaims(tokenStr, &accessClaims{},
		func(t *jwt.Token) (interface{}, error) {
			if t.Method != jwt.SigningMethodHS256 {
				return nil, fmt.Errorf("%s: %w", op, ErrInvalidToken)
			}

			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(5*time.Second),
	)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", fmt.Errorf("%s: %w", op, ErrTokenExpired)
		}

		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	claims, ok := token.Claims.(*accessClaims)
	if !ok || !token.Valid || claims.UserID == "" {
		return "", fmt.Errorf("%s: %w", op, ErrInvalidToken)
	}

	return claims.UserID, nil
}
