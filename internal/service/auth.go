package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/directory-service/internal/storage"
	"github.com/pribylovaa/directory-service/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

// Authenticate проверяет пару username/password и возвращает id пользователя.
//
// При неизвестном username и при неверном пароле возвращается одна и та же
// ErrUnauthorized: ответ не раскрывает, существует ли учётная запись.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	const op = "service/auth/Authenticate"

	lg := log.From(ctx).With("op", op)

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		lg.Warn("invalid argument: empty credentials")

		return "", fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	user, err := s.users.UserCredentials(ctx, username)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("unknown username")

			return "", fmt.Errorf("%s: %w", op, ErrUnauthorized)
		default:
			lg.Error("storage error on UserCredentials", "err", err)

			return "", fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		lg.Warn("password mismatch")

		return "", fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	return user.ID, nil
}
