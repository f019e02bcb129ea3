package service

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/directory-service/internal/storage"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestService_Authenticate_Validation(t *testing.T) {
	s, _, _, _ := newServiceWithMocks(t)

	_, err := s.Authenticate(context.Background(), "", "Passw0rd!")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.Authenticate(context.Background(), "some_user", "")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_Authenticate_OK(t *testing.T) {
	s, mu, _, _ := newServiceWithMocks(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("Passw0rd!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := mustUser(uuid.NewString(), "auth_user")
	user.PasswordHash = string(hash)

	mu.EXPECT().UserCredentials(gomock.Any(), "auth_user").Return(user, nil)

	id, err := s.Authenticate(context.Background(), "auth_user", "Passw0rd!")
	require.NoError(t, err)
	require.Equal(t, user.ID, id)
}

func TestService_Authenticate_UnknownUser_And_WrongPassword_SameError(t *testing.T) {
	s, mu, _, _ := newServiceWithMocks(t)

	// Неизвестный username.
	mu.EXPECT().UserCredentials(gomock.Any(), "ghost").Return(nil, storage.ErrNotFound)
	_, err := s.Authenticate(context.Background(), "ghost", "Passw0rd!")
	require.ErrorIs(t, err, ErrUnauthorized)

	// Неверный пароль — та же ошибка, существование аккаунта не раскрывается.
	hash, hashErr := bcrypt.GenerateFromPassword([]byte("Correct0ne!"), bcrypt.MinCost)
	require.NoError(t, hashErr)

	user := mustUser(uuid.NewString(), "known_user")
	user.PasswordHash = string(hash)

	mu.EXPECT().UserCredentials(gomock.Any(), "known_user").Return(user, nil)
	_, err = s.Authenticate(context.Background(), "known_user", "Wrong0ne!")
	require.ErrorIs(t, err, ErrUnauthorized)
}
