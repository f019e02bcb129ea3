package service

// Тесты сервисного слоя (internal/service/users.go).
//
//  Проверяем:
//  - валидацию входов (UserByID/SearchUsers/CreateUser/UpdateUser/DeleteUser);
//  - маппинг ошибок storage -> service (NotFound / UsernameTaken / Internal);
//  - проекции видимости: собственный профиль против чужого;
//  - response-кэш: байт-в-байт совпадение cache hit и miss, устойчивость
//    к ошибкам кэша;
//  - вычитание двунаправленного множества блокировок из поисковой выдачи
//    с сохранением порядка.
//
// Подготовка окружения:
//   # 1) Сгенерировать моки интерфейсов хранилищ и кэша:
//   mockgen -source=./internal/storage/users.go -destination=./mocks/users_storage.go -package=mocks
//   mockgen -source=./internal/storage/blocks.go -destination=./mocks/blocks_storage.go -package=mocks
//   mockgen -source=./internal/cache/cache.go -destination=./mocks/cache.go -package=mocks
//
//   # 2) Запустить тесты:
//   go test ./internal/service -v -race -count=1

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/pribylovaa/directory-service/internal/config"
	"github.com/pribylovaa/directory-service/internal/models"
	"github.com/pribylovaa/directory-service/internal/storage"
	"github.com/pribylovaa/directory-service/mocks"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testCfg() *config.Config {
	return &config.Config{
		Cache:  config.CacheConfig{TTL: time.Minute},
		Limits: config.LimitsConfig{Search: 15},
	}
}

// newServiceWithMocks поднимает сервис с моками хранилищ и кэша.
func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockUsersStorage, *mocks.MockBlocksStorage, *mocks.MockCache) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mu := mocks.NewMockUsersStorage(ctrl)
	mb := mocks.NewMockBlocksStorage(ctrl)
	mc := mocks.NewMockCache(ctrl)

	return New(mu, mb, mc, testCfg()), mu, mb, mc
}

// mustUser — быстрый хелпер для сборки профиля.
func mustUser(id, username string) *models.User {
	now := time.Now().UTC()
	return &models.User{
		ID:              id,
		Username:        username,
		Name:            "Ivan",
		Surname:         "Petrov",
		Birthdate:       now.AddDate(-30, 0, 0).Unix(),
		PasswordHash:    "$2a$10$fake",
		ThemePreference: models.ThemeLight,
		Meta:            models.MetaInfo{CreatedAt: now.Unix()},
	}
}

func TestService_UserByID_Validation(t *testing.T) {
	s, _, _, _ := newServiceWithMocks(t)

	_, err := s.UserByID(context.Background(), "", "caller")
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.UserByID(context.Background(), "some-id", "  ")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_UserByID_OwnProfile_FullProjection(t *testing.T) {
	s, mu, _, mc := newServiceWithMocks(t)

	id := uuid.NewString()
	user := mustUser(id, "owner_user")

	mc.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
	mu.EXPECT().UserByID(gomock.Any(), id).Return(user, nil)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).Return(nil)

	payload, err := s.UserByID(context.Background(), id, id)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(payload, &got))

	require.Equal(t, id, got["id"])
	require.Equal(t, "owner_user", got["username"])
	require.Contains(t, got, "theme_preference")
	require.Contains(t, got, "meta_info")
	// Парольный материал не попадает даже в собственную проекцию.
	require.NotContains(t, got, "password_hash")
	require.NotContains(t, got, "password_last_updated")
}

func TestService_UserByID_ForeignProfile_PublicProjection(t *testing.T) {
	s, mu, _, mc := newServiceWithMocks(t)

	id := uuid.NewString()
	user := mustUser(id, "target_user")

	mc.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
	mu.EXPECT().UserByID(gomock.Any(), id).Return(user, nil)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).Return(nil)

	payload, err := s.UserByID(context.Background(), id, uuid.NewString())
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(payload, &got))

	// Ровно четыре публичных поля, без id.
	require.Len(t, got, 4)
	require.Contains(t, got, "name")
	require.Contains(t, got, "surname")
	require.Contains(t, got, "username")
	require.Contains(t, got, "birthdate")
}

func TestService_UserByID_CacheHit_ByteIdentical(t *testing.T) {
	s, mu, _, mc := newServiceWithMocks(t)

	id := uuid.NewString()
	caller := uuid.NewString()
	user := mustUser(id, "cached_user")

	var cached []byte

	// Первый вызов: miss -> storage -> Set.
	mc.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
	mu.EXPECT().UserByID(gomock.Any(), id).Return(user, nil)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).
		DoAndReturn(func(_ context.Context, _ string, payload []byte, _ time.Duration) error {
			cached = payload
			return nil
		})

	first, err := s.UserByID(context.Background(), id, caller)
	require.NoError(t, err)

	// Второй вызов: hit, storage не трогаем.
	mc.EXPECT().Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) ([]byte, bool, error) {
			return cached, true, nil
		})

	second, err := s.UserByID(context.Background(), id, caller)
	require.NoError(t, err)
	require.Equal(t, []byte(first), []byte(second))
}

func TestService_UserByID_CacheErrors_TreatedAsMiss(t *testing.T) {
	s, mu, _, mc := newServiceWithMocks(t)

	id := uuid.NewString()
	user := mustUser(id, "resilient_user")

	mc.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, errors.New("redis down"))
	mu.EXPECT().UserByID(gomock.Any(), id).Return(user, nil)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).Return(errors.New("redis down"))

	payload, err := s.UserByID(context.Background(), id, id)
	require.NoError(t, err)
	require.NotEmpty(t, payload)
}

func TestService_UserByID_NotFound(t *testing.T) {
	s, mu, _, mc := newServiceWithMocks(t)

	id := uuid.NewString()

	mc.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
	mu.EXPECT().UserByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	_, err := s.UserByID(context.Background(), id, id)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_SearchUsers_Validation(t *testing.T) {
	s, _, _, _ := newServiceWithMocks(t)

	// Ни одного параметра.
	_, err := s.SearchUsers(context.Background(), SearchUsersInput{}, "caller")
	require.ErrorIs(t, err, ErrInvalidArgument)

	// Пустой caller.
	_, err = s.SearchUsers(context.Background(), SearchUsersInput{Username: "iv"}, "")
	require.ErrorIs(t, err, ErrInvalidArgument)

	// Отрицательный возраст.
	_, err = s.SearchUsers(context.Background(), SearchUsersInput{MinAge: -1}, "caller")
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_SearchUsers_BidirectionalBlockExclusion(t *testing.T) {
	s, mu, mb, mc := newServiceWithMocks(t)

	caller := uuid.NewString()
	blockedByCaller := mustUser(uuid.NewString(), "ivan_blocked")
	blockerOfCaller := mustUser(uuid.NewString(), "ivan_blocker")
	visible := mustUser(uuid.NewString(), "ivan_visible")

	mc.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
	mu.EXPECT().SearchUsers(gomock.Any(), storage.SearchQuery{
		Username:  "ivan",
		ExcludeID: caller,
	}).Return([]models.User{*blockedByCaller, *blockerOfCaller, *visible}, nil)
	mb.EXPECT().BlockedIDs(gomock.Any(), caller,
		[]string{blockedByCaller.ID, blockerOfCaller.ID, visible.ID}).
		Return([]string{blockedByCaller.ID, blockerOfCaller.ID}, nil)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).Return(nil)

	payload, err := s.SearchUsers(context.Background(), SearchUsersInput{Username: "ivan"}, caller)
	require.NoError(t, err)

	var got []PublicProfile
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Len(t, got, 1)
	require.Equal(t, "ivan_visible", got[0].Username)
}

func TestService_SearchUsers_NoBlocks_PreservesOrder(t *testing.T) {
	s, mu, mb, mc := newServiceWithMocks(t)

	caller := uuid.NewString()
	first := mustUser(uuid.NewString(), "ivan_first")
	second := mustUser(uuid.NewString(), "ivan_second")

	mc.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
	mu.EXPECT().SearchUsers(gomock.Any(), gomock.Any()).
		Return([]models.User{*first, *second}, nil)
	mb.EXPECT().BlockedIDs(gomock.Any(), caller, gomock.Any()).Return(nil, nil)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any(), time.Minute).Return(nil)

	payload, err := s.SearchUsers(context.Background(), SearchUsersInput{Username: "ivan"}, caller)
	require.NoError(t, err)

	var got []PublicProfile
	require.NoError(t, json.Unmarshal(payload, &got))
	require.Len(t, got, 2)
	require.Equal(t, "ivan_first", got[0].Username)
	require.Equal(t, "ivan_second", got[1].Username)
}

func TestService_SearchUsers_CacheHit_SkipsStorage(t *testing.T) {
	s, _, _, mc := newServiceWithMocks(t)

	cached := []byte(`[{"name":"Ivan","surname":"Petrov","username":"cached","birthdate":0}]`)
	mc.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cached, true, nil)

	payload, err := s.SearchUsers(context.Background(), SearchUsersInput{MinAge: 18}, "caller")
	require.NoError(t, err)
	require.Equal(t, cached, []byte(payload))
}

func TestService_SearchUsers_EmptyResult_IsCached(t *testing.T) {
	s, mu, mb, mc := newServiceWithMocks(t)

	caller := uuid.NewString()

	mc.EXPECT().Get(gomock.Any(), gomock.Any()).Return(nil, false, nil)
	mu.EXPECT().SearchUsers(gomock.Any(), gomock.Any()).Return(nil, nil)
	mb.EXPECT().BlockedIDs(gomock.Any(), caller, []string{}).Return(nil, nil)
	mc.EXPECT().Set(gomock.Any(), gomock.Any(), []byte("[]"), time.Minute).Return(nil)

	payload, err := s.SearchUsers(context.Background(), SearchUsersInput{MinAge: 18, MaxAge: 30}, caller)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(payload))
}

func TestService_CreateUser_Validation(t *testing.T) {
	s, _, _, _ := newServiceWithMocks(t)

	_, err := s.CreateUser(context.Background(), CreateUserInput{
		Name: "Ivan", Password: "Passw0rd!", Birthdate: 1,
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = s.CreateUser(context.Background(), CreateUserInput{
		Name: "Ivan", Username: "ivan", Password: "Passw0rd!", Birthdate: 1,
		ThemePreference: models.ThemePreference("violet"),
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestService_CreateUser_OK(t *testing.T) {
	s, mu, _, _ := newServiceWithMocks(t)

	var saved *models.User

	mu.EXPECT().UserByUsername(gomock.Any(), "new_user").Return("", storage.ErrNotFound)
	mu.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			saved = u
			return nil
		})

	profile, err := s.CreateUser(context.Background(), CreateUserInput{
		Name:      "Ivan",
		Surname:   "Petrov",
		Username:  "new_user",
		Birthdate: time.Now().UTC().AddDate(-25, 0, 0).Unix(),
		Password:  "Passw0rd!",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	require.NotEmpty(t, saved.ID)
	require.Equal(t, saved.ID, profile.ID)
	// Тема по умолчанию.
	require.Equal(t, models.ThemeLight, profile.ThemePreference)
	// Пароль хэширован bcrypt и проверяется обратно.
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.PasswordHash), []byte("Passw0rd!")))
	require.NotZero(t, saved.PasswordLastUpdated)
	require.NotZero(t, saved.Meta.CreatedAt)
}

func TestService_CreateUser_UsernameTaken(t *testing.T) {
	s, mu, _, _ := newServiceWithMocks(t)

	in := CreateUserInput{
		Name: "Ivan", Username: "taken", Password: "Passw0rd!", Birthdate: 1,
	}

	// Предпроверка.
	mu.EXPECT().UserByUsername(gomock.Any(), "taken").Return("taken", nil)
	_, err := s.CreateUser(context.Background(), in)
	require.ErrorIs(t, err, ErrUsernameTaken)

	// Проигранная гонка: предпроверка прошла, вставка упёрлась в индекс.
	mu.EXPECT().UserByUsername(gomock.Any(), "taken").Return("", storage.ErrNotFound)
	mu.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(storage.ErrAlreadyExists)
	_, err = s.CreateUser(context.Background(), in)
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_UpdateUser_ForeignProfile_Unauthorized(t *testing.T) {
	s, _, _, _ := newServiceWithMocks(t)

	name := "Ivan"
	_, err := s.UpdateUser(context.Background(), uuid.NewString(), uuid.NewString(), UpdateUserInput{Name: &name})
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestService_UpdateUser_OK_PasswordRotation(t *testing.T) {
	s, mu, _, _ := newServiceWithMocks(t)

	id := uuid.NewString()
	current := mustUser(id, "upd_user")
	password := "NewPassw0rd!"

	mu.EXPECT().UserByID(gomock.Any(), id).Return(current, nil)
	mu.EXPECT().UpdateUser(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, upd storage.UserUpdate) (*models.User, error) {
			require.NotNil(t, upd.PasswordHash)
			require.NotNil(t, upd.PasswordLastUpdated)
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(*upd.PasswordHash), []byte(password)))

			out := *current
			out.PasswordHash = *upd.PasswordHash
			out.PasswordLastUpdated = *upd.PasswordLastUpdated
			return &out, nil
		})

	profile, err := s.UpdateUser(context.Background(), id, id, UpdateUserInput{Password: &password})
	require.NoError(t, err)
	require.Equal(t, id, profile.ID)
}

func TestService_UpdateUser_UsernameCollision(t *testing.T) {
	s, mu, _, _ := newServiceWithMocks(t)

	id := uuid.NewString()
	current := mustUser(id, "old_name")
	taken := "taken_name"

	mu.EXPECT().UserByID(gomock.Any(), id).Return(current, nil)
	mu.EXPECT().UserByUsername(gomock.Any(), taken).Return(taken, nil)

	_, err := s.UpdateUser(context.Background(), id, id, UpdateUserInput{Username: &taken})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestService_UpdateUser_SameUsername_NoCollisionCheck(t *testing.T) {
	s, mu, _, _ := newServiceWithMocks(t)

	id := uuid.NewString()
	current := mustUser(id, "same_name")
	same := "same_name"

	// UserByUsername не вызывается: имя не меняется.
	mu.EXPECT().UserByID(gomock.Any(), id).Return(current, nil)
	mu.EXPECT().UpdateUser(gomock.Any(), id, gomock.Any()).Return(current, nil)

	_, err := s.UpdateUser(context.Background(), id, id, UpdateUserInput{Username: &same})
	require.NoError(t, err)
}

func TestService_UpdateUser_NotFound(t *testing.T) {
	s, mu, _, _ := newServiceWithMocks(t)

	id := uuid.NewString()
	name := "Ivan"

	mu.EXPECT().UserByID(gomock.Any(), id).Return(nil, storage.ErrNotFound)

	_, err := s.UpdateUser(context.Background(), id, id, UpdateUserInput{Name: &name})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestService_DeleteUser(t *testing.T) {
	s, mu, _, _ := newServiceWithMocks(t)

	id := uuid.NewString()

	// Чужой профиль.
	err := s.DeleteUser(context.Background(), id, uuid.NewString())
	require.ErrorIs(t, err, ErrUnauthorized)

	// Отсутствующий.
	mu.EXPECT().SoftDeleteUser(gomock.Any(), id).Return(storage.ErrNotFound)
	err = s.DeleteUser(context.Background(), id, id)
	require.ErrorIs(t, err, ErrNotFound)

	// Happy-path.
	mu.EXPECT().SoftDeleteUser(gomock.Any(), id).Return(nil)
	require.NoError(t, s.DeleteUser(context.Background(), id, id))
}
