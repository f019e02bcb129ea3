package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pribylovaa/directory-service/internal/cache"
	"github.com/pribylovaa/directory-service/internal/models"
	"github.com/pribylovaa/directory-service/internal/storage"
	"github.com/pribylovaa/directory-service/pkg/log"
	"golang.org/x/crypto/bcrypt"
)

// Входные структуры сервисного слоя.

type CreateUserInput struct {
	Name            string
	Surname         string
	Username        string
	Birthdate       int64
	Password        string
	ThemePreference models.ThemePreference
}

// UpdateUserInput — частичный апдейт: обновляются только поля с непустыми
// указателями. Password при обновлении хэшируется заново, фиксируется
// момент смены.
type UpdateUserInput struct {
	Name            *string
	Surname         *string
	Username        *string
	Birthdate       *int64
	Password        *string
	ThemePreference *models.ThemePreference
}

// SearchUsersInput — параметры поиска; нулевые значения означают
// «параметр не задан».
type SearchUsersInput struct {
	Username string
	MinAge   int32
	MaxAge   int32
}

// UserByID возвращает проекцию профиля для вызывающего.
//
// Поведение:
//   - ответ кэшируется по ключу (get, id, callerID) на cfg.Cache.TTL;
//     попадание возвращает байт-в-байт тот же payload, что и промах;
//   - отсутствующий или мягко удалённый профиль — ErrNotFound;
//   - граф блокировок НЕ консультируется: блокировка влияет на
//     обнаружимость в поиске, а не на прямой доступ по известному id;
//   - ошибки кэша не фатальны (трактуются как промах и логируются).
func (s *Service) UserByID(ctx context.Context, id, callerID string) (json.RawMessage, error) {
	const op = "service/users/UserByID"

	lg := log.From(ctx).With("op", op, "user_id", id)

	if strings.TrimSpace(id) == "" || strings.TrimSpace(callerID) == "" {
		lg.Warn("invalid argument: empty id or caller_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	key := cache.GetKey(id, callerID)

	if payload, ok, err := s.cache.Get(ctx, key); err != nil {
		lg.Warn("cache get failed", "err", err)
	} else if ok {
		return payload, nil
	}

	user, err := s.users.UserByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByID", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	payload, err := json.Marshal(Project(user, callerID))
	if err != nil {
		lg.Error("marshal failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if err := s.cache.Set(ctx, key, payload, s.cfg.Cache.TTL); err != nil {
		lg.Warn("cache set failed", "err", err)
	}

	return payload, nil
}

// SearchUsers выполняет поиск профилей от имени callerID.
//
// Порядок шагов:
//  1. хотя бы один параметр (username/minAge/maxAge) обязателен —
//     иначе ErrInvalidArgument;
//  2. кэш по ключу (search, callerID, параметры);
//  3. запрос к хранилищу с excludeId=callerID;
//  4. вычисление множества исключений по графу блокировок
//     (одним запросом, обе стороны ребра);
//  5. вычитание исключений с сохранением порядка выдачи хранилища;
//  6. публичные проекции результата; id кандидатов в ответ не входят.
func (s *Service) SearchUsers(ctx context.Context, input SearchUsersInput, callerID string) (json.RawMessage, error) {
	const op = "service/users/SearchUsers"

	lg := log.From(ctx).With("op", op, "caller_id", callerID)

	if strings.TrimSpace(callerID) == "" {
		lg.Warn("invalid argument: empty caller_id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	input.Username = strings.TrimSpace(input.Username)

	if input.Username == "" && input.MinAge == 0 && input.MaxAge == 0 {
		lg.Warn("invalid argument: no search parameters")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if input.MinAge < 0 || input.MaxAge < 0 {
		lg.Warn("invalid argument: negative age bound")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	key := cache.SearchKey(callerID, input.Username, input.MinAge, input.MaxAge)

	if payload, ok, err := s.cache.Get(ctx, key); err != nil {
		lg.Warn("cache get failed", "err", err)
	} else if ok {
		return payload, nil
	}

	found, err := s.users.SearchUsers(ctx, storage.SearchQuery{
		Username:  input.Username,
		MinAge:    input.MinAge,
		MaxAge:    input.MaxAge,
		ExcludeID: callerID,
	})
	if err != nil {
		lg.Error("storage error on SearchUsers", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	candidateIDs := make([]string, 0, len(found))
	for _, u := range found {
		candidateIDs = append(candidateIDs, u.ID)
	}

	blockedIDs, err := s.blocks.BlockedIDs(ctx, callerID, candidateIDs)
	if err != nil {
		lg.Error("storage error on BlockedIDs", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	blocked := make(map[string]struct{}, len(blockedIDs))
	for _, id := range blockedIDs {
		blocked[id] = struct{}{}
	}

	views := make([]PublicProfile, 0, len(found))
	for _, u := range found {
		if _, ok := blocked[u.ID]; ok {
			continue
		}

		views = append(views, PublicView(&u))
	}

	payload, err := json.Marshal(views)
	if err != nil {
		lg.Error("marshal failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	if err := s.cache.Set(ctx, key, payload, s.cfg.Cache.TTL); err != nil {
		lg.Warn("cache set failed", "err", err)
	}

	return payload, nil
}

// CreateUser создаёт новый профиль.
//
// Поведение:
//   - дружелюбная предпроверка занятости username (ErrUsernameTaken);
//     гонку конкурентных создателей разрешает уникальный индекс БД —
//     проигравший также получает ErrUsernameTaken;
//   - id — новый uuid, пароль хэшируется bcrypt, тема по умолчанию light;
//   - возвращает полную (собственную) проекцию созданного профиля.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (*OwnerProfile, error) {
	const op = "service/users/CreateUser"

	lg := log.From(ctx).With("op", op)

	input.Username = strings.TrimSpace(input.Username)
	input.Name = strings.TrimSpace(input.Name)
	input.Surname = strings.TrimSpace(input.Surname)

	if input.Username == "" || input.Name == "" || input.Password == "" || input.Birthdate == 0 {
		lg.Warn("invalid argument: missing required field")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	theme := input.ThemePreference
	if theme == "" {
		theme = models.ThemeLight
	}
	if !theme.Valid() {
		lg.Warn("invalid argument: unknown theme preference", "theme", string(theme))

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.users.UserByUsername(ctx, input.Username); err == nil {
		lg.Warn("username already taken", "username", input.Username)

		return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
	} else if !errors.Is(err, storage.ErrNotFound) {
		lg.Error("storage error on UserByUsername", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		lg.Error("password hash failed", "err", err)

		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	now := time.Now().UTC().Unix()
	user := &models.User{
		ID:                  uuid.NewString(),
		Username:            input.Username,
		Name:                input.Name,
		Surname:             input.Surname,
		Birthdate:           input.Birthdate,
		PasswordHash:        string(hash),
		PasswordLastUpdated: now,
		ThemePreference:     theme,
		Meta:                models.MetaInfo{CreatedAt: now},
	}

	if err := s.users.CreateUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("username already taken (lost creation race)", "username", input.Username)

			return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
		default:
			lg.Error("storage error on CreateUser", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	view := OwnerView(user)

	return &view, nil
}

// UpdateUser выполняет частичное обновление собственного профиля.
//
// Поведение:
//   - callerID != id — ErrUnauthorized (профиль мутирует только владелец);
//   - отсутствующий/удалённый профиль — ErrNotFound;
//   - смена username на занятое имя — ErrUsernameTaken (предпроверка плюс
//     уникальный индекс на случай гонки);
//   - новый пароль хэшируется, фиксируется password_last_updated;
//   - возвращает полную проекцию обновлённого документа.
func (s *Service) UpdateUser(ctx context.Context, id, callerID string, input UpdateUserInput) (*OwnerProfile, error) {
	const op = "service/users/UpdateUser"

	lg := log.From(ctx).With("op", op, "user_id", id)

	if strings.TrimSpace(id) == "" {
		lg.Warn("invalid argument: empty id")

		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if callerID != id {
		lg.Warn("update of foreign profile rejected", "caller_id", callerID)

		return nil, fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	current, err := s.users.UserByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on UserByID", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	upd := storage.UserUpdate{}

	if input.Name != nil {
		val := strings.TrimSpace(*input.Name)
		if val == "" {
			lg.Warn("invalid argument: empty name in update")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		upd.Name = &val
	}

	if input.Surname != nil {
		val := strings.TrimSpace(*input.Surname)
		if val == "" {
			lg.Warn("invalid argument: empty surname in update")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		upd.Surname = &val
	}

	if input.Username != nil {
		val := strings.TrimSpace(*input.Username)
		if val == "" {
			lg.Warn("invalid argument: empty username in update")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		if val != current.Username {
			if _, err := s.users.UserByUsername(ctx, val); err == nil {
				lg.Warn("username already taken", "username", val)

				return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
			} else if !errors.Is(err, storage.ErrNotFound) {
				lg.Error("storage error on UserByUsername", "err", err)

				return nil, fmt.Errorf("%s: %w", op, ErrInternal)
			}
		}

		upd.Username = &val
	}

	if input.Birthdate != nil {
		if *input.Birthdate == 0 {
			lg.Warn("invalid argument: zero birthdate in update")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		upd.Birthdate = input.Birthdate
	}

	if input.Password != nil {
		if *input.Password == "" {
			lg.Warn("invalid argument: empty password in update")

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			lg.Error("password hash failed", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		hashStr := string(hash)
		lastUpdated := time.Now().UTC().Unix()
		upd.PasswordHash = &hashStr
		upd.PasswordLastUpdated = &lastUpdated
	}

	if input.ThemePreference != nil {
		if !input.ThemePreference.Valid() {
			lg.Warn("invalid argument: unknown theme preference", "theme", string(*input.ThemePreference))

			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		}

		upd.ThemePreference = input.ThemePreference
	}

	updated, err := s.users.UpdateUser(ctx, id, upd)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found on update")

			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		case errors.Is(err, storage.ErrAlreadyExists):
			lg.Warn("username already taken (lost update race)")

			return nil, fmt.Errorf("%s: %w", op, ErrUsernameTaken)
		default:
			lg.Error("storage error on UpdateUser", "err", err)

			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	view := OwnerView(updated)

	return &view, nil
}

// DeleteUser мягко удаляет собственный профиль: запись остаётся в хранилище,
// но исчезает изо всех читающих путей.
func (s *Service) DeleteUser(ctx context.Context, id, callerID string) error {
	const op = "service/users/DeleteUser"

	lg := log.From(ctx).With("op", op, "user_id", id)

	if strings.TrimSpace(id) == "" {
		lg.Warn("invalid argument: empty id")

		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if callerID != id {
		lg.Warn("delete of foreign profile rejected", "caller_id", callerID)

		return fmt.Errorf("%s: %w", op, ErrUnauthorized)
	}

	if err := s.users.SoftDeleteUser(ctx, id); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("user not found on delete")

			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on SoftDeleteUser", "err", err)

			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return nil
}
