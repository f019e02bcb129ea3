package storage

import (
	"context"

	"github.com/pribylovaa/directory-service/internal/models"
)

// UserUpdate — частичный апдейт профиля.
// Параметры задаются pointer-полями: только непустые указатели обновляются в БД.
// PasswordHash и PasswordLastUpdated задаются парой (сервис хэширует пароль
// и фиксирует момент смены).
type UserUpdate struct {
	Name                *string
	Surname             *string
	Username            *string
	Birthdate           *int64
	PasswordHash        *string
	PasswordLastUpdated *int64
	ThemePreference     *models.ThemePreference
}

// SearchQuery — параметры поиска профилей.
// Нулевые значения означают «параметр не задан».
// MinAge/MaxAge транслируются хранилищем в окно по birthdate:
// MinAge -> birthdate <= now - MinAge лет; MaxAge -> birthdate >= now - MaxAge лет.
type SearchQuery struct {
	// Username — подстрока для регистронезависимого поиска по username.
	Username string
	MinAge   int32
	MaxAge   int32
	// ExcludeID всегда убирает вызывающего из его собственной выдачи.
	ExcludeID string
}

// Users — контракт репозитория профилей.
// Все читающие методы исключают мягко удалённые записи.
type Users interface {
	// CreateUser вставляет новый профиль.
	// Конфликт уникальности (id/username) — ErrAlreadyExists.
	CreateUser(ctx context.Context, user *models.User) error

	// UserByID возвращает профиль по id. Если запись не найдена
	// или мягко удалена — ErrNotFound.
	UserByID(ctx context.Context, id string) (*models.User, error)

	// UserByUsername — проверка существования имени: читает с проекцией
	// {username}, возвращает занятое имя. Отсутствие — ErrNotFound.
	UserByUsername(ctx context.Context, username string) (string, error)

	// UserCredentials возвращает профиль по username целиком, включая
	// password_hash (для проверки учётных данных). Отсутствие — ErrNotFound.
	UserCredentials(ctx context.Context, username string) (*models.User, error)

	// SearchUsers выполняет поиск по запросу q с жёстким потолком выдачи
	// (limits.search); порядок результатов — естественный порядок запроса.
	// В результатах заполнены только id, name, surname, username, birthdate.
	SearchUsers(ctx context.Context, q SearchQuery) ([]models.User, error)

	// UpdateUser применяет частичный апдейт и возвращает обновлённый документ.
	// Реализация обязана проставить meta_info.updated_at.
	// Если запись не найдена — ErrNotFound.
	UpdateUser(ctx context.Context, id string, upd UserUpdate) (*models.User, error)

	// SoftDeleteUser помечает профиль удалённым (is_deleted=true,
	// meta_info.deleted_at). Если запись не найдена — ErrNotFound.
	SoftDeleteUser(ctx context.Context, id string) error
}

// UsersStorage — верхнеуровневый интерфейс хранилища профилей.
type UsersStorage interface {
	Users
	Close(ctx context.Context) error
}
