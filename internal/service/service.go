// service содержит бизнес-логику directory-сервиса:
//   - чтение профиля с проекцией видимости, зависящей от вызывающего;
//   - поиск профилей с вычитанием двунаправленного множества блокировок;
//   - CRUD профиля (создание/частичный апдейт/мягкое удаление);
//   - блокировка/разблокировка пользователей со снимком отображаемых полей;
//   - response-кэш готовых ответов get/search с TTL.
//
// Основные аспекты:
//   - Каждая операция принимает явный callerID — сервис не полагается на
//     ambient-состояние запроса.
//   - Пакет не хранит состояние запроса внутри Service; экземпляр Service
//     безопасен для конкурентного использования из разных горутин при
//     условии, что переданные хранилища и кэш потокобезопасны.
//   - Ошибки возвращаются сентинелами ниже и далее маппятся транспортом
//     на HTTP-статусы (см. internal/errors).
package service

import (
	"errors"

	"github.com/pribylovaa/directory-service/internal/cache"
	"github.com/pribylovaa/directory-service/internal/config"
	"github.com/pribylovaa/directory-service/internal/storage"
)

var (
	// ErrInvalidArgument — некорректные входные данные
	// (в т.ч. поиск без единого параметра). Транспорт: HTTP 400.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound — профиль отсутствует или мягко удалён. Транспорт: HTTP 404.
	ErrNotFound = errors.New("not found")

	// ErrUnauthorized — мутация чужого профиля. Транспорт: HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrUsernameTaken — username уже занят другим пользователем.
	// Транспорт: HTTP 409.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrSelfBlock — попытка заблокировать самого себя. Транспорт: HTTP 401.
	ErrSelfBlock = errors.New("cannot block self")

	// ErrSelfUnblock — попытка разблокировать самого себя. Транспорт: HTTP 401.
	ErrSelfUnblock = errors.New("cannot unblock self")

	// ErrAlreadyBlocked — направленное ребро уже существует. Транспорт: HTTP 409.
	ErrAlreadyBlocked = errors.New("user is already blocked")

	// ErrNotBlocked — ребра нет, разблокировать нечего. Транспорт: HTTP 409.
	ErrNotBlocked = errors.New("user is not blocked")

	// ErrInternal — внутренняя ошибка сервиса/коллабораторов; наружу деталей
	// не отдаём. Транспорт: HTTP 500.
	ErrInternal = errors.New("internal")
)

// Service — описывает бизнес-логику directory-сервиса.
type Service struct {
	cfg    *config.Config
	users  storage.UsersStorage
	blocks storage.BlocksStorage
	cache  cache.Cache
}

// New создаёт новый экземпляр Service.
// Кэш передаётся как явная зависимость с внешним жизненным циклом
// (создаётся на старте процесса, закрывается при останове).
func New(users storage.UsersStorage, blocks storage.BlocksStorage, c cache.Cache, cfg *config.Config) *Service {
	return &Service{
		cfg:    cfg,
		users:  users,
		blocks: blocks,
		cache:  c,
	}
}
