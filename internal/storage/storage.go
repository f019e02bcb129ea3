// storage содержит контракты слоя хранилищ directory-сервиса.
//
// users.go  — профили пользователей (создание/чтение/поиск/частичное
// обновление/мягкое удаление).
// blocks.go — направленные рёбра блокировок и вычисление множества
// исключений для выдачи поиска.
package storage

import "errors"

var (
	// ErrNotFound — сущность отсутствует в хранилище
	// (или скрыта мягким удалением).
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists — конфликт уникальности: занятый username либо
	// дубликат направленного ребра блокировки.
	ErrAlreadyExists = errors.New("already exists")
)
