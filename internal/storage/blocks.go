package storage

import (
	"context"

	"github.com/pribylovaa/directory-service/internal/models"
)

// Blocks — контракт репозитория блокировок.
type Blocks interface {
	// CreateBlock вставляет направленное ребро блокировки.
	// Дубликат пары (blocked_by_user_id, blocked_user_id) — ErrAlreadyExists
	// (гарантируется составным уникальным индексом).
	CreateBlock(ctx context.Context, block *models.BlockRelationship) error

	// BlockByIDs возвращает ребро по упорядоченной паре идентификаторов.
	// Отсутствие — ErrNotFound.
	BlockByIDs(ctx context.Context, blockedByUserID, blockedUserID string) (*models.BlockRelationship, error)

	// DeleteBlock удаляет ребро, если оно есть; отсутствие ребра не ошибка —
	// семантику «не заблокирован» проверяет сервисный слой.
	DeleteBlock(ctx context.Context, blockedByUserID, blockedUserID string) error

	// BlockedIDs возвращает объединение: id из candidateIDs, которых
	// callerID заблокировал, и id из candidateIDs, которые заблокировали
	// callerID. Выполняется одним логическим запросом; порядок результата
	// не определён (используется только для проверки принадлежности).
	BlockedIDs(ctx context.Context, callerID string, candidateIDs []string) ([]string, error)
}

// BlocksStorage — верхнеуровневый интерфейс хранилища блокировок.
type BlocksStorage interface {
	Blocks
	Close(ctx context.Context) error
}
