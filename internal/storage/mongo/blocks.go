package mongo

import (
	"context"
	"errors"
	"fmt"

	"github.com/pribylovaa/directory-service/internal/models"
	"github.com/pribylovaa/directory-service/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

// CreateBlock вставляет направленное ребро блокировки.
// Дубликат пары ловит составной уникальный индекс — проигравший гонку
// писатель получает storage.ErrAlreadyExists.
func (m *Mongo) CreateBlock(ctx context.Context, block *models.BlockRelationship) error {
	const op = "storage/mongo/CreateBlock"

	res, err := m.blocks.InsertOne(ctx, block)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: insert: %w", op, err)
	}

	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		block.ID = oid.Hex()
	}

	return nil
}

// BlockByIDs возвращает ребро по упорядоченной паре идентификаторов.
func (m *Mongo) BlockByIDs(ctx context.Context, blockedByUserID, blockedUserID string) (*models.BlockRelationship, error) {
	const op = "storage/mongo/BlockByIDs"

	filter := bson.D{
		{Key: "blocked_by_user_id", Value: blockedByUserID},
		{Key: "blocked_user_id", Value: blockedUserID},
	}

	var raw struct {
		OID                      primitive.ObjectID `bson:"_id"`
		models.BlockRelationship `bson:",inline"`
	}
	if err := m.blocks.FindOne(ctx, filter).Decode(&raw); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := raw.BlockRelationship
	out.ID = raw.OID.Hex()

	return &out, nil
}

// DeleteBlock удаляет ребро; отсутствие ребра не ошибка (жёсткое удаление,
// журнал блокировок не ведётся).
func (m *Mongo) DeleteBlock(ctx context.Context, blockedByUserID, blockedUserID string) error {
	const op = "storage/mongo/DeleteBlock"

	filter := bson.D{
		{Key: "blocked_by_user_id", Value: blockedByUserID},
		{Key: "blocked_user_id", Value: blockedUserID},
	}

	if _, err := m.blocks.DeleteOne(ctx, filter); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// BlockedIDs вычисляет множество исключений для выдачи поиска: объединение
// id-кандидатов, которых заблокировал callerID, и id-кандидатов, которые
// заблокировали callerID. Обе половины закрывает один $or-запрос — ребро
// прячет пользователя с обеих сторон независимо от того, кто его создал.
func (m *Mongo) BlockedIDs(ctx context.Context, callerID string, candidateIDs []string) ([]string, error) {
	const op = "storage/mongo/BlockedIDs"

	if len(candidateIDs) == 0 {
		return nil, nil
	}

	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{
			{Key: "blocked_by_user_id", Value: callerID},
			{Key: "blocked_user_id", Value: bson.D{{Key: "$in", Value: candidateIDs}}},
		},
		bson.D{
			{Key: "blocked_by_user_id", Value: bson.D{{Key: "$in", Value: candidateIDs}}},
			{Key: "blocked_user_id", Value: callerID},
		},
	}}}

	cur, err := m.blocks.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	seen := make(map[string]struct{}, len(candidateIDs))
	var ids []string

	for cur.Next(ctx) {
		var edge models.BlockRelationship
		if err := cur.Decode(&edge); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		other := edge.BlockedUserID
		if other == callerID {
			other = edge.BlockedByUserID
		}

		if _, ok := seen[other]; !ok {
			seen[other] = struct{}{}
			ids = append(ids, other)
		}
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return ids, nil
}
