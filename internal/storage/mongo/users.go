package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/pribylovaa/directory-service/internal/models"
	"github.com/pribylovaa/directory-service/internal/storage"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// notDeleted — общий фильтр всех читающих путей: мягко удалённые записи
// неотличимы от отсутствующих.
func notDeleted() bson.E {
	return bson.E{Key: "is_deleted", Value: bson.D{{Key: "$ne", Value: true}}}
}

// CreateUser вставляет новый профиль.
// Конфликт уникального индекса (id/username) — storage.ErrAlreadyExists.
func (m *Mongo) CreateUser(ctx context.Context, user *models.User) error {
	const op = "storage/mongo/CreateUser"

	if _, err := m.users.InsertOne(ctx, user); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: insert: %w", op, err)
	}

	return nil
}

// UserByID возвращает профиль по id; мягко удалённые — storage.ErrNotFound.
func (m *Mongo) UserByID(ctx context.Context, id string) (*models.User, error) {
	const op = "storage/mongo/UserByID"

	filter := bson.D{{Key: "id", Value: strings.TrimSpace(id)}, notDeleted()}

	var out models.User
	if err := m.users.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// UserByUsername — проверка существования имени (точное совпадение,
// проекция {username}). Отсутствие — storage.ErrNotFound.
func (m *Mongo) UserByUsername(ctx context.Context, username string) (string, error) {
	const op = "storage/mongo/UserByUsername"

	filter := bson.D{{Key: "username", Value: strings.TrimSpace(username)}, notDeleted()}
	opts := options.FindOne().SetProjection(bson.D{
		{Key: "_id", Value: 0},
		{Key: "username", Value: 1},
	})

	var out struct {
		Username string `bson:"username"`
	}
	if err := m.users.FindOne(ctx, filter, opts).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return out.Username, nil
}

// UserCredentials возвращает профиль по username целиком, включая
// password_hash. Отсутствие — storage.ErrNotFound.
func (m *Mongo) UserCredentials(ctx context.Context, username string) (*models.User, error) {
	const op = "storage/mongo/UserCredentials"

	filter := bson.D{{Key: "username", Value: strings.TrimSpace(username)}, notDeleted()}

	var out models.User
	if err := m.users.FindOne(ctx, filter).Decode(&out); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// SearchUsers выполняет поиск по подстроке username и/или возрастному окну.
//   - username — регистронезависимый substring-матч (спецсимволы экранируются);
//   - MinAge -> birthdate <= now - MinAge лет (родился не позже);
//   - MaxAge -> birthdate >= now - MaxAge лет (родился не раньше);
//   - ExcludeID всегда убирает вызывающего из выдачи.
//
// Выдача ограничена cfg.Limits.Search без дальнейшей пагинации; порядок —
// естественный порядок обхода, пересортировки после фильтра нет.
func (m *Mongo) SearchUsers(ctx context.Context, q storage.SearchQuery) ([]models.User, error) {
	const op = "storage/mongo/SearchUsers"

	filter := bson.D{
		notDeleted(),
		{Key: "id", Value: bson.D{{Key: "$ne", Value: q.ExcludeID}}},
	}

	if pattern := strings.TrimSpace(q.Username); pattern != "" {
		filter = append(filter, bson.E{Key: "username", Value: primitive.Regex{
			Pattern: regexp.QuoteMeta(pattern),
			Options: "i",
		}})
	}

	now := time.Now().UTC()
	window := bson.D{}
	if q.MinAge > 0 {
		window = append(window, bson.E{Key: "$lte", Value: now.AddDate(-int(q.MinAge), 0, 0).Unix()})
	}
	if q.MaxAge > 0 {
		window = append(window, bson.E{Key: "$gte", Value: now.AddDate(-int(q.MaxAge), 0, 0).Unix()})
	}
	if len(window) > 0 {
		filter = append(filter, bson.E{Key: "birthdate", Value: window})
	}

	findOpts := options.Find().
		SetProjection(bson.D{
			{Key: "_id", Value: 0},
			{Key: "id", Value: 1},
			{Key: "name", Value: 1},
			{Key: "surname", Value: 1},
			{Key: "username", Value: 1},
			{Key: "birthdate", Value: 1},
		}).
		SetLimit(m.cfg.Limits.Search)

	cur, err := m.users.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.User
	for cur.Next(ctx) {
		var u models.User
		if err := cur.Decode(&u); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		items = append(items, u)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}

// UpdateUser применяет частичный $set по pointer-полям, проставляет
// meta_info.updated_at и возвращает обновлённый документ.
// Смена username на занятое имя — storage.ErrAlreadyExists.
func (m *Mongo) UpdateUser(ctx context.Context, id string, upd storage.UserUpdate) (*models.User, error) {
	const op = "storage/mongo/UpdateUser"

	set := bson.D{{Key: "meta_info.updated_at", Value: time.Now().UTC().Unix()}}

	if upd.Name != nil {
		set = append(set, bson.E{Key: "name", Value: *upd.Name})
	}
	if upd.Surname != nil {
		set = append(set, bson.E{Key: "surname", Value: *upd.Surname})
	}
	if upd.Username != nil {
		set = append(set, bson.E{Key: "username", Value: *upd.Username})
	}
	if upd.Birthdate != nil {
		set = append(set, bson.E{Key: "birthdate", Value: *upd.Birthdate})
	}
	if upd.PasswordHash != nil {
		set = append(set, bson.E{Key: "password_hash", Value: *upd.PasswordHash})
	}
	if upd.PasswordLastUpdated != nil {
		set = append(set, bson.E{Key: "password_last_updated", Value: *upd.PasswordLastUpdated})
	}
	if upd.ThemePreference != nil {
		set = append(set, bson.E{Key: "theme_preference", Value: *upd.ThemePreference})
	}

	filter := bson.D{{Key: "id", Value: strings.TrimSpace(id)}, notDeleted()}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var out models.User
	err := m.users.FindOneAndUpdate(ctx, filter, bson.D{{Key: "$set", Value: set}}, opts).Decode(&out)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &out, nil
}

// SoftDeleteUser помечает профиль удалённым; жёсткого удаления нет.
func (m *Mongo) SoftDeleteUser(ctx context.Context, id string) error {
	const op = "storage/mongo/SoftDeleteUser"

	filter := bson.D{{Key: "id", Value: strings.TrimSpace(id)}, notDeleted()}

	res, err := m.users.UpdateOne(ctx, filter, bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "is_deleted", Value: true},
			{Key: "meta_info.deleted_at", Value: time.Now().UTC().Unix()},
		}},
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}
