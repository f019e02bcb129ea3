package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/pribylovaa/directory-service/internal/config"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection  = "users"
	blocksCollection = "blocked_users"
	defaultDBName    = "directory"
)

// Mongo — тонкий адаптер для подключения и коллекций MongoDB.
// Реализует storage.UsersStorage и storage.BlocksStorage.
type Mongo struct {
	cfg    *config.Config
	client *mongodriver.Client
	db     *mongodriver.Database
	users  *mongodriver.Collection
	blocks *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение, подготавливает коллекции
// и обеспечивает индексацию.
func New(ctx context.Context, cfg *config.Config) (*Mongo, error) {
	if cfg == nil {
		return nil, fmt.Errorf("mongo: nil config")
	}

	if cfg.DB.URL == "" {
		return nil, fmt.Errorf("mongo: empty cfg.DB.URL")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(cfg.DB.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	dbName := databaseFromURI(cfg.DB.URL)
	db := cli.Database(dbName)

	m := &Mongo{
		cfg:    cfg,
		client: cli,
		db:     db,
		users:  db.Collection(usersCollection),
		blocks: db.Collection(blocksCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

// Close закрывает соединение с MongoDB.
func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создаёт индексы, необходимые directory-сервису:
//   - users: уникальные id и username, birthdate для возрастных окон поиска;
//   - blocked_users: уникальная пара (blocked_by_user_id, blocked_user_id) —
//     гонка конкурентных блокировок разрешается отказом второй вставки;
//     blocked_user_id — для обратной половины множества исключений.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	userModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetName("id_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "username", Value: 1}},
			Options: options.Index().SetName("username_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "birthdate", Value: 1}},
			Options: options.Index().SetName("birthdate_asc"),
		},
	}

	if _, err := m.users.Indexes().CreateMany(ctx, userModels); err != nil {
		return fmt.Errorf("mongo ensure user indexes: %w", err)
	}

	blockModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "blocked_by_user_id", Value: 1}, {Key: "blocked_user_id", Value: 1}},
			Options: options.Index().SetName("blocked_pair_unique").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "blocked_user_id", Value: 1}},
			Options: options.Index().SetName("blocked_user_asc"),
		},
	}

	if _, err := m.blocks.Indexes().CreateMany(ctx, blockModels); err != nil {
		return fmt.Errorf("mongo ensure block indexes: %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддаётся расшифровке, возвращает значение
// по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}
