package models

// BlockRelationship — направленное ребро «BlockedByUserID заблокировал
// BlockedUserID». На пару (blocked_by_user_id, blocked_user_id) существует
// не более одной записи; уникальность обеспечивает составной индекс БД.
//
// Name/Surname/Username — денормализованный снимок полей заблокированного
// пользователя на момент блокировки. Снимок сознательно не синхронизируется
// с последующими правками профиля.
type BlockRelationship struct {
	// ID — ObjectID MongoDB; наружу конвертируется в hex-строку,
	// проставляется хранилищем после вставки.
	ID              string `bson:"-"`
	BlockedByUserID string `bson:"blocked_by_user_id"`
	BlockedUserID   string `bson:"blocked_user_id"`
	Name            string `bson:"name,omitempty"`
	Surname         string `bson:"surname,omitempty"`
	Username        string `bson:"username,omitempty"`
	BlockedAt       int64  `bson:"blocked_at"`
}
