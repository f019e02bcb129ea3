// models содержит доменные сущности directory-сервиса.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

// ThemePreference — предпочтение темы интерфейса.
type ThemePreference string

const (
	ThemeDark  ThemePreference = "dark"
	ThemeLight ThemePreference = "light"
)

// Valid сообщает, входит ли значение в допустимый набор.
func (p ThemePreference) Valid() bool {
	return p == ThemeDark || p == ThemeLight
}

// MetaInfo — служебные отметки жизненного цикла записи (epoch seconds).
// DeletedAt проставляется только при мягком удалении.
type MetaInfo struct {
	CreatedAt int64 `bson:"created_at" json:"created_at"`
	UpdatedAt int64 `bson:"updated_at,omitempty" json:"updated_at,omitempty"`
	DeletedAt int64 `bson:"deleted_at,omitempty" json:"deleted_at,omitempty"`
}

// User — внутренняя доменная модель профиля.
//
// ID — uuid v4, неизменяемый, никогда не переиспользуется.
// Даты хранятся как epoch seconds: birthdate участвует в возрастном поиске,
// password_last_updated фиксирует момент последней смены пароля.
// IsDeleted — флаг мягкого удаления; все читающие пути обязаны исключать
// записи с IsDeleted=true.
type User struct {
	ID                  string          `bson:"id"`
	Username            string          `bson:"username"`
	Name                string          `bson:"name"`
	Surname             string          `bson:"surname"`
	Birthdate           int64           `bson:"birthdate"`
	PasswordHash        string          `bson:"password_hash,omitempty"`
	PasswordLastUpdated int64           `bson:"password_last_updated,omitempty"`
	ThemePreference     ThemePreference `bson:"theme_preference,omitempty"`
	Meta                MetaInfo        `bson:"meta_info"`
	IsDeleted           bool            `bson:"is_deleted,omitempty"`
}
