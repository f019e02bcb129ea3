package service

import "github.com/pribylovaa/directory-service/internal/models"

// Проекции видимости профиля.
//
// Парольный материал (password_hash, password_last_updated) не попадает
// ни в одну проекцию, включая собственную.

// OwnerProfile — полная проекция собственного профиля.
type OwnerProfile struct {
	ID              string                 `json:"id"`
	Username        string                 `json:"username"`
	Name            string                 `json:"name"`
	Surname         string                 `json:"surname"`
	Birthdate       int64                  `json:"birthdate"`
	ThemePreference models.ThemePreference `json:"theme_preference"`
	IsDeleted       bool                   `json:"is_deleted"`
	Meta            models.MetaInfo        `json:"meta_info"`
}

// PublicProfile — публичная проекция чужого профиля: ровно четыре поля.
// id сюда сознательно не входит; когда потребителю нужен id (вычисление
// множества исключений при поиске), он берётся из доменной модели отдельно.
type PublicProfile struct {
	Name      string `json:"name"`
	Surname   string `json:"surname"`
	Username  string `json:"username"`
	Birthdate int64  `json:"birthdate"`
}

// Project — чистая функция видимости: по профилю и идентификатору
// вызывающего возвращает поля, которые вызывающему разрешено видеть.
// Собственный профиль — OwnerProfile, чужой — PublicProfile.
// Функция тотальна и не обращается к хранилищу.
func Project(u *models.User, callerID string) any {
	if u.ID == callerID {
		return OwnerView(u)
	}

	return PublicView(u)
}

// OwnerView — полная проекция без парольного материала.
func OwnerView(u *models.User) OwnerProfile {
	return OwnerProfile{
		ID:              u.ID,
		Username:        u.Username,
		Name:            u.Name,
		Surname:         u.Surname,
		Birthdate:       u.Birthdate,
		ThemePreference: u.ThemePreference,
		IsDeleted:       u.IsDeleted,
		Meta:            u.Meta,
	}
}

// PublicView — публичное подмножество полей.
func PublicView(u *models.User) PublicProfile {
	return PublicProfile{
		Name:      u.Name,
		Surname:   u.Surname,
		Username:  u.Username,
		Birthdate: u.Birthdate,
	}
}
