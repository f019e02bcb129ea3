package handlers

import (
	"regexp"
	"time"
	"unicode"

	"github.com/pribylovaa/directory-service/internal/models"
)

// DTO и валидация входных запросов.
//
// Правила:
//   - name — 3–19 символов, только буквы;
//   - surname — 1–19 символов, только буквы;
//   - username — 4–19 символов из набора [A-Za-z0-9@#_.];
//   - birthdate — RFC3339, не в будущем и не старше 120 лет;
//   - password — минимум 8 символов, обязательны строчная и заглавная
//     буквы, цифра и спецсимвол;
//   - theme_preference — "dark" или "light".

var (
	nameRe     = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё]{3,19}$`)
	surnameRe  = regexp.MustCompile(`^[A-Za-zА-Яа-яЁё]{1,19}$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9@#_.]{4,19}$`)
)

const maxUserAgeYears = 120

type createUserRequest struct {
	Name            string `json:"name"`
	Surname         string `json:"surname"`
	Username        string `json:"username"`
	Birthdate       string `json:"birthdate"`
	Password        string `json:"password"`
	ThemePreference string `json:"theme_preference,omitempty"`
}

type updateUserRequest struct {
	Name            *string `json:"name,omitempty"`
	Surname         *string `json:"surname,omitempty"`
	Username        *string `json:"username,omitempty"`
	Birthdate       *string `json:"birthdate,omitempty"`
	Password        *string `json:"password,omitempty"`
	ThemePreference *string `json:"theme_preference,omitempty"`
}

type tokenRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

func validName(s string) bool     { return nameRe.MatchString(s) }
func validSurname(s string) bool  { return surnameRe.MatchString(s) }
func validUsername(s string) bool { return usernameRe.MatchString(s) }

// validBirthdate парсит RFC3339 и проверяет разумность даты рождения.
func validBirthdate(s string) (int64, bool) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, false
	}

	now := time.Now().UTC()
	if t.After(now) {
		return 0, false
	}
	if t.Before(now.AddDate(-maxUserAgeYears, 0, 0)) {
		return 0, false
	}

	return t.Unix(), true
}

func validPassword(s string) bool {
	if len(s) < 8 {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			special = true
		}
	}

	return lower && upper && digit && special
}

func validTheme(s string) bool {
	return models.ThemePreference(s).Valid()
}
