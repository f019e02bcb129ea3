// errors стандартизирует ответы об ошибках HTTP-слоя directory-service.
// На вход он принимает доменную ошибку сервисного слоя, а на выход даёт:
//   - корректный HTTP-статус;
//   - краткое безопасное message без утечки деталей.
//
// Источник истинности по маппингу: sentinel-ошибки пакета service и auth.
package errors

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pribylovaa/directory-service/internal/auth"
	"github.com/pribylovaa/directory-service/internal/service"
)

// APIError — единый формат для фронта.
// Code — короткий стабильный код для машиночитаемой обработки на FE.
// Message — безопасное человекочитаемое описание.
// RequestID — прокидывается из X-Request-Id, если есть (для трассировки).
type APIError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ErrorResponse — корневой объект в ответе.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// ToHTTP конвертирует доменную ошибку в HTTP-статус и унифицированный
// ответ для фронта.
//
// Маппинг:
//   - InvalidArgument -> 400
//   - NotFound -> 404
//   - Unauthorized / SelfBlock / SelfUnblock / невалидный токен -> 401
//   - UsernameTaken / AlreadyBlocked / NotBlocked -> 409
//   - err == nil — программная ошибка вызова: 500/internal, чтобы не
//     послать "200 OK" с телом ошибки и не маскировать баг;
//   - прочее -> 500/internal (без утечки деталей).
func ToHTTP(err error) (int, ErrorResponse) {
	status, code, msg := base(err)

	return status, ErrorResponse{
		Error: APIError{
			Code:    code,
			Message: msg,
		},
	}
}

// WriteError — хелпер для HTTP-хендлеров.
// Пишет корректный статус/тело, добавляет request_id из заголовка, если он есть.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	status, resp := ToHTTP(err)

	// Прокидываем request_id для фронта, чтобы он мог репортить баги с привязкой.
	if rid := r.Header.Get("X-Request-Id"); rid != "" {
		resp.Error.RequestID = rid
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func base(err error) (int, string, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal", "internal error"
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid_argument", "invalid argument"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, "not_found", "not found"
	case errors.Is(err, service.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized", "unauthorized"
	case errors.Is(err, service.ErrSelfBlock):
		return http.StatusUnauthorized, "self_block", "cannot block yourself"
	case errors.Is(err, service.ErrSelfUnblock):
		return http.StatusUnauthorized, "self_unblock", "cannot unblock yourself"
	case errors.Is(err, auth.ErrTokenExpired):
		return http.StatusUnauthorized, "token_expired", "token expired"
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized, "invalid_token", "invalid token"
	case errors.Is(err, service.ErrUsernameTaken):
		return http.StatusConflict, "username_taken", "username already taken"
	case errors.Is(err, service.ErrAlreadyBlocked):
		return http.StatusConflict, "already_blocked", "user already blocked"
	case errors.Is(err, service.ErrNotBlocked):
		return http.StatusConflict, "not_blocked", "user is not blocked"
	default:
		return http.StatusInternalServerError, "internal", "internal error"
	}
}
