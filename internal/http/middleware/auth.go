package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pribylovaa/directory-service/internal/auth"
	apierrors "github.com/pribylovaa/directory-service/internal/errors"
)

type ctxKeyCallerID struct{}

// CallerID возвращает идентификатор аутентифицированного пользователя
// из контекста. Пустая строка — запрос не аутентифицирован.
func CallerID(ctx context.Context) string {
	if id, ok := ctx.Value(ctxKeyCallerID{}).(string); ok {
		return id
	}
	return ""
}

// AuthBearer валидирует Bearer-токен из Authorization и кладёт
// идентификатор пользователя в контекст.
//
// Поведение:
//   - заголовок отсутствует — запрос идёт дальше без callerID
//     (публичные роуты); защищённые роуты дополнительно оборачиваются
//     в RequireAuth;
//   - токен присутствует, но невалиден или просрочен — сразу 401.
func AuthBearer(m *auth.Manager) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) || len(header) <= len(prefix) {
				apierrors.WriteError(w, r, auth.ErrInvalidToken)
				return
			}

			token := strings.TrimSpace(header[len(prefix):])
			if token == "" {
				apierrors.WriteError(w, r, auth.ErrInvalidToken)
				return
			}

			userID, err := m.ParseToken(token)
			if err != nil {
				apierrors.WriteError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), ctxKeyCallerID{}, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth отказывает запросам без аутентифицированного callerID.
// Навешивается на защищённые роуты поверх AuthBearer.
func RequireAuth() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if CallerID(r.Context()) == "" {
				apierrors.WriteError(w, r, auth.ErrInvalidToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
