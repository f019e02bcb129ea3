package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/pribylovaa/directory-service/internal/auth"
	"github.com/pribylovaa/directory-service/internal/service"
)

// Handlers агрегирует зависимости HTTP-слоя.
type Handlers struct {
	Service *service.Service
	Auth    *auth.Manager
}

func New(svc *service.Service, am *auth.Manager) *Handlers {
	return &Handlers{Service: svc, Auth: am}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// writeRawJSON отдаёт заранее сериализованный payload как есть —
// кэшированные ответы уходят клиенту байт-в-байт.
func writeRawJSON(w http.ResponseWriter, status int, payload json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(payload)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}
