package cache

import (
	"fmt"
	"strings"
)

// Ключи детерминированы: операция + id вызывающего + нормализованные
// параметры запроса. Один и тот же запрос от разных пользователей кэшируется
// раздельно — проекция и фильтр блокировок зависят от вызывающего.

// GetKey — ключ ответа get-by-id для пары (профиль, вызывающий).
func GetKey(id, callerID string) string {
	return fmt.Sprintf("get:%s:by:%s", id, callerID)
}

// SearchKey — ключ ответа search по вызывающему и параметрам запроса.
// username нормализуется (trim + lower): поиск регистронезависимый,
// эквивалентные запросы делят одну запись кэша.
func SearchKey(callerID, username string, minAge, maxAge int32) string {
	return fmt.Sprintf("search:%s:%s:%d:%d", callerID, strings.ToLower(strings.TrimSpace(username)), minAge, maxAge)
}
