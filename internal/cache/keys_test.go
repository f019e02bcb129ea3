package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Ключи кэша детерминированы и различают вызывающих и параметры запроса.

func TestGetKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "get:u2:by:u1", GetKey("u2", "u1"))

	// Разные вызывающие — разные ключи (проекция зависит от вызывающего).
	require.NotEqual(t, GetKey("u2", "u1"), GetKey("u2", "u3"))
	// Прямой и обратный запросы не делят запись.
	require.NotEqual(t, GetKey("u2", "u1"), GetKey("u1", "u2"))
}

func TestSearchKey_Normalization(t *testing.T) {
	t.Parallel()

	// Эквивалентные по смыслу запросы делят одну запись.
	require.Equal(t, SearchKey("u1", "Iron", 25, 35), SearchKey("u1", "  iron ", 25, 35))

	// Отличие любого параметра — другой ключ.
	require.NotEqual(t, SearchKey("u1", "iron", 25, 35), SearchKey("u1", "iron", 25, 0))
	require.NotEqual(t, SearchKey("u1", "iron", 25, 35), SearchKey("u2", "iron", 25, 35))
	require.NotEqual(t, SearchKey("u1", "iron", 0, 0), SearchKey("u1", "", 0, 0))
}
