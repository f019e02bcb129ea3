package errors

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pribylovaa/directory-service/internal/auth"
	"github.com/pribylovaa/directory-service/internal/service"
	"github.com/stretchr/testify/require"
)

func TestToHTTP_BaseMapping(t *testing.T) {
	tcs := []struct {
		name       string
		in         error
		wantStatus int
		wantCode   string
	}{
		{"invalid_argument", service.ErrInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{"not_found", service.ErrNotFound, http.StatusNotFound, "not_found"},
		{"unauthorized", service.ErrUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{"self_block", service.ErrSelfBlock, http.StatusUnauthorized, "self_block"},
		{"self_unblock", service.ErrSelfUnblock, http.StatusUnauthorized, "self_unblock"},
		{"invalid_token", auth.ErrInvalidToken, http.StatusUnauthorized, "invalid_token"},
		{"token_expired", auth.ErrTokenExpired, http.StatusUnauthorized, "token_expired"},
		{"username_taken", service.ErrUsernameTaken, http.StatusConflict, "username_taken"},
		{"already_blocked", service.ErrAlreadyBlocked, http.StatusConflict, "already_blocked"},
		{"not_blocked", service.ErrNotBlocked, http.StatusConflict, "not_blocked"},
		{"internal", service.ErrInternal, http.StatusInternalServerError, "internal"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal"},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			gotStatus, resp := ToHTTP(tc.in)
			require.Equal(t, tc.wantStatus, gotStatus)
			require.Equal(t, tc.wantCode, resp.Error.Code)
			require.NotEmpty(t, resp.Error.Message)
		})
	}
}

func TestToHTTP_WrappedError(t *testing.T) {
	wrapped := fmt.Errorf("service/users/UserByID: %w", service.ErrNotFound)

	gotStatus, resp := ToHTTP(wrapped)
	require.Equal(t, http.StatusNotFound, gotStatus)
	require.Equal(t, "not_found", resp.Error.Code)
}

func TestToHTTP_NilError_Returns500Internal(t *testing.T) {
	gotStatus, resp := ToHTTP(nil)
	require.Equal(t, http.StatusInternalServerError, gotStatus)
	require.Equal(t, "internal", resp.Error.Code)
	require.Equal(t, "internal error", resp.Error.Message)
}

func TestWriteError_PropagatesRequestID(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/users/get/id/abc", nil)
	req.Header.Set("X-Request-Id", "rid-123")
	rec := httptest.NewRecorder()

	WriteError(rec, req, service.ErrNotFound)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "not_found", resp.Error.Code)
	require.Equal(t, "rid-123", resp.Error.RequestID)
}
