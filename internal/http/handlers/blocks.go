package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/directory-service/internal/errors"
	"github.com/pribylovaa/directory-service/internal/http/middleware"
	"github.com/pribylovaa/directory-service/internal/service"
)

// BlockUser — POST /users/block/id/{id}. Блокирует указанного
// пользователя от имени вызывающего.
func (h *Handlers) BlockUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.Service.BlockUser(r.Context(), middleware.CallerID(r.Context()), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// UnblockUser — POST /users/unblock/id/{id}. Снимает собственную
// блокировку; встречное ребро не затрагивается.
func (h *Handlers) UnblockUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.Service.UnblockUser(r.Context(), middleware.CallerID(r.Context()), id); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
