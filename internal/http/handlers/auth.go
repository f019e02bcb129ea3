package handlers

import (
	"net/http"

	apierrors "github.com/pribylovaa/directory-service/internal/errors"
	"github.com/pribylovaa/directory-service/internal/service"
)

// Token — POST /auth/token. Обменивает пару username/password на
// подписанный access-токен. Публичный роут.
func (h *Handlers) Token(w http.ResponseWriter, r *http.Request) {
	var in tokenRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	userID, err := h.Service.Authenticate(r.Context(), in.Username, in.Password)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	token, err := h.Auth.IssueToken(userID)
	if err != nil {
		apierrors.WriteError(w, r, service.ErrInternal)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}
