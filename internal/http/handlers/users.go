package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	apierrors "github.com/pribylovaa/directory-service/internal/errors"
	"github.com/pribylovaa/directory-service/internal/http/middleware"
	"github.com/pribylovaa/directory-service/internal/models"
	"github.com/pribylovaa/directory-service/internal/service"
)

// CreateUser — POST /users/create. Публичный роут (регистрация).
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var in createUserRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if !validName(in.Name) || !validSurname(in.Surname) ||
		!validUsername(in.Username) || !validPassword(in.Password) {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	birthdate, ok := validBirthdate(in.Birthdate)
	if !ok {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	theme := models.ThemePreference(in.ThemePreference)
	if in.ThemePreference != "" && !theme.Valid() {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	profile, err := h.Service.CreateUser(r.Context(), service.CreateUserInput{
		Name:            in.Name,
		Surname:         in.Surname,
		Username:        in.Username,
		Birthdate:       birthdate,
		Password:        in.Password,
		ThemePreference: theme,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, profile)
}

// UserByID — GET /users/get/id/{id}. Проекция зависит от того,
// запрашивает ли пользователь собственный профиль.
func (h *Handlers) UserByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	payload, err := h.Service.UserByID(r.Context(), id, middleware.CallerID(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeRawJSON(w, http.StatusOK, payload)
}

// SearchUsers — GET /users/search?username=&minAge=&maxAge=.
// Хотя бы один параметр обязателен.
func (h *Handlers) SearchUsers(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var minAge, maxAge int32
	if raw := q.Get("minAge"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || v < 0 {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		minAge = int32(v)
	}
	if raw := q.Get("maxAge"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 32)
		if err != nil || v < 0 {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		maxAge = int32(v)
	}

	payload, err := h.Service.SearchUsers(r.Context(), service.SearchUsersInput{
		Username: q.Get("username"),
		MinAge:   minAge,
		MaxAge:   maxAge,
	}, middleware.CallerID(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeRawJSON(w, http.StatusOK, payload)
}

// UpdateUser — PUT /users/update/id/{id}. Обновлять профиль может
// только его владелец.
func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	var in updateUserRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	input := service.UpdateUserInput{}

	if in.Name != nil {
		if !validName(*in.Name) {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		input.Name = in.Name
	}
	if in.Surname != nil {
		if !validSurname(*in.Surname) {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		input.Surname = in.Surname
	}
	if in.Username != nil {
		if !validUsername(*in.Username) {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		input.Username = in.Username
	}
	if in.Birthdate != nil {
		birthdate, ok := validBirthdate(*in.Birthdate)
		if !ok {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		input.Birthdate = &birthdate
	}
	if in.Password != nil {
		if !validPassword(*in.Password) {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		input.Password = in.Password
	}
	if in.ThemePreference != nil {
		if !validTheme(*in.ThemePreference) {
			apierrors.WriteError(w, r, service.ErrInvalidArgument)
			return
		}
		theme := models.ThemePreference(*in.ThemePreference)
		input.ThemePreference = &theme
	}

	profile, err := h.Service.UpdateUser(r.Context(), id, middleware.CallerID(r.Context()), input)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// DeleteUser — DELETE /users/delete/id/{id}. Мягкое удаление
// собственного профиля.
func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, service.ErrInvalidArgument)
		return
	}

	if err := h.Service.DeleteUser(r.Context(), id, middleware.CallerID(r.Context())); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
