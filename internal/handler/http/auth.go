// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
)

func (h *Handler) registerPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageRegister, h.pageData(w, r, "Register"))
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.register").Msg("invalid form was passed")
		h.renderStatus(w, r, http.StatusBadRequest)
		return
	}

	form := models.RegisterForm{
		Name:     r.PostFormValue("name"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.services.AuthService.Register(ctx, form)
	if errors.Is(err, service.ErrEmailInUse) {
		log.Info().Str("func", "*Handler.register").Msg("email already registered, redirecting to login")
		h.setFlash(w, msgEmailInUse)
		redirect(w, r, "/login")
		return
	}
	if err != nil {
		data := h.pageData(w, r, "Register")
		data.Form = models.RegisterForm{Name: form.Name, Email: form.Email}

		var nameTaken *service.NameTakenError
		switch {
		case errors.As(err, &nameTaken):
			data.FormErrors = map[string]string{"name": nameTaken.Error()}
			h.render(w, r, http.StatusConflict, view.PageRegister, data)
		case errors.Is(err, service.ErrValidation):
			data.FormErrors = fieldErrors(err)
			h.render(w, r, http.StatusBadRequest, view.PageRegister, data)
		default:
			log.Err(err).Str("func", "*Handler.register").Msg("unexpected error occurred during user registration")
			h.renderError(w, r, err)
		}
		return
	}

	if err = h.startSession(w, r, user); err != nil {
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/")
}

func (h *Handler) loginPage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.PageLogin, h.pageData(w, r, "Log In"))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Str("func", "*Handler.login").Msg("invalid form was passed")
		h.renderStatus(w, r, http.StatusBadRequest)
		return
	}

	form := models.LoginForm{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.services.AuthService.Login(ctx, form)
	if err != nil {
		data := h.pageData(w, r, "Log In")
		data.Form = models.LoginForm{Email: form.Email}

		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			log.Info().Str("func", "*Handler.login").Msg("invalid credentials")
			data.FormError = msgInvalidCredentials
			h.render(w, r, http.StatusUnauthorized, view.PageLogin, data)
		case errors.Is(err, service.ErrValidation):
			data.FormErrors = fieldErrors(err)
			h.render(w, r, http.StatusBadRequest, view.PageLogin, data)
		default:
			log.Err(err).Str("func", "*Handler.login").Msg("unexpected error occurred during user login")
			h.renderError(w, r, err)
		}
		return
	}

	if err = h.startSession(w, r, user); err != nil {
		h.renderError(w, r, err)
		return
	}

	redirect(w, r, "/")
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.SessionService.End(r.Context(), sessionToken(r)); err != nil {
		log.Err(err).Str("func", "*Handler.logout").Msg("error ending session")
	}
	h.clearSessionCookie(w)

	redirect(w, r, "/")
}

func (h *Handler) startSession(w http.ResponseWriter, r *http.Request, user models.User) error {
	token, err := h.services.SessionService.Start(r.Context(), user.ID)
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.startSession").Int64("user_id", user.ID).Msg("creation of session failed")
		return err
	}

	h.setSessionCookie(w, token)
	logger.FromRequest(r).Info().Int64("user_id", user.ID).Str("name", user.Name).Msg("user logged in")
	return nil
}

// fieldErrors indexes the validation messages of err by form field.
func fieldErrors(err error) map[string]string {
	fe, ok := validators.AsFieldErrors(err)
	if !ok {
		return nil
	}
	return fe.ByField()
}
