// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-blog/internal/service"
	"github.com/MKhiriev/go-blog/internal/validators"
	"github.com/MKhiriev/go-blog/internal/view"
	"github.com/MKhiriev/go-blog/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var registerValues = url.Values{
	"name":     {"reader"},
	"email":    {"reader@example.com"},
	"password": {"secret"},
}

func flashValue(t *testing.T, c *http.Cookie) string {
	t.Helper()
	require.NotNil(t, c)
	decoded, err := base64.RawURLEncoding.DecodeString(c.Value)
	require.NoError(t, err)
	return string(decoded)
}

func TestRegister_Success_StartsSession(t *testing.T) {
	env := newTestEnv(t)
	env.auth.EXPECT().Register(gomock.Any(), models.RegisterForm{Name: "reader", Email: "reader@example.com", Password: "secret"}).Return(reader, nil)
	env.sessions.EXPECT().Start(gomock.Any(), reader.ID).Return("tok", nil)

	rec := env.serve(postForm("/register", registerValues))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookie := findCookie(rec, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, "tok", cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, 3600, cookie.MaxAge)
}

func TestRegister_EmailInUse_RedirectsToLogin(t *testing.T) {
	env := newTestEnv(t)
	env.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrEmailInUse)

	rec := env.serve(postForm("/register", registerValues))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Equal(t, msgEmailInUse, flashValue(t, findCookie(rec, flashCookieName)))
	assert.Nil(t, findCookie(rec, sessionCookieName))
}

func TestRegister_NameTaken_RerendersForm(t *testing.T) {
	env := newTestEnv(t)
	env.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, &service.NameTakenError{Name: "reader"})

	rec := env.serve(postForm("/register", registerValues))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, view.PageRegister, env.renderer.page)
	assert.Equal(t, "reader is already taken.", env.renderer.data.FormErrors["name"])
	assert.Equal(t, models.RegisterForm{Name: "reader", Email: "reader@example.com"}, env.renderer.data.Form)
}

func TestRegister_Validation_RerendersForm(t *testing.T) {
	env := newTestEnv(t)
	fields := validators.FieldErrors{{Field: "email", Message: "Invalid email address."}}
	env.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, &service.ValidationError{Fields: fields})

	rec := env.serve(postForm("/register", url.Values{"email": {"nope"}}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, map[string]string{"email": "Invalid email address."}, env.renderer.data.FormErrors)
}

func TestRegister_StorageFailure_Is500(t *testing.T) {
	env := newTestEnv(t)
	env.auth.EXPECT().Register(gomock.Any(), gomock.Any()).Return(models.User{}, assert.AnError)

	rec := env.serve(postForm("/register", registerValues))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, view.PageError, env.renderer.page)
}

func TestLogin(t *testing.T) {
	values := url.Values{"email": {"reader@example.com"}, "password": {"secret"}}

	t.Run("success", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.EXPECT().Login(gomock.Any(), models.LoginForm{Email: "reader@example.com", Password: "secret"}).Return(reader, nil)
		env.sessions.EXPECT().Start(gomock.Any(), reader.ID).Return("tok", nil)

		rec := env.serve(postForm("/login", values))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		assert.NotNil(t, findCookie(rec, sessionCookieName))
	})

	t.Run("invalid credentials", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.User{}, service.ErrInvalidCredentials)

		rec := env.serve(postForm("/login", values))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, view.PageLogin, env.renderer.page)
		assert.Equal(t, msgInvalidCredentials, env.renderer.data.FormError)
		assert.Equal(t, models.LoginForm{Email: "reader@example.com"}, env.renderer.data.Form)
		assert.Nil(t, findCookie(rec, sessionCookieName))
	})

	t.Run("session failure", func(t *testing.T) {
		env := newTestEnv(t)
		env.auth.EXPECT().Login(gomock.Any(), gomock.Any()).Return(reader, nil)
		env.sessions.EXPECT().Start(gomock.Any(), reader.ID).Return("", assert.AnError)

		rec := env.serve(postForm("/login", values))

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLogout(t *testing.T) {
	t.Run("logged in", func(t *testing.T) {
		env := newTestEnv(t)
		req := get("/logout")
		env.loginAs(req, reader)
		env.sessions.EXPECT().End(gomock.Any(), "token-reader").Return(nil)

		rec := env.serve(req)

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/", rec.Header().Get("Location"))
		cookie := findCookie(rec, sessionCookieName)
		require.NotNil(t, cookie)
		assert.Equal(t, -1, cookie.MaxAge)
	})

	t.Run("anonymous is sent to login", func(t *testing.T) {
		env := newTestEnv(t)

		rec := env.serve(get("/logout"))

		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})
}

func TestWithSession_StaleCookieIsCleared(t *testing.T) {
	env := newTestEnv(t)
	req := get("/about")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "stale"})
	env.auth.EXPECT().CurrentUser(gomock.Any(), "stale").Return(models.User{}, service.ErrSessionInvalid)

	rec := env.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, env.renderer.data.LoggedIn())
	cookie := findCookie(rec, sessionCookieName)
	require.NotNil(t, cookie)
	assert.Equal(t, -1, cookie.MaxAge)
}

func TestWithSession_LookupFailureKeepsCookie(t *testing.T) {
	env := newTestEnv(t)
	req := get("/about")
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "tok"})
	env.auth.EXPECT().CurrentUser(gomock.Any(), "tok").Return(models.User{}, errors.New("redis: connection refused"))

	rec := env.serve(req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, env.renderer.data.LoggedIn())
	assert.Nil(t, findCookie(rec, sessionCookieName))
}

func TestWithSession_BindsUser(t *testing.T) {
	env := newTestEnv(t)
	req := get("/about")
	env.loginAs(req, owner)

	env.serve(req)

	assert.Equal(t, owner, env.renderer.data.CurrentUser)
	assert.True(t, env.renderer.data.IsOwner)
}

func TestFlash_IsShownOnce(t *testing.T) {
	env := newTestEnv(t)
	req := get("/login")
	req.AddCookie(&http.Cookie{Name: flashCookieName, Value: base64.RawURLEncoding.EncodeToString([]byte(msgLoginToComment))})

	rec := env.serve(req)

	assert.Equal(t, msgLoginToComment, env.renderer.data.Flash)
	assert.Equal(t, -1, findCookie(rec, flashCookieName).MaxAge)
}
