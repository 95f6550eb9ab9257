package http

import (
	"errors"
	"net/http"

	"github.com/revisor-lab/revisor/pkg/domain/model/auth"
	"github.com/revisor-lab/revisor/pkg/usecase"
	"github.com/revisor-lab/revisor/pkg/utils/errutil"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User auth.User `json:"user"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusBadRequest)
		return
	}

	session, err := s.uc.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			writeJSON(r.Context(), w, http.StatusUnauthorized, errorResponse{Error: err.Error()})
			return
		}
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    session.ID.String(),
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})

	writeJSON(r.Context(), w, http.StatusOK, loginResponse{User: session.User})
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := s.uc.Auth.Logout(r.Context()); err != nil {
		errutil.HandleHTTP(r.Context(), w, err, http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	writeJSON(r.Context(), w, http.StatusOK, successResponse{Success: true})
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	if user := auth.UserFromContext(r.Context()); user != nil {
		writeJSON(r.Context(), w, http.StatusOK, loginResponse{User: *user})
		return
	}

	// NoAuthn mode skips the middleware, fall back to the stored session
	session, err := s.uc.Auth.CurrentSession(r.Context())
	if err != nil {
		writeJSON(r.Context(), w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, loginResponse{User: session.User})
}
