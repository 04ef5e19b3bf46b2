package main

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/authcore/pkg/credstore"
	"github.com/dmitrymomot/authcore/pkg/jwt"
	"github.com/dmitrymomot/authcore/pkg/logger"
	"github.com/dmitrymomot/authcore/pkg/sessiontoken"
)

type server struct {
	cfg      Config
	users    *credstore.Store
	sessions *sessiontoken.Manager
	tokens   *jwt.Service
	tokenTTL int // hours, for minted JWTs
	log      *slog.Logger
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (s *server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if err := s.users.Register(req.Username, req.Password, req.Email); err != nil {
		switch {
		case errors.Is(err, credstore.ErrUsernameTaken):
			writeError(w, http.StatusConflict, "username already taken")
		case errors.Is(err, credstore.ErrInvalidInput), errors.Is(err, credstore.ErrWeakPassword):
			writeError(w, http.StatusBadRequest, err.Error())
		default:
			s.log.Error("registration failed", logger.Error(err), logger.Username(req.Username))
			writeError(w, http.StatusInternalServerError, "registration failed")
		}
		return
	}

	s.log.Info("user registered", logger.Username(req.Username))
	writeJSON(w, http.StatusCreated, envelope{Success: true})
}

// handleLogin authenticates and sets the opaque session cookie.
func (s *server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if !s.users.Authenticate(req.Username, req.Password) {
		unauthorized(w)
		return
	}

	token, err := s.sessions.Generate(req.Username)
	if err != nil {
		s.log.Error("session token generation failed", logger.Error(err))
		writeError(w, http.StatusInternalServerError, "login failed")
		return
	}

	http.SetCookie(w, s.sessionCookie(token, s.sessions.TTL()))
	s.log.Info("user logged in", logger.Username(req.Username))
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (s *server) handleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(s.cfg.SessionCookieName); err == nil {
		s.sessions.Invalidate(cookie.Value)
	}

	http.SetCookie(w, s.sessionCookie("", -time.Second))
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

func (s *server) handleMe(w http.ResponseWriter, r *http.Request) {
	username, ok := s.sessionOwner(r)
	if !ok {
		unauthorized(w)
		return
	}

	user, ok := s.users.Get(username)
	if !ok {
		unauthorized(w)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: map[string]any{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"is_active":  user.IsActive,
		"created_at": user.CreatedAt,
		"last_login": user.LastLogin,
	}})
}

func (s *server) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	username, ok := s.sessionOwner(r)
	if !ok {
		unauthorized(w)
		return
	}

	var req changePasswordRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if !s.users.ChangePassword(username, req.OldPassword, req.NewPassword) {
		writeError(w, http.StatusBadRequest, "password change failed")
		return
	}

	s.log.Info("password changed", logger.Username(username))
	writeJSON(w, http.StatusOK, envelope{Success: true})
}

// handleToken authenticates and returns a signed bearer token instead of a
// session cookie.
func (s *server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if !s.users.Authenticate(req.Username, req.Password) {
		unauthorized(w)
		return
	}

	user, ok := s.users.Get(req.Username)
	if !ok {
		unauthorized(w)
		return
	}

	role := s.cfg.roleFor(user.Username)
	token, err := s.tokens.Generate(user.ID.String(), user.Username, role, s.tokenTTL)
	if err != nil {
		s.log.Error("token generation failed", logger.Error(err), logger.Username(user.Username))
		writeError(w, http.StatusInternalServerError, "token generation failed")
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: map[string]any{
		"token": token,
		"user": map[string]any{
			"id":       user.ID,
			"username": user.Username,
			"role":     role,
		},
	}})
}

// handleProtected is reachable only through the JWT validation middleware.
func (s *server) handleProtected(w http.ResponseWriter, r *http.Request) {
	claims, ok := jwt.GetClaims(r.Context())
	if !ok {
		unauthorized(w)
		return
	}

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: map[string]any{
		"message": "this is protected content",
		"user": map[string]any{
			"id":       claims.Subject,
			"username": claims.Username,
			"role":     claims.Role,
		},
	}})
}

// handleAdmin additionally sits behind RequireRole("admin").
func (s *server) handleAdmin(w http.ResponseWriter, r *http.Request) {
	claims, _ := jwt.GetClaims(r.Context())

	writeJSON(w, http.StatusOK, envelope{Success: true, Data: map[string]any{
		"message":  "admin content",
		"username": claims.Username,
	}})
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, envelope{Success: true, Data: map[string]any{
		"users":    s.users.Len(),
		"sessions": s.sessions.Len(),
	}})
}

// sessionOwner resolves the request's session cookie to its owner, enforcing
// validity (presence and expiry) in the token manager.
func (s *server) sessionOwner(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(s.cfg.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return s.sessions.Owner(cookie.Value)
}

func (s *server) sessionCookie(value string, maxAge time.Duration) *http.Cookie {
	return &http.Cookie{
		Name:     s.cfg.SessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.cfg.SecureCookies,
		SameSite: http.SameSiteLaxMode,
	}
}
