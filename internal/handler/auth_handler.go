package handler

import (
	"net/http"
	"time"

	"simuweb/internal/model"
	"simuweb/internal/service"

	"github.com/rs/zerolog"
)

// TokenIssuer signs session tokens for authenticated sessions.
type TokenIssuer interface {
	Issue(sessionKey string, accountID int64, now time.Time) (string, time.Time, error)
}

// SessionResponse is returned when a new guest session is started.
type SessionResponse struct {
	SessionKey string `json:"sessionKey"`
}

// AuthHandler handles session and identity HTTP requests.
type AuthHandler struct {
	identity service.IdentityService
	tokens   TokenIssuer
	now      func() time.Time
	logger   zerolog.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(identity service.IdentityService, tokens TokenIssuer, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		identity: identity,
		tokens:   tokens,
		now:      time.Now,
		logger:   logger.With().Str("handler", "auth").Logger(),
	}
}

// NewSession handles POST /api/session requests.
func (h *AuthHandler) NewSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusCreated, SessionResponse{SessionKey: service.NewSessionKey()})
}

// Register handles POST /api/auth/register requests.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	account, err := h.identity.Register(r.Context(), sess.Key, req.Name, req.Email)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	h.respondWithToken(w, http.StatusCreated, sess.Key, account)
}

// Login handles POST /api/auth/login requests.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	var req model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err, h.logger)
		return
	}

	account, err := h.identity.Login(r.Context(), sess.Key, req.Email)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	h.respondWithToken(w, http.StatusOK, sess.Key, account)
}

// Logout handles POST /api/auth/logout requests.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	if err := h.identity.Logout(r.Context(), sess.Key); err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.Session{Key: sess.Key, State: model.SessionAnonymous})
}

// Me handles GET /api/auth/me requests.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	sess, err := sessionOf(r)
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, sess)
}

func (h *AuthHandler) respondWithToken(w http.ResponseWriter, status int, sessionKey string, account *model.Account) {
	token, expiresAt, err := h.tokens.Issue(sessionKey, account.ID, h.now())
	if err != nil {
		writeError(w, err, h.logger)
		return
	}

	writeJSON(w, status, model.AuthResponse{Token: token, ExpiresAt: expiresAt, Account: account})
}
