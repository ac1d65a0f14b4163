package middleware

import (
	"context"
	"net/http"
	"strings"

	"simuweb/internal/auth"
	"simuweb/internal/model"

	"github.com/rs/zerolog"
)

// SessionKeyHeader carries the guest session key of clients without a bearer token.
const SessionKeyHeader = "X-Session-Key"

type sessionContextKey struct{}

// SessionResolver looks up the state of a client session.
type SessionResolver interface {
	Current(ctx context.Context, sessionKey string) (model.Session, error)
}

// TokenParser verifies bearer tokens.
type TokenParser interface {
	Parse(raw string) (*auth.Claims, error)
}

// WithSession returns a copy of ctx carrying sess.
func WithSession(ctx context.Context, sess model.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, sess)
}

// SessionFromContext returns the session resolved for the request, if any.
func SessionFromContext(ctx context.Context) (model.Session, bool) {
	sess, ok := ctx.Value(sessionContextKey{}).(model.Session)
	return sess, ok
}

// Identity resolves the session of each request. A valid bearer token selects
// the session named in its sid claim; the session acts as the account only
// while it is still authenticated as the token's subject, otherwise as a guest.
// Without a token the X-Session-Key header names a guest session. Requests
// with neither pass through without a session.
func Identity(sessions SessionResolver, tokens TokenParser, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if raw, ok := bearerToken(r); ok {
				claims, err := tokens.Parse(raw)
				if err != nil {
					logger.Warn().Str("path", r.URL.Path).Msg("invalid bearer token")
					writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "invalid or expired session token")
					return
				}

				sess, err := sessions.Current(ctx, claims.SessionKey)
				if err != nil {
					writeSessionError(w, err, logger)
					return
				}

				accountID, _ := claims.AccountID()
				if sess.State != model.SessionAuthenticated || sess.Account == nil || sess.Account.ID != accountID {
					sess = model.Session{Key: claims.SessionKey, State: model.SessionAnonymous}
				}

				next.ServeHTTP(w, r.WithContext(WithSession(ctx, sess)))
				return
			}

			key := strings.TrimSpace(r.Header.Get(SessionKeyHeader))
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			sess, err := sessions.Current(ctx, key)
			if err != nil {
				writeSessionError(w, err, logger)
				return
			}
			if sess.State != model.SessionAnonymous {
				// Authenticated sessions are only honoured together with their token.
				sess = model.Session{Key: key, State: model.SessionAnonymous}
			}

			next.ServeHTTP(w, r.WithContext(WithSession(ctx, sess)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	authz := r.Header.Get("Authorization")
	if authz == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(authz, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func writeSessionError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	code := model.Code(err)
	if code == model.ErrCodeInvalidInput {
		writeError(w, http.StatusBadRequest, code, err.Error())
		return
	}
	logger.Error().Err(err).Msg("failed to resolve session")
	writeError(w, http.StatusInternalServerError, code, "failed to resolve session")
}
