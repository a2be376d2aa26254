package http

import (
	"context"
	"errors"
	"net/http"

	"tasktracker/internal/logger"
	"tasktracker/internal/session"
	"tasktracker/internal/utils"
)

// auth is an HTTP middleware that enforces session-cookie authentication.
//
// It reads the session cookie, verifies the signed JWT it carries and
// resolves the embedded session token against the server-side session store.
// On success the authenticated user's ID and the session token are stored in
// the request context before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - the session cookie is absent ([ErrNoSessionCookie]);
//   - the cookie's JWT fails signature, issuer or expiry validation;
//   - the session token resolves to no live server-side session
//     ([session.ErrSessionNotFound]), expired and revoked sessions alike.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Err(ErrNoSessionCookie).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		sessionToken, err := utils.ValidateAndParseJWTToken(cookie.Value, h.cfg.SessionSecret, h.cfg.TokenIssuer)
		if err != nil {
			log.Err(err).Msg("invalid session cookie")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		sess, err := h.sessions.Get(ctx, sessionToken)
		if err != nil {
			if errors.Is(err, session.ErrSessionNotFound) {
				log.Err(err).Msg("session expired or revoked")
			} else {
				log.Err(err).Msg("error resolving session")
			}
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		// Store the principal in the context so that downstream handlers can
		// retrieve it without re-resolving the session.
		ctx = context.WithValue(ctx, utils.UserIDCtxKey, sess.UserID)
		ctx = context.WithValue(ctx, utils.SessionTokenCtxKey, sess.Token)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
