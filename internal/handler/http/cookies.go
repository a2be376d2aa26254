package http

import (
	"context"
	"net/http"

	"tasktracker/internal/utils"
)

// sessionCookieName is the name of the cookie carrying the signed session
// token.
const sessionCookieName = "session_token"

// productionEnvironment is the environment name that switches the session
// cookie to Secure (HTTPS-only).
const productionEnvironment = "production"

// establishSession creates a server-side session for userID, wraps its token
// in a signed JWT, and sets the session cookie on the response.
func (h *Handler) establishSession(ctx context.Context, w http.ResponseWriter, userID int64) error {
	sess, err := h.sessions.Create(ctx, userID)
	if err != nil {
		return err
	}

	signed, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, sess.Token, h.sessions.TTL(), h.cfg.SessionSecret)
	if err != nil {
		return err
	}

	h.setSessionCookie(w, signed)
	return nil
}

func (h *Handler) setSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   int(h.sessions.TTL().Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Environment == productionEnvironment,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *Handler) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Environment == productionEnvironment,
		SameSite: http.SameSiteLaxMode,
	})
}
