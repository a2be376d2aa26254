package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tasktracker/internal/utils"
)

// nextCapture is a terminal handler recording whether it ran and what
// principal the middleware left in the context.
type nextCapture struct {
	called       bool
	userID       int64
	userIDOK     bool
	sessionToken string
	tokenOK      bool
}

func (n *nextCapture) ServeHTTP(_ http.ResponseWriter, r *http.Request) {
	n.called = true
	n.userID, n.userIDOK = utils.GetUserIDFromContext(r.Context())
	n.sessionToken, n.tokenOK = utils.GetSessionTokenFromContext(r.Context())
}

// signedSessionCookie creates a live session for userID and returns the
// matching signed cookie, as register/login would set it.
func signedSessionCookie(t *testing.T, h *Handler, userID int64) (*http.Cookie, string) {
	t.Helper()

	sess, err := h.sessions.Create(context.Background(), userID)
	require.NoError(t, err)

	signed, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, sess.Token, h.sessions.TTL(), h.cfg.SessionSecret)
	require.NoError(t, err)

	return &http.Cookie{Name: sessionCookieName, Value: signed}, sess.Token
}

func TestAuthMiddleware_ValidCookie(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)
	cookie, sessionToken := signedSessionCookie(t, h, 7)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	require.True(t, next.called)
	assert.True(t, next.userIDOK)
	assert.Equal(t, int64(7), next.userID)
	assert.True(t, next.tokenOK)
	assert.Equal(t, sessionToken, next.sessionToken)
}

func TestAuthMiddleware_NoCookie(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_GarbageCookie(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: "not.a.jwt"})
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestAuthMiddleware_ForgedCookie verifies that a JWT signed with a different
// key is rejected even when its claims look right.
func TestAuthMiddleware_ForgedCookie(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)

	forged, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, "some-session-token", time.Hour, "attacker-key")
	require.NoError(t, err)

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: forged})
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

// TestAuthMiddleware_RevokedSession verifies that a well-signed cookie whose
// server-side session is gone no longer authenticates.
func TestAuthMiddleware_RevokedSession(t *testing.T) {
	h := newTestHandler(t, &mockAuthService{}, nil)
	cookie, sessionToken := signedSessionCookie(t, h, 7)

	require.NoError(t, h.sessions.Delete(context.Background(), sessionToken))

	next := &nextCapture{}
	req := httptest.NewRequest(http.MethodGet, "/api/user", nil)
	req.AddCookie(cookie)
	rec := httptest.NewRecorder()

	h.auth(next).ServeHTTP(rec, req)

	assert.False(t, next.called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
