package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-adoption/internal/platform/logger"
	"pet-adoption/internal/ports/auth"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fakeVerifier struct {
	valid map[string]auth.Claims
}

func (f fakeVerifier) Verify(_ context.Context, token string) (auth.Claims, error) {
	c, ok := f.valid[token]
	if !ok {
		return auth.Claims{}, errors.New("invalid token")
	}
	return c, nil
}

func protected(verifier auth.AuthVerifier) http.Handler {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	return AuthContext(verifier)(RequireAdmin(ok))
}

func TestRequireAdmin(t *testing.T) {
	v := fakeVerifier{valid: map[string]auth.Claims{
		"admin-token":  {Subject: "admin", Role: auth.RoleAdmin},
		"viewer-token": {Subject: "someone", Role: "viewer"},
	}}

	cases := []struct {
		name   string
		setup  func(r *http.Request)
		status int
	}{
		{"no token", func(*http.Request) {}, http.StatusUnauthorized},
		{"bearer admin", func(r *http.Request) { r.Header.Set("Authorization", "Bearer admin-token") }, http.StatusNoContent},
		{"bearer lowercase scheme", func(r *http.Request) { r.Header.Set("Authorization", "bearer admin-token") }, http.StatusNoContent},
		{"cookie admin", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: SessionCookie, Value: "admin-token"}) }, http.StatusNoContent},
		{"invalid token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") }, http.StatusUnauthorized},
		{"non admin role", func(r *http.Request) { r.Header.Set("Authorization", "Bearer viewer-token") }, http.StatusUnauthorized},
		{"malformed header", func(r *http.Request) { r.Header.Set("Authorization", "admin-token") }, http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/add-animal", nil)
			tc.setup(req)
			rec := httptest.NewRecorder()

			protected(v).ServeHTTP(rec, req)
			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String())
			}
		})
	}
}

func TestAuthContext_NilVerifierPassesThrough(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer whatever")
	rec := httptest.NewRecorder()

	protected(nil).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestClientIP(t *testing.T) {
	cases := map[string]string{
		"1.2.3.4:5555":      "1.2.3.4",
		"1.2.3.4":           "1.2.3.4",
		"[2001:db8::1]:443": "2001:db8::1",
		"2001:db8::1":       "2001:db8::1",
		"":                  "",
	}
	for addr, want := range cases {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.RemoteAddr = addr
		assert.Equal(t, want, ClientIP(r), "RemoteAddr=%q", addr)
	}
}

func TestClientIP_AfterRealIP(t *testing.T) {
	var got string
	h := chimw.RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = ClientIP(r)
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "9.9.9.9")
	h.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "9.9.9.9", got)
}

func TestRequestLog_WritesStatusAndRoute(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := logger.NewFromZap(zap.New(core))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(RequestLog(log))
	r.Use(Tracing)
	r.Get("/pets", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/pets", nil))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "/pets", ctx["path"])
	assert.EqualValues(t, http.StatusTeapot, ctx["status"])
	assert.NotEmpty(t, ctx["request_id"])
}
