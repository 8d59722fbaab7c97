package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func TestRateLimiter_PerIP(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	handler := rl.Middleware(discardLogger())(okHandler())

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, send("10.0.0.1:1000"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.1:1001"))
	assert.Equal(t, http.StatusTooManyRequests, send("10.0.0.1:1002"))
	assert.Equal(t, http.StatusNoContent, send("10.0.0.2:1000"))
}

func TestRateLimiter_PrunesIdleVisitors(t *testing.T) {
	now := time.Now()
	rl := NewRateLimiter(60, 1)
	rl.now = func() time.Time { return now }

	assert.True(t, rl.Allow("a"))
	assert.False(t, rl.Allow("a"))

	now = now.Add(visitorIdleTTL + time.Minute)
	assert.True(t, rl.Allow("b"))
	assert.NotContains(t, rl.visitors, "a")
}

func TestAuth(t *testing.T) {
	secret := []byte("secret")
	var seen string
	handler := Auth(secret, "gallery-idp", discardLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = PhotographerID(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	sign := func(claims jwt.Claims, method jwt.SigningMethod) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(secret)
		require.NoError(t, err)
		return token
	}
	valid := jwt.RegisteredClaims{
		Subject:   "photographer-1",
		Issuer:    "gallery-idp",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}
	expired := valid
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
	wrongIssuer := valid
	wrongIssuer.Issuer = "elsewhere"
	noSubject := valid
	noSubject.Subject = ""

	cases := []struct {
		name   string
		header string
		status int
	}{
		{"valid", "Bearer " + sign(valid, jwt.SigningMethodHS256), http.StatusNoContent},
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"expired", "Bearer " + sign(expired, jwt.SigningMethodHS256), http.StatusUnauthorized},
		{"wrong issuer", "Bearer " + sign(wrongIssuer, jwt.SigningMethodHS256), http.StatusUnauthorized},
		{"no subject", "Bearer " + sign(noSubject, jwt.SigningMethodHS256), http.StatusUnauthorized},
		{"other algorithm", "Bearer " + sign(valid, jwt.SigningMethodHS512), http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			seen = ""
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.status == http.StatusNoContent {
				assert.Equal(t, "photographer-1", seen)
			} else {
				assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
				assert.Empty(t, seen)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	handler := Recovery(discardLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, rec))
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestTimeout(t *testing.T) {
	handler := Timeout(20 * time.Millisecond)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "TIMEOUT", errorCode(t, rec))
}

func TestCORS_AllowsConfiguredOrigin(t *testing.T) {
	handler := CORS([]string{"https://gallery.example.com"})(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/access/abc", nil)
	req.Header.Set("Origin", "https://gallery.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "https://gallery.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/v1/access/abc", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestLogging_PassesThroughStatus(t *testing.T) {
	handler := Logging(discardLogger())(okHandler())
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
