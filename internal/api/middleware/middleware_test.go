package middleware

import (
	"StorySphere/internal/pkg/logger"
	"StorySphere/internal/pkg/security"
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type staticChecker struct {
	revoked map[string]bool
	err     error
}

func (s staticChecker) IsRevoked(_ context.Context, signature string) (bool, error) {
	return s.revoked[signature], s.err
}

func newAuthEngine(checker RevocationChecker) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", AuthMiddleware(checker), func(c *gin.Context) {
		c.String(http.StatusOK, "%d", c.GetUint64(UserIDKey))
	})
	return r
}

func doGet(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	token, err := security.GenerateToken(42, "a@example.com", "user")
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	sig, _ := security.ExtractSignature(token)

	cases := []struct {
		name    string
		checker RevocationChecker
		header  string
		status  int
		body    string
	}{
		{"missing", nil, "", http.StatusUnauthorized, "Not authorized, no token"},
		{"wrong scheme", nil, "Basic abc", http.StatusUnauthorized, "Not authorized, no token"},
		{"garbage", nil, "Bearer abc.def.ghi", http.StatusUnauthorized, "Not authorized, token failed"},
		{"valid", nil, "Bearer " + token, http.StatusOK, "42"},
		{"revoked", staticChecker{revoked: map[string]bool{sig: true}}, "Bearer " + token, http.StatusUnauthorized, "token failed"},
		{"not revoked", staticChecker{}, "Bearer " + token, http.StatusOK, "42"},
		{"lookup error", staticChecker{err: errors.New("redis down")}, "Bearer " + token, http.StatusInternalServerError, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := doGet(newAuthEngine(tc.checker), tc.header)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d (%s)", tc.status, w.Code, w.Body.String())
			}
			if !strings.Contains(w.Body.String(), tc.body) {
				t.Fatalf("expected body to contain %q, got %s", tc.body, w.Body.String())
			}
		})
	}
}

func TestTraceMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(TraceMiddleware())
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = logger.TraceID(c.Request.Context())
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-Trace-ID", "trace-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if seen != "trace-123" || w.Header().Get("X-Trace-ID") != "trace-123" {
		t.Fatalf("trace id not propagated: %q / %q", seen, w.Header().Get("X-Trace-ID"))
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	if seen == "" || w.Header().Get("X-Trace-ID") != seen {
		t.Fatalf("trace id should be generated")
	}
}

func TestAuditKeepsRequestBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(AuditMiddleware())
	r.POST("/api/stories", func(c *gin.Context) {
		b, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(b))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/stories", bytes.NewBufferString(`{"title":"x"}`)))
	if w.Body.String() != `{"title":"x"}` {
		t.Fatalf("body should be replayed to the handler, got %q", w.Body.String())
	}
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware())
	r.OPTIONS("/api/stories", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/stories", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNoContent || w.Header().Get("Access-Control-Allow-Origin") != "http://localhost:3000" {
		t.Fatalf("unexpected preflight response %d %v", w.Code, w.Header())
	}
}
