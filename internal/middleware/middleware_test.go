package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

type staticGate struct {
	password string
	token    string
}

func (g staticGate) Authorize(bearer, password string) error {
	if (g.token != "" && bearer == g.token) || (password != "" && password == g.password) {
		return nil
	}
	return errors.New("nope")
}

func TestCORSAllowsAnyOrigin(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORS(nil))
	r.POST("/api/admin/login", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/admin/login", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("unexpected status: got=%d want=%d", rec.Code, http.StatusNoContent)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("unexpected allow-origin header: got=%q want=%q", got, "*")
	}
}

func TestCORSRestrictedOrigins(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(CORS([]string{"https://admin.example"}))
	r.GET("/api/courses", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	req.Header.Set("Origin", "https://admin.example")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://admin.example" {
		t.Fatalf("unexpected allow-origin header: got=%q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/courses", nil)
	req.Header.Set("Origin", "https://evil.example")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("unexpected status for foreign origin: got=%d", rec.Code)
	}
}

func TestAdminAuth(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/admin", AdminAuth(staticGate{password: "s3cret", token: "tok"}), func(c *gin.Context) {
		body, _ := io.ReadAll(c.Request.Body)
		c.String(http.StatusOK, string(body))
	})

	cases := []struct {
		name   string
		body   string
		bearer string
		want   int
	}{
		{"password", `{"password":"s3cret","courseId":"1"}`, "", http.StatusOK},
		{"wrong password", `{"password":"nope"}`, "", http.StatusUnauthorized},
		{"no body", ``, "", http.StatusUnauthorized},
		{"malformed", `{"password":`, "", http.StatusUnauthorized},
		{"non-string password", `{"password":123}`, "", http.StatusUnauthorized},
		{"bearer", `{}`, "tok", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/admin", strings.NewReader(tc.body))
		if tc.bearer != "" {
			req.Header.Set("Authorization", "Bearer "+tc.bearer)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)

		if rec.Code != tc.want {
			t.Fatalf("%s: unexpected status: got=%d want=%d", tc.name, rec.Code, tc.want)
		}
		if tc.want == http.StatusOK && rec.Body.String() != tc.body {
			t.Fatalf("%s: body was not restored: got=%q", tc.name, rec.Body.String())
		}
		if tc.want == http.StatusUnauthorized && rec.Body.String() != `{"error":"Unauthorized"}` {
			t.Fatalf("%s: unexpected error body: %s", tc.name, rec.Body.String())
		}
	}
}

func TestRequestIDEchoesOrMints(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Header().Get(RequestIDHeader) != "abc-123" || rec.Body.String() != "abc-123" {
		t.Fatalf("request id not echoed: header=%q body=%q", rec.Header().Get(RequestIDHeader), rec.Body.String())
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if len(rec.Header().Get(RequestIDHeader)) != 36 {
		t.Fatalf("expected a minted uuid, got %q", rec.Header().Get(RequestIDHeader))
	}
}

func TestRecoveryReturnsFixedBody(t *testing.T) {
	t.Parallel()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(Recovery(nil))
	r.GET("/boom", func(c *gin.Context) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if rec.Code != http.StatusInternalServerError || rec.Body.String() != `{"error":"Internal server error"}` {
		t.Fatalf("unexpected recovery response: %d %s", rec.Code, rec.Body.String())
	}
}
