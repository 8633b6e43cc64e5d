package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stewartjane/packet-core/internal/middleware"
	"golang.org/x/crypto/bcrypt"
)

func newTestRouter(adminPassword string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewHandler(adminPassword, false, nil).RegisterRoutes(r.Group("/api"))
	return r
}

func postLogin(t *testing.T, r *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginPlaintext(t *testing.T) {
	r := newTestRouter("hunter2")

	w := postLogin(t, r, `{"password":"hunter2"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, middleware.SessionCookie+"=") {
		t.Fatalf("session cookie not set: %q", cookie)
	}
	if !strings.Contains(cookie, "HttpOnly") {
		t.Fatalf("cookie must be http-only: %q", cookie)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	r := newTestRouter("hunter2")

	if w := postLogin(t, r, `{"password":"nope"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	r := newTestRouter(string(hash))

	if w := postLogin(t, r, `{"password":"hunter2"}`); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if w := postLogin(t, r, `{"password":"nope"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLoginMissingBody(t *testing.T) {
	r := newTestRouter("hunter2")

	if w := postLogin(t, r, `{}`); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestLoginUnconfiguredPasswordAlwaysFails(t *testing.T) {
	r := newTestRouter("")

	if w := postLogin(t, r, `{"password":""}`); w.Code != http.StatusBadRequest {
		t.Fatalf("empty candidate should fail binding, got %d", w.Code)
	}
	if w := postLogin(t, r, `{"password":"anything"}`); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newTestRouter("hunter2")

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	cookie := w.Header().Get("Set-Cookie")
	if !strings.Contains(cookie, middleware.SessionCookie+"=") || !strings.Contains(cookie, "Max-Age=0") {
		t.Fatalf("cookie not cleared: %q", cookie)
	}
}
