package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rewritely/rewritely-go/internal/crypto"
)

const testSecret = "test-secret"

func protectedHandler(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		claims, ok := ClaimsFromContext(r.Context())
		if !ok {
			t.Error("expected claims in request context")
			return
		}
		if claims.UserID != 1 || claims.Username != "alice" {
			t.Errorf("unexpected claims: %+v", claims)
		}
	})
}

func TestJWTAuthMissingHeader(t *testing.T) {
	var called bool
	h := JWTAuth(testSecret)(protectedHandler(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if called {
		t.Error("next handler should not be called without a token")
	}
}

func TestJWTAuthWrongScheme(t *testing.T) {
	var called bool
	h := JWTAuth(testSecret)(protectedHandler(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusUnauthorized)
	}
	if called {
		t.Error("next handler should not be called for a non-bearer scheme")
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	var called bool
	h := JWTAuth(testSecret)(protectedHandler(t, &called))

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	// A token was presented but failed validation: 403, not 401.
	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if called {
		t.Error("next handler should not be called for an invalid token")
	}
}

func TestJWTAuthExpiredToken(t *testing.T) {
	var called bool
	h := JWTAuth(testSecret)(protectedHandler(t, &called))

	token, err := crypto.GenerateToken(1, "alice", "alice@x.com", testSecret, time.Millisecond)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}
	time.Sleep(10 * time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusForbidden)
	}
	if called {
		t.Error("next handler should not be called for an expired token")
	}
}

func TestJWTAuthValidToken(t *testing.T) {
	var called bool
	h := JWTAuth(testSecret)(protectedHandler(t, &called))

	token, err := crypto.GenerateToken(1, "alice", "alice@x.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !called {
		t.Error("next handler was not called for a valid token")
	}
}
