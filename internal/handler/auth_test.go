package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rewritely/rewritely-go/internal/crypto"
	"github.com/rewritely/rewritely-go/internal/middleware"
	"github.com/rewritely/rewritely-go/internal/model"
	"github.com/rewritely/rewritely-go/internal/repository"
	"github.com/rewritely/rewritely-go/internal/service"
)

func newTestAuthHandler() *AuthHandler {
	svc := service.NewAuthService(repository.NewUserRepository(nil), "test-secret", time.Hour)
	return NewAuthHandler(svc)
}

func TestHandleRegisterInvalidBody(t *testing.T) {
	h := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if body["success"] != false {
		t.Errorf("success = %v, want false", body["success"])
	}
	if msg, _ := body["message"].(string); msg == "" {
		t.Error("expected a message in the error response")
	}
}

func TestHandleRegisterValidationError(t *testing.T) {
	h := newTestAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/register",
		strings.NewReader(`{"username":"al","email":"a@x.com","password":"secret1"}`))
	rec := httptest.NewRecorder()
	h.HandleRegister(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestHandleVerifyEchoesClaims(t *testing.T) {
	h := newTestAuthHandler()
	protected := middleware.JWTAuth("test-secret")(http.HandlerFunc(h.HandleVerify))

	token, err := crypto.GenerateToken(7, "alice", "alice@x.com", "test-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateToken() unexpected error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/verify", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}

	var resp model.VerifyResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if !resp.Success {
		t.Error("success = false, want true")
	}
	if resp.User.ID != 7 || resp.User.Username != "alice" || resp.User.Email != "alice@x.com" {
		t.Errorf("unexpected user in verify response: %+v", resp.User)
	}
}
