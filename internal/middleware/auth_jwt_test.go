package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestSignAndVerifyJWT(t *testing.T) {
	claims := TokenClaims{
		Sub:      "profile-1",
		Role:     "validator",
		Exp:      time.Now().Add(time.Hour).Unix(),
		Issuer:   "fundflow",
		Audience: "fundflow-clients",
	}
	token, err := SignJWT("secret", claims)
	if err != nil {
		t.Fatalf("SignJWT: %v", err)
	}
	got, err := VerifyJWT("secret", token)
	if err != nil {
		t.Fatalf("VerifyJWT: %v", err)
	}
	if got.Sub != "profile-1" || got.Role != "validator" {
		t.Fatalf("unexpected claims: %+v", got)
	}
}

func TestVerifyJWTRejectsWrongSecret(t *testing.T) {
	token, _ := SignJWT("secret", TokenClaims{Sub: "profile-1"})
	if _, err := VerifyJWT("other", token); err == nil {
		t.Fatal("expected verification failure with wrong secret")
	}
}

func TestVerifyJWTRejectsExpired(t *testing.T) {
	token, _ := SignJWT("secret", TokenClaims{
		Sub: "profile-1",
		Exp: time.Now().Add(-time.Minute).Unix(),
	})
	if _, err := VerifyJWT("secret", token); err == nil {
		t.Fatal("expected verification failure for expired token")
	}
}

func TestVerifyJWTRejectsMalformed(t *testing.T) {
	for _, token := range []string{"", "a.b", "not-a-token"} {
		if _, err := VerifyJWT("secret", token); err == nil {
			t.Fatalf("expected failure for token %q", token)
		}
	}
}

func TestAuthJWTMiddleware(t *testing.T) {
	var seenUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenUserID = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})
	handler := AuthJWT("secret")(next)

	// No Authorization header
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest("POST", "/v1/votes", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("missing header: status %d, want 401", rr.Code)
	}

	// Wrong scheme
	req := httptest.NewRequest("POST", "/v1/votes", nil)
	req.Header.Set("Authorization", "Basic abc")
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("wrong scheme: status %d, want 401", rr.Code)
	}

	// Valid token
	token, _ := SignJWT("secret", TokenClaims{Sub: "profile-9", Exp: time.Now().Add(time.Hour).Unix()})
	req = httptest.NewRequest("POST", "/v1/votes", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("valid token: status %d, want 204", rr.Code)
	}
	if seenUserID != "profile-9" {
		t.Fatalf("user id in context: %q, want profile-9", seenUserID)
	}
}
