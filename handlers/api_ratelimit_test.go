package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAPISignupRateLimiting(t *testing.T) {
	// Helper to send signup request
	sendSignup := func(username string, ip string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{
			"username": username,
			"password": "strongpassword123",
		})
		req := httptest.NewRequest("POST", "/api/v1/signup", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.RemoteAddr = ip + ":12345"
		w := httptest.NewRecorder()
		APISignupHandler(w, req)
		return w
	}

	ip := "192.168.1.100"

	// 1. Send 5 successful signups
	for i := 0; i < 5; i++ {
		w := sendSignup("limituser"+string(rune('a'+i)), ip)
		if w.Code != http.StatusCreated {
			t.Fatalf("Expected created, got %d. Body: %s", w.Code, w.Body.String())
		}
	}

	// 2. Send 6th signup -> Should be rate limited
	w := sendSignup("limituser_blocked", ip)
	if w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429 Too Many Requests, got %d", w.Code)
	}

	// 3. Different IP should still work
	w2 := sendSignup("limituser_other_ip", "10.0.0.5")
	if w2.Code != http.StatusCreated {
		t.Errorf("Expected created for different IP, got %d", w2.Code)
	}
}

func TestAPIPinRateLimiting(t *testing.T) {
	token, userID := signupForTest(t, "pinlimit_user")
	Journal.Get(userID).SetPIN("1234")

	sendUnlock := func(pin, ip string) *httptest.ResponseRecorder {
		body, _ := json.Marshal(map[string]string{"pin": pin})
		req := httptest.NewRequest("POST", "/api/v1/vault/unlock", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-API-Token", token)
		req.RemoteAddr = ip + ":4000"
		w := httptest.NewRecorder()
		APIUnlockVaultHandler(w, req)
		return w
	}

	ip := "192.168.2.50"
	for i := 0; i < 5; i++ {
		if w := sendUnlock("0000", ip); w.Code != http.StatusForbidden {
			t.Fatalf("Expected 403 for wrong PIN, got %d", w.Code)
		}
	}

	// Guessing window exhausted: even the right PIN is rejected now.
	if w := sendUnlock("1234", ip); w.Code != http.StatusTooManyRequests {
		t.Errorf("Expected 429 after repeated PIN failures, got %d", w.Code)
	}
}
