package auth

import (
	"net/http/httptest"
	"os"
	"testing"

	"inkwell/config"
	"inkwell/db"
)

func TestMain(m *testing.M) {
	// Setup
	dbPath := "./test_auth.db"
	db.InitDB(dbPath)
	config.AppConfig.SessionKey = "test-secret-key-12345678901234567890123456789012"
	InitStore()

	// Run tests
	code := m.Run()

	// Teardown
	db.DB.Close()
	os.Remove(dbPath)

	os.Exit(code)
}

func TestSessionManagement(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/", nil)

	userID := 42

	// Set session
	SetSession(w, r, userID)

	// Since SetSession modifies the response (cookies), we need to pass them back in a new request
	cookies := w.Result().Cookies()
	r2 := httptest.NewRequest("GET", "/", nil)
	for _, c := range cookies {
		r2.AddCookie(c)
	}

	if GetUserID(r2) != userID {
		t.Errorf("Expected userID %d, got %d", userID, GetUserID(r2))
	}

	// Clearing the session invalidates the cookie
	w2 := httptest.NewRecorder()
	ClearSession(w2, r2)
	r3 := httptest.NewRequest("GET", "/", nil)
	if GetUserID(r3) != 0 {
		t.Error("Expected no userID after clearing the session")
	}
}

func TestAPITokenPersistence(t *testing.T) {
	userID := 100

	token := CreateAPIToken(userID)
	if token == "" {
		t.Fatal("Failed to create API token")
	}

	sess, ok := GetAPISession(token)
	if !ok {
		t.Error("Failed to retrieve API session by token")
	}
	if sess.UserID != userID {
		t.Errorf("Expected userID %d, got %d", userID, sess.UserID)
	}

	// Test non-existent token
	_, ok = GetAPISession("invalid-token")
	if ok {
		t.Error("GetAPISession succeeded for invalid token")
	}

	// Revocation drops every token for the user
	RevokeAPITokens(userID)
	if _, ok := GetAPISession(token); ok {
		t.Error("Expected token to be revoked")
	}
}

func TestValidatePassword(t *testing.T) {
	if err := ValidatePassword("short"); err == nil {
		t.Error("Expected short password to be rejected")
	}
	if err := ValidatePassword("longenough123"); err != nil {
		t.Errorf("Expected password to be accepted, got %v", err)
	}
}

func TestGenerateRandomToken(t *testing.T) {
	t1 := generateRandomToken(32)
	t2 := generateRandomToken(32)

	if t1 == t2 {
		t.Error("generateRandomToken produced identical tokens")
	}
}
