package handlers

import (
	"encoding/json"
	"net/http"

	"inkwell/auth"
	"inkwell/db"
	"inkwell/i18n"
	"inkwell/journal"
	"inkwell/models"
)

type APIResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func sendJSONResponse(w http.ResponseWriter, status int, response APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// apiSession resolves the X-API-Token header to a journal session.
func apiSession(r *http.Request) *journal.Session {
	token := r.Header.Get("X-API-Token")
	if token == "" {
		return nil
	}
	sess, ok := auth.GetAPISession(token)
	if !ok {
		return nil
	}
	return Journal.Get(sess.UserID)
}

func APILoginHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	if r.Method != http.MethodPost {
		sendJSONResponse(w, http.StatusMethodNotAllowed, APIResponse{Status: "error", Message: i18n.T(lang, "MethodNotAllowed")})
		return
	}

	ip := getClientIP(r)
	if !loginLimiter.Allow(ip) {
		sendJSONResponse(w, http.StatusTooManyRequests, APIResponse{Status: "error", Message: i18n.T(lang, "TooManyAttempts")})
		return
	}

	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidRequestBody")})
		return
	}

	var user models.User
	err := db.DB.QueryRow("SELECT id, username, password_hash FROM users WHERE LOWER(username) = LOWER(?)", input.Username).
		Scan(&user.ID, &user.Username, &user.PasswordHash)

	// Timing attack mitigation: always check password
	targetHash := user.PasswordHash
	if err != nil {
		targetHash = db.DummyHash
	}
	match := db.CheckPasswordHash(input.Password, targetHash)

	if err != nil || !match {
		loginLimiter.RecordFailure(ip)
		sendJSONResponse(w, http.StatusUnauthorized, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidCredentials")})
		return
	}

	loginLimiter.Reset(ip)

	token := auth.CreateAPIToken(user.ID)

	sendJSONResponse(w, http.StatusOK, APIResponse{
		Status: "success",
		Data: map[string]any{
			"token":    token,
			"user_id":  user.ID,
			"username": user.Username,
		},
	})
}

func APISignupHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	if r.Method != http.MethodPost {
		sendJSONResponse(w, http.StatusMethodNotAllowed, APIResponse{Status: "error", Message: i18n.T(lang, "MethodNotAllowed")})
		return
	}

	ip := getClientIP(r)
	if !signupLimiter.Allow(ip) {
		sendJSONResponse(w, http.StatusTooManyRequests, APIResponse{Status: "error", Message: i18n.T(lang, "TooManyAttempts")})
		return
	}

	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidRequestBody")})
		return
	}

	if err := auth.ValidatePassword(input.Password); err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, "PasswordTooShort")})
		return
	}

	hashedPassword, _ := db.HashPassword(input.Password)
	result, err := db.DB.Exec("INSERT INTO users (username, password_hash) VALUES (?, ?)", input.Username, hashedPassword)
	if err != nil {
		sendJSONResponse(w, http.StatusConflict, APIResponse{Status: "error", Message: i18n.T(lang, "UsernameAlreadyExists")})
		return
	}

	// Record signup attempt to limit rate of creation per IP
	signupLimiter.RecordFailure(ip)

	id, _ := result.LastInsertId()
	token := auth.CreateAPIToken(int(id))

	sendJSONResponse(w, http.StatusCreated, APIResponse{
		Status: "success",
		Data: map[string]any{
			"token":    token,
			"user_id":  id,
			"username": input.Username,
		},
	})
}

func APIListEntriesHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	sess := apiSession(r)
	if sess == nil {
		sendJSONResponse(w, http.StatusUnauthorized, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidCredentials")})
		return
	}

	// The vault gate applies to the API as well: private entries only come
	// back while the vault is unlocked.
	if r.URL.Query().Get("vault") == "1" {
		if !sess.VaultUnlocked() {
			sendJSONResponse(w, http.StatusForbidden, APIResponse{Status: "error", Message: i18n.T(lang, "VaultLocked")})
			return
		}
		sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: sess.VaultEntries()})
		return
	}

	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: sess.PublicEntries()})
}

func APIAddEntryHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	sess := apiSession(r)
	if sess == nil {
		sendJSONResponse(w, http.StatusUnauthorized, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidCredentials")})
		return
	}

	var input journal.EntryInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidRequestBody")})
		return
	}

	entry, err := sess.AddEntry(input)
	if err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, entryErrorKey(err))})
		return
	}

	sendJSONResponse(w, http.StatusCreated, APIResponse{Status: "success", Data: entry})
}

func APIUpdateEntryHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	sess := apiSession(r)
	if sess == nil {
		sendJSONResponse(w, http.StatusUnauthorized, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidCredentials")})
		return
	}

	var input struct {
		ID string `json:"id"`
		journal.EntryUpdate
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidRequestBody")})
		return
	}

	entry, err := sess.UpdateEntry(input.ID, input.EntryUpdate)
	if err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, entryErrorKey(err))})
		return
	}
	if entry == nil {
		sendJSONResponse(w, http.StatusNotFound, APIResponse{Status: "error", Message: i18n.T(lang, "EntryNotFound")})
		return
	}

	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: entry})
}

func APIDeleteEntryHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	sess := apiSession(r)
	if sess == nil {
		sendJSONResponse(w, http.StatusUnauthorized, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidCredentials")})
		return
	}

	// Deleting an unknown id is a no-op, not an error.
	sess.DeleteEntry(r.URL.Query().Get("id"))
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success"})
}

func APITogglePrivacyHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	if r.Method != http.MethodPost {
		sendJSONResponse(w, http.StatusMethodNotAllowed, APIResponse{Status: "error", Message: i18n.T(lang, "MethodNotAllowed")})
		return
	}
	sess := apiSession(r)
	if sess == nil {
		sendJSONResponse(w, http.StatusUnauthorized, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidCredentials")})
		return
	}

	var input struct {
		ID  string `json:"id"`
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidRequestBody")})
		return
	}

	// Flagging an entry private goes through the one-shot PIN confirmation;
	// unflagging requires the vault to be unlocked.
	if !sess.IsPrivate(input.ID) {
		ip := getClientIP(r)
		if !pinLimiter.Allow(ip) {
			sendJSONResponse(w, http.StatusTooManyRequests, APIResponse{Status: "error", Message: i18n.T(lang, "TooManyAttempts")})
			return
		}
		if sess.GetEntry(input.ID) == nil {
			sendJSONResponse(w, http.StatusNotFound, APIResponse{Status: "error", Message: i18n.T(lang, "EntryNotFound")})
			return
		}
		sess.RequestLock(input.ID)
		if !sess.ConfirmLock(input.PIN) {
			pinLimiter.RecordFailure(ip)
			sess.CancelLock()
			sendJSONResponse(w, http.StatusForbidden, APIResponse{Status: "error", Message: i18n.T(lang, "WrongPIN")})
			return
		}
		pinLimiter.Reset(ip)
		sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: map[string]bool{"private": true}})
		return
	}

	if !sess.VaultUnlocked() {
		sendJSONResponse(w, http.StatusForbidden, APIResponse{Status: "error", Message: i18n.T(lang, "VaultLocked")})
		return
	}
	if !sess.TogglePrivacy(input.ID) {
		sendJSONResponse(w, http.StatusNotFound, APIResponse{Status: "error", Message: i18n.T(lang, "EntryNotFound")})
		return
	}
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: map[string]bool{"private": false}})
}

func APIUnlockVaultHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	if r.Method != http.MethodPost {
		sendJSONResponse(w, http.StatusMethodNotAllowed, APIResponse{Status: "error", Message: i18n.T(lang, "MethodNotAllowed")})
		return
	}
	sess := apiSession(r)
	if sess == nil {
		sendJSONResponse(w, http.StatusUnauthorized, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidCredentials")})
		return
	}

	ip := getClientIP(r)
	if !pinLimiter.Allow(ip) {
		sendJSONResponse(w, http.StatusTooManyRequests, APIResponse{Status: "error", Message: i18n.T(lang, "TooManyAttempts")})
		return
	}

	var input struct {
		PIN string `json:"pin"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidRequestBody")})
		return
	}

	if !sess.VerifyPin(input.PIN) {
		pinLimiter.RecordFailure(ip)
		sendJSONResponse(w, http.StatusForbidden, APIResponse{Status: "error", Message: i18n.T(lang, "WrongPIN")})
		return
	}

	pinLimiter.Reset(ip)
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success"})
}

func APILockVaultHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	if r.Method != http.MethodPost {
		sendJSONResponse(w, http.StatusMethodNotAllowed, APIResponse{Status: "error", Message: i18n.T(lang, "MethodNotAllowed")})
		return
	}
	sess := apiSession(r)
	if sess == nil {
		sendJSONResponse(w, http.StatusUnauthorized, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidCredentials")})
		return
	}

	sess.Lock()
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success"})
}

func APIListGratitudeHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	sess := apiSession(r)
	if sess == nil {
		sendJSONResponse(w, http.StatusUnauthorized, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidCredentials")})
		return
	}
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success", Data: sess.Gratitude()})
}

func APIAddGratitudeHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	sess := apiSession(r)
	if sess == nil {
		sendJSONResponse(w, http.StatusUnauthorized, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidCredentials")})
		return
	}

	var input struct {
		Items []string `json:"items"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidRequestBody")})
		return
	}

	entry, err := sess.AddGratitude(input.Items)
	if err != nil {
		sendJSONResponse(w, http.StatusBadRequest, APIResponse{Status: "error", Message: i18n.T(lang, "GratitudeEmpty")})
		return
	}

	sendJSONResponse(w, http.StatusCreated, APIResponse{Status: "success", Data: entry})
}

func APIDeleteGratitudeHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	sess := apiSession(r)
	if sess == nil {
		sendJSONResponse(w, http.StatusUnauthorized, APIResponse{Status: "error", Message: i18n.T(lang, "InvalidCredentials")})
		return
	}

	sess.DeleteGratitude(r.URL.Query().Get("id"))
	sendJSONResponse(w, http.StatusOK, APIResponse{Status: "success"})
}
