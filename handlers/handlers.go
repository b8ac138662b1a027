package handlers

import (
	"encoding/csv"
	"encoding/json"
	"html/template"
	"net/http"
	"strconv"
	"strings"

	"github.com/dchest/captcha"
	"github.com/gorilla/csrf"

	"inkwell/auth"
	"inkwell/config"
	"inkwell/db"
	"inkwell/i18n"
	"inkwell/journal"
	"inkwell/models"
)

// Journal is the per-user session registry, set once at startup.
var Journal *journal.Manager

func RegisterHandlers(mux *http.ServeMux, manager *journal.Manager) {
	Journal = manager

	mux.HandleFunc("/", IndexHandler)
	mux.HandleFunc("/login", LoginHandler)
	mux.HandleFunc("/signup", SignupHandler)
	mux.HandleFunc("/logout", LogoutHandler)
	mux.HandleFunc("/dashboard", DashboardHandler)

	mux.HandleFunc("/journal", JournalHandler)
	mux.HandleFunc("/journal/view", ViewEntryHandler)
	mux.HandleFunc("/journal/add", AddEntryHandler)
	mux.HandleFunc("/journal/update", UpdateEntryHandler)
	mux.HandleFunc("/journal/delete", DeleteEntryHandler)
	mux.HandleFunc("/journal/goal", ToggleGoalHandler)
	mux.HandleFunc("/journal/export", ExportEntriesHandler)

	mux.HandleFunc("/vault", VaultHandler)
	mux.HandleFunc("/vault/unlock", UnlockVaultHandler)
	mux.HandleFunc("/vault/lock", LockVaultHandler)
	mux.HandleFunc("/journal/lock", RequestLockHandler)
	mux.HandleFunc("/journal/lock/confirm", ConfirmLockHandler)
	mux.HandleFunc("/journal/lock/cancel", CancelLockHandler)
	mux.HandleFunc("/journal/unlock-entry", UnlockEntryHandler)

	mux.HandleFunc("/gratitude", GratitudeHandler)
	mux.HandleFunc("/gratitude/add", AddGratitudeHandler)
	mux.HandleFunc("/gratitude/delete", DeleteGratitudeHandler)

	mux.HandleFunc("/settings", SettingsHandler)
	mux.HandleFunc("/settings/pin", SetPinHandler)
	mux.HandleFunc("/settings/clear", ClearDataHandler)
	mux.HandleFunc("/settings/delete-account", DeleteAccountHandler)

	mux.HandleFunc("/heatmap", HeatmapHandler)
	mux.Handle("/captcha/", captcha.Server(captcha.StdWidth, captcha.StdHeight))

	// Mobile API endpoints (JSON)
	mux.HandleFunc("/api/v1/login", APILoginHandler)
	mux.HandleFunc("/api/v1/signup", APISignupHandler)
	mux.HandleFunc("/api/v1/entries", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			APIListEntriesHandler(w, r)
		case http.MethodPost:
			APIAddEntryHandler(w, r)
		case http.MethodPut:
			APIUpdateEntryHandler(w, r)
		case http.MethodDelete:
			APIDeleteEntryHandler(w, r)
		default:
			sendJSONResponse(w, http.StatusMethodNotAllowed, APIResponse{Status: "error", Message: "Method not allowed"})
		}
	})
	mux.HandleFunc("/api/v1/entries/privacy", APITogglePrivacyHandler)
	mux.HandleFunc("/api/v1/vault/unlock", APIUnlockVaultHandler)
	mux.HandleFunc("/api/v1/vault/lock", APILockVaultHandler)
	mux.HandleFunc("/api/v1/gratitude", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			APIListGratitudeHandler(w, r)
		case http.MethodPost:
			APIAddGratitudeHandler(w, r)
		case http.MethodDelete:
			APIDeleteGratitudeHandler(w, r)
		default:
			sendJSONResponse(w, http.StatusMethodNotAllowed, APIResponse{Status: "error", Message: "Method not allowed"})
		}
	})
}

// session returns the journal session for the logged-in user, or nil.
func session(r *http.Request) *journal.Session {
	userID := auth.GetUserID(r)
	if userID == 0 {
		return nil
	}
	return Journal.Get(userID)
}

func IndexHandler(w http.ResponseWriter, r *http.Request) {
	if auth.GetUserID(r) != 0 {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "index.html", map[string]any{"AppName": config.AppConfig.AppName})
}

func LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodPost {
		ip := getClientIP(r)
		if !loginLimiter.Allow(ip) {
			http.Error(w, i18n.T(i18n.DetectLanguage(r), "TooManyAttempts"), http.StatusTooManyRequests)
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		var user models.User
		err := db.DB.QueryRow("SELECT id, username, password_hash FROM users WHERE LOWER(username) = LOWER(?)", username).
			Scan(&user.ID, &user.Username, &user.PasswordHash)

		// Timing attack mitigation: always check password
		targetHash := user.PasswordHash
		if err != nil {
			targetHash = db.DummyHash
		}
		match := db.CheckPasswordHash(password, targetHash)

		if err != nil || !match {
			loginLimiter.RecordFailure(ip)
			w.Header().Set("HX-Trigger", "loginError")
			// HTMX doesn't process HX-Trigger on 401/403 by default.
			// We return 200 OK for HTMX requests to ensure the trigger works.
			if r.Header.Get("HX-Request") == "true" {
				w.WriteHeader(http.StatusOK)
			} else {
				w.WriteHeader(http.StatusUnauthorized)
			}
			return
		}

		loginLimiter.Reset(ip)
		auth.SetSession(w, r, user.ID)
		w.Header().Set("HX-Redirect", "/dashboard")
		return
	}
	renderTemplate(w, r, "login.html", nil)
}

func SignupHandler(w http.ResponseWriter, r *http.Request) {
	lang := i18n.DetectLanguage(r)
	if r.Method == http.MethodPost {
		ip := getClientIP(r)
		if !signupLimiter.Allow(ip) {
			http.Error(w, i18n.T(lang, "TooManyAttempts"), http.StatusTooManyRequests)
			return
		}

		if !captcha.VerifyString(r.FormValue("captcha_id"), r.FormValue("captcha_solution")) {
			w.Header().Set("HX-Retarget", "#error-message")
			w.Write([]byte(i18n.T(lang, "WrongCaptcha")))
			return
		}

		username := r.FormValue("username")
		password := r.FormValue("password")

		if err := auth.ValidatePassword(password); err != nil {
			w.Header().Set("HX-Retarget", "#error-message")
			w.Write([]byte(i18n.T(lang, "PasswordTooShort")))
			return
		}

		hashedPassword, _ := db.HashPassword(password)
		result, err := db.DB.Exec("INSERT INTO users (username, password_hash) VALUES (?, ?)", username, hashedPassword)
		if err != nil {
			w.Header().Set("HX-Retarget", "#error-message")
			w.Write([]byte(i18n.T(lang, "UsernameAlreadyExists")))
			return
		}

		signupLimiter.RecordFailure(ip)

		id, _ := result.LastInsertId()
		auth.SetSession(w, r, int(id))
		w.Header().Set("HX-Redirect", "/dashboard")
		return
	}
	renderTemplate(w, r, "signup.html", map[string]any{"CaptchaID": captcha.New()})
}

func LogoutHandler(w http.ResponseWriter, r *http.Request) {
	if userID := auth.GetUserID(r); userID != 0 {
		// Dropping the session relocks the vault for the next login.
		Journal.Drop(userID)
	}
	auth.ClearSession(w, r)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func DashboardHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	entries := sess.PublicEntries()
	recent := entries
	if len(recent) > 5 {
		recent = recent[:5]
	}
	renderTemplate(w, r, "dashboard.html", map[string]any{
		"AppName":       config.AppConfig.AppName,
		"RecentEntries": recent,
		"EntryCount":    len(entries),
	})
}

func JournalHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "journal.html", map[string]any{"Entries": sess.PublicEntries()})
}

func ViewEntryHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	id := r.URL.Query().Get("id")
	entry := sess.GetEntry(id)
	if entry == nil {
		http.NotFound(w, r)
		return
	}
	// Private entries are only visible through an unlocked vault.
	if sess.IsPrivate(id) && !sess.VaultUnlocked() {
		http.Redirect(w, r, "/vault", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "entry.html", map[string]any{
		"Entry":   entry,
		"Private": sess.IsPrivate(id),
	})
}

func AddEntryHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	entry, err := sess.AddEntry(entryInputFromForm(r))
	if err != nil {
		lang := i18n.DetectLanguage(r)
		w.Header().Set("HX-Retarget", "#entry-error")
		w.Write([]byte(i18n.T(lang, entryErrorKey(err))))
		return
	}

	w.Header().Set("HX-Redirect", "/journal/view?id="+entry.ID)
}

func UpdateEntryHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.FormValue("id")
	update := entryUpdateFromForm(r)

	entry, err := sess.UpdateEntry(id, update)
	if err != nil {
		lang := i18n.DetectLanguage(r)
		w.Header().Set("HX-Retarget", "#entry-error")
		w.Write([]byte(i18n.T(lang, entryErrorKey(err))))
		return
	}
	if entry == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("HX-Redirect", "/journal/view?id="+entry.ID)
}

func DeleteEntryHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	sess.DeleteEntry(r.FormValue("id"))
	w.Header().Set("HX-Trigger", "entryChanged")
	w.WriteHeader(http.StatusOK)
}

// ToggleGoalHandler flips the completion flag of one micro-goal on an entry.
func ToggleGoalHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := r.FormValue("id")
	index, err := strconv.Atoi(r.FormValue("goal"))
	entry := sess.GetEntry(id)
	if err != nil || entry == nil || index < 0 || index >= len(entry.MicroGoals) {
		http.NotFound(w, r)
		return
	}

	goals := make([]models.MicroGoal, len(entry.MicroGoals))
	copy(goals, entry.MicroGoals)
	goals[index].Completed = !goals[index].Completed

	if _, err := sess.UpdateEntry(id, journal.EntryUpdate{MicroGoals: &goals}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("HX-Trigger", "entryChanged")
	w.WriteHeader(http.StatusOK)
}

func VaultHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if !sess.VaultUnlocked() {
		renderTemplate(w, r, "vault_locked.html", map[string]any{"HasPIN": sess.HasPIN()})
		return
	}
	renderTemplate(w, r, "vault.html", map[string]any{"Entries": sess.VaultEntries()})
}

func UnlockVaultHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	lang := i18n.DetectLanguage(r)
	ip := getClientIP(r)
	if !pinLimiter.Allow(ip) {
		http.Error(w, i18n.T(lang, "TooManyAttempts"), http.StatusTooManyRequests)
		return
	}

	if !sess.VerifyPin(r.FormValue("pin")) {
		pinLimiter.RecordFailure(ip)
		w.Header().Set("HX-Retarget", "#pin-error")
		w.Write([]byte(i18n.T(lang, "WrongPIN")))
		return
	}

	pinLimiter.Reset(ip)
	w.Header().Set("HX-Redirect", "/vault")
}

func LockVaultHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	sess.Lock()
	w.Header().Set("HX-Redirect", "/journal")
}

// RequestLockHandler starts the PIN confirmation flow that moves an entry
// into the vault. Confirming does not require the vault to be unlocked.
func RequestLockHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	lang := i18n.DetectLanguage(r)
	if !sess.HasPIN() {
		w.Header().Set("HX-Retarget", "#pin-error")
		w.Write([]byte(i18n.T(lang, "NoPINSet")))
		return
	}

	id := r.FormValue("id")
	if sess.GetEntry(id) == nil {
		http.NotFound(w, r)
		return
	}

	sess.RequestLock(id)
	renderTemplate(w, r, "pin_confirm.html", map[string]any{"EntryID": id})
}

func ConfirmLockHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	lang := i18n.DetectLanguage(r)
	ip := getClientIP(r)
	if !pinLimiter.Allow(ip) {
		http.Error(w, i18n.T(lang, "TooManyAttempts"), http.StatusTooManyRequests)
		return
	}

	if sess.PendingLock() == "" {
		w.Header().Set("HX-Retarget", "#pin-error")
		w.Write([]byte(i18n.T(lang, "NothingToConfirm")))
		return
	}

	if !sess.ConfirmLock(r.FormValue("pin")) {
		pinLimiter.RecordFailure(ip)
		// The pending request survives a mismatch so the user can retry.
		w.Header().Set("HX-Retarget", "#pin-error")
		w.Write([]byte(i18n.T(lang, "WrongPIN")))
		return
	}

	pinLimiter.Reset(ip)
	w.Header().Set("HX-Redirect", "/journal")
}

func CancelLockHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	sess.CancelLock()
	w.Header().Set("HX-Redirect", "/journal")
}

// UnlockEntryHandler moves a private entry back to the public journal.
// Requires the vault to be unlocked, since it exposes vault contents.
func UnlockEntryHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	lang := i18n.DetectLanguage(r)
	if !sess.VaultUnlocked() {
		w.Header().Set("HX-Retarget", "#pin-error")
		w.Write([]byte(i18n.T(lang, "VaultLocked")))
		return
	}

	id := r.FormValue("id")
	if !sess.IsPrivate(id) || !sess.TogglePrivacy(id) {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("HX-Redirect", "/vault")
}

func GratitudeHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "gratitude.html", map[string]any{"Entries": sess.Gratitude()})
}

func AddGratitudeHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	r.ParseForm()
	if _, err := sess.AddGratitude(r.Form["item"]); err != nil {
		lang := i18n.DetectLanguage(r)
		w.Header().Set("HX-Retarget", "#gratitude-error")
		w.Write([]byte(i18n.T(lang, "GratitudeEmpty")))
		return
	}
	w.Header().Set("HX-Redirect", "/gratitude")
}

func DeleteGratitudeHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	sess.DeleteGratitude(r.FormValue("id"))
	w.Header().Set("HX-Trigger", "gratitudeChanged")
	w.WriteHeader(http.StatusOK)
}

func SettingsHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	renderTemplate(w, r, "settings.html", map[string]any{"HasPIN": sess.HasPIN()})
}

func SetPinHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	lang := i18n.DetectLanguage(r)
	pin := r.FormValue("pin")
	if pin != r.FormValue("confirm_pin") {
		w.Header().Set("HX-Retarget", "#pin-error")
		w.Write([]byte(i18n.T(lang, "PINsDoNotMatch")))
		return
	}
	if err := sess.SetPIN(pin); err != nil {
		w.Header().Set("HX-Retarget", "#pin-error")
		w.Write([]byte(i18n.T(lang, "InvalidPIN")))
		return
	}

	w.Header().Set("HX-Trigger", "pinUpdated")
	w.Write([]byte(i18n.T(lang, "PINUpdated")))
}

func ClearDataHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	sess.ClearEntries()
	w.Header().Set("HX-Redirect", "/dashboard")
}

func DeleteAccountHandler(w http.ResponseWriter, r *http.Request) {
	userID := auth.GetUserID(r)
	if userID == 0 || r.Method != http.MethodPost {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	Journal.Purge(userID)
	auth.RevokeAPITokens(userID)
	if _, err := db.DB.Exec("DELETE FROM users WHERE id = ?", userID); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	auth.ClearSession(w, r)
	w.Header().Set("HX-Redirect", "/")
}

// HeatmapHandler returns mood counts bucketed by day, for the calendar and
// heatmap views. Derived data only; nothing here mutates state.
func HeatmapHandler(w http.ResponseWriter, r *http.Request) {
	sess := session(r)
	if sess == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	buckets := make(map[string]map[string]int)
	for _, e := range sess.Entries() {
		day := e.CreatedAt.Format("2006-01-02")
		if buckets[day] == nil {
			buckets[day] = make(map[string]int)
		}
		mood := e.Mood
		if mood == "" {
			mood = "none"
		}
		buckets[day][mood]++
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(buckets)
}

func ExportEntriesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	sess := session(r)
	if sess == nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=\"journal.csv\"")

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{"id", "title", "mood", "activities", "content", "quote", "created_at", "updated_at", "private"})

	for _, e := range sess.Entries() {
		private := "no"
		if sess.IsPrivate(e.ID) {
			private = "yes"
		}
		writer.Write([]string{
			e.ID,
			e.Title,
			e.Mood,
			strings.Join(e.Activities, ", "),
			e.Content,
			e.Quote,
			e.CreatedAt.Format("2006-01-02 15:04:05"),
			e.UpdatedAt.Format("2006-01-02 15:04:05"),
			private,
		})
	}
}

func entryInputFromForm(r *http.Request) journal.EntryInput {
	r.ParseForm()
	var goals []models.MicroGoal
	for _, text := range r.Form["micro_goals"] {
		if text != "" {
			goals = append(goals, models.MicroGoal{Text: text})
		}
	}
	return journal.EntryInput{
		Title:      r.FormValue("title"),
		Content:    r.FormValue("content"),
		Mood:       r.FormValue("mood"),
		Activities: splitList(r.FormValue("activities")),
		Images:     r.Form["images"],
		MicroGoals: goals,
		Quote:      r.FormValue("quote"),
	}
}

func entryUpdateFromForm(r *http.Request) journal.EntryUpdate {
	r.ParseForm()
	var up journal.EntryUpdate
	set := func(name string) *string {
		if _, ok := r.Form[name]; !ok {
			return nil
		}
		v := r.FormValue(name)
		return &v
	}
	up.Title = set("title")
	up.Content = set("content")
	up.Mood = set("mood")
	up.Quote = set("quote")
	if _, ok := r.Form["activities"]; ok {
		activities := splitList(r.FormValue("activities"))
		up.Activities = &activities
	}
	if _, ok := r.Form["images"]; ok {
		images := r.Form["images"]
		up.Images = &images
	}
	if _, ok := r.Form["micro_goals"]; ok {
		var goals []models.MicroGoal
		for _, text := range r.Form["micro_goals"] {
			if text != "" {
				goals = append(goals, models.MicroGoal{Text: text})
			}
		}
		up.MicroGoals = &goals
	}
	return up
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func entryErrorKey(err error) string {
	switch err {
	case journal.ErrTitleRequired:
		return "TitleRequired"
	case journal.ErrInvalidMood:
		return "InvalidMood"
	default:
		return "InvalidRequestBody"
	}
}

func renderTemplate(w http.ResponseWriter, r *http.Request, name string, data any) {
	lang := i18n.DetectLanguage(r)

	funcMap := template.FuncMap{
		"T": func(key string) string {
			return i18n.T(lang, key)
		},
	}

	tmpl, err := template.New(name).Funcs(funcMap).ParseFiles("templates/layout.html", "templates/"+name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Prepare CSRF field
	csrfField := csrf.TemplateField(r)

	// If data is a map, ensure AppName and Lang are there
	if m, ok := data.(map[string]any); ok {
		if _, exists := m["AppName"]; !exists {
			m["AppName"] = config.AppConfig.AppName
		}
		m["Lang"] = lang
		m["csrfField"] = csrfField
	} else if data == nil {
		data = map[string]any{
			"AppName":   config.AppConfig.AppName,
			"Lang":      lang,
			"csrfField": csrfField,
		}
	}

	tmpl.ExecuteTemplate(w, "layout", data)
}
