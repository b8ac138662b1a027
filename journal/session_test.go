package journal

import (
	"os"
	"reflect"
	"testing"

	"inkwell/db"
	"inkwell/models"
	"inkwell/store"
)

var testStore *store.Store

func TestMain(m *testing.M) {
	dbPath := "./test_journal.db"
	db.InitDB(dbPath)
	testStore = store.New(db.DB)

	code := m.Run()

	db.DB.Close()
	os.Remove(dbPath)

	os.Exit(code)
}

var nextTestUser = 1000

func newTestSession(t *testing.T) (*Session, int) {
	t.Helper()
	nextTestUser++
	return NewSession(testStore, nextTestUser), nextTestUser
}

func TestAddEntryPrepends(t *testing.T) {
	sess, _ := newTestSession(t)

	first, err := sess.AddEntry(EntryInput{Title: "first"})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	second, err := sess.AddEntry(EntryInput{Title: "second"})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}

	entries := sess.Entries()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].ID != second.ID || entries[1].ID != first.ID {
		t.Error("Entries are not newest-first")
	}
	if first.ID == second.ID {
		t.Error("Entry ids are not unique")
	}
	if first.UpdatedAt.Before(first.CreatedAt) {
		t.Error("UpdatedAt is before CreatedAt on a new entry")
	}
}

func TestAddEntryValidation(t *testing.T) {
	sess, _ := newTestSession(t)

	if _, err := sess.AddEntry(EntryInput{Title: ""}); err != ErrTitleRequired {
		t.Errorf("Expected ErrTitleRequired, got %v", err)
	}
	if _, err := sess.AddEntry(EntryInput{Title: "x", Mood: "ecstatic"}); err != ErrInvalidMood {
		t.Errorf("Expected ErrInvalidMood, got %v", err)
	}
	if _, err := sess.AddEntry(EntryInput{Title: "x", MicroGoals: []models.MicroGoal{{Text: ""}}}); err != ErrEmptyGoal {
		t.Errorf("Expected ErrEmptyGoal, got %v", err)
	}
	if len(sess.Entries()) != 0 {
		t.Error("Invalid payloads must not create entries")
	}
}

func TestUpdateEntryMergesAndStampsTime(t *testing.T) {
	sess, _ := newTestSession(t)

	entry, _ := sess.AddEntry(EntryInput{Title: "A", Mood: models.MoodGood, Content: "hello"})

	mood := models.MoodBad
	updated, err := sess.UpdateEntry(entry.ID, EntryUpdate{Mood: &mood})
	if err != nil {
		t.Fatalf("UpdateEntry failed: %v", err)
	}
	if updated == nil {
		t.Fatal("UpdateEntry returned nil for existing entry")
	}
	if updated.Mood != models.MoodBad {
		t.Errorf("Expected mood %q, got %q", models.MoodBad, updated.Mood)
	}
	if updated.Content != "hello" || updated.Title != "A" {
		t.Error("Unset fields must be left untouched by the merge")
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Error("UpdatedAt must be >= CreatedAt after update")
	}

	// Unknown id signals not-found via nil, not an error.
	missing, err := sess.UpdateEntry("nope", EntryUpdate{Mood: &mood})
	if err != nil || missing != nil {
		t.Errorf("Expected (nil, nil) for unknown id, got (%v, %v)", missing, err)
	}
}

func TestDeleteEntryCascadesPrivacy(t *testing.T) {
	sess, _ := newTestSession(t)
	sess.SetPIN("1234")

	entry, _ := sess.AddEntry(EntryInput{Title: "secret"})
	if !sess.TogglePrivacy(entry.ID) {
		t.Fatal("TogglePrivacy failed for existing entry")
	}
	if !sess.IsPrivate(entry.ID) {
		t.Fatal("Entry should be private after toggle")
	}

	sess.DeleteEntry(entry.ID)

	if sess.IsPrivate(entry.ID) {
		t.Error("Privacy flag must be removed when the entry is deleted")
	}
	if sess.GetEntry(entry.ID) != nil {
		t.Error("Deleted entry still retrievable")
	}
}

func TestDeleteUnknownIDIsNoop(t *testing.T) {
	sess, _ := newTestSession(t)
	sess.AddEntry(EntryInput{Title: "keep me"})

	sess.DeleteEntry("xyz")

	if len(sess.Entries()) != 1 {
		t.Error("Deleting an unknown id must not change the collection")
	}
}

func TestTogglePrivacyIdempotentPair(t *testing.T) {
	sess, _ := newTestSession(t)
	entry, _ := sess.AddEntry(EntryInput{Title: "t"})

	if sess.IsPrivate(entry.ID) {
		t.Fatal("New entries must start public")
	}
	sess.TogglePrivacy(entry.ID)
	sess.TogglePrivacy(entry.ID)
	if sess.IsPrivate(entry.ID) {
		t.Error("Two toggles must restore the original membership")
	}
}

func TestTogglePrivacyRequiresExistence(t *testing.T) {
	sess, _ := newTestSession(t)

	if sess.TogglePrivacy("dangling") {
		t.Error("TogglePrivacy must refuse an id with no entry")
	}
}

func TestRoundTripThroughStore(t *testing.T) {
	sess, userID := newTestSession(t)
	sess.SetPIN("4321")

	a, _ := sess.AddEntry(EntryInput{Title: "a", Mood: models.MoodOkay, Activities: []string{"run", "read"}})
	b, _ := sess.AddEntry(EntryInput{Title: "b", MicroGoals: []models.MicroGoal{{Text: "stretch"}}})
	sess.TogglePrivacy(a.ID)
	sess.DeleteEntry(b.ID)
	title := "a2"
	sess.UpdateEntry(a.ID, EntryUpdate{Title: &title})
	sess.AddGratitude([]string{"coffee", "", ""})

	// A fresh session built from the store must see identical state.
	reloaded := NewSession(testStore, userID)

	if !reflect.DeepEqual(reloaded.Entries(), sess.Entries()) {
		t.Errorf("Entries did not round-trip.\nwant: %+v\ngot:  %+v", sess.Entries(), reloaded.Entries())
	}
	if !reloaded.IsPrivate(a.ID) {
		t.Error("Privacy flag did not round-trip")
	}
	if reloaded.VaultUnlocked() {
		t.Error("Vault unlock state must not be persisted")
	}
	if !reloaded.VerifyPin("4321") {
		t.Error("PIN did not round-trip")
	}
	if !reflect.DeepEqual(reloaded.Gratitude(), sess.Gratitude()) {
		t.Error("Gratitude list did not round-trip")
	}
}

func TestReloadStartsLocked(t *testing.T) {
	sess, userID := newTestSession(t)
	sess.SetPIN("1234")
	if !sess.VerifyPin("1234") {
		t.Fatal("VerifyPin failed with correct PIN")
	}

	reloaded := NewSession(testStore, userID)
	if reloaded.VaultUnlocked() {
		t.Error("A fresh session must start with the vault locked")
	}
	if reloaded.PendingLock() != "" {
		t.Error("A fresh session must have no pending lock request")
	}
}

func TestClearEntriesKeepsPINAndGratitude(t *testing.T) {
	sess, _ := newTestSession(t)
	sess.SetPIN("7777")
	entry, _ := sess.AddEntry(EntryInput{Title: "gone"})
	sess.TogglePrivacy(entry.ID)
	sess.AddGratitude([]string{"sun"})

	sess.ClearEntries()

	if len(sess.Entries()) != 0 {
		t.Error("ClearEntries must remove all entries")
	}
	if sess.IsPrivate(entry.ID) {
		t.Error("ClearEntries must clear the privacy flag set")
	}
	if !sess.VerifyPin("7777") {
		t.Error("ClearEntries must keep the PIN")
	}
	if len(sess.Gratitude()) != 1 {
		t.Error("ClearEntries must keep the gratitude list")
	}
}

func TestScenarioLockFlow(t *testing.T) {
	sess, _ := newTestSession(t)
	sess.SetPIN("1234")

	a, err := sess.AddEntry(EntryInput{Title: "A", Mood: models.MoodGood})
	if err != nil {
		t.Fatalf("AddEntry failed: %v", err)
	}
	entries := sess.Entries()
	if len(entries) != 1 || entries[0].Title != "A" {
		t.Fatalf("Expected collection [A], got %+v", entries)
	}

	mood := models.MoodBad
	updated, _ := sess.UpdateEntry(a.ID, EntryUpdate{Mood: &mood})
	if updated.Mood != models.MoodBad {
		t.Errorf("Expected mood bad, got %q", updated.Mood)
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Error("UpdatedAt must not be before CreatedAt")
	}

	sess.RequestLock(a.ID)
	if sess.ConfirmLock("9999") {
		t.Error("ConfirmLock must fail with the wrong PIN")
	}
	if sess.IsPrivate(a.ID) {
		t.Error("Entry must stay public after a failed confirmation")
	}
	if sess.PendingLock() != a.ID {
		t.Error("Pending request must survive a failed confirmation")
	}

	if !sess.ConfirmLock("1234") {
		t.Error("ConfirmLock must succeed with the right PIN")
	}
	if !sess.IsPrivate(a.ID) {
		t.Error("Entry must be private after a successful confirmation")
	}
	if sess.PendingLock() != "" {
		t.Error("Pending request must be cleared on success")
	}
}

func TestGratitude(t *testing.T) {
	sess, _ := newTestSession(t)

	if _, err := sess.AddGratitude([]string{"", "  ", ""}); err != ErrEmptyGratitude {
		t.Errorf("Expected ErrEmptyGratitude, got %v", err)
	}

	first, err := sess.AddGratitude([]string{"health", "", ""})
	if err != nil {
		t.Fatalf("AddGratitude failed: %v", err)
	}
	second, _ := sess.AddGratitude([]string{"friends"})

	lists := sess.Gratitude()
	if len(lists) != 2 || lists[0].ID != second.ID {
		t.Error("Gratitude lists are not newest-first")
	}
	if lists[1].Items[0] != "health" {
		t.Error("Gratitude items not preserved")
	}
	if first.Date == "" {
		t.Error("Gratitude entries must carry a date")
	}

	sess.DeleteGratitude(first.ID)
	sess.DeleteGratitude("unknown") // no-op
	if len(sess.Gratitude()) != 1 {
		t.Error("DeleteGratitude by id failed")
	}
}
