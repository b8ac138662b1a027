package store

import (
	"database/sql"
	"encoding/json"
	"log"

	"inkwell/models"
)

// Store persists one snapshot row per user in the journals table. Reads are
// fail-soft: a missing row or a malformed column yields empty defaults, never
// an error. Writes overwrite the whole row.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Load(userID int) models.Snapshot {
	var snap models.Snapshot
	var entries, privateIDs, gratitude string

	err := s.db.QueryRow("SELECT entries, pin, private_ids, gratitude FROM journals WHERE user_id = ?", userID).
		Scan(&entries, &snap.PIN, &privateIDs, &gratitude)
	if err != nil {
		// No row yet (or unreadable row): a fresh journal.
		return models.Snapshot{}
	}

	if err := json.Unmarshal([]byte(entries), &snap.Entries); err != nil {
		log.Printf("journal store: corrupt entries for user %d, resetting: %v", userID, err)
		snap.Entries = nil
	}
	if err := json.Unmarshal([]byte(privateIDs), &snap.PrivateIDs); err != nil {
		log.Printf("journal store: corrupt private ids for user %d, resetting: %v", userID, err)
		snap.PrivateIDs = nil
	}
	if err := json.Unmarshal([]byte(gratitude), &snap.Gratitude); err != nil {
		log.Printf("journal store: corrupt gratitude list for user %d, resetting: %v", userID, err)
		snap.Gratitude = nil
	}
	return snap
}

func (s *Store) Save(userID int, snap models.Snapshot) {
	entries, err := json.Marshal(snap.Entries)
	if err != nil {
		log.Printf("journal store: marshal entries for user %d: %v", userID, err)
		return
	}
	privateIDs, _ := json.Marshal(snap.PrivateIDs)
	gratitude, _ := json.Marshal(snap.Gratitude)

	_, err = s.db.Exec(`INSERT OR REPLACE INTO journals (user_id, entries, pin, private_ids, gratitude, updated_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)`,
		userID, string(entries), snap.PIN, string(privateIDs), string(gratitude))
	if err != nil {
		log.Printf("journal store: save for user %d: %v", userID, err)
	}
}

// Delete removes a user's snapshot entirely (account deletion).
func (s *Store) Delete(userID int) {
	if _, err := s.db.Exec("DELETE FROM journals WHERE user_id = ?", userID); err != nil {
		log.Printf("journal store: delete for user %d: %v", userID, err)
	}
}
