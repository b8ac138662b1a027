package journal

import (
	"errors"
	"regexp"
	"sync"
	"time"

	"github.com/google/uuid"

	"inkwell/models"
	"inkwell/store"
)

var pinPattern = regexp.MustCompile(`^\d{4}$`)

var (
	ErrTitleRequired  = errors.New("title is required")
	ErrInvalidMood    = errors.New("invalid mood")
	ErrEmptyGoal      = errors.New("micro-goal text is required")
	ErrInvalidPIN     = errors.New("PIN must be 4 digits")
	ErrEmptyGratitude = errors.New("at least one gratitude item is required")
)

// EntryInput is a validated payload for creating an entry. Title is
// required; everything else is optional.
type EntryInput struct {
	Title      string             `json:"title"`
	Content    string             `json:"content"`
	Mood       string             `json:"mood"`
	Activities []string           `json:"activities"`
	Images     []string           `json:"images"`
	MicroGoals []models.MicroGoal `json:"micro_goals"`
	Quote      string             `json:"quote"`
}

func (in EntryInput) validate() error {
	if in.Title == "" {
		return ErrTitleRequired
	}
	if in.Mood != "" && !models.ValidMood(in.Mood) {
		return ErrInvalidMood
	}
	for _, g := range in.MicroGoals {
		if g.Text == "" {
			return ErrEmptyGoal
		}
	}
	return nil
}

// EntryUpdate carries the fields of a partial update; nil fields are left
// untouched by the merge.
type EntryUpdate struct {
	Title      *string             `json:"title"`
	Content    *string             `json:"content"`
	Mood       *string             `json:"mood"`
	Activities *[]string           `json:"activities"`
	Images     *[]string           `json:"images"`
	MicroGoals *[]models.MicroGoal `json:"micro_goals"`
	Quote      *string             `json:"quote"`
}

// Session holds one user's journal state: the entry collection (newest
// first), the privacy flag set, the vault PIN and the transient vault gate.
// It is constructed at login from the persistent store and discarded at
// logout. Mutations persist the full snapshot, but only once the initial
// load has completed, so a half-initialized session can never clobber
// stored data.
type Session struct {
	mu     sync.Mutex
	userID int
	store  *store.Store
	loaded bool

	entries    []models.Entry
	pin        string
	privateIDs map[string]bool
	gratitude  []models.GratitudeEntry

	vaultUnlocked bool
	pendingLock   string // entry id awaiting PIN confirmation, "" if none
}

func NewSession(s *store.Store, userID int) *Session {
	sess := &Session{
		userID:     userID,
		store:      s,
		privateIDs: make(map[string]bool),
	}
	snap := s.Load(userID)
	sess.entries = snap.Entries
	sess.pin = snap.PIN
	for _, id := range snap.PrivateIDs {
		sess.privateIDs[id] = true
	}
	sess.gratitude = snap.Gratitude
	sess.loaded = true
	return sess
}

// persist writes the full snapshot. Callers hold the mutex.
func (s *Session) persist() {
	if !s.loaded {
		return
	}
	ids := make([]string, 0, len(s.privateIDs))
	for id := range s.privateIDs {
		ids = append(ids, id)
	}
	s.store.Save(s.userID, models.Snapshot{
		Entries:    s.entries,
		PIN:        s.pin,
		PrivateIDs: ids,
		Gratitude:  s.gratitude,
	})
}

func (s *Session) AddEntry(in EntryInput) (models.Entry, error) {
	if err := in.validate(); err != nil {
		return models.Entry{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	entry := models.Entry{
		ID:         uuid.NewString(),
		Title:      in.Title,
		Content:    in.Content,
		Mood:       in.Mood,
		Activities: in.Activities,
		Images:     in.Images,
		MicroGoals: in.MicroGoals,
		Quote:      in.Quote,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// Newest first.
	s.entries = append([]models.Entry{entry}, s.entries...)
	s.persist()
	return entry, nil
}

// UpdateEntry shallow-merges the set fields into the entry and refreshes its
// update timestamp. Returns nil if the id is unknown.
func (s *Session) UpdateEntry(id string, up EntryUpdate) (*models.Entry, error) {
	if up.Mood != nil && *up.Mood != "" && !models.ValidMood(*up.Mood) {
		return nil, ErrInvalidMood
	}
	if up.Title != nil && *up.Title == "" {
		return nil, ErrTitleRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID != id {
			continue
		}
		e := &s.entries[i]
		if up.Title != nil {
			e.Title = *up.Title
		}
		if up.Content != nil {
			e.Content = *up.Content
		}
		if up.Mood != nil {
			e.Mood = *up.Mood
		}
		if up.Activities != nil {
			e.Activities = *up.Activities
		}
		if up.Images != nil {
			e.Images = *up.Images
		}
		if up.MicroGoals != nil {
			e.MicroGoals = *up.MicroGoals
		}
		if up.Quote != nil {
			e.Quote = *up.Quote
		}
		e.UpdatedAt = time.Now().UTC()
		if e.UpdatedAt.Before(e.CreatedAt) {
			e.UpdatedAt = e.CreatedAt
		}
		updated := *e
		s.persist()
		return &updated, nil
	}
	return nil, nil
}

// DeleteEntry removes the entry if present. Deleting an unknown id is a
// no-op. The privacy flag and any pending lock request for the id are
// dropped with it, so neither can dangle.
func (s *Session) DeleteEntry(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.entries {
		if s.entries[i].ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		return
	}
	delete(s.privateIDs, id)
	if s.pendingLock == id {
		s.pendingLock = ""
	}
	s.persist()
}

func (s *Session) GetEntry(id string) *models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.entries {
		if s.entries[i].ID == id {
			e := s.entries[i]
			return &e
		}
	}
	return nil
}

// Entries returns the full collection, newest first.
func (s *Session) Entries() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Entry, len(s.entries))
	copy(out, s.entries)
	return out
}

// PublicEntries returns entries not flagged private.
func (s *Session) PublicEntries() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Entry
	for _, e := range s.entries {
		if !s.privateIDs[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

// VaultEntries returns the entries currently flagged private.
func (s *Session) VaultEntries() []models.Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Entry
	for _, e := range s.entries {
		if s.privateIDs[e.ID] {
			out = append(out, e)
		}
	}
	return out
}

func (s *Session) IsPrivate(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.privateIDs[id]
}

// TogglePrivacy flips the privacy flag for an existing entry. Returns false
// without changing anything when the id does not match an entry.
func (s *Session) TogglePrivacy(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.togglePrivacyLocked(id)
}

func (s *Session) togglePrivacyLocked(id string) bool {
	exists := false
	for i := range s.entries {
		if s.entries[i].ID == id {
			exists = true
			break
		}
	}
	if !exists {
		return false
	}
	if s.privateIDs[id] {
		delete(s.privateIDs, id)
	} else {
		s.privateIDs[id] = true
	}
	s.persist()
	return true
}

// ClearEntries wipes the journal (entries, privacy flags, pending lock) but
// keeps the PIN and the gratitude list.
func (s *Session) ClearEntries() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.privateIDs = make(map[string]bool)
	s.pendingLock = ""
	s.persist()
}
