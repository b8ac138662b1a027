package journal

// The vault gate separates two concerns: viewing already-private entries
// (needs a session unlock via VerifyPin) and authorizing a new entry into
// the vault (needs a one-shot PIN confirmation via the pending-lock flow,
// without unlocking the vault itself).

// SetPIN sets or overwrites the vault PIN. The PIN is exactly 4 digits.
func (s *Session) SetPIN(pin string) error {
	if !pinPattern.MatchString(pin) {
		return ErrInvalidPIN
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pin = pin
	s.persist()
	return nil
}

func (s *Session) HasPIN() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pin != ""
}

// VerifyPin unlocks the vault when the candidate matches the stored PIN.
// With no PIN set, no candidate matches, not even the empty string.
func (s *Session) VerifyPin(candidate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.pin == "" || candidate != s.pin {
		return false
	}
	s.vaultUnlocked = true
	return true
}

// Lock relocks the vault. Always succeeds.
func (s *Session) Lock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.vaultUnlocked = false
}

func (s *Session) VaultUnlocked() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.vaultUnlocked
}

// RequestLock marks an entry as awaiting PIN confirmation to become
// private, replacing any prior pending request.
func (s *Session) RequestLock(entryID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingLock = entryID
}

func (s *Session) CancelLock() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pendingLock = ""
}

// PendingLock returns the entry id awaiting confirmation, or "".
func (s *Session) PendingLock() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pendingLock
}

// ConfirmLock completes a pending lock request. With no pending request it
// returns false and changes nothing. On a PIN mismatch the pending request
// is kept so the user can retry. On a match the entry is flagged private
// and the request is cleared.
func (s *Session) ConfirmLock(candidate string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pendingLock == "" {
		return false
	}
	if s.pin == "" || candidate != s.pin {
		return false
	}
	id := s.pendingLock
	s.pendingLock = ""
	s.togglePrivacyLocked(id)
	return true
}
