package journal

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"inkwell/models"
)

// AddGratitude records a gratitude list for today. Blank items are kept in
// place (the form has fixed slots) but a list with no non-blank item is
// rejected.
func (s *Session) AddGratitude(items []string) (models.GratitudeEntry, error) {
	nonBlank := false
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			nonBlank = true
			break
		}
	}
	if !nonBlank {
		return models.GratitudeEntry{}, ErrEmptyGratitude
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entry := models.GratitudeEntry{
		ID:    uuid.NewString(),
		Date:  time.Now().UTC().Format("2006-01-02"),
		Items: items,
	}
	s.gratitude = append([]models.GratitudeEntry{entry}, s.gratitude...)
	s.persist()
	return entry, nil
}

// Gratitude returns the gratitude lists, newest first.
func (s *Session) Gratitude() []models.GratitudeEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.GratitudeEntry, len(s.gratitude))
	copy(out, s.gratitude)
	return out
}

// DeleteGratitude removes a gratitude list by id. Unknown ids are a no-op.
func (s *Session) DeleteGratitude(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.gratitude {
		if s.gratitude[i].ID == id {
			s.gratitude = append(s.gratitude[:i], s.gratitude[i+1:]...)
			s.persist()
			return
		}
	}
}
