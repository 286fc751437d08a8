package repositories

import (
	"sync"
	"time"

	"busbooking/internal/domain"
	"busbooking/internal/domain/models"
)

// DraftStore keeps booking drafts in memory for the lifetime of the process.
// Every mutation of a draft runs under the store lock, so updates to one
// draft are serialized.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]models.BookingDraft
}

func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]models.BookingDraft)}
}

func (s *DraftStore) Create(d models.BookingDraft) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.drafts[d.ID]; exists {
		return domain.ConflictError{Resource: "draft", Msg: "id already in use"}
	}
	s.drafts[d.ID] = d
	return nil
}

func (s *DraftStore) Get(id string) (models.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return models.BookingDraft{}, domain.NotFoundError{Resource: "draft"}
	}
	return d, nil
}

// Update applies fn to a copy of the draft and stores the copy only when fn
// succeeds. A failing fn leaves the stored draft untouched.
func (s *DraftStore) Update(id string, fn func(d *models.BookingDraft) error) (models.BookingDraft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, ok := s.drafts[id]
	if !ok {
		return models.BookingDraft{}, domain.NotFoundError{Resource: "draft"}
	}
	next := d
	if err := fn(&next); err != nil {
		return d, err
	}
	s.drafts[id] = next
	return next, nil
}

func (s *DraftStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}

// Sweep drops drafts not touched since cutoff and returns how many were removed.
func (s *DraftStore) Sweep(cutoff time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, d := range s.drafts {
		if d.UpdatedAt.Before(cutoff) {
			delete(s.drafts, id)
			n++
		}
	}
	return n
}

func (s *DraftStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.drafts)
}
