package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/fusionasiatica/storefront-api/internal/core/domain"
	"github.com/fusionasiatica/storefront-api/internal/core/ports"
)

// submittedAtLayout mirrors the locale-formatted timestamp shown to admins.
const submittedAtLayout = "02-01-2006, 15:04:05"

// ContactService owns the append-ordered submission log. Ids derive from the
// insertion timestamp in unix milliseconds, bumped past the last issued id so
// two submissions within the same millisecond still get distinct values.
type ContactService struct {
	store ports.SlotStore
	log   zerolog.Logger
	now   func() time.Time

	mu     sync.Mutex
	subs   []domain.ContactSubmission
	lastID int64
}

func NewContactService(store ports.SlotStore, log zerolog.Logger) *ContactService {
	return &ContactService{store: store, log: log, now: time.Now}
}

func (s *ContactService) Initialize(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var subs []domain.ContactSubmission
	found, err := s.store.Load(ctx, ports.SlotContact, &subs)
	if err != nil {
		return err
	}
	if found {
		s.subs = subs
		for _, sub := range subs {
			if sub.ID > s.lastID {
				s.lastID = sub.ID
			}
		}
	}
	return nil
}

func (s *ContactService) List(ctx context.Context) []domain.ContactSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.ContactSubmission, len(s.subs))
	copy(out, s.subs)
	return out
}

// Add stamps the id and human-readable timestamp, appends and persists.
func (s *ContactService) Add(ctx context.Context, input ports.ContactInput) (domain.ContactSubmission, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	id := now.UnixMilli()
	if id <= s.lastID {
		id = s.lastID + 1
	}
	s.lastID = id

	sub := domain.ContactSubmission{
		ID:          id,
		Name:        input.Name,
		Email:       input.Email,
		Category:    input.Category,
		Message:     input.Message,
		SubmittedAt: now.Format(submittedAtLayout),
	}
	s.subs = append(s.subs, sub)

	if err := s.store.Save(ctx, ports.SlotContact, s.subs); err != nil {
		return domain.ContactSubmission{}, err
	}

	s.log.Info().Int64("id", sub.ID).Str("category", sub.Category).Msg("contact submission recorded")
	return sub, nil
}

// Remove filters out the matching submission and persists. Absent ids are a
// no-op.
func (s *ContactService) Remove(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.subs[:0]
	for _, sub := range s.subs {
		if sub.ID != id {
			kept = append(kept, sub)
		}
	}
	s.subs = kept
	return s.store.Save(ctx, ports.SlotContact, s.subs)
}
