package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/manon-manin/site-api/internal/models"
)

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ContactRepository persists contact form submissions.
type ContactRepository interface {
	SaveContact(ctx context.Context, contact models.StoredContact) (models.StoredContact, error)
	ListContacts(ctx context.Context) ([]models.StoredContact, error)
	GetContact(ctx context.Context, id string) (models.StoredContact, error)
}

// NewsletterRepository persists newsletter subscriptions. SaveNewsletter
// reports created=false when the email was already subscribed.
type NewsletterRepository interface {
	SaveNewsletter(ctx context.Context, subscription models.StoredNewsletter) (models.StoredNewsletter, bool, error)
	ListNewsletters(ctx context.Context) ([]models.StoredNewsletter, error)
}

// MemoryStore keeps contacts and newsletter subscriptions in process memory.
// It owns both collections exclusively; callers only ever receive copies.
// All mutation is guarded by a single mutex so the newsletter
// check-then-insert stays atomic under parallel request handlers.
type MemoryStore struct {
	mu          sync.RWMutex
	contacts    map[string]contactEntry
	newsletters map[string]newsletterEntry
	byEmail     map[string]string
	seq         uint64
	now         func() time.Time
}

type contactEntry struct {
	record models.StoredContact
	seq    uint64
}

type newsletterEntry struct {
	record models.StoredNewsletter
	seq    uint64
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		contacts:    make(map[string]contactEntry),
		newsletters: make(map[string]newsletterEntry),
		byEmail:     make(map[string]string),
		now:         time.Now,
	}
}

// SaveContact assigns an identifier and timestamp, inserts the record and
// returns the stored copy. There is no uniqueness constraint on contacts.
func (s *MemoryStore) SaveContact(_ context.Context, contact models.StoredContact) (models.StoredContact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	contact.ID = uuid.NewString()
	contact.CreatedAt = s.now().UTC()
	s.seq++
	s.contacts[contact.ID] = contactEntry{record: contact, seq: s.seq}

	return contact, nil
}

// ListContacts returns every stored contact ordered newest first.
func (s *MemoryStore) ListContacts(_ context.Context) ([]models.StoredContact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]contactEntry, 0, len(s.contacts))
	for _, entry := range s.contacts {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].record.CreatedAt.Equal(entries[j].record.CreatedAt) {
			return entries[i].record.CreatedAt.After(entries[j].record.CreatedAt)
		}
		return entries[i].seq > entries[j].seq
	})

	contacts := make([]models.StoredContact, 0, len(entries))
	for _, entry := range entries {
		contacts = append(contacts, entry.record)
	}

	return contacts, nil
}

// GetContact returns the stored contact with the given identifier.
func (s *MemoryStore) GetContact(_ context.Context, id string) (models.StoredContact, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.contacts[id]
	if !ok {
		return models.StoredContact{}, ErrNotFound
	}

	return entry.record, nil
}

// SaveNewsletter inserts a subscription unless one already exists for the
// same email, compared case-insensitively. Resubscribing returns the
// existing record unchanged: same identifier, same timestamp.
func (s *MemoryStore) SaveNewsletter(_ context.Context, subscription models.StoredNewsletter) (models.StoredNewsletter, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(strings.TrimSpace(subscription.Email))
	if id, ok := s.byEmail[key]; ok {
		return s.newsletters[id].record, false, nil
	}

	subscription.ID = uuid.NewString()
	subscription.CreatedAt = s.now().UTC()
	s.seq++
	s.newsletters[subscription.ID] = newsletterEntry{record: subscription, seq: s.seq}
	s.byEmail[key] = subscription.ID

	return subscription, true, nil
}

// ListNewsletters returns every stored subscription ordered newest first.
func (s *MemoryStore) ListNewsletters(_ context.Context) ([]models.StoredNewsletter, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]newsletterEntry, 0, len(s.newsletters))
	for _, entry := range s.newsletters {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].record.CreatedAt.Equal(entries[j].record.CreatedAt) {
			return entries[i].record.CreatedAt.After(entries[j].record.CreatedAt)
		}
		return entries[i].seq > entries[j].seq
	})

	newsletters := make([]models.StoredNewsletter, 0, len(entries))
	for _, entry := range entries {
		newsletters = append(newsletters, entry.record)
	}

	return newsletters, nil
}
