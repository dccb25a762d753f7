// Package notification implements the per-recipient notification mailbox.
// Each mailbox is an ordered sequence, newest first: new entries are inserted
// at the head and nothing is ever removed or reordered.
package notification

import (
	"sync"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"

	"gomun/internal/apperr"
)

// Directory answers whether an email belongs to a registered account. The
// account store satisfies this; tests substitute their own.
type Directory interface {
	Exists(email string) bool
}

// Mailbox stores every recipient's notifications in memory.
type Mailbox struct {
	mu        sync.RWMutex
	mailboxes map[string][]*Notification
	directory Directory
	clock     clockwork.Clock
}

// NewMailbox creates an empty mailbox store backed by the given account
// directory.
func NewMailbox(directory Directory, clock clockwork.Clock) *Mailbox {
	return &Mailbox{
		mailboxes: make(map[string][]*Notification),
		directory: directory,
		clock:     clock,
	}
}

// List returns the owner's notifications newest first. Owners without a
// mailbox get an empty list, never nil.
func (m *Mailbox) List(owner string) []Notification {
	m.mu.RLock()
	defer m.mu.RUnlock()

	notes := m.mailboxes[owner]
	out := make([]Notification, 0, len(notes))
	for _, n := range notes {
		out = append(out, *n)
	}
	return out
}

// Create appends a notification to the head of the recipient's mailbox. The
// recipient must be a registered account; on failure no mailbox entry is
// created.
func (m *Mailbox) Create(sender string, req CreateRequest) (Notification, error) {
	if !m.directory.Exists(req.Recipient) {
		return Notification{}, apperr.NotFound("recipient not found")
	}

	note := &Notification{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Message:     req.Message,
		Tag:         req.Tag,
		ActionRoute: req.ActionRoute,
		Read:        false,
		From:        sender,
		CreatedAt:   m.clock.Now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	// Newest first: head insertion, creating the mailbox on first delivery.
	m.mailboxes[req.Recipient] = append([]*Notification{note}, m.mailboxes[req.Recipient]...)

	return *note, nil
}

// Mark sets the read flag of one notification in the owner's mailbox and
// returns the updated entry. Other owners' mailboxes are never searched.
func (m *Mailbox) Mark(owner, id string, read bool) (Notification, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, n := range m.mailboxes[owner] {
		if n.ID == id {
			n.Read = read
			return *n, nil
		}
	}

	return Notification{}, apperr.NotFound("notification not found")
}

// Count reports the total number of stored notifications across mailboxes.
func (m *Mailbox) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := 0
	for _, notes := range m.mailboxes {
		total += len(notes)
	}
	return total
}
