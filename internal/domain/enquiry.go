package domain

import (
	"fmt"
	"strings"
	"time"
)

type Enquiry struct {
	ID         string
	AuthorNRIC string
	ProjectID  string
	Text       string
	Reply      string
	CreatedAt  time.Time
	RepliedAt  *time.Time
}

// Replied reports whether the enquiry has a reply. Once replied, the
// question text is immutable.
func (e *Enquiry) Replied() bool {
	return e.Reply != ""
}

// Edit replaces the question text. Fails once a reply exists.
func (e *Enquiry) Edit(newText string) error {
	if e.Replied() {
		return fmt.Errorf("enquiry %s: %w", e.ID, ErrAlreadyReplied)
	}
	if strings.TrimSpace(newText) == "" {
		return fmt.Errorf("enquiry text: %w", ErrEmptyText)
	}
	e.Text = newText
	return nil
}

// SetReply records a reply and its timestamp. Re-replying overwrites.
func (e *Enquiry) SetReply(message string, now time.Time) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("reply text: %w", ErrEmptyText)
	}
	e.Reply = message
	e.RepliedAt = &now
	return nil
}
