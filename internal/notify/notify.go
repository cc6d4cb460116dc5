// Package notify turns domain events into transactional emails. Delivery is
// asynchronous and best-effort: callers never see send failures.
package notify

import (
	"context"
	"time"

	"github.com/Princeaman007/interships/internal/i18n"
)

type Kind string

const (
	EmailVerification    Kind = "email_verification"
	ApplicationSubmitted Kind = "application_submitted"
	ApplicationAccepted  Kind = "application_accepted"
	ApplicationRejected  Kind = "application_rejected"
	ContactReply         Kind = "contact_reply"
)

// Event is emitted by services after a successful write.
type Event struct {
	Kind            Kind
	To              string
	Name            string
	Lang            i18n.Lang
	Link            string
	InternshipTitle string
	Subject         string
	Reply           string
	OccurredAt      time.Time
}

// Notifier accepts events without blocking and without reporting errors.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}

// Message is a rendered email.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Sender delivers a rendered email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// Nop discards every event.
type Nop struct{}

func (Nop) Notify(context.Context, Event) {}
