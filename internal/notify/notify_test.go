package notify

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Princeaman007/interships/internal/i18n"
)

type recordingSender struct {
	mu   sync.Mutex
	msgs []Message
	err  error
}

func (s *recordingSender) Send(_ context.Context, msg Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.msgs = append(s.msgs, msg)
	return s.err
}

func (s *recordingSender) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.msgs)
}

func mustRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestRenderLocalized(t *testing.T) {
	r := mustRenderer(t)

	tests := []struct {
		name        string
		ev          Event
		wantSubject string
		wantBody    string
	}{
		{
			name:        "verification fr",
			ev:          Event{Kind: EmailVerification, To: "a@x.com", Name: "Awa", Lang: i18n.FR, Link: "https://x/verify-email?token=abc"},
			wantSubject: "Vérifiez votre adresse email",
			wantBody:    "https://x/verify-email?token=abc",
		},
		{
			name:        "accepted en",
			ev:          Event{Kind: ApplicationAccepted, To: "a@x.com", Name: "Awa", Lang: i18n.EN, InternshipTitle: "Backend intern"},
			wantSubject: "Your application has been accepted",
			wantBody:    "Backend intern",
		},
		{
			name:        "rejected defaults to french",
			ev:          Event{Kind: ApplicationRejected, To: "a@x.com", Name: "Awa", InternshipTitle: "Stage data"},
			wantSubject: "Votre candidature a été refusée",
			wantBody:    "n'a pas été retenue",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := r.Render(tt.ev)
			if err != nil {
				t.Fatalf("Render: %v", err)
			}
			if msg.Subject != tt.wantSubject {
				t.Fatalf("Subject = %q, want %q", msg.Subject, tt.wantSubject)
			}
			if !strings.Contains(msg.HTML, tt.wantBody) {
				t.Fatalf("body missing %q:\n%s", tt.wantBody, msg.HTML)
			}
			if msg.To != tt.ev.To {
				t.Fatalf("To = %q", msg.To)
			}
		})
	}
}

func TestRenderEscapesInput(t *testing.T) {
	r := mustRenderer(t)
	msg, err := r.Render(Event{Kind: ContactReply, Lang: i18n.EN, Name: "<script>", Subject: "hi", Reply: "ok"})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(msg.HTML, "<script>") {
		t.Fatal("name was not escaped")
	}
}

func TestRenderUnknownKind(t *testing.T) {
	r := mustRenderer(t)
	if _, err := r.Render(Event{Kind: "nope"}); err == nil {
		t.Fatal("expected error for unknown kind")
	}
}

func TestDispatcherDeliversQueuedEvents(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, mustRenderer(t), 10, 2)

	for i := 0; i < 5; i++ {
		d.Notify(context.Background(), Event{Kind: ApplicationSubmitted, To: "a@x.com", InternshipTitle: "I1"})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.Close(ctx); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := sender.count(); got != 5 {
		t.Fatalf("sent %d messages, want 5", got)
	}
}

func TestDispatcherSwallowsSendErrors(t *testing.T) {
	sender := &recordingSender{err: errors.New("smtp down")}
	d := NewDispatcher(sender, mustRenderer(t), 10, 1)

	d.Notify(context.Background(), Event{Kind: ApplicationAccepted, To: "a@x.com"})

	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := sender.count(); got != 1 {
		t.Fatalf("attempted %d sends, want 1", got)
	}
}

func TestDispatcherDropsAfterClose(t *testing.T) {
	sender := &recordingSender{}
	d := NewDispatcher(sender, mustRenderer(t), 1, 1)
	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("Close: %v", err)
	}

	d.Notify(context.Background(), Event{Kind: ApplicationAccepted, To: "a@x.com"})
	if err := d.Close(context.Background()); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if got := sender.count(); got != 0 {
		t.Fatalf("sent %d messages after close", got)
	}
}
