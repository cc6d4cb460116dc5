package contact

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/dbtest"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/Princeaman007/interships/internal/notify"
	"github.com/Princeaman007/interships/internal/respond"
	"github.com/google/uuid"
)

type recorder struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *recorder) Notify(_ context.Context, ev notify.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func sendRequest() *SendRequest {
	return &SendRequest{
		FullName: "John Doe",
		Email:    " John@Example.com ",
		Subject:  "Housing",
		Message:  "Do you help with housing?",
	}
}

func TestReplyNotifiesInMessageLanguage(t *testing.T) {
	db := dbtest.New(t, &Message{})
	rec := &recorder{}
	svc := NewService(db, rec)
	ctx := context.Background()

	req := sendRequest()
	req.Lang = "en"
	m, err := svc.Send(ctx, req, i18n.FR)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if m.Lang != i18n.EN || m.Email != "john@example.com" {
		t.Fatalf("unexpected message %+v", m)
	}

	admin := &models.User{ID: uuid.New(), Role: models.RoleAdmin}
	if _, err := svc.Reply(ctx, admin, m.ID, "  Yes, we do.  "); err != nil {
		t.Fatalf("Reply: %v", err)
	}

	if len(rec.events) != 1 {
		t.Fatalf("got %d events, want 1", len(rec.events))
	}
	ev := rec.events[0]
	if ev.Kind != notify.ContactReply || ev.Lang != i18n.EN || ev.To != "john@example.com" {
		t.Fatalf("unexpected event %+v", ev)
	}
	if ev.Subject != "Housing" || ev.Reply != "Yes, we do." {
		t.Fatalf("unexpected event content %+v", ev)
	}

	stored, err := svc.Get(ctx, m.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stored.Reply != "Yes, we do." || stored.RepliedAt == nil || stored.RepliedByID == nil || *stored.RepliedByID != admin.ID {
		t.Fatalf("reply not stored: %+v", stored)
	}
}

func TestSendKeepsRequestLanguage(t *testing.T) {
	db := dbtest.New(t, &Message{})
	svc := NewService(db, notify.Nop{})

	m, err := svc.Send(context.Background(), sendRequest(), i18n.FR)
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if m.Lang != i18n.FR {
		t.Fatalf("lang = %s, want fr", m.Lang)
	}
}

func TestReplyAndDeleteUnknownMessage(t *testing.T) {
	db := dbtest.New(t, &Message{})
	rec := &recorder{}
	svc := NewService(db, rec)
	ctx := context.Background()

	if _, err := svc.Reply(ctx, &models.User{ID: uuid.New()}, uuid.New(), "hello"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Reply err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete err = %v, want ErrNotFound", err)
	}
	if len(rec.events) != 0 {
		t.Fatalf("unexpected events %+v", rec.events)
	}
}

func TestSendRequestLimits(t *testing.T) {
	tests := []struct {
		name  string
		edit  func(*SendRequest)
		field string
	}{
		{"full name", func(r *SendRequest) { r.FullName = strings.Repeat("a", 101) }, "fullName"},
		{"subject", func(r *SendRequest) { r.Subject = strings.Repeat("a", 151) }, "subject"},
		{"message", func(r *SendRequest) { r.Message = strings.Repeat("a", 2001) }, "message"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := sendRequest()
			tt.edit(req)
			var fe *apperr.FieldError
			if err := respond.Validate(req); !errors.As(err, &fe) || fe.Fields[tt.field] != "max" {
				t.Fatalf("err = %v, want a max error on %s", err, tt.field)
			}
		})
	}

	req := sendRequest()
	req.Subject = strings.Repeat("a", 150)
	req.Message = strings.Repeat("a", 2000)
	if err := respond.Validate(req); err != nil {
		t.Fatalf("limits should be inclusive: %v", err)
	}

	var fe *apperr.FieldError
	if err := respond.Validate(&ReplyRequest{Reply: strings.Repeat("a", 2001)}); !errors.As(err, &fe) {
		t.Fatalf("reply over 2000 characters accepted: %v", err)
	}
}
