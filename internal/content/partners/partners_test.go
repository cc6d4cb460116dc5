package partners

import (
	"context"
	"errors"
	"testing"

	"github.com/Princeaman007/interships/internal/content"
	"github.com/Princeaman007/interships/internal/dbtest"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/google/uuid"
)

func contentInput(frTitle, enTitle string) *ContentInput {
	return &ContentInput{Translations: content.PageTexts{
		FR: content.PageText{Title: frTitle, Content: "Rejoignez notre réseau"},
		EN: content.PageText{Title: enTitle, Content: "Join our network"},
	}}
}

func TestSaveContentUpserts(t *testing.T) {
	db := dbtest.New(t, &Request{}, &PageContent{})
	svc := NewService(db)
	ctx := context.Background()

	if _, err := svc.Content(ctx, i18n.FR); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Content before save err = %v, want ErrNotFound", err)
	}

	if _, err := svc.SaveContent(ctx, contentInput("Devenir partenaire", "Become a partner")); err != nil {
		t.Fatalf("SaveContent: %v", err)
	}
	if _, err := svc.SaveContent(ctx, contentInput("Nos partenaires", "Our partners")); err != nil {
		t.Fatalf("second SaveContent: %v", err)
	}

	var rows int64
	if err := db.Model(&PageContent{}).Count(&rows).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if rows != 1 {
		t.Fatalf("partner page rows = %d, want 1", rows)
	}
	text, err := svc.Content(ctx, i18n.EN)
	if err != nil {
		t.Fatalf("Content: %v", err)
	}
	if text.Title != "Our partners" {
		t.Fatalf("title = %q, want the latest save", text.Title)
	}

	if _, err := svc.SaveContent(ctx, &ContentInput{}); err == nil {
		t.Fatal("SaveContent accepted empty translations")
	}
}

func TestPartnerRequests(t *testing.T) {
	db := dbtest.New(t, &Request{}, &PageContent{})
	svc := NewService(db)
	ctx := context.Background()

	r, err := svc.Submit(ctx, &RequestInput{
		CompanyName: " Acme ",
		ContactName: "Jane",
		Email:       "Jane@Acme.io",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if r.CompanyName != "Acme" || r.Email != "jane@acme.io" {
		t.Fatalf("input not normalized: %+v", r)
	}

	list, err := svc.Requests(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("Requests = %d, %v", len(list), err)
	}
	if err := svc.DeleteRequest(ctx, r.ID); err != nil {
		t.Fatalf("DeleteRequest: %v", err)
	}
	if err := svc.DeleteRequest(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("DeleteRequest err = %v, want ErrNotFound", err)
	}
}
