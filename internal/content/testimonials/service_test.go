package testimonials

import (
	"context"
	"errors"
	"testing"

	"github.com/Princeaman007/interships/internal/dbtest"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/google/uuid"
)

func TestOnlyApprovedTestimonialsArePublic(t *testing.T) {
	db := dbtest.New(t, &Testimonial{})
	svc := NewService(db)
	ctx := context.Background()

	author := &models.User{
		ID:        uuid.New(),
		FirstName: "Léa",
		LastName:  "Martin",
		Email:     "lea@example.com",
		Password:  "x",
		Role:      models.RoleStudent,
		IsActive:  true,
		Profile:   models.Profile{Country: "France"},
	}
	if err := db.Create(author).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}

	req := &SubmitRequest{Translations: i18n.Translations[Text]{
		FR: Text{Content: "Super expérience"},
		EN: Text{Content: "Great experience"},
	}}
	first, err := svc.Submit(ctx, author, req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if first.Approved || first.AuthorName != "Léa Martin" || first.Country != "France" {
		t.Fatalf("unexpected testimonial %+v", first)
	}
	second, err := svc.Submit(ctx, author, req)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	list, err := svc.Approved(ctx, "")
	if err != nil || len(list) != 0 {
		t.Fatalf("Approved before review = %d, %v", len(list), err)
	}
	if _, err := svc.GetApproved(ctx, first.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetApproved err = %v, want ErrNotFound", err)
	}

	if err := svc.Approve(ctx, first.ID); err != nil {
		t.Fatalf("Approve: %v", err)
	}
	list, err = svc.Approved(ctx, "france")
	if err != nil {
		t.Fatalf("Approved: %v", err)
	}
	if len(list) != 1 || list[0].ID != first.ID {
		t.Fatalf("approved list = %+v", list)
	}
	if got := list[0].View(i18n.EN).Content; got != "Great experience" {
		t.Fatalf("EN content = %q", got)
	}

	all, err := svc.All(ctx)
	if err != nil || len(all) != 2 {
		t.Fatalf("All = %d, %v", len(all), err)
	}

	if err := svc.Delete(ctx, second.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Approve(ctx, second.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Approve deleted err = %v, want ErrNotFound", err)
	}
}

func TestSubmitRequiresBothLanguages(t *testing.T) {
	db := dbtest.New(t, &Testimonial{})
	svc := NewService(db)

	_, err := svc.Submit(context.Background(), &models.User{ID: uuid.New()}, &SubmitRequest{
		Translations: i18n.Translations[Text]{FR: Text{Content: "Bien"}},
	})
	var mt *i18n.MissingTranslationError
	if !errors.As(err, &mt) {
		t.Fatalf("err = %v, want MissingTranslationError", err)
	}
}
