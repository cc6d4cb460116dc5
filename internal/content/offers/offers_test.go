package offers

import (
	"context"
	"errors"
	"testing"

	"github.com/Princeaman007/interships/internal/dbtest"
	"github.com/google/uuid"
)

func TestSubmitGetDelete(t *testing.T) {
	db := dbtest.New(t, &Submission{})
	svc := NewService(db)
	ctx := context.Background()

	sub, err := svc.Submit(ctx, &SubmitRequest{
		CompanyName: "Globex",
		ContactName: "Hank",
		Email:       " HANK@globex.com",
		Position:    " Data analyst ",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if sub.Email != "hank@globex.com" || sub.Position != "Data analyst" || sub.SubmittedAt.IsZero() {
		t.Fatalf("unexpected submission %+v", sub)
	}

	got, err := svc.Get(ctx, sub.ID)
	if err != nil || got.CompanyName != "Globex" {
		t.Fatalf("Get = %+v, %v", got, err)
	}
	all, err := svc.All(ctx)
	if err != nil || len(all) != 1 {
		t.Fatalf("All = %d, %v", len(all), err)
	}

	if err := svc.Delete(ctx, sub.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, sub.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(ctx, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete err = %v, want ErrNotFound", err)
	}
}
