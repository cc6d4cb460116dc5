package services

import (
	"context"
	"testing"

	"github.com/Princeaman007/interships/internal/content/blog"
	"github.com/Princeaman007/interships/internal/content/contact"
	"github.com/Princeaman007/interships/internal/content/faq"
	"github.com/Princeaman007/interships/internal/content/testimonials"
	"github.com/Princeaman007/interships/internal/dbtest"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
)

func TestDashboardOverview(t *testing.T) {
	db := dbtest.New(t, &testimonials.Testimonial{}, &contact.Message{}, &blog.Post{}, &faq.Faq{})
	ctx := context.Background()

	createUser(t, db, "admin@example.com", models.RoleAdmin)
	internship := createInternship(t, db, nil)
	apps := NewApplicationService(db, &recordingNotifier{})
	for _, email := range []string{"awa@example.com", "moussa@example.com"} {
		u := createUser(t, db, email, models.RoleStudent)
		if err := db.Model(u).Update("profile_country", "Senegal").Error; err != nil {
			t.Fatalf("set country: %v", err)
		}
		if _, err := apps.Apply(ctx, u, internship.ID, "", i18n.FR); err != nil {
			t.Fatalf("Apply: %v", err)
		}
	}

	svc := NewDashboardService(db)
	out, err := svc.Overview(ctx, 0, i18n.EN)
	if err != nil {
		t.Fatalf("Overview: %v", err)
	}
	c := out.Counts
	if c.Users != 3 || c.Students != 2 || c.Admins != 1 || c.Internships != 1 || c.Applications != 2 {
		t.Fatalf("unexpected counts %+v", c)
	}
	if out.Recent != nil {
		t.Fatal("recent activity returned without a range")
	}
	if len(out.UsersByCountry) != 1 || out.UsersByCountry[0].Country != "Senegal" || out.UsersByCountry[0].Count != 2 {
		t.Fatalf("usersByCountry = %+v", out.UsersByCountry)
	}
	if len(out.ApplicationsByCountry) != 1 || out.ApplicationsByCountry[0].Count != 2 {
		t.Fatalf("applicationsByCountry = %+v", out.ApplicationsByCountry)
	}

	out, err = svc.Overview(ctx, 7, i18n.EN)
	if err != nil {
		t.Fatalf("Overview with range: %v", err)
	}
	if out.Recent == nil || len(out.Recent.Applications) != 2 {
		t.Fatalf("recent = %+v", out.Recent)
	}
	if got := out.Recent.Applications[0].Internship.Title; got != "Developer internship" {
		t.Fatalf("recent internship title = %q", got)
	}
	if out.Recent.Applications[0].Applicant == nil {
		t.Fatal("recent applications should include the applicant")
	}
}
