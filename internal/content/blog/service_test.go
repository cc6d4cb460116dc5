package blog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Princeaman007/interships/internal/dbtest"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/google/uuid"
)

func newService(t *testing.T) (*Service, *models.User) {
	t.Helper()
	db := dbtest.New(t, &Post{})
	author := &models.User{
		ID:        uuid.New(),
		FirstName: "Nadia",
		LastName:  "Admin",
		Email:     "nadia@example.com",
		Password:  "x",
		Role:      models.RoleAdmin,
		IsActive:  true,
	}
	if err := db.Create(author).Error; err != nil {
		t.Fatalf("create author: %v", err)
	}
	return NewService(db), author
}

func postRequest(slug string) *CreatePostRequest {
	return &CreatePostRequest{
		Slug: slug,
		PostInput: PostInput{
			Translations: i18n.Translations[PostText]{
				FR: PostText{Title: "Partir au Canada", Summary: "Résumé", Content: "Contenu"},
				EN: PostText{Title: "Moving to Canada", Summary: "Summary", Content: "Body"},
			},
		},
	}
}

func TestCreateRejectsDuplicateSlug(t *testing.T) {
	svc, author := newService(t)
	ctx := context.Background()

	post, err := svc.Create(ctx, author, postRequest("Moving-To-Canada"))
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if post.Slug != "moving-to-canada" {
		t.Fatalf("slug = %q, want lowercased", post.Slug)
	}
	if post.AuthorID == nil || *post.AuthorID != author.ID {
		t.Fatalf("author not recorded: %v", post.AuthorID)
	}

	if _, err := svc.Create(ctx, author, postRequest("moving-to-canada")); !errors.Is(err, ErrSlugExists) {
		t.Fatalf("err = %v, want ErrSlugExists", err)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, author := newService(t)
	ctx := context.Background()

	if _, err := svc.Create(ctx, author, postRequest("not a slug!")); !errors.Is(err, ErrInvalidSlug) {
		t.Fatalf("err = %v, want ErrInvalidSlug", err)
	}

	req := postRequest("half-translated")
	req.Translations.EN.Content = "  "
	_, err := svc.Create(ctx, author, req)
	var mt *i18n.MissingTranslationError
	if !errors.As(err, &mt) || len(mt.Fields) != 1 || mt.Fields[0] != "en.content" {
		t.Fatalf("err = %v, want missing en.content", err)
	}
}

func TestPublishedHidesScheduledPosts(t *testing.T) {
	svc, author := newService(t)
	ctx := context.Background()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	if _, err := svc.Create(ctx, author, postRequest("live")); err != nil {
		t.Fatalf("Create live: %v", err)
	}
	scheduled := postRequest("scheduled")
	scheduled.PublishedAt = &dto.Date{Time: now.AddDate(0, 0, 10)}
	if _, err := svc.Create(ctx, author, scheduled); err != nil {
		t.Fatalf("Create scheduled: %v", err)
	}

	page, err := svc.Published(ctx, i18n.EN, 1, 10)
	if err != nil {
		t.Fatalf("Published: %v", err)
	}
	if page.Total != 1 || page.Posts[0].Slug != "live" || page.Posts[0].Title != "Moving to Canada" {
		t.Fatalf("unexpected page %+v", page)
	}

	all, err := svc.AdminList(ctx, AdminFilter{AuthorID: &author.ID, Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("AdminList: %v", err)
	}
	if all.Total != 2 || all.Posts[0].Author == nil || all.Posts[0].Author.Email != author.Email {
		t.Fatalf("unexpected admin page %+v", all)
	}
}

func TestUpdateAndDelete(t *testing.T) {
	svc, author := newService(t)
	ctx := context.Background()
	if _, err := svc.Create(ctx, author, postRequest("guide")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	in := postRequest("guide").PostInput
	in.Translations.FR.Title = "Guide mis à jour"
	if _, err := svc.Update(ctx, "GUIDE", &in); err != nil {
		t.Fatalf("Update: %v", err)
	}
	detail, err := svc.Detail(ctx, "guide", i18n.FR)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if detail.Title != "Guide mis à jour" || detail.Content != "Contenu" {
		t.Fatalf("unexpected detail %+v", detail)
	}

	if err := svc.Delete(ctx, "guide"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, "guide"); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("second Delete err = %v, want ErrPostNotFound", err)
	}
	if _, err := svc.Update(ctx, "guide", &in); !errors.Is(err, ErrPostNotFound) {
		t.Fatalf("Update err = %v, want ErrPostNotFound", err)
	}
}
