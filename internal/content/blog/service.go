package blog

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrPostNotFound = apperr.NotFound("BLOG_NOT_FOUND", "blog.not_found")
	ErrSlugExists   = apperr.Conflict("SLUG_EXISTS", "blog.slug_exists")
	ErrInvalidSlug  = apperr.Validation("INVALID_SLUG", "page.invalid_slug")
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type PostInput struct {
	Translations i18n.Translations[PostText] `json:"translations"`
	ImageURL     string                      `json:"imageUrl" validate:"omitempty,url,max=500"`
	PublishedAt  *dto.Date                   `json:"publishedAt"`
}

type CreatePostRequest struct {
	Slug string `json:"slug" validate:"required,max=160"`
	PostInput
}

type AdminFilter struct {
	AuthorID *uuid.UUID
	From     *time.Time
	To       *time.Time
	Page     int
	Limit    int
}

type PostPage struct {
	Posts []PostSummary `json:"posts"`
	dto.Page
}

type AdminPostPage struct {
	Posts []AdminPost `json:"posts"`
	dto.Page
}

type Service struct {
	db  *gorm.DB
	now func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{db: db, now: time.Now}
}

func (s *Service) Create(ctx context.Context, author *models.User, req *CreatePostRequest) (*Post, error) {
	slug := strings.ToLower(strings.TrimSpace(req.Slug))
	if !slugPattern.MatchString(slug) {
		return nil, ErrInvalidSlug
	}
	if err := req.Translations.Validate(); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&Post{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}

	post := &Post{
		ID:           uuid.New(),
		Slug:         slug,
		Translations: req.Translations,
		ImageURL:     strings.TrimSpace(req.ImageURL),
		PublishedAt:  s.now().UTC(),
	}
	if author != nil {
		id := author.ID
		post.AuthorID = &id
	}
	if t := req.PublishedAt.Ptr(); t != nil {
		post.PublishedAt = *t
	}

	if err := s.db.WithContext(ctx).Omit("Author").Create(post).Error; err != nil {
		if database.IsUniqueViolation(err) {
			return nil, ErrSlugExists
		}
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

// Published lists posts whose publication date has passed, newest first.
func (s *Service) Published(ctx context.Context, lang i18n.Lang, page, limit int) (*PostPage, error) {
	q := s.db.WithContext(ctx).Model(&Post{}).Where("published_at <= ?", s.now().UTC())

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}
	var posts []Post
	if err := q.Order("published_at DESC").Scopes(database.Paginate(page, limit)).Find(&posts).Error; err != nil {
		return nil, err
	}

	out := &PostPage{
		Posts: make([]PostSummary, 0, len(posts)),
		Page: dto.Page{
			Total:       total,
			TotalPages:  database.TotalPages(total, limit),
			CurrentPage: page,
			Limit:       limit,
		},
	}
	for i := range posts {
		out.Posts = append(out.Posts, summarize(&posts[i], lang))
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, slug string) (*Post, error) {
	var post Post
	if err := s.db.WithContext(ctx).First(&post, "slug = ?", strings.ToLower(slug)).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *Service) Detail(ctx context.Context, slug string, lang i18n.Lang) (*PostDetail, error) {
	post, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	return &PostDetail{
		PostSummary: summarize(post, lang),
		Content:     post.Translations.Get(lang).Content,
	}, nil
}

// AdminList returns every post, drafts included, filtered by author and
// publication date.
func (s *Service) AdminList(ctx context.Context, f AdminFilter) (*AdminPostPage, error) {
	q := s.db.WithContext(ctx).Model(&Post{})
	if f.AuthorID != nil {
		q = q.Where("author_id = ?", *f.AuthorID)
	}
	if f.From != nil {
		q = q.Where("published_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("published_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, err
	}
	var posts []Post
	if err := q.Preload("Author").Order("created_at DESC").Scopes(database.Paginate(f.Page, f.Limit)).Find(&posts).Error; err != nil {
		return nil, err
	}

	out := &AdminPostPage{
		Posts: make([]AdminPost, 0, len(posts)),
		Page: dto.Page{
			Total:       total,
			TotalPages:  database.TotalPages(total, f.Limit),
			CurrentPage: f.Page,
			Limit:       f.Limit,
		},
	}
	for _, p := range posts {
		ap := AdminPost{Post: p}
		if p.Author != nil {
			ap.Author = &AuthorInfo{ID: p.Author.ID, Name: p.Author.FullName(), Email: p.Author.Email}
		}
		out.Posts = append(out.Posts, ap)
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, slug string, req *PostInput) (*Post, error) {
	post, err := s.Get(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := req.Translations.Validate(); err != nil {
		return nil, err
	}

	post.Translations = req.Translations
	if v := strings.TrimSpace(req.ImageURL); v != "" {
		post.ImageURL = v
	}
	if t := req.PublishedAt.Ptr(); t != nil {
		post.PublishedAt = *t
	}
	if err := s.db.WithContext(ctx).Omit("Author").Save(post).Error; err != nil {
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}

func (s *Service) Delete(ctx context.Context, slug string) error {
	res := s.db.WithContext(ctx).Where("slug = ?", strings.ToLower(slug)).Delete(&Post{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}
