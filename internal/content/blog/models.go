package blog

import (
	"time"

	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/google/uuid"
)

type PostText struct {
	Title   string `gorm:"size:255" json:"title"`
	Summary string `gorm:"type:text" json:"summary"`
	Content string `gorm:"type:text" json:"content"`
}

func (t PostText) Missing() []string {
	var m []string
	if i18n.Blank(t.Title) {
		m = append(m, "title")
	}
	if i18n.Blank(t.Summary) {
		m = append(m, "summary")
	}
	if i18n.Blank(t.Content) {
		m = append(m, "content")
	}
	return m
}

type Post struct {
	ID           uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Slug         string                      `gorm:"size:160;not null;uniqueIndex" json:"slug"`
	Translations i18n.Translations[PostText] `gorm:"embedded" json:"translations"`
	ImageURL     string                      `gorm:"size:500" json:"imageUrl"`
	AuthorID     *uuid.UUID                  `gorm:"type:uuid;index" json:"authorId"`
	Author       *models.User                `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL" json:"-"`
	PublishedAt  time.Time                   `gorm:"not null;index" json:"publishedAt"`
	CreatedAt    time.Time                   `json:"createdAt"`
	UpdatedAt    time.Time                   `json:"updatedAt"`
}

func (Post) TableName() string { return "blog_posts" }

// PostSummary is a post projected into one language for listings.
type PostSummary struct {
	Slug        string    `json:"slug"`
	ImageURL    string    `json:"imageUrl"`
	PublishedAt time.Time `json:"publishedAt"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
}

type PostDetail struct {
	PostSummary
	Content string `json:"content"`
}

func summarize(p *Post, lang i18n.Lang) PostSummary {
	text := p.Translations.Get(lang)
	return PostSummary{
		Slug:        p.Slug,
		ImageURL:    p.ImageURL,
		PublishedAt: p.PublishedAt,
		Title:       text.Title,
		Summary:     text.Summary,
	}
}

type AuthorInfo struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

// AdminPost is the back-office view with both languages and the author.
type AdminPost struct {
	Post
	Author *AuthorInfo `json:"author,omitempty"`
}
