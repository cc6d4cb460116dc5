package testimonials

import (
	"time"

	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/google/uuid"
)

type Text struct {
	Content string `gorm:"type:text" json:"content"`
}

func (t Text) Missing() []string {
	if i18n.Blank(t.Content) {
		return []string{"content"}
	}
	return nil
}

// Testimonial is written by a signed-in user and shown publicly once an
// admin approves it.
type Testimonial struct {
	ID           uuid.UUID               `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID               `gorm:"type:uuid;not null;index" json:"userId"`
	User         models.User             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Translations i18n.Translations[Text] `gorm:"embedded" json:"translations"`
	AuthorName   string                  `gorm:"size:200;not null" json:"authorName"`
	Role         models.Role             `gorm:"size:20;not null" json:"role"`
	Country      string                  `gorm:"size:100;index" json:"country"`
	AvatarURL    string                  `gorm:"size:500" json:"avatarUrl"`
	Approved     bool                    `gorm:"not null;index" json:"approved"`
	CreatedAt    time.Time               `json:"createdAt"`
	UpdatedAt    time.Time               `json:"updatedAt"`
}

// View is a testimonial projected into one language.
type View struct {
	ID         uuid.UUID   `json:"id"`
	AuthorName string      `json:"authorName"`
	Role       models.Role `json:"role"`
	Country    string      `json:"country"`
	AvatarURL  string      `json:"avatarUrl"`
	Content    string      `json:"content"`
	CreatedAt  time.Time   `json:"createdAt"`
}

func (t *Testimonial) View(lang i18n.Lang) View {
	return View{
		ID:         t.ID,
		AuthorName: t.AuthorName,
		Role:       t.Role,
		Country:    t.Country,
		AvatarURL:  t.AvatarURL,
		Content:    t.Translations.Get(lang).Content,
		CreatedAt:  t.CreatedAt,
	}
}
