// Package contact stores messages from the public contact form and lets
// admins answer them by email.
package contact

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Princeaman007/interships/internal/apperr"
	"github.com/Princeaman007/interships/internal/database"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"github.com/Princeaman007/interships/internal/notify"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrNotFound = apperr.NotFound("CONTACT_NOT_FOUND", "contact.not_found")

type Message struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FullName    string     `gorm:"size:200;not null" json:"fullName"`
	Email       string     `gorm:"size:255;not null" json:"email"`
	Subject     string     `gorm:"size:255;not null" json:"subject"`
	Message     string     `gorm:"type:text;not null" json:"message"`
	Lang        i18n.Lang  `gorm:"size:2;not null" json:"lang"`
	Reply       string     `gorm:"type:text" json:"reply,omitempty"`
	RepliedByID *uuid.UUID `gorm:"type:uuid" json:"repliedBy,omitempty"`
	RepliedAt   *time.Time `json:"repliedAt,omitempty"`
	CreatedAt   time.Time  `gorm:"index" json:"createdAt"`
}

func (Message) TableName() string { return "contact_messages" }

type SendRequest struct {
	FullName string `json:"fullName" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email,max=255"`
	Subject  string `json:"subject" validate:"required,max=150"`
	Message  string `json:"message" validate:"required,max=2000"`
	Lang     string `json:"lang" validate:"omitempty,oneof=fr en"`
}

type ReplyRequest struct {
	Reply string `json:"reply" validate:"required,max=2000"`
}

type Service struct {
	db       *gorm.DB
	notifier notify.Notifier
	now      func() time.Time
}

func NewService(db *gorm.DB, notifier notify.Notifier) *Service {
	return &Service{db: db, notifier: notifier, now: time.Now}
}

// Send stores a message. Without an explicit lang the request language is kept
// so the reply goes out in the same language.
func (s *Service) Send(ctx context.Context, req *SendRequest, lang i18n.Lang) (*Message, error) {
	if req.Lang != "" {
		lang = i18n.Parse(req.Lang)
	}
	m := &Message{
		ID:       uuid.New(),
		FullName: strings.TrimSpace(req.FullName),
		Email:    strings.ToLower(strings.TrimSpace(req.Email)),
		Subject:  strings.TrimSpace(req.Subject),
		Message:  strings.TrimSpace(req.Message),
		Lang:     lang,
	}
	if err := s.db.WithContext(ctx).Create(m).Error; err != nil {
		return nil, fmt.Errorf("failed to store contact message: %w", err)
	}
	return m, nil
}

func (s *Service) All(ctx context.Context) ([]Message, error) {
	var list []Message
	err := s.db.WithContext(ctx).Order("created_at DESC").Find(&list).Error
	return list, err
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Message, error) {
	var m Message
	if err := s.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		if database.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// Reply records the admin's answer and emails it to the sender in the
// message's language.
func (s *Service) Reply(ctx context.Context, admin *models.User, id uuid.UUID, reply string) (*Message, error) {
	m, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	adminID := admin.ID
	m.Reply = strings.TrimSpace(reply)
	m.RepliedByID = &adminID
	m.RepliedAt = &now

	if err := s.db.WithContext(ctx).Model(m).Updates(map[string]interface{}{
		"reply":         m.Reply,
		"replied_by_id": adminID,
		"replied_at":    now,
	}).Error; err != nil {
		return nil, err
	}

	s.notifier.Notify(ctx, notify.Event{
		Kind:       notify.ContactReply,
		To:         m.Email,
		Name:       m.FullName,
		Lang:       m.Lang,
		Subject:    m.Subject,
		Reply:      m.Reply,
		OccurredAt: now,
	})
	return m, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	res := s.db.WithContext(ctx).Delete(&Message{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
