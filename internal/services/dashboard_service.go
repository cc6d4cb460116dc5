package services

import (
	"context"
	"time"

	"github.com/Princeaman007/interships/internal/content/blog"
	"github.com/Princeaman007/interships/internal/content/contact"
	"github.com/Princeaman007/interships/internal/content/faq"
	"github.com/Princeaman007/interships/internal/content/testimonials"
	"github.com/Princeaman007/interships/internal/dto"
	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/Princeaman007/interships/internal/models"
	"gorm.io/gorm"
)

const recentLimit = 5

type DashboardService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db, now: time.Now}
}

// Overview gathers the back-office counters. When days > 0 the latest
// applications, contact messages and blog posts of that period are included.
func (s *DashboardService) Overview(ctx context.Context, days int, lang i18n.Lang) (*dto.Dashboard, error) {
	db := s.db.WithContext(ctx)
	out := &dto.Dashboard{}
	c := &out.Counts

	counts := []struct {
		dst   *int64
		model interface{}
		where []interface{}
	}{
		{&c.Users, &models.User{}, nil},
		{&c.Students, &models.User{}, []interface{}{"role = ?", models.RoleStudent}},
		{&c.Admins, &models.User{}, []interface{}{"role IN ?", []models.Role{models.RoleAdmin, models.RoleSuperAdmin}}},
		{&c.Internships, &models.Internship{}, nil},
		{&c.Applications, &models.Application{}, nil},
		{&c.Testimonials, &testimonials.Testimonial{}, []interface{}{"approved = ?", true}},
		{&c.ContactMessages, &contact.Message{}, nil},
		{&c.BlogPosts, &blog.Post{}, nil},
		{&c.Faqs, &faq.Faq{}, nil},
	}
	for _, q := range counts {
		tx := db.Model(q.model)
		if len(q.where) > 0 {
			tx = tx.Where(q.where[0], q.where[1:]...)
		}
		if err := tx.Count(q.dst).Error; err != nil {
			return nil, err
		}
	}

	if err := db.Model(&models.User{}).
		Select("profile_country AS country, COUNT(*) AS count").
		Where("profile_country <> ''").
		Group("profile_country").Order("count DESC").
		Scan(&out.UsersByCountry).Error; err != nil {
		return nil, err
	}
	if err := db.Model(&models.Application{}).
		Select("users.profile_country AS country, COUNT(*) AS count").
		Joins("JOIN users ON users.id = applications.applicant_id").
		Where("users.profile_country <> ''").
		Group("users.profile_country").Order("count DESC").
		Scan(&out.ApplicationsByCountry).Error; err != nil {
		return nil, err
	}

	if days <= 0 {
		return out, nil
	}
	since := s.now().UTC().AddDate(0, 0, -days)
	recent := &dto.RecentActivity{}

	var apps []models.Application
	if err := db.Preload("Internship").Preload("Applicant").
		Where("created_at >= ?", since).
		Order("created_at DESC").Limit(recentLimit).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	recent.Applications = views(apps, lang, true)

	var messages []contact.Message
	if err := db.Where("created_at >= ?", since).
		Order("created_at DESC").Limit(recentLimit).
		Find(&messages).Error; err != nil {
		return nil, err
	}
	recent.ContactMessages = messages

	var posts []blog.Post
	if err := db.Where("created_at >= ?", since).
		Order("created_at DESC").Limit(recentLimit).
		Find(&posts).Error; err != nil {
		return nil, err
	}
	recent.BlogPosts = posts

	out.Recent = recent
	return out, nil
}
