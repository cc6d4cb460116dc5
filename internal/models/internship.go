package models

import (
	"time"

	"github.com/Princeaman007/interships/internal/i18n"
	"github.com/google/uuid"
)

type InternshipType string

const (
	InternshipRemote InternshipType = "remote"
	InternshipOnSite InternshipType = "on-site"
	InternshipHybrid InternshipType = "hybrid"
)

func (t InternshipType) Valid() bool {
	switch t {
	case InternshipRemote, InternshipOnSite, InternshipHybrid:
		return true
	}
	return false
}

// InternshipText is the localized part of an internship.
type InternshipText struct {
	Title       string `gorm:"size:255" json:"title"`
	Description string `gorm:"type:text" json:"description"`
	Location    string `gorm:"size:255" json:"location"`
}

func (t InternshipText) Missing() []string {
	var m []string
	if i18n.Blank(t.Title) {
		m = append(m, "title")
	}
	if i18n.Blank(t.Description) {
		m = append(m, "description")
	}
	return m
}

type Internship struct {
	ID           uuid.UUID                         `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedByID  *uuid.UUID                        `gorm:"type:uuid;index" json:"createdBy,omitempty"`
	Translations i18n.Translations[InternshipText] `gorm:"embedded" json:"translations"`
	Field        string                            `gorm:"size:100;not null;index" json:"field"`
	Country      string                            `gorm:"size:100;not null;index" json:"country"`
	Type         InternshipType                    `gorm:"size:20;not null" json:"type"`
	Duration     string                            `gorm:"size:100" json:"duration"`
	Salary       *float64                          `json:"salary,omitempty"`
	ImageURL     string                            `gorm:"size:500" json:"imageUrl"`
	IsActive     bool                              `gorm:"not null;index" json:"isActive"`
	StartDate    *time.Time                        `json:"startDate,omitempty"`
	EndDate      *time.Time                        `json:"endDate,omitempty"`
	CreatedAt    time.Time                         `json:"createdAt"`
	UpdatedAt    time.Time                         `json:"updatedAt"`
}
