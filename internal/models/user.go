package models

import (
	"time"

	"github.com/google/uuid"
)

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderOther:
		return true
	}
	return false
}

// Profile holds the optional personal details a student fills in.
type Profile struct {
	Country             string `gorm:"size:100;index" json:"country"`
	Phone               string `gorm:"size:50" json:"phone"`
	AvatarURL           string `gorm:"size:500" json:"avatarUrl"`
	CVURL               string `gorm:"size:500" json:"cvUrl"`
	MotivationLetterURL string `gorm:"size:500" json:"motivationLetterUrl"`
}

type User struct {
	ID                         uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName                  string     `gorm:"size:100;not null" json:"firstName"`
	LastName                   string     `gorm:"size:100;not null" json:"lastName"`
	Gender                     Gender     `gorm:"size:10" json:"gender"`
	Email                      string     `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Password                   string     `gorm:"not null" json:"-"`
	Role                       Role       `gorm:"size:20;not null;default:'student';index" json:"role"`
	Profile                    Profile    `gorm:"embedded;embeddedPrefix:profile_" json:"profile"`
	IsActive                   bool       `gorm:"not null" json:"isActive"`
	IsEmailVerified            bool       `gorm:"not null" json:"isEmailVerified"`
	EmailVerificationTokenHash *string    `gorm:"size:64;index" json:"-"`
	EmailVerificationExpires   *time.Time `json:"-"`
	LastLoginAt                *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt                  time.Time  `json:"createdAt"`
	UpdatedAt                  time.Time  `json:"updatedAt"`
}

func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
