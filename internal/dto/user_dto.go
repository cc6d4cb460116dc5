package dto

import (
	"github.com/Princeaman007/interships/internal/models"
)

type UpdateProfileRequest struct {
	FirstName string        `json:"firstName" validate:"omitempty,max=100"`
	LastName  string        `json:"lastName" validate:"omitempty,max=100"`
	Gender    models.Gender `json:"gender" validate:"omitempty,oneof=male female other"`
	Email     string        `json:"email" validate:"omitempty,email,max=255"`
	Country   *string       `json:"country" validate:"omitempty,max=100"`
	Phone     *string       `json:"phone" validate:"omitempty,max=50"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required"`
	NewPassword     string `json:"newPassword" validate:"required,min=6,max=72"`
}

type UpdateRoleRequest struct {
	Role models.Role `json:"role" validate:"required"`
}

type UpdateActiveRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type UserFilter struct {
	Role   models.Role
	Search string
	Page   int
	Limit  int
}

type UserList struct {
	Users         []models.User         `json:"users"`
	RoleBreakdown map[models.Role]int64 `json:"roleBreakdown,omitempty"`
	Page
}

type MonthlyCount struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type UserStats struct {
	TotalUsers       int64                 `json:"totalUsers"`
	ActiveUsers      int64                 `json:"activeUsers"`
	VerifiedUsers    int64                 `json:"verifiedUsers"`
	UsersWithAvatar  int64                 `json:"usersWithAvatar"`
	AvatarPercentage float64               `json:"avatarPercentage"`
	ByRole           map[models.Role]int64 `json:"byRole"`
	MonthlyGrowth    []MonthlyCount        `json:"monthlyGrowth"`
}

type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

type DashboardCounts struct {
	Users           int64 `json:"users"`
	Students        int64 `json:"students"`
	Admins          int64 `json:"admins"`
	Internships     int64 `json:"internships"`
	Applications    int64 `json:"applications"`
	Testimonials    int64 `json:"testimonials"`
	ContactMessages int64 `json:"contactMessages"`
	BlogPosts       int64 `json:"blogPosts"`
	Faqs            int64 `json:"faqs"`
}

type RecentActivity struct {
	Applications    []ApplicationView `json:"applications"`
	ContactMessages interface{}       `json:"contactMessages"`
	BlogPosts       interface{}       `json:"blogPosts"`
}

type Dashboard struct {
	Counts                DashboardCounts `json:"counts"`
	UsersByCountry        []CountryCount  `json:"usersByCountry"`
	ApplicationsByCountry []CountryCount  `json:"applicationsByCountry"`
	Recent                *RecentActivity `json:"recent,omitempty"`
}
