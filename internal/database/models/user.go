package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a person who can sign in to the admin platform
type User struct {
	BaseModel
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:255" validate:"required,email,max=255"`
	FullName     string     `json:"full_name" gorm:"not null;size:200" validate:"required,max=200"`
	PasswordHash string     `json:"-" gorm:"size:100"`
	GitHubLogin  *string    `json:"github_login,omitempty" gorm:"size:100"`
	IsSuperAdmin bool       `json:"is_super_admin" gorm:"not null;default:false"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`

	Memberships []Membership `json:"memberships,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// Membership links a user to an organization with a role
type Membership struct {
	BaseModel
	OrganizationID uuid.UUID `json:"organization_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_org_user"`
	UserID         uuid.UUID `json:"user_id" gorm:"type:uuid;not null;uniqueIndex:idx_memberships_org_user;index"`
	Role           Role      `json:"role" gorm:"type:varchar(20);not null;default:'member'"`

	Organization *Organization `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	User         *User         `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for Membership
func (Membership) TableName() string {
	return "memberships"
}
