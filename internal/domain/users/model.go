package users

import (
	"time"
)

type UserProfile struct {
	ID           uint    `gorm:"primaryKey"`
	Username     string  `gorm:"not null;uniqueIndex:idx_user_profiles_username"`
	PasswordHash *string `gorm:""`
	AuthProvider string  `gorm:"type:varchar(20);not null;default:'local'"`
	GoogleSub    *string `gorm:"uniqueIndex:idx_user_profiles_google_sub"`

	// Stored role label; nothing in the API gates on it.
	UserRole string `gorm:"type:varchar(40);not null;default:'user'"`

	FirstName string
	LastName  string
	Email     string
	Phone     string

	CreatedAt time.Time
	UpdatedAt time.Time
}
