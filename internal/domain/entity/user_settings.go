package entity

import "github.com/google/uuid"

// UserSettings holds per-user UI preferences
type UserSettings struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID               uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"user_id"`
	DarkMode             bool      `gorm:"not null;default:false" json:"dark_mode"`
	Language             string    `gorm:"type:varchar(10);not null;default:'en'" json:"language"`
	NotificationsEnabled bool      `gorm:"not null;default:true" json:"notifications_enabled"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}
