package models

import "gorm.io/gorm"

// Preferences holds a user's delivery preferences. The dispatcher only
// consults InApp; Email is stored for future delivery channels.
type Preferences struct {
	InApp bool `json:"inApp" gorm:"column:pref_in_app"`
	Email bool `json:"email" gorm:"column:pref_email"`
}

// User represents a notification recipient (PostgreSQL)
type User struct {
	gorm.Model  `json:"-"`
	UserID      string      `json:"userId" gorm:"uniqueIndex;size:64"` // Stable external identifier, never reassigned
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Preferences Preferences `json:"preferences" gorm:"embedded"`
}
