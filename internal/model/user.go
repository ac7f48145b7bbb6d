package model

import "time"

// User represents an account in the system
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"` // Mandatory and unique, stored as given
	Firstname    *string   `json:"firstname"`
	Lastname     *string   `json:"lastname"`
	PasswordHash string    `gorm:"not null" json:"-"` // bcrypt hash, never serialized
	IsAdmin      bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}
