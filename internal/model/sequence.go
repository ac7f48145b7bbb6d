package model

import "time"

// Sequence is a stored DNA sequence record. Rows are append-only: the
// derived fields (Length, GCContent, ReverseComplement) are computed once at
// insert time from the raw sequence and never mutated afterwards.
type Sequence struct {
	ID                uint      `gorm:"primaryKey" json:"id"`
	UserID            uint      `gorm:"not null;index" json:"user_id"`
	Sequence          string    `gorm:"not null" json:"sequence"`
	Description       *string   `json:"description"`
	Length            int       `gorm:"not null" json:"length"`
	GCContent         float64   `gorm:"column:gc_content;not null" json:"gc_content"` // percentage, 2 decimal places
	ReverseComplement string    `gorm:"not null" json:"reverse_complement"`
	CreatedAt         time.Time `json:"created_at"`
}

// SequenceWithOwner is the admin listing read model: a sequence row joined
// with the owner's display fields.
type SequenceWithOwner struct {
	ID                uint      `json:"id"`
	UserID            uint      `json:"user_id"`
	Sequence          string    `json:"sequence"`
	Description       *string   `json:"description"`
	Length            int       `json:"length"`
	GCContent         float64   `gorm:"column:gc_content" json:"gc_content"`
	ReverseComplement string    `json:"reverse_complement"`
	CreatedAt         time.Time `json:"created_at"`
	Email             string    `json:"email"`
	Firstname         *string   `json:"firstname"`
	Lastname          *string   `json:"lastname"`
}
