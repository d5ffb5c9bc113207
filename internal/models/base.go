package models

import "time"

// Base contains common columns for all tables.
//
// There is deliberately no gorm.DeletedAt here: deletes in Fintrack are
// hard and immediate, with no soft-delete or undo.
type Base struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
