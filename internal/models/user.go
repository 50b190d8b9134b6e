package models

import "time"

// User owns exercise entries. Usernames are unique; users are never
// mutated or deleted once created.
type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"uniqueIndex;not null" json:"username"`
	CreatedAt time.Time `gorm:"not null" json:"-"`
}
