package models

import "time"

// Exercise is one logged activity. Duration is in minutes. The owning
// user's username is resolved through UserID at read time, never stored
// on the entry.
type Exercise struct {
	ID          string    `gorm:"primaryKey"`
	UserID      string    `gorm:"not null;index"`
	Description string    `gorm:"not null"`
	Duration    int       `gorm:"not null"`
	Date        time.Time `gorm:"not null"`
	CreatedAt   time.Time
}
