package models

import "time"

type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Username  string    `json:"username" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"` // stored verbatim; see DESIGN.md on the hashing defect
	Admin     int       `json:"admin" gorm:"default:0"`
	CreatedAt time.Time `json:"created_at"`
}
