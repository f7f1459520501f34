package models

import "time"

type Restaurant struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_name_location"`
	Location  string    `json:"location" gorm:"not null;uniqueIndex:idx_name_location"`
	Table     string    `json:"table" gorm:"column:tables"`
	Cost      float64   `json:"cost"`
	Rating    float64   `json:"rating"`
	Menu      []string  `json:"menu" gorm:"serializer:json"`
	ImageURL  string    `json:"imageUrl"`
	CreatedAt time.Time `json:"created_at"`
}
