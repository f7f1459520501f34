package models

import "time"

// RestaurantSnapshot is the denormalized restaurant info copied into a
// booking at confirmation time. Bookings deliberately do not reference
// Restaurant rows by id.
type RestaurantSnapshot struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Cost     string `json:"cost"`
	Rating   string `json:"rating"`
}

type Booking struct {
	ID          uint               `json:"id" gorm:"primaryKey"`
	Name        string             `json:"name"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	People      int                `json:"people"`
	Contact     string             `json:"contact"`
	TableNumber string             `json:"tableNumber"`
	Restaurant  RestaurantSnapshot `json:"restaurant" gorm:"embedded;embeddedPrefix:restaurant_"`
	CreatedAt   time.Time          `json:"created_at"`
}
