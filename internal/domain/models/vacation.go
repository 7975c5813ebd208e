package models

import "fmt"

// Vacation is a user's named booking of one Trip.
type Vacation struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
	TripID int64  `json:"trip_id"`
	Trip   Trip   `json:"trip"`
}

func (v Vacation) String() string {
	return fmt.Sprintf("[%d] %s: Trip from %s to %s", v.UserID, v.Name, v.Trip.Origin, v.Trip.Destination)
}
