package entities

import "time"

// Slot identifies a bookable interval of a space. Two reservations conflict
// only when their slots are structurally equal; overlap is never considered.
type Slot struct {
	SpaceID       int       `json:"space_id"`
	StartDateTime time.Time `json:"start_datetime"`
	EndDateTime   time.Time `json:"end_datetime"`
}
