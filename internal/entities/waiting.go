package entities

// WaitingRequest files a waitlist claim for a slot that is currently taken.
type WaitingRequest struct {
	Date                string `json:"date"`
	StartTime           int    `json:"start_time"`
	EndTime             int    `json:"end_time"`
	SpaceID             int    `json:"space_id"`
	ReservedBy          int64  `json:"reserved_by"`
	ReservationDateTime int64  `json:"reservation_datetime"` // unix millis; queue ordering key
}

type WaitingResponse struct {
	ID        int64  `json:"id"`
	SpaceID   int    `json:"space_id"`
	SpaceName string `json:"space_name"`
	Date      string `json:"date"`
	StartTime int    `json:"start_time"`
	EndTime   int    `json:"end_time"`
	Available bool   `json:"available"`
}
