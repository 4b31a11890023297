package entities

// ReservationRequest is the booking payload. StartTime and EndTime are packed
// HHMM integers (930 = 09:30), Date is "2006-01-02". A WaitingID > 0 means the
// request converts an existing waitlist claim.
type ReservationRequest struct {
	Title               string `json:"title"`
	Date                string `json:"date"`
	StartTime           int    `json:"start_time"`
	EndTime             int    `json:"end_time"`
	SpaceID             int    `json:"space_id"`
	ReservedBy          int64  `json:"reserved_by"`
	ResponsiblePerson   int64  `json:"responsible_person"`
	WaitingID           int64  `json:"waiting_id"`
	ReservationDateTime int64  `json:"reservation_datetime"` // unix millis of the request instant
}

type ReservationResponse struct {
	ID                  int64  `json:"id"`
	SpaceID             int    `json:"space_id"`
	SpaceName           string `json:"space_name"`
	Title               string `json:"title"`
	Date                string `json:"date"`
	StartTime           int    `json:"start_time"`
	EndTime             int    `json:"end_time"`
	ReservedBy          string `json:"reserved_by"`
	ResponsiblePerson   string `json:"responsible_person"`
	ResponsiblePersonID int64  `json:"responsible_person_id"`
}

// DeleteReservationRequest cancels by slot; the email identifies who is asking.
type DeleteReservationRequest struct {
	Slot
	Email string `json:"email"`
}
