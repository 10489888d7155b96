package schema

import "time"

// PickupDocument pickup request as it is stored in call_records
type PickupDocument struct {
	ID            string    `json:"id"`
	Specs         []any     `json:"specs"`
	Location      []any     `json:"location"`
	PickupDetails []any     `json:"pickup_details"`
	IsRunning     any       `json:"is_running"`
	AcceptedOffer any       `json:"accepted_offer"`
	ScrapValue    any       `json:"scrap_value"`
	Notes         any       `json:"notes"`
	CreatedAt     time.Time `json:"created_at"`
}
