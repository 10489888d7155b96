package weightv1dto

// SaveRequest dto of save_data api, every field is optional and kept as sent
type SaveRequest struct {
	Year          any `json:"year"`
	Make          any `json:"make"`
	Model         any `json:"model"`
	SpecificModel any `json:"specific_model"`

	Province     any `json:"province"`
	City         any `json:"city"`
	StreetNumber any `json:"street_number"`
	StreetName   any `json:"street_name"`
	UnitInfo     any `json:"unit_info"`
	PostalCode   any `json:"postal_code"`

	PickupDate  any `json:"pickup_date"`
	PickupTime  any `json:"pickup_time"`
	PickupName  any `json:"pickup_name"`
	PhoneNumber any `json:"phone_number"`

	IsRunning     any `json:"is_running"`
	AcceptedOffer any `json:"accepted_offer"`
	ScrapValue    any `json:"scrap_value"`
	Notes         any `json:"notes"`
}

// SaveResponse response of save_data api
type SaveResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}
