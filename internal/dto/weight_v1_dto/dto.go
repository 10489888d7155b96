package weightv1dto

// WeightResponse response of get_vehicle_weight
type WeightResponse struct {
	CurbWeight float64 `json:"CurbWeight"`
}

// ScrapPrice price of a vehicle
type ScrapPrice struct {
	ScrapPrice float64 `json:"scrap_price"`
}

// ScrapPriceResponse response of get_vehicle_weight with a jurisdiction flag
type ScrapPriceResponse struct {
	Results ScrapPrice `json:"results"`
}

// ErrorResponse body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
