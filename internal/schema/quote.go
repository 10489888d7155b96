package schema

// ScrapQuote price of a vehicle by its curb weight
type ScrapQuote struct {
	Weight float64
	Rate   float64
	Price  float64
}
