package pricing

import "scrapquote/internal/schema"

// per short ton
const (
	OntarioRate = 220.0
	DefaultRate = 120.0
)

// Rate returns the per-ton rate of a jurisdiction
func Rate(ontario bool) float64 {
	if ontario {
		return OntarioRate
	}
	return DefaultRate
}

// ComputePrice prices a curb weight, the price is not rounded
func ComputePrice(weight float64, ontario bool) schema.ScrapQuote {
	rate := Rate(ontario)
	return schema.ScrapQuote{
		Weight: weight,
		Rate:   rate,
		Price:  weight * rate,
	}
}
