package schema

// VehicleQuery lookup parameters of a vehicle
type VehicleQuery struct {
	Year          int
	Make          string
	Model         string
	SpecificModel string
}

// Spec single name/value pair of a candidate
type Spec struct {
	Name  string
	Value string
}

// CandidateRecord one trim of a vehicle returned by the lookup
type CandidateRecord struct {
	Specs []Spec
}

// SpecResult model of a specifications lookup
type SpecResult struct {
	Count   int
	Results []CandidateRecord
}
