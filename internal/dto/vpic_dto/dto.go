package vpic_dto

type Spec struct {
	Name  string `json:"Name"`
	Value string `json:"Value"`
}

type Result struct {
	Specs []Spec `json:"Specs"`
}

type ResponseBody struct {
	Count   int      `json:"Count"`
	Message string   `json:"Message,omitempty"`
	Results []Result `json:"Results"`
}
