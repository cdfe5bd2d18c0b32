package domain

// Destination is a fixed-catalog travel target. TravelDuration is free text
// such as "3 days" or "5-6 years"; see the duration package for how it is
// turned into a day count.
type Destination struct {
	Name           string  `json:"name" yaml:"name"`
	Price          float64 `json:"price" yaml:"price"`
	TravelDuration string  `json:"travelDuration" yaml:"travel_duration"`
	Distance       string  `json:"distance,omitempty" yaml:"distance"`
	Gravity        string  `json:"gravity,omitempty" yaml:"gravity"`
	Temperature    string  `json:"temperature,omitempty" yaml:"temperature"`
}
