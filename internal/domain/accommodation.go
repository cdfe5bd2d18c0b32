package domain

type Accommodation struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Size             string  `json:"size"`
	Occupancy        string  `json:"occupancy"`
	PricePerDay      float64 `json:"pricePerDay"`
	ShortDescription string  `json:"shortDescription"`
}

// Accommodations is the fixed cabin catalog. Edits select from this set only;
// the stored record is replaced wholesale with the chosen entry.
var Accommodations = map[string]Accommodation{
	"standard": {
		ID:               "standard",
		Name:             "Standard Cabin",
		Size:             "2 people",
		Occupancy:        "2 adults",
		PricePerDay:      500,
		ShortDescription: "Comfortable standard accommodation",
	},
	"deluxe": {
		ID:               "deluxe",
		Name:             "Deluxe Suite",
		Size:             "2 people",
		Occupancy:        "2 adults",
		PricePerDay:      800,
		ShortDescription: "Spacious deluxe suite with premium amenities",
	},
	"luxury": {
		ID:               "luxury",
		Name:             "Luxury Quarters",
		Size:             "4 people",
		Occupancy:        "4 adults",
		PricePerDay:      1200,
		ShortDescription: "Ultimate luxury experience with premium space",
	},
}

// AccommodationByID looks up a catalog entry by its id (standard, deluxe, luxury).
func AccommodationByID(id string) (Accommodation, bool) {
	a, ok := Accommodations[id]
	return a, ok
}
