package model

type Hotel struct {
	Id          int      `json:"id"`
	Name        string   `json:"name"`
	Location    string   `json:"location"`
	City        string   `json:"city"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Rating      string   `json:"rating"`
	ImageUrl    string   `json:"imageUrl"`
	Amenities   []string `json:"amenities"`
	Featured    bool     `json:"featured"`
}

// HotelFilters is the sparse filter set honored by the hotel catalog.
// A zero value applies no narrowing.
type HotelFilters struct {
	Destination string `json:"destination"`
}
