package model

type Transport struct {
	Id          int      `json:"id"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Currency    string   `json:"currency"`
	ImageUrl    string   `json:"imageUrl"`
	Features    []string `json:"features"`
	Capacity    int      `json:"capacity"`
}

// TransportFilters is the sparse filter set honored by the transport catalog.
type TransportFilters struct {
	VehicleType string `json:"vehicleType"`
}
