package model

// SearchRequest is the body of POST /search. Query is required, everything
// else narrows the result set.
type SearchRequest struct {
	Query    string        `json:"query"`
	Category string        `json:"category"` // hotels, flights, transport or empty for all
	Location string        `json:"location"`
	Filters  *SearchExtras `json:"filters"`
}

type SearchExtras struct {
	PriceRange *PriceRange `json:"priceRange"`
	Capacity   int         `json:"capacity"`
}

type PriceRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// SearchResponse carries the capped hit list plus the untruncated total.
type SearchResponse struct {
	Success  bool          `json:"success"`
	Results  []interface{} `json:"results"`
	Total    int           `json:"total"`
	Query    string        `json:"query"`
	Category string        `json:"category"`
}

// Category-tagged search hits. Embedding keeps the catalog fields flat in
// the JSON output with the category appended.

type HotelHit struct {
	Hotel
	Category string `json:"category"`
}

type FlightHit struct {
	Flight
	Category string `json:"category"`
}

type TransportHit struct {
	Transport
	Category string `json:"category"`
}
