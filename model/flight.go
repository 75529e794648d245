package model

type Flight struct {
	Id                  int     `json:"id"`
	Airline             string  `json:"airline"`
	From                string  `json:"from"`
	To                  string  `json:"to"`
	FromCode            string  `json:"fromCode"`
	ToCode              string  `json:"toCode"`
	Price               string  `json:"price"`
	Duration            string  `json:"duration"`
	Frequency           string  `json:"frequency"`
	DepartureTime       string  `json:"departureTime"`
	ArrivalTime         string  `json:"arrivalTime"`
	FlightType          string  `json:"flightType"` // "domestic" or "international"
	ReturnPrice         *string `json:"returnPrice"`
	ReturnDuration      *string `json:"returnDuration"`
	ReturnDepartureTime *string `json:"returnDepartureTime"`
	ReturnArrivalTime   *string `json:"returnArrivalTime"`
	Country             string  `json:"country"`
	Timezone            string  `json:"timezone"`
}

// FlightFilters is the sparse filter set honored by the flight catalog.
// From and To match against city names and airport codes, FlightType is an
// exact match when set.
type FlightFilters struct {
	From       string `json:"from"`
	To         string `json:"to"`
	FlightType string `json:"flightType"`
}
