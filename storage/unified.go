package storage

import (
	"errors"
	"strings"

	"travel-webapp/model"
)

// maxSearchResults caps the hit list returned to clients. The reported
// total is counted before truncation.
const maxSearchResults = 20

var ErrEmptyQuery = errors.New("search query is required")

const (
	categoryHotels    = "hotels"
	categoryFlights   = "flights"
	categoryTransport = "transport"
)

// UnifiedSearch fans a single free-text query out across the catalogs
// selected by req.Category (all three when empty), tags each hit with its
// source category, then applies the optional location, price-range and
// capacity filters before capping the merged list.
func (s *MemStorage) UnifiedSearch(req model.SearchRequest) (model.SearchResponse, error) {
	if strings.TrimSpace(req.Query) == "" {
		return model.SearchResponse{}, ErrEmptyQuery
	}

	query := strings.ToLower(req.Query)
	results := []interface{}{}

	if req.Category == "" || req.Category == categoryHotels {
		for _, hotel := range s.GetHotels() {
			if containsFold(hotel.Name, query) ||
				containsFold(hotel.Location, query) ||
				containsFold(hotel.City, query) ||
				containsFold(hotel.Description, query) {
				results = append(results, model.HotelHit{Hotel: hotel, Category: categoryHotels})
			}
		}
	}

	if req.Category == "" || req.Category == categoryFlights {
		for _, flight := range s.GetFlights() {
			if containsFold(flight.Airline, query) ||
				containsFold(flight.From, query) ||
				containsFold(flight.To, query) ||
				containsFold(flight.FromCode, query) ||
				containsFold(flight.ToCode, query) {
				results = append(results, model.FlightHit{Flight: flight, Category: categoryFlights})
			}
		}
	}

	if req.Category == "" || req.Category == categoryTransport {
		for _, item := range s.GetTransport() {
			if matchesTransportText(item, query) {
				results = append(results, model.TransportHit{Transport: item, Category: categoryTransport})
			}
		}
	}

	if req.Location != "" {
		filtered := results[:0]
		for _, hit := range results {
			if matchesLocation(hit, req.Location) {
				filtered = append(filtered, hit)
			}
		}
		results = filtered
	}

	if req.Filters != nil {
		if req.Filters.PriceRange != nil {
			pr := req.Filters.PriceRange
			filtered := results[:0]
			for _, hit := range results {
				price := hitPrice(hit)
				if price >= pr.Min && price <= pr.Max {
					filtered = append(filtered, hit)
				}
			}
			results = filtered
		}

		if req.Filters.Capacity > 0 {
			filtered := results[:0]
			for _, hit := range results {
				// items without a capacity field never pass
				if capacity, ok := hitCapacity(hit); ok && capacity >= req.Filters.Capacity {
					filtered = append(filtered, hit)
				}
			}
			results = filtered
		}
	}

	category := req.Category
	if category == "" {
		category = "all"
	}

	total := len(results)
	if total > maxSearchResults {
		results = results[:maxSearchResults]
	}

	return model.SearchResponse{
		Success:  true,
		Results:  results,
		Total:    total,
		Query:    req.Query,
		Category: category,
	}, nil
}

func matchesTransportText(item model.Transport, query string) bool {
	if containsFold(item.Name, query) ||
		containsFold(item.Type, query) ||
		containsFold(item.Description, query) {
		return true
	}
	for _, feature := range item.Features {
		if containsFold(feature, query) {
			return true
		}
	}

	return false
}

// matchesLocation keeps hotels whose location or city contains the value and
// flights whose endpoints contain it; transport passes through unfiltered.
func matchesLocation(hit interface{}, location string) bool {
	switch v := hit.(type) {
	case model.HotelHit:
		return containsFold(v.Location, location) || containsFold(v.City, location)
	case model.FlightHit:
		return containsFold(v.From, location) || containsFold(v.To, location)
	default:
		return true
	}
}

// hitPrice parses the leading integer digits of the item's decimal-string
// price; anything unparseable counts as 0.
func hitPrice(hit interface{}) int {
	var price string
	switch v := hit.(type) {
	case model.HotelHit:
		price = v.Price
	case model.FlightHit:
		price = v.Price
	case model.TransportHit:
		price = v.Price
	}

	n := 0
	for i := 0; i < len(price) && price[i] >= '0' && price[i] <= '9'; i++ {
		n = n*10 + int(price[i]-'0')
	}

	return n
}

func hitCapacity(hit interface{}) (int, bool) {
	if v, ok := hit.(model.TransportHit); ok {
		return v.Capacity, true
	}

	return 0, false
}
