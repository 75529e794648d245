package storage

import (
	"strings"

	"travel-webapp/model"
)

// containsFold reports whether v contains q, case-insensitively. This is the
// only text-matching primitive the catalogs use: substring containment,
// never exact match, never tokenized.
func containsFold(v, q string) bool {
	return strings.Contains(strings.ToLower(v), strings.ToLower(q))
}

// SearchHotels returns the hotels satisfying all present filters. An empty
// filter set returns the full catalog in insertion order.
func (s *MemStorage) SearchHotels(filters model.HotelFilters) []model.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []model.Hotel{}
	for _, hotel := range s.hotels {
		if filters.Destination != "" &&
			!containsFold(hotel.Location, filters.Destination) &&
			!containsFold(hotel.City, filters.Destination) {
			continue
		}
		results = append(results, hotel)
	}

	return results
}

// SearchFlights returns the flights satisfying all present filters. From and
// To match city names or airport codes; FlightType is an exact match.
func (s *MemStorage) SearchFlights(filters model.FlightFilters) []model.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []model.Flight{}
	for _, flight := range s.flights {
		if filters.From != "" &&
			!containsFold(flight.From, filters.From) &&
			!containsFold(flight.FromCode, filters.From) {
			continue
		}
		if filters.To != "" &&
			!containsFold(flight.To, filters.To) &&
			!containsFold(flight.ToCode, filters.To) {
			continue
		}
		if filters.FlightType != "" && flight.FlightType != filters.FlightType {
			continue
		}
		results = append(results, flight)
	}

	return results
}

// SearchTransport returns the transport options satisfying all present
// filters.
func (s *MemStorage) SearchTransport(filters model.TransportFilters) []model.Transport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	results := []model.Transport{}
	for _, item := range s.transport {
		if filters.VehicleType != "" && !containsFold(item.Type, filters.VehicleType) {
			continue
		}
		results = append(results, item)
	}

	return results
}
