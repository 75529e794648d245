package storage

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-webapp/model"
)

func TestUnifiedSearchEmptyQuery(t *testing.T) {
	s := New()

	_, err := s.UnifiedSearch(model.SearchRequest{Query: ""})
	assert.Equal(t, ErrEmptyQuery, err)

	_, err = s.UnifiedSearch(model.SearchRequest{Query: "   "})
	assert.Equal(t, ErrEmptyQuery, err)
}

func TestUnifiedSearchMercedes(t *testing.T) {
	s := New()

	response, err := s.UnifiedSearch(model.SearchRequest{Query: "Mercedes"})
	require.NoError(t, err)

	assert.True(t, response.Success)
	assert.Equal(t, "all", response.Category)
	assert.Equal(t, "Mercedes", response.Query)
	// the three Mercedes-Benz vehicles match on name; no hotel or flight
	// mentions the marque
	require.Equal(t, 3, response.Total)
	for _, hit := range response.Results {
		transportHit, ok := hit.(model.TransportHit)
		require.True(t, ok)
		assert.Equal(t, "transport", transportHit.Category)
	}
}

func TestUnifiedSearchCategoryRestriction(t *testing.T) {
	s := New()

	response, err := s.UnifiedSearch(model.SearchRequest{Query: "Harare", Category: "hotels"})
	require.NoError(t, err)
	assert.Equal(t, "hotels", response.Category)
	for _, hit := range response.Results {
		_, ok := hit.(model.HotelHit)
		assert.True(t, ok)
	}

	// an unknown category scans nothing
	response, err = s.UnifiedSearch(model.SearchRequest{Query: "Harare", Category: "cruises"})
	require.NoError(t, err)
	assert.Zero(t, response.Total)
	assert.Empty(t, response.Results)
}

func TestUnifiedSearchMergeOrder(t *testing.T) {
	s := New()

	// "Harare" hits hotels, flights and nothing in transport; catalog order
	// is hotels first, then flights
	response, err := s.UnifiedSearch(model.SearchRequest{Query: "Harare"})
	require.NoError(t, err)
	require.NotEmpty(t, response.Results)

	seenFlight := false
	for _, hit := range response.Results {
		switch hit.(type) {
		case model.HotelHit:
			assert.False(t, seenFlight, "hotel hit after flight hit")
		case model.FlightHit:
			seenFlight = true
		}
	}
	assert.True(t, seenFlight)
}

func TestUnifiedSearchLocationFilter(t *testing.T) {
	s := New()

	response, err := s.UnifiedSearch(model.SearchRequest{Query: "luxury", Location: "Hwange"})
	require.NoError(t, err)

	// only the Hwange hotel survives among hotels, but transport items pass
	// through the location filter untouched
	for _, hit := range response.Results {
		if hotelHit, ok := hit.(model.HotelHit); ok {
			assert.Equal(t, "Hwange", hotelHit.City)
		}
	}
	hasTransport := false
	for _, hit := range response.Results {
		if _, ok := hit.(model.TransportHit); ok {
			hasTransport = true
		}
	}
	assert.True(t, hasTransport)
}

func TestUnifiedSearchPriceRange(t *testing.T) {
	s := New()

	response, err := s.UnifiedSearch(model.SearchRequest{
		Query: "Harare",
		Filters: &model.SearchExtras{
			PriceRange: &model.PriceRange{Min: 100, Max: 200},
		},
	})
	require.NoError(t, err)
	require.NotZero(t, response.Total)

	for _, hit := range response.Results {
		switch v := hit.(type) {
		case model.HotelHit:
			assert.GreaterOrEqual(t, hitPrice(v), 100)
			assert.LessOrEqual(t, hitPrice(v), 200)
		case model.FlightHit:
			assert.GreaterOrEqual(t, hitPrice(v), 100)
			assert.LessOrEqual(t, hitPrice(v), 200)
		}
	}
}

func TestUnifiedSearchCapacityExcludesItemsWithoutCapacity(t *testing.T) {
	s := New()

	response, err := s.UnifiedSearch(model.SearchRequest{
		Query:   "luxury",
		Filters: &model.SearchExtras{Capacity: 7},
	})
	require.NoError(t, err)
	require.NotZero(t, response.Total)

	// hotels and flights carry no capacity field and are always excluded
	for _, hit := range response.Results {
		transportHit, ok := hit.(model.TransportHit)
		require.True(t, ok)
		assert.GreaterOrEqual(t, transportHit.Capacity, 7)
	}
}

func TestUnifiedSearchCapAndTotal(t *testing.T) {
	s := New()

	for i := 0; i < 25; i++ {
		s.CreateHotel(model.Hotel{
			Name:     fmt.Sprintf("Zambezi Camp %d", i+1),
			Location: "Zambezi Valley, Zimbabwe",
			City:     "Kariba",
			Price:    "90",
			Rating:   "4.0",
		})
	}

	response, err := s.UnifiedSearch(model.SearchRequest{Query: "Zambezi Camp"})
	require.NoError(t, err)

	assert.Equal(t, 25, response.Total)
	assert.Len(t, response.Results, 20)
}
