package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel-webapp/model"
)

func TestSeededCatalogs(t *testing.T) {
	s := New()

	hotels := s.GetHotels()
	require.Len(t, hotels, 8)

	featuredCount := 0
	for _, hotel := range hotels {
		if hotel.Featured {
			featuredCount++
		}
	}
	assert.Equal(t, 4, featuredCount)
	assert.Len(t, s.GetFeaturedHotels(), 4)

	flights := s.GetFlights()
	require.Len(t, flights, 6)

	domestic := 0
	for _, flight := range flights {
		if flight.FlightType == "domestic" {
			domestic++
		}
	}
	assert.Equal(t, 2, domestic)

	assert.Len(t, s.GetTransport(), 6)
	assert.Empty(t, s.GetBookings())
}

func TestCatalogIdsAreSequential(t *testing.T) {
	s := New()

	for i, hotel := range s.GetHotels() {
		assert.Equal(t, i+1, hotel.Id)
	}
	for i, flight := range s.GetFlights() {
		assert.Equal(t, i+1, flight.Id)
	}
	for i, item := range s.GetTransport() {
		assert.Equal(t, i+1, item.Id)
	}
}

func TestCreateGetRoundTrip(t *testing.T) {
	s := New()

	created := s.CreateHotel(model.Hotel{
		Name:      "Kariba Lakeside Hotel",
		Location:  "Kariba, Zimbabwe",
		City:      "Kariba",
		Price:     "130",
		Rating:    "4.0",
		Amenities: []string{"Free WiFi"},
	})
	assert.Equal(t, 9, created.Id)

	fetched, ok := s.GetHotel(created.Id)
	require.True(t, ok)
	assert.Equal(t, created, fetched)

	flight := s.CreateFlight(model.Flight{Airline: "Fastjet", From: "Harare", To: "Victoria Falls", FlightType: "domestic"})
	fetchedFlight, ok := s.GetFlight(flight.Id)
	require.True(t, ok)
	assert.Equal(t, flight, fetchedFlight)

	item := s.CreateTransport(model.Transport{Name: "Toyota Coaster", Type: "minibus", Capacity: 24})
	fetchedItem, ok := s.GetTransportById(item.Id)
	require.True(t, ok)
	assert.Equal(t, item, fetchedItem)
}

func TestGetByIdMiss(t *testing.T) {
	s := New()

	_, ok := s.GetHotel(999999)
	assert.False(t, ok)
	_, ok = s.GetFlight(999999)
	assert.False(t, ok)
	_, ok = s.GetTransportById(0)
	assert.False(t, ok)
	_, ok = s.GetBooking(1)
	assert.False(t, ok)
}

func TestCreateBooking(t *testing.T) {
	s := New()

	first := s.CreateBooking(model.Booking{
		Type:          model.BookingTypeHotel,
		ItemId:        1,
		CustomerName:  "Jane Moyo",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+263771234567",
		TotalPrice:    "360",
	})
	assert.Equal(t, 1, first.Id)
	assert.Equal(t, "pending", first.Status)
	assert.False(t, first.CreatedAt.IsZero())

	// identical payload creates a second, distinct booking
	second := s.CreateBooking(model.Booking{
		Type:          model.BookingTypeHotel,
		ItemId:        1,
		CustomerName:  "Jane Moyo",
		CustomerEmail: "jane@example.com",
		CustomerPhone: "+263771234567",
		TotalPrice:    "360",
	})
	assert.Equal(t, 2, second.Id)

	// dangling item references are accepted
	dangling := s.CreateBooking(model.Booking{
		Type:          model.BookingTypeFlight,
		ItemId:        424242,
		CustomerName:  "Tau Ncube",
		CustomerEmail: "tau@example.com",
		CustomerPhone: "+263772000000",
		TotalPrice:    "89",
		Status:        "confirmed",
	})
	assert.Equal(t, 3, dangling.Id)
	assert.Equal(t, "confirmed", dangling.Status)

	assert.Len(t, s.GetBookings(), 3)
}

func TestUpsertUserPreservesCreatedAt(t *testing.T) {
	s := New()

	created := s.UpsertUser(model.User{Id: "1", Email: "user@example.com", FirstName: "John"})
	require.False(t, created.CreatedAt.IsZero())

	updated := s.UpsertUser(model.User{Id: "1", Email: "user@example.com", FirstName: "Johnny"})
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "Johnny", updated.FirstName)

	fetched, ok := s.GetUser("1")
	require.True(t, ok)
	assert.Equal(t, updated, fetched)

	_, ok = s.GetUser("nobody")
	assert.False(t, ok)
}
