package storage

import (
	"sync"
	"time"

	"travel-webapp/model"
)

// MemStorage keeps every record collection in process memory. Catalogs are
// seeded once at construction and never mutated afterwards; bookings and
// users are appended on demand and live for the process lifetime.
type MemStorage struct {
	mu sync.RWMutex

	hotels    []model.Hotel
	flights   []model.Flight
	transport []model.Transport
	bookings  []model.Booking
	users     map[string]model.User

	currentHotelId     int
	currentFlightId    int
	currentTransportId int
	currentBookingId   int
}

// New constructs a storage instance populated with the fixture catalogs.
// Callers own the single instance and hand it to the HTTP layer.
func New() *MemStorage {
	s := &MemStorage{
		users:              make(map[string]model.User),
		currentHotelId:     1,
		currentFlightId:    1,
		currentTransportId: 1,
		currentBookingId:   1,
	}
	s.seed()

	return s
}

// Hotels

func (s *MemStorage) GetHotels() []model.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Hotel(nil), s.hotels...)
}

func (s *MemStorage) GetHotel(id int) (model.Hotel, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, hotel := range s.hotels {
		if hotel.Id == id {
			return hotel, true
		}
	}

	return model.Hotel{}, false
}

func (s *MemStorage) GetFeaturedHotels() []model.Hotel {
	s.mu.RLock()
	defer s.mu.RUnlock()

	featured := []model.Hotel{}
	for _, hotel := range s.hotels {
		if hotel.Featured {
			featured = append(featured, hotel)
		}
	}

	return featured
}

func (s *MemStorage) CreateHotel(hotel model.Hotel) model.Hotel {
	s.mu.Lock()
	defer s.mu.Unlock()

	hotel.Id = s.currentHotelId
	s.currentHotelId++
	s.hotels = append(s.hotels, hotel)

	return hotel
}

// Flights

func (s *MemStorage) GetFlights() []model.Flight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Flight(nil), s.flights...)
}

func (s *MemStorage) GetFlight(id int) (model.Flight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, flight := range s.flights {
		if flight.Id == id {
			return flight, true
		}
	}

	return model.Flight{}, false
}

func (s *MemStorage) CreateFlight(flight model.Flight) model.Flight {
	s.mu.Lock()
	defer s.mu.Unlock()

	flight.Id = s.currentFlightId
	s.currentFlightId++
	s.flights = append(s.flights, flight)

	return flight
}

// Transport

func (s *MemStorage) GetTransport() []model.Transport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Transport(nil), s.transport...)
}

func (s *MemStorage) GetTransportById(id int) (model.Transport, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, item := range s.transport {
		if item.Id == id {
			return item, true
		}
	}

	return model.Transport{}, false
}

func (s *MemStorage) CreateTransport(item model.Transport) model.Transport {
	s.mu.Lock()
	defer s.mu.Unlock()

	item.Id = s.currentTransportId
	s.currentTransportId++
	s.transport = append(s.transport, item)

	return item
}

// Bookings

func (s *MemStorage) GetBookings() []model.Booking {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.Booking(nil), s.bookings...)
}

func (s *MemStorage) GetBooking(id int) (model.Booking, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, booking := range s.bookings {
		if booking.Id == id {
			return booking, true
		}
	}

	return model.Booking{}, false
}

// CreateBooking assigns the next sequential id and stamps the creation time.
// The referenced itemId is intentionally not checked against any catalog.
func (s *MemStorage) CreateBooking(booking model.Booking) model.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()

	booking.Id = s.currentBookingId
	s.currentBookingId++
	booking.CreatedAt = time.Now().UTC()
	if booking.Status == "" {
		booking.Status = "pending"
	}
	s.bookings = append(s.bookings, booking)

	return booking
}

// Users

func (s *MemStorage) GetUser(id string) (model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]

	return user, ok
}

// UpsertUser inserts or merges by id, preserving the original CreatedAt of
// an existing record.
func (s *MemStorage) UpsertUser(user model.User) model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := s.users[user.Id]; ok {
		user.CreatedAt = existing.CreatedAt
	} else {
		user.CreatedAt = now
	}
	user.UpdatedAt = now
	s.users[user.Id] = user

	return user
}
