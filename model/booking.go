package model

import (
	"net/mail"
	"time"
)

const (
	BookingTypeHotel     = "hotel"
	BookingTypeFlight    = "flight"
	BookingTypeTransport = "transport"
)

type Booking struct {
	Id              int        `json:"id"`
	Type            string     `json:"type"` // hotel, flight or transport
	ItemId          int        `json:"itemId"`
	CustomerName    string     `json:"customerName"`
	CustomerEmail   string     `json:"customerEmail"`
	CustomerPhone   string     `json:"customerPhone"`
	CheckIn         *time.Time `json:"checkIn"`
	CheckOut        *time.Time `json:"checkOut"`
	Guests          *int       `json:"guests"`
	Passengers      *int       `json:"passengers"`
	PickupLocation  *string    `json:"pickupLocation"`
	DropoffLocation *string    `json:"dropoffLocation"`
	TotalPrice      string     `json:"totalPrice"`
	Status          string     `json:"status"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// FieldError reports a single validation failure on a booking payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the structural requirements of a booking payload and
// returns one error entry per offending field. Note that ItemId is not
// checked against the referenced catalog, a booking may point at nothing.
func (b *Booking) Validate() []FieldError {
	var errs []FieldError

	switch b.Type {
	case BookingTypeHotel, BookingTypeFlight, BookingTypeTransport:
	default:
		errs = append(errs, FieldError{Field: "type", Message: "type must be one of hotel, flight, transport"})
	}

	if b.ItemId <= 0 {
		errs = append(errs, FieldError{Field: "itemId", Message: "itemId must be a positive integer"})
	}

	if b.CustomerName == "" {
		errs = append(errs, FieldError{Field: "customerName", Message: "customerName is required"})
	}

	if b.CustomerEmail == "" {
		errs = append(errs, FieldError{Field: "customerEmail", Message: "customerEmail is required"})
	} else if _, err := mail.ParseAddress(b.CustomerEmail); err != nil {
		errs = append(errs, FieldError{Field: "customerEmail", Message: "customerEmail must be a valid email address"})
	}

	if b.CustomerPhone == "" {
		errs = append(errs, FieldError{Field: "customerPhone", Message: "customerPhone is required"})
	}

	if b.TotalPrice == "" {
		errs = append(errs, FieldError{Field: "totalPrice", Message: "totalPrice is required"})
	}

	return errs
}
