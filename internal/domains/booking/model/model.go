package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "room_bookings"
	EntityName = "booking"

	FieldID          = "id"
	FieldCustomerID  = "customer_id"
	FieldHotelID     = "hotel_id"
	FieldRoomNumber  = "room_number"
	FieldBookingDate = "booking_date"
)

type Booking struct {
	ID          string    `db:"id"`
	CustomerID  string    `db:"customer_id"`
	HotelID     string    `db:"hotel_id"`
	RoomNumber  int       `db:"room_number"`
	BookingDate time.Time `db:"booking_date"`
	model.Metadata
}

// RecentBooking is a booking row joined with the room price, produced by the
// recent-bookings query only.
type RecentBooking struct {
	ID          string    `db:"id"`
	HotelID     string    `db:"hotel_id"`
	HotelName   string    `db:"hotel_name"`
	RoomNumber  int       `db:"room_number"`
	BookingDate time.Time `db:"booking_date"`
	Price       float64   `db:"price"`
}

// HistoryEntry is a booking of a managed hotel joined with the customer.
type HistoryEntry struct {
	ID           string    `db:"id"`
	CustomerID   string    `db:"customer_id"`
	CustomerName string    `db:"customer_name"`
	HotelID      string    `db:"hotel_id"`
	HotelName    string    `db:"hotel_name"`
	RoomNumber   int       `db:"room_number"`
	BookingDate  time.Time `db:"booking_date"`
}

// RegularCustomer aggregates a customer's booking count for one hotel.
type RegularCustomer struct {
	CustomerID   string `db:"customer_id"`
	CustomerName string `db:"customer_name"`
	Bookings     int    `db:"bookings"`
}
