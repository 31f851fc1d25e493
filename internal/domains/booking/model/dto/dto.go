package dto

import (
	"time"

	"hotelier/internal/domains/booking/model"
	gModel "hotelier/shared/model"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	HotelID     string `json:"hotel_id"     validate:"required,uuid4"`
	RoomNumber  int    `json:"room_number"  validate:"required,gt=0"`
	BookingDate string `json:"booking_date" validate:"required,datetime=2006-01-02"`
}

func (c *CreateBookingRequest) ToModel(customerID string, bookingDate time.Time) model.Booking {
	return model.Booking{
		ID:          uuid.NewString(),
		CustomerID:  customerID,
		HotelID:     c.HotelID,
		RoomNumber:  c.RoomNumber,
		BookingDate: bookingDate,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}
}

type BookingResponse struct {
	ID          string  `json:"id"`
	HotelID     string  `json:"hotel_id"`
	RoomNumber  int     `json:"room_number"`
	BookingDate string  `json:"booking_date"`
	Price       float64 `json:"price"`
}

type RecentBookingResponse struct {
	ID          string  `json:"id"`
	HotelID     string  `json:"hotel_id"`
	HotelName   string  `json:"hotel_name"`
	RoomNumber  int     `json:"room_number"`
	BookingDate string  `json:"booking_date"`
	Price       float64 `json:"price"`
}

type GetRecentBookingsResponse struct {
	Bookings []RecentBookingResponse `json:"bookings"`
}

func (g *GetRecentBookingsResponse) FromModels(models []model.RecentBooking) {
	g.Bookings = make([]RecentBookingResponse, len(models))
	for i, mod := range models {
		g.Bookings[i] = RecentBookingResponse{
			ID:          mod.ID,
			HotelID:     mod.HotelID,
			HotelName:   mod.HotelName,
			RoomNumber:  mod.RoomNumber,
			BookingDate: timezone.FormatDate(mod.BookingDate, constant.BookingDateFormat),
			Price:       mod.Price,
		}
	}
}

type HistoryEntryResponse struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	HotelID      string `json:"hotel_id"`
	HotelName    string `json:"hotel_name"`
	RoomNumber   int    `json:"room_number"`
	BookingDate  string `json:"booking_date"`
}

type GetHistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

func (g *GetHistoryResponse) FromModels(models []model.HistoryEntry) {
	g.Entries = make([]HistoryEntryResponse, len(models))
	for i, mod := range models {
		g.Entries[i] = HistoryEntryResponse{
			ID:           mod.ID,
			CustomerID:   mod.CustomerID,
			CustomerName: mod.CustomerName,
			HotelID:      mod.HotelID,
			HotelName:    mod.HotelName,
			RoomNumber:   mod.RoomNumber,
			BookingDate:  timezone.FormatDate(mod.BookingDate, constant.BookingDateFormat),
		}
	}
}

type RegularCustomerResponse struct {
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Bookings     int    `json:"bookings"`
}

type GetRegularCustomersResponse struct {
	Customers []RegularCustomerResponse `json:"customers"`
}

func (g *GetRegularCustomersResponse) FromModels(models []model.RegularCustomer) {
	g.Customers = make([]RegularCustomerResponse, len(models))
	for i, mod := range models {
		g.Customers[i] = RegularCustomerResponse{
			CustomerID:   mod.CustomerID,
			CustomerName: mod.CustomerName,
			Bookings:     mod.Bookings,
		}
	}
}

// BookingCreatedEvent is the payload published after a successful booking.
type BookingCreatedEvent struct {
	BookingID   string `json:"booking_id"`
	CustomerID  string `json:"customer_id"`
	HotelID     string `json:"hotel_id"`
	RoomNumber  int    `json:"room_number"`
	BookingDate string `json:"booking_date"`
}
