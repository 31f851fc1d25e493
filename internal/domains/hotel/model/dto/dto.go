package dto

import (
	"hotelier/internal/domains/hotel/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"
)

type HotelResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	DateEstablished string  `json:"date_established"`
}

func (h *HotelResponse) FromModel(model model.Hotel) {
	h.ID = model.ID
	h.Name = model.Name
	h.Latitude = model.Latitude
	h.Longitude = model.Longitude
	h.DateEstablished = timezone.FormatDate(model.DateEstablished, constant.BookingDateFormat)
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (g *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Hotels = make([]HotelResponse, len(models))
	for i, mod := range models {
		g.Hotels[i].FromModel(mod)
	}
}

type NearbyRequest struct {
	Latitude  float64 `json:"latitude"  validate:"gte=0"`
	Longitude float64 `json:"longitude" validate:"gte=0"`
}

type NearbyHotelResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	DateEstablished string  `json:"date_established"`
	Distance        float64 `json:"distance"`
}

type GetNearbyHotelsResponse struct {
	Hotels []NearbyHotelResponse `json:"hotels"`
}

func (g *GetNearbyHotelsResponse) FromModels(models []model.NearbyHotel) {
	g.Hotels = make([]NearbyHotelResponse, len(models))
	for i, mod := range models {
		g.Hotels[i] = NearbyHotelResponse{
			ID:              mod.ID,
			Name:            mod.Name,
			Latitude:        mod.Latitude,
			Longitude:       mod.Longitude,
			DateEstablished: timezone.FormatDate(mod.DateEstablished, constant.BookingDateFormat),
			Distance:        mod.Distance,
		}
	}
}
