package dto

import (
	"mime/multipart"

	"hotelier/internal/domains/availability"
	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"
)

type RoomResponse struct {
	HotelID    string  `json:"hotel_id"`
	RoomNumber int     `json:"room_number"`
	Price      float64 `json:"price"`
	ImageURL   string  `json:"image_url"`
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.HotelID = model.HotelID
	r.RoomNumber = model.RoomNumber
	r.Price = model.Price
	r.ImageURL = model.ImageURL
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (g *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		g.Rooms[i].FromModel(mod)
	}
}

type RoomAvailabilityResponse struct {
	RoomNumber int     `json:"room_number"`
	Price      float64 `json:"price"`
	Status     string  `json:"status"`
}

type GetAvailabilityResponse struct {
	Date  string                     `json:"date"`
	Rooms []RoomAvailabilityResponse `json:"rooms"`
}

func (g *GetAvailabilityResponse) FromEntries(date string, entries []availability.Entry) {
	g.Date = date

	g.Rooms = make([]RoomAvailabilityResponse, len(entries))
	for i, entry := range entries {
		g.Rooms[i] = RoomAvailabilityResponse{
			RoomNumber: entry.RoomNumber,
			Price:      entry.Price,
			Status:     string(entry.Status),
		}
	}
}

type UpdateRoomRequest struct {
	Price    *float64 `db:"price"     json:"price"     validate:"omitempty,gt=0"`
	ImageURL string   `db:"image_url" json:"image_url" validate:"omitempty,url"`
}

type UploadRoomImageRequest struct {
	Image     *multipart.FileHeader `json:"image" validate:"required,mimetypes=image/png image/jpg image/jpeg,maxfilesize=5"`
	ImageFile multipart.File        `json:"-"`
}

type UploadRoomImageResponse struct {
	ImageURL string `json:"image_url"`
}

type UpdateLogResponse struct {
	HotelID    string `json:"hotel_id"`
	RoomNumber int    `json:"room_number"`
	UpdatedOn  string `json:"updated_on"`
}

type GetUpdateLogsResponse struct {
	Updates []UpdateLogResponse `json:"updates"`
}

func (g *GetUpdateLogsResponse) FromModels(models []model.UpdateLog) {
	g.Updates = make([]UpdateLogResponse, len(models))
	for i, mod := range models {
		g.Updates[i] = UpdateLogResponse{
			HotelID:    mod.HotelID,
			RoomNumber: mod.RoomNumber,
			UpdatedOn:  timezone.Format(mod.UpdatedOn, constant.DateFormat),
		}
	}
}
