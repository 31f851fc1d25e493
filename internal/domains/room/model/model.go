package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldHotelID    = "hotel_id"
	FieldRoomNumber = "room_number"
	FieldPrice      = "price"
	FieldImageURL   = "image_url"
)

const (
	UpdateLogTableName  = "room_updates_log"
	UpdateLogEntityName = "room_update_log"

	FieldManagerID = "manager_id"
	FieldUpdatedOn = "updated_on"
)

type Room struct {
	HotelID    string  `db:"hotel_id"`
	RoomNumber int     `db:"room_number"`
	Price      float64 `db:"price"`
	ImageURL   string  `db:"image_url"`
	model.Metadata
}

// UpdateLog records which manager touched which room and when.
type UpdateLog struct {
	ManagerID  string    `db:"manager_id"`
	HotelID    string    `db:"hotel_id"`
	RoomNumber int       `db:"room_number"`
	UpdatedOn  time.Time `db:"updated_on"`
}
