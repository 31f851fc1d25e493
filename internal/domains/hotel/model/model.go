package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID              = "id"
	FieldName            = "name"
	FieldLatitude        = "latitude"
	FieldLongitude       = "longitude"
	FieldDateEstablished = "date_established"
	FieldManagerUserID   = "manager_user_id"

	// NearbyRadius is the euclidean distance, in coordinate units, inside
	// which a hotel counts as nearby.
	NearbyRadius = 30.0
)

type Hotel struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Latitude        float64   `db:"latitude"`
	Longitude       float64   `db:"longitude"`
	DateEstablished time.Time `db:"date_established"`
	ManagerUserID   string    `db:"manager_user_id"`
	model.Metadata
}

// NearbyHotel is a hotel row annotated with its distance from the searched
// point. Produced by the nearby query only.
type NearbyHotel struct {
	ID              string    `db:"id"`
	Name            string    `db:"name"`
	Latitude        float64   `db:"latitude"`
	Longitude       float64   `db:"longitude"`
	DateEstablished time.Time `db:"date_established"`
	Distance        float64   `db:"distance"`
}
