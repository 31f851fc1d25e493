package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	CompanyTableName  = "maintenance_companies"
	CompanyEntityName = "maintenanceCompany"

	RepairTableName  = "room_repairs"
	RepairEntityName = "roomRepair"

	RequestTableName  = "room_repair_requests"
	RequestEntityName = "roomRepairRequest"

	FieldID          = "id"
	FieldCompanyID   = "company_id"
	FieldHotelID     = "hotel_id"
	FieldRoomNumber  = "room_number"
	FieldRepairDate  = "repair_date"
	FieldManagerID   = "manager_id"
	FieldRepairID    = "repair_id"
	FieldIsCertified = "is_certified"
)

type MaintenanceCompany struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	IsCertified bool   `db:"is_certified"`
	model.Metadata
}

// RoomRepair uses a database-assigned serial id, so inserts go through a
// RETURNING query instead of the generic repository.
type RoomRepair struct {
	ID         int64     `db:"id"`
	CompanyID  string    `db:"company_id"`
	HotelID    string    `db:"hotel_id"`
	RoomNumber int       `db:"room_number"`
	RepairDate time.Time `db:"repair_date"`
}

// RepairRequest records which manager asked for a repair.
type RepairRequest struct {
	ID        int64  `db:"id"`
	ManagerID string `db:"manager_id"`
	RepairID  int64  `db:"repair_id"`
}

// HistoryEntry is a repair joined with the company that performed it.
type HistoryEntry struct {
	RepairID    int64     `db:"repair_id"`
	CompanyID   string    `db:"company_id"`
	CompanyName string    `db:"company_name"`
	HotelID     string    `db:"hotel_id"`
	HotelName   string    `db:"hotel_name"`
	RoomNumber  int       `db:"room_number"`
	RepairDate  time.Time `db:"repair_date"`
}
