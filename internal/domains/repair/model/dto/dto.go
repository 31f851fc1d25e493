package dto

import (
	"time"

	"hotelier/internal/domains/repair/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	"hotelier/shared/timezone"
)

type CompanyResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	IsCertified bool   `json:"is_certified"`
}

type GetCompaniesResponse struct {
	Companies []CompanyResponse `json:"companies"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (g *GetCompaniesResponse) FromModels(models []model.MaintenanceCompany, totalData, limit int) {
	g.TotalData = totalData
	g.TotalPage = shared.CalculateTotalPage(totalData, limit)

	g.Companies = make([]CompanyResponse, len(models))
	for i, mod := range models {
		g.Companies[i] = CompanyResponse{
			ID:          mod.ID,
			Name:        mod.Name,
			IsCertified: mod.IsCertified,
		}
	}
}

// PlaceRepairRequest carries no repair date; repairs are always placed for the
// current day.
type PlaceRepairRequest struct {
	CompanyID  string `json:"company_id"  validate:"required,uuid4"`
	HotelID    string `json:"hotel_id"    validate:"required,uuid4"`
	RoomNumber int    `json:"room_number" validate:"required,gt=0"`
}

func (p *PlaceRepairRequest) ToModel(repairDate time.Time) model.RoomRepair {
	return model.RoomRepair{
		CompanyID:  p.CompanyID,
		HotelID:    p.HotelID,
		RoomNumber: p.RoomNumber,
		RepairDate: repairDate,
	}
}

type RepairResponse struct {
	RepairID   int64  `json:"repair_id"`
	CompanyID  string `json:"company_id"`
	HotelID    string `json:"hotel_id"`
	RoomNumber int    `json:"room_number"`
	RepairDate string `json:"repair_date"`
}

type HistoryEntryResponse struct {
	RepairID    int64  `json:"repair_id"`
	CompanyID   string `json:"company_id"`
	CompanyName string `json:"company_name"`
	HotelID     string `json:"hotel_id"`
	HotelName   string `json:"hotel_name"`
	RoomNumber  int    `json:"room_number"`
	RepairDate  string `json:"repair_date"`
}

type GetHistoryResponse struct {
	Entries []HistoryEntryResponse `json:"entries"`
}

func (g *GetHistoryResponse) FromModels(models []model.HistoryEntry) {
	g.Entries = make([]HistoryEntryResponse, len(models))
	for i, mod := range models {
		g.Entries[i] = HistoryEntryResponse{
			RepairID:    mod.RepairID,
			CompanyID:   mod.CompanyID,
			CompanyName: mod.CompanyName,
			HotelID:     mod.HotelID,
			HotelName:   mod.HotelName,
			RoomNumber:  mod.RoomNumber,
			RepairDate:  timezone.FormatDate(mod.RepairDate, constant.BookingDateFormat),
		}
	}
}

// RepairRequestedEvent is the payload published after a repair is placed.
type RepairRequestedEvent struct {
	RepairID   int64  `json:"repair_id"`
	ManagerID  string `json:"manager_id"`
	CompanyID  string `json:"company_id"`
	HotelID    string `json:"hotel_id"`
	RoomNumber int    `json:"room_number"`
	RepairDate string `json:"repair_date"`
}
