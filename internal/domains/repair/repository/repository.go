package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/repair/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"
)

type Repair interface {
	GetCompany(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MaintenanceCompany, error)
	GetAllCompanies(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MaintenanceCompany, error)
	CountCompanies(ctx context.Context, filter gDto.FilterGroup) (int, error)
	CompanyExist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	PlaceRequest(ctx context.Context, repair model.RoomRepair, managerID string) (int64, error)
	GetHistoryForManager(ctx context.Context, managerID string) ([]model.HistoryEntry, error)
}

type repositoryImpl struct {
	companyRepo gRepo.Repository[model.MaintenanceCompany]
	db          *postgres.Connection
	otel        otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Repair {
	return &repositoryImpl{
		companyRepo: gRepo.NewRepository[model.MaintenanceCompany](model.CompanyEntityName, model.CompanyTableName, model.FieldID, db, otel),
		db:          db,
		otel:        otel,
	}
}

func (repo *repositoryImpl) GetCompany(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.MaintenanceCompany, error) {
	return repo.companyRepo.Get(ctx, filter, columns...) //nolint:wrapcheck
}

func (repo *repositoryImpl) GetAllCompanies(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.MaintenanceCompany, error) {
	return repo.companyRepo.GetAll(ctx, params, filter, columns...) //nolint:wrapcheck
}

func (repo *repositoryImpl) CountCompanies(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return repo.companyRepo.Count(ctx, filter) //nolint:wrapcheck
}

func (repo *repositoryImpl) CompanyExist(ctx context.Context, filter gDto.FilterGroup) (bool, error) {
	return repo.companyRepo.Exist(ctx, filter) //nolint:wrapcheck
}

// PlaceRequest inserts the repair and the manager's request row in one
// transaction. The repair id is database assigned, so the insert returns it
// before the request row can reference it. Either both rows land or neither.
func (repo *repositoryImpl) PlaceRequest(ctx context.Context, repair model.RoomRepair, managerID string) (repairID int64, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".repair.PlaceRequest")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return repairID, fmt.Errorf("failed to begin transaction (%s): %w", model.RepairEntityName, err)
	}

	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(); rollbackErr != nil {
				logger.ErrorWithStack(rollbackErr)
			}
		}
	}()

	insertRepair := `INSERT INTO room_repairs (company_id, hotel_id, room_number, repair_date)
		VALUES (:company_id, :hotel_id, :room_number, :repair_date)
		RETURNING id`
	scope.SetAttribute(constant.OtelQueryAttributeKey, insertRepair)

	prepare, err := tx.PrepareNamedContext(ctx, insertRepair)
	if err != nil {
		logger.ErrorWithStack(err)

		return repairID, fmt.Errorf("failed to prepare statement (%s): %w", model.RepairEntityName, err)
	}
	defer prepare.Close()

	err = prepare.GetContext(ctx, &repairID, repair)
	if err != nil {
		logger.ErrorWithStack(err)

		return repairID, fmt.Errorf("failed to insert repair: %w", err)
	}

	insertRequest := `INSERT INTO room_repair_requests (manager_id, repair_id)
		VALUES (:manager_id, :repair_id)`

	_, err = tx.NamedExecContext(ctx, insertRequest, map[string]any{
		"manager_id": managerID,
		"repair_id":  repairID,
	})
	if err != nil {
		logger.ErrorWithStack(err)

		return repairID, fmt.Errorf("failed to insert repair request: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return repairID, fmt.Errorf("failed to commit transaction (%s): %w", model.RepairEntityName, err)
	}

	return repairID, nil
}

// GetHistoryForManager returns the repairs the manager requested, joined with
// the company and hotel, newest first.
func (repo *repositoryImpl) GetHistoryForManager(ctx context.Context, managerID string) (entries []model.HistoryEntry, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".repair.GetHistoryForManager")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT rr.id AS repair_id, rr.company_id, c.name AS company_name, rr.hotel_id, h.name AS hotel_name, rr.room_number, rr.repair_date
		FROM room_repair_requests req
		JOIN room_repairs rr ON rr.id = req.repair_id
		JOIN maintenance_companies c ON c.id = rr.company_id
		JOIN hotels h ON h.id = rr.hotel_id
		WHERE req.manager_id = :manager_id
		ORDER BY rr.repair_date DESC, rr.id DESC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"manager_id": managerID,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return entries, fmt.Errorf("failed to prepare statement (%s): %w", model.RepairEntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &entries, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return entries, fmt.Errorf("failed to get repair history: %w", err)
	}

	return entries, nil
}
