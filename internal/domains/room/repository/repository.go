package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/room/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"
)

type Room interface {
	Insert(ctx context.Context, model model.Room) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Room, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Room, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateWithLog(ctx context.Context, fields map[string]any, filter gDto.FilterGroup, logEntry model.UpdateLog) error
	GetRecentUpdates(ctx context.Context, managerID string, limit int) ([]model.UpdateLog, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Room]
	logRepo gRepo.Repository[model.UpdateLog]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Room](model.EntityName, model.TableName, model.FieldRoomNumber, db, otel),
		logRepo:    gRepo.NewRepository[model.UpdateLog](model.UpdateLogEntityName, model.UpdateLogTableName, model.FieldRoomNumber, db, otel),
		db:         db,
		otel:       otel,
	}
}

// UpdateWithLog applies the room update and appends the update-log row in a
// single transaction, so the log never disagrees with the room state.
func (repo *repositoryImpl) UpdateWithLog(ctx context.Context, fields map[string]any, filter gDto.FilterGroup, logEntry model.UpdateLog) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.UpdateWithLog")
	defer scope.End()
	defer scope.TraceIfError(err)

	tx, err := repo.db.Write.BeginTxx(ctx, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = repo.UpdateTx(ctx, tx, fields, filter); err != nil {
		return fmt.Errorf("failed to update room: %w", err)
	}

	if err = repo.logRepo.InsertTx(ctx, tx, logEntry); err != nil {
		return fmt.Errorf("failed to insert room update log: %w", err)
	}

	if err = tx.Commit(); err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetRecentUpdates returns the manager's latest update-log rows, newest
// first, capped at limit.
func (repo *repositoryImpl) GetRecentUpdates(ctx context.Context, managerID string, limit int) (logs []model.UpdateLog, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".room.GetRecentUpdates")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT manager_id, hotel_id, room_number, updated_on
		FROM room_updates_log
		WHERE manager_id = :manager_id
		ORDER BY updated_on DESC
		LIMIT :limit`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"manager_id": managerID,
		"limit":      limit,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return logs, fmt.Errorf("failed to prepare statement (%s): %w", model.UpdateLogEntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &logs, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return logs, fmt.Errorf("failed to get recent room updates: %w", err)
	}

	return logs, nil
}
