package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/booking/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"
)

type Booking interface {
	Insert(ctx context.Context, model model.Booking) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Booking, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetRecentByCustomer(ctx context.Context, customerID string, limit int) ([]model.RecentBooking, error)
	GetHistoryForManager(ctx context.Context, managerID, from, to string) ([]model.HistoryEntry, error)
	GetRegularCustomers(ctx context.Context, hotelID string, limit int) ([]model.RegularCustomer, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetRecentByCustomer returns the customer's latest bookings joined with the
// room price, newest first, capped at limit.
func (repo *repositoryImpl) GetRecentByCustomer(ctx context.Context, customerID string, limit int) (bookings []model.RecentBooking, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetRecentByCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT b.id, b.hotel_id, h.name AS hotel_name, b.room_number, b.booking_date, r.price
		FROM room_bookings b
		JOIN rooms r ON r.hotel_id = b.hotel_id AND r.room_number = b.room_number
		JOIN hotels h ON h.id = b.hotel_id
		WHERE b.customer_id = :customer_id
		ORDER BY b.booking_date DESC
		LIMIT :limit`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"customer_id": customerID,
		"limit":       limit,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return bookings, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &bookings, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return bookings, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	return bookings, nil
}

// GetHistoryForManager returns bookings of every hotel the manager runs,
// joined with the customer, optionally restricted to an inclusive date range.
// Empty from/to skip the range condition.
func (repo *repositoryImpl) GetHistoryForManager(ctx context.Context, managerID, from, to string) (entries []model.HistoryEntry, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetHistoryForManager")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT b.id, b.customer_id, u.name AS customer_name, b.hotel_id, h.name AS hotel_name, b.room_number, b.booking_date
		FROM room_bookings b
		JOIN hotels h ON h.id = b.hotel_id
		JOIN users u ON u.id = b.customer_id
		WHERE h.manager_user_id = :manager_id`

	args := map[string]any{
		"manager_id": managerID,
	}

	if from != "" && to != "" {
		query += " AND b.booking_date BETWEEN :from AND :to"
		args["from"] = from
		args["to"] = to
	}

	query += " ORDER BY b.booking_date DESC"
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return entries, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &entries, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return entries, fmt.Errorf("failed to get booking history: %w", err)
	}

	return entries, nil
}

// GetRegularCustomers ranks customers by booking count for one hotel, most
// bookings first, capped at limit. The aggregation runs in SQL.
func (repo *repositoryImpl) GetRegularCustomers(ctx context.Context, hotelID string, limit int) (customers []model.RegularCustomer, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".booking.GetRegularCustomers")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT b.customer_id, u.name AS customer_name, COUNT(b.id) AS bookings
		FROM room_bookings b
		JOIN users u ON u.id = b.customer_id
		WHERE b.hotel_id = :hotel_id
		GROUP BY b.customer_id, u.name
		ORDER BY bookings DESC
		LIMIT :limit`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"hotel_id": hotelID,
		"limit":    limit,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return customers, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &customers, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return customers, fmt.Errorf("failed to get regular customers: %w", err)
	}

	return customers, nil
}
