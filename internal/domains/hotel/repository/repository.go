package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	"hotelier/internal/domains/hotel/model"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/logger"
	gRepo "hotelier/shared/repository"
)

type Hotel interface {
	Insert(ctx context.Context, model model.Hotel) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Hotel, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup, columns ...string) ([]model.Hotel, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetNearby(ctx context.Context, latitude, longitude, radius float64) ([]model.NearbyHotel, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Hotel]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Hotel {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Hotel](model.EntityName, model.TableName, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// GetNearby returns hotels whose euclidean distance from the given point is
// within radius, closest first. The distance math runs in SQL so the rows
// never leave the database unfiltered.
func (repo *repositoryImpl) GetNearby(ctx context.Context, latitude, longitude, radius float64) (hotels []model.NearbyHotel, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".hotel.GetNearby")
	defer scope.End()
	defer scope.TraceIfError(err)

	query := `SELECT id, name, latitude, longitude, date_established,
		sqrt(power(latitude - :latitude, 2) + power(longitude - :longitude, 2)) AS distance
		FROM hotels
		WHERE sqrt(power(latitude - :latitude, 2) + power(longitude - :longitude, 2)) <= :radius
		ORDER BY distance ASC`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"latitude":  latitude,
		"longitude": longitude,
		"radius":    radius,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)

		return hotels, fmt.Errorf("failed to prepare statement (%s): %w", model.EntityName, err)
	}
	defer prepare.Close()

	err = prepare.SelectContext(ctx, &hotels, args)
	if err != nil {
		logger.ErrorWithStack(err)

		return hotels, fmt.Errorf("failed to get nearby hotels: %w", err)
	}

	return hotels, nil
}
