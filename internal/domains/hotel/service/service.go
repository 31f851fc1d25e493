package service

import (
	"context"
	"fmt"
	"strconv"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/hotel/model"
	"hotelier/internal/domains/hotel/model/dto"
	"hotelier/internal/domains/hotel/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel    = "hotel:get"
	cacheGetAllHotel = "hotel:gets"
	cacheCountHotel  = "hotel:count"
	cacheNearbyHotel = "hotel:nearby"
)

type Hotel interface {
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.HotelResponse, error)
	GetNearby(ctx context.Context, req dto.NearbyRequest) (dto.GetNearbyHotelsResponse, error)
	GetManaged(ctx context.Context) (dto.GetHotelsResponse, error)
}

type serviceImpl struct {
	repo  repository.Hotel
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Hotel, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Hotel {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return res, fmt.Errorf("failed to count hotels: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound("hotel not found") //nolint:wrapcheck
	}

	res.FromModel(hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetNearby(ctx context.Context, req dto.NearbyRequest) (res dto.GetNearbyHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetNearby")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(
		cacheNearbyHotel,
		strconv.FormatFloat(req.Latitude, 'f', -1, 64),
		strconv.FormatFloat(req.Longitude, 'f', -1, 64),
	)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for nearby hotels")

		return res, nil
	}

	hotels, err := s.repo.GetNearby(ctx, req.Latitude, req.Longitude, model.NearbyRadius)
	if err != nil {
		log.Error().Err(err).Msg("failed to get nearby hotels")

		return res, fmt.Errorf("failed to get nearby hotels: %w", err)
	}

	res.FromModels(hotels)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save nearby hotels to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetManaged(ctx context.Context) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetManaged")
	defer scope.End()
	defer scope.TraceIfError(err)

	managerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldManagerUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    managerID,
				Table:    model.TableName,
			},
		},
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get managed hotels")

		return res, fmt.Errorf("failed to get managed hotels: %w", err)
	}

	res.FromModels(models, len(models), 0)

	return res, nil
}
