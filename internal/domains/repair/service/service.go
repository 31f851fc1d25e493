package service

import (
	"context"
	"fmt"
	"strconv"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	hotelModel "hotelier/internal/domains/hotel/model"
	hotelRepo "hotelier/internal/domains/hotel/repository"
	"hotelier/internal/domains/repair/model"
	"hotelier/internal/domains/repair/model/dto"
	"hotelier/internal/domains/repair/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllCompany = "maintenanceCompany:gets"
	cacheCountCompany  = "maintenanceCompany:count"
)

type Repair interface {
	GetCompanies(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCompaniesResponse, error)
	CountCompanies(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Place(ctx context.Context, req dto.PlaceRepairRequest) (dto.RepairResponse, error)
	GetHistory(ctx context.Context) (dto.GetHistoryResponse, error)
}

type serviceImpl struct {
	repo      repository.Repair
	roomRepo  roomRepo.Room
	hotelRepo hotelRepo.Hotel
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	kafka     kafka.Client
}

func New(
	repo repository.Repair,
	rooms roomRepo.Room,
	hotels hotelRepo.Hotel,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Repair {
	return &serviceImpl{
		repo:      repo,
		roomRepo:  rooms,
		hotelRepo: hotels,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
		kafka:     kafka,
	}
}

func roomFilter(hotelID string, roomNumber int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    roomModel.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    roomModel.TableName,
			},
			gDto.Filter{
				Field:    roomModel.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    roomNumber,
				Table:    roomModel.TableName,
			},
		},
	}
}

func managedHotelFilter(hotelID, managerID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    hotelModel.FieldID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    hotelModel.TableName,
			},
			gDto.Filter{
				Field:    hotelModel.FieldManagerUserID,
				Operator: gDto.FilterOperatorEq,
				Value:    managerID,
				Table:    hotelModel.TableName,
			},
		},
	}
}

func (s *serviceImpl) GetCompanies(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCompaniesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetCompanies")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCompany, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for maintenance companies")

		return res, nil
	}

	total, err := s.CountCompanies(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance companies")

		return res, fmt.Errorf("failed to count maintenance companies: %w", err)
	}

	models, err := s.repo.GetAllCompanies(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance companies")

		return res, fmt.Errorf("failed to get maintenance companies: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance companies to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CountCompanies(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CountCompanies")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountCompany, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for maintenance company count")

		return res, nil
	}

	res, err = s.repo.CountCompanies(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance companies")

		return res, fmt.Errorf("failed to count maintenance companies: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance company count to cache")
		}
	}()

	return res, nil
}

// Place books a repair for a managed room and records who asked for it.
func (s *serviceImpl) Place(ctx context.Context, req dto.PlaceRepairRequest) (res dto.RepairResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Place")
	defer scope.End()
	defer scope.TraceIfError(err)

	managerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	// Repairs are always placed for the current day; the date column truncates
	// the time part.
	repairDate := timezone.Now()

	managed, err := s.hotelRepo.Exist(ctx, managedHotelFilter(req.HotelID, managerID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check hotel ownership")

		return res, fmt.Errorf("failed to check hotel ownership: %w", err)
	}

	if !managed {
		return res, failure.Forbidden("hotel is not managed by this user") //nolint:wrapcheck
	}

	roomExist, err := s.roomRepo.Exist(ctx, roomFilter(req.HotelID, req.RoomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return res, fmt.Errorf("failed to check room existence: %w", err)
	}

	if !roomExist {
		return res, failure.BadRequestFromString("room does not exist") //nolint:wrapcheck
	}

	companyExist, err := s.repo.CompanyExist(ctx, shared.FilterByID(req.CompanyID, model.FieldID, model.CompanyTableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check maintenance company existence")

		return res, fmt.Errorf("failed to check maintenance company existence: %w", err)
	}

	if !companyExist {
		return res, failure.BadRequestFromString("maintenance company does not exist") //nolint:wrapcheck
	}

	repairID, err := s.repo.PlaceRequest(ctx, req.ToModel(repairDate), managerID)
	if err != nil {
		log.Error().Err(err).Msg("failed to place repair request")

		return res, fmt.Errorf("failed to place repair request: %w", err)
	}

	repairDateStr := timezone.Format(repairDate, constant.BookingDateFormat)

	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.RepairRequestedEvent{
			RepairID:   repairID,
			ManagerID:  managerID,
			CompanyID:  req.CompanyID,
			HotelID:    req.HotelID,
			RoomNumber: req.RoomNumber,
			RepairDate: repairDateStr,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.RepairRequested, kafka.Message{
			Key:   strconv.FormatInt(repairID, 10),
			Value: event,
		}); err != nil {
			log.Error().Err(err).Msg("failed to publish repair requested event")
		}
	}()

	res = dto.RepairResponse{
		RepairID:   repairID,
		CompanyID:  req.CompanyID,
		HotelID:    req.HotelID,
		RoomNumber: req.RoomNumber,
		RepairDate: repairDateStr,
	}

	return res, nil
}

func (s *serviceImpl) GetHistory(ctx context.Context) (res dto.GetHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	managerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	entries, err := s.repo.GetHistoryForManager(ctx, managerID)
	if err != nil {
		log.Error().Err(err).Str("manager_id", managerID).Msg("failed to get repair history")

		return res, fmt.Errorf("failed to get repair history: %w", err)
	}

	res.FromModels(entries)

	return res, nil
}
