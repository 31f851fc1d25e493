package service

import (
	"context"
	"errors"
	"fmt"

	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/repository"
	hotelModel "hotelier/internal/domains/hotel/model"
	hotelRepo "hotelier/internal/domains/hotel/repository"
	roomModel "hotelier/internal/domains/room/model"
	roomRepo "hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheRecentBookings = "booking:recent"

	recentBookingsLimit   = 5
	regularCustomersLimit = 5
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetRecent(ctx context.Context) (dto.GetRecentBookingsResponse, error)
	GetHistory(ctx context.Context, from, to string) (dto.GetHistoryResponse, error)
	GetRegularCustomers(ctx context.Context, hotelID string) (dto.GetRegularCustomersResponse, error)
}

type serviceImpl struct {
	repo      repository.Booking
	roomRepo  roomRepo.Room
	hotelRepo hotelRepo.Hotel
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
	kafka     kafka.Client
}

func New(
	repo repository.Booking,
	rooms roomRepo.Room,
	hotels hotelRepo.Hotel,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	kafka kafka.Client,
) Booking {
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

// Create books a room for a single date. The unique constraint on
// (hotel_id, room_number, booking_date) is the only arbiter under
// concurrency: of two simultaneous attempts exactly one insert lands, the
// other surfaces as a conflict.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	bookingDate, err := timezone.Parse(constant.BookingDateFormat, req.BookingDate)
	if err != nil {
		return res, failure.BadRequestFromString("booking date must use the YYYY-MM-DD format") //nolint:wrapcheck
	}

	room, err := s.roomRepo.Get(ctx, roomFilter(req.HotelID, req.RoomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if room.HotelID == constant.Empty {
		return res, failure.BadRequestFromString("room does not exist") //nolint:wrapcheck
	}

	booking := req.ToModel(customerID, bookingDate)

	if err = s.repo.Insert(ctx, booking); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation {
			return res, failure.Conflict("room is already booked for the requested date") //nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.BookingCreatedEvent{
			BookingID:   booking.ID,
			CustomerID:  customerID,
			HotelID:     booking.HotelID,
			RoomNumber:  booking.RoomNumber,
			BookingDate: req.BookingDate,
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topics.BookingCreated, kafka.Message{
			Key:   booking.ID,
			Value: event,
		}); err != nil {
			log.Error().Err(err).Msg("failed to publish booking created event")
		}

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheRecentBookings, customerID))
	}()

	res = dto.BookingResponse{
		ID:          booking.ID,
		HotelID:     booking.HotelID,
		RoomNumber:  booking.RoomNumber,
		BookingDate: req.BookingDate,
		Price:       room.Price,
	}

	return res, nil
}

func (s *serviceImpl) GetRecent(ctx context.Context) (res dto.GetRecentBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRecent")
	defer scope.End()
	defer scope.TraceIfError(err)

	customerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	cacheKey := shared.BuildCacheKey(cacheRecentBookings, customerID)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for recent bookings")

		return res, nil
	}

	bookings, err := s.repo.GetRecentByCustomer(ctx, customerID, recentBookingsLimit)
	if err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Msg("failed to get recent bookings")

		return res, fmt.Errorf("failed to get recent bookings: %w", err)
	}

	res.FromModels(bookings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save recent bookings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetHistory(ctx context.Context, from, to string) (res dto.GetHistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHistory")
	defer scope.End()
	defer scope.TraceIfError(err)

	managerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if (from == constant.Empty) != (to == constant.Empty) {
		return res, failure.BadRequestFromString("from and to must be provided together") //nolint:wrapcheck
	}

	if from != constant.Empty {
		fromDate, err := timezone.Parse(constant.BookingDateFormat, from)
		if err != nil {
			return res, failure.BadRequestFromString("from must use the YYYY-MM-DD format") //nolint:wrapcheck
		}

		toDate, err := timezone.Parse(constant.BookingDateFormat, to)
		if err != nil {
			return res, failure.BadRequestFromString("to must use the YYYY-MM-DD format") //nolint:wrapcheck
		}

		if !fromDate.Before(toDate) {
			return res, failure.BadRequestFromString("from must be earlier than to") //nolint:wrapcheck
		}
	}

	entries, err := s.repo.GetHistoryForManager(ctx, managerID, from, to)
	if err != nil {
		log.Error().Err(err).Str("manager_id", managerID).Msg("failed to get booking history")

		return res, fmt.Errorf("failed to get booking history: %w", err)
	}

	res.FromModels(entries)

	return res, nil
}

func (s *serviceImpl) GetRegularCustomers(ctx context.Context, hotelID string) (res dto.GetRegularCustomersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRegularCustomers")
	defer scope.End()
	defer scope.TraceIfError(err)

	managerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	managed, err := s.hotelRepo.Exist(ctx, managedHotelFilter(hotelID, managerID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check hotel ownership")

		return res, fmt.Errorf("failed to check hotel ownership: %w", err)
	}

	if !managed {
		return res, failure.Forbidden("hotel is not managed by this user") //nolint:wrapcheck
	}

	customers, err := s.repo.GetRegularCustomers(ctx, hotelID, regularCustomersLimit)
	if err != nil {
		log.Error().Err(err).Str("hotel_id", hotelID).Msg("failed to get regular customers")

		return res, fmt.Errorf("failed to get regular customers: %w", err)
	}

	res.FromModels(customers)

	return res, nil
}
