package service

import (
	"context"
	"fmt"
	"strings"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/infras/s3"
	"hotelier/internal/domains/availability"
	bookingModel "hotelier/internal/domains/booking/model"
	bookingRepo "hotelier/internal/domains/booking/repository"
	hotelModel "hotelier/internal/domains/hotel/model"
	hotelRepo "hotelier/internal/domains/hotel/repository"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/repository"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAllRoom = "room:gets"
	cacheCountRoom  = "room:count"

	recentUpdatesLimit = 5
)

type Room interface {
	GetAll(ctx context.Context, hotelID string, req gDto.QueryParams) (dto.GetRoomsResponse, error)
	GetAvailability(ctx context.Context, hotelID, date string) (dto.GetAvailabilityResponse, error)
	Update(ctx context.Context, req dto.UpdateRoomRequest, hotelID string, roomNumber int) error
	UploadImage(ctx context.Context, req dto.UploadRoomImageRequest, hotelID string, roomNumber int) (dto.UploadRoomImageResponse, error)
	GetRecentUpdates(ctx context.Context) (dto.GetUpdateLogsResponse, error)
}

type serviceImpl struct {
	repo        repository.Room
	hotelRepo   hotelRepo.Hotel
	bookingRepo bookingRepo.Booking
	cfg         *config.Config
	cache       cache.RedisCache
	otel        otel.Otel
	s3          s3.S3
}

func New(
	repo repository.Room,
	hotels hotelRepo.Hotel,
	bookings bookingRepo.Booking,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
	s3 s3.S3,
) Room {
	return &serviceImpl{
		repo:        repo,
		hotelRepo:   hotels,
		bookingRepo: bookings,
		cfg:         cfg,
		cache:       cache,
		otel:        otel,
		s3:          s3,
	}
}

func hotelFilter(hotelID string) gDto.FilterGroup {
	return shared.FilterByID(hotelID, hotelModel.FieldID, hotelModel.TableName)
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

func roomFilter(hotelID string, roomNumber int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldRoomNumber,
				Operator: gDto.FilterOperatorEq,
				Value:    roomNumber,
				Table:    model.TableName,
			},
		},
	}
}

func (s *serviceImpl) GetAll(ctx context.Context, hotelID string, req gDto.QueryParams) (res dto.GetRoomsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.hotelRepo.Exist(ctx, hotelFilter(hotelID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check hotel existence")

		return res, fmt.Errorf("failed to check hotel existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("hotel not found") //nolint:wrapcheck
	}

	filter := shared.FilterByID(hotelID, model.FieldHotelID, model.TableName)

	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllRoom, hotelID), req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for rooms")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rooms")

		return res, fmt.Errorf("failed to count rooms: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save rooms to cache")
		}
	}()

	return res, nil
}

// GetAvailability loads the hotel's full inventory and that date's bookings,
// then lets the resolver tag each room. The result is recomputed on every
// request; bookings change too often to cache usefully.
func (s *serviceImpl) GetAvailability(ctx context.Context, hotelID, date string) (res dto.GetAvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAvailability")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.hotelRepo.Exist(ctx, hotelFilter(hotelID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check hotel existence")

		return res, fmt.Errorf("failed to check hotel existence: %w", err)
	}

	if !exist {
		return res, failure.NotFound("hotel not found") //nolint:wrapcheck
	}

	roomsFilter := shared.FilterByID(hotelID, model.FieldHotelID, model.TableName)

	roomModels, err := s.repo.GetAll(ctx, gDto.QueryParams{}, roomsFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rooms")

		return res, fmt.Errorf("failed to get rooms: %w", err)
	}

	bookingsFilter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    bookingModel.FieldHotelID,
				Operator: gDto.FilterOperatorEq,
				Value:    hotelID,
				Table:    bookingModel.TableName,
			},
			gDto.Filter{
				Field:    bookingModel.FieldBookingDate,
				Operator: gDto.FilterOperatorEq,
				Value:    date,
				Table:    bookingModel.TableName,
			},
		},
	}

	bookingModels, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, bookingsFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	rooms := make([]availability.Room, len(roomModels))
	for i, room := range roomModels {
		rooms[i] = availability.Room{Number: room.RoomNumber, Price: room.Price}
	}

	bookings := make([]availability.Booking, len(bookingModels))
	for i, booking := range bookingModels {
		bookings[i] = availability.Booking{
			RoomNumber: booking.RoomNumber,
			Date:       timezone.FormatDate(booking.BookingDate, constant.BookingDateFormat),
		}
	}

	res.FromEntries(date, availability.Resolve(rooms, bookings, date))

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRoomRequest, hotelID string, roomNumber int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	managerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	managed, err := s.hotelRepo.Exist(ctx, managedHotelFilter(hotelID, managerID))
	if err != nil {
		log.Error().Err(err).Msg("failed to check hotel ownership")

		return fmt.Errorf("failed to check hotel ownership: %w", err)
	}

	if !managed {
		return failure.Forbidden("hotel is not managed by this user") //nolint:wrapcheck
	}

	exist, err := s.repo.Exist(ctx, roomFilter(hotelID, roomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to check room existence")

		return fmt.Errorf("failed to check room existence: %w", err)
	}

	if !exist {
		return failure.NotFound("room not found") //nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, managerID)

	logEntry := model.UpdateLog{
		ManagerID:  managerID,
		HotelID:    hotelID,
		RoomNumber: roomNumber,
		UpdatedOn:  timezone.Now(),
	}

	if err = s.repo.UpdateWithLog(ctx, updatedFields, roomFilter(hotelID, roomNumber), logEntry); err != nil {
		log.Error().Err(err).Msg("failed to update room")

		return fmt.Errorf("failed to update room: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetAllRoom, hotelID))
		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheCountRoom, hotelID))
	}()

	return nil
}

func (s *serviceImpl) UploadImage(ctx context.Context, req dto.UploadRoomImageRequest, hotelID string, roomNumber int) (res dto.UploadRoomImageResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadImage")
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

	currentRoom, err := s.repo.Get(ctx, roomFilter(hotelID, roomNumber))
	if err != nil {
		log.Error().Err(err).Msg("failed to get room")

		return res, fmt.Errorf("failed to get room: %w", err)
	}

	if currentRoom.HotelID == constant.Empty {
		return res, failure.NotFound("room not found") //nolint:wrapcheck
	}

	bucketName := s.cfg.External.S3.BucketName
	filename := uuid.NewString()

	parts := strings.Split(req.Image.Filename, ".")
	if len(parts) > 1 {
		filename = fmt.Sprintf("%s.%s", filename, parts[len(parts)-1])
	}

	imageURL, err := s.s3.UploadFile(ctx, bucketName, model.EntityName, req.ImageFile, req.Image, filename)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload image to S3")

		return res, fmt.Errorf("failed to upload image: %w", err)
	}

	updatedFields := map[string]any{model.FieldImageURL: imageURL}

	logEntry := model.UpdateLog{
		ManagerID:  managerID,
		HotelID:    hotelID,
		RoomNumber: roomNumber,
		UpdatedOn:  timezone.Now(),
	}

	if err = s.repo.UpdateWithLog(ctx, updatedFields, roomFilter(hotelID, roomNumber), logEntry); err != nil {
		log.Error().Err(err).Msg("failed to update room image")

		_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, filename)

		return res, fmt.Errorf("failed to update room image: %w", err)
	}

	if currentRoom.ImageURL != constant.Empty {
		oldObjectName := s.s3.GetObjectNameFromURL(bucketName, currentRoom.ImageURL)
		if oldObjectName != constant.Empty {
			_ = s.s3.DeleteFile(ctx, bucketName, model.EntityName, oldObjectName)
		}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, shared.BuildCacheKey(cacheGetAllRoom, hotelID))
	}()

	res.ImageURL = imageURL

	return res, nil
}

func (s *serviceImpl) GetRecentUpdates(ctx context.Context) (res dto.GetUpdateLogsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetRecentUpdates")
	defer scope.End()
	defer scope.TraceIfError(err)

	managerID, _ := ctx.Value(constant.ContextKeyUserID).(string)

	logs, err := s.repo.GetRecentUpdates(ctx, managerID, recentUpdatesLimit)
	if err != nil {
		log.Error().Err(err).Str("manager_id", managerID).Msg("failed to get recent room updates")

		return res, fmt.Errorf("failed to get recent room updates: %w", err)
	}

	res.FromModels(logs)

	return res, nil
}
