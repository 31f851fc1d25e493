package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	s3Mocks "hotelier/infras/s3/mocks"
	bookingMocks "hotelier/internal/domains/booking/mocks"
	bookingModel "hotelier/internal/domains/booking/model"
	hotelMocks "hotelier/internal/domains/hotel/mocks"
	roomMocks "hotelier/internal/domains/room/mocks"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

const (
	testHotelID   = "7f9cbb57-4a12-4a93-8a8e-3f0d1a6c9b01"
	testManagerID = "test-manager-id"
)

func newRoomService(t *testing.T) (
	service.Room,
	*roomMocks.MockRoom,
	*hotelMocks.MockHotel,
	*bookingMocks.MockBooking,
	*cacheMocks.MockRedisCache,
	*s3Mocks.MockS3,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := roomMocks.NewMockRoom(ctrl)
	mockHotels := hotelMocks.NewMockHotel(ctrl)
	mockBookings := bookingMocks.NewMockBooking(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "hotelier-test"

	svc := service.New(mockRepo, mockHotels, mockBookings, cfg, mockCache, mockOtel, mockS3)

	return svc, mockRepo, mockHotels, mockBookings, mockCache, mockS3
}

func managerContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, testManagerID)
}

func TestRoomService_GetAvailability(t *testing.T) {
	const date = "2026-09-01"

	t.Run("hotel not found", func(t *testing.T) {
		svc, _, mockHotels, _, _, _ := newRoomService(t)

		mockHotels.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.GetAvailability(context.Background(), testHotelID, date)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("booked room is unavailable, the rest available", func(t *testing.T) {
		svc, mockRepo, mockHotels, mockBookings, _, _ := newRoomService(t)

		mockHotels.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{
				{HotelID: testHotelID, RoomNumber: 2, Price: 200},
				{HotelID: testHotelID, RoomNumber: 1, Price: 100},
			}, nil)
		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				{HotelID: testHotelID, RoomNumber: 2, BookingDate: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
			}, nil)

		res, err := svc.GetAvailability(context.Background(), testHotelID, date)

		assert.NoError(t, err)
		assert.Equal(t, date, res.Date)
		assert.Len(t, res.Rooms, 2)
		assert.Equal(t, 1, res.Rooms[0].RoomNumber)
		assert.Equal(t, "Available", res.Rooms[0].Status)
		assert.Equal(t, 2, res.Rooms[1].RoomNumber)
		assert.Equal(t, "Unavailable", res.Rooms[1].Status)
	})

	t.Run("booking date keeps its calendar day under a negative offset", func(t *testing.T) {
		svc, mockRepo, mockHotels, mockBookings, _, _ := newRoomService(t)

		// The DATE column scans as midnight UTC; the same instant expressed
		// with a negative offset falls on the previous evening. The room must
		// still be reported unavailable for the booked day.
		bookedAt := time.Date(2026, 8, 31, 20, 0, 0, 0, time.FixedZone("EDT", -4*3600))

		mockHotels.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{
				{HotelID: testHotelID, RoomNumber: 7, Price: 150},
			}, nil)
		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{
				{HotelID: testHotelID, RoomNumber: 7, BookingDate: bookedAt},
			}, nil)

		res, err := svc.GetAvailability(context.Background(), testHotelID, date)

		assert.NoError(t, err)
		assert.Len(t, res.Rooms, 1)
		assert.Equal(t, "Unavailable", res.Rooms[0].Status)
	})

	t.Run("empty inventory yields empty list", func(t *testing.T) {
		svc, mockRepo, mockHotels, mockBookings, _, _ := newRoomService(t)

		mockHotels.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.Room{}, nil)
		mockBookings.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]bookingModel.Booking{}, nil)

		res, err := svc.GetAvailability(context.Background(), testHotelID, date)

		assert.NoError(t, err)
		assert.NotNil(t, res.Rooms)
		assert.Empty(t, res.Rooms)
	})
}

func TestRoomService_Update(t *testing.T) {
	price := 175.0
	req := dto.UpdateRoomRequest{Price: &price}

	t.Run("successful update writes the log", func(t *testing.T) {
		svc, mockRepo, mockHotels, _, mockCache, _ := newRoomService(t)

		mockHotels.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			UpdateWithLog(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any, logEntry model.UpdateLog) error {
				assert.Equal(t, &price, fields[model.FieldPrice])
				assert.Equal(t, testManagerID, logEntry.ManagerID)
				assert.Equal(t, testHotelID, logEntry.HotelID)
				assert.Equal(t, 12, logEntry.RoomNumber)

				return nil
			})
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		err := svc.Update(managerContext(), req, testHotelID, 12)

		assert.NoError(t, err)
	})

	t.Run("hotel not managed by the user", func(t *testing.T) {
		svc, _, mockHotels, _, _, _ := newRoomService(t)

		mockHotels.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(managerContext(), req, testHotelID, 12)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("room not found", func(t *testing.T) {
		svc, mockRepo, mockHotels, _, _, _ := newRoomService(t)

		mockHotels.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		err := svc.Update(managerContext(), req, testHotelID, 99)

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestRoomService_GetRecentUpdates(t *testing.T) {
	svc, mockRepo, _, _, _, _ := newRoomService(t)

	updatedOn := time.Date(2026, 8, 25, 10, 30, 0, 0, time.UTC)

	mockRepo.EXPECT().
		GetRecentUpdates(gomock.Any(), testManagerID, 5).
		Return([]model.UpdateLog{
			{ManagerID: testManagerID, HotelID: testHotelID, RoomNumber: 12, UpdatedOn: updatedOn},
		}, nil)

	res, err := svc.GetRecentUpdates(managerContext())

	assert.NoError(t, err)
	assert.Len(t, res.Updates, 1)
	assert.Equal(t, 12, res.Updates[0].RoomNumber)
}
