package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	kafkaMocks "hotelier/infras/kafka/mocks"
	"hotelier/infras/otel/mocks"
	hotelMocks "hotelier/internal/domains/hotel/mocks"
	repairMocks "hotelier/internal/domains/repair/mocks"
	"hotelier/internal/domains/repair/model"
	"hotelier/internal/domains/repair/model/dto"
	"hotelier/internal/domains/repair/service"
	roomMocks "hotelier/internal/domains/room/mocks"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/timezone"
)

const (
	testManagerID = "test-manager-id"
	testHotelID   = "7f9cbb57-4a12-4a93-8a8e-3f0d1a6c9b01"
	testCompanyID = "0e1f7c2a-9d34-4b1c-8a6f-2b9d4e7c1a33"
)

func newRepairService(t *testing.T) (
	service.Repair,
	*repairMocks.MockRepair,
	*roomMocks.MockRoom,
	*hotelMocks.MockHotel,
	*cacheMocks.MockRedisCache,
	*kafkaMocks.MockClient,
) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := repairMocks.NewMockRepair(ctrl)
	mockRooms := roomMocks.NewMockRoom(ctrl)
	mockHotels := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Kafka.Topics.RepairRequested = "repair.requested"

	svc := service.New(mockRepo, mockRooms, mockHotels, cfg, mockCache, mockOtel, mockKafka)

	return svc, mockRepo, mockRooms, mockHotels, mockCache, mockKafka
}

func managerContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, testManagerID)
}

func TestRepairService_Place(t *testing.T) {
	req := dto.PlaceRepairRequest{
		CompanyID:  testCompanyID,
		HotelID:    testHotelID,
		RoomNumber: 12,
	}

	today := timezone.Format(timezone.Now(), constant.BookingDateFormat)

	t.Run("successful placement", func(t *testing.T) {
		svc, mockRepo, mockRooms, mockHotels, _, mockKafka := newRepairService(t)

		mockHotels.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRooms.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			CompanyExist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			PlaceRequest(gomock.Any(), gomock.Any(), testManagerID).
			DoAndReturn(func(_ context.Context, repair model.RoomRepair, _ string) (int64, error) {
				assert.Equal(t, testCompanyID, repair.CompanyID)
				assert.Equal(t, testHotelID, repair.HotelID)
				assert.Equal(t, 12, repair.RoomNumber)

				return int64(41), nil
			})
		mockKafka.EXPECT().
			SendMessages(gomock.Any(), "repair.requested", gomock.Any()).
			Return(nil).
			AnyTimes()

		res, err := svc.Place(managerContext(), req)

		assert.NoError(t, err)
		assert.Equal(t, int64(41), res.RepairID)
		assert.Equal(t, today, res.RepairDate)
	})

	t.Run("hotel not managed by the user", func(t *testing.T) {
		svc, _, _, mockHotels, _, _ := newRepairService(t)

		mockHotels.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Place(managerContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("room does not exist", func(t *testing.T) {
		svc, _, mockRooms, mockHotels, _, _ := newRepairService(t)

		mockHotels.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRooms.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Place(managerContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("maintenance company does not exist", func(t *testing.T) {
		svc, mockRepo, mockRooms, mockHotels, _, _ := newRepairService(t)

		mockHotels.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRooms.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)
		mockRepo.EXPECT().
			CompanyExist(gomock.Any(), gomock.Any()).
			Return(false, nil)

		_, err := svc.Place(managerContext(), req)

		assert.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

}

func TestRepairService_GetCompanies(t *testing.T) {
	t.Run("cache miss fetches from repository", func(t *testing.T) {
		svc, mockRepo, _, _, mockCache, _ := newRepairService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss")).
			Times(2)
		mockRepo.EXPECT().
			CountCompanies(gomock.Any(), gomock.Any()).
			Return(2, nil)
		mockRepo.EXPECT().
			GetAllCompanies(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]model.MaintenanceCompany{
				{ID: testCompanyID, Name: "FixAll", IsCertified: true},
				{ID: "company-2", Name: "Patchwork", IsCertified: false},
			}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
			Return(nil).
			AnyTimes()

		res, err := svc.GetCompanies(managerContext(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

		assert.NoError(t, err)
		assert.Len(t, res.Companies, 2)
		assert.Equal(t, 2, res.TotalData)
		assert.True(t, res.Companies[0].IsCertified)
	})
}

func TestRepairService_GetHistory(t *testing.T) {
	repairDate := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)

	t.Run("successful retrieval", func(t *testing.T) {
		svc, mockRepo, _, _, _, _ := newRepairService(t)

		mockRepo.EXPECT().
			GetHistoryForManager(gomock.Any(), testManagerID).
			Return([]model.HistoryEntry{
				{RepairID: 41, CompanyID: testCompanyID, CompanyName: "FixAll", HotelID: testHotelID, HotelName: "Seaside", RoomNumber: 12, RepairDate: repairDate},
			}, nil)

		res, err := svc.GetHistory(managerContext())

		assert.NoError(t, err)
		assert.Len(t, res.Entries, 1)
		assert.Equal(t, "FixAll", res.Entries[0].CompanyName)
		assert.Equal(t, "2026-09-10", res.Entries[0].RepairDate)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, _, _, _, _ := newRepairService(t)

		mockRepo.EXPECT().
			GetHistoryForManager(gomock.Any(), testManagerID).
			Return(nil, errors.New("database error"))

		_, err := svc.GetHistory(managerContext())

		assert.Error(t, err)
	})
}
