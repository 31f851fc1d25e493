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
	"hotelier/infras/otel/mocks"
	hotelMocks "hotelier/internal/domains/hotel/mocks"
	"hotelier/internal/domains/hotel/model"
	"hotelier/internal/domains/hotel/model/dto"
	"hotelier/internal/domains/hotel/service"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
)

func newHotelService(t *testing.T) (service.Hotel, *hotelMocks.MockHotel, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := hotelMocks.NewMockHotel(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo, mockCache
}

func TestHotelService_Get(t *testing.T) {
	established := time.Date(1998, 5, 14, 0, 0, 0, 0, time.UTC)

	t.Run("successful retrieval on cache miss", func(t *testing.T) {
		svc, mockRepo, mockCache := newHotelService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Hotel{ID: "hotel-1", Name: "Seaside", Latitude: 10, Longitude: 20, DateEstablished: established}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
			Return(nil).
			AnyTimes()

		res, err := svc.Get(context.Background(), "hotel-1")

		assert.NoError(t, err)
		assert.Equal(t, "Seaside", res.Name)
		assert.Equal(t, "1998-05-14", res.DateEstablished)
	})

	t.Run("hotel not found", func(t *testing.T) {
		svc, mockRepo, mockCache := newHotelService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Hotel{}, nil)

		_, err := svc.Get(context.Background(), "missing")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestHotelService_GetNearby(t *testing.T) {
	t.Run("returns hotels ordered by the repository", func(t *testing.T) {
		svc, mockRepo, mockCache := newHotelService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			GetNearby(gomock.Any(), float64(10), float64(20), model.NearbyRadius).
			Return([]model.NearbyHotel{
				{ID: "hotel-1", Name: "Close", Distance: 5},
				{ID: "hotel-2", Name: "Far", Distance: 25},
			}, nil)
		mockCache.EXPECT().
			Save(gomock.Any(), gomock.Any(), gomock.Any(), 3600).
			Return(nil).
			AnyTimes()

		res, err := svc.GetNearby(context.Background(), dto.NearbyRequest{Latitude: 10, Longitude: 20})

		assert.NoError(t, err)
		assert.Len(t, res.Hotels, 2)
		assert.Equal(t, "Close", res.Hotels[0].Name)
		assert.Equal(t, float64(5), res.Hotels[0].Distance)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, mockRepo, mockCache := newHotelService(t)

		mockCache.EXPECT().
			Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(errors.New("cache miss"))
		mockRepo.EXPECT().
			GetNearby(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("database error"))

		_, err := svc.GetNearby(context.Background(), dto.NearbyRequest{Latitude: 10, Longitude: 20})

		assert.Error(t, err)
	})
}

func TestHotelService_GetManaged(t *testing.T) {
	svc, mockRepo, _ := newHotelService(t)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "manager-1")

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, filter gDto.FilterGroup, _ ...string) ([]model.Hotel, error) {
			assert.Len(t, filter.Filters, 1)

			return []model.Hotel{{ID: "hotel-1", Name: "Seaside", ManagerUserID: "manager-1"}}, nil
		})

	res, err := svc.GetManaged(ctx)

	assert.NoError(t, err)
	assert.Len(t, res.Hotels, 1)
	assert.Equal(t, 1, res.TotalData)
}
