package hotel

import (
	"net/http"
	"strconv"

	"hotelier/infras/otel"
	"hotelier/internal/domains/hotel/model"
	"hotelier/internal/domains/hotel/model/dto"
	"hotelier/internal/domains/hotel/service"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/nearby", handler.GetNearbyHotels)
		routerGroup.Get("/managed", handler.GetManagedHotels)
		routerGroup.Get("/{id}", handler.GetHotelByID)
	})
}

// GetHotels retrieves all hotels based on query parameters.
// @Summary Get all hotels
// @Description Retrieve all hotels with optional filtering and pagination.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param name query string false "Filter by hotel name"
// @Success 200 {object} dto.GetHotelsResponse "List of hotels"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels [get]
// @Security BearerAuth
func (handler *Handler) GetHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	hotels, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotels retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetNearbyHotels retrieves hotels close to a coordinate.
// @Summary Get nearby hotels
// @Description Retrieve hotels within range of the given coordinate, closest first.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param latitude query number true "Latitude of the search origin"
// @Param longitude query number true "Longitude of the search origin"
// @Success 200 {object} dto.GetNearbyHotelsResponse "List of nearby hotels"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/nearby [get]
// @Security BearerAuth
func (handler *Handler) GetNearbyHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetNearbyHotels")
	defer scope.End()

	latitude, err := strconv.ParseFloat(r.URL.Query().Get(constant.RequestParamLatitude), 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("latitude must be a valid number"))

		return
	}

	longitude, err := strconv.ParseFloat(r.URL.Query().Get(constant.RequestParamLongitude), 64)
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("longitude must be a valid number"))

		return
	}

	req := dto.NearbyRequest{
		Latitude:  latitude,
		Longitude: longitude,
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate nearby request")

		response.WithError(w, err)

		return
	}

	hotels, err := handler.service.GetNearby(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get nearby hotels")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Nearby hotels retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetManagedHotels retrieves the hotels managed by the authenticated manager.
// @Summary Get managed hotels
// @Description Retrieve the hotels managed by the currently authenticated manager.
// @Tags Hotel
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetHotelsResponse "List of managed hotels"
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/managed [get]
// @Security BearerAuth
func (handler *Handler) GetManagedHotels(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetManagedHotels")
	defer scope.End()

	hotels, err := handler.service.GetManaged(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get managed hotels")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Managed hotels retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotels)
}

// GetHotelByID retrieves a hotel by its ID.
// @Summary Get a hotel by ID
// @Description Retrieve a hotel by its unique identifier.
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} dto.HotelResponse "Hotel details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetHotelByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotelByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	hotel, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotel by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Hotel retrieved successfully")

	response.WithJSON(w, http.StatusOK, hotel)
}
