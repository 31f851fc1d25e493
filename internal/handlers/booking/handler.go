package booking

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/booking/model/dto"
	"hotelier/internal/domains/booking/service"
	"hotelier/shared/constant"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/recent", handler.GetRecentBookings)
		routerGroup.Get("/history", handler.GetBookingHistory)
		routerGroup.Get("/regulars", handler.GetRegularCustomers)
	})
}

// CreateBooking books a room for a single date.
// @Summary Create a new booking
// @Description Book a room of a hotel for a single date.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} dto.BookingResponse "Booking created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Booking created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetRecentBookings retrieves the customer's most recent bookings.
// @Summary Get recent bookings
// @Description Retrieve the most recent bookings of the authenticated customer.
// @Tags Booking
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetRecentBookingsResponse "Recent bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/recent [get]
// @Security BearerAuth
func (handler *Handler) GetRecentBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecentBookings")
	defer scope.End()

	bookings, err := handler.service.GetRecent(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Recent bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingHistory retrieves the booking history of the manager's hotels.
// @Summary Get booking history
// @Description Retrieve the booking history of every hotel managed by the authenticated manager, optionally restricted to a date range.
// @Tags Booking
// @Accept json
// @Produce json
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.GetHistoryResponse "Booking history"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/history [get]
// @Security BearerAuth
func (handler *Handler) GetBookingHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingHistory")
	defer scope.End()

	from := r.URL.Query().Get(constant.RequestParamFrom)
	to := r.URL.Query().Get(constant.RequestParamTo)

	history, err := handler.service.GetHistory(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking history retrieved successfully")

	response.WithJSON(w, http.StatusOK, history)
}

// GetRegularCustomers retrieves the customers with the most bookings for a hotel.
// @Summary Get regular customers
// @Description Retrieve the customers with the most bookings for one of the manager's hotels.
// @Tags Booking
// @Accept json
// @Produce json
// @Param hotel_id query string true "Hotel ID"
// @Success 200 {object} dto.GetRegularCustomersResponse "Regular customers"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/regulars [get]
// @Security BearerAuth
func (handler *Handler) GetRegularCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRegularCustomers")
	defer scope.End()

	hotelID := r.URL.Query().Get(constant.RequestParamHotelID)

	if err := validator.ValidateVar(hotelID, "required,uuid4"); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate hotel id")

		response.WithError(w, err)

		return
	}

	customers, err := handler.service.GetRegularCustomers(ctx, hotelID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get regular customers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Regular customers retrieved successfully")

	response.WithJSON(w, http.StatusOK, customers)
}
