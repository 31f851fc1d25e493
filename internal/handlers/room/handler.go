package room

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/room/model/dto"
	"hotelier/internal/domains/room/service"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Room
	otel    otel.Otel
}

func New(service service.Room, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels/{id}/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetRooms)
		routerGroup.Get("/availability", handler.GetAvailability)
		routerGroup.Patch("/{number}", handler.UpdateRoom)
		routerGroup.Post("/{number}/image", handler.UploadRoomImage)
	})

	router.Route("/rooms", func(routerGroup chi.Router) {
		routerGroup.Get("/updates", handler.GetRecentUpdates)
	})
}

// GetRooms retrieves all rooms of a hotel.
// @Summary Get hotel rooms
// @Description Retrieve all rooms of a hotel with optional pagination.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} dto.GetRoomsResponse "List of rooms"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/rooms [get]
// @Security BearerAuth
func (handler *Handler) GetRooms(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRooms")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamID)

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	rooms, err := handler.service.GetAll(ctx, hotelID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get rooms")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Rooms retrieved successfully")

	response.WithJSON(w, http.StatusOK, rooms)
}

// GetAvailability retrieves the availability of every room of a hotel on a date.
// @Summary Get room availability
// @Description Retrieve every room of a hotel with its availability on the given date.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param date query string true "Date to check (YYYY-MM-DD)"
// @Success 200 {object} dto.GetAvailabilityResponse "Room availability"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/rooms/availability [get]
// @Security BearerAuth
func (handler *Handler) GetAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailability")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamID)
	date := r.URL.Query().Get(constant.RequestParamDate)

	if err := validator.ValidateVar(date, "required,datetime=2006-01-02"); err != nil {
		response.WithError(w, failure.BadRequestFromString("date must use the YYYY-MM-DD format"))

		return
	}

	availability, err := handler.service.GetAvailability(ctx, hotelID, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get room availability")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Room availability retrieved successfully")

	response.WithJSON(w, http.StatusOK, availability)
}

// UpdateRoom updates a room of a managed hotel.
// @Summary Update a room
// @Description Update the price of a room in a hotel managed by the authenticated manager.
// @Tags Room
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param number path int true "Room number"
// @Param request body dto.UpdateRoomRequest true "Update Room Request"
// @Success 200 {object} response.Message "Room updated successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/rooms/{number} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRoom(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRoom")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamID)

	roomNumber, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamRoomNumber))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("room number must be a valid integer"))

		return
	}

	req := dto.UpdateRoomRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, hotelID, roomNumber); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update room")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Room updated successfully")
}

// UploadRoomImage uploads an image for a room of a managed hotel.
// @Summary Upload a room image
// @Description Upload an image for a room in a hotel managed by the authenticated manager.
// @Tags Room
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Hotel ID"
// @Param number path int true "Room number"
// @Param image formData file true "Room image (png or jpeg, max 5 MB)"
// @Success 200 {object} dto.UploadRoomImageResponse "Image uploaded successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/hotels/{id}/rooms/{number}/image [post]
// @Security BearerAuth
func (handler *Handler) UploadRoomImage(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadRoomImage")
	defer scope.End()

	hotelID := chi.URLParam(r, constant.RequestParamID)

	roomNumber, err := shared.ConvertStringToInt(chi.URLParam(r, constant.RequestParamRoomNumber))
	if err != nil {
		response.WithError(w, failure.BadRequestFromString("room number must be a valid integer"))

		return
	}

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")
		response.WithError(w, err)

		return
	}

	req := dto.UploadRoomImageRequest{}

	file, fileHeader, err := r.FormFile("image")
	if err == nil {
		req.Image = fileHeader
		req.ImageFile = file

		defer file.Close()
	}

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.UploadImage(ctx, req, hotelID, roomNumber)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload room image")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Room image uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, res)
}

// GetRecentUpdates retrieves the manager's most recent room updates.
// @Summary Get recent room updates
// @Description Retrieve the most recent room updates made by the authenticated manager.
// @Tags Room
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetUpdateLogsResponse "Recent room updates"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/rooms/updates [get]
// @Security BearerAuth
func (handler *Handler) GetRecentUpdates(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRecentUpdates")
	defer scope.End()

	updates, err := handler.service.GetRecentUpdates(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get recent room updates")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Recent room updates retrieved successfully")

	response.WithJSON(w, http.StatusOK, updates)
}
