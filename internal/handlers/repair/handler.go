package repair

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/repair/model"
	"hotelier/internal/domains/repair/model/dto"
	"hotelier/internal/domains/repair/service"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	"hotelier/shared/validator"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Repair
	otel    otel.Otel
}

func New(service service.Repair, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/repairs", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.PlaceRepair)
		routerGroup.Get("/companies", handler.GetCompanies)
		routerGroup.Get("/history", handler.GetRepairHistory)
	})
}

// GetCompanies retrieves the maintenance companies.
// @Summary Get maintenance companies
// @Description Retrieve all maintenance companies with optional filtering and pagination.
// @Tags Repair
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param is_certified query bool false "Filter by certification"
// @Success 200 {object} dto.GetCompaniesResponse "List of maintenance companies"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/repairs/companies [get]
// @Security BearerAuth
func (handler *Handler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	certified := r.URL.Query().Get(model.FieldIsCertified)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if certified != constant.Empty {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsCertified,
			Operator: gDto.FilterOperatorEq,
			Value:    shared.ConvertStringToBool(certified),
			Table:    model.CompanyTableName,
		})
	}

	companies, err := handler.service.GetCompanies(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance companies")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance companies retrieved successfully")

	response.WithJSON(w, http.StatusOK, companies)
}

// PlaceRepair places a repair request for a room of a managed hotel.
// @Summary Place a repair request
// @Description Book a maintenance company for a room of a hotel managed by the authenticated manager.
// @Tags Repair
// @Accept json
// @Produce json
// @Param request body dto.PlaceRepairRequest true "Place Repair Request"
// @Success 201 {object} dto.RepairResponse "Repair placed successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/repairs [post]
// @Security BearerAuth
func (handler *Handler) PlaceRepair(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PlaceRepair")
	defer scope.End()

	req := dto.PlaceRepairRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Place(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to place repair request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Repair placed successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetRepairHistory retrieves the repairs requested by the manager.
// @Summary Get repair history
// @Description Retrieve the repairs requested by the authenticated manager, newest first.
// @Tags Repair
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetHistoryResponse "Repair history"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/repairs/history [get]
// @Security BearerAuth
func (handler *Handler) GetRepairHistory(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRepairHistory")
	defer scope.End()

	history, err := handler.service.GetHistory(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get repair history")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Repair history retrieved successfully")

	response.WithJSON(w, http.StatusOK, history)
}
