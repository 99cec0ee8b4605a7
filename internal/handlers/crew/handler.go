package crew

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"studioops/infras/otel"
	"studioops/internal/domains/crew/model"
	"studioops/internal/domains/crew/model/dto"
	"studioops/internal/domains/crew/service"
	"studioops/shared"
	"studioops/shared/constant"
	gDto "studioops/shared/dto"
	"studioops/shared/validator"
	"studioops/transport/http/response"
)

type Handler struct {
	service service.Crew
	otel    otel.Otel
}

func New(service service.Crew, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/crew", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCrew)
		routerGroup.Get("/", handler.GetCrew)
		routerGroup.Patch("/{id}", handler.UpdateCrew)
		routerGroup.Delete("/{id}", handler.DeactivateCrew)
	})
}

// CreateCrew handles the creation of a new crew member.
// @Summary Create a new crew member
// @Description Add a crew member to the roster. New members start active.
// @Tags Crew
// @Accept json
// @Produce json
// @Param request body dto.CreateCrewRequest true "Create Crew Request"
// @Success 201 {object} response.Message "Crew member created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crew [post]
// @Security BearerAuth
func (handler *Handler) CreateCrew(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCrew")
	defer scope.End()

	req := dto.CreateCrewRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create crew member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Crew member created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Crew member created successfully")
}

// GetCrew retrieves crew members based on query parameters.
// @Summary Get crew members
// @Description Retrieve crew members with optional filtering and pagination.
// @Tags Crew
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param role query string false "Filter by role"
// @Param is_active query string false "Filter by active flag (true/false)"
// @Success 200 {object} response.Data[dto.GetCrewResponse] "List of crew members"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crew [get]
func (handler *Handler) GetCrew(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCrew")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	role := r.URL.Query().Get(model.FieldRole)
	isActive := r.URL.Query().Get(model.FieldIsActive)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if role != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldRole,
			Operator: gDto.FilterOperatorEq,
			Value:    role,
			Table:    model.TableName,
		})
	}

	if isActive != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsActive,
			Operator: gDto.FilterOperatorEq,
			Value:    shared.ConvertStringToBool(isActive),
			Table:    model.TableName,
		})
	}

	crew, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get crew members")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Crew members retrieved successfully")

	response.WithJSON(w, http.StatusOK, crew)
}

// UpdateCrew updates an existing crew member by ID.
// @Summary Update a crew member by ID
// @Description Update the name, email or role of a crew member.
// @Tags Crew
// @Accept json
// @Produce json
// @Param id path string true "Crew ID"
// @Param request body dto.UpdateCrewRequest true "Update Crew Request"
// @Success 200 {object} response.Message "Crew member updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crew/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCrew(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCrew")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCrewRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update crew member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Crew member updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Crew member updated successfully")
}

// DeactivateCrew deactivates a crew member by ID.
// @Summary Deactivate a crew member by ID
// @Description Mark the crew member inactive. Existing bookings stay untouched; the member no longer appears in availability.
// @Tags Crew
// @Accept json
// @Produce json
// @Param id path string true "Crew ID"
// @Success 200 {object} response.Message "Crew member deactivated successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/crew/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeactivateCrew(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeactivateCrew")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Deactivate(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to deactivate crew member")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Crew member deactivated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Crew member deactivated successfully")
}
