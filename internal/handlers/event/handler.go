package event

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"studioops/infras/otel"
	assignmentDto "studioops/internal/domains/assignment/model/dto"
	assignmentService "studioops/internal/domains/assignment/service"
	"studioops/internal/domains/event/model"
	"studioops/internal/domains/event/model/dto"
	"studioops/internal/domains/event/service"
	"studioops/shared/constant"
	gDto "studioops/shared/dto"
	"studioops/shared/validator"
	"studioops/transport/http/response"
)

type Handler struct {
	service     service.Event
	assignments assignmentService.Manager
	otel        otel.Otel
}

func New(service service.Event, assignments assignmentService.Manager, otel otel.Otel) Handler {
	return Handler{
		service:     service,
		assignments: assignments,
		otel:        otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/events", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEvent)
		routerGroup.Get("/", handler.GetEvents)
		routerGroup.Post("/link-inquiry", handler.LinkInquiry)
		routerGroup.Get("/{id}", handler.GetEventByID)
		routerGroup.Patch("/{id}", handler.UpdateEvent)
		routerGroup.Delete("/{id}", handler.DeleteEvent)

		routerGroup.Post("/{id}/crew", handler.AddCrew)
		routerGroup.Get("/{id}/crew", handler.GetEventCrew)
		routerGroup.Get("/{id}/available-crew", handler.GetAvailableCrew)
		routerGroup.Patch("/{id}/crew/{crewId}", handler.UpdateAssignment)
		routerGroup.Delete("/{id}/crew/{crewId}", handler.RemoveCrew)
	})
}

// CreateEvent handles the creation of a new event.
// @Summary Create a new event
// @Description Create an event; when draft_id names an assignment draft session it is committed against the event and per-crew results are returned.
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Create Event Request"
// @Success 201 {object} response.Data[dto.CreateEventResponse] "Event created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events [post]
// @Security BearerAuth
func (handler *Handler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEvent")
	defer scope.End()

	req := dto.CreateEventRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create event")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetEvents retrieves all events based on query parameters.
// @Summary Get all events
// @Description Retrieve all events with optional filtering and pagination.
// @Tags Event
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param event_date query string false "Filter by event date (YYYY-MM-DD)"
// @Param inquiry_id query string false "Filter by linked inquiry ID"
// @Success 200 {object} response.Data[dto.GetEventsResponse] "List of events"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events [get]
func (handler *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEvents")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)
	eventDate := r.URL.Query().Get(model.FieldDate)
	inquiryID := r.URL.Query().Get(model.FieldInquiryID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if eventDate != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldDate,
			Operator: gDto.FilterOperatorEq,
			Value:    eventDate,
			Table:    model.TableName,
		})
	}

	if inquiryID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldInquiryID,
			Operator: gDto.FilterOperatorEq,
			Value:    inquiryID,
			Table:    model.TableName,
		})
	}

	events, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get events")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Events retrieved successfully")

	response.WithJSON(w, http.StatusOK, events)
}

// GetEventByID retrieves an event by its ID.
// @Summary Get an event by ID
// @Description Retrieve an event by its unique identifier.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Data[dto.EventResponse] "Event details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id} [get]
func (handler *Handler) GetEventByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	event, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event retrieved successfully")

	response.WithJSON(w, http.StatusOK, event)
}

// UpdateEvent updates an existing event by its ID.
// @Summary Update an event by ID
// @Description Update the details of an existing event, including its status.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.UpdateEventRequest true "Update Event Request"
// @Success 200 {object} response.Message "Event updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateEventRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update event")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Event updated successfully")
}

// DeleteEvent deletes an event by its ID, cascading to its bookings.
// @Summary Delete an event by ID
// @Description Delete an event and every crew booking attached to it.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Message "Event deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEvent")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete event")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Event deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Event deleted successfully")
}

// LinkInquiry projects an inquiry's contact details onto an event draft.
// @Summary Link an inquiry to an event draft
// @Description Copy the inquiry's name and email onto the draft's customer fields and set inquiry_id. The draft is returned, not persisted.
// @Tags Event
// @Accept json
// @Produce json
// @Param request body dto.LinkInquiryRequest true "Link Inquiry Request"
// @Success 200 {object} response.Data[dto.EventDraft] "Patched draft"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/link-inquiry [post]
// @Security BearerAuth
func (handler *Handler) LinkInquiry(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".LinkInquiry")
	defer scope.End()

	req := dto.LinkInquiryRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	draft, err := handler.service.LinkInquiry(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to link inquiry")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry linked to draft successfully")

	response.WithJSON(w, http.StatusOK, draft)
}

// AddCrew books a crew member onto an existing event.
// @Summary Assign crew to an event
// @Description Create a pending booking for the crew member on the event.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body assignmentDto.AddCrewRequest true "Add Crew Request"
// @Success 201 {object} response.Data[bookingDto.BookingResponse] "Crew assigned successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id}/crew [post]
// @Security BearerAuth
func (handler *Handler) AddCrew(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCrew")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := assignmentDto.AddCrewRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.assignments.ForEvent(id).AddCrew(ctx, req.CrewID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign crew to event")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Crew assigned to event successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetEventCrew lists the event's crew assignments.
// @Summary Get event crew
// @Description List every booking for the event in assignment order, with crew names.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Data[[]bookingDto.BookingResponse] "Event crew assignments"
// @Failure 500 {object} response.Error
// @Router /v1/events/{id}/crew [get]
func (handler *Handler) GetEventCrew(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEventCrew")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	assignments, err := handler.assignments.ForEvent(id).Assignments(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get event crew")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Event crew retrieved successfully")

	response.WithJSON(w, http.StatusOK, assignments)
}

// GetAvailableCrew lists active crew not assigned to the event.
// @Summary Get available crew for an event
// @Description Resolve the active roster minus the event's current assignments.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Data[[]crewDto.CrewResponse] "Available crew"
// @Failure 500 {object} response.Error
// @Router /v1/events/{id}/available-crew [get]
func (handler *Handler) GetAvailableCrew(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableCrew")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	available, err := handler.assignments.ForEvent(id).AvailableCrew(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available crew")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available crew retrieved successfully")

	response.WithJSON(w, http.StatusOK, available)
}

// UpdateAssignment patches a crew member's booking on the event.
// @Summary Update an event crew assignment
// @Description Patch salary and payment status for the crew member's booking.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param crewId path string true "Crew ID"
// @Param request body assignmentDto.UpdateAssignmentRequest true "Update Assignment Request"
// @Success 200 {object} response.Message "Assignment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/events/{id}/crew/{crewId} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAssignment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	crewID := chi.URLParam(r, constant.RequestParamCrewID)

	req := assignmentDto.UpdateAssignmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.assignments.ForEvent(id).UpdateAssignment(ctx, crewID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update assignment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Assignment updated successfully")

	response.WithMessage(w, http.StatusOK, "Assignment updated successfully")
}

// RemoveCrew removes a crew member's booking from the event.
// @Summary Remove crew from an event
// @Description Delete the crew member's booking. Removing an unassigned crew member is a no-op.
// @Tags Event
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param crewId path string true "Crew ID"
// @Success 200 {object} response.Message "Crew removed successfully"
// @Failure 500 {object} response.Error
// @Router /v1/events/{id}/crew/{crewId} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveCrew(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveCrew")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	crewID := chi.URLParam(r, constant.RequestParamCrewID)

	if err := handler.assignments.ForEvent(id).RemoveCrew(ctx, crewID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove crew from event")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Crew removed from event successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Crew removed successfully")
}
