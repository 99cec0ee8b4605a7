package assignment

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"studioops/infras/otel"
	"studioops/internal/domains/assignment/model/dto"
	"studioops/internal/domains/assignment/service"
	"studioops/shared/constant"
	"studioops/shared/validator"
	"studioops/transport/http/response"
)

type Handler struct {
	manager service.Manager
	otel    otel.Otel
}

func New(manager service.Manager, otel otel.Otel) Handler {
	return Handler{
		manager: manager,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/assignment-drafts", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.OpenDraft)
		routerGroup.Delete("/{id}", handler.DiscardDraft)
		routerGroup.Post("/{id}/crew", handler.AddCrew)
		routerGroup.Get("/{id}/crew", handler.GetDraftCrew)
		routerGroup.Get("/{id}/available-crew", handler.GetAvailableCrew)
		routerGroup.Patch("/{id}/crew/{crewId}", handler.UpdateAssignment)
		routerGroup.Delete("/{id}/crew/{crewId}", handler.RemoveCrew)
	})
}

// OpenDraft opens a new assignment draft session.
// @Summary Open a draft session
// @Description Open an empty in-memory draft session for staging crew assignments.
// @Tags Assignment
// @Accept json
// @Produce json
// @Success 201 {object} response.Data[dto.DraftResponse] "Draft session opened"
// @Failure 500 {object} response.Error
// @Router /v1/assignment-drafts [post]
// @Security BearerAuth
func (handler *Handler) OpenDraft(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenDraft")
	defer scope.End()

	id := handler.manager.OpenDraft()

	scope.AddEvent("Draft session opened: " + id)

	response.WithJSON(w, http.StatusCreated, dto.DraftResponse{ID: id})
}

// DiscardDraft discards a draft session and everything staged in it.
// @Summary Discard a draft session
// @Description Drop all staged assignments and release the session. Nothing is written to the store.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Success 200 {object} response.Message "Draft discarded successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/assignment-drafts/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DiscardDraft(w http.ResponseWriter, r *http.Request) {
	_, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DiscardDraft")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.manager.DiscardDraft(id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to discard draft")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Draft session discarded: " + id)

	response.WithMessage(w, http.StatusOK, "Draft discarded successfully")
}

// AddCrew stages a crew member in the draft session.
// @Summary Stage crew in a draft
// @Description Stage a crew member. Nothing is persisted until the draft is committed through event creation.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param request body dto.AddCrewRequest true "Add Crew Request"
// @Success 201 {object} response.Data[bookingDto.BookingResponse] "Crew staged successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/assignment-drafts/{id}/crew [post]
// @Security BearerAuth
func (handler *Handler) AddCrew(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddCrew")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AddCrewRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	reconciler, err := handler.manager.Draft(id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find draft session")

		response.WithError(w, err)

		return
	}

	booking, err := reconciler.AddCrew(ctx, req.CrewID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to stage crew")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Crew staged successfully")

	response.WithJSON(w, http.StatusCreated, booking)
}

// GetDraftCrew lists the staged assignments of the draft session.
// @Summary Get staged crew
// @Description List every staged assignment as it will look once committed.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Success 200 {object} response.Data[[]bookingDto.BookingResponse] "Staged assignments"
// @Failure 404 {object} response.Error
// @Router /v1/assignment-drafts/{id}/crew [get]
func (handler *Handler) GetDraftCrew(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDraftCrew")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reconciler, err := handler.manager.Draft(id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find draft session")

		response.WithError(w, err)

		return
	}

	assignments, err := reconciler.Assignments(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get staged crew")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staged crew retrieved successfully")

	response.WithJSON(w, http.StatusOK, assignments)
}

// GetAvailableCrew lists active crew not staged in the draft session.
// @Summary Get available crew for a draft
// @Description Resolve the active roster minus the staged assignments. Recomputed on every call.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Success 200 {object} response.Data[[]crewDto.CrewResponse] "Available crew"
// @Failure 404 {object} response.Error
// @Router /v1/assignment-drafts/{id}/available-crew [get]
func (handler *Handler) GetAvailableCrew(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAvailableCrew")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	reconciler, err := handler.manager.Draft(id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find draft session")

		response.WithError(w, err)

		return
	}

	available, err := reconciler.AvailableCrew(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get available crew")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Available crew retrieved successfully")

	response.WithJSON(w, http.StatusOK, available)
}

// UpdateAssignment patches a staged assignment in the draft session.
// @Summary Update a staged assignment
// @Description Patch salary and payment status of a staged crew member. In-memory only.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param crewId path string true "Crew ID"
// @Param request body dto.UpdateAssignmentRequest true "Update Assignment Request"
// @Success 200 {object} response.Message "Assignment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/assignment-drafts/{id}/crew/{crewId} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAssignment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAssignment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	crewID := chi.URLParam(r, constant.RequestParamCrewID)

	req := dto.UpdateAssignmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	reconciler, err := handler.manager.Draft(id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find draft session")

		response.WithError(w, err)

		return
	}

	if err := reconciler.UpdateAssignment(ctx, crewID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update staged assignment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Staged assignment updated successfully")

	response.WithMessage(w, http.StatusOK, "Assignment updated successfully")
}

// RemoveCrew unstages a crew member from the draft session.
// @Summary Unstage crew from a draft
// @Description Remove the crew member from the staged assignments. Removing an unstaged crew member is a no-op.
// @Tags Assignment
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param crewId path string true "Crew ID"
// @Success 200 {object} response.Message "Crew removed successfully"
// @Failure 404 {object} response.Error
// @Router /v1/assignment-drafts/{id}/crew/{crewId} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveCrew(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveCrew")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	crewID := chi.URLParam(r, constant.RequestParamCrewID)

	reconciler, err := handler.manager.Draft(id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to find draft session")

		response.WithError(w, err)

		return
	}

	if err := reconciler.RemoveCrew(ctx, crewID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unstage crew")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Crew unstaged successfully")

	response.WithMessage(w, http.StatusOK, "Crew removed successfully")
}
