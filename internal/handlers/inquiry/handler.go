package inquiry

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"studioops/infras/otel"
	"studioops/internal/domains/inquiry/model"
	"studioops/internal/domains/inquiry/service"
	"studioops/shared/constant"
	gDto "studioops/shared/dto"
	"studioops/transport/http/response"
)

type Handler struct {
	service service.Inquiry
	otel    otel.Otel
}

func New(service service.Inquiry, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/inquiries", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetInquiries)
		routerGroup.Get("/{id}", handler.GetInquiryByID)
	})
}

// GetInquiries retrieves inquiries based on query parameters.
// @Summary Get inquiries
// @Description Retrieve inquiries with optional filtering and pagination. Read-only; inquiries are owned by the inquiry system.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetInquiriesResponse] "List of inquiries"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries [get]
func (handler *Handler) GetInquiries(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiries")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(model.FieldStatus)

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

	inquiries, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiries")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiries retrieved successfully")

	response.WithJSON(w, http.StatusOK, inquiries)
}

// GetInquiryByID retrieves an inquiry by its ID.
// @Summary Get an inquiry by ID
// @Description Retrieve an inquiry by its unique identifier.
// @Tags Inquiry
// @Accept json
// @Produce json
// @Param id path string true "Inquiry ID"
// @Success 200 {object} response.Data[dto.InquiryResponse] "Inquiry details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/inquiries/{id} [get]
func (handler *Handler) GetInquiryByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetInquiryByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	inquiry, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get inquiry by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Inquiry retrieved successfully")

	response.WithJSON(w, http.StatusOK, inquiry)
}
