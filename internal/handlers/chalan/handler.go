package chalan

import (
	"net/http"
	"prism/infras/otel"
	"prism/internal/domains/chalan/model"
	"prism/internal/domains/chalan/model/dto"
	"prism/internal/domains/chalan/service"
	"prism/shared"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	"prism/shared/validator"
	"prism/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Chalan
	otel    otel.Otel
}

func New(service service.Chalan, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/chalans", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateChalan)
		routerGroup.Get("/", handler.GetChalans)
		routerGroup.Get("/{id}", handler.GetChalanByID)
		routerGroup.Post("/{id}/cancel", handler.CancelChalan)
	})
}

// CreateChalan issues a new chalan with its line items.
func (handler *Handler) CreateChalan(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateChalan")
	defer scope.End()

	req := dto.CreateChalanRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create chalan")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Chalan issued successfully")
}

// GetChalans retrieves all chalans based on query parameters.
func (handler *Handler) GetChalans(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChalans")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	customerID := r.URL.Query().Get(model.FieldCustomerID)
	projectID := r.URL.Query().Get(model.FieldProjectID)
	cancelled := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldIsCancelled))

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if customerID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCustomerID,
			Operator: gDto.FilterOperatorEq,
			Value:    customerID,
			Table:    model.TableName,
		})
	}

	if projectID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldProjectID,
			Operator: gDto.FilterOperatorEq,
			Value:    projectID,
			Table:    model.TableName,
		})
	}

	if cancelled != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldIsCancelled,
			Operator: gDto.FilterOperatorEq,
			Value:    *cancelled,
			Table:    model.TableName,
		})
	}

	chalans, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get chalans")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, chalans)
}

// GetChalanByID retrieves a single chalan with its items.
func (handler *Handler) GetChalanByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetChalanByID")
	defer scope.End()

	id := chi.URLParam(r, "id")

	chalan, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get chalan")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, chalan)
}

// CancelChalan cancels an issued chalan with a reason.
func (handler *Handler) CancelChalan(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelChalan")
	defer scope.End()

	id := chi.URLParam(r, "id")

	req := dto.CancelChalanRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Cancel(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel chalan")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Chalan cancelled successfully")
}
