package leave

import (
	"net/http"
	"prism/infras/otel"
	"prism/internal/domains/leave/model"
	"prism/internal/domains/leave/model/dto"
	"prism/internal/domains/leave/service"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	"prism/shared/validator"
	"prism/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Leave
	otel    otel.Otel
}

func New(service service.Leave, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/leaves", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateLeave)
		routerGroup.Get("/", handler.GetLeaves)
		routerGroup.Get("/{id}", handler.GetLeaveByID)
		routerGroup.Delete("/{id}", handler.DeleteLeave)
	})
}

// CreateLeave records a leave span for an editor.
func (handler *Handler) CreateLeave(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateLeave")
	defer scope.End()

	req := dto.CreateLeaveRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create editor leave")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Editor leave created successfully")
}

// GetLeaves retrieves editor leaves based on query parameters.
func (handler *Handler) GetLeaves(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLeaves")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	editorID := r.URL.Query().Get(model.FieldEditorID)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if editorID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEditorID,
			Operator: gDto.FilterOperatorEq,
			Value:    editorID,
			Table:    model.TableName,
		})
	}

	leaves, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get editor leaves")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, leaves)
}

// GetLeaveByID retrieves a single editor leave by its ID.
func (handler *Handler) GetLeaveByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLeaveByID")
	defer scope.End()

	id := chi.URLParam(r, "id")

	leave, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get editor leave")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, leave)
}

// DeleteLeave removes an editor leave by its ID.
func (handler *Handler) DeleteLeave(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteLeave")
	defer scope.End()

	id := chi.URLParam(r, "id")

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete editor leave")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Editor leave deleted successfully")
}
