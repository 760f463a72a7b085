package editor

import (
	"net/http"
	"prism/infras/otel"
	"prism/internal/domains/editor/model"
	"prism/internal/domains/editor/model/dto"
	"prism/internal/domains/editor/service"
	"prism/shared"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	"prism/shared/validator"
	"prism/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Editor
	otel    otel.Otel
}

func New(service service.Editor, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/editors", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateEditor)
		routerGroup.Get("/", handler.GetEditors)
		routerGroup.Get("/{id}", handler.GetEditorByID)
		routerGroup.Patch("/{id}", handler.UpdateEditor)
		routerGroup.Delete("/{id}", handler.DeleteEditor)
	})
}

// CreateEditor handles the creation of a new editor.
func (handler *Handler) CreateEditor(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateEditor")
	defer scope.End()

	req := dto.CreateEditorRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create editor")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Editor created successfully")
}

// GetEditors retrieves all editors based on query parameters.
func (handler *Handler) GetEditors(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEditors")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	editorType := r.URL.Query().Get(model.FieldEditorType)
	active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive))

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if editorType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEditorType,
			Operator: gDto.FilterOperatorEq,
			Value:    editorType,
			Table:    model.TableName,
		})
	}

	if active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	editors, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get editors")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, editors)
}

// GetEditorByID retrieves a single editor by its ID.
func (handler *Handler) GetEditorByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEditorByID")
	defer scope.End()

	id := chi.URLParam(r, "id")

	editor, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get editor")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, editor)
}

// UpdateEditor updates an existing editor.
func (handler *Handler) UpdateEditor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateEditor")
	defer scope.End()

	id := chi.URLParam(r, "id")

	req := dto.UpdateEditorRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update editor")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Editor updated successfully")
}

// DeleteEditor deletes an editor by its ID.
func (handler *Handler) DeleteEditor(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteEditor")
	defer scope.End()

	id := chi.URLParam(r, "id")

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete editor")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Editor deleted successfully")
}
