package project

import (
	"net/http"
	"prism/infras/otel"
	"prism/internal/domains/project/model"
	"prism/internal/domains/project/model/dto"
	"prism/internal/domains/project/service"
	"prism/shared"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	"prism/shared/validator"
	"prism/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Project
	otel    otel.Otel
}

func New(service service.Project, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/projects", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateProject)
		routerGroup.Get("/", handler.GetProjects)
		routerGroup.Get("/{id}", handler.GetProjectByID)
		routerGroup.Patch("/{id}", handler.UpdateProject)
		routerGroup.Delete("/{id}", handler.DeleteProject)
	})
}

// CreateProject handles the creation of a new project.
func (handler *Handler) CreateProject(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateProject")
	defer scope.End()

	req := dto.CreateProjectRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create project")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Project created successfully")
}

// GetProjects retrieves all projects based on query parameters.
func (handler *Handler) GetProjects(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjects")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	projectType := r.URL.Query().Get(model.FieldProjectType)
	customerID := r.URL.Query().Get(model.FieldCustomerID)
	active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive))

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if projectType != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldProjectType,
			Operator: gDto.FilterOperatorEq,
			Value:    projectType,
			Table:    model.TableName,
		})
	}

	if customerID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldCustomerID,
			Operator: gDto.FilterOperatorEq,
			Value:    customerID,
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

	projects, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get projects")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, projects)
}

// GetProjectByID retrieves a single project by its ID.
func (handler *Handler) GetProjectByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetProjectByID")
	defer scope.End()

	id := chi.URLParam(r, "id")

	project, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get project")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, project)
}

// UpdateProject updates an existing project.
func (handler *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateProject")
	defer scope.End()

	id := chi.URLParam(r, "id")

	req := dto.UpdateProjectRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update project")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Project updated successfully")
}

// DeleteProject deletes a project by its ID.
func (handler *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteProject")
	defer scope.End()

	id := chi.URLParam(r, "id")

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete project")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Project deleted successfully")
}
