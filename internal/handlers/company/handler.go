package company

import (
	"net/http"
	"prism/infras/otel"
	"prism/internal/domains/company/model"
	"prism/internal/domains/company/model/dto"
	"prism/internal/domains/company/service"
	"prism/shared"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	"prism/shared/validator"
	"prism/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Company
	otel    otel.Otel
}

func New(service service.Company, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/companies", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCompany)
		routerGroup.Get("/", handler.GetCompanies)
		routerGroup.Get("/{id}", handler.GetCompanyByID)
		routerGroup.Patch("/{id}", handler.UpdateCompany)
	})
}

// CreateCompany handles the creation of a new company.
func (handler *Handler) CreateCompany(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCompany")
	defer scope.End()

	req := dto.CreateCompanyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create company")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Company created successfully")
}

// GetCompanies retrieves all companies based on query parameters.
func (handler *Handler) GetCompanies(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanies")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive))

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if active != nil {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldActive,
			Operator: gDto.FilterOperatorEq,
			Value:    *active,
			Table:    model.TableName,
		})
	}

	companies, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get companies")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, companies)
}

// GetCompanyByID retrieves a single company by its ID.
func (handler *Handler) GetCompanyByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompanyByID")
	defer scope.End()

	id := chi.URLParam(r, "id")

	company, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get company")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, company)
}

// UpdateCompany updates an existing company.
func (handler *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCompany")
	defer scope.End()

	id := chi.URLParam(r, "id")

	req := dto.UpdateCompanyRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update company")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Company updated successfully")
}
