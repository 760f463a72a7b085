package customer

import (
	"net/http"
	"prism/infras/otel"
	"prism/internal/domains/customer/model"
	"prism/internal/domains/customer/model/dto"
	"prism/internal/domains/customer/service"
	"prism/shared"
	"prism/shared/constant"
	gDto "prism/shared/dto"
	"prism/shared/validator"
	"prism/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Customer
	otel    otel.Otel
}

func New(service service.Customer, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/customers", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCustomer)
		routerGroup.Get("/", handler.GetCustomers)
		routerGroup.Get("/{id}", handler.GetCustomerByID)
		routerGroup.Patch("/{id}", handler.UpdateCustomer)
		routerGroup.Delete("/{id}", handler.DeleteCustomer)
		routerGroup.Post("/{id}/contacts", handler.AddContact)
		routerGroup.Delete("/{id}/contacts/{contactId}", handler.DeleteContact)
	})
}

// CreateCustomer stores a customer together with its contact persons.
func (handler *Handler) CreateCustomer(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCustomer")
	defer scope.End()

	req := dto.CreateCustomerRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create customer")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusCreated, "Customer created successfully")
}

// GetCustomers retrieves all customers based on query parameters.
func (handler *Handler) GetCustomers(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomers")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	active := shared.ConvertStringToBool(r.URL.Query().Get(model.FieldActive))

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
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

	customers, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customers")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customers)
}

// GetCustomerByID retrieves a single customer with its contacts.
func (handler *Handler) GetCustomerByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCustomerByID")
	defer scope.End()

	id := chi.URLParam(r, "id")

	customer, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get customer")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer.
func (handler *Handler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCustomer")
	defer scope.End()

	id := chi.URLParam(r, "id")

	req := dto.UpdateCustomerRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update customer")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Customer updated successfully")
}

// DeleteCustomer deletes a customer by its ID.
func (handler *Handler) DeleteCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCustomer")
	defer scope.End()

	id := chi.URLParam(r, "id")

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete customer")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Customer deleted successfully")
}

// AddContact attaches a new contact person to a customer.
func (handler *Handler) AddContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddContact")
	defer scope.End()

	id := chi.URLParam(r, "id")

	req := dto.ContactRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.AddContact(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add customer contact")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusCreated, "Customer contact added successfully")
}

// DeleteContact removes a contact person from a customer.
func (handler *Handler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteContact")
	defer scope.End()

	id := chi.URLParam(r, "id")
	contactID := chi.URLParam(r, "contactId")

	if err := handler.service.DeleteContact(ctx, id, contactID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete customer contact")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Customer contact deleted successfully")
}
