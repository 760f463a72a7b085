package access

import (
	"net/http"
	"prism/infras/otel"
	"prism/internal/domains/access/model/dto"
	"prism/internal/domains/access/service"
	"prism/shared/constant"
	"prism/shared/validator"
	"prism/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Access
	otel    otel.Otel
}

func New(service service.Access, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/access", func(routerGroup chi.Router) {
		routerGroup.Put("/", handler.UpsertAccess)
		routerGroup.Get("/users/{userId}", handler.GetUserAccess)
		routerGroup.Delete("/{id}", handler.DeleteAccess)
	})
}

// UpsertAccess stores one capability row for a user and module.
func (handler *Handler) UpsertAccess(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpsertAccess")
	defer scope.End()

	req := dto.UpsertAccessRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Upsert(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upsert module access")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Module access saved successfully")
}

// GetUserAccess lists the capability rows stored for one user.
func (handler *Handler) GetUserAccess(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetUserAccess")
	defer scope.End()

	userID := chi.URLParam(r, "userId")

	grants, err := handler.service.GetForUser(ctx, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get module access rows")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, grants)
}

// DeleteAccess removes one capability row, dropping the user back to the
// role defaults for that module.
func (handler *Handler) DeleteAccess(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAccess")
	defer scope.End()

	id := chi.URLParam(r, "id")

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete module access")

		response.WithError(w, err)

		return
	}

	response.WithMessage(w, http.StatusOK, "Module access deleted successfully")
}
