package request

import (
	"net/http"

	"atrium/infras/otel"
	"atrium/internal/domains/request/model/dto"
	"atrium/internal/domains/request/service"
	"atrium/shared/constant"
	"atrium/shared/validator"
	"atrium/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Request
	otel    otel.Otel
}

func New(service service.Request, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRequest)
		routerGroup.Get("/", handler.GetRequests)
		routerGroup.Post("/{id}/approve", handler.ApproveRequest)
		routerGroup.Post("/{id}/reject", handler.RejectRequest)
		routerGroup.Post("/{id}/paralyze", handler.ParalyzeRequest)
		routerGroup.Delete("/{id}", handler.DeleteRequest)
	})
}

// CreateRequest files a new service application.
// @Summary Create a service request
// @Description File an auxiliary service application. Non-continuous requests need months and an hour commitment of 15 or 30.
// @Tags Request
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestRequest true "Create Request"
// @Success 201 {object} response.Message "Request created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests [post]
// @Security BearerAuth
func (handler *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	req := dto.CreateRequestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Request created successfully")

	response.WithMessage(w, http.StatusCreated, "Request created successfully")
}

// GetRequests lists all service applications, newest first.
// @Summary Get all service requests
// @Description Retrieve all applications ordered by request date descending.
// @Tags Request
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetRequestsResponse "List of requests"
// @Failure 500 {object} response.Error
// @Router /v1/requests [get]
// @Security BearerAuth
func (handler *Handler) GetRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequests")
	defer scope.End()

	requests, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, requests)
}

// ApproveRequest approves a pending application.
// @Summary Approve a request
// @Description Mark a pending application as approved.
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Message "Request approved successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests/{id}/approve [post]
// @Security BearerAuth
func (handler *Handler) ApproveRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ApproveRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Approve(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to approve request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Request approved successfully")

	response.WithMessage(w, http.StatusOK, "Request approved successfully")
}

// RejectRequest rejects a pending application.
// @Summary Reject a request
// @Description Mark a pending application as rejected.
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Message "Request rejected successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Reject(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reject request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Request rejected successfully")

	response.WithMessage(w, http.StatusOK, "Request rejected successfully")
}

// ParalyzeRequest ends an approved application early.
// @Summary Paralyze a request
// @Description Close an approved application by stamping its end date.
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Message "Request paralyzed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests/{id}/paralyze [post]
// @Security BearerAuth
func (handler *Handler) ParalyzeRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ParalyzeRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Paralyze(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to paralyze request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Request paralyzed successfully")

	response.WithMessage(w, http.StatusOK, "Request paralyzed successfully")
}

// DeleteRequest deletes an application by its ID.
// @Summary Delete a request by ID
// @Description Delete an application using its unique identifier.
// @Tags Request
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Message "Request deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/requests/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete request")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Request deleted successfully")

	response.WithMessage(w, http.StatusOK, "Request deleted successfully")
}
