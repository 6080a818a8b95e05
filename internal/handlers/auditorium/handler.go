package auditorium

import (
	"net/http"

	"atrium/infras/otel"
	"atrium/internal/domains/auditorium/model"
	"atrium/internal/domains/auditorium/model/dto"
	"atrium/internal/domains/auditorium/service"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/validator"
	"atrium/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Auditorium
	otel    otel.Otel
}

func New(service service.Auditorium, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/auditoriums", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAuditorium)
		routerGroup.Get("/", handler.GetAuditoriums)
		routerGroup.Get("/{id}", handler.GetAuditoriumByID)
		routerGroup.Patch("/{id}", handler.UpdateAuditorium)
		routerGroup.Delete("/{id}", handler.DeleteAuditorium)
	})
}

// CreateAuditorium handles the creation of a new auditorium.
// @Summary Create a new auditorium
// @Description Create a new auditorium with the provided details.
// @Tags Auditorium
// @Accept json
// @Produce json
// @Param request body dto.CreateAuditoriumRequest true "Create Auditorium Request"
// @Success 201 {object} response.Message "Auditorium created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auditoriums [post]
// @Security BearerAuth
func (handler *Handler) CreateAuditorium(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAuditorium")
	defer scope.End()

	req := dto.CreateAuditoriumRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create auditorium")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Auditorium created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Auditorium created successfully")
}

// GetAuditoriums retrieves all auditoriums.
// @Summary Get all auditoriums
// @Description Retrieve all auditoriums with optional name filtering and pagination.
// @Tags Auditorium
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Success 200 {object} dto.GetAuditoriumsResponse "List of auditoriums"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auditoriums [get]
func (handler *Handler) GetAuditoriums(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAuditoriums")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldName,
				Operator: gDto.FilterOperatorLike,
				Value:    r.URL.Query().Get(model.FieldName),
				Table:    model.TableName,
			},
		},
	}

	auditoriums, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get auditoriums")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Auditoriums retrieved successfully")

	response.WithJSON(w, http.StatusOK, auditoriums)
}

// GetAuditoriumByID retrieves an auditorium by its ID.
// @Summary Get an auditorium by ID
// @Description Retrieve an auditorium by its unique identifier.
// @Tags Auditorium
// @Accept json
// @Produce json
// @Param id path string true "Auditorium ID"
// @Success 200 {object} dto.AuditoriumResponse "Auditorium details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auditoriums/{id} [get]
func (handler *Handler) GetAuditoriumByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAuditoriumByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	auditorium, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get auditorium by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Auditorium retrieved successfully")

	response.WithJSON(w, http.StatusOK, auditorium)
}

// UpdateAuditorium updates an existing auditorium by its ID.
// @Summary Update an auditorium by ID
// @Description Update the details of an existing auditorium.
// @Tags Auditorium
// @Accept json
// @Produce json
// @Param id path string true "Auditorium ID"
// @Param request body dto.UpdateAuditoriumRequest true "Update Auditorium Request"
// @Success 200 {object} response.Message "Auditorium updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auditoriums/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAuditorium(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAuditorium")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAuditoriumRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update auditorium")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Auditorium updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Auditorium updated successfully")
}

// DeleteAuditorium deletes an auditorium by its ID.
// @Summary Delete an auditorium by ID
// @Description Delete an auditorium using its unique identifier.
// @Tags Auditorium
// @Accept json
// @Produce json
// @Param id path string true "Auditorium ID"
// @Success 200 {object} response.Message "Auditorium deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/auditoriums/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteAuditorium(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteAuditorium")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete auditorium")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Auditorium deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Auditorium deleted successfully")
}
