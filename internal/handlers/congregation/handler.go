package congregation

import (
	"net/http"

	"atrium/infras/otel"
	"atrium/internal/domains/congregation/model"
	"atrium/internal/domains/congregation/model/dto"
	"atrium/internal/domains/congregation/service"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/validator"
	"atrium/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Congregation
	otel    otel.Otel
}

func New(service service.Congregation, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/congregations", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateCongregation)
		routerGroup.Get("/", handler.GetCongregations)
		routerGroup.Get("/{id}", handler.GetCongregationByID)
		routerGroup.Patch("/{id}", handler.UpdateCongregation)
		routerGroup.Delete("/{id}", handler.DeleteCongregation)
	})
}

// CreateCongregation handles the creation of a new congregation.
// @Summary Create a new congregation
// @Description Create a new congregation; its fixed weekly meetings are checked for auditorium conflicts.
// @Tags Congregation
// @Accept json
// @Produce json
// @Param request body dto.CreateCongregationRequest true "Create Congregation Request"
// @Success 201 {object} response.Message "Congregation created successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/congregations [post]
// @Security BearerAuth
func (handler *Handler) CreateCongregation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCongregation")
	defer scope.End()

	req := dto.CreateCongregationRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create congregation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Congregation created successfully by user " + user)

	response.WithMessage(w, http.StatusCreated, "Congregation created successfully")
}

// GetCongregations retrieves all congregations.
// @Summary Get all congregations
// @Description Retrieve all congregations with optional filtering by name or auditorium.
// @Tags Congregation
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param auditorium_id query string false "Filter by auditorium"
// @Success 200 {object} dto.GetCongregationsResponse "List of congregations"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/congregations [get]
func (handler *Handler) GetCongregations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCongregations")
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

	if auditoriumID := r.URL.Query().Get(model.FieldAuditoriumID); auditoriumID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAuditoriumID,
			Operator: gDto.FilterOperatorEq,
			Value:    auditoriumID,
			Table:    model.TableName,
		})
	}

	congregations, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get congregations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Congregations retrieved successfully")

	response.WithJSON(w, http.StatusOK, congregations)
}

// GetCongregationByID retrieves a congregation by its ID.
// @Summary Get a congregation by ID
// @Description Retrieve a congregation by its unique identifier.
// @Tags Congregation
// @Accept json
// @Produce json
// @Param id path string true "Congregation ID"
// @Success 200 {object} dto.CongregationResponse "Congregation details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/congregations/{id} [get]
func (handler *Handler) GetCongregationByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCongregationByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	congregation, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get congregation by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Congregation retrieved successfully")

	response.WithJSON(w, http.StatusOK, congregation)
}

// UpdateCongregation updates an existing congregation by its ID.
// @Summary Update a congregation by ID
// @Description Replace a congregation's details and weekly schedule; the new schedule is checked for auditorium conflicts.
// @Tags Congregation
// @Accept json
// @Produce json
// @Param id path string true "Congregation ID"
// @Param request body dto.UpdateCongregationRequest true "Update Congregation Request"
// @Success 200 {object} response.Message "Congregation updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/congregations/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCongregation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCongregation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCongregationRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update congregation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Congregation updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Congregation updated successfully")
}

// DeleteCongregation deletes a congregation by its ID.
// @Summary Delete a congregation by ID
// @Description Delete a congregation; its auditorium slots are released.
// @Tags Congregation
// @Accept json
// @Produce json
// @Param id path string true "Congregation ID"
// @Success 200 {object} response.Message "Congregation deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/congregations/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCongregation(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCongregation")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete congregation")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Congregation deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Congregation deleted successfully")
}
