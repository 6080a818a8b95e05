package talk

import (
	"net/http"

	"atrium/infras/otel"
	"atrium/internal/domains/talk/model/dto"
	"atrium/internal/domains/talk/service"
	"atrium/shared/constant"
	"atrium/shared/validator"
	"atrium/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Talk
	otel    otel.Otel
}

func New(service service.Talk, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/talks", func(routerGroup chi.Router) {
		routerGroup.Route("/pioneer", func(r chi.Router) {
			r.Post("/", handler.CreatePioneerTalk)
			r.Get("/", handler.GetPioneerTalks)
			r.Patch("/{id}", handler.UpdatePioneerTalk)
			r.Delete("/{id}", handler.DeletePioneerTalk)
		})
		routerGroup.Route("/special", func(r chi.Router) {
			r.Post("/", handler.CreateSpecialTalk)
			r.Get("/", handler.GetSpecialTalks)
			r.Patch("/{id}", handler.UpdateSpecialTalk)
			r.Delete("/{id}", handler.DeleteSpecialTalk)
		})
	})

	router.Route("/memorials", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateMemorial)
		routerGroup.Get("/", handler.GetMemorials)
		routerGroup.Patch("/{id}", handler.UpdateMemorial)
		routerGroup.Delete("/{id}", handler.DeleteMemorial)
	})
}

// CreatePioneerTalk records a yearly pioneer talk programme.
// @Summary Create a pioneer talk
// @Tags Talk
// @Accept json
// @Produce json
// @Param request body dto.PioneerTalkRequest true "Pioneer Talk Request"
// @Success 201 {object} response.Message "Pioneer talk created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/talks/pioneer [post]
// @Security BearerAuth
func (handler *Handler) CreatePioneerTalk(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreatePioneerTalk")
	defer scope.End()

	req := dto.PioneerTalkRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreatePioneerTalk(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create pioneer talk")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pioneer talk created successfully")

	response.WithMessage(w, http.StatusCreated, "Pioneer talk created successfully")
}

// GetPioneerTalks lists pioneer talk programmes, newest year first.
// @Summary Get all pioneer talks
// @Tags Talk
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetPioneerTalksResponse "List of pioneer talks"
// @Failure 500 {object} response.Error
// @Router /v1/talks/pioneer [get]
func (handler *Handler) GetPioneerTalks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPioneerTalks")
	defer scope.End()

	talks, err := handler.service.GetPioneerTalks(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get pioneer talks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pioneer talks retrieved successfully")

	response.WithJSON(w, http.StatusOK, talks)
}

// UpdatePioneerTalk updates a pioneer talk by its ID.
// @Summary Update a pioneer talk by ID
// @Tags Talk
// @Accept json
// @Produce json
// @Param id path string true "Pioneer Talk ID"
// @Param request body dto.PioneerTalkRequest true "Pioneer Talk Request"
// @Success 200 {object} response.Message "Pioneer talk updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/talks/pioneer/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdatePioneerTalk(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdatePioneerTalk")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.PioneerTalkRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdatePioneerTalk(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update pioneer talk")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pioneer talk updated successfully")

	response.WithMessage(w, http.StatusOK, "Pioneer talk updated successfully")
}

// DeletePioneerTalk deletes a pioneer talk by its ID.
// @Summary Delete a pioneer talk by ID
// @Tags Talk
// @Accept json
// @Produce json
// @Param id path string true "Pioneer Talk ID"
// @Success 200 {object} response.Message "Pioneer talk deleted successfully"
// @Failure 500 {object} response.Error
// @Router /v1/talks/pioneer/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeletePioneerTalk(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeletePioneerTalk")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeletePioneerTalk(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete pioneer talk")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Pioneer talk deleted successfully")

	response.WithMessage(w, http.StatusOK, "Pioneer talk deleted successfully")
}

// CreateSpecialTalk records a yearly special talk programme.
// @Summary Create a special talk
// @Tags Talk
// @Accept json
// @Produce json
// @Param request body dto.SpecialTalkRequest true "Special Talk Request"
// @Success 201 {object} response.Message "Special talk created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/talks/special [post]
// @Security BearerAuth
func (handler *Handler) CreateSpecialTalk(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateSpecialTalk")
	defer scope.End()

	req := dto.SpecialTalkRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateSpecialTalk(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create special talk")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Special talk created successfully")

	response.WithMessage(w, http.StatusCreated, "Special talk created successfully")
}

// GetSpecialTalks lists special talk programmes, newest year first.
// @Summary Get all special talks
// @Tags Talk
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetSpecialTalksResponse "List of special talks"
// @Failure 500 {object} response.Error
// @Router /v1/talks/special [get]
func (handler *Handler) GetSpecialTalks(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSpecialTalks")
	defer scope.End()

	talks, err := handler.service.GetSpecialTalks(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get special talks")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Special talks retrieved successfully")

	response.WithJSON(w, http.StatusOK, talks)
}

// UpdateSpecialTalk updates a special talk by its ID.
// @Summary Update a special talk by ID
// @Tags Talk
// @Accept json
// @Produce json
// @Param id path string true "Special Talk ID"
// @Param request body dto.SpecialTalkRequest true "Special Talk Request"
// @Success 200 {object} response.Message "Special talk updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/talks/special/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateSpecialTalk(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateSpecialTalk")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SpecialTalkRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateSpecialTalk(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update special talk")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Special talk updated successfully")

	response.WithMessage(w, http.StatusOK, "Special talk updated successfully")
}

// DeleteSpecialTalk deletes a special talk by its ID.
// @Summary Delete a special talk by ID
// @Tags Talk
// @Accept json
// @Produce json
// @Param id path string true "Special Talk ID"
// @Success 200 {object} response.Message "Special talk deleted successfully"
// @Failure 500 {object} response.Error
// @Router /v1/talks/special/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteSpecialTalk(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteSpecialTalk")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteSpecialTalk(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete special talk")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Special talk deleted successfully")

	response.WithMessage(w, http.StatusOK, "Special talk deleted successfully")
}

// CreateMemorial records a yearly memorial programme.
// @Summary Create a memorial
// @Tags Talk
// @Accept json
// @Produce json
// @Param request body dto.MemorialRequest true "Memorial Request"
// @Success 201 {object} response.Message "Memorial created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/memorials [post]
// @Security BearerAuth
func (handler *Handler) CreateMemorial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateMemorial")
	defer scope.End()

	req := dto.MemorialRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateMemorial(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create memorial")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Memorial created successfully")

	response.WithMessage(w, http.StatusCreated, "Memorial created successfully")
}

// GetMemorials lists memorial programmes, newest year first.
// @Summary Get all memorials
// @Tags Talk
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetMemorialsResponse "List of memorials"
// @Failure 500 {object} response.Error
// @Router /v1/memorials [get]
func (handler *Handler) GetMemorials(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMemorials")
	defer scope.End()

	memorials, err := handler.service.GetMemorials(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get memorials")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Memorials retrieved successfully")

	response.WithJSON(w, http.StatusOK, memorials)
}

// UpdateMemorial updates a memorial by its ID.
// @Summary Update a memorial by ID
// @Tags Talk
// @Accept json
// @Produce json
// @Param id path string true "Memorial ID"
// @Param request body dto.MemorialRequest true "Memorial Request"
// @Success 200 {object} response.Message "Memorial updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/memorials/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateMemorial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateMemorial")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.MemorialRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateMemorial(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update memorial")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Memorial updated successfully")

	response.WithMessage(w, http.StatusOK, "Memorial updated successfully")
}

// DeleteMemorial deletes a memorial by its ID.
// @Summary Delete a memorial by ID
// @Tags Talk
// @Accept json
// @Produce json
// @Param id path string true "Memorial ID"
// @Success 200 {object} response.Message "Memorial deleted successfully"
// @Failure 500 {object} response.Error
// @Router /v1/memorials/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteMemorial(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteMemorial")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteMemorial(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete memorial")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Memorial deleted successfully")

	response.WithMessage(w, http.StatusOK, "Memorial deleted successfully")
}
