package schedule

import (
	"net/http"

	"atrium/infras/otel"
	"atrium/internal/domains/schedule/service"
	"atrium/shared/constant"
	"atrium/shared/failure"
	"atrium/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const queryParamDate = "date"

type Handler struct {
	service service.Schedule
	otel    otel.Otel
}

func New(service service.Schedule, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/schedule", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetGrid)
	})
}

// GetGrid renders the per-auditorium occupancy grid of a date.
// @Summary Get the daily schedule grid
// @Description For each auditorium, classify every hour slot of the given date as free, fixed (weekly congregation meeting) or reserved.
// @Tags Schedule
// @Accept json
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} dto.GridResponse "Occupancy grid"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/schedule [get]
func (handler *Handler) GetGrid(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetGrid")
	defer scope.End()

	date := r.URL.Query().Get(queryParamDate)
	if date == "" {
		err := failure.BadRequestFromString("date is required")
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	grid, err := handler.service.GetGrid(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get schedule grid")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Schedule grid retrieved successfully")

	response.WithJSON(w, http.StatusOK, grid)
}
