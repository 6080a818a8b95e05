package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"atrium/config"
	"atrium/infras/otel"
	auditoriumModel "atrium/internal/domains/auditorium/model"
	auditoriumRepo "atrium/internal/domains/auditorium/repository"
	congregationRepo "atrium/internal/domains/congregation/repository"
	reservationModel "atrium/internal/domains/reservation/model"
	reservationRepo "atrium/internal/domains/reservation/repository"
	"atrium/internal/domains/schedule/model"
	"atrium/internal/domains/schedule/model/dto"
	"atrium/shared"
	"atrium/shared/cache"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
	"atrium/shared/timezone"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const cacheGetGrid = "schedule:grid"

type Schedule interface {
	GetGrid(ctx context.Context, date string) (dto.GridResponse, error)
}

type serviceImpl struct {
	auditoriums   auditoriumRepo.Auditorium
	congregations congregationRepo.Congregation
	reservations  reservationRepo.Reservation
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	auditoriums auditoriumRepo.Auditorium,
	congregations congregationRepo.Congregation,
	reservations reservationRepo.Reservation,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Schedule {
	return &serviceImpl{
		auditoriums:   auditoriums,
		congregations: congregations,
		reservations:  reservations,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

func (s *serviceImpl) GetGrid(ctx context.Context, date string) (res dto.GridResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetGrid")
	defer scope.End()
	defer scope.TraceIfError(err)

	parsed, err := timezone.ParseDate(date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("invalid grid date")

		return res, failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	weekday := int(parsed.Weekday())
	cacheKey := shared.BuildCacheKey(cacheGetGrid, date)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for grid")

		return res, nil
	}

	auditoriums, err := s.auditoriums.GetAll(ctx, gDto.QueryParams{
		SortBy:  auditoriumModel.FieldName,
		SortDir: gDto.SortDirAsc,
	}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load auditoriums for grid")

		return res, fmt.Errorf("failed to load auditoriums for grid: %w", err)
	}

	congregations, err := s.congregations.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to load congregations for grid")

		return res, fmt.Errorf("failed to load congregations for grid: %w", err)
	}

	reservations, err := s.reservations.GetAll(ctx, gDto.QueryParams{}, filterByDate(date))
	if err != nil {
		log.Error().Err(err).Msg("failed to load reservations for grid")

		return res, fmt.Errorf("failed to load reservations for grid: %w", err)
	}

	res.FromGrids(date, weekday, model.BuildGrid(weekday, auditoriums, congregations, reservations))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save grid to cache")
		}
	}()

	return res, nil
}

func filterByDate(date string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    reservationModel.FieldReservationDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    reservationModel.TableName,
			},
		},
	}
}
