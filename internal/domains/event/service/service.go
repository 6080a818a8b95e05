package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"atrium/config"
	"atrium/infras/otel"
	"atrium/internal/domains/event/model"
	"atrium/internal/domains/event/model/dto"
	"atrium/internal/domains/event/repository"
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

const (
	cacheGetEvent    = "event:get"
	cacheGetAllEvent = "event:gets"
	cacheCountEvent  = "event:count"
)

type Event interface {
	Create(ctx context.Context, req dto.CreateEventRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetEventsResponse, error)
	Get(ctx context.Context, id string) (dto.EventResponse, error)
	Update(ctx context.Context, req dto.UpdateEventRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Event
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Event, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Event {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateEventRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Msg("invalid event date")

		return failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(date, user)); err != nil {
		log.Error().Err(err).Msg("failed to create event")

		return fmt.Errorf("failed to create event: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.InvalidateCaches(c, s.cache, cacheCountEvent)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetEventsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.SortBy == "" {
		req.SortBy = model.FieldEventDate
		req.SortDir = gDto.SortDirAsc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllEvent, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for events")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count events")

		return res, fmt.Errorf("failed to count events: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get events")

		return res, fmt.Errorf("failed to get events: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save events to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.EventResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetEvent, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for event")

		return res, nil
	}

	event, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get event")

		return res, fmt.Errorf("failed to get event: %w", err)
	}

	if event.ID == constant.Empty {
		return res, failure.NotFound("event not found") // nolint:wrapcheck
	}

	res.FromModel(event)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save event to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateEventRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateEventRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if event exists")

		return fmt.Errorf("failed to check if event exists: %w", err)
	}

	if !exist {
		log.Error().Msg("event not found")

		return failure.NotFound("event not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)

	if req.Date != "" {
		date, err := timezone.ParseDate(req.Date)
		if err != nil {
			log.Error().Err(err).Str("date", req.Date).Msg("invalid event date")

			return failure.BadRequestFromString("invalid date") // nolint:wrapcheck
		}

		updatedFields[model.FieldEventDate] = date
	}

	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update event")

		return fmt.Errorf("failed to update event: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEvent, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete event from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.InvalidateCaches(c, s.cache, cacheCountEvent)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if event exists")

		return fmt.Errorf("failed to check if event exists: %w", err)
	}

	if !exist {
		log.Error().Msg("event not found")

		return failure.NotFound("event not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete event")

		return fmt.Errorf("failed to delete event: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetEvent, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete event from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllEvent)
		shared.InvalidateCaches(c, s.cache, cacheCountEvent)
	}()

	return nil
}
