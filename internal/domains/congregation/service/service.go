package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"atrium/config"
	"atrium/infras/kafka"
	"atrium/infras/otel"
	"atrium/internal/domains/congregation/model"
	"atrium/internal/domains/congregation/model/dto"
	"atrium/internal/domains/congregation/repository"
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
	cacheGetCongregation    = "congregation:get"
	cacheGetAllCongregation = "congregation:gets"
	cacheCountCongregation  = "congregation:count"
	cacheGetGrid            = "schedule:grid"
)

type Congregation interface {
	Create(ctx context.Context, req dto.CreateCongregationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetCongregationsResponse, error)
	Get(ctx context.Context, id string) (dto.CongregationResponse, error)
	Update(ctx context.Context, req dto.UpdateCongregationRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Congregation
	cfg   *config.Config
	cache cache.RedisCache
	kafka kafka.Client
	otel  otel.Otel
}

func New(repo repository.Congregation, cfg *config.Config, cache cache.RedisCache, kafka kafka.Client, otel otel.Otel) Congregation {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		kafka: kafka,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCongregationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	congregation := req.ToModel(user)

	if err = s.checkScheduleConflict(ctx, congregation); err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, congregation); err != nil {
		log.Error().Err(err).Msg("failed to create congregation")

		return fmt.Errorf("failed to create congregation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateCaches(c, congregation.ID)
		s.publishEvent(c, "congregation.created", congregation.ID, congregation.Name, user)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetCongregationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	// Congregation listings are name-ordered unless the caller asks otherwise.
	if req.SortBy == "" {
		req.SortBy = model.FieldName
		req.SortDir = gDto.SortDirAsc
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllCongregation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for congregations")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count congregations")

		return res, fmt.Errorf("failed to count congregations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get congregations")

		return res, fmt.Errorf("failed to get congregations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save congregations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CongregationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetCongregation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for congregation")

		return res, nil
	}

	congregation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get congregation")

		return res, fmt.Errorf("failed to get congregation: %w", err)
	}

	if congregation.ID == constant.Empty {
		return res, failure.NotFound("congregation not found") // nolint:wrapcheck
	}

	res.FromModel(congregation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save congregation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCongregationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if congregation exists")

		return fmt.Errorf("failed to check if congregation exists: %w", err)
	}

	if !exist {
		log.Error().Msg("congregation not found")

		return failure.NotFound("congregation not found") // nolint:wrapcheck
	}

	if err = s.checkScheduleConflict(ctx, req.ToCandidate(id)); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, req.ToFields(user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update congregation")

		return fmt.Errorf("failed to update congregation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateCaches(c, id)
		s.publishEvent(c, "congregation.updated", id, req.Name, user)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	congregation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get congregation")

		return fmt.Errorf("failed to get congregation: %w", err)
	}

	if congregation.ID == constant.Empty {
		log.Error().Msg("congregation not found")

		return failure.NotFound("congregation not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete congregation")

		return fmt.Errorf("failed to delete congregation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateCaches(c, id)
		s.publishEvent(c, "congregation.deleted", id, congregation.Name, user)
	}()

	return nil
}

func (s *serviceImpl) invalidateCaches(ctx context.Context, id string) {
	if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetCongregation, id)); err != nil {
		log.Error().Err(err).Msg("failed to delete congregation from cache")
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllCongregation)
	shared.InvalidateCaches(ctx, s.cache, cacheCountCongregation)
	// Schedule changes reshape the grid for every date sharing the weekday.
	shared.InvalidateCaches(ctx, s.cache, cacheGetGrid)
}

func (s *serviceImpl) publishEvent(ctx context.Context, action, id, name, actor string) {
	event := gDto.SchedulingEvent{
		Action:     action,
		Entity:     model.EntityName,
		EntityID:   id,
		Name:       name,
		Actor:      actor,
		OccurredAt: timezone.Now(),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.SchedulingEvents, kafka.Message{Key: id, Value: event}); err != nil {
		log.Error().Err(err).Str("action", action).Msg("failed to publish scheduling event")
	}
}
