package service

import (
	"atrium/config"
	"atrium/infras/otel"
	"atrium/internal/domains/auditorium/model"
	"atrium/internal/domains/auditorium/model/dto"
	"atrium/internal/domains/auditorium/repository"
	"atrium/shared"
	"atrium/shared/cache"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAuditorium    = "auditorium:get"
	cacheGetAllAuditorium = "auditorium:gets"
	cacheCountAuditorium  = "auditorium:count"
)

type Auditorium interface {
	Create(ctx context.Context, req dto.CreateAuditoriumRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAuditoriumsResponse, error)
	Get(ctx context.Context, id string) (dto.AuditoriumResponse, error)
	Update(ctx context.Context, req dto.UpdateAuditoriumRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Auditorium
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Auditorium, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Auditorium {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAuditoriumRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create auditorium")

		return fmt.Errorf("failed to create auditorium: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAuditorium)
		shared.InvalidateCaches(c, s.cache, cacheCountAuditorium)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAuditoriumsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAuditorium, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for auditoriums")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count auditoriums")

		return res, fmt.Errorf("failed to count auditoriums: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get auditoriums")

		return res, fmt.Errorf("failed to get auditoriums: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save auditoriums to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AuditoriumResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(nil)

	cacheKey := shared.BuildCacheKey(cacheGetAuditorium, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for auditorium")

		return res, nil
	}

	auditorium, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get auditorium")

		return res, fmt.Errorf("failed to get auditorium: %w", err)
	}

	if auditorium.ID == constant.Empty {
		return res, failure.NotFound("auditorium not found") // nolint:wrapcheck
	}

	res.FromModel(auditorium)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save auditorium to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAuditoriumRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(nil)

	if req == (dto.UpdateAuditoriumRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if auditorium exists")

		return fmt.Errorf("failed to check if auditorium exists: %w", err)
	}

	if !exist {
		log.Error().Msg("auditorium not found")

		return failure.NotFound("auditorium not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update auditorium")

		return fmt.Errorf("failed to update auditorium: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAuditorium, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete auditorium from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAuditorium)
		shared.InvalidateCaches(c, s.cache, cacheCountAuditorium)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(nil)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if auditorium exists")

		return fmt.Errorf("failed to check if auditorium exists: %w", err)
	}

	if !exist {
		log.Error().Msg("auditorium not found")

		return failure.NotFound("auditorium not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete auditorium")

		return fmt.Errorf("failed to delete auditorium: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAuditorium, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete auditorium from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAuditorium)
		shared.InvalidateCaches(c, s.cache, cacheCountAuditorium)
	}()

	return nil
}
