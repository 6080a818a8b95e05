package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"atrium/config"
	"atrium/infras/otel"
	"atrium/internal/domains/setting/model"
	"atrium/internal/domains/setting/model/dto"
	"atrium/internal/domains/setting/repository"
	"atrium/shared"
	"atrium/shared/cache"
	"atrium/shared/constant"
	"atrium/shared/timezone"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

const cacheGet = "settings:get"

type Setting interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) error
}

type serviceImpl struct {
	repo  repository.Setting
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Setting, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Setting {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.SettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGet, &res)
	if err == nil {
		return res, nil
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get settings")

		return res, fmt.Errorf("failed to get settings: %w", err)
	}

	res.FromModel(settings)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGet, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	settings := model.Settings{
		ID:         model.SettingsID,
		Name:       req.Name,
		ModifiedAt: timezone.Now(),
		ModifiedBy: user,
	}

	if err = s.repo.Set(ctx, settings); err != nil {
		log.Error().Err(err).Msg("failed to update settings")

		return fmt.Errorf("failed to update settings: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGet)
	}()

	return nil
}
