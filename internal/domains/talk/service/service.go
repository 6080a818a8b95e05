package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"atrium/config"
	"atrium/infras/otel"
	"atrium/internal/domains/talk/model/dto"
	"atrium/internal/domains/talk/repository"
	"atrium/shared"
	"atrium/shared/cache"
	"atrium/shared/constant"
	"atrium/shared/failure"
	"atrium/shared/timezone"
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	cacheGetPioneerTalks = "pioneerTalk:gets"
	cacheGetSpecialTalks = "specialTalk:gets"
	cacheGetMemorials    = "memorial:gets"
)

type Talk interface {
	CreatePioneerTalk(ctx context.Context, req dto.PioneerTalkRequest) error
	GetPioneerTalks(ctx context.Context) (dto.GetPioneerTalksResponse, error)
	UpdatePioneerTalk(ctx context.Context, req dto.PioneerTalkRequest, id string) error
	DeletePioneerTalk(ctx context.Context, id string) error
	CreateSpecialTalk(ctx context.Context, req dto.SpecialTalkRequest) error
	GetSpecialTalks(ctx context.Context) (dto.GetSpecialTalksResponse, error)
	UpdateSpecialTalk(ctx context.Context, req dto.SpecialTalkRequest, id string) error
	DeleteSpecialTalk(ctx context.Context, id string) error
	CreateMemorial(ctx context.Context, req dto.MemorialRequest) error
	GetMemorials(ctx context.Context) (dto.GetMemorialsResponse, error)
	UpdateMemorial(ctx context.Context, req dto.MemorialRequest, id string) error
	DeleteMemorial(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Talk
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Talk, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Talk {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) CreatePioneerTalk(ctx context.Context, req dto.PioneerTalkRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreatePioneerTalk")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	if err = s.repo.InsertPioneerTalk(ctx, req.ToModel(date, user)); err != nil {
		log.Error().Err(err).Msg("failed to create pioneer talk")

		return fmt.Errorf("failed to create pioneer talk: %w", err)
	}

	s.invalidateCaches(ctx, cacheGetPioneerTalks)

	return nil
}

func (s *serviceImpl) GetPioneerTalks(ctx context.Context) (res dto.GetPioneerTalksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetPioneerTalks")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetPioneerTalks, &res)
	if err == nil {
		return res, nil
	}

	talks, err := s.repo.GetPioneerTalks(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get pioneer talks")

		return res, fmt.Errorf("failed to get pioneer talks: %w", err)
	}

	res.FromModels(talks)
	s.saveCache(ctx, cacheGetPioneerTalks, res)

	return res, nil
}

func (s *serviceImpl) UpdatePioneerTalk(ctx context.Context, req dto.PioneerTalkRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdatePioneerTalk")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	fields := s.auditFields(user, date, req.Year)
	fields["speaker_1"] = req.Speaker1
	fields["speaker_2"] = req.Speaker2
	fields["opening_prayer"] = req.OpeningPrayer
	fields["closing_prayer"] = req.ClosingPrayer

	if err = s.repo.UpdatePioneerTalk(ctx, id, fields); err != nil {
		log.Error().Err(err).Msg("failed to update pioneer talk")

		return fmt.Errorf("failed to update pioneer talk: %w", err)
	}

	s.invalidateCaches(ctx, cacheGetPioneerTalks)

	return nil
}

func (s *serviceImpl) DeletePioneerTalk(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeletePioneerTalk")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeletePioneerTalk(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete pioneer talk")

		return fmt.Errorf("failed to delete pioneer talk: %w", err)
	}

	s.invalidateCaches(ctx, cacheGetPioneerTalks)

	return nil
}

func (s *serviceImpl) CreateSpecialTalk(ctx context.Context, req dto.SpecialTalkRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateSpecialTalk")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	if err = s.repo.InsertSpecialTalk(ctx, req.ToModel(date, user)); err != nil {
		log.Error().Err(err).Msg("failed to create special talk")

		return fmt.Errorf("failed to create special talk: %w", err)
	}

	s.invalidateCaches(ctx, cacheGetSpecialTalks)

	return nil
}

func (s *serviceImpl) GetSpecialTalks(ctx context.Context) (res dto.GetSpecialTalksResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSpecialTalks")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetSpecialTalks, &res)
	if err == nil {
		return res, nil
	}

	talks, err := s.repo.GetSpecialTalks(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get special talks")

		return res, fmt.Errorf("failed to get special talks: %w", err)
	}

	res.FromModels(talks)
	s.saveCache(ctx, cacheGetSpecialTalks, res)

	return res, nil
}

func (s *serviceImpl) UpdateSpecialTalk(ctx context.Context, req dto.SpecialTalkRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateSpecialTalk")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	fields := s.auditFields(user, date, req.Year)
	fields["president"] = req.President
	fields["speaker"] = req.Speaker
	fields["auxiliary_speaker"] = req.AuxiliarySpeaker
	fields["closing_prayer"] = req.ClosingPrayer

	if err = s.repo.UpdateSpecialTalk(ctx, id, fields); err != nil {
		log.Error().Err(err).Msg("failed to update special talk")

		return fmt.Errorf("failed to update special talk: %w", err)
	}

	s.invalidateCaches(ctx, cacheGetSpecialTalks)

	return nil
}

func (s *serviceImpl) DeleteSpecialTalk(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteSpecialTalk")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeleteSpecialTalk(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete special talk")

		return fmt.Errorf("failed to delete special talk: %w", err)
	}

	s.invalidateCaches(ctx, cacheGetSpecialTalks)

	return nil
}

func (s *serviceImpl) CreateMemorial(ctx context.Context, req dto.MemorialRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateMemorial")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	if err = s.repo.InsertMemorial(ctx, req.ToModel(date, user)); err != nil {
		log.Error().Err(err).Msg("failed to create memorial")

		return fmt.Errorf("failed to create memorial: %w", err)
	}

	s.invalidateCaches(ctx, cacheGetMemorials)

	return nil
}

func (s *serviceImpl) GetMemorials(ctx context.Context) (res dto.GetMemorialsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetMemorials")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetMemorials, &res)
	if err == nil {
		return res, nil
	}

	memorials, err := s.repo.GetMemorials(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get memorials")

		return res, fmt.Errorf("failed to get memorials: %w", err)
	}

	res.FromModels(memorials)
	s.saveCache(ctx, cacheGetMemorials, res)

	return res, nil
}

func (s *serviceImpl) UpdateMemorial(ctx context.Context, req dto.MemorialRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateMemorial")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	fields := s.auditFields(user, date, req.Year)
	fields["president"] = req.President
	fields["opening_prayer"] = req.OpeningPrayer
	fields["speaker"] = req.Speaker
	fields["bread_prayer"] = req.BreadPrayer
	fields["wine_prayer"] = req.WinePrayer

	if err = s.repo.UpdateMemorial(ctx, id, fields); err != nil {
		log.Error().Err(err).Msg("failed to update memorial")

		return fmt.Errorf("failed to update memorial: %w", err)
	}

	s.invalidateCaches(ctx, cacheGetMemorials)

	return nil
}

func (s *serviceImpl) DeleteMemorial(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteMemorial")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeleteMemorial(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete memorial")

		return fmt.Errorf("failed to delete memorial: %w", err)
	}

	s.invalidateCaches(ctx, cacheGetMemorials)

	return nil
}

func (s *serviceImpl) auditFields(user string, date time.Time, year int) bson.M {
	return bson.M{
		"year":        year,
		"date":        date,
		"modified_at": timezone.Now(),
		"modified_by": user,
	}
}

func (s *serviceImpl) saveCache(ctx context.Context, key string, value any) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, key, value, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Str("cacheKey", key).Msg("failed to save to cache")
		}
	}()
}

func (s *serviceImpl) invalidateCaches(ctx context.Context, key string) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, key)
	}()
}
