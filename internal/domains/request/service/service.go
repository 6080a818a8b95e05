package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"atrium/config"
	"atrium/infras/otel"
	"atrium/internal/domains/request/model"
	"atrium/internal/domains/request/model/dto"
	"atrium/internal/domains/request/repository"
	"atrium/shared"
	"atrium/shared/cache"
	"atrium/shared/constant"
	"atrium/shared/failure"
	"atrium/shared/timezone"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

const cacheGetAll = "request:gets"

type Request interface {
	Create(ctx context.Context, req dto.CreateRequestRequest) error
	GetAll(ctx context.Context) (dto.GetRequestsResponse, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	Paralyze(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Request
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Request, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Request {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRequestRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if !req.IsContinuous {
		if req.Hours != model.HoursAuxiliary && req.Hours != model.HoursReduced {
			return failure.BadRequestFromString("hours must be 15 or 30") // nolint:wrapcheck
		}

		if len(req.Months) == 0 {
			return failure.BadRequestFromString("months are required") // nolint:wrapcheck
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create request")

		return fmt.Errorf("failed to create request: %w", err)
	}

	s.invalidateCaches(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAll, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAll).Msg("cache hit for requests")

		return res, nil
	}

	requests, err := s.repo.GetAll(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get requests")

		return res, fmt.Errorf("failed to get requests: %w", err)
	}

	res.FromModels(requests)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAll, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save requests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Approve(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.StatusApproved)
}

func (s *serviceImpl) Reject(ctx context.Context, id string) error {
	return s.setStatus(ctx, id, model.StatusRejected)
}

// Paralyze closes an approved request early by stamping its end date.
func (s *serviceImpl) Paralyze(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Paralyze")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.exists(ctx, id); err != nil {
		return err
	}

	fields := bson.M{
		"end_date":    timezone.Now(),
		"modified_at": timezone.Now(),
		"modified_by": user,
	}

	if err = s.repo.Update(ctx, id, fields); err != nil {
		log.Error().Err(err).Msg("failed to paralyze request")

		return fmt.Errorf("failed to paralyze request: %w", err)
	}

	s.invalidateCaches(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.exists(ctx, id); err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete request")

		return fmt.Errorf("failed to delete request: %w", err)
	}

	s.invalidateCaches(ctx)

	return nil
}

func (s *serviceImpl) setStatus(ctx context.Context, id, status string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.exists(ctx, id); err != nil {
		return err
	}

	fields := bson.M{
		"status":      status,
		"modified_at": timezone.Now(),
		"modified_by": user,
	}

	if err = s.repo.Update(ctx, id, fields); err != nil {
		log.Error().Err(err).Str("status", status).Msg("failed to update request status")

		return fmt.Errorf("failed to update request status: %w", err)
	}

	s.invalidateCaches(ctx)

	return nil
}

func (s *serviceImpl) exists(ctx context.Context, id string) error {
	existing, err := s.repo.Get(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get request: %w", err)
	}

	if existing.ID == constant.Empty {
		return failure.NotFound("request not found") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) invalidateCaches(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAll)
	}()
}
