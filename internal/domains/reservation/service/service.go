package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"atrium/config"
	"atrium/infras/kafka"
	"atrium/infras/otel"
	auditoriumModel "atrium/internal/domains/auditorium/model"
	auditoriumRepo "atrium/internal/domains/auditorium/repository"
	congregationModel "atrium/internal/domains/congregation/model"
	congregationRepo "atrium/internal/domains/congregation/repository"
	"atrium/internal/domains/reservation/model"
	"atrium/internal/domains/reservation/model/dto"
	"atrium/internal/domains/reservation/repository"
	"atrium/shared"
	"atrium/shared/cache"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
	"atrium/shared/timezone"
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheGetGrid           = "schedule:grid"

	pqUniqueViolation = "23505"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) error
	GetByDate(ctx context.Context, date string, params gDto.QueryParams) (dto.GetReservationsResponse, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo          repository.Reservation
	congregations congregationRepo.Congregation
	auditoriums   auditoriumRepo.Auditorium
	cfg           *config.Config
	cache         cache.RedisCache
	kafka         kafka.Client
	otel          otel.Otel
}

func New(
	repo repository.Reservation,
	congregations congregationRepo.Congregation,
	auditoriums auditoriumRepo.Auditorium,
	cfg *config.Config,
	cache cache.RedisCache,
	kafka kafka.Client,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:          repo,
		congregations: congregations,
		auditoriums:   auditoriums,
		cfg:           cfg,
		cache:         cache,
		kafka:         kafka,
		otel:          otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		log.Error().Err(err).Str("date", req.Date).Msg("invalid reservation date")

		return failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	exist, err := s.auditoriums.Exist(ctx, shared.FilterByID(req.AuditoriumID, auditoriumModel.FieldID, auditoriumModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if auditorium exists")

		return fmt.Errorf("failed to check if auditorium exists: %w", err)
	}

	if !exist {
		return failure.NotFound("auditorium not found") // nolint:wrapcheck
	}

	if err = s.checkSlotFree(ctx, req.AuditoriumID, req.Date, int(date.Weekday()), req.TimeSlot); err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, req.ToModel(date, user)); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			// Concurrent writer won the check-then-write race.
			return failure.Conflict("Slot already reserved") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create reservation")

		return fmt.Errorf("failed to create reservation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateCaches(c, "")
		s.publishEvent(c, "reservation.created", req.AuditoriumID, req.Title, user)
	}()

	return nil
}

// checkSlotFree rejects a slot already claimed by a one-off reservation or by
// a congregation's fixed weekly schedule. Only each congregation's first
// meeting is consulted here; the schedule-edit path validates both meetings.
func (s *serviceImpl) checkSlotFree(ctx context.Context, auditoriumID, date string, weekday, slot int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkSlotFree")
	defer scope.End()
	defer scope.TraceIfError(err)

	taken, err := s.repo.Exist(ctx, filterBySlot(auditoriumID, date, slot))
	if err != nil {
		log.Error().Err(err).Msg("failed to check for existing reservation")

		return fmt.Errorf("failed to check for existing reservation: %w", err)
	}

	if taken {
		return failure.Conflict("Slot already reserved") // nolint:wrapcheck
	}

	congregations, err := s.congregations.GetAll(ctx, gDto.QueryParams{}, filterByAuditorium(auditoriumID))
	if err != nil {
		log.Error().Err(err).Msg("failed to load congregations for slot check")

		return fmt.Errorf("failed to load congregations for slot check: %w", err)
	}

	for idx := range congregations {
		congregation := &congregations[idx]

		meeting := congregation.Meeting1()
		if meeting.Active() && meeting.OnDay(weekday) && meeting.HasSlot(slot) {
			log.Info().
				Str("congregation", congregation.Name).
				Str("date", date).
				Int("slot", slot).
				Msg("slot claimed by fixed schedule")

			return failure.Conflict("Slot reserved for congregation: " + congregation.Name) // nolint:wrapcheck
		}
	}

	return nil
}

func (s *serviceImpl) GetByDate(ctx context.Context, date string, params gDto.QueryParams) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetByDate")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = timezone.ParseDate(date); err != nil {
		log.Error().Err(err).Str("date", date).Msg("invalid reservation date")

		return res, failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	filter := filterByDate(date)
	cacheKey := shared.BuildCacheKeyWithQuery(shared.BuildCacheKey(cacheGetAllReservation, date), params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		log.Error().Msg("reservation not found")

		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateCaches(c, id)
		s.publishEvent(c, "reservation.updated", id, req.Title, user)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		log.Error().Msg("reservation not found")

		return failure.NotFound("reservation not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.invalidateCaches(c, id)
		s.publishEvent(c, "reservation.deleted", id, reservation.Title, user)
	}()

	return nil
}

func (s *serviceImpl) invalidateCaches(ctx context.Context, id string) {
	if id != "" {
		if err := s.cache.Delete(ctx, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}
	}

	shared.InvalidateCaches(ctx, s.cache, cacheGetAllReservation)
	shared.InvalidateCaches(ctx, s.cache, cacheGetGrid)
}

func (s *serviceImpl) publishEvent(ctx context.Context, action, id, title, actor string) {
	event := gDto.SchedulingEvent{
		Action:     action,
		Entity:     model.EntityName,
		EntityID:   id,
		Name:       title,
		Actor:      actor,
		OccurredAt: timezone.Now(),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.Topics.SchedulingEvents, kafka.Message{Key: id, Value: event}); err != nil {
		log.Error().Err(err).Str("action", action).Msg("failed to publish scheduling event")
	}
}

func filterBySlot(auditoriumID, date string, slot int) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAuditoriumID,
				Value:    auditoriumID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldReservationDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldTimeSlot,
				Value:    slot,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func filterByDate(date string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldReservationDate,
				Value:    date,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}

func filterByAuditorium(auditoriumID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    congregationModel.FieldAuditoriumID,
				Value:    auditoriumID,
				Operator: gDto.FilterOperatorEq,
				Table:    congregationModel.TableName,
			},
		},
	}
}
