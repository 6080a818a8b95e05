package service

import (
	"atrium/internal/domains/congregation/model"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/failure"
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

// checkScheduleConflict validates a candidate weekly schedule against every
// other congregation sharing the same auditorium. The two candidate meetings
// are checked independently, each against both meetings of every other
// congregation. The first collision found rejects the whole write; the
// rejection names the colliding congregation and which candidate meeting hit.
//
// A candidate without an auditorium cannot collide and is accepted without
// touching storage. Half-defined meetings (no day, or no slots) neither
// trigger nor receive conflicts. When the candidate carries an ID, that
// congregation is excluded so edits never conflict with themselves.
func (s *serviceImpl) checkScheduleConflict(ctx context.Context, candidate model.Congregation) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkScheduleConflict")
	defer scope.End()
	defer scope.TraceIfError(err)

	if candidate.AuditoriumID == nil {
		return nil
	}

	meetings := []model.Meeting{candidate.Meeting1(), candidate.Meeting2()}
	if !meetings[0].Active() && !meetings[1].Active() {
		return nil
	}

	others, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filterByAuditorium(*candidate.AuditoriumID))
	if err != nil {
		log.Error().Err(err).Msg("failed to load congregations for conflict check")

		return fmt.Errorf("failed to load congregations for conflict check: %w", err)
	}

	for i, meeting := range meetings {
		if !meeting.Active() {
			continue
		}

		for idx := range others {
			other := &others[idx]
			if other.ID == candidate.ID {
				continue
			}

			if meeting.Overlaps(other.Meeting1()) || meeting.Overlaps(other.Meeting2()) {
				log.Info().
					Str("candidate", candidate.Name).
					Str("collidesWith", other.Name).
					Int("meeting", i+1).
					Msg("schedule conflict detected")

				return failure.Conflict(fmt.Sprintf("Schedule conflict (Meeting %d) with: %s", i+1, other.Name)) // nolint:wrapcheck
			}
		}
	}

	return nil
}

func filterByAuditorium(auditoriumID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldAuditoriumID,
				Value:    auditoriumID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	}
}
