package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	kafkaMocks "atrium/infras/kafka/mocks"
	"atrium/infras/otel/mocks"
	congregationMocks "atrium/internal/domains/congregation/mocks"
	"atrium/internal/domains/congregation/model"
	"atrium/internal/domains/congregation/model/dto"
	"atrium/internal/domains/congregation/service"
	cacheMocks "atrium/shared/cache/mocks"
	"atrium/shared/constant"
	"atrium/shared/failure"
)

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

const auditoriumID = "9c3bd4de-46fb-4f52-a4c8-7a3c58a7e038"

// congregationNorth owns Meeting 1 on Sundays at 10 and 11.
func congregationNorth() model.Congregation {
	return model.Congregation{
		ID:           "north-id",
		Name:         "North",
		AuditoriumID: strp(auditoriumID),
		DayOfWeek:    intp(0),
		TimeSlot1:    intp(10),
		TimeSlot2:    intp(11),
	}
}

func TestCongregationService_Create_ConflictCheck(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateCongregationRequest
		others    []model.Congregation
		skipFetch bool
		wantErr   string
	}{
		{
			name: "no auditorium accepts unconditionally",
			req: dto.CreateCongregationRequest{
				Name: "South",
				ScheduleRequest: dto.ScheduleRequest{
					DayOfWeek: intp(0),
					TimeSlot1: intp(10),
				},
			},
			skipFetch: true,
		},
		{
			name: "day without slots is inert",
			req: dto.CreateCongregationRequest{
				Name: "South",
				ScheduleRequest: dto.ScheduleRequest{
					AuditoriumID: strp(auditoriumID),
					DayOfWeek:    intp(0),
				},
			},
			skipFetch: true,
		},
		{
			name: "slots without day are inert",
			req: dto.CreateCongregationRequest{
				Name: "South",
				ScheduleRequest: dto.ScheduleRequest{
					AuditoriumID: strp(auditoriumID),
					TimeSlot1:    intp(10),
					TimeSlot2:    intp(11),
				},
			},
			skipFetch: true,
		},
		{
			name: "overlapping meeting 1 is rejected with the owner's name",
			req: dto.CreateCongregationRequest{
				Name: "South",
				ScheduleRequest: dto.ScheduleRequest{
					AuditoriumID: strp(auditoriumID),
					DayOfWeek:    intp(0),
					TimeSlot1:    intp(11),
					TimeSlot2:    intp(12),
				},
			},
			others:  []model.Congregation{congregationNorth()},
			wantErr: "Schedule conflict (Meeting 1) with: North",
		},
		{
			name: "adjacent slots on the same day are accepted",
			req: dto.CreateCongregationRequest{
				Name: "South",
				ScheduleRequest: dto.ScheduleRequest{
					AuditoriumID: strp(auditoriumID),
					DayOfWeek:    intp(0),
					TimeSlot1:    intp(12),
					TimeSlot2:    intp(13),
				},
			},
			others: []model.Congregation{congregationNorth()},
		},
		{
			name: "clean meeting 1 does not save a conflicting meeting 2",
			req: dto.CreateCongregationRequest{
				Name: "South",
				ScheduleRequest: dto.ScheduleRequest{
					AuditoriumID: strp(auditoriumID),
					DayOfWeek:    intp(6),
					TimeSlot1:    intp(10),
					DayOfWeek2:   intp(0),
					TimeSlot3:    intp(10),
				},
			},
			others:  []model.Congregation{congregationNorth()},
			wantErr: "Schedule conflict (Meeting 2) with: North",
		},
		{
			name: "candidate meeting 1 collides with another's meeting 2",
			req: dto.CreateCongregationRequest{
				Name: "South",
				ScheduleRequest: dto.ScheduleRequest{
					AuditoriumID: strp(auditoriumID),
					DayOfWeek:    intp(2),
					TimeSlot1:    intp(19),
				},
			},
			others: []model.Congregation{{
				ID:           "west-id",
				Name:         "West",
				AuditoriumID: strp(auditoriumID),
				DayOfWeek2:   intp(2),
				TimeSlot3:    intp(19),
				TimeSlot4:    intp(20),
			}},
			wantErr: "Schedule conflict (Meeting 1) with: West",
		},
		{
			name: "half-defined neighbour never receives a conflict",
			req: dto.CreateCongregationRequest{
				Name: "South",
				ScheduleRequest: dto.ScheduleRequest{
					AuditoriumID: strp(auditoriumID),
					DayOfWeek:    intp(0),
					TimeSlot1:    intp(10),
				},
			},
			others: []model.Congregation{{
				ID:           "east-id",
				Name:         "East",
				AuditoriumID: strp(auditoriumID),
				DayOfWeek:    intp(0),
			}},
		},
		{
			name: "same slots on a different day are accepted",
			req: dto.CreateCongregationRequest{
				Name: "South",
				ScheduleRequest: dto.ScheduleRequest{
					AuditoriumID: strp(auditoriumID),
					DayOfWeek:    intp(3),
					TimeSlot1:    intp(10),
					TimeSlot2:    intp(11),
				},
			},
			others: []model.Congregation{congregationNorth()},
		},
		{
			name: "deleting the blocker clears the conflict",
			req: dto.CreateCongregationRequest{
				Name: "South",
				ScheduleRequest: dto.ScheduleRequest{
					AuditoriumID: strp(auditoriumID),
					DayOfWeek:    intp(0),
					TimeSlot1:    intp(11),
					TimeSlot2:    intp(12),
				},
			},
			others: []model.Congregation{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := congregationMocks.NewMockCongregation(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockKafka := kafkaMocks.NewMockClient(ctrl)
			mockOtel := mocks.NewOtel()

			cfg := &config.Config{}
			cfg.Cache.TTL = 3600

			svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

			if !tt.skipFetch {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(tt.others, nil)
			}

			if tt.wantErr == "" {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			}

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, http.StatusConflict, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCongregationService_Update_SelfExclusion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := congregationMocks.NewMockCongregation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	// Re-saving North's own schedule unchanged must not conflict with itself.
	north := congregationNorth()
	req := dto.UpdateCongregationRequest{
		Name: north.Name,
		ScheduleRequest: dto.ScheduleRequest{
			AuditoriumID: north.AuditoriumID,
			DayOfWeek:    north.DayOfWeek,
			TimeSlot1:    north.TimeSlot1,
			TimeSlot2:    north.TimeSlot2,
		},
	}

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Congregation{north}, nil)
	mockRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	err := svc.Update(ctx, req, north.ID)

	assert.NoError(t, err)
}

func TestCongregationService_Update_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := congregationMocks.NewMockCongregation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mockKafka, mockOtel)

	req := dto.UpdateCongregationRequest{
		Name: "South",
		ScheduleRequest: dto.ScheduleRequest{
			AuditoriumID: strp(auditoriumID),
			DayOfWeek:    intp(0),
			TimeSlot1:    intp(10),
		},
	}

	mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Congregation{congregationNorth()}, nil)

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	err := svc.Update(ctx, req, "south-id")

	assert.EqualError(t, err, "Schedule conflict (Meeting 1) with: North")
	assert.Equal(t, http.StatusConflict, failure.GetCode(err))
}

func TestMeeting_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    model.Meeting
		b    model.Meeting
		want bool
	}{
		{
			name: "same day shared slot",
			a:    model.Meeting{Day: intp(0), SlotA: intp(10), SlotB: intp(11)},
			b:    model.Meeting{Day: intp(0), SlotA: intp(11), SlotB: intp(12)},
			want: true,
		},
		{
			name: "same day disjoint slots",
			a:    model.Meeting{Day: intp(0), SlotA: intp(10), SlotB: intp(11)},
			b:    model.Meeting{Day: intp(0), SlotA: intp(12), SlotB: intp(13)},
			want: false,
		},
		{
			name: "different day same slots",
			a:    model.Meeting{Day: intp(0), SlotA: intp(10)},
			b:    model.Meeting{Day: intp(1), SlotA: intp(10)},
			want: false,
		},
		{
			name: "no day on one side",
			a:    model.Meeting{SlotA: intp(10)},
			b:    model.Meeting{Day: intp(0), SlotA: intp(10)},
			want: false,
		},
		{
			name: "no slots on one side",
			a:    model.Meeting{Day: intp(0)},
			b:    model.Meeting{Day: intp(0), SlotA: intp(10)},
			want: false,
		},
		{
			name: "single slot match on second position",
			a:    model.Meeting{Day: intp(4), SlotB: intp(20)},
			b:    model.Meeting{Day: intp(4), SlotA: intp(20)},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}
