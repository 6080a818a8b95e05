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
	auditoriumMocks "atrium/internal/domains/auditorium/mocks"
	congregationMocks "atrium/internal/domains/congregation/mocks"
	congregationModel "atrium/internal/domains/congregation/model"
	reservationMocks "atrium/internal/domains/reservation/mocks"
	"atrium/internal/domains/reservation/model"
	"atrium/internal/domains/reservation/model/dto"
	"atrium/internal/domains/reservation/service"
	cacheMocks "atrium/shared/cache/mocks"
	"atrium/shared/constant"
	"atrium/shared/failure"
)

func intp(v int) *int { return &v }

func strp(v string) *string { return &v }

const (
	auditoriumID = "9c3bd4de-46fb-4f52-a4c8-7a3c58a7e038"
	sunday       = "2024-03-10"
)

// fixedSundayMornings owns Meeting 1 on Sundays at 10 and 11.
func fixedSundayMornings() congregationModel.Congregation {
	return congregationModel.Congregation{
		ID:           "north-id",
		Name:         "North",
		AuditoriumID: strp(auditoriumID),
		DayOfWeek:    intp(0),
		TimeSlot1:    intp(10),
		TimeSlot2:    intp(11),
	}
}

func TestReservationService_Create(t *testing.T) {
	tests := []struct {
		name          string
		req           dto.CreateReservationRequest
		setupMock     func(repo *reservationMocks.MockReservation, congregations *congregationMocks.MockCongregation, auditoriums *auditoriumMocks.MockAuditorium)
		wantErr       string
		wantErrCode   int
		expectSuccess bool
	}{
		{
			name: "free slot is reserved",
			req: dto.CreateReservationRequest{
				AuditoriumID: auditoriumID,
				Date:         sunday,
				TimeSlot:     14,
				Title:        "Circuit visit",
			},
			setupMock: func(repo *reservationMocks.MockReservation, congregations *congregationMocks.MockCongregation, auditoriums *auditoriumMocks.MockAuditorium) {
				auditoriums.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				congregations.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]congregationModel.Congregation{fixedSundayMornings()}, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectSuccess: true,
		},
		{
			name: "duplicate reservation is rejected",
			req: dto.CreateReservationRequest{
				AuditoriumID: auditoriumID,
				Date:         sunday,
				TimeSlot:     14,
				Title:        "Circuit visit",
			},
			setupMock: func(repo *reservationMocks.MockReservation, congregations *congregationMocks.MockCongregation, auditoriums *auditoriumMocks.MockAuditorium) {
				auditoriums.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:     "Slot already reserved",
			wantErrCode: http.StatusConflict,
		},
		{
			name: "slot claimed by a fixed schedule is rejected with the congregation name",
			req: dto.CreateReservationRequest{
				AuditoriumID: auditoriumID,
				Date:         sunday,
				TimeSlot:     10,
				Title:        "Circuit visit",
			},
			setupMock: func(repo *reservationMocks.MockReservation, congregations *congregationMocks.MockCongregation, auditoriums *auditoriumMocks.MockAuditorium) {
				auditoriums.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				congregations.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]congregationModel.Congregation{fixedSundayMornings()}, nil)
			},
			wantErr:     "Slot reserved for congregation: North",
			wantErrCode: http.StatusConflict,
		},
		{
			name: "fixed schedule on another weekday does not block",
			req: dto.CreateReservationRequest{
				AuditoriumID: auditoriumID,
				Date:         "2024-03-11", // a Monday
				TimeSlot:     10,
				Title:        "Maintenance",
			},
			setupMock: func(repo *reservationMocks.MockReservation, congregations *congregationMocks.MockCongregation, auditoriums *auditoriumMocks.MockAuditorium) {
				auditoriums.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				congregations.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]congregationModel.Congregation{fixedSundayMornings()}, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectSuccess: true,
		},
		{
			name: "second meetings do not block the one-off path",
			req: dto.CreateReservationRequest{
				AuditoriumID: auditoriumID,
				Date:         sunday,
				TimeSlot:     19,
				Title:        "Assembly",
			},
			setupMock: func(repo *reservationMocks.MockReservation, congregations *congregationMocks.MockCongregation, auditoriums *auditoriumMocks.MockAuditorium) {
				auditoriums.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				congregations.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]congregationModel.Congregation{{
						ID:           "west-id",
						Name:         "West",
						AuditoriumID: strp(auditoriumID),
						DayOfWeek2:   intp(0),
						TimeSlot3:    intp(19),
					}}, nil)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
			expectSuccess: true,
		},
		{
			name: "unknown auditorium is rejected",
			req: dto.CreateReservationRequest{
				AuditoriumID: auditoriumID,
				Date:         sunday,
				TimeSlot:     14,
				Title:        "Circuit visit",
			},
			setupMock: func(repo *reservationMocks.MockReservation, congregations *congregationMocks.MockCongregation, auditoriums *auditoriumMocks.MockAuditorium) {
				auditoriums.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			wantErr:     "auditorium not found",
			wantErrCode: http.StatusNotFound,
		},
		{
			name: "malformed date is rejected before any check",
			req: dto.CreateReservationRequest{
				AuditoriumID: auditoriumID,
				Date:         "10-03-2024",
				TimeSlot:     14,
				Title:        "Circuit visit",
			},
			setupMock: func(repo *reservationMocks.MockReservation, congregations *congregationMocks.MockCongregation, auditoriums *auditoriumMocks.MockAuditorium) {
			},
			wantErr:     "invalid date",
			wantErrCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := reservationMocks.NewMockReservation(ctrl)
			mockCongregations := congregationMocks.NewMockCongregation(ctrl)
			mockAuditoriums := auditoriumMocks.NewMockAuditorium(ctrl)
			mockCache := cacheMocks.NewMockRedisCache(ctrl)
			mockKafka := kafkaMocks.NewMockClient(ctrl)
			mockOtel := mocks.NewOtel()

			cfg := &config.Config{}
			cfg.Cache.TTL = 3600

			svc := service.New(mockRepo, mockCongregations, mockAuditoriums, cfg, mockCache, mockKafka, mockOtel)

			tt.setupMock(mockRepo, mockCongregations, mockAuditoriums)

			if tt.expectSuccess {
				mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
				mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			}

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.expectSuccess {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, tt.wantErrCode, failure.GetCode(err))
			}
		})
	}
}

func TestReservationService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := reservationMocks.NewMockReservation(ctrl)
	mockCongregations := congregationMocks.NewMockCongregation(ctrl)
	mockAuditoriums := auditoriumMocks.NewMockAuditorium(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockKafka := kafkaMocks.NewMockClient(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockCongregations, mockAuditoriums, cfg, mockCache, mockKafka, mockOtel)

	t.Run("title update succeeds without conflict checks", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, "New title", fields[model.FieldTitle])

				return nil
			})

		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockKafka.EXPECT().SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Update(ctx, dto.UpdateReservationRequest{Title: "New title"}, "reservation-id")

		assert.NoError(t, err)
	})

	t.Run("missing reservation is not found", func(t *testing.T) {
		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Update(ctx, dto.UpdateReservationRequest{Title: "New title"}, "missing-id")

		assert.EqualError(t, err, "reservation not found")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
