package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	"atrium/infras/otel/mocks"
	eventMocks "atrium/internal/domains/event/mocks"
	"atrium/internal/domains/event/model"
	"atrium/internal/domains/event/model/dto"
	"atrium/internal/domains/event/service"
	cacheMocks "atrium/shared/cache/mocks"
	"atrium/shared/constant"
	gDto "atrium/shared/dto"
	"atrium/shared/timezone"
)

func newService(t *testing.T) (service.Event, *eventMocks.MockEvent, *cacheMocks.MockRedisCache) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockRepo := eventMocks.NewMockEvent(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mockOtel), mockRepo, mockCache
}

func TestEventService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreateEventRequest
		setupMock func(repo *eventMocks.MockEvent, cache *cacheMocks.MockRedisCache)
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateEventRequest{
				Name:        "Regional convention",
				Date:        "2024-07-12",
				Description: "Three day program",
			},
			setupMock: func(repo *eventMocks.MockEvent, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, event model.Event) error {
						assert.Equal(t, "Regional convention", event.Name)
						assert.Equal(t, "2024-07-12", event.EventDate.Format(constant.CalendarDateFormat))

						return nil
					})

				cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "malformed date",
			req: dto.CreateEventRequest{
				Name: "Regional convention",
				Date: "12/07/2024",
			},
			setupMock: func(repo *eventMocks.MockEvent, cache *cacheMocks.MockRedisCache) {},
			wantErr:   true,
		},
		{
			name: "repository error",
			req: dto.CreateEventRequest{
				Name: "Regional convention",
				Date: "2024-07-12",
			},
			setupMock: func(repo *eventMocks.MockEvent, cache *cacheMocks.MockRedisCache) {
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockCache := newService(t)
			tt.setupMock(mockRepo, mockCache)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEventService_GetAll(t *testing.T) {
	svc, mockRepo, mockCache := newService(t)

	date, _ := timezone.ParseDate("2024-07-12")
	events := []model.Event{{ID: "event-id", Name: "Regional convention", EventDate: date}}

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss"))
	mockRepo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)
	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Event, error) {
			assert.Equal(t, model.FieldEventDate, params.SortBy)

			return events, nil
		})
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Equal(t, "2024-07-12", res.Events[0].Date)
}

func TestEventService_Update(t *testing.T) {
	t.Run("empty request rejected", func(t *testing.T) {
		svc, _, _ := newService(t)

		err := svc.Update(context.Background(), dto.UpdateEventRequest{}, "event-id")

		assert.Error(t, err)
	})

	t.Run("date change is applied", func(t *testing.T) {
		svc, mockRepo, mockCache := newService(t)

		mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
				assert.Contains(t, fields, model.FieldEventDate)

				return nil
			})

		mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		err := svc.Update(ctx, dto.UpdateEventRequest{Date: "2024-08-01"}, "event-id")

		assert.NoError(t, err)
	})
}
