package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/mock/gomock"

	"atrium/config"
	"atrium/infras/otel/mocks"
	requestMocks "atrium/internal/domains/request/mocks"
	"atrium/internal/domains/request/model"
	"atrium/internal/domains/request/model/dto"
	"atrium/internal/domains/request/service"
	cacheMocks "atrium/shared/cache/mocks"
	"atrium/shared/constant"
	"atrium/shared/failure"
)

type requestFixture struct {
	repo  *requestMocks.MockRequest
	cache *cacheMocks.MockRedisCache
	svc   service.Request
}

func newRequestService(t *testing.T) requestFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := requestMocks.NewMockRequest(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return requestFixture{
		repo:  repo,
		cache: redisCache,
		svc:   service.New(repo, cfg, redisCache, mocks.NewOtel()),
	}
}

func requestContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func TestRequestService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateRequestRequest
		wantMonths []string
		wantHours  int
		wantErr    string
	}{
		{
			name: "non-continuous request keeps months and hours",
			req: dto.CreateRequestRequest{
				Name:   "Ana",
				Year:   2024,
				Months: []string{"march", "april"},
				Hours:  30,
			},
			wantMonths: []string{"march", "april"},
			wantHours:  30,
		},
		{
			name: "continuous request drops months and hours",
			req: dto.CreateRequestRequest{
				Name:         "Bruno",
				Year:         2024,
				Months:       []string{"march"},
				IsContinuous: true,
				Hours:        15,
			},
		},
		{
			name: "non-continuous request without hours is rejected",
			req: dto.CreateRequestRequest{
				Name:   "Carla",
				Year:   2024,
				Months: []string{"march"},
			},
			wantErr: "hours must be 15 or 30",
		},
		{
			name: "non-continuous request without months is rejected",
			req: dto.CreateRequestRequest{
				Name:  "Davi",
				Year:  2024,
				Hours: 15,
			},
			wantErr: "months are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRequestService(t)

			if tt.wantErr == "" {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, request model.Request) error {
						assert.Equal(t, model.StatusPending, request.Status)
						assert.Equal(t, tt.wantMonths, request.Months)
						assert.Equal(t, tt.wantHours, request.Hours)
						assert.False(t, request.RequestDate.IsZero())
						assert.Nil(t, request.EndDate)

						return nil
					})
				f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
			}

			err := f.svc.Create(requestContext(), tt.req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestService_StatusTransitions(t *testing.T) {
	tests := []struct {
		name       string
		run        func(svc service.Request) error
		wantStatus string
	}{
		{
			name:       "approve",
			run:        func(svc service.Request) error { return svc.Approve(requestContext(), "req-1") },
			wantStatus: model.StatusApproved,
		},
		{
			name:       "reject",
			run:        func(svc service.Request) error { return svc.Reject(requestContext(), "req-1") },
			wantStatus: model.StatusRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newRequestService(t)

			f.repo.EXPECT().
				Get(gomock.Any(), "req-1").
				Return(model.Request{ID: "req-1", Status: model.StatusPending}, nil)
			f.repo.EXPECT().
				Update(gomock.Any(), "req-1", gomock.Any()).
				DoAndReturn(func(_ context.Context, _ string, fields bson.M) error {
					assert.Equal(t, tt.wantStatus, fields["status"])

					return nil
				})
			f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

			assert.NoError(t, tt.run(f.svc))
		})
	}
}

func TestRequestService_Paralyze(t *testing.T) {
	f := newRequestService(t)

	f.repo.EXPECT().
		Get(gomock.Any(), "req-1").
		Return(model.Request{ID: "req-1", Status: model.StatusApproved}, nil)
	f.repo.EXPECT().
		Update(gomock.Any(), "req-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields bson.M) error {
			assert.Contains(t, fields, "end_date")
			assert.NotContains(t, fields, "status")

			return nil
		})
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	assert.NoError(t, f.svc.Paralyze(requestContext(), "req-1"))
}

func TestRequestService_NotFound(t *testing.T) {
	f := newRequestService(t)

	f.repo.EXPECT().Get(gomock.Any(), "missing").Return(model.Request{}, nil)

	err := f.svc.Approve(requestContext(), "missing")
	assert.EqualError(t, err, "request not found")
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
}
