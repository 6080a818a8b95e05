package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"atrium/config"
	"atrium/infras/otel/mocks"
	settingMocks "atrium/internal/domains/setting/mocks"
	"atrium/internal/domains/setting/model"
	"atrium/internal/domains/setting/model/dto"
	"atrium/internal/domains/setting/service"
	cacheMocks "atrium/shared/cache/mocks"
	"atrium/shared/constant"
)

func newSettingService(t *testing.T) (*settingMocks.MockSetting, *cacheMocks.MockRedisCache, service.Setting) {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := settingMocks.NewMockSetting(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return repo, redisCache, service.New(repo, cfg, redisCache, mocks.NewOtel())
}

func TestSettingService_Get_NeverWritten(t *testing.T) {
	repo, redisCache, svc := newSettingService(t)

	redisCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(assert.AnError)
	repo.EXPECT().Get(gomock.Any()).Return(model.Settings{}, nil)
	redisCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := svc.Get(context.Background())
	assert.NoError(t, err)
	assert.Empty(t, res.Name)
}

func TestSettingService_Update_Upserts(t *testing.T) {
	repo, redisCache, svc := newSettingService(t)

	repo.EXPECT().
		Set(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, settings model.Settings) error {
			assert.Equal(t, model.SettingsID, settings.ID)
			assert.Equal(t, "Congregação Central", settings.Name)

			return nil
		})
	redisCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	err := svc.Update(ctx, dto.UpdateSettingsRequest{Name: "Congregação Central"})
	assert.NoError(t, err)
}
