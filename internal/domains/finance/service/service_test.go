package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/mock/gomock"

	"atrium/config"
	"atrium/infras/otel/mocks"
	s3Mocks "atrium/infras/s3/mocks"
	financeMocks "atrium/internal/domains/finance/mocks"
	"atrium/internal/domains/finance/model"
	"atrium/internal/domains/finance/model/dto"
	"atrium/internal/domains/finance/service"
	cacheMocks "atrium/shared/cache/mocks"
	"atrium/shared/constant"
	"atrium/shared/failure"
)

type financeFixture struct {
	repo    *financeMocks.MockFinance
	cache   *cacheMocks.MockRedisCache
	storage *s3Mocks.MockS3
	svc     service.Finance
}

func newFinanceService(t *testing.T) financeFixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	repo := financeMocks.NewMockFinance(ctrl)
	redisCache := cacheMocks.NewMockRedisCache(ctrl)
	storage := s3Mocks.NewMockS3(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "atrium-backups"

	return financeFixture{
		repo:    repo,
		cache:   redisCache,
		storage: storage,
		svc:     service.New(repo, cfg, redisCache, storage, mocks.NewOtel()),
	}
}

func testContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
}

func (f financeFixture) expectCacheInvalidation() {
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
}

func TestFinanceService_CreateIncome(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateIncomeRequest
		wantStatus string
		wantErr    string
	}{
		{
			name: "congregation income completes immediately",
			req: dto.CreateIncomeRequest{
				Amount:   250,
				Date:     "2024-03-10",
				Category: model.CategoryCongregation,
			},
			wantStatus: model.StatusCompleted,
		},
		{
			name: "worldwide work income waits to be sent",
			req: dto.CreateIncomeRequest{
				Amount:   100,
				Date:     "2024-03-10",
				Category: model.CategoryWorldwideWork,
			},
			wantStatus: model.StatusPendingSend,
		},
		{
			name: "malformed date is rejected",
			req: dto.CreateIncomeRequest{
				Amount:   100,
				Date:     "10-03-2024",
				Category: model.CategoryCongregation,
			},
			wantErr: "invalid date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFinanceService(t)

			if tt.wantErr == "" {
				f.repo.EXPECT().
					InsertTransaction(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, transaction model.Transaction) error {
						assert.Equal(t, model.TypeIncome, transaction.Type)
						assert.Equal(t, tt.wantStatus, transaction.Status)
						assert.NotEmpty(t, transaction.ID)

						return nil
					})
				f.expectCacheInvalidation()
			}

			err := f.svc.CreateIncome(testContext(), tt.req)

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFinanceService_CreateExpense(t *testing.T) {
	f := newFinanceService(t)

	f.repo.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, transaction model.Transaction) error {
			assert.Equal(t, model.TypeExpense, transaction.Type)
			assert.Equal(t, model.StatusCompleted, transaction.Status)
			assert.Empty(t, transaction.Category)

			return nil
		})
	f.expectCacheInvalidation()

	err := f.svc.CreateExpense(testContext(), dto.CreateExpenseRequest{
		Amount:      75,
		Date:        "2024-03-11",
		Description: "Cleaning supplies",
	})
	assert.NoError(t, err)
}

func TestFinanceService_BranchTransfer(t *testing.T) {
	f := newFinanceService(t)

	ids := []string{"tx-1", "tx-2"}

	f.repo.EXPECT().MarkTransactionsSent(gomock.Any(), ids).Return(nil)
	f.repo.EXPECT().
		InsertTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, transaction model.Transaction) error {
			assert.Equal(t, model.TypeBranchTransfer, transaction.Type)
			assert.Equal(t, model.StatusCompleted, transaction.Status)
			assert.Equal(t, "Branch transfer", transaction.Description)

			return nil
		})
	f.expectCacheInvalidation()

	err := f.svc.BranchTransfer(testContext(), dto.BranchTransferRequest{
		Amount:         350,
		Date:           "2024-03-31",
		TransactionIDs: ids,
	})
	assert.NoError(t, err)
}

func TestFinanceService_BranchTransfer_MarkFails(t *testing.T) {
	f := newFinanceService(t)

	f.repo.EXPECT().
		MarkTransactionsSent(gomock.Any(), gomock.Any()).
		Return(errors.New("mongo down"))

	err := f.svc.BranchTransfer(testContext(), dto.BranchTransferRequest{
		Amount:         350,
		Date:           "2024-03-31",
		TransactionIDs: []string{"tx-1"},
	})
	assert.Error(t, err)
}

func TestFinanceService_UpdateTransaction(t *testing.T) {
	existing := model.Transaction{
		ID:     "tx-1",
		Type:   model.TypeIncome,
		Status: model.StatusPendingSend,
	}

	tests := []struct {
		name       string
		req        dto.UpdateTransactionRequest
		existing   model.Transaction
		wantStatus string
		wantErr    string
		wantCode   int
	}{
		{
			name: "switching income to congregation completes it",
			req: dto.UpdateTransactionRequest{
				Type:     model.TypeIncome,
				Amount:   100,
				Date:     "2024-03-10",
				Category: model.CategoryCongregation,
				Status:   model.StatusPendingSend,
			},
			existing:   existing,
			wantStatus: model.StatusCompleted,
		},
		{
			name: "non-congregation income resets to pending",
			req: dto.UpdateTransactionRequest{
				Type:     model.TypeIncome,
				Amount:   100,
				Date:     "2024-03-10",
				Category: model.CategoryRenovation,
				Status:   model.StatusCompleted,
			},
			existing:   existing,
			wantStatus: model.StatusPendingSend,
		},
		{
			name: "sent income keeps its sent status",
			req: dto.UpdateTransactionRequest{
				Type:     model.TypeIncome,
				Amount:   100,
				Date:     "2024-03-10",
				Category: model.CategoryWorldwideWork,
				Status:   model.StatusSent,
			},
			existing:   existing,
			wantStatus: model.StatusSent,
		},
		{
			name: "missing transaction is not found",
			req: dto.UpdateTransactionRequest{
				Type:   model.TypeExpense,
				Amount: 100,
				Date:   "2024-03-10",
			},
			existing: model.Transaction{},
			wantErr:  "transaction not found",
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFinanceService(t)

			f.repo.EXPECT().GetTransaction(gomock.Any(), "tx-1").Return(tt.existing, nil)

			if tt.wantErr == "" {
				f.repo.EXPECT().
					UpdateTransaction(gomock.Any(), "tx-1", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, fields bson.M) error {
						assert.Equal(t, tt.wantStatus, fields["status"])

						return nil
					})
				f.expectCacheInvalidation()
			}

			err := f.svc.UpdateTransaction(testContext(), tt.req, "tx-1")

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFinanceService_GetAllTransactions(t *testing.T) {
	f := newFinanceService(t)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))
	f.repo.EXPECT().
		GetAllTransactions(gomock.Any()).
		Return([]model.Transaction{
			{ID: "tx-2", Type: model.TypeExpense, Date: time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)},
			{ID: "tx-1", Type: model.TypeIncome, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
		}, nil)
	f.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	res, err := f.svc.GetAllTransactions(testContext())
	assert.NoError(t, err)
	assert.Equal(t, 2, res.TotalData)
	assert.Equal(t, "2024-03-12", res.Transactions[0].Date)
}

func TestFinanceService_Backup(t *testing.T) {
	f := newFinanceService(t)

	transactions := []model.Transaction{
		{ID: "tx-1", Type: model.TypeIncome, Amount: 100, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)},
	}

	f.repo.EXPECT().GetAllTransactions(gomock.Any()).Return(transactions, nil)
	f.storage.EXPECT().
		UploadFileBytes(gomock.Any(), "atrium-backups", "finance-backups", gomock.Any(), "application/json", gomock.Any()).
		DoAndReturn(func(_ context.Context, _, _, fileName, _ string, data []byte) (string, error) {
			var snapshot dto.GetTransactionsResponse
			assert.NoError(t, json.Unmarshal(data, &snapshot))
			assert.Equal(t, 1, snapshot.TotalData)

			return "https://cdn.example.com/finance-backups/" + fileName, nil
		})

	res, err := f.svc.Backup(testContext())
	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Contains(t, res.URL, res.FileName)
}

func TestFinanceService_Restore(t *testing.T) {
	f := newFinanceService(t)

	f.repo.EXPECT().
		InsertTransactions(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, transactions []model.Transaction) error {
			assert.Len(t, transactions, 2)
			assert.NotEmpty(t, transactions[0].ID)
			assert.Equal(t, model.StatusCompleted, transactions[1].Status)

			return nil
		})
	f.expectCacheInvalidation()

	err := f.svc.Restore(testContext(), dto.RestoreRequest{
		Transactions: []dto.RestoreTransaction{
			{Type: model.TypeIncome, Amount: 100, Date: "2024-03-10", Category: model.CategoryCongregation, Status: model.StatusCompleted},
			{Type: model.TypeExpense, Amount: 50, Date: "2024-03-11"},
		},
	})
	assert.NoError(t, err)
}

func TestFinanceService_Resolutions(t *testing.T) {
	f := newFinanceService(t)

	f.repo.EXPECT().
		InsertResolution(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, resolution model.Resolution) error {
			assert.True(t, resolution.IsActive)
			assert.NotEmpty(t, resolution.ID)

			return nil
		})
	f.expectCacheInvalidation()

	err := f.svc.CreateResolution(testContext(), dto.CreateResolutionRequest{
		Description: "Auditorium renovation fund",
		Amount:      5000,
		StartDate:   "2024-01-01",
	})
	assert.NoError(t, err)

	inactive := false

	f.repo.EXPECT().
		UpdateResolution(gomock.Any(), "res-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, fields bson.M) error {
			assert.Equal(t, false, fields["is_active"])
			assert.NotContains(t, fields, "description")

			return nil
		})

	err = f.svc.UpdateResolution(testContext(), dto.UpdateResolutionRequest{IsActive: &inactive}, "res-1")
	assert.NoError(t, err)
}
