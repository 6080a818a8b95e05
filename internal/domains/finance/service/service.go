package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"atrium/config"
	"atrium/infras/otel"
	"atrium/infras/s3"
	"atrium/internal/domains/finance/model"
	"atrium/internal/domains/finance/model/dto"
	"atrium/internal/domains/finance/repository"
	"atrium/shared"
	"atrium/shared/cache"
	"atrium/shared/constant"
	"atrium/shared/failure"
	"atrium/shared/timezone"
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	cacheGetAllTransaction = "transaction:gets"
	cacheGetAllResolution  = "resolution:gets"

	backupDirectory   = "finance-backups"
	backupContentType = "application/json"
)

type Finance interface {
	CreateIncome(ctx context.Context, req dto.CreateIncomeRequest) error
	CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) error
	BranchTransfer(ctx context.Context, req dto.BranchTransferRequest) error
	GetAllTransactions(ctx context.Context) (dto.GetTransactionsResponse, error)
	UpdateTransaction(ctx context.Context, req dto.UpdateTransactionRequest, id string) error
	DeleteTransaction(ctx context.Context, id string) error
	Backup(ctx context.Context) (dto.BackupResponse, error)
	Restore(ctx context.Context, req dto.RestoreRequest) error
	GetResolutions(ctx context.Context) (dto.GetResolutionsResponse, error)
	CreateResolution(ctx context.Context, req dto.CreateResolutionRequest) error
	UpdateResolution(ctx context.Context, req dto.UpdateResolutionRequest, id string) error
	DeleteResolution(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo    repository.Finance
	cfg     *config.Config
	cache   cache.RedisCache
	storage s3.S3
	otel    otel.Otel
}

func New(repo repository.Finance, cfg *config.Config, cache cache.RedisCache, storage s3.S3, otel otel.Otel) Finance {
	return &serviceImpl{
		repo:    repo,
		cfg:     cfg,
		cache:   cache,
		storage: storage,
		otel:    otel,
	}
}

func (s *serviceImpl) CreateIncome(ctx context.Context, req dto.CreateIncomeRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateIncome")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	if err = s.repo.InsertTransaction(ctx, req.ToModel(date, user)); err != nil {
		log.Error().Err(err).Msg("failed to create income")

		return fmt.Errorf("failed to create income: %w", err)
	}

	s.invalidateTransactionCaches(ctx)

	return nil
}

func (s *serviceImpl) CreateExpense(ctx context.Context, req dto.CreateExpenseRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateExpense")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	if err = s.repo.InsertTransaction(ctx, req.ToModel(date, user)); err != nil {
		log.Error().Err(err).Msg("failed to create expense")

		return fmt.Errorf("failed to create expense: %w", err)
	}

	s.invalidateTransactionCaches(ctx)

	return nil
}

// BranchTransfer marks the selected income rows as sent and records a
// completed transfer row for the total amount.
func (s *serviceImpl) BranchTransfer(ctx context.Context, req dto.BranchTransferRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".BranchTransfer")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	if err = s.repo.MarkTransactionsSent(ctx, req.TransactionIDs); err != nil {
		log.Error().Err(err).Msg("failed to mark transactions sent")

		return fmt.Errorf("failed to mark transactions sent: %w", err)
	}

	if err = s.repo.InsertTransaction(ctx, req.ToModel(date, user)); err != nil {
		log.Error().Err(err).Msg("failed to record branch transfer")

		return fmt.Errorf("failed to record branch transfer: %w", err)
	}

	s.invalidateTransactionCaches(ctx)

	return nil
}

func (s *serviceImpl) GetAllTransactions(ctx context.Context) (res dto.GetTransactionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAllTransactions")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllTransaction, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllTransaction).Msg("cache hit for transactions")

		return res, nil
	}

	transactions, err := s.repo.GetAllTransactions(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get transactions")

		return res, fmt.Errorf("failed to get transactions: %w", err)
	}

	res.FromModels(transactions)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllTransaction, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save transactions to cache")
		}
	}()

	return res, nil
}

// UpdateTransaction re-derives income status from the category: congregation
// income completes immediately, any other income falls back to pending unless
// it has already been sent to the branch.
func (s *serviceImpl) UpdateTransaction(ctx context.Context, req dto.UpdateTransactionRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateTransaction")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	date, err := timezone.ParseDate(req.Date)
	if err != nil {
		return failure.BadRequestFromString("invalid date") // nolint:wrapcheck
	}

	existing, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	if existing.ID == constant.Empty {
		return failure.NotFound("transaction not found") // nolint:wrapcheck
	}

	fields := bson.M{
		"type":        req.Type,
		"amount":      req.Amount,
		"date":        date,
		"description": req.Description,
		"modified_at": timezone.Now(),
		"modified_by": user,
	}

	if req.Status != "" {
		fields["status"] = req.Status
	}

	if req.Type == model.TypeIncome && req.Category != "" {
		fields["category"] = req.Category

		if req.Category == model.CategoryCongregation {
			fields["status"] = model.StatusCompleted
		} else if req.Status != model.StatusSent {
			fields["status"] = model.StatusPendingSend
		}
	}

	if err = s.repo.UpdateTransaction(ctx, id, fields); err != nil {
		log.Error().Err(err).Msg("failed to update transaction")

		return fmt.Errorf("failed to update transaction: %w", err)
	}

	s.invalidateTransactionCaches(ctx)

	return nil
}

func (s *serviceImpl) DeleteTransaction(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteTransaction")
	defer scope.End()
	defer scope.TraceIfError(err)

	existing, err := s.repo.GetTransaction(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get transaction: %w", err)
	}

	if existing.ID == constant.Empty {
		return failure.NotFound("transaction not found") // nolint:wrapcheck
	}

	if err = s.repo.DeleteTransaction(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete transaction")

		return fmt.Errorf("failed to delete transaction: %w", err)
	}

	s.invalidateTransactionCaches(ctx)

	return nil
}

// Backup writes the full ledger as a JSON snapshot to object storage.
func (s *serviceImpl) Backup(ctx context.Context) (res dto.BackupResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Backup")
	defer scope.End()
	defer scope.TraceIfError(err)

	transactions, err := s.repo.GetAllTransactions(ctx)
	if err != nil {
		return res, fmt.Errorf("failed to get transactions: %w", err)
	}

	var snapshot dto.GetTransactionsResponse
	snapshot.FromModels(transactions)

	payload, err := json.Marshal(snapshot)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal backup snapshot")

		return res, fmt.Errorf("failed to marshal backup snapshot: %w", err)
	}

	fileName := fmt.Sprintf("transactions-%s.json", timezone.Now().Format("20060102-150405"))

	url, err := s.storage.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, backupDirectory, fileName, backupContentType, payload)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload backup snapshot")

		return res, fmt.Errorf("failed to upload backup snapshot: %w", err)
	}

	return dto.BackupResponse{
		URL:       url,
		FileName:  fileName,
		TotalData: len(transactions),
	}, nil
}

// Restore re-inserts snapshot rows under fresh identifiers. Rows are taken as
// given; invalid rows are rejected by request validation before this runs.
func (s *serviceImpl) Restore(ctx context.Context, req dto.RestoreRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Restore")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	transactions := make([]model.Transaction, 0, len(req.Transactions))

	for idx := range req.Transactions {
		row := &req.Transactions[idx]

		date, err := timezone.ParseDate(row.Date)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid date in row %d", idx)) // nolint:wrapcheck
		}

		transactions = append(transactions, row.ToModel(date, user))
	}

	if err = s.repo.InsertTransactions(ctx, transactions); err != nil {
		log.Error().Err(err).Msg("failed to restore transactions")

		return fmt.Errorf("failed to restore transactions: %w", err)
	}

	s.invalidateTransactionCaches(ctx)

	return nil
}

func (s *serviceImpl) GetResolutions(ctx context.Context) (res dto.GetResolutionsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetResolutions")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cacheGetAllResolution, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheGetAllResolution).Msg("cache hit for resolutions")

		return res, nil
	}

	resolutions, err := s.repo.GetResolutions(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to get resolutions")

		return res, fmt.Errorf("failed to get resolutions: %w", err)
	}

	res.FromModels(resolutions)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheGetAllResolution, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save resolutions to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) CreateResolution(ctx context.Context, req dto.CreateResolutionRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateResolution")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	startDate, err := timezone.ParseDate(req.StartDate)
	if err != nil {
		return failure.BadRequestFromString("invalid start date") // nolint:wrapcheck
	}

	if err = s.repo.InsertResolution(ctx, req.ToModel(startDate, user)); err != nil {
		log.Error().Err(err).Msg("failed to create resolution")

		return fmt.Errorf("failed to create resolution: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllResolution)
	}()

	return nil
}

func (s *serviceImpl) UpdateResolution(ctx context.Context, req dto.UpdateResolutionRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateResolution")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := bson.M{
		"modified_at": timezone.Now(),
		"modified_by": user,
	}

	if req.Description != "" {
		fields["description"] = req.Description
	}

	if req.Amount != nil {
		fields["amount"] = *req.Amount
	}

	if req.IsActive != nil {
		fields["is_active"] = *req.IsActive
	}

	if err = s.repo.UpdateResolution(ctx, id, fields); err != nil {
		log.Error().Err(err).Msg("failed to update resolution")

		return fmt.Errorf("failed to update resolution: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllResolution)
	}()

	return nil
}

func (s *serviceImpl) DeleteResolution(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".DeleteResolution")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = s.repo.DeleteResolution(ctx, id); err != nil {
		log.Error().Err(err).Msg("failed to delete resolution")

		return fmt.Errorf("failed to delete resolution: %w", err)
	}

	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllResolution)
	}()

	return nil
}

func (s *serviceImpl) invalidateTransactionCaches(ctx context.Context) {
	go func() {
		shared.InvalidateCaches(context.WithoutCancel(ctx), s.cache, cacheGetAllTransaction)
	}()
}
