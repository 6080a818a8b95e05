package finance

import (
	"net/http"

	"atrium/infras/otel"
	"atrium/internal/domains/finance/model/dto"
	"atrium/internal/domains/finance/service"
	"atrium/shared/constant"
	"atrium/shared/validator"
	"atrium/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Finance
	otel    otel.Otel
}

func New(service service.Finance, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/finance", func(routerGroup chi.Router) {
		routerGroup.Post("/incomes", handler.CreateIncome)
		routerGroup.Post("/expenses", handler.CreateExpense)
		routerGroup.Post("/transfers", handler.BranchTransfer)
		routerGroup.Get("/transactions", handler.GetTransactions)
		routerGroup.Patch("/transactions/{id}", handler.UpdateTransaction)
		routerGroup.Delete("/transactions/{id}", handler.DeleteTransaction)
		routerGroup.Post("/backup", handler.Backup)
		routerGroup.Post("/restore", handler.Restore)
		routerGroup.Get("/resolutions", handler.GetResolutions)
		routerGroup.Post("/resolutions", handler.CreateResolution)
		routerGroup.Patch("/resolutions/{id}", handler.UpdateResolution)
		routerGroup.Delete("/resolutions/{id}", handler.DeleteResolution)
	})
}

// CreateIncome records an income entry.
// @Summary Record an income
// @Description Record an income entry. Congregation income is completed immediately; other categories wait to be sent to the branch.
// @Tags Finance
// @Accept json
// @Produce json
// @Param request body dto.CreateIncomeRequest true "Create Income Request"
// @Success 201 {object} response.Message "Income recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance/incomes [post]
// @Security BearerAuth
func (handler *Handler) CreateIncome(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateIncome")
	defer scope.End()

	req := dto.CreateIncomeRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateIncome(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record income")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Income recorded successfully")

	response.WithMessage(w, http.StatusCreated, "Income recorded successfully")
}

// CreateExpense records an expense entry.
// @Summary Record an expense
// @Description Record an expense entry. Expenses are always completed.
// @Tags Finance
// @Accept json
// @Produce json
// @Param request body dto.CreateExpenseRequest true "Create Expense Request"
// @Success 201 {object} response.Message "Expense recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance/expenses [post]
// @Security BearerAuth
func (handler *Handler) CreateExpense(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateExpense")
	defer scope.End()

	req := dto.CreateExpenseRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateExpense(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record expense")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Expense recorded successfully")

	response.WithMessage(w, http.StatusCreated, "Expense recorded successfully")
}

// BranchTransfer sends pending income to the branch.
// @Summary Register a branch transfer
// @Description Mark the selected transactions as sent and record a completed transfer entry for the total.
// @Tags Finance
// @Accept json
// @Produce json
// @Param request body dto.BranchTransferRequest true "Branch Transfer Request"
// @Success 201 {object} response.Message "Branch transfer recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance/transfers [post]
// @Security BearerAuth
func (handler *Handler) BranchTransfer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BranchTransfer")
	defer scope.End()

	req := dto.BranchTransferRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.BranchTransfer(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record branch transfer")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Branch transfer recorded successfully")

	response.WithMessage(w, http.StatusCreated, "Branch transfer recorded successfully")
}

// GetTransactions lists the full ledger, newest first.
// @Summary Get all transactions
// @Description Retrieve every ledger entry ordered by date descending.
// @Tags Finance
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetTransactionsResponse "List of transactions"
// @Failure 500 {object} response.Error
// @Router /v1/finance/transactions [get]
// @Security BearerAuth
func (handler *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTransactions")
	defer scope.End()

	transactions, err := handler.service.GetAllTransactions(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get transactions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transactions retrieved successfully")

	response.WithJSON(w, http.StatusOK, transactions)
}

// UpdateTransaction updates a ledger entry by its ID.
// @Summary Update a transaction by ID
// @Description Update a ledger entry; the status of income entries is re-derived from the category.
// @Tags Finance
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Update Transaction Request"
// @Success 200 {object} response.Message "Transaction updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance/transactions/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTransaction")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateTransactionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateTransaction(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update transaction")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction updated successfully")

	response.WithMessage(w, http.StatusOK, "Transaction updated successfully")
}

// DeleteTransaction deletes a ledger entry by its ID.
// @Summary Delete a transaction by ID
// @Description Delete a ledger entry using its unique identifier.
// @Tags Finance
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Success 200 {object} response.Message "Transaction deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance/transactions/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteTransaction(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTransaction")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteTransaction(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete transaction")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Transaction deleted successfully")

	response.WithMessage(w, http.StatusOK, "Transaction deleted successfully")
}

// Backup snapshots the ledger to object storage.
// @Summary Back up the ledger
// @Description Write the full ledger as a JSON snapshot to object storage and return its location.
// @Tags Finance
// @Accept json
// @Produce json
// @Success 200 {object} dto.BackupResponse "Backup snapshot details"
// @Failure 500 {object} response.Error
// @Router /v1/finance/backup [post]
// @Security BearerAuth
func (handler *Handler) Backup(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Backup")
	defer scope.End()

	res, err := handler.service.Backup(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to back up ledger")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ledger backed up successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// Restore re-inserts ledger rows from a snapshot.
// @Summary Restore the ledger from a snapshot
// @Description Insert the snapshot rows into the ledger under fresh identifiers.
// @Tags Finance
// @Accept json
// @Produce json
// @Param request body dto.RestoreRequest true "Restore Request"
// @Success 200 {object} response.Message "Ledger restored successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance/restore [post]
// @Security BearerAuth
func (handler *Handler) Restore(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Restore")
	defer scope.End()

	req := dto.RestoreRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Restore(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to restore ledger")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Ledger restored successfully")

	response.WithMessage(w, http.StatusOK, "Ledger restored successfully")
}

// GetResolutions lists all resolutions, newest first.
// @Summary Get all resolutions
// @Description Retrieve all standing resolutions ordered by start date descending.
// @Tags Finance
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetResolutionsResponse "List of resolutions"
// @Failure 500 {object} response.Error
// @Router /v1/finance/resolutions [get]
// @Security BearerAuth
func (handler *Handler) GetResolutions(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetResolutions")
	defer scope.End()

	resolutions, err := handler.service.GetResolutions(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get resolutions")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resolutions retrieved successfully")

	response.WithJSON(w, http.StatusOK, resolutions)
}

// CreateResolution records a standing resolution.
// @Summary Create a resolution
// @Description Record a standing resolution. New resolutions start active.
// @Tags Finance
// @Accept json
// @Produce json
// @Param request body dto.CreateResolutionRequest true "Create Resolution Request"
// @Success 201 {object} response.Message "Resolution created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance/resolutions [post]
// @Security BearerAuth
func (handler *Handler) CreateResolution(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateResolution")
	defer scope.End()

	req := dto.CreateResolutionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CreateResolution(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create resolution")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resolution created successfully")

	response.WithMessage(w, http.StatusCreated, "Resolution created successfully")
}

// UpdateResolution updates a resolution by its ID.
// @Summary Update a resolution by ID
// @Description Update a resolution's description, amount or active flag.
// @Tags Finance
// @Accept json
// @Produce json
// @Param id path string true "Resolution ID"
// @Param request body dto.UpdateResolutionRequest true "Update Resolution Request"
// @Success 200 {object} response.Message "Resolution updated successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/finance/resolutions/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateResolution(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateResolution")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateResolutionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateResolution(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update resolution")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resolution updated successfully")

	response.WithMessage(w, http.StatusOK, "Resolution updated successfully")
}

// DeleteResolution deletes a resolution by its ID.
// @Summary Delete a resolution by ID
// @Description Delete a resolution using its unique identifier.
// @Tags Finance
// @Accept json
// @Produce json
// @Param id path string true "Resolution ID"
// @Success 200 {object} response.Message "Resolution deleted successfully"
// @Failure 500 {object} response.Error
// @Router /v1/finance/resolutions/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteResolution(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteResolution")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.DeleteResolution(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete resolution")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Resolution deleted successfully")

	response.WithMessage(w, http.StatusOK, "Resolution deleted successfully")
}
