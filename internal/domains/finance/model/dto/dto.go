package dto

import (
	"atrium/internal/domains/finance/model"
	"atrium/shared/constant"
	"atrium/shared/timezone"
	"time"

	"github.com/google/uuid"
)

type CreateIncomeRequest struct {
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Date        string  `json:"date"        validate:"required,datetime=2006-01-02"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Category    string  `json:"category"    validate:"required,oneof=congregation worldwide_work renovation"`
}

func (c *CreateIncomeRequest) ToModel(date time.Time, user string) model.Transaction {
	return model.Transaction{
		ID:          uuid.NewString(),
		Type:        model.TypeIncome,
		Amount:      c.Amount,
		Date:        date,
		Description: c.Description,
		Category:    c.Category,
		Status:      model.IncomeStatus(c.Category),
		CreatedAt:   timezone.Now(),
		CreatedBy:   user,
		ModifiedAt:  timezone.Now(),
		ModifiedBy:  user,
	}
}

type CreateExpenseRequest struct {
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Date        string  `json:"date"        validate:"required,datetime=2006-01-02"`
	Description string  `json:"description" validate:"omitempty,max=500"`
}

func (c *CreateExpenseRequest) ToModel(date time.Time, user string) model.Transaction {
	return model.Transaction{
		ID:          uuid.NewString(),
		Type:        model.TypeExpense,
		Amount:      c.Amount,
		Date:        date,
		Description: c.Description,
		Status:      model.StatusCompleted,
		CreatedAt:   timezone.Now(),
		CreatedBy:   user,
		ModifiedAt:  timezone.Now(),
		ModifiedBy:  user,
	}
}

const defaultTransferDescription = "Branch transfer"

type BranchTransferRequest struct {
	Amount         float64  `json:"amount"          validate:"required,gt=0"`
	Date           string   `json:"date"            validate:"required,datetime=2006-01-02"`
	Description    string   `json:"description"     validate:"omitempty,max=500"`
	TransactionIDs []string `json:"transaction_ids" validate:"required,min=1,dive,required"`
}

func (c *BranchTransferRequest) ToModel(date time.Time, user string) model.Transaction {
	description := c.Description
	if description == "" {
		description = defaultTransferDescription
	}

	return model.Transaction{
		ID:          uuid.NewString(),
		Type:        model.TypeBranchTransfer,
		Amount:      c.Amount,
		Date:        date,
		Description: description,
		Status:      model.StatusCompleted,
		CreatedAt:   timezone.Now(),
		CreatedBy:   user,
		ModifiedAt:  timezone.Now(),
		ModifiedBy:  user,
	}
}

type UpdateTransactionRequest struct {
	Type        string  `json:"type"        validate:"required,oneof=income expense branch_transfer"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Date        string  `json:"date"        validate:"required,datetime=2006-01-02"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Category    string  `json:"category"    validate:"omitempty,oneof=congregation worldwide_work renovation"`
	Status      string  `json:"status"      validate:"omitempty,oneof=completed pending_send sent"`
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
	Category    string  `json:"category,omitempty"`
	Status      string  `json:"status"`
}

func (r *TransactionResponse) FromModel(model model.Transaction) {
	r.ID = model.ID
	r.Type = model.Type
	r.Amount = model.Amount
	r.Date = model.Date.Format(constant.CalendarDateFormat)
	r.Description = model.Description
	r.Category = model.Category
	r.Status = model.Status
}

type GetTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetTransactionsResponse) FromModels(models []model.Transaction) {
	r.TotalData = len(models)

	r.Transactions = make([]TransactionResponse, len(models))
	for i, mod := range models {
		r.Transactions[i].FromModel(mod)
	}
}

type CreateResolutionRequest struct {
	Description string  `json:"description" validate:"required,max=500"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	StartDate   string  `json:"start_date"  validate:"required,datetime=2006-01-02"`
}

func (c *CreateResolutionRequest) ToModel(startDate time.Time, user string) model.Resolution {
	return model.Resolution{
		ID:          uuid.NewString(),
		Description: c.Description,
		Amount:      c.Amount,
		StartDate:   startDate,
		IsActive:    true,
		CreatedAt:   timezone.Now(),
		CreatedBy:   user,
		ModifiedAt:  timezone.Now(),
		ModifiedBy:  user,
	}
}

type UpdateResolutionRequest struct {
	Description string   `json:"description" validate:"omitempty,max=500"`
	Amount      *float64 `json:"amount"      validate:"omitempty,gt=0"`
	IsActive    *bool    `json:"is_active"`
}

type ResolutionResponse struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	StartDate   string  `json:"start_date"`
	IsActive    bool    `json:"is_active"`
}

func (r *ResolutionResponse) FromModel(model model.Resolution) {
	r.ID = model.ID
	r.Description = model.Description
	r.Amount = model.Amount
	r.StartDate = model.StartDate.Format(constant.CalendarDateFormat)
	r.IsActive = model.IsActive
}

type GetResolutionsResponse struct {
	Resolutions []ResolutionResponse `json:"resolutions"`
}

func (r *GetResolutionsResponse) FromModels(models []model.Resolution) {
	r.Resolutions = make([]ResolutionResponse, len(models))
	for i, mod := range models {
		r.Resolutions[i].FromModel(mod)
	}
}

// BackupResponse points at the snapshot object written to storage.
type BackupResponse struct {
	URL       string `json:"url"`
	FileName  string `json:"file_name"`
	TotalData int    `json:"total_data"`
}

// RestoreRequest carries the snapshot rows to re-insert. Rows keep their
// payload but receive fresh identifiers on restore.
type RestoreRequest struct {
	Transactions []RestoreTransaction `json:"transactions" validate:"required,min=1,dive"`
}

type RestoreTransaction struct {
	Type        string  `json:"type"        validate:"required,oneof=income expense branch_transfer"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Date        string  `json:"date"        validate:"required,datetime=2006-01-02"`
	Description string  `json:"description" validate:"omitempty,max=500"`
	Category    string  `json:"category"    validate:"omitempty,oneof=congregation worldwide_work renovation"`
	Status      string  `json:"status"      validate:"omitempty,oneof=completed pending_send sent"`
}

func (r *RestoreTransaction) ToModel(date time.Time, user string) model.Transaction {
	status := r.Status
	if status == "" {
		status = model.StatusCompleted
	}

	return model.Transaction{
		ID:          uuid.NewString(),
		Type:        r.Type,
		Amount:      r.Amount,
		Date:        date,
		Description: r.Description,
		Category:    r.Category,
		Status:      status,
		CreatedAt:   timezone.Now(),
		CreatedBy:   user,
		ModifiedAt:  timezone.Now(),
		ModifiedBy:  user,
	}
}
