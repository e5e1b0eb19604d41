package models

import "github.com/shopspring/decimal"

// CreateBatchRequest represents the JSON body for batch creation
// swagger:model CreateBatchRequest
type CreateBatchRequest struct {
	BatchCode   string           `json:"batch_code" validate:"required,max=50" example:"BC001"`
	ProductName string           `json:"product_name" validate:"required,max=100" example:"ST25 rice"`
	Quantity    *decimal.Decimal `json:"quantity" validate:"required,dec_gte=0,dec_lt=100000000000,dec_scale=3" swaggertype:"number" example:"1200.5"`
	Unit        string           `json:"unit,omitempty" validate:"omitempty,max=20" example:"kg"`
}

// CreateBatchResponse represents a successful batch creation
// swagger:model CreateBatchResponse
type CreateBatchResponse struct {
	Success bool         `json:"success" example:"true"`
	Message string       `json:"message" example:"Batch created successfully"`
	Batch   CreatedBatch `json:"batch"`
}

// BatchListResponse lists every batch, newest first
// swagger:model BatchListResponse
type BatchListResponse struct {
	Success bool      `json:"success" example:"true"`
	Count   int       `json:"count" example:"1"`
	Batches []BatchDB `json:"batches"`
}

// BatchTraceResponse is the public trace of a batch
// swagger:model BatchTraceResponse
type BatchTraceResponse struct {
	Success bool `json:"success" example:"true"`
	BatchTrace
}

// AppendTransactionRequest represents the JSON body for a new transaction
// swagger:model AppendTransactionRequest
type AppendTransactionRequest struct {
	Action      string  `json:"action" validate:"required,max=50" example:"harvesting"`
	Description string  `json:"description" validate:"required" example:"Harvested field 3"`
	Location    *string `json:"location,omitempty" validate:"omitempty,max=255" example:"Soc Trang"`
}
