package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultUnit is stored when a batch is created without a unit.
const DefaultUnit = "kg"

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// BatchDB represents a row of the batches table joined with its creator.
type BatchDB struct {
	ID                int64           `db:"id" json:"id"`
	BatchCode         string          `db:"batch_code" json:"batch_code"`
	ProductName       string          `db:"product_name" json:"product_name"`
	Quantity          decimal.Decimal `db:"quantity" json:"quantity" swaggertype:"number"`
	Unit              string          `db:"unit" json:"unit"`
	CreatedBy         int64           `db:"created_by" json:"created_by"`
	CreatedAt         time.Time       `db:"created_at" json:"created_at"`
	CreatedByUsername string          `db:"created_by_username" json:"created_by_username"`
	CreatedByName     string          `db:"created_by_name" json:"created_by_name"`
}

// NewBatch holds the columns written on batch creation.
type NewBatch struct {
	BatchCode   string
	ProductName string
	Quantity    decimal.Decimal
	Unit        string
	CreatedBy   int64
}

// CreatedBatch is returned by POST /api/batches.
// swagger:model CreatedBatch
type CreatedBatch struct {
	ID          int64           `json:"id" example:"1"`
	BatchCode   string          `json:"batch_code" example:"BC001"`
	ProductName string          `json:"product_name" example:"ST25 rice"`
	Quantity    decimal.Decimal `json:"quantity" swaggertype:"number" example:"1200.5"`
	Unit        string          `json:"unit" example:"kg"`
	TxHash      string          `json:"tx_hash"`
}

// BatchTrace is the public history of one batch, oldest transaction first.
type BatchTrace struct {
	Batch        BatchDB         `json:"batch"`
	Status       string          `json:"status"`
	Transactions []TransactionDB `json:"transactions"`
}
