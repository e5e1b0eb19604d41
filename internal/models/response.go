package models

import "time"

// FieldError describes one violated input field.
type FieldError struct {
	Field   string `json:"field" example:"quantity"`
	Message string `json:"message" example:"quantity must be greater than or equal to 0"`
}

// ErrorResponse is the failure envelope shared by every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool         `json:"success" example:"false"`
	Message string       `json:"message" example:"Validation failed"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// MessageResponse is a success envelope without payload
// swagger:model MessageResponse
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"Transaction added successfully"`
}

// HealthResponse reports liveness
// swagger:model HealthResponse
type HealthResponse struct {
	Success   bool   `json:"success" example:"true"`
	Status    string `json:"status" example:"OK"`
	Message   string `json:"message" example:"Supply tracker API is running"`
	Timestamp string `json:"timestamp" example:"2025-01-01T00:00:00Z"`
}

// LedgerReceipt is the simulated ledger's acknowledgement of a record.
// swagger:model LedgerReceipt
type LedgerReceipt struct {
	Hash        string    `json:"hash" example:"0x9f86d081884c7d65"`
	BlockNumber int64     `json:"block_number" example:"10001"`
	Timestamp   time.Time `json:"timestamp"`
	Status      string    `json:"status" example:"confirmed"`
	Verified    bool      `json:"verified"`
	Simulated   bool      `json:"simulated" example:"true"`
}

// LedgerReceiptResponse wraps a ledger receipt
// swagger:model LedgerReceiptResponse
type LedgerReceiptResponse struct {
	Success bool          `json:"success" example:"true"`
	Receipt LedgerReceipt `json:"receipt"`
}
