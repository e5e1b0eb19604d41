package models

import "time"

// Batch event types.
const (
	EventBatchCreated        = "BATCH_CREATED"
	EventTransactionAppended = "TRANSACTION_APPENDED"
)

// BatchEvent is published after a batch or transaction write succeeds.
type BatchEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	BatchCode  string    `json:"batch_code"`
	Action     string    `json:"action"`
	UserID     int64     `json:"user_id"`
	TxHash     string    `json:"tx_hash"`
	OccurredAt time.Time `json:"occurred_at"`
}
