package models

import "time"

// ActionCreate is recorded once for every batch, together with the batch row.
const ActionCreate = "CREATE"

// TransactionDB represents a row of the transactions table joined with its actor.
type TransactionDB struct {
	ID          int64     `db:"id" json:"id"`
	BatchID     int64     `db:"batch_id" json:"batch_id"`
	UserID      int64     `db:"user_id" json:"user_id"`
	Action      string    `db:"action" json:"action"`
	Description string    `db:"description" json:"description"`
	Location    *string   `db:"location" json:"location"`
	Timestamp   time.Time `db:"timestamp" json:"timestamp"`
	TxHash      *string   `db:"tx_hash" json:"tx_hash"`
	Username    string    `db:"username" json:"username"`
	FullName    string    `db:"full_name" json:"full_name"`
	Role        Role      `db:"role" json:"role"`
}

// NewTransaction holds the columns written when a transaction is appended.
type NewTransaction struct {
	BatchID     int64
	UserID      int64
	Action      string
	Description string
	Location    *string
	TxHash      string
}
