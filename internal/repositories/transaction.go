package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/ricechain/supply-tracker/internal/models"
)

// TransactionReadRepository reads a batch's history.
type TransactionReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionReadRepository(db *sqlx.DB, txGetter TxGetter) *TransactionReadRepository {
	return &TransactionReadRepository{db: db, txGetter: txGetter}
}

// ListByBatchID returns the batch's transactions oldest first, each joined
// with the acting user. Ties on timestamp are broken by insertion order.
func (r *TransactionReadRepository) ListByBatchID(ctx context.Context, batchID int64) ([]models.TransactionDB, error) {
	query := `
		SELECT t.id, t.batch_id, t.user_id, t.action, t.description, t.location, t.timestamp, t.tx_hash,
		       u.username, u.full_name, u.role
		FROM transactions t
		JOIN users u ON t.user_id = u.id
		WHERE t.batch_id = ?
		ORDER BY t.timestamp ASC, t.id ASC
	`
	ext := pick(ctx, r.db, r.txGetter)

	txs := []models.TransactionDB{}
	err := sqlx.SelectContext(ctx, ext, &txs, ext.Rebind(query), batchID)
	logQuery(query, []any{batchID}, len(txs), err)

	if err != nil {
		return nil, err
	}
	return txs, nil
}

// TransactionWriteRepository appends to the transaction log. Rows are never
// updated or deleted.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewTransactionWriteRepository(db *sqlx.DB, txGetter TxGetter) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Append inserts a transaction stamped with the database clock and returns its id.
func (r *TransactionWriteRepository) Append(ctx context.Context, t models.NewTransaction) (int64, error) {
	query := `
		INSERT INTO transactions (batch_id, user_id, action, description, location, tx_hash)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	var txHash *string
	if t.TxHash != "" {
		txHash = &t.TxHash
	}
	args := []any{t.BatchID, t.UserID, t.Action, t.Description, t.Location, txHash}
	ext := pick(ctx, r.db, r.txGetter)

	id, err := insertReturningID(ctx, ext, query, args...)
	logQuery(query, args, id, err)

	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}
