package repositories

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/ricechain/supply-tracker/internal/models"
)

const batchSelect = `
	SELECT b.id, b.batch_code, b.product_name, b.quantity, b.unit, b.created_by, b.created_at,
	       u.username AS created_by_username, u.full_name AS created_by_name
	FROM batches b
	JOIN users u ON b.created_by = u.id
`

// BatchReadRepository reads batches joined with their creator.
type BatchReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBatchReadRepository(db *sqlx.DB, txGetter TxGetter) *BatchReadRepository {
	return &BatchReadRepository{db: db, txGetter: txGetter}
}

// GetByCode returns the batch with code or ErrNotFound.
func (r *BatchReadRepository) GetByCode(ctx context.Context, code string) (*models.BatchDB, error) {
	query := batchSelect + ` WHERE b.batch_code = ?`
	ext := pick(ctx, r.db, r.txGetter)

	var batch models.BatchDB
	err := sqlx.GetContext(ctx, ext, &batch, ext.Rebind(query), code)
	logQuery(query, []any{code}, batch.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &batch, nil
}

// ExistsByCode reports whether a batch with code exists.
func (r *BatchReadRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	query := `SELECT id FROM batches WHERE batch_code = ?`
	ext := pick(ctx, r.db, r.txGetter)

	var id int64
	err := sqlx.GetContext(ctx, ext, &id, ext.Rebind(query), code)
	logQuery(query, []any{code}, id, err)

	if err != nil {
		if errors.Is(mapError(err), ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List returns every batch, newest first. There is no paging: the whole
// table is read on each call.
func (r *BatchReadRepository) List(ctx context.Context) ([]models.BatchDB, error) {
	query := batchSelect + ` ORDER BY b.created_at DESC, b.id DESC`

	batches := []models.BatchDB{}
	err := r.db.SelectContext(ctx, &batches, query)
	logQuery(query, nil, len(batches), err)

	if err != nil {
		return nil, err
	}
	return batches, nil
}

// BatchWriteRepository inserts batches.
type BatchWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBatchWriteRepository(db *sqlx.DB, txGetter TxGetter) *BatchWriteRepository {
	return &BatchWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a batch and returns its id. A batch_code collision yields
// ErrDuplicate.
func (r *BatchWriteRepository) Create(ctx context.Context, b models.NewBatch) (int64, error) {
	query := `
		INSERT INTO batches (batch_code, product_name, quantity, unit, created_by)
		VALUES (?, ?, ?, ?, ?)
	`
	args := []any{b.BatchCode, b.ProductName, b.Quantity, b.Unit, b.CreatedBy}
	ext := pick(ctx, r.db, r.txGetter)

	id, err := insertReturningID(ctx, ext, query, args...)
	logQuery(query, args, id, err)

	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}
