package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/ricechain/supply-tracker/internal/logger"
)

// TxGetter returns the transaction bound to ctx, or nil.
type TxGetter func(ctx context.Context) *sqlx.Tx

// pick returns the request transaction when there is one, db otherwise.
func pick(ctx context.Context, db *sqlx.DB, txGetter TxGetter) sqlx.ExtContext {
	if txGetter != nil {
		if tx := txGetter(ctx); tx != nil {
			return tx
		}
	}
	return db
}

// insertReturningID runs an INSERT and returns the generated id. MySQL has no
// RETURNING clause, so the driver's LastInsertId is used there instead.
func insertReturningID(ctx context.Context, ext sqlx.ExtContext, query string, args ...any) (int64, error) {
	if ext.DriverName() == "mysql" {
		res, err := ext.ExecContext(ctx, ext.Rebind(query), args...)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	var id int64
	err := sqlx.GetContext(ctx, ext, &id, ext.Rebind(query+" RETURNING id"), args...)
	return id, err
}

// logQuery logs a statement on a single line together with its outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow("query",
		"sql", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
