package middlewares

import (
	"bytes"
	"context"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/ricechain/supply-tracker/internal/logger"
)

// TxMiddleware runs the handler inside a database transaction. The response
// is buffered: it is committed and flushed when the handler answers with a
// status below 400, and rolled back otherwise. A failed commit replaces the
// response with a 500. Hooks registered with AfterCommit run after a commit;
// hooks registered with AfterRollback run when the work is thrown away.
func TxMiddleware(db *sqlx.DB) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tx, err := db.BeginTxx(r.Context(), nil)
			if err != nil {
				logger.Log.Errorw("failed to begin transaction", "error", err)
				writeError(w, http.StatusInternalServerError, msgInternal)
				return
			}

			hooks := &txHooks{}
			defer func() {
				if rec := recover(); rec != nil {
					tx.Rollback()
					hooks.run(hooks.rollback)
					panic(rec)
				}
			}()

			ctx := setTxToContext(r.Context(), tx)
			ctx = context.WithValue(ctx, hooksKey, hooks)

			buf := newBufferedWriter()
			next.ServeHTTP(buf, r.WithContext(ctx))

			if buf.status >= http.StatusBadRequest {
				if err := tx.Rollback(); err != nil {
					logger.Log.Errorw("failed to rollback transaction", "error", err)
				}
				hooks.run(hooks.rollback)
				buf.flush(w)
				return
			}

			if err := tx.Commit(); err != nil {
				logger.Log.Errorw("failed to commit transaction", "error", err)
				hooks.run(hooks.rollback)
				writeError(w, http.StatusInternalServerError, msgInternal)
				return
			}

			buf.flush(w)
			hooks.run(hooks.commit)
		})
	}
}

const msgInternal = "Internal server error"

// contextKey is an unexported type for keys in context
type contextKey int

const (
	txKey contextKey = iota
	hooksKey
	requestIDKey
)

type txHooks struct {
	commit   []func()
	rollback []func()
}

func (h *txHooks) run(fns []func()) {
	for _, fn := range fns {
		fn()
	}
}

// setTxToContext stores a transaction in the context
func setTxToContext(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// GetTxFromContext retrieves the transaction from the context. Returns nil if not present.
func GetTxFromContext(ctx context.Context) *sqlx.Tx {
	tx, _ := ctx.Value(txKey).(*sqlx.Tx)
	return tx
}

// AfterCommit runs fn after the request transaction commits, or right away
// when ctx carries no transaction. Hooks of a rolled back request are dropped.
func AfterCommit(ctx context.Context, fn func()) {
	hooks, ok := ctx.Value(hooksKey).(*txHooks)
	if !ok {
		fn()
		return
	}
	hooks.commit = append(hooks.commit, fn)
}

// AfterRollback runs fn when the request transaction is rolled back or its
// commit fails. Without a transaction in ctx there is nothing to undo and fn
// is dropped.
func AfterRollback(ctx context.Context, fn func()) {
	if hooks, ok := ctx.Value(hooksKey).(*txHooks); ok {
		hooks.rollback = append(hooks.rollback, fn)
	}
}

type bufferedWriter struct {
	header http.Header
	status int
	body   bytes.Buffer
}

func newBufferedWriter() *bufferedWriter {
	return &bufferedWriter{header: make(http.Header)}
}

func (b *bufferedWriter) Header() http.Header {
	return b.header
}

func (b *bufferedWriter) WriteHeader(code int) {
	if b.status == 0 {
		b.status = code
	}
}

func (b *bufferedWriter) Write(p []byte) (int, error) {
	if b.status == 0 {
		b.status = http.StatusOK
	}
	return b.body.Write(p)
}

func (b *bufferedWriter) flush(w http.ResponseWriter) {
	for k, v := range b.header {
		w.Header()[k] = v
	}
	if b.status == 0 {
		b.status = http.StatusOK
	}
	w.WriteHeader(b.status)
	w.Write(b.body.Bytes())
}
