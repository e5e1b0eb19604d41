package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionReadRepository_ListByBatchID(t *testing.T) {
	db, mock := newMockDB(t, "pgx")
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE t.batch_id = $1 ORDER BY t.timestamp ASC, t.id ASC`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "batch_id", "user_id", "action", "description", "location", "timestamp", "tx_hash", "username", "full_name", "role"}).
			AddRow(1, 1, 3, "CREATE", "Created batch BC001 - ST25 rice", nil, now, "0xabc", "farmer_an", "An", "farmer").
			AddRow(2, 1, 4, "milling", "Milled", "Can Tho", now.Add(time.Hour), nil, "mill_bao", "Bao", "mill"))

	txs, err := NewTransactionReadRepository(db, nil).ListByBatchID(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, models.ActionCreate, txs[0].Action)
	require.NotNil(t, txs[0].TxHash)
	assert.Equal(t, "0xabc", *txs[0].TxHash)
	assert.Nil(t, txs[0].Location)
	assert.Equal(t, models.RoleMill, txs[1].Role)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionWriteRepository_Append(t *testing.T) {
	location := "Can Tho"

	t.Run("Postgres", func(t *testing.T) {
		db, mock := newMockDB(t, "pgx")
		mock.ExpectQuery(`INSERT INTO transactions .* RETURNING id`).
			WithArgs(int64(1), int64(4), "milling", "Milled", "Can Tho", "0xdef").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))

		id, err := NewTransactionWriteRepository(db, nil).Append(context.Background(), models.NewTransaction{
			BatchID: 1, UserID: 4, Action: "milling", Description: "Milled", Location: &location, TxHash: "0xdef",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(2), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptyHashStoredAsNull", func(t *testing.T) {
		db, mock := newMockDB(t, "pgx")
		mock.ExpectQuery(`INSERT INTO transactions`).
			WithArgs(int64(1), int64(4), "milling", "Milled", nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))

		_, err := NewTransactionWriteRepository(db, nil).Append(context.Background(), models.NewTransaction{
			BatchID: 1, UserID: 4, Action: "milling", Description: "Milled",
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Error", func(t *testing.T) {
		db, mock := newMockDB(t, "pgx")
		mock.ExpectQuery(`INSERT INTO transactions`).WillReturnError(errors.New("fk violation"))

		_, err := NewTransactionWriteRepository(db, nil).Append(context.Background(), models.NewTransaction{BatchID: 99})
		assert.Error(t, err)
	})
}
