package repositories

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var batchRowColumns = []string{"id", "batch_code", "product_name", "quantity", "unit", "created_by", "created_at", "created_by_username", "created_by_name"}

func TestBatchReadRepository_GetByCode(t *testing.T) {
	db, mock := newMockDB(t, "pgx")
	repo := NewBatchReadRepository(db, nil)
	ctx := context.Background()
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE b.batch_code = $1`)).WithArgs("BC001").
		WillReturnRows(sqlmock.NewRows(batchRowColumns).
			AddRow(1, "BC001", "ST25 rice", "1200.500", "kg", 3, now, "farmer_an", "Nguyen Van An"))

	batch, err := repo.GetByCode(ctx, "BC001")
	require.NoError(t, err)
	assert.Equal(t, "BC001", batch.BatchCode)
	assert.True(t, decimal.RequireFromString("1200.5").Equal(batch.Quantity))
	assert.Equal(t, "farmer_an", batch.CreatedByUsername)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE b.batch_code = $1`)).WithArgs("NOPE").
		WillReturnError(sql.ErrNoRows)

	batch, err = repo.GetByCode(ctx, "NOPE")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, batch)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBatchReadRepository_ExistsByCode(t *testing.T) {
	db, mock := newMockDB(t, "pgx")
	repo := NewBatchReadRepository(db, nil)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM batches WHERE batch_code = $1`)).WithArgs("BC001").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id FROM batches WHERE batch_code = $1`)).WithArgs("BC002").
		WillReturnError(sql.ErrNoRows)

	exists, err := repo.ExistsByCode(ctx, "BC001")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByCode(ctx, "BC002")
	assert.NoError(t, err)
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBatchReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t, "pgx")
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(`ORDER BY b.created_at DESC, b.id DESC`)).
		WillReturnRows(sqlmock.NewRows(batchRowColumns).
			AddRow(2, "BC002", "Jasmine", "10", "bag", 3, now, "farmer_an", "An").
			AddRow(1, "BC001", "ST25 rice", "5", "kg", 3, now.Add(-time.Hour), "farmer_an", "An"))

	batches, err := NewBatchReadRepository(db, nil).List(context.Background())
	require.NoError(t, err)
	require.Len(t, batches, 2)
	assert.Equal(t, "BC002", batches[0].BatchCode)
	assert.Equal(t, "BC001", batches[1].BatchCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBatchReadRepository_ListEmpty(t *testing.T) {
	db, mock := newMockDB(t, "pgx")
	mock.ExpectQuery(`FROM batches b`).WillReturnRows(sqlmock.NewRows(batchRowColumns))

	batches, err := NewBatchReadRepository(db, nil).List(context.Background())
	assert.NoError(t, err)
	assert.NotNil(t, batches)
	assert.Empty(t, batches)
}

func TestBatchWriteRepository_Create(t *testing.T) {
	batch := models.NewBatch{
		BatchCode:   "BC001",
		ProductName: "ST25 rice",
		Quantity:    decimal.RequireFromString("12.5"),
		Unit:        "kg",
		CreatedBy:   3,
	}

	t.Run("Postgres", func(t *testing.T) {
		db, mock := newMockDB(t, "pgx")
		mock.ExpectQuery(`INSERT INTO batches .* RETURNING id`).
			WithArgs("BC001", "ST25 rice", sqlmock.AnyArg(), "kg", int64(3)).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

		id, err := NewBatchWriteRepository(db, nil).Create(context.Background(), batch)
		assert.NoError(t, err)
		assert.Equal(t, int64(11), id)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("MySQLDuplicate", func(t *testing.T) {
		db, mock := newMockDB(t, "mysql")
		mock.ExpectExec(`INSERT INTO batches`).
			WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'BC001' for key 'batch_code'"})

		_, err := NewBatchWriteRepository(db, nil).Create(context.Background(), batch)
		assert.ErrorIs(t, err, ErrDuplicate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UsesRequestTransaction", func(t *testing.T) {
		db, mock := newMockDB(t, "pgx")
		mock.ExpectBegin()
		mock.ExpectQuery(`INSERT INTO batches`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))
		mock.ExpectCommit()

		tx, err := db.Beginx()
		require.NoError(t, err)
		getter := func(ctx context.Context) *sqlx.Tx { return tx }

		id, err := NewBatchWriteRepository(db, getter).Create(context.Background(), batch)
		assert.NoError(t, err)
		assert.Equal(t, int64(12), id)
		assert.NoError(t, tx.Commit())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
