package repositories

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/ricechain/supply-tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgres(t *testing.T) *sqlx.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForLog("database system is ready to accept connections").WithOccurrence(2).WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(ctx) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.ConnectContext(ctx, "pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(ctx, db))
	return db
}

func TestPostgres_ConcurrentRegistration(t *testing.T) {
	db := setupPostgres(t)
	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	const attempts = 8
	var (
		wg         sync.WaitGroup
		mu         sync.Mutex
		created    int
		duplicates int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := repo.Create(ctx, models.NewUser{
				Username:     "alice",
				Email:        fmt.Sprintf("alice%d@x.com", i),
				PasswordHash: "hash",
				Role:         models.RoleFarmer,
				FullName:     "Alice",
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, ErrDuplicate):
				duplicates++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	assert.Equal(t, attempts-1, duplicates)

	var rows int
	require.NoError(t, db.Get(&rows, `SELECT COUNT(*) FROM users WHERE username = 'alice'`))
	assert.Equal(t, 1, rows)
}

func TestPostgres_UserLifecycle(t *testing.T) {
	db := setupPostgres(t)
	reader := NewUserReadRepository(db)
	writer := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	id, err := writer.Create(ctx, models.NewUser{
		Username: "bob", Email: "bob@x.com", PasswordHash: "hash", Role: models.RoleMill, FullName: "Bob",
	})
	require.NoError(t, err)

	exists, err := reader.ExistsByUsernameOrEmail(ctx, "someone", "bob@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	user, err := reader.GetActiveByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, id, user.ID)
	assert.Nil(t, user.LastLogin)

	require.NoError(t, writer.TouchLastLogin(ctx, id))
	user, err = reader.GetActiveByID(ctx, id)
	require.NoError(t, err)
	assert.NotNil(t, user.LastLogin)

	_, err = db.Exec(`UPDATE users SET is_active = FALSE WHERE id = $1`, id)
	require.NoError(t, err)

	_, err = reader.GetActiveByID(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = writer.Create(ctx, models.NewUser{
		Username: "bob", Email: "other@x.com", PasswordHash: "hash", Role: models.RoleMill, FullName: "Bob 2",
	})
	assert.ErrorIs(t, err, ErrDuplicate, "inactive users keep their username")
}

func TestPostgres_BatchWithHistory(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	userID, err := NewUserWriteRepository(db, nil).Create(ctx, models.NewUser{
		Username: "farmer_an", Email: "an@x.com", PasswordHash: "hash", Role: models.RoleFarmer, FullName: "An",
	})
	require.NoError(t, err)

	tx, err := db.Beginx()
	require.NoError(t, err)
	getter := func(context.Context) *sqlx.Tx { return tx }

	batchID, err := NewBatchWriteRepository(db, getter).Create(ctx, models.NewBatch{
		BatchCode: "BC001", ProductName: "ST25 rice", Quantity: decimal.RequireFromString("1200.5"), Unit: "kg", CreatedBy: userID,
	})
	require.NoError(t, err)
	_, err = NewTransactionWriteRepository(db, getter).Append(ctx, models.NewTransaction{
		BatchID: batchID, UserID: userID, Action: models.ActionCreate, Description: "Created batch BC001 - ST25 rice", TxHash: "0x01",
	})
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	_, err = NewTransactionWriteRepository(db, nil).Append(ctx, models.NewTransaction{
		BatchID: batchID, UserID: userID, Action: "harvesting", Description: "Harvested",
	})
	require.NoError(t, err)

	batch, err := NewBatchReadRepository(db, nil).GetByCode(ctx, "BC001")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("1200.5").Equal(batch.Quantity))
	assert.Equal(t, "farmer_an", batch.CreatedByUsername)

	txs, err := NewTransactionReadRepository(db, nil).ListByBatchID(ctx, batchID)
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, models.ActionCreate, txs[0].Action)
	assert.False(t, txs[0].Timestamp.Before(batch.CreatedAt))
	assert.Equal(t, "harvesting", txs[1].Action)
	assert.Nil(t, txs[1].TxHash)

	_, err = NewBatchWriteRepository(db, nil).Create(ctx, models.NewBatch{
		BatchCode: "BC001", ProductName: "Other", Quantity: decimal.Zero, Unit: "kg", CreatedBy: userID,
	})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestPostgres_RolledBackBatchLeavesNoRows(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	userID, err := NewUserWriteRepository(db, nil).Create(ctx, models.NewUser{
		Username: "farmer_an", Email: "an@x.com", PasswordHash: "hash", Role: models.RoleFarmer, FullName: "An",
	})
	require.NoError(t, err)

	tx, err := db.Beginx()
	require.NoError(t, err)
	getter := func(context.Context) *sqlx.Tx { return tx }

	_, err = NewBatchWriteRepository(db, getter).Create(ctx, models.NewBatch{
		BatchCode: "BC009", ProductName: "ST25 rice", Quantity: decimal.NewFromInt(1), Unit: "kg", CreatedBy: userID,
	})
	require.NoError(t, err)
	require.NoError(t, tx.Rollback())

	exists, err := NewBatchReadRepository(db, nil).ExistsByCode(ctx, "BC009")
	require.NoError(t, err)
	assert.False(t, exists)
}
