package repositories

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/ricechain/supply-tracker/internal/models"
)

const userColumns = `id, username, email, password, role, full_name, phone, address, is_active, created_at, last_login`

// UserReadRepository looks users up.
type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// ExistsByUsernameOrEmail reports whether any user, active or not, already
// holds username or email.
func (r *UserReadRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	query := r.db.Rebind(`SELECT id FROM users WHERE username = ? OR email = ? LIMIT 1`)

	var id int64
	err := r.db.GetContext(ctx, &id, query, username, email)
	logQuery(query, []any{username, email}, id, err)

	if err != nil {
		if errors.Is(mapError(err), ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// GetActiveByUsername returns the active user with username or ErrNotFound.
func (r *UserReadRepository) GetActiveByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE username = ? AND is_active = TRUE`)

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, username)
	logQuery(query, []any{username}, user.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// GetActiveByID returns the active user with id or ErrNotFound.
func (r *UserReadRepository) GetActiveByID(ctx context.Context, id int64) (*models.UserDB, error) {
	query := r.db.Rebind(`SELECT ` + userColumns + ` FROM users WHERE id = ? AND is_active = TRUE`)

	var user models.UserDB
	err := r.db.GetContext(ctx, &user, query, id)
	logQuery(query, []any{id}, user.ID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// UserWriteRepository inserts and updates users.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewUserWriteRepository(db *sqlx.DB, txGetter TxGetter) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a user and returns its id. A username or email collision
// yields ErrDuplicate.
func (r *UserWriteRepository) Create(ctx context.Context, u models.NewUser) (int64, error) {
	query := `
		INSERT INTO users (username, email, password, role, full_name, phone, address)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	ext := pick(ctx, r.db, r.txGetter)

	id, err := insertReturningID(ctx, ext, query,
		u.Username, u.Email, u.PasswordHash, string(u.Role), u.FullName, u.Phone, u.Address)

	// the hash stays out of the log
	logQuery(query, []any{u.Username, u.Email, u.Role, u.FullName, u.Phone, u.Address}, id, err)

	if err != nil {
		return 0, mapError(err)
	}
	return id, nil
}

// TouchLastLogin stamps last_login with the database clock.
func (r *UserWriteRepository) TouchLastLogin(ctx context.Context, id int64) error {
	query := `UPDATE users SET last_login = CURRENT_TIMESTAMP WHERE id = ?`
	ext := pick(ctx, r.db, r.txGetter)

	res, err := ext.ExecContext(ctx, ext.Rebind(query), id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}
	logQuery(query, []any{id}, rowsAffected, err)

	return err
}
