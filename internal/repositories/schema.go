package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
)

var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		role VARCHAR(20) NOT NULL CHECK (role IN ('admin', 'farmer', 'mill', 'transport', 'distributor', 'consumer')),
		full_name VARCHAR(100) NOT NULL,
		phone VARCHAR(20),
		address TEXT,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		last_login TIMESTAMPTZ
	)`,
	`CREATE TABLE IF NOT EXISTS batches (
		id BIGSERIAL PRIMARY KEY,
		batch_code VARCHAR(50) NOT NULL UNIQUE,
		product_name VARCHAR(100) NOT NULL,
		quantity NUMERIC(14,3) NOT NULL CHECK (quantity >= 0),
		unit VARCHAR(20) NOT NULL DEFAULT 'kg',
		created_by BIGINT NOT NULL REFERENCES users(id),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id BIGSERIAL PRIMARY KEY,
		batch_id BIGINT NOT NULL REFERENCES batches(id),
		user_id BIGINT NOT NULL REFERENCES users(id),
		action VARCHAR(50) NOT NULL,
		description TEXT NOT NULL,
		location VARCHAR(255),
		timestamp TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		tx_hash VARCHAR(80)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_transactions_batch ON transactions (batch_id, timestamp, id)`,
}

var mysqlSchema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(50) NOT NULL UNIQUE,
		email VARCHAR(100) NOT NULL UNIQUE,
		password VARCHAR(255) NOT NULL,
		role ENUM('admin', 'farmer', 'mill', 'transport', 'distributor', 'consumer') NOT NULL,
		full_name VARCHAR(100) NOT NULL,
		phone VARCHAR(20) NULL,
		address TEXT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		last_login DATETIME(6) NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS batches (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		batch_code VARCHAR(50) NOT NULL UNIQUE,
		product_name VARCHAR(100) NOT NULL,
		quantity DECIMAL(14,3) NOT NULL CHECK (quantity >= 0),
		unit VARCHAR(20) NOT NULL DEFAULT 'kg',
		created_by BIGINT NOT NULL,
		created_at DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		FOREIGN KEY (created_by) REFERENCES users(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS transactions (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		batch_id BIGINT NOT NULL,
		user_id BIGINT NOT NULL,
		action VARCHAR(50) NOT NULL,
		description TEXT NOT NULL,
		location VARCHAR(255) NULL,
		timestamp DATETIME(6) NOT NULL DEFAULT CURRENT_TIMESTAMP(6),
		tx_hash VARCHAR(80) NULL,
		INDEX idx_transactions_batch (batch_id, timestamp, id),
		FOREIGN KEY (batch_id) REFERENCES batches(id),
		FOREIGN KEY (user_id) REFERENCES users(id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// Migrate creates the users, batches and transactions tables when missing.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	stmts := postgresSchema
	if db.DriverName() == "mysql" {
		stmts = mysqlSchema
	}
	for _, stmt := range stmts {
		_, err := db.ExecContext(ctx, stmt)
		logQuery(stmt, nil, nil, err)
		if err != nil {
			return err
		}
	}
	return nil
}
