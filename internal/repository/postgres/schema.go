package postgres

import "context"

const (
	createClientsTableSQL = `
		CREATE TABLE IF NOT EXISTS clients (
			client_id  BIGSERIAL PRIMARY KEY,
			first_name VARCHAR(50) NOT NULL,
			last_name  VARCHAR(50) NOT NULL,
			email      VARCHAR(100) UNIQUE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	createPhonesTableSQL = `
		CREATE TABLE IF NOT EXISTS phones (
			phone_id     BIGSERIAL PRIMARY KEY,
			client_id    BIGINT NOT NULL REFERENCES clients(client_id) ON DELETE CASCADE,
			phone_number VARCHAR(20) UNIQUE,
			created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`
)

// EnsureSchema idempotently creates the clients and phones tables.
// Phones carry ON DELETE CASCADE, so deleting a client can never
// leave orphan phone rows.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.Pool.Exec(ctx, createClientsTableSQL); err != nil {
		return errFailedCreateClientsTable(err)
	}

	if _, err := db.Pool.Exec(ctx, createPhonesTableSQL); err != nil {
		return errFailedCreatePhonesTable(err)
	}

	return nil
}
