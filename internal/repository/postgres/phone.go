package postgres

import (
	"context"
	"errors"

	"client-service/internal/domain/client"
	apperrors "client-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type PhoneRepository struct {
	db *DB
}

func NewPhoneRepository(db *DB) *PhoneRepository {
	return &PhoneRepository{db: db}
}

// Add attaches a number to a client with a single conditional insert.
// A number already owned by any client is left where it is: the insert
// does nothing and the caller gets ErrPhoneExists instead of an
// implicit ownership transfer. Checking-then-inserting would race with
// concurrent callers, so the conflict is resolved inside the statement.
func (r *PhoneRepository) Add(ctx context.Context, clientID int64, number string) (*client.Phone, error) {
	query := `
		INSERT INTO phones (client_id, phone_number)
		VALUES ($1, $2)
		ON CONFLICT (phone_number) DO NOTHING
		RETURNING phone_id, client_id, phone_number, created_at
	`

	p := &client.Phone{}
	err := r.db.Pool.QueryRow(ctx, query, clientID, number).Scan(
		&p.ID,
		&p.ClientID,
		&p.Number,
		&p.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.PhoneExists(errPhoneInUse)
		}
		if isForeignKeyViolation(err) {
			return nil, apperrors.NotFound(errClientNotFound)
		}
		return nil, errFailedAddPhone(err)
	}

	return p, nil
}

// Delete removes the row matching both the client id and the number.
// A missing client and a number owned by someone else both come back
// as not found; exactly one row is ever deleted.
func (r *PhoneRepository) Delete(ctx context.Context, clientID int64, number string) error {
	query := `
		DELETE FROM phones
		WHERE client_id = $1 AND phone_number = $2
	`

	result, err := r.db.Pool.Exec(ctx, query, clientID, number)
	if err != nil {
		return errFailedDeletePhone(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errPhoneNotFound)
	}

	return nil
}
