package postgres

import (
	"context"
	"errors"

	"client-service/internal/domain/client"
	apperrors "client-service/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type ClientRepository struct {
	db *DB
}

func NewClientRepository(db *DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, input client.CreateClientInput) (*client.Client, error) {
	query := `
		INSERT INTO clients (first_name, last_name, email)
		VALUES ($1, $2, $3)
		RETURNING client_id, first_name, last_name, email, created_at
	`

	c := &client.Client{Phones: []string{}}
	err := r.db.Pool.QueryRow(ctx, query, input.FirstName, input.LastName, input.Email).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperrors.EmailExists(errEmailInUse)
		}
		return nil, errFailedCreateClient(err)
	}

	return c, nil
}

func (r *ClientRepository) GetByID(ctx context.Context, id int64) (*client.Client, error) {
	query := selectClientsSQL +
		"	WHERE c.client_id = $1\n" +
		groupClientsSQL

	c := &client.Client{}
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.FirstName,
		&c.LastName,
		&c.Email,
		&c.CreatedAt,
		&c.Phones,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound(errClientNotFound)
		}
		return nil, errFailedGetClient(err)
	}

	if c.Phones == nil {
		c.Phones = []string{}
	}

	return c, nil
}

func (r *ClientRepository) List(ctx context.Context) ([]*client.Client, error) {
	query := selectClientsSQL + groupClientsSQL + "	ORDER BY c.client_id"

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, errFailedListClients(err)
	}
	defer rows.Close()

	return scanClients(rows)
}

// Search returns the clients matching all present filter fields,
// ordered by id. An empty filter returns an empty result without
// touching the database; listing everything must be an explicit List
// call, never a search accident.
func (r *ClientRepository) Search(ctx context.Context, filter client.SearchFilter) ([]*client.Client, error) {
	if filter.IsEmpty() {
		return []*client.Client{}, nil
	}

	query, args := buildSearchQuery(filter)

	rows, err := r.db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, errFailedSearchClients(err)
	}
	defer rows.Close()

	return scanClients(rows)
}

func (r *ClientRepository) Update(ctx context.Context, id int64, input client.UpdateClientInput) error {
	if input.IsEmpty() {
		return apperrors.InvalidInput(errNoUpdateFields)
	}

	query, args := buildUpdateQuery(id, input)

	result, err := r.db.Pool.Exec(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.EmailExists(errEmailInUse)
		}
		return errFailedUpdateClient(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errClientNotFound)
	}

	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	query := "DELETE FROM clients WHERE client_id = $1"

	result, err := r.db.Pool.Exec(ctx, query, id)
	if err != nil {
		return errFailedDeleteClient(err)
	}

	if result.RowsAffected() == 0 {
		return apperrors.NotFound(errClientNotFound)
	}

	return nil
}

func scanClients(rows pgx.Rows) ([]*client.Client, error) {
	clients := []*client.Client{}
	for rows.Next() {
		c := &client.Client{}
		if err := rows.Scan(
			&c.ID,
			&c.FirstName,
			&c.LastName,
			&c.Email,
			&c.CreatedAt,
			&c.Phones,
		); err != nil {
			return nil, errFailedScanClient(err)
		}
		if c.Phones == nil {
			c.Phones = []string{}
		}
		clients = append(clients, c)
	}

	if err := rows.Err(); err != nil {
		return nil, errIterateClients(err)
	}

	return clients, nil
}
