package app

import (
	"context"
	"errors"

	"client-service/internal/domain/client"
	apperrors "client-service/pkg/errors"

	"go.uber.org/zap"
)

// ClientStore is the client persistence surface the directory needs.
type ClientStore interface {
	Create(ctx context.Context, input client.CreateClientInput) (*client.Client, error)
	GetByID(ctx context.Context, id int64) (*client.Client, error)
	List(ctx context.Context) ([]*client.Client, error)
	Search(ctx context.Context, filter client.SearchFilter) ([]*client.Client, error)
	Update(ctx context.Context, id int64, input client.UpdateClientInput) error
	Delete(ctx context.Context, id int64) error
}

// PhoneStore is the phone persistence surface the directory needs.
type PhoneStore interface {
	Add(ctx context.Context, clientID int64, number string) (*client.Phone, error)
	Delete(ctx context.Context, clientID int64, number string) error
}

// Directory coordinates the client and phone repositories. The only
// multi-statement flow is client creation with an initial phone list.
type Directory struct {
	clients ClientStore
	phones  PhoneStore
	logger  *zap.Logger
}

func NewDirectory(clients ClientStore, phones PhoneStore, logger *zap.Logger) *Directory {
	return &Directory{
		clients: clients,
		phones:  phones,
		logger:  logger,
	}
}

// CreateClient inserts the client row, then attempts each supplied
// phone number in order. A number that already belongs to another
// client does not abort the batch: it lands in the skipped list and
// the remaining numbers still attempt insertion. Other phone failures
// are logged and skipped the same way, so one bad number never loses
// the created client.
func (d *Directory) CreateClient(ctx context.Context, input client.CreateClientInput) (*client.Client, []string, error) {
	created, err := d.clients.Create(ctx, input)
	if err != nil {
		return nil, nil, err
	}

	skipped := []string{}
	for _, number := range input.Phones {
		phone, err := d.phones.Add(ctx, created.ID, number)
		if err != nil {
			skipped = append(skipped, number)
			if errors.Is(err, apperrors.ErrPhoneExists) {
				d.logger.Warn("phone number already taken, skipping",
					zap.Int64("client_id", created.ID),
					zap.String("phone_number", number),
				)
			} else {
				d.logger.Error("failed to add phone, skipping",
					zap.Int64("client_id", created.ID),
					zap.String("phone_number", number),
					zap.Error(err),
				)
			}
			continue
		}
		created.Phones = append(created.Phones, phone.Number)
	}

	return created, skipped, nil
}

func (d *Directory) GetClient(ctx context.Context, id int64) (*client.Client, error) {
	return d.clients.GetByID(ctx, id)
}

func (d *Directory) ListClients(ctx context.Context) ([]*client.Client, error) {
	return d.clients.List(ctx)
}

func (d *Directory) SearchClients(ctx context.Context, filter client.SearchFilter) ([]*client.Client, error) {
	return d.clients.Search(ctx, filter)
}

func (d *Directory) UpdateClient(ctx context.Context, id int64, input client.UpdateClientInput) error {
	return d.clients.Update(ctx, id, input)
}

func (d *Directory) DeleteClient(ctx context.Context, id int64) error {
	return d.clients.Delete(ctx, id)
}

func (d *Directory) AddPhone(ctx context.Context, clientID int64, number string) (*client.Phone, error) {
	return d.phones.Add(ctx, clientID, number)
}

func (d *Directory) DeletePhone(ctx context.Context, clientID int64, number string) error {
	return d.phones.Delete(ctx, clientID, number)
}
