package handler

import (
	"context"

	"client-service/internal/domain/client"
)

// ClientDirectory is the application surface the HTTP handlers consume.
type ClientDirectory interface {
	CreateClient(ctx context.Context, input client.CreateClientInput) (*client.Client, []string, error)
	GetClient(ctx context.Context, id int64) (*client.Client, error)
	ListClients(ctx context.Context) ([]*client.Client, error)
	SearchClients(ctx context.Context, filter client.SearchFilter) ([]*client.Client, error)
	UpdateClient(ctx context.Context, id int64, input client.UpdateClientInput) error
	DeleteClient(ctx context.Context, id int64) error
	AddPhone(ctx context.Context, clientID int64, number string) (*client.Phone, error)
	DeletePhone(ctx context.Context, clientID int64, number string) error
}
