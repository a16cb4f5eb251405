package client

import "time"

// Client is a person record with a unique email and zero or more
// phone numbers. Phones always holds the complete set of numbers
// owned by the client, never a filtered subset.
type Client struct {
	ID        int64     `json:"client_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	Phones    []string  `json:"phones"`
}

// Phone is a unique number owned by exactly one client.
type Phone struct {
	ID        int64     `json:"phone_id"`
	ClientID  int64     `json:"client_id"`
	Number    string    `json:"phone_number"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateClientInput struct {
	FirstName string
	LastName  string
	Email     string
	Phones    []string
}

// UpdateClientInput is a sparse field update: only non-nil fields are
// written, everything else is left untouched.
type UpdateClientInput struct {
	FirstName *string
	LastName  *string
	Email     *string
}

func (in UpdateClientInput) IsEmpty() bool {
	return in.FirstName == nil && in.LastName == nil && in.Email == nil
}

// SearchFilter holds the optional case-insensitive substring filters
// recognized by client search. All present fields are combined with
// logical AND. Phone matches against owned numbers, not a client
// column.
type SearchFilter struct {
	FirstName *string
	LastName  *string
	Email     *string
	Phone     *string
}

func (f SearchFilter) IsEmpty() bool {
	return f.FirstName == nil && f.LastName == nil && f.Email == nil && f.Phone == nil
}
