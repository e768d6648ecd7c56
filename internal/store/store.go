package store

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("resource not found")

// Store is the data access interface. All database operations go through here.
type Store interface {
	Ping(ctx context.Context) error

	// SaveReport persists a report body under a name. Saving an existing
	// name replaces the previous body.
	SaveReport(ctx context.Context, name string, body []byte) error
	// GetReport returns the report body stored under name, or ErrNotFound.
	GetReport(ctx context.Context, name string) ([]byte, error)
}
