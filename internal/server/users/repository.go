package users

import (
	"context"
)

// Repository is a read-only lookup of username -> account record.
type Repository interface {
	Lookup(ctx context.Context, username string) (*User, error)
}
