package show

import "context"

// Repository persists shows.
//
// CreateShow must verify, inside the same transaction as the insert, that the
// referenced artist and venue exist and fail with a CONSTRAINT_VIOLATION otherwise.
type Repository interface {
	ListShows(ctx context.Context) ([]*Listing, error)
	GetShow(ctx context.Context, id int) (*Listing, error)
	CreateShow(ctx context.Context, s *Show) error
}
