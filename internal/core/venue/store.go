package venue

import (
	"context"
	"time"
)

// Repository persists venues.
//
// Every mutation is atomic. DeleteVenue removes the venue's shows in the same
// transaction. Summaries are ordered by id and their upcoming counts are
// computed against the supplied now.
type Repository interface {
	ListVenueSummaries(ctx context.Context, now time.Time) ([]*Summary, error)
	SearchVenues(ctx context.Context, term string, now time.Time) ([]*Summary, error)
	GetVenue(ctx context.Context, id int) (*Venue, error)
	ListVenueShows(ctx context.Context, venueID int) ([]*ShowRef, error)
	CreateVenue(ctx context.Context, v *Venue) error
	UpdateVenue(ctx context.Context, v *Venue) error
	DeleteVenue(ctx context.Context, id int) error
}
