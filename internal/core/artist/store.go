package artist

import (
	"context"
	"time"
)

// Repository persists artists.
//
// Every mutation is atomic and DeleteArtist removes the artist's shows in
// the same transaction. Summaries are ordered by id.
type Repository interface {
	ListArtists(ctx context.Context, limit, offset int, now time.Time) ([]*Summary, int, error)
	SearchArtists(ctx context.Context, term string, now time.Time) ([]*Summary, error)
	GetArtist(ctx context.Context, id int) (*Artist, error)
	ListArtistShows(ctx context.Context, artistID int) ([]*ShowRef, error)
	CreateArtist(ctx context.Context, a *Artist) error
	UpdateArtist(ctx context.Context, a *Artist) error
	DeleteArtist(ctx context.Context, id int) error
}
