package show_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/memstore"
)

func newShowService(t *testing.T) (*show.Service, int, int) {
	t.Helper()
	store := memstore.New(nil)
	ctx := context.Background()

	v := &venue.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: []string{"Jazz"}}
	require.NoError(t, store.CreateVenue(ctx, v))

	a := &artist.Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA", Genres: []string{"Rock n Roll"}}
	require.NoError(t, store.CreateArtist(ctx, a))

	return show.NewService(store, slog.New(slog.NewTextHandler(io.Discard, nil))), a.ID, v.ID
}

/*
TestCreate_Validation requires both references and a start time.
*/
func TestCreate_Validation(t *testing.T) {
	service, artistID, venueID := newShowService(t)

	tests := []struct {
		name  string
		input show.Input
		field string
	}{
		{"missing_artist", show.Input{VenueID: venueID, StartTime: now}, show.FieldArtistID},
		{"missing_venue", show.Input{ArtistID: artistID, StartTime: now}, show.FieldVenueID},
		{"missing_start", show.Input{ArtistID: artistID, VenueID: venueID}, show.FieldStartTime},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.input)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, apperr.CodeValidation, ae.Code)
			require.Len(t, ae.Details, 1)
			assert.Equal(t, tt.field, ae.Details[0].Field)
		})
	}
}

/*
TestCreate_UnknownArtist fails with a constraint violation and inserts nothing.
*/
func TestCreate_UnknownArtist(t *testing.T) {
	service, _, venueID := newShowService(t)

	_, err := service.Create(context.Background(), show.Input{ArtistID: 42, VenueID: venueID, StartTime: now})
	assert.True(t, apperr.HasCode(err, apperr.CodeConstraint))

	listings, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, listings)
}

/*
TestList enriches shows with names and orders them by start time.
*/
func TestList(t *testing.T) {
	service, artistID, venueID := newShowService(t)
	ctx := context.Background()

	later, err := service.Create(ctx, show.Input{ArtistID: artistID, VenueID: venueID, StartTime: now.Add(time.Hour)})
	require.NoError(t, err)
	earlier, err := service.Create(ctx, show.Input{ArtistID: artistID, VenueID: venueID, StartTime: now.Add(-time.Hour)})
	require.NoError(t, err)

	listings, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, earlier.ID, listings[0].ID)
	assert.Equal(t, later.ID, listings[1].ID)
	assert.Equal(t, "The Musical Hop", listings[0].VenueName)
	assert.Equal(t, "Guns N Petals", listings[0].ArtistName)

	_, err = service.Get(ctx, 999)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}
