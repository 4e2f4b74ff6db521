// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package memstore_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/memstore"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

var now = time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

func seed(t *testing.T) (*memstore.Store, *venue.Venue, *artist.Artist) {
	t.Helper()
	ctx := context.Background()
	store := memstore.New(func() time.Time { return now })

	v := &venue.Venue{Name: "The Musical Hop", City: "San Francisco", State: "CA", Genres: []string{"Jazz"}}
	require.NoError(t, store.CreateVenue(ctx, v))

	a := &artist.Artist{Name: "Guns N Petals", City: "San Francisco", State: "CA", Genres: []string{"Rock n Roll"},
		ImageLink: pointer.To("https://img.example/gnp.jpg")}
	require.NoError(t, store.CreateArtist(ctx, a))

	return store, v, a
}

/*
TestStore_CopiesRecords ensures callers cannot mutate stored state.
*/
func TestStore_CopiesRecords(t *testing.T) {
	ctx := context.Background()
	store, v, _ := seed(t)

	v.Genres[0] = "Polka"
	v.Name = "Renamed"

	stored, err := store.GetVenue(ctx, v.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", stored.Name)
	assert.Equal(t, []string{"Jazz"}, stored.Genres)
	assert.Equal(t, now, stored.CreatedAt)

	stored.Genres[0] = "Swing"
	again, _ := store.GetVenue(ctx, v.ID)
	assert.Equal(t, []string{"Jazz"}, again.Genres)
}

/*
TestStore_CreateShowReferences rejects dangling artist or venue ids.
*/
func TestStore_CreateShowReferences(t *testing.T) {
	ctx := context.Background()
	store, v, a := seed(t)

	err := store.CreateShow(ctx, &show.Show{ArtistID: 99, VenueID: v.ID, StartTime: now})
	assert.True(t, apperr.HasCode(err, apperr.CodeConstraint))

	err = store.CreateShow(ctx, &show.Show{ArtistID: a.ID, VenueID: 99, StartTime: now})
	assert.True(t, apperr.HasCode(err, apperr.CodeConstraint))

	listings, err := store.ListShows(ctx)
	require.NoError(t, err)
	assert.Empty(t, listings)

	s := &show.Show{ArtistID: a.ID, VenueID: v.ID, StartTime: now.Add(time.Hour)}
	require.NoError(t, store.CreateShow(ctx, s))
	assert.Equal(t, 1, s.ID)

	listing, err := store.GetShow(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, "The Musical Hop", listing.VenueName)
	assert.Equal(t, "Guns N Petals", listing.ArtistName)
	assert.Equal(t, "https://img.example/gnp.jpg", *listing.ArtistImageLink)
}

/*
TestStore_ShowOrdering lists shows by start time regardless of insertion order.
*/
func TestStore_ShowOrdering(t *testing.T) {
	ctx := context.Background()
	store, v, a := seed(t)

	for _, offset := range []time.Duration{3 * time.Hour, -time.Hour, time.Hour} {
		require.NoError(t, store.CreateShow(ctx, &show.Show{ArtistID: a.ID, VenueID: v.ID, StartTime: now.Add(offset)}))
	}

	refs, err := store.ListVenueShows(ctx, v.ID)
	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.True(t, refs[0].StartTime.Before(refs[1].StartTime))
	assert.True(t, refs[1].StartTime.Before(refs[2].StartTime))

	summaries, err := store.ListVenueSummaries(ctx, now)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, 2, summaries[0].NumUpcomingShows)
}

/*
TestStore_DeleteCascades removes dependent shows with their artist.
*/
func TestStore_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	store, v, a := seed(t)

	s := &show.Show{ArtistID: a.ID, VenueID: v.ID, StartTime: now}
	require.NoError(t, store.CreateShow(ctx, s))

	require.NoError(t, store.DeleteArtist(ctx, a.ID))

	_, err := store.GetShow(ctx, s.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	refs, err := store.ListVenueShows(ctx, v.ID)
	require.NoError(t, err)
	assert.Empty(t, refs)

	err = store.DeleteArtist(ctx, a.ID)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestStore_ListArtistsPaging returns the total alongside one page.
*/
func TestStore_ListArtistsPaging(t *testing.T) {
	ctx := context.Background()
	store := memstore.New(nil)

	for _, name := range []string{"A", "B", "C"} {
		require.NoError(t, store.CreateArtist(ctx, &artist.Artist{Name: name, Genres: []string{"Jazz"}}))
	}

	page, total, err := store.ListArtists(ctx, 2, 2, now)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 1)
	assert.Equal(t, "C", page[0].Name)
}
