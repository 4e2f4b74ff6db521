package artist_test

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
	"github.com/taibuivan/fyyur/pkg/pointer"
)

var now = time.Date(2026, 5, 1, 20, 0, 0, 0, time.UTC)

func newServices() (*artist.Service, *venue.Service, *show.Service) {
	clock := func() time.Time { return now }
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memstore.New(clock)

	return artist.NewService(store, logger, clock),
		venue.NewService(store, logger, clock),
		show.NewService(store, logger)
}

func validInput(name string) artist.Input {
	return artist.Input{
		Name:   name,
		City:   "San Francisco",
		State:  "CA",
		Phone:  "326-123-5000",
		Genres: []string{"Rock n Roll"},
	}
}

func mustVenue(t *testing.T, venues *venue.Service, name string) *venue.Venue {
	t.Helper()
	v, err := venues.Create(context.Background(), venue.Input{
		Name: name, City: "San Francisco", State: "CA", Address: "1015 Folsom Street",
		Phone: "123-123-1234", Genres: []string{"Jazz"}, ImageLink: pointer.To("https://img.example/hop.jpg"),
	})
	require.NoError(t, err)
	return v
}

/*
TestDetail_PastShow reports a show from yesterday as past.
*/
func TestDetail_PastShow(t *testing.T) {
	artists, venues, shows := newServices()
	ctx := context.Background()

	x, err := artists.Create(ctx, validInput("X"))
	require.NoError(t, err)
	y := mustVenue(t, venues, "Y")

	_, err = shows.Create(ctx, show.Input{ArtistID: x.ID, VenueID: y.ID, StartTime: now.Add(-24 * time.Hour)})
	require.NoError(t, err)

	detail, err := artists.Detail(ctx, x.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.PastShowsCount)
	assert.Equal(t, 0, detail.UpcomingShowsCount)
	require.Len(t, detail.PastShows, 1)
	assert.Equal(t, y.ID, detail.PastShows[0].VenueID)
	assert.Equal(t, "Y", detail.PastShows[0].VenueName)
	assert.Equal(t, "https://img.example/hop.jpg", *detail.PastShows[0].VenueImageLink)
	assert.NotNil(t, detail.UpcomingShows)

	_, err = artists.Detail(ctx, 999)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestList pages through artists and counts only upcoming shows.
*/
func TestList(t *testing.T) {
	artists, venues, shows := newServices()
	ctx := context.Background()
	v := mustVenue(t, venues, "The Musical Hop")

	ids := []int{}
	for _, name := range []string{"Guns N Petals", "Matt Quevedo", "The Wild Sax Band"} {
		a, err := artists.Create(ctx, validInput(name))
		require.NoError(t, err)
		ids = append(ids, a.ID)
	}

	_, err := shows.Create(ctx, show.Input{ArtistID: ids[0], VenueID: v.ID, StartTime: now.Add(time.Hour)})
	require.NoError(t, err)
	_, err = shows.Create(ctx, show.Input{ArtistID: ids[0], VenueID: v.ID, StartTime: now.Add(-time.Hour)})
	require.NoError(t, err)

	page, total, err := artists.List(ctx, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, page, 2)
	assert.Equal(t, "Guns N Petals", page[0].Name)
	assert.Equal(t, 1, page[0].NumUpcomingShows)
	assert.Equal(t, 0, page[1].NumUpcomingShows)

	page, _, err = artists.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "The Wild Sax Band", page[0].Name)
}

/*
TestSearch matches substrings regardless of case.
*/
func TestSearch(t *testing.T) {
	artists, _, _ := newServices()
	ctx := context.Background()

	for _, name := range []string{"Guns N Petals", "Matt Quevedo", "The Wild Sax Band"} {
		_, err := artists.Create(ctx, validInput(name))
		require.NoError(t, err)
	}

	result, err := artists.Search(ctx, "A")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)

	result, err = artists.Search(ctx, "band")
	require.NoError(t, err)
	assert.Equal(t, 1, result.Count)
	assert.Equal(t, "The Wild Sax Band", result.Data[0].Name)

	result, err = artists.Search(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, result.Count)
	assert.Len(t, result.Data, result.Count)
}

/*
TestMutations covers validation, full replacement and cascading delete.
*/
func TestMutations(t *testing.T) {
	artists, venues, shows := newServices()
	ctx := context.Background()

	t.Run("create_requires_fields", func(t *testing.T) {
		_, err := artists.Create(ctx, artist.Input{})
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, apperr.CodeValidation, ae.Code)
		assert.GreaterOrEqual(t, len(ae.Details), 5)
	})

	a, err := artists.Create(ctx, validInput("Guns N Petals"))
	require.NoError(t, err)
	assert.True(t, a.SeekingVenue)

	t.Run("update_replaces", func(t *testing.T) {
		input := validInput("Guns N Roses")
		input.SeekingVenue = pointer.To(false)
		input.WebsiteLink = pointer.To("https://gunsnpetalsband.com")

		updated, err := artists.Update(ctx, a.ID, input)
		require.NoError(t, err)
		assert.False(t, updated.SeekingVenue)

		detail, err := artists.Detail(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, "Guns N Roses", detail.Name)
		assert.Equal(t, "https://gunsnpetalsband.com", *detail.WebsiteLink)
	})

	t.Run("update_missing", func(t *testing.T) {
		_, err := artists.Update(ctx, 999, validInput("Nobody"))
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})

	t.Run("delete_cascades", func(t *testing.T) {
		v := mustVenue(t, venues, "The Musical Hop")
		booked, err := shows.Create(ctx, show.Input{ArtistID: a.ID, VenueID: v.ID, StartTime: now})
		require.NoError(t, err)

		require.NoError(t, artists.Delete(ctx, a.ID))

		_, err = shows.Get(ctx, booked.ID)
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

		detail, err := venues.Detail(ctx, v.ID)
		require.NoError(t, err)
		assert.Zero(t, detail.UpcomingShowsCount+detail.PastShowsCount)

		err = artists.Delete(ctx, a.ID)
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})
}
