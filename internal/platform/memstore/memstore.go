// Copyright (c) 2026 Fyyur. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package memstore provides an in-memory listing store.

A single [Store] implements the venue, artist and show repositories. Every
method runs under one lock, so each mutation is atomic and readers never
observe a half-applied delete. Records are copied on the way in and out;
callers can never alias stored state.

It backs STORE_DRIVER=memory and the service tests.
*/
package memstore

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/taibuivan/fyyur/internal/core/artist"
	"github.com/taibuivan/fyyur/internal/core/show"
	"github.com/taibuivan/fyyur/internal/core/venue"
	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/pkg/fold"
	"github.com/taibuivan/fyyur/pkg/pagination"
	"github.com/taibuivan/fyyur/pkg/slice"
)

// Store is a mutex-guarded set of venue, artist and show tables.
type Store struct {
	mu      sync.RWMutex
	now     func() time.Time
	venues  map[int]*venue.Venue
	artists map[int]*artist.Artist
	shows   map[int]*show.Show
	nextID  struct{ venue, artist, show int }
}

// New returns an empty [Store]. A nil clock defaults to [time.Now] and is
// only used for created/updated timestamps.
func New(clock func() time.Time) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{
		now:     clock,
		venues:  map[int]*venue.Venue{},
		artists: map[int]*artist.Artist{},
		shows:   map[int]*show.Show{},
	}
}

var (
	_ venue.Repository  = (*Store)(nil)
	_ artist.Repository = (*Store)(nil)
	_ show.Repository   = (*Store)(nil)
)

// # Venues

func (store *Store) ListVenueSummaries(_ context.Context, now time.Time) ([]*venue.Summary, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	return slice.Map(slice.ValuesByKey(store.venues), func(v *venue.Venue) *venue.Summary {
		return store.venueSummary(v, now)
	}), nil
}

func (store *Store) SearchVenues(_ context.Context, term string, now time.Time) ([]*venue.Summary, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	matches := slice.Filter(slice.ValuesByKey(store.venues), func(v *venue.Venue) bool {
		return fold.Contains(v.Name, term)
	})
	return slice.Map(matches, func(v *venue.Venue) *venue.Summary {
		return store.venueSummary(v, now)
	}), nil
}

func (store *Store) GetVenue(_ context.Context, id int) (*venue.Venue, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	v, ok := store.venues[id]
	if !ok {
		return nil, apperr.NotFound("Venue")
	}
	return cloneVenue(v), nil
}

func (store *Store) ListVenueShows(_ context.Context, venueID int) ([]*venue.ShowRef, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	hosted := store.showsWhere(func(s *show.Show) bool { return s.VenueID == venueID })
	return slice.Map(hosted, func(s *show.Show) *venue.ShowRef {
		a := store.artists[s.ArtistID]
		return &venue.ShowRef{
			ArtistID:        a.ID,
			ArtistName:      a.Name,
			ArtistImageLink: cloneString(a.ImageLink),
			StartTime:       s.StartTime,
		}
	}), nil
}

func (store *Store) CreateVenue(_ context.Context, v *venue.Venue) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.nextID.venue++
	v.ID = store.nextID.venue
	v.CreatedAt = store.now()
	v.UpdatedAt = v.CreatedAt

	store.venues[v.ID] = cloneVenue(v)
	return nil
}

func (store *Store) UpdateVenue(_ context.Context, v *venue.Venue) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	existing, ok := store.venues[v.ID]
	if !ok {
		return apperr.NotFound("Venue")
	}

	v.CreatedAt = existing.CreatedAt
	v.UpdatedAt = store.now()

	store.venues[v.ID] = cloneVenue(v)
	return nil
}

func (store *Store) DeleteVenue(_ context.Context, id int) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.venues[id]; !ok {
		return apperr.NotFound("Venue")
	}

	for showID, s := range store.shows {
		if s.VenueID == id {
			delete(store.shows, showID)
		}
	}
	delete(store.venues, id)
	return nil
}

func (store *Store) venueSummary(v *venue.Venue, now time.Time) *venue.Summary {
	return &venue.Summary{
		ID:               v.ID,
		Name:             v.Name,
		City:             v.City,
		State:            v.State,
		NumUpcomingShows: store.countUpcoming(func(s *show.Show) bool { return s.VenueID == v.ID }, now),
	}
}

// # Artists

func (store *Store) ListArtists(_ context.Context, limit, offset int, now time.Time) ([]*artist.Summary, int, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	all := slice.ValuesByKey(store.artists)
	page := pagination.Window(all, limit, offset)

	return slice.Map(page, func(a *artist.Artist) *artist.Summary {
		return store.artistSummary(a, now)
	}), len(all), nil
}

func (store *Store) SearchArtists(_ context.Context, term string, now time.Time) ([]*artist.Summary, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	matches := slice.Filter(slice.ValuesByKey(store.artists), func(a *artist.Artist) bool {
		return fold.Contains(a.Name, term)
	})
	return slice.Map(matches, func(a *artist.Artist) *artist.Summary {
		return store.artistSummary(a, now)
	}), nil
}

func (store *Store) GetArtist(_ context.Context, id int) (*artist.Artist, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	a, ok := store.artists[id]
	if !ok {
		return nil, apperr.NotFound("Artist")
	}
	return cloneArtist(a), nil
}

func (store *Store) ListArtistShows(_ context.Context, artistID int) ([]*artist.ShowRef, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	booked := store.showsWhere(func(s *show.Show) bool { return s.ArtistID == artistID })
	return slice.Map(booked, func(s *show.Show) *artist.ShowRef {
		v := store.venues[s.VenueID]
		return &artist.ShowRef{
			VenueID:        v.ID,
			VenueName:      v.Name,
			VenueImageLink: cloneString(v.ImageLink),
			StartTime:      s.StartTime,
		}
	}), nil
}

func (store *Store) CreateArtist(_ context.Context, a *artist.Artist) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.nextID.artist++
	a.ID = store.nextID.artist
	a.CreatedAt = store.now()
	a.UpdatedAt = a.CreatedAt

	store.artists[a.ID] = cloneArtist(a)
	return nil
}

func (store *Store) UpdateArtist(_ context.Context, a *artist.Artist) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	existing, ok := store.artists[a.ID]
	if !ok {
		return apperr.NotFound("Artist")
	}

	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = store.now()

	store.artists[a.ID] = cloneArtist(a)
	return nil
}

func (store *Store) DeleteArtist(_ context.Context, id int) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.artists[id]; !ok {
		return apperr.NotFound("Artist")
	}

	for showID, s := range store.shows {
		if s.ArtistID == id {
			delete(store.shows, showID)
		}
	}
	delete(store.artists, id)
	return nil
}

func (store *Store) artistSummary(a *artist.Artist, now time.Time) *artist.Summary {
	return &artist.Summary{
		ID:               a.ID,
		Name:             a.Name,
		NumUpcomingShows: store.countUpcoming(func(s *show.Show) bool { return s.ArtistID == a.ID }, now),
	}
}

// # Shows

func (store *Store) ListShows(_ context.Context) ([]*show.Listing, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	all := store.showsWhere(func(*show.Show) bool { return true })
	return slice.Map(all, store.listing), nil
}

func (store *Store) GetShow(_ context.Context, id int) (*show.Listing, error) {
	store.mu.RLock()
	defer store.mu.RUnlock()

	s, ok := store.shows[id]
	if !ok {
		return nil, apperr.NotFound("Show")
	}
	return store.listing(s), nil
}

func (store *Store) CreateShow(_ context.Context, s *show.Show) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, ok := store.artists[s.ArtistID]; !ok {
		return apperr.Constraint("Artist does not exist")
	}
	if _, ok := store.venues[s.VenueID]; !ok {
		return apperr.Constraint("Venue does not exist")
	}

	store.nextID.show++
	s.ID = store.nextID.show
	s.CreatedAt = store.now()

	stored := *s
	store.shows[s.ID] = &stored
	return nil
}

func (store *Store) listing(s *show.Show) *show.Listing {
	v := store.venues[s.VenueID]
	a := store.artists[s.ArtistID]

	return &show.Listing{
		ID:              s.ID,
		VenueID:         v.ID,
		VenueName:       v.Name,
		ArtistID:        a.ID,
		ArtistName:      a.Name,
		ArtistImageLink: cloneString(a.ImageLink),
		StartTime:       s.StartTime,
	}
}

// # Helpers

// showsWhere returns matching shows ordered by start time, then id.
// Callers must hold the lock.
func (store *Store) showsWhere(predicate func(*show.Show) bool) []*show.Show {
	matches := slice.Filter(slice.ValuesByKey(store.shows), predicate)
	slices.SortStableFunc(matches, func(left, right *show.Show) int {
		if order := left.StartTime.Compare(right.StartTime); order != 0 {
			return order
		}
		return cmp.Compare(left.ID, right.ID)
	})
	return matches
}

func (store *Store) countUpcoming(predicate func(*show.Show) bool, now time.Time) int {
	starts := []time.Time{}
	for _, s := range store.shows {
		if predicate(s) {
			starts = append(starts, s.StartTime)
		}
	}
	return show.CountUpcoming(starts, now)
}

func cloneVenue(v *venue.Venue) *venue.Venue {
	c := *v
	c.Genres = slices.Clone(v.Genres)
	c.ImageLink = cloneString(v.ImageLink)
	c.FacebookLink = cloneString(v.FacebookLink)
	c.WebsiteLink = cloneString(v.WebsiteLink)
	c.SeekingDescription = cloneString(v.SeekingDescription)
	return &c
}

func cloneArtist(a *artist.Artist) *artist.Artist {
	c := *a
	c.Genres = slices.Clone(a.Genres)
	c.ImageLink = cloneString(a.ImageLink)
	c.FacebookLink = cloneString(a.FacebookLink)
	c.WebsiteLink = cloneString(a.WebsiteLink)
	c.SeekingDescription = cloneString(a.SeekingDescription)
	return &c
}

func cloneString(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
