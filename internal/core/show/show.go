package show

import "time"

// Show is a scheduled performance of one Artist at one Venue.
//
// Shows are immutable once created; they only disappear when their Artist or
// Venue is deleted.
type Show struct {
	ID        int       `json:"id"`
	ArtistID  int       `json:"artist_id"`
	VenueID   int       `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
	CreatedAt time.Time `json:"created_at"`
}

// Input carries the fields an editor submits to book a show.
type Input struct {
	ArtistID  int       `json:"artist_id"`
	VenueID   int       `json:"venue_id"`
	StartTime time.Time `json:"start_time"`
}

// Listing is a show enriched with the names needed by the public show list.
type Listing struct {
	ID              int       `json:"id"`
	VenueID         int       `json:"venue_id"`
	VenueName       string    `json:"venue_name"`
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink *string   `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// Global field names for validation
const (
	FieldArtistID  = "artist_id"
	FieldVenueID   = "venue_id"
	FieldStartTime = "start_time"
)

// # Classification

// IsUpcoming reports whether a show starting at start is upcoming relative to now.
// A show starting exactly at now counts as upcoming.
func IsUpcoming(start, now time.Time) bool {
	return !start.Before(now)
}

// Partition splits items into past and upcoming using [IsUpcoming].
//
// Every item lands in exactly one of the two slices and relative order is
// preserved. Both slices are non-nil so they encode as JSON arrays.
func Partition[T any](items []T, startOf func(T) time.Time, now time.Time) (past, upcoming []T) {
	past = make([]T, 0, len(items))
	upcoming = make([]T, 0, len(items))

	for _, item := range items {
		if IsUpcoming(startOf(item), now) {
			upcoming = append(upcoming, item)
		} else {
			past = append(past, item)
		}
	}
	return past, upcoming
}

// CountUpcoming returns how many of starts are upcoming relative to now.
func CountUpcoming(starts []time.Time, now time.Time) int {
	count := 0
	for _, start := range starts {
		if IsUpcoming(start, now) {
			count++
		}
	}
	return count
}
