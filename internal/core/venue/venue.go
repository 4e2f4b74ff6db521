package venue

import (
	"time"

	"github.com/taibuivan/fyyur/internal/core/reference"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

// Venue is a place that hosts shows.
type Venue struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Address            string    `json:"address"`
	Phone              string    `json:"phone"`
	ImageLink          *string   `json:"image_link"`
	FacebookLink       *string   `json:"facebook_link"`
	WebsiteLink        *string   `json:"website_link"`
	Genres             []string  `json:"genres"`
	SeekingTalent      bool      `json:"seeking_talent"`
	SeekingDescription *string   `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Input is the editable field set of a venue. Update replaces every field.
type Input struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Address            string   `json:"address"`
	Phone              string   `json:"phone"`
	ImageLink          *string  `json:"image_link"`
	FacebookLink       *string  `json:"facebook_link"`
	WebsiteLink        *string  `json:"website_link"`
	Genres             []string `json:"genres"`
	SeekingTalent      *bool    `json:"seeking_talent"` // defaults to true
	SeekingDescription *string  `json:"seeking_description"`
}

// Summary is the compact venue row used by grouped listings and search.
type Summary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	City             string `json:"-"`
	State            string `json:"-"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Location is one (city, state) bucket of the grouped venue listing.
type Location struct {
	City   string     `json:"city"`
	State  string     `json:"state"`
	Venues []*Summary `json:"venues"`
}

// SearchResult holds the venues whose name matches a search term.
// Count always equals len(Data).
type SearchResult struct {
	Count int        `json:"count"`
	Data  []*Summary `json:"data"`
}

// ShowRef is a show seen from the venue side.
type ShowRef struct {
	ArtistID        int       `json:"artist_id"`
	ArtistName      string    `json:"artist_name"`
	ArtistImageLink *string   `json:"artist_image_link"`
	StartTime       time.Time `json:"start_time"`
}

// Detail is a venue with its shows split into past and upcoming.
type Detail struct {
	*Venue
	PastShows          []*ShowRef `json:"past_shows"`
	UpcomingShows      []*ShowRef `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

// Global field names for validation
const (
	FieldName               = "name"
	FieldCity               = "city"
	FieldState              = "state"
	FieldAddress            = "address"
	FieldPhone              = "phone"
	FieldImageLink          = "image_link"
	FieldFacebookLink       = "facebook_link"
	FieldWebsiteLink        = "website_link"
	FieldGenres             = "genres"
	FieldSeekingDescription = "seeking_description"
)

// GroupByLocation buckets summaries by exact (city, state).
//
// Buckets appear in first-seen order and venues keep their input order
// inside a bucket. Venues with no shows still get a bucket.
func GroupByLocation(summaries []*Summary) []*Location {
	type key struct{ city, state string }

	locations := []*Location{}
	index := make(map[key]*Location)

	for _, summary := range summaries {
		k := key{summary.City, summary.State}

		location, ok := index[k]
		if !ok {
			location = &Location{City: summary.City, State: summary.State}
			index[k] = location
			locations = append(locations, location)
		}
		location.Venues = append(location.Venues, summary)
	}
	return locations
}

// apply copies the normalized input onto v.
func (input Input) apply(v *Venue) {
	v.Name = input.Name
	v.City = input.City
	v.State = input.State
	v.Address = input.Address
	v.Phone = input.Phone
	v.ImageLink = pointer.NilIfZero(input.ImageLink)
	v.FacebookLink = pointer.NilIfZero(input.FacebookLink)
	v.WebsiteLink = pointer.NilIfZero(input.WebsiteLink)
	v.Genres = reference.NormalizeGenres(input.Genres)
	v.SeekingTalent = pointer.Fallback(input.SeekingTalent, true)
	v.SeekingDescription = pointer.NilIfZero(input.SeekingDescription)
}
