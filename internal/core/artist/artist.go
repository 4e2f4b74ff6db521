package artist

import (
	"time"

	"github.com/taibuivan/fyyur/internal/core/reference"
	"github.com/taibuivan/fyyur/pkg/pointer"
)

// Artist is a performer that plays shows at venues.
type Artist struct {
	ID                 int       `json:"id"`
	Name               string    `json:"name"`
	City               string    `json:"city"`
	State              string    `json:"state"`
	Phone              string    `json:"phone"`
	Genres             []string  `json:"genres"`
	ImageLink          *string   `json:"image_link"`
	FacebookLink       *string   `json:"facebook_link"`
	WebsiteLink        *string   `json:"website_link"`
	SeekingVenue       bool      `json:"seeking_venue"`
	SeekingDescription *string   `json:"seeking_description"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Input is the editable field set of an artist. Update replaces every field.
type Input struct {
	Name               string   `json:"name"`
	City               string   `json:"city"`
	State              string   `json:"state"`
	Phone              string   `json:"phone"`
	Genres             []string `json:"genres"`
	ImageLink          *string  `json:"image_link"`
	FacebookLink       *string  `json:"facebook_link"`
	WebsiteLink        *string  `json:"website_link"`
	SeekingVenue       *bool    `json:"seeking_venue"` // defaults to true
	SeekingDescription *string  `json:"seeking_description"`
}

// Summary is the compact artist row used by listings and search.
type Summary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// SearchResult holds the artists whose name matches a search term.
// Count always equals len(Data).
type SearchResult struct {
	Count int        `json:"count"`
	Data  []*Summary `json:"data"`
}

// ShowRef is a show seen from the artist side.
type ShowRef struct {
	VenueID        int       `json:"venue_id"`
	VenueName      string    `json:"venue_name"`
	VenueImageLink *string   `json:"venue_image_link"`
	StartTime      time.Time `json:"start_time"`
}

// Detail is an artist with their shows split into past and upcoming.
type Detail struct {
	*Artist
	PastShows          []*ShowRef `json:"past_shows"`
	UpcomingShows      []*ShowRef `json:"upcoming_shows"`
	PastShowsCount     int        `json:"past_shows_count"`
	UpcomingShowsCount int        `json:"upcoming_shows_count"`
}

const (
	FieldName               = "name"
	FieldCity               = "city"
	FieldState              = "state"
	FieldPhone              = "phone"
	FieldGenres             = "genres"
	FieldImageLink          = "image_link"
	FieldFacebookLink       = "facebook_link"
	FieldWebsiteLink        = "website_link"
	FieldSeekingDescription = "seeking_description"
)

func (input Input) apply(a *Artist) {
	a.Name = input.Name
	a.City = input.City
	a.State = input.State
	a.Phone = input.Phone
	a.Genres = reference.NormalizeGenres(input.Genres)
	a.ImageLink = pointer.NilIfZero(input.ImageLink)
	a.FacebookLink = pointer.NilIfZero(input.FacebookLink)
	a.WebsiteLink = pointer.NilIfZero(input.WebsiteLink)
	a.SeekingVenue = pointer.Fallback(input.SeekingVenue, true)
	a.SeekingDescription = pointer.NilIfZero(input.SeekingDescription)
}
