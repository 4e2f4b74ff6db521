package schema

// CoreArtistTable represents the 'core.artist' table
type CoreArtistTable struct {
	Table              string
	ID                 string
	Name               string
	City               string
	State              string
	Phone              string
	Genres             string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	SeekingVenue       string
	SeekingDescription string
	CreatedAt          string
	UpdatedAt          string
}

// CoreArtist is the schema definition for core.artist
var CoreArtist = CoreArtistTable{
	Table:              "core.artist",
	ID:                 "id",
	Name:               "name",
	City:               "city",
	State:              "state",
	Phone:              "phone",
	Genres:             "genres",
	ImageLink:          "imagelink",
	FacebookLink:       "facebooklink",
	WebsiteLink:        "websitelink",
	SeekingVenue:       "seekingvenue",
	SeekingDescription: "seekingdescription",
	CreatedAt:          "createdat",
	UpdatedAt:          "updatedat",
}

// Editable returns the columns replaced by a full update, in bind order.
func (t CoreArtistTable) Editable() []string {
	return []string{
		t.Name, t.City, t.State, t.Phone, t.Genres, t.ImageLink, t.FacebookLink,
		t.WebsiteLink, t.SeekingVenue, t.SeekingDescription,
	}
}

// Columns returns every column, in scan order.
func (t CoreArtistTable) Columns() []string {
	return append(append([]string{t.ID}, t.Editable()...), t.CreatedAt, t.UpdatedAt)
}
