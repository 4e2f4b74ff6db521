package schema

// CoreVenueTable represents the 'core.venue' table
type CoreVenueTable struct {
	Table              string
	ID                 string
	Name               string
	City               string
	State              string
	Address            string
	Phone              string
	ImageLink          string
	FacebookLink       string
	WebsiteLink        string
	Genres             string
	SeekingTalent      string
	SeekingDescription string
	CreatedAt          string
	UpdatedAt          string
}

// CoreVenue is the schema definition for core.venue
var CoreVenue = CoreVenueTable{
	Table:              "core.venue",
	ID:                 "id",
	Name:               "name",
	City:               "city",
	State:              "state",
	Address:            "address",
	Phone:              "phone",
	ImageLink:          "imagelink",
	FacebookLink:       "facebooklink",
	WebsiteLink:        "websitelink",
	Genres:             "genres",
	SeekingTalent:      "seekingtalent",
	SeekingDescription: "seekingdescription",
	CreatedAt:          "createdat",
	UpdatedAt:          "updatedat",
}

// Editable returns the columns replaced by a full update, in bind order.
func (t CoreVenueTable) Editable() []string {
	return []string{
		t.Name, t.City, t.State, t.Address, t.Phone, t.ImageLink, t.FacebookLink,
		t.WebsiteLink, t.Genres, t.SeekingTalent, t.SeekingDescription,
	}
}

// Columns returns every column, in scan order.
func (t CoreVenueTable) Columns() []string {
	return append(append([]string{t.ID}, t.Editable()...), t.CreatedAt, t.UpdatedAt)
}
