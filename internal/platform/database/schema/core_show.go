package schema

// CoreShowTable represents the 'core.show' table
type CoreShowTable struct {
	Table     string
	ID        string
	StartTime string
	ArtistID  string
	VenueID   string
	CreatedAt string
}

// CoreShow is the schema definition for core.show
var CoreShow = CoreShowTable{
	Table:     "core.show",
	ID:        "id",
	StartTime: "starttime",
	ArtistID:  "artistid",
	VenueID:   "venueid",
	CreatedAt: "createdat",
}
