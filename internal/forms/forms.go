// Package forms describes the creation and edit forms rendered on GET
// requests. The descriptors are purely presentational: field names, input
// types and choice lists for the templates to render. Submitted values are
// not validated against them.
package forms

// Field describes one form input.
type Field struct {
	Name     string   // form parameter name
	Label    string   // human-readable label
	Type     string   // input type: text, select, multiselect, datetime
	Required bool
	Choices  []string // options for select/multiselect fields
}

// Form is an ordered list of fields.
type Form struct {
	Fields []Field
}

// Genres lists the selectable genre tags.
var Genres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic", "Folk",
	"Funk", "Hip-Hop", "Heavy Metal", "Instrumental", "Jazz",
	"Musical Theatre", "Pop", "Punk", "R&B", "Reggae", "Rock n Roll",
	"Soul", "Other",
}

// States lists the selectable US state codes.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL", "GA", "HI",
	"ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME", "MT", "NE", "NV", "NH",
	"NJ", "NM", "NY", "NC", "ND", "OH", "OK", "OR", "MD", "MA", "MI", "MN",
	"MS", "MO", "PA", "RI", "SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

// VenueForm describes the venue creation and edit form.
func VenueForm() Form {
	return Form{Fields: []Field{
		{Name: "name", Label: "Name", Type: "text", Required: true},
		{Name: "city", Label: "City", Type: "text", Required: true},
		{Name: "state", Label: "State", Type: "select", Required: true, Choices: States},
		{Name: "address", Label: "Address", Type: "text", Required: true},
		{Name: "phone", Label: "Phone", Type: "text"},
		{Name: "genres", Label: "Genres", Type: "multiselect", Required: true, Choices: Genres},
		{Name: "image_link", Label: "Image Link", Type: "text", Required: true},
		{Name: "facebook_link", Label: "Facebook Link", Type: "text"},
		{Name: "website", Label: "Website", Type: "text"},
	}}
}

// ArtistForm describes the artist creation and edit form.
func ArtistForm() Form {
	return Form{Fields: []Field{
		{Name: "name", Label: "Name", Type: "text", Required: true},
		{Name: "city", Label: "City", Type: "text", Required: true},
		{Name: "state", Label: "State", Type: "select", Required: true, Choices: States},
		{Name: "phone", Label: "Phone", Type: "text"},
		{Name: "genres", Label: "Genres", Type: "multiselect", Required: true, Choices: Genres},
		{Name: "image_link", Label: "Image Link", Type: "text", Required: true},
		{Name: "facebook_link", Label: "Facebook Link", Type: "text"},
		{Name: "website", Label: "Website", Type: "text"},
	}}
}

// ShowForm describes the show creation form.
func ShowForm() Form {
	return Form{Fields: []Field{
		{Name: "artist_id", Label: "Artist ID", Type: "text", Required: true},
		{Name: "venue_id", Label: "Venue ID", Type: "text", Required: true},
		{Name: "start_time", Label: "Start Time", Type: "datetime", Required: true},
	}}
}
