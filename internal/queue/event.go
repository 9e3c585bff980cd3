// Package queue publishes directory events to the message broker.
package queue

// ListingCreatedEvent is published when a venue, artist or show is
// successfully listed. It carries enough information for downstream
// consumers to notify or aggregate without querying the primary database.
type ListingCreatedEvent struct {
	Kind      string `json:"kind"` // "venue", "artist" or "show"
	ID        uint64 `json:"id"`
	Name      string `json:"name,omitempty"`
	VenueID   uint64 `json:"venue_id,omitempty"`
	ArtistID  uint64 `json:"artist_id,omitempty"`
	StartTime string `json:"start_time,omitempty"`
}
