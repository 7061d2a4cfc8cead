package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Show books one artist into one venue. Venue and Artist are only
// populated by store queries that load the counterpart.
type Show struct {
	bun.BaseModel `bun:"table:shows,alias:s" json:"-"`

	ID        int       `bun:"id,pk,autoincrement" json:"id"`
	VenueID   int       `bun:"venue_id,notnull" json:"venue_id"`
	ArtistID  int       `bun:"artist_id,notnull" json:"artist_id"`
	StartTime time.Time `bun:"start_time,notnull" json:"start_time"`

	Venue  *Venue  `bun:"rel:belongs-to,join:venue_id=id" json:"-"`
	Artist *Artist `bun:"rel:belongs-to,join:artist_id=id" json:"-"`
}
