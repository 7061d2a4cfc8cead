// Package schedule splits shows into past and upcoming ones and shapes
// venues, artists and shows into the records served by each page.
package schedule

import (
	"time"

	"fyyur/internal/models"
)

// TimeLayout is the ISO-8601 layout used for every start_time in a response.
const TimeLayout = time.RFC3339

// IsUpcoming reports whether a show starting at start has not started yet.
// A show starting exactly at now is already past.
func IsUpcoming(start, now time.Time) bool {
	return start.After(now)
}

// Classify partitions shows into past and upcoming relative to now,
// keeping the input order inside each part.
func Classify(shows []models.Show, now time.Time) (past, upcoming []models.Show) {
	past = make([]models.Show, 0, len(shows))
	upcoming = make([]models.Show, 0, len(shows))

	for _, show := range shows {
		if IsUpcoming(show.StartTime, now) {
			upcoming = append(upcoming, show)
		} else {
			past = append(past, show)
		}
	}

	return past, upcoming
}

// ArtistShow is a show as listed on a venue page.
type ArtistShow struct {
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// VenueShow is a show as listed on an artist page.
type VenueShow struct {
	VenueID        int    `json:"venue_id"`
	VenueName      string `json:"venue_name"`
	VenueImageLink string `json:"venue_image_link"`
	StartTime      string `json:"start_time"`
}

// ArtistShows projects shows onto their artists. Shows loaded without
// an artist keep the id and leave name and image empty.
func ArtistShows(shows []models.Show) []ArtistShow {
	out := make([]ArtistShow, 0, len(shows))
	for _, show := range shows {
		item := ArtistShow{
			ArtistID:  show.ArtistID,
			StartTime: FormatTime(show.StartTime),
		}
		if show.Artist != nil {
			item.ArtistName = show.Artist.Name
			item.ArtistImageLink = show.Artist.ImageLink
		}
		out = append(out, item)
	}

	return out
}

// VenueShows projects shows onto their venues.
func VenueShows(shows []models.Show) []VenueShow {
	out := make([]VenueShow, 0, len(shows))
	for _, show := range shows {
		item := VenueShow{
			VenueID:   show.VenueID,
			StartTime: FormatTime(show.StartTime),
		}
		if show.Venue != nil {
			item.VenueName = show.Venue.Name
			item.VenueImageLink = show.Venue.ImageLink
		}
		out = append(out, item)
	}

	return out
}

func FormatTime(t time.Time) string {
	return t.UTC().Format(TimeLayout)
}
