package schedule

import (
	"time"

	"fyyur/internal/models"
)

// Summary is the short form of a venue or artist used by listings and search.
type Summary struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	NumUpcomingShows int    `json:"num_upcoming_shows"`
}

// Area holds the venues sharing one (city, state) pair.
type Area struct {
	City   string    `json:"city"`
	State  string    `json:"state"`
	Venues []Summary `json:"venues"`
}

// CountUpcoming returns how many shows start after now.
func CountUpcoming(shows []models.Show, now time.Time) int {
	n := 0
	for _, show := range shows {
		if IsUpcoming(show.StartTime, now) {
			n++
		}
	}

	return n
}

// GroupByArea groups venues by exact (city, state). Areas come out in
// the order their first venue appears in the input.
func GroupByArea(venues []models.Venue, now time.Time) []Area {
	type key struct{ city, state string }

	areas := make([]Area, 0)
	index := make(map[key]int)

	for _, venue := range venues {
		k := key{city: venue.City, state: venue.State}

		i, ok := index[k]
		if !ok {
			i = len(areas)
			index[k] = i
			areas = append(areas, Area{
				City:   venue.City,
				State:  venue.State,
				Venues: make([]Summary, 0, 1),
			})
		}

		areas[i].Venues = append(areas[i].Venues, VenueSummary(venue, now))
	}

	return areas
}

func VenueSummary(venue models.Venue, now time.Time) Summary {
	return Summary{
		ID:               venue.ID,
		Name:             venue.Name,
		NumUpcomingShows: CountUpcoming(venue.Shows, now),
	}
}

func ArtistSummary(artist models.Artist, now time.Time) Summary {
	return Summary{
		ID:               artist.ID,
		Name:             artist.Name,
		NumUpcomingShows: CountUpcoming(artist.Shows, now),
	}
}

// VenueSummaries keeps the input order.
func VenueSummaries(venues []models.Venue, now time.Time) []Summary {
	out := make([]Summary, 0, len(venues))
	for _, venue := range venues {
		out = append(out, VenueSummary(venue, now))
	}

	return out
}

func ArtistSummaries(artists []models.Artist, now time.Time) []Summary {
	out := make([]Summary, 0, len(artists))
	for _, artist := range artists {
		out = append(out, ArtistSummary(artist, now))
	}

	return out
}
