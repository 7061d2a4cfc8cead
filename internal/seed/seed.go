// Package seed loads the demo directory: three venues, three artists and
// five shows spanning past and upcoming dates.
package seed

import (
	"context"
	"fmt"
	"time"

	"fyyur/internal/models"
)

type Store interface {
	GetAllVenues(ctx context.Context) ([]models.Venue, error)
	CreateVenue(ctx context.Context, v *models.Venue) (int, error)
	CreateArtist(ctx context.Context, a *models.Artist) (int, error)
	CreateShow(ctx context.Context, show *models.Show) (int, error)
}

// Result counts what Load inserted.
type Result struct {
	Venues  int
	Artists int
	Shows   int
}

func Venues() []models.Venue {
	return []models.Venue{
		{
			Name:               "The Musical Hop",
			City:               "San Francisco",
			State:              "CA",
			Address:            "1015 Folsom Street",
			Phone:              "123-123-1234",
			ImageLink:          "https://images.unsplash.com/photo-1543900694-133f37abaaa5?w=400",
			FacebookLink:       "https://www.facebook.com/TheMusicalHop",
			Website:            "https://www.themusicalhop.com",
			Genres:             []string{"Jazz", "Reggae", "Soul", "Folk"},
			SeekingTalent:      true,
			SeekingDescription: "We are on the lookout for a local artist to play every two weeks. Please call us.",
		},
		{
			Name:         "The Dueling Pianos Bar",
			City:         "New York",
			State:        "NY",
			Address:      "335 Delancey Street",
			Phone:        "914-003-1132",
			ImageLink:    "https://images.unsplash.com/photo-1497032205916-ac775f0649ae?w=750",
			FacebookLink: "https://www.facebook.com/theduelingpianos",
			Website:      "https://www.theduelingpianos.com",
			Genres:       []string{"Classical", "R&B", "Hip-Hop"},
		},
		{
			Name:         "Park Square Live Music & Coffee",
			City:         "San Francisco",
			State:        "CA",
			Address:      "34 Whiskey Moore Ave",
			Phone:        "415-000-1234",
			ImageLink:    "https://images.unsplash.com/photo-1485686531765-ba63b07845a7?w=747",
			FacebookLink: "https://www.facebook.com/ParkSquareLiveMusicAndCoffee",
			Website:      "https://www.parksquarelivemusicandcoffee.com",
			Genres:       []string{"Rock n Roll", "Jazz", "Classical", "Folk"},
		},
	}
}

func Artists() []models.Artist {
	return []models.Artist{
		{
			Name:               "Guns N Petals",
			City:               "San Francisco",
			State:              "CA",
			Phone:              "326-123-5000",
			ImageLink:          "https://images.unsplash.com/photo-1549213783-8284d0336c4f?w=300",
			FacebookLink:       "https://www.facebook.com/GunsNPetals",
			Website:            "https://www.gunsnpetalsband.com",
			Genres:             []string{"Rock n Roll"},
			SeekingVenue:       true,
			SeekingDescription: "Looking for shows to perform at in the San Francisco Bay Area!",
		},
		{
			Name:         "Matt Quevedo",
			City:         "New York",
			State:        "NY",
			Phone:        "300-400-5000",
			ImageLink:    "https://images.unsplash.com/photo-1495223153807-b916f75de8c5?w=334",
			FacebookLink: "https://www.facebook.com/mattquevedo923251523",
			Genres:       []string{"Jazz"},
		},
		{
			Name:      "The Wild Sax Band",
			City:      "San Francisco",
			State:     "CA",
			Phone:     "432-325-5432",
			ImageLink: "https://images.unsplash.com/photo-1558369981-f9ca78462e61?w=794",
			Genres:    []string{"Jazz", "Classical"},
		},
	}
}

type booking struct {
	venue, artist int
	start         time.Time
}

// bookings index into Venues and Artists.
var bookings = []booking{
	{venue: 0, artist: 0, start: time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)},
	{venue: 2, artist: 1, start: time.Date(2019, 6, 15, 23, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, start: time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, start: time.Date(2035, 4, 8, 20, 0, 0, 0, time.UTC)},
	{venue: 2, artist: 2, start: time.Date(2035, 4, 15, 20, 0, 0, 0, time.UTC)},
}

// Load inserts the demo directory unless the store already holds venues.
func Load(ctx context.Context, store Store) (Result, error) {
	const op = "seed.Load"

	var res Result

	existing, err := store.GetAllVenues(ctx)
	if err != nil {
		return res, fmt.Errorf("%s: %w", op, err)
	}
	if len(existing) > 0 {
		return res, nil
	}

	venueIDs := make([]int, 0, 3)
	for _, v := range Venues() {
		id, err := store.CreateVenue(ctx, &v)
		if err != nil {
			return res, fmt.Errorf("%s: venue %s: %w", op, v.Name, err)
		}
		venueIDs = append(venueIDs, id)
		res.Venues++
	}

	artistIDs := make([]int, 0, 3)
	for _, a := range Artists() {
		id, err := store.CreateArtist(ctx, &a)
		if err != nil {
			return res, fmt.Errorf("%s: artist %s: %w", op, a.Name, err)
		}
		artistIDs = append(artistIDs, id)
		res.Artists++
	}

	for _, b := range bookings {
		show := &models.Show{
			VenueID:   venueIDs[b.venue],
			ArtistID:  artistIDs[b.artist],
			StartTime: b.start,
		}
		if _, err := store.CreateShow(ctx, show); err != nil {
			return res, fmt.Errorf("%s: show: %w", op, err)
		}
		res.Shows++
	}

	return res, nil
}
