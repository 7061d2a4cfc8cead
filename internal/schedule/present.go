package schedule

import (
	"time"

	"fyyur/internal/models"
)

type VenueDetail struct {
	ID                 int          `json:"id"`
	Name               string       `json:"name"`
	Genres             []string     `json:"genres"`
	Address            string       `json:"address"`
	City               string       `json:"city"`
	State              string       `json:"state"`
	Phone              string       `json:"phone"`
	Website            string       `json:"website"`
	FacebookLink       string       `json:"facebook_link"`
	SeekingTalent      bool         `json:"seeking_talent"`
	SeekingDescription string       `json:"seeking_description,omitempty"`
	ImageLink          string       `json:"image_link"`
	PastShows          []ArtistShow `json:"past_shows"`
	UpcomingShows      []ArtistShow `json:"upcoming_shows"`
	PastShowsCount     int          `json:"past_shows_count"`
	UpcomingShowsCount int          `json:"upcoming_shows_count"`
}

type ArtistDetail struct {
	ID                 int         `json:"id"`
	Name               string      `json:"name"`
	Genres             []string    `json:"genres"`
	City               string      `json:"city"`
	State              string      `json:"state"`
	Phone              string      `json:"phone"`
	Website            string      `json:"website"`
	FacebookLink       string      `json:"facebook_link"`
	SeekingVenue       bool        `json:"seeking_venue"`
	SeekingDescription string      `json:"seeking_description,omitempty"`
	ImageLink          string      `json:"image_link"`
	PastShows          []VenueShow `json:"past_shows"`
	UpcomingShows      []VenueShow `json:"upcoming_shows"`
	PastShowsCount     int         `json:"past_shows_count"`
	UpcomingShowsCount int         `json:"upcoming_shows_count"`
}

// SearchResult is the body of both search pages.
type SearchResult struct {
	Count int       `json:"count"`
	Data  []Summary `json:"data"`
}

type ShowListing struct {
	VenueID         int    `json:"venue_id"`
	VenueName       string `json:"venue_name"`
	ArtistID        int    `json:"artist_id"`
	ArtistName      string `json:"artist_name"`
	ArtistImageLink string `json:"artist_image_link"`
	StartTime       string `json:"start_time"`
}

// NewVenueDetail expects venue.Shows to carry their artists.
func NewVenueDetail(venue *models.Venue, now time.Time) VenueDetail {
	past, upcoming := Classify(venue.Shows, now)
	pastShows, upcomingShows := ArtistShows(past), ArtistShows(upcoming)

	return VenueDetail{
		ID:                 venue.ID,
		Name:               venue.Name,
		Genres:             genres(venue.Genres),
		Address:            venue.Address,
		City:               venue.City,
		State:              venue.State,
		Phone:              venue.Phone,
		Website:            venue.Website,
		FacebookLink:       venue.FacebookLink,
		SeekingTalent:      venue.SeekingTalent,
		SeekingDescription: venue.SeekingDescription,
		ImageLink:          venue.ImageLink,
		PastShows:          pastShows,
		UpcomingShows:      upcomingShows,
		PastShowsCount:     len(pastShows),
		UpcomingShowsCount: len(upcomingShows),
	}
}

// NewArtistDetail expects artist.Shows to carry their venues.
func NewArtistDetail(artist *models.Artist, now time.Time) ArtistDetail {
	past, upcoming := Classify(artist.Shows, now)
	pastShows, upcomingShows := VenueShows(past), VenueShows(upcoming)

	return ArtistDetail{
		ID:                 artist.ID,
		Name:               artist.Name,
		Genres:             genres(artist.Genres),
		City:               artist.City,
		State:              artist.State,
		Phone:              artist.Phone,
		Website:            artist.Website,
		FacebookLink:       artist.FacebookLink,
		SeekingVenue:       artist.SeekingVenue,
		SeekingDescription: artist.SeekingDescription,
		ImageLink:          artist.ImageLink,
		PastShows:          pastShows,
		UpcomingShows:      upcomingShows,
		PastShowsCount:     len(pastShows),
		UpcomingShowsCount: len(upcomingShows),
	}
}

func NewSearchResult(data []Summary) SearchResult {
	if data == nil {
		data = []Summary{}
	}

	return SearchResult{Count: len(data), Data: data}
}

// NewShowListings expects every show to carry both its venue and its artist.
func NewShowListings(shows []models.Show) []ShowListing {
	out := make([]ShowListing, 0, len(shows))
	for _, show := range shows {
		item := ShowListing{
			VenueID:   show.VenueID,
			ArtistID:  show.ArtistID,
			StartTime: FormatTime(show.StartTime),
		}
		if show.Venue != nil {
			item.VenueName = show.Venue.Name
		}
		if show.Artist != nil {
			item.ArtistName = show.Artist.Name
			item.ArtistImageLink = show.Artist.ImageLink
		}
		out = append(out, item)
	}

	return out
}

func genres(g []string) []string {
	if g == nil {
		return []string{}
	}

	return g
}
