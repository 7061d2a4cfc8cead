package forms

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"fyyur/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validVenue() Venue {
	return Venue{
		Name:         "The Musical Hop",
		City:         "San Francisco",
		State:        "CA",
		Address:      "1015 Folsom Street",
		Phone:        "123-123-1234",
		ImageLink:    "https://images.example.com/hop.jpg",
		Genres:       []string{"Jazz", "Reggae", "Swing"},
		FacebookLink: "https://www.facebook.com/TheMusicalHop",
		WebsiteLink:  "https://www.themusicalhop.com",
	}
}

func TestValidateVenue(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		mutate    func(v *Venue)
		wantField string
		wantTag   string
	}{
		{
			name:      "Unknown genre",
			mutate:    func(v *Venue) {},
			wantField: "genres[2]",
			wantTag:   "genre",
		},
		{
			name: "Valid",
			mutate: func(v *Venue) {
				v.Genres = []string{"Jazz", "Reggae"}
			},
		},
		{
			name: "Missing name",
			mutate: func(v *Venue) {
				v.Genres = []string{"Jazz"}
				v.Name = ""
			},
			wantField: "name",
			wantTag:   "required",
		},
		{
			name: "Missing genres",
			mutate: func(v *Venue) {
				v.Genres = nil
			},
			wantField: "genres",
			wantTag:   "required",
		},
		{
			name: "Bad state",
			mutate: func(v *Venue) {
				v.Genres = []string{"Jazz"}
				v.State = "XX"
			},
			wantField: "state",
			wantTag:   "us_state",
		},
		{
			name: "Bad phone",
			mutate: func(v *Venue) {
				v.Genres = []string{"Jazz"}
				v.Phone = "12-34"
			},
			wantField: "phone",
			wantTag:   "phone",
		},
		{
			name: "Phone is optional",
			mutate: func(v *Venue) {
				v.Genres = []string{"Jazz"}
				v.Phone = ""
			},
		},
		{
			name: "Facebook link must point at facebook",
			mutate: func(v *Venue) {
				v.Genres = []string{"Jazz"}
				v.FacebookLink = "https://twitter.com/hop"
			},
			wantField: "facebook_link",
			wantTag:   "contains",
		},
		{
			name: "Website must be a URL",
			mutate: func(v *Venue) {
				v.Genres = []string{"Jazz"}
				v.WebsiteLink = "not a url"
			},
			wantField: "website_link",
			wantTag:   "url",
		},
		{
			name: "Blank name",
			mutate: func(v *Venue) {
				v.Genres = []string{"Jazz"}
				v.Name = "   "
			},
			wantField: "name",
			wantTag:   "notblank",
		},
		{
			name: "Blank address",
			mutate: func(v *Venue) {
				v.Genres = []string{"Jazz"}
				v.Address = "\t "
			},
			wantField: "address",
			wantTag:   "notblank",
		},
		{
			name: "Name longer than the column",
			mutate: func(v *Venue) {
				v.Genres = []string{"Jazz"}
				v.Name = strings.Repeat("a", 121)
			},
			wantField: "name",
			wantTag:   "max",
		},
		{
			name: "Description longer than the column",
			mutate: func(v *Venue) {
				v.Genres = []string{"Jazz"}
				v.SeekingDescription = strings.Repeat("a", 501)
			},
			wantField: "seeking_description",
			wantTag:   "max",
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			form := validVenue()
			tc.mutate(&form)

			err := Validate(form)
			if tc.wantTag == "" {
				require.NoError(t, err)
				return
			}

			var validateErr validator.ValidationErrors
			require.True(t, errors.As(err, &validateErr))
			require.Len(t, validateErr, 1)
			assert.Equal(t, tc.wantField, validateErr[0].Field())
			assert.Equal(t, tc.wantTag, validateErr[0].ActualTag())
		})
	}
}

func TestValidateArtist(t *testing.T) {
	t.Parallel()

	form := Artist{
		Name:   "Guns N Petals",
		City:   "San Francisco",
		State:  "CA",
		Phone:  "326-123-5000",
		Genres: []string{"Rock n Roll"},
	}
	require.NoError(t, Validate(form))

	form.City = ""
	assert.Error(t, Validate(form))

	form.City = "  "
	assert.Error(t, Validate(form))
}

func TestValidateShow(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(Show{ArtistID: 4, VenueID: 1, StartTime: "2019-05-21 21:30:00"}))
	require.NoError(t, Validate(Show{ArtistID: 4, VenueID: 1, StartTime: "2019-05-21T21:30:00Z"}))

	assert.Error(t, Validate(Show{VenueID: 1, StartTime: "2019-05-21 21:30:00"}))
	assert.Error(t, Validate(Show{ArtistID: 4, VenueID: 1}))
	assert.Error(t, Validate(Show{ArtistID: 4, VenueID: 1, StartTime: "next tuesday"}))
}

func TestShowModel(t *testing.T) {
	t.Parallel()

	show, err := Show{ArtistID: 4, VenueID: 1, StartTime: "2019-05-21T21:30:00-05:00"}.Model()
	require.NoError(t, err)

	assert.Equal(t, 4, show.ArtistID)
	assert.Equal(t, 1, show.VenueID)
	assert.Equal(t, time.Date(2019, 5, 22, 2, 30, 0, 0, time.UTC), show.StartTime)
	assert.Equal(t, time.UTC, show.StartTime.Location())
}

func TestVenueRoundTrip(t *testing.T) {
	t.Parallel()

	form := validVenue()
	form.SeekingTalent = true
	form.SeekingDescription = "We are on the lookout for a local artist"

	venue := form.Model(9)
	assert.Equal(t, 9, venue.ID)
	assert.Equal(t, "https://www.themusicalhop.com", venue.Website)
	assert.True(t, venue.SeekingTalent)

	assert.Equal(t, form, FromVenue(venue))
}

func TestFromArtistNilGenres(t *testing.T) {
	t.Parallel()

	form := FromArtist(&models.Artist{Name: "The Wild Sax Band", SeekingVenue: true})

	assert.Equal(t, []string{}, form.Genres)
	assert.True(t, bool(form.SeekingVenue))
}

func TestCheckbox(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"y", "on", "true", "1", "YES"} {
		var c Checkbox
		require.NoError(t, c.UnmarshalText([]byte(in)))
		assert.True(t, bool(c), in)
	}

	var c Checkbox
	require.NoError(t, c.UnmarshalText([]byte("")))
	assert.False(t, bool(c))

	require.NoError(t, c.UnmarshalJSON([]byte(`true`)))
	assert.True(t, bool(c))
	require.NoError(t, c.UnmarshalJSON([]byte(`"n"`)))
	assert.False(t, bool(c))
	assert.Error(t, c.UnmarshalJSON([]byte(`{}`)))
}

func TestDecodeJSON(t *testing.T) {
	t.Parallel()

	body := `{"name":"The Musical Hop","genres":["Jazz"],"seeking_talent":"y"}`
	req := httptest.NewRequest(http.MethodPost, "/venues/create", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	var form Venue
	require.NoError(t, Decode(req, &form))

	assert.Equal(t, "The Musical Hop", form.Name)
	assert.Equal(t, []string{"Jazz"}, form.Genres)
	assert.True(t, bool(form.SeekingTalent))
}

func TestDecodeForm(t *testing.T) {
	t.Parallel()

	values := url.Values{}
	values.Set("artist_id", "4")
	values.Set("venue_id", "1")
	values.Set("start_time", "2019-05-21 21:30:00")

	req := httptest.NewRequest(http.MethodPost, "/shows/create", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var form Show
	require.NoError(t, Decode(req, &form))

	assert.Equal(t, Show{ArtistID: 4, VenueID: 1, StartTime: "2019-05-21 21:30:00"}, form)
}

func TestDecodeFormGenres(t *testing.T) {
	t.Parallel()

	values := url.Values{}
	values.Set("name", "Park Square Live Music & Coffee")
	values.Add("genres", "Rock n Roll")
	values.Add("genres", "Jazz")
	values.Set("seeking_talent", "y")
	values.Set("submit", "Create Venue")
	values.Set("csrf_token", "IjQ1ZTk2")

	req := httptest.NewRequest(http.MethodPost, "/venues/create", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var form Venue
	require.NoError(t, Decode(req, &form))

	assert.Equal(t, "Park Square Live Music & Coffee", form.Name)
	assert.Equal(t, []string{"Rock n Roll", "Jazz"}, form.Genres)
	assert.True(t, bool(form.SeekingTalent))
}

func TestDecodeWithoutContentType(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/venues/search", strings.NewReader(`{"search_term":"hop"}`))

	var form Search
	require.NoError(t, Decode(req, &form))

	assert.Equal(t, "hop", form.SearchTerm)
}

func TestIndexLists(t *testing.T) {
	t.Parallel()

	got := indexLists(url.Values{
		"genres": {"Jazz", "Blues"},
		"name":   {"first", "second"},
	})

	assert.Equal(t, url.Values{
		"genres.0": {"Jazz"},
		"genres.1": {"Blues"},
		"name":     {"first"},
	}, got)
}
