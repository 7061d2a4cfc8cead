package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"fyyur/internal/config"
	"fyyur/internal/lib/logger/handlers/slogdiscard"
	"fyyur/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	store, err := openStorage(context.Background(), &config.Config{
		StorageDriver: storage.DriverSQLite,
		AutoMigrate:   true,
		SQLite:        config.SQLite{Path: ":memory:"},
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	srv := httptest.NewServer(newRouter(slogdiscard.NewDiscardLogger(), store, func() time.Time { return now }))
	t.Cleanup(srv.Close)

	return srv
}

func doJSON(t *testing.T, method, url, body string, out any) int {
	t.Helper()

	req, err := http.NewRequest(method, url, strings.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}

	return resp.StatusCode
}

type created struct {
	Status string `json:"status"`
	ID     int    `json:"id"`
}

func TestBookingFlow(t *testing.T) {
	t.Parallel()

	srv := setupServer(t)

	form := url.Values{}
	form.Set("name", "The Musical Hop")
	form.Set("city", "San Francisco")
	form.Set("state", "CA")
	form.Set("address", "1015 Folsom Street")
	form.Add("genres", "Jazz")
	form.Add("genres", "Reggae")
	form.Set("seeking_talent", "y")

	resp, err := http.PostForm(srv.URL+"/venues/create", form)
	require.NoError(t, err)

	var venue created
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&venue))
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotZero(t, venue.ID)

	var artist created
	status := doJSON(t, http.MethodPost, srv.URL+"/artists/create",
		`{"name":"Guns N Petals","city":"San Francisco","state":"CA","genres":["Rock n Roll"]}`, &artist)
	require.Equal(t, http.StatusOK, status)
	require.NotZero(t, artist.ID)

	for _, start := range []string{"2024-12-20T20:00:00Z", "2024-12-25T18:00:00Z", "2025-01-10T21:30:00Z"} {
		var show created
		body := `{"venue_id":` + strconv.Itoa(venue.ID) + `,"artist_id":` + strconv.Itoa(artist.ID) + `,"start_time":"` + start + `"}`
		require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, srv.URL+"/shows/create", body, &show))
	}

	var detail struct {
		Venue struct {
			Name               string `json:"name"`
			PastShowsCount     int    `json:"past_shows_count"`
			UpcomingShowsCount int    `json:"upcoming_shows_count"`
			UpcomingShows      []struct {
				ArtistName string `json:"artist_name"`
				StartTime  string `json:"start_time"`
			} `json:"upcoming_shows"`
		} `json:"venue"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/venues/"+strconv.Itoa(venue.ID), "", &detail))
	assert.Equal(t, "The Musical Hop", detail.Venue.Name)
	assert.Equal(t, 2, detail.Venue.PastShowsCount)
	assert.Equal(t, 1, detail.Venue.UpcomingShowsCount)
	require.Len(t, detail.Venue.UpcomingShows, 1)
	assert.Equal(t, "Guns N Petals", detail.Venue.UpcomingShows[0].ArtistName)
	assert.Equal(t, "2025-01-10T21:30:00Z", detail.Venue.UpcomingShows[0].StartTime)

	var listing struct {
		Areas []struct {
			City   string `json:"city"`
			Venues []struct {
				NumUpcomingShows int `json:"num_upcoming_shows"`
			} `json:"venues"`
		} `json:"areas"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/venues", "", &listing))
	require.Len(t, listing.Areas, 1)
	assert.Equal(t, "San Francisco", listing.Areas[0].City)
	assert.Equal(t, 1, listing.Areas[0].Venues[0].NumUpcomingShows)

	var search struct {
		Results struct {
			Count int `json:"count"`
		} `json:"results"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, srv.URL+"/artists/search", `{"search_term":"petal"}`, &search))
	assert.Equal(t, 1, search.Results.Count)

	require.Equal(t, http.StatusOK, doJSON(t, http.MethodDelete, srv.URL+"/artists/"+strconv.Itoa(artist.ID), "", nil))

	var shows struct {
		Shows []json.RawMessage `json:"shows"`
	}
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodGet, srv.URL+"/shows", "", &shows))
	assert.Empty(t, shows.Shows)

	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, srv.URL+"/artists/"+strconv.Itoa(artist.ID), "", nil))
}

func TestCreateShowUnknownVenue(t *testing.T) {
	t.Parallel()

	srv := setupServer(t)

	var artist created
	require.Equal(t, http.StatusOK, doJSON(t, http.MethodPost, srv.URL+"/artists/create",
		`{"name":"Matt Quevedo","city":"New York","state":"NY","genres":["Jazz"]}`, &artist))

	var resp struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	status := doJSON(t, http.MethodPost, srv.URL+"/shows/create",
		`{"venue_id":99,"artist_id":`+strconv.Itoa(artist.ID)+`,"start_time":"2035-04-01 20:00"}`, &resp)

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "venue not found", resp.Error)
}

func TestUnknownRoute(t *testing.T) {
	t.Parallel()

	srv := setupServer(t)

	var resp struct {
		Status string `json:"status"`
		Error  string `json:"error"`
	}
	assert.Equal(t, http.StatusNotFound, doJSON(t, http.MethodGet, srv.URL+"/bookings", "", &resp))
	assert.Equal(t, "Error", resp.Status)
	assert.Equal(t, "not found", resp.Error)

	assert.Equal(t, http.StatusMethodNotAllowed, doJSON(t, http.MethodPut, srv.URL+"/venues/1", "", nil))
}

func TestOpenStorageUnknownDriver(t *testing.T) {
	t.Parallel()

	_, err := openStorage(context.Background(), &config.Config{StorageDriver: "mongo"})
	assert.ErrorContains(t, err, `unknown storage driver "mongo"`)
}

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	for _, env := range []string{envLocal, envDev, envProd, "staging"} {
		assert.NotNil(t, setupLogger(env), env)
	}
}
