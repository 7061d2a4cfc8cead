package searchArtists

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fyyur/internal/http-server/handlers/artist/searchArtists/mocks"
	"fyyur/internal/lib/logger/handlers/slogdiscard"
	"fyyur/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2024, 12, 25, 18, 0, 0, 0, time.UTC)

func TestSearchArtistsHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	matches := []models.Artist{
		{ID: 4, Name: "Guns N Petals"},
		{ID: 5, Name: "Matt Quevedo"},
		{ID: 6, Name: "The Wild Sax Band", Shows: []models.Show{{StartTime: now.Add(time.Hour)}}},
	}

	testCases := []struct {
		name           string
		requestBody    string
		mockSetup      func(m *mocks.ArtistSearcher)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Single letter",
			requestBody: `{"search_term":"A"}`,
			mockSetup: func(m *mocks.ArtistSearcher) {
				m.On("SearchArtists", mock.Anything, "A").Return(matches, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","search_term":"A","results":{"count":3,"data":[
				{"id":4,"name":"Guns N Petals","num_upcoming_shows":0},
				{"id":5,"name":"Matt Quevedo","num_upcoming_shows":0},
				{"id":6,"name":"The Wild Sax Band","num_upcoming_shows":1}]}}`,
		},
		{
			name:        "Case insensitive term passed through",
			requestBody: `{"search_term":"band"}`,
			mockSetup: func(m *mocks.ArtistSearcher) {
				m.On("SearchArtists", mock.Anything, "band").Return(matches[2:], nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"status":"OK","search_term":"band","results":{"count":1,"data":[
				{"id":6,"name":"The Wild Sax Band","num_upcoming_shows":1}]}}`,
		},
		{
			name:        "No matches",
			requestBody: `{"search_term":"zzz"}`,
			mockSetup: func(m *mocks.ArtistSearcher) {
				m.On("SearchArtists", mock.Anything, "zzz").Return([]models.Artist{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","search_term":"zzz","results":{"count":0,"data":[]}}`,
		},
		{
			name:           "Invalid JSON",
			requestBody:    `[1,2`,
			mockSetup:      func(m *mocks.ArtistSearcher) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:        "Storage failure",
			requestBody: `{"search_term":"A"}`,
			mockSetup: func(m *mocks.ArtistSearcher) {
				m.On("SearchArtists", mock.Anything, "A").Return(nil, errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to search artists"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			searcher := mocks.NewArtistSearcher(t)
			tc.mockSetup(searcher)

			handler := New(logger, searcher, func() time.Time { return now })

			req, err := http.NewRequest(http.MethodPost, "/artists/search", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
