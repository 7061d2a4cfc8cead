package deleteVenue

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"fyyur/internal/http-server/handlers/venue/deleteVenue/mocks"
	"fyyur/internal/lib/logger/handlers/slogdiscard"
	"fyyur/internal/storage"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestDeleteVenueHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		venueID        string
		mockSetup      func(m *mocks.VenueDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Success",
			venueID: "3",
			mockSetup: func(m *mocks.VenueDeleter) {
				m.On("DeleteVenue", mock.Anything, 3).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"OK","message":"Venue 3 has been deleted successfully"}`,
		},
		{
			name:    "Not found",
			venueID: "3",
			mockSetup: func(m *mocks.VenueDeleter) {
				m.On("DeleteVenue", mock.Anything, 3).Return(storage.ErrVenueNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"venue not found"}`,
		},
		{
			name:           "Invalid id",
			venueID:        "0",
			mockSetup:      func(m *mocks.VenueDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid venue id"}`,
		},
		{
			name:    "Storage failure",
			venueID: "3",
			mockSetup: func(m *mocks.VenueDeleter) {
				m.On("DeleteVenue", mock.Anything, 3).Return(errors.New("database error"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete venue"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			deleter := mocks.NewVenueDeleter(t)
			tc.mockSetup(deleter)

			router := chi.NewRouter()
			router.Delete("/venues/{id}", New(logger, deleter))

			req := httptest.NewRequest(http.MethodDelete, "/venues/"+tc.venueID, nil)
			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}

func TestHandlerWithoutChiContext(t *testing.T) {
	t.Parallel()

	deleter := mocks.NewVenueDeleter(t)
	handler := New(slogdiscard.NewDiscardLogger(), deleter)

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/", nil))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "invalid venue id")
}
