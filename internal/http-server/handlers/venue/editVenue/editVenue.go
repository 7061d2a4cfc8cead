package editVenue

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fyyur/internal/http-server/forms"
	"fyyur/internal/lib/api/request"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/go-chi/render"
)

// EditResponse carries the current values used to prefill the edit form.
type EditResponse struct {
	response.Response
	VenueID int         `json:"id"`
	Venue   forms.Venue `json:"venue"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueGetter
type VenueGetter interface {
	GetVenue(ctx context.Context, id int) (*models.Venue, error)
}

func New(log *slog.Logger, venues VenueGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.editVenue.New"

		log := log.With(slog.String("op", op))

		venueID, err := request.ID(r)
		if err != nil {
			log.Error("invalid venue id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue id"))
			return
		}

		log = log.With(slog.Int("venue_id", venueID))

		venue, err := venues.GetVenue(r.Context(), venueID)
		if errors.Is(err, storage.ErrVenueNotFound) {
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))
			return
		}
		if err != nil {
			log.Error("failed to get venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get venue"))
			return
		}

		render.JSON(w, r, EditResponse{
			Response: response.OK(),
			VenueID:  venue.ID,
			Venue:    forms.FromVenue(venue),
		})
	}
}
