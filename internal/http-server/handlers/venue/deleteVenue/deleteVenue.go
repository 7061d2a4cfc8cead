package deleteVenue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"fyyur/internal/lib/api/request"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/storage"

	"github.com/go-chi/render"
)

type DeleteResponse struct {
	response.Response
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueDeleter
type VenueDeleter interface {
	DeleteVenue(ctx context.Context, id int) error
}

// New deletes the venue and, with it, every show booked there.
func New(log *slog.Logger, deleter VenueDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.deleteVenue.New"

		log := log.With(slog.String("op", op))

		venueID, err := request.ID(r)
		if err != nil {
			log.Error("invalid venue id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue id"))
			return
		}

		log = log.With(slog.Int("venue_id", venueID))

		err = deleter.DeleteVenue(r.Context(), venueID)
		if errors.Is(err, storage.ErrVenueNotFound) {
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))
			return
		}
		if err != nil {
			log.Error("failed to delete venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete venue"))
			return
		}

		log.Info("venue deleted")

		render.JSON(w, r, DeleteResponse{
			Response: response.OK(),
			Message:  fmt.Sprintf("Venue %d has been deleted successfully", venueID),
		})
	}
}
