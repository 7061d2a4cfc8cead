package updateVenue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"fyyur/internal/http-server/forms"
	"fyyur/internal/lib/api/request"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type VenueResponse struct {
	response.Response
	VenueID int    `json:"id"`
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueUpdater
type VenueUpdater interface {
	UpdateVenue(ctx context.Context, v *models.Venue) error
}

func New(log *slog.Logger, updater VenueUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.updateVenue.New"

		log := log.With(slog.String("op", op))

		venueID, err := request.ID(r)
		if err != nil {
			log.Error("invalid venue id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue id"))
			return
		}

		log = log.With(slog.Int("venue_id", venueID))

		var req forms.Venue

		if err = forms.Decode(r, &req); err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = forms.Validate(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		err = updater.UpdateVenue(r.Context(), req.Model(venueID))
		if errors.Is(err, storage.ErrVenueNotFound) {
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))
			return
		}
		if err != nil {
			log.Error("failed to update venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(fmt.Sprintf("an error occurred, venue %s could not be updated", req.Name)))
			return
		}

		log.Info("venue updated")

		render.JSON(w, r, VenueResponse{
			Response: response.OK(),
			VenueID:  venueID,
			Message:  fmt.Sprintf("Venue %s was successfully updated!", req.Name),
		})
	}
}
