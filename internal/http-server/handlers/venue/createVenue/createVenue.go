package createVenue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"fyyur/internal/http-server/forms"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type VenueResponse struct {
	response.Response
	VenueID int    `json:"id"`
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueCreator
type VenueCreator interface {
	CreateVenue(ctx context.Context, v *models.Venue) (int, error)
}

func New(log *slog.Logger, venue VenueCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.createVenue.New"

		log := log.With(slog.String("op", op))

		var req forms.Venue

		err := forms.Decode(r, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))

			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = forms.Validate(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))

			return
		}

		venueID, err := venue.CreateVenue(r.Context(), req.Model(0))
		if err != nil {
			log.Error("failed to add venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(fmt.Sprintf("an error occurred, venue %s could not be listed", req.Name)))

			return
		}

		log.Info("venue added", slog.Int("id", venueID))

		responseOK(w, r, venueID, req.Name)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, venueID int, name string) {
	render.JSON(w, r, VenueResponse{
		Response: response.OK(),
		VenueID:  venueID,
		Message:  fmt.Sprintf("Venue %s was successfully listed!", name),
	})
}
