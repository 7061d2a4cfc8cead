package createShow

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"fyyur/internal/http-server/forms"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type ShowResponse struct {
	response.Response
	ShowID  int    `json:"id"`
	Message string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ShowCreator
type ShowCreator interface {
	CreateShow(ctx context.Context, show *models.Show) (int, error)
}

func New(log *slog.Logger, creator ShowCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.show.createShow.New"

		log := log.With(slog.String("op", op))

		var req forms.Show

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

		show, err := req.Model()
		if err != nil {
			log.Error("invalid start time", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid start time"))

			return
		}

		showID, err := creator.CreateShow(r.Context(), show)
		switch {
		case errors.Is(err, storage.ErrVenueNotFound):
			log.Info("venue not found", slog.Int("venue_id", show.VenueID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))

			return
		case errors.Is(err, storage.ErrArtistNotFound):
			log.Info("artist not found", slog.Int("artist_id", show.ArtistID))
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))

			return
		case err != nil:
			log.Error("failed to add show", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("an error occurred, show could not be listed"))

			return
		}

		log.Info("show added", slog.Int("id", showID))

		responseOK(w, r, showID)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, showID int) {
	render.JSON(w, r, ShowResponse{
		Response: response.OK(),
		ShowID:   showID,
		Message:  "Show was successfully listed!",
	})
}
