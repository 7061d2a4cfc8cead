package updateArtist

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

type ArtistResponse struct {
	response.Response
	ArtistID int    `json:"id"`
	Message  string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistUpdater
type ArtistUpdater interface {
	UpdateArtist(ctx context.Context, v *models.Artist) error
}

func New(log *slog.Logger, updater ArtistUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.updateArtist.New"

		log := log.With(slog.String("op", op))

		artistID, err := request.ID(r)
		if err != nil {
			log.Error("invalid artist id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid artist id"))
			return
		}

		log = log.With(slog.Int("artist_id", artistID))

		var req forms.Artist

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

		err = updater.UpdateArtist(r.Context(), req.Model(artistID))
		if errors.Is(err, storage.ErrArtistNotFound) {
			log.Info("artist not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))
			return
		}
		if err != nil {
			log.Error("failed to update artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(fmt.Sprintf("an error occurred, artist %s could not be updated", req.Name)))
			return
		}

		log.Info("artist updated")

		render.JSON(w, r, ArtistResponse{
			Response: response.OK(),
			ArtistID: artistID,
			Message:  fmt.Sprintf("Artist %s was successfully updated!", req.Name),
		})
	}
}
