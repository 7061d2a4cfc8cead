package createArtist

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

type ArtistResponse struct {
	response.Response
	ArtistID int    `json:"id"`
	Message  string `json:"message"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistCreator
type ArtistCreator interface {
	CreateArtist(ctx context.Context, v *models.Artist) (int, error)
}

func New(log *slog.Logger, artist ArtistCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.createArtist.New"

		log := log.With(slog.String("op", op))

		var req forms.Artist

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

		artistID, err := artist.CreateArtist(r.Context(), req.Model(0))
		if err != nil {
			log.Error("failed to add artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error(fmt.Sprintf("an error occurred, artist %s could not be listed", req.Name)))

			return
		}

		log.Info("artist added", slog.Int("id", artistID))

		responseOK(w, r, artistID, req.Name)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, artistID int, name string) {
	render.JSON(w, r, ArtistResponse{
		Response: response.OK(),
		ArtistID: artistID,
		Message:  fmt.Sprintf("Artist %s was successfully listed!", name),
	})
}
