package editArtist

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
	ArtistID int          `json:"id"`
	Artist   forms.Artist `json:"artist"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistGetter
type ArtistGetter interface {
	GetArtist(ctx context.Context, id int) (*models.Artist, error)
}

func New(log *slog.Logger, artists ArtistGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.editArtist.New"

		log := log.With(slog.String("op", op))

		artistID, err := request.ID(r)
		if err != nil {
			log.Error("invalid artist id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid artist id"))
			return
		}

		log = log.With(slog.Int("artist_id", artistID))

		artist, err := artists.GetArtist(r.Context(), artistID)
		if errors.Is(err, storage.ErrArtistNotFound) {
			log.Info("artist not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))
			return
		}
		if err != nil {
			log.Error("failed to get artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get artist"))
			return
		}

		render.JSON(w, r, EditResponse{
			Response: response.OK(),
			ArtistID: artist.ID,
			Artist:   forms.FromArtist(artist),
		})
	}
}
