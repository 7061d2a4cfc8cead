package deleteArtist

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

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistDeleter
type ArtistDeleter interface {
	DeleteArtist(ctx context.Context, id int) error
}

// New deletes the artist and every show they were booked for.
func New(log *slog.Logger, deleter ArtistDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.deleteArtist.New"

		log := log.With(slog.String("op", op))

		artistID, err := request.ID(r)
		if err != nil {
			log.Error("invalid artist id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid artist id"))
			return
		}

		log = log.With(slog.Int("artist_id", artistID))

		err = deleter.DeleteArtist(r.Context(), artistID)
		if errors.Is(err, storage.ErrArtistNotFound) {
			log.Info("artist not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("artist not found"))
			return
		}
		if err != nil {
			log.Error("failed to delete artist", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to delete artist"))
			return
		}

		log.Info("artist deleted")

		render.JSON(w, r, DeleteResponse{
			Response: response.OK(),
			Message:  fmt.Sprintf("Artist %d has been deleted successfully", artistID),
		})
	}
}
