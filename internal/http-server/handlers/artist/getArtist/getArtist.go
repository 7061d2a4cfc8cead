package getArtist

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fyyur/internal/lib/api/request"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"
	"fyyur/internal/schedule"
	"fyyur/internal/storage"

	"github.com/go-chi/render"
)

type ArtistResponse struct {
	response.Response
	Artist schedule.ArtistDetail `json:"artist"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistGetter
type ArtistGetter interface {
	GetArtistWithShows(ctx context.Context, id int) (*models.Artist, error)
}

func New(log *slog.Logger, artists ArtistGetter, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.getArtist.New"

		log := log.With(slog.String("op", op))

		artistID, err := request.ID(r)
		if err != nil {
			log.Error("invalid artist id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid artist id"))
			return
		}

		log = log.With(slog.Int("artist_id", artistID))

		artist, err := artists.GetArtistWithShows(r.Context(), artistID)
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

		detail := schedule.NewArtistDetail(artist, now())

		log.Info("artist retrieved",
			slog.Int("past_shows", detail.PastShowsCount),
			slog.Int("upcoming_shows", detail.UpcomingShowsCount),
		)

		responseOK(w, r, detail)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, detail schedule.ArtistDetail) {
	render.JSON(w, r, ArtistResponse{
		Response: response.OK(),
		Artist:   detail,
	})
}
