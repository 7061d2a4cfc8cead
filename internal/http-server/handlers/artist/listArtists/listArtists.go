package listArtists

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"
	"fyyur/internal/schedule"

	"github.com/go-chi/render"
)

type ArtistsResponse struct {
	response.Response
	Artists []schedule.Summary `json:"artists"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistsGetter
type ArtistsGetter interface {
	GetAllArtists(ctx context.Context) ([]models.Artist, error)
}

func New(log *slog.Logger, artistsGetter ArtistsGetter, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.artist.listArtists.New"

		log := log.With(slog.String("op", op))

		artists, err := artistsGetter.GetAllArtists(r.Context())
		if err != nil {
			log.Error("failed to get artists", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get artists"))
			return
		}

		log.Info("artists retrieved successfully", slog.Int("count", len(artists)))

		responseOK(w, r, schedule.ArtistSummaries(artists, now()))
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, artists []schedule.Summary) {
	render.JSON(w, r, ArtistsResponse{
		Response: response.OK(),
		Artists:  artists,
	})
}
