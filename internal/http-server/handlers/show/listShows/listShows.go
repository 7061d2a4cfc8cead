package listShows

import (
	"context"
	"log/slog"
	"net/http"

	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"
	"fyyur/internal/schedule"

	"github.com/go-chi/render"
)

type ShowsResponse struct {
	response.Response
	Shows []schedule.ShowListing `json:"shows"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ShowsGetter
type ShowsGetter interface {
	GetAllShows(ctx context.Context) ([]models.Show, error)
}

func New(log *slog.Logger, showsGetter ShowsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.show.listShows.New"

		log := log.With(slog.String("op", op))

		shows, err := showsGetter.GetAllShows(r.Context())
		if err != nil {
			log.Error("failed to get shows", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get shows"))
			return
		}

		log.Info("shows retrieved successfully", slog.Int("count", len(shows)))

		render.JSON(w, r, ShowsResponse{
			Response: response.OK(),
			Shows:    schedule.NewShowListings(shows),
		})
	}
}
