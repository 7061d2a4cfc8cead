package listVenues

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

type VenuesResponse struct {
	response.Response
	Areas []schedule.Area `json:"areas"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenuesGetter
type VenuesGetter interface {
	GetAllVenues(ctx context.Context) ([]models.Venue, error)
}

func New(log *slog.Logger, venuesGetter VenuesGetter, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.listVenues.New"

		log := log.With(slog.String("op", op))

		venues, err := venuesGetter.GetAllVenues(r.Context())
		if err != nil {
			log.Error("failed to get venues", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get venues"))
			return
		}

		areas := schedule.GroupByArea(venues, now())

		log.Info("venues retrieved successfully",
			slog.Int("count", len(venues)),
			slog.Int("areas", len(areas)),
		)

		responseOK(w, r, areas)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, areas []schedule.Area) {
	render.JSON(w, r, VenuesResponse{
		Response: response.OK(),
		Areas:    areas,
	})
}
