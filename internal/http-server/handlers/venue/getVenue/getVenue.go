package getVenue

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

type VenueResponse struct {
	response.Response
	Venue schedule.VenueDetail `json:"venue"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueGetter
type VenueGetter interface {
	GetVenueWithShows(ctx context.Context, id int) (*models.Venue, error)
}

func New(log *slog.Logger, venues VenueGetter, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.getVenue.New"

		log := log.With(slog.String("op", op))

		venueID, err := request.ID(r)
		if err != nil {
			log.Error("invalid venue id", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid venue id"))
			return
		}

		log = log.With(slog.Int("venue_id", venueID))

		venue, err := venues.GetVenueWithShows(r.Context(), venueID)
		if errors.Is(err, storage.ErrVenueNotFound) {
			log.Info("venue not found")
			render.Status(r, http.StatusNotFound)
			render.JSON(w, r, response.Error("venue not found"))
			return
		}
		if err != nil {
			log.Error("failed to get venue", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get venue"))
			return
		}

		detail := schedule.NewVenueDetail(venue, now())

		log.Info("venue retrieved",
			slog.Int("past_shows", detail.PastShowsCount),
			slog.Int("upcoming_shows", detail.UpcomingShowsCount),
		)

		responseOK(w, r, detail)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, detail schedule.VenueDetail) {
	render.JSON(w, r, VenueResponse{
		Response: response.OK(),
		Venue:    detail,
	})
}
