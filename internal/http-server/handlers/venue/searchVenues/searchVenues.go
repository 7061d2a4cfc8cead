package searchVenues

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"fyyur/internal/http-server/forms"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/lib/logger/sl"
	"fyyur/internal/models"
	"fyyur/internal/schedule"

	"github.com/go-chi/render"
)

type SearchResponse struct {
	response.Response
	Results    schedule.SearchResult `json:"results"`
	SearchTerm string                `json:"search_term"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=VenueSearcher
type VenueSearcher interface {
	SearchVenues(ctx context.Context, term string) ([]models.Venue, error)
}

func New(log *slog.Logger, searcher VenueSearcher, now func() time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.venue.searchVenues.New"

		log := log.With(slog.String("op", op))

		var req forms.Search

		// an empty body searches for everything
		if err := forms.Decode(r, &req); err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		term := strings.TrimSpace(req.SearchTerm)

		log = log.With(slog.String("search_term", term))

		venues, err := searcher.SearchVenues(r.Context(), term)
		if err != nil {
			log.Error("failed to search venues", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to search venues"))
			return
		}

		result := schedule.NewSearchResult(schedule.VenueSummaries(venues, now()))

		log.Info("venues found", slog.Int("count", result.Count))

		render.JSON(w, r, SearchResponse{
			Response:   response.OK(),
			Results:    result,
			SearchTerm: term,
		})
	}
}
