package main

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"fyyur/internal/http-server/handlers/artist/createArtist"
	"fyyur/internal/http-server/handlers/artist/deleteArtist"
	"fyyur/internal/http-server/handlers/artist/editArtist"
	"fyyur/internal/http-server/handlers/artist/getArtist"
	"fyyur/internal/http-server/handlers/artist/listArtists"
	"fyyur/internal/http-server/handlers/artist/searchArtists"
	"fyyur/internal/http-server/handlers/artist/updateArtist"
	"fyyur/internal/http-server/handlers/show/createShow"
	"fyyur/internal/http-server/handlers/show/listShows"
	"fyyur/internal/http-server/handlers/venue/createVenue"
	"fyyur/internal/http-server/handlers/venue/deleteVenue"
	"fyyur/internal/http-server/handlers/venue/editVenue"
	"fyyur/internal/http-server/handlers/venue/getVenue"
	"fyyur/internal/http-server/handlers/venue/listVenues"
	"fyyur/internal/http-server/handlers/venue/searchVenues"
	"fyyur/internal/http-server/handlers/venue/updateVenue"
	"fyyur/internal/http-server/middleware/mwlogger"
	"fyyur/internal/lib/api/response"
	"fyyur/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

// Store is implemented by both the postgres and sqlite backends.
type Store interface {
	CreateVenue(ctx context.Context, v *models.Venue) (int, error)
	GetVenue(ctx context.Context, id int) (*models.Venue, error)
	GetVenueWithShows(ctx context.Context, id int) (*models.Venue, error)
	GetAllVenues(ctx context.Context) ([]models.Venue, error)
	SearchVenues(ctx context.Context, term string) ([]models.Venue, error)
	UpdateVenue(ctx context.Context, v *models.Venue) error
	DeleteVenue(ctx context.Context, id int) error

	CreateArtist(ctx context.Context, a *models.Artist) (int, error)
	GetArtist(ctx context.Context, id int) (*models.Artist, error)
	GetArtistWithShows(ctx context.Context, id int) (*models.Artist, error)
	GetAllArtists(ctx context.Context) ([]models.Artist, error)
	SearchArtists(ctx context.Context, term string) ([]models.Artist, error)
	UpdateArtist(ctx context.Context, a *models.Artist) error
	DeleteArtist(ctx context.Context, id int) error

	CreateShow(ctx context.Context, show *models.Show) (int, error)
	GetAllShows(ctx context.Context) ([]models.Show, error)

	Close() error
}

func newRouter(log *slog.Logger, store Store, now func() time.Time) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, response.Error("not found"))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Status(r, http.StatusMethodNotAllowed)
		render.JSON(w, r, response.Error("method not allowed"))
	})

	router.Route("/venues", func(r chi.Router) {
		r.Get("/", listVenues.New(log, store, now))
		r.Post("/search", searchVenues.New(log, store, now))
		r.Post("/create", createVenue.New(log, store))
		r.Get("/{id}", getVenue.New(log, store, now))
		r.Delete("/{id}", deleteVenue.New(log, store))
		r.Get("/{id}/edit", editVenue.New(log, store))
		r.Post("/{id}/edit", updateVenue.New(log, store))
	})

	router.Route("/artists", func(r chi.Router) {
		r.Get("/", listArtists.New(log, store, now))
		r.Post("/search", searchArtists.New(log, store, now))
		r.Post("/create", createArtist.New(log, store))
		r.Get("/{id}", getArtist.New(log, store, now))
		r.Delete("/{id}", deleteArtist.New(log, store))
		r.Get("/{id}/edit", editArtist.New(log, store))
		r.Post("/{id}/edit", updateArtist.New(log, store))
	})

	router.Route("/shows", func(r chi.Router) {
		r.Get("/", listShows.New(log, store))
		r.Post("/create", createShow.New(log, store))
	})

	return router
}
