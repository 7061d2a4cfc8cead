// Package sqlite is the single-file store used for local runs and tests.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"
)

type Storage struct {
	DB *bun.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS venues (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		name                TEXT NOT NULL,
		city                TEXT NOT NULL,
		state               TEXT NOT NULL,
		address             TEXT NOT NULL,
		phone               TEXT NOT NULL DEFAULT '',
		image_link          TEXT NOT NULL DEFAULT '',
		facebook_link       TEXT NOT NULL DEFAULT '',
		website             TEXT NOT NULL DEFAULT '',
		genres              TEXT NOT NULL DEFAULT '[]',
		seeking_talent      BOOLEAN NOT NULL DEFAULT 0,
		seeking_description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS artists (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		name                TEXT NOT NULL,
		city                TEXT NOT NULL,
		state               TEXT NOT NULL,
		phone               TEXT NOT NULL DEFAULT '',
		image_link          TEXT NOT NULL DEFAULT '',
		facebook_link       TEXT NOT NULL DEFAULT '',
		website             TEXT NOT NULL DEFAULT '',
		genres              TEXT NOT NULL DEFAULT '[]',
		seeking_venue       BOOLEAN NOT NULL DEFAULT 0,
		seeking_description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS shows (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		venue_id   INTEGER NOT NULL REFERENCES venues (id) ON DELETE CASCADE,
		artist_id  INTEGER NOT NULL REFERENCES artists (id) ON DELETE CASCADE,
		start_time TIMESTAMP NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_venue_id ON shows (venue_id)`,
	`CREATE INDEX IF NOT EXISTS idx_shows_artist_id ON shows (artist_id)`,
}

// New opens the database at path; ":memory:" gives a private in-memory
// database. The pool holds a single long-lived connection, otherwise
// every new connection would see its own empty in-memory database.
func New(path string) (*Storage, error) {
	const op = "storage.sqlite.New"

	sqldb, err := sql.Open(sqliteshim.ShimName, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sqldb.SetMaxOpenConns(1)
	sqldb.SetMaxIdleConns(1)
	sqldb.SetConnMaxLifetime(0)

	db := bun.NewDB(sqldb, sqlitedialect.New())

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) Migrate(ctx context.Context) error {
	const op = "storage.sqlite.Migrate"

	for _, stmt := range schema {
		if _, err := s.DB.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}

func (s *Storage) CreateVenue(ctx context.Context, v *models.Venue) (int, error) {
	const op = "storage.sqlite.CreateVenue"

	row := *v
	row.ID = 0
	row.Genres = nonNil(row.Genres)

	if _, err := s.DB.NewInsert().Model(&row).Exec(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return row.ID, nil
}

func (s *Storage) GetVenue(ctx context.Context, id int) (*models.Venue, error) {
	const op = "storage.sqlite.GetVenue"

	venue := new(models.Venue)
	err := s.DB.NewSelect().
		Model(venue).
		Where("v.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrVenueNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venue, nil
}

func (s *Storage) GetVenueWithShows(ctx context.Context, id int) (*models.Venue, error) {
	const op = "storage.sqlite.GetVenueWithShows"

	venue := new(models.Venue)
	err := s.DB.NewSelect().
		Model(venue).
		Where("v.id = ?", id).
		Relation("Shows", orderByStart).
		Relation("Shows.Artist").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrVenueNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venue, nil
}

func (s *Storage) GetAllVenues(ctx context.Context) ([]models.Venue, error) {
	const op = "storage.sqlite.GetAllVenues"

	venues := []models.Venue{}
	err := s.DB.NewSelect().
		Model(&venues).
		Relation("Shows", orderByStart).
		Order("v.state", "v.city", "v.name").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venues, nil
}

func (s *Storage) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	const op = "storage.sqlite.SearchVenues"

	ids, err := s.matchNames(ctx, (*models.Venue)(nil), term)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	venues := []models.Venue{}
	if len(ids) == 0 {
		return venues, nil
	}

	err = s.DB.NewSelect().
		Model(&venues).
		Where("v.id IN (?)", bun.In(ids)).
		Relation("Shows", orderByStart).
		Order("v.name").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venues, nil
}

func (s *Storage) UpdateVenue(ctx context.Context, v *models.Venue) error {
	const op = "storage.sqlite.UpdateVenue"

	row := *v
	row.Genres = nonNil(row.Genres)

	res, err := s.DB.NewUpdate().
		Model(&row).
		ExcludeColumn("id").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(op, res, storage.ErrVenueNotFound)
}

// DeleteVenue removes the venue together with all of its shows.
func (s *Storage) DeleteVenue(ctx context.Context, id int) error {
	const op = "storage.sqlite.DeleteVenue"

	return s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.Show)(nil)).
			Where("venue_id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("%s: failed to delete shows: %w", op, err)
		}

		res, err := tx.NewDelete().
			Model((*models.Venue)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return affected(op, res, storage.ErrVenueNotFound)
	})
}

func (s *Storage) CreateArtist(ctx context.Context, a *models.Artist) (int, error) {
	const op = "storage.sqlite.CreateArtist"

	row := *a
	row.ID = 0
	row.Genres = nonNil(row.Genres)

	if _, err := s.DB.NewInsert().Model(&row).Exec(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return row.ID, nil
}

func (s *Storage) GetArtist(ctx context.Context, id int) (*models.Artist, error) {
	const op = "storage.sqlite.GetArtist"

	artist := new(models.Artist)
	err := s.DB.NewSelect().
		Model(artist).
		Where("a.id = ?", id).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrArtistNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artist, nil
}

func (s *Storage) GetArtistWithShows(ctx context.Context, id int) (*models.Artist, error) {
	const op = "storage.sqlite.GetArtistWithShows"

	artist := new(models.Artist)
	err := s.DB.NewSelect().
		Model(artist).
		Where("a.id = ?", id).
		Relation("Shows", orderByStart).
		Relation("Shows.Venue").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrArtistNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artist, nil
}

func (s *Storage) GetAllArtists(ctx context.Context) ([]models.Artist, error) {
	const op = "storage.sqlite.GetAllArtists"

	artists := []models.Artist{}
	err := s.DB.NewSelect().
		Model(&artists).
		Relation("Shows", orderByStart).
		Order("a.name").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artists, nil
}

func (s *Storage) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	const op = "storage.sqlite.SearchArtists"

	ids, err := s.matchNames(ctx, (*models.Artist)(nil), term)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	artists := []models.Artist{}
	if len(ids) == 0 {
		return artists, nil
	}

	err = s.DB.NewSelect().
		Model(&artists).
		Where("a.id IN (?)", bun.In(ids)).
		Relation("Shows", orderByStart).
		Order("a.name").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artists, nil
}

func (s *Storage) UpdateArtist(ctx context.Context, a *models.Artist) error {
	const op = "storage.sqlite.UpdateArtist"

	row := *a
	row.Genres = nonNil(row.Genres)

	res, err := s.DB.NewUpdate().
		Model(&row).
		ExcludeColumn("id").
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(op, res, storage.ErrArtistNotFound)
}

// DeleteArtist removes the artist together with all of their shows.
func (s *Storage) DeleteArtist(ctx context.Context, id int) error {
	const op = "storage.sqlite.DeleteArtist"

	return s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().
			Model((*models.Show)(nil)).
			Where("artist_id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("%s: failed to delete shows: %w", op, err)
		}

		res, err := tx.NewDelete().
			Model((*models.Artist)(nil)).
			Where("id = ?", id).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return affected(op, res, storage.ErrArtistNotFound)
	})
}

func (s *Storage) CreateShow(ctx context.Context, show *models.Show) (int, error) {
	const op = "storage.sqlite.CreateShow"

	row := models.Show{
		VenueID:   show.VenueID,
		ArtistID:  show.ArtistID,
		StartTime: show.StartTime.UTC(),
	}

	err := s.DB.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		exists, err := tx.NewSelect().
			Model((*models.Venue)(nil)).
			Where("v.id = ?", row.VenueID).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if !exists {
			return storage.ErrVenueNotFound
		}

		exists, err = tx.NewSelect().
			Model((*models.Artist)(nil)).
			Where("a.id = ?", row.ArtistID).
			Exists(ctx)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		if !exists {
			return storage.ErrArtistNotFound
		}

		if _, err = tx.NewInsert().Model(&row).Exec(ctx); err != nil {
			return fmt.Errorf("%s: failed to create show: %w", op, err)
		}

		return nil
	})
	if err != nil {
		return 0, err
	}

	return row.ID, nil
}

func (s *Storage) GetAllShows(ctx context.Context) ([]models.Show, error) {
	const op = "storage.sqlite.GetAllShows"

	shows := []models.Show{}
	err := s.DB.NewSelect().
		Model(&shows).
		Relation("Venue").
		Relation("Artist").
		Order("s.start_time").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shows, nil
}

func orderByStart(q *bun.SelectQuery) *bun.SelectQuery {
	return q.Order("s.start_time")
}

// matchNames returns the ids of rows whose name contains term, ignoring
// case. SQLite's LOWER and LIKE only fold ASCII, so names are compared
// here with Unicode case mapping, and % or _ in term match literally.
func (s *Storage) matchNames(ctx context.Context, model any, term string) ([]int, error) {
	var rows []struct {
		ID   int    `bun:"id"`
		Name string `bun:"name"`
	}

	if err := s.DB.NewSelect().Model(model).Column("id", "name").Scan(ctx, &rows); err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)

	ids := make([]int, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Name), needle) {
			ids = append(ids, row.ID)
		}
	}

	return ids, nil
}

func affected(op string, res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if n == 0 {
		return notFound
	}
	return nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
