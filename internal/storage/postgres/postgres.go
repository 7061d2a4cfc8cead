package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"fyyur/internal/config"
	"fyyur/internal/models"
	"fyyur/internal/storage"

	"github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	const op = "storage.postgres.InitDB"

	db, err := sql.Open("postgres", ConnString(dbCfg))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{DB: db}, nil
}

func ConnString(dbCfg *config.Database) string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

type scanner interface {
	Scan(dest ...any) error
}

const venueColumns = `v.id, v.name, v.city, v.state, v.address, v.phone, v.image_link,
	v.facebook_link, v.website, v.genres, v.seeking_talent, v.seeking_description`

const artistColumns = `a.id, a.name, a.city, a.state, a.phone, a.image_link,
	a.facebook_link, a.website, a.genres, a.seeking_venue, a.seeking_description`

func scanVenue(row scanner) (models.Venue, error) {
	var v models.Venue
	err := row.Scan(
		&v.ID,
		&v.Name,
		&v.City,
		&v.State,
		&v.Address,
		&v.Phone,
		&v.ImageLink,
		&v.FacebookLink,
		&v.Website,
		pq.Array(&v.Genres),
		&v.SeekingTalent,
		&v.SeekingDescription,
	)
	return v, err
}

func scanArtist(row scanner) (models.Artist, error) {
	var a models.Artist
	err := row.Scan(
		&a.ID,
		&a.Name,
		&a.City,
		&a.State,
		&a.Phone,
		&a.ImageLink,
		&a.FacebookLink,
		&a.Website,
		pq.Array(&a.Genres),
		&a.SeekingVenue,
		&a.SeekingDescription,
	)
	return a, err
}

func (s *Storage) CreateVenue(ctx context.Context, v *models.Venue) (int, error) {
	const op = "storage.postgres.CreateVenue"

	query := `
		INSERT INTO venues (name, city, state, address, phone, image_link,
			facebook_link, website, genres, seeking_talent, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id`

	var id int
	err := s.DB.QueryRowContext(ctx, query,
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.Website, pq.Array(nonNil(v.Genres)), v.SeekingTalent, v.SeekingDescription,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetVenue(ctx context.Context, id int) (*models.Venue, error) {
	const op = "storage.postgres.GetVenue"

	query := `SELECT ` + venueColumns + ` FROM venues v WHERE v.id = $1`

	venue, err := scanVenue(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrVenueNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &venue, nil
}

func (s *Storage) GetVenueWithShows(ctx context.Context, id int) (*models.Venue, error) {
	const op = "storage.postgres.GetVenueWithShows"

	venue, err := s.GetVenue(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT s.id, s.venue_id, s.artist_id, s.start_time, a.name, a.image_link
		FROM shows s
		JOIN artists a ON a.id = s.artist_id
		WHERE s.venue_id = $1
		ORDER BY s.start_time ASC`

	rows, err := s.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	venue.Shows = []models.Show{}
	for rows.Next() {
		show := models.Show{Artist: &models.Artist{}}
		err = rows.Scan(
			&show.ID,
			&show.VenueID,
			&show.ArtistID,
			&show.StartTime,
			&show.Artist.Name,
			&show.Artist.ImageLink,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan show: %w", op, err)
		}
		show.Artist.ID = show.ArtistID
		venue.Shows = append(venue.Shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venue, nil
}

func (s *Storage) GetAllVenues(ctx context.Context) ([]models.Venue, error) {
	const op = "storage.postgres.GetAllVenues"

	query := `SELECT ` + venueColumns + ` FROM venues v ORDER BY v.state, v.city, v.name`

	venues, err := s.queryVenues(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venues, nil
}

func (s *Storage) SearchVenues(ctx context.Context, term string) ([]models.Venue, error) {
	const op = "storage.postgres.SearchVenues"

	query := `SELECT ` + venueColumns + ` FROM venues v WHERE v.name ILIKE $1 ESCAPE '\' ORDER BY v.name`

	venues, err := s.queryVenues(ctx, query, "%"+escapeLike(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return venues, nil
}

// queryVenues runs a venue select and attaches each venue's shows.
func (s *Storage) queryVenues(ctx context.Context, query string, args ...any) ([]models.Venue, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	venues := []models.Venue{}
	for rows.Next() {
		venue, err := scanVenue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan venue: %w", err)
		}
		venues = append(venues, venue)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(venues))
	for _, v := range venues {
		ids = append(ids, int64(v.ID))
	}

	shows, err := s.showsBy(ctx, "venue_id", ids)
	if err != nil {
		return nil, err
	}

	for i := range venues {
		venues[i].Shows = shows[venues[i].ID]
	}

	return venues, nil
}

func (s *Storage) UpdateVenue(ctx context.Context, v *models.Venue) error {
	const op = "storage.postgres.UpdateVenue"

	query := `
		UPDATE venues
		SET name = $2, city = $3, state = $4, address = $5, phone = $6, image_link = $7,
			facebook_link = $8, website = $9, genres = $10, seeking_talent = $11,
			seeking_description = $12
		WHERE id = $1`

	res, err := s.DB.ExecContext(ctx, query,
		v.ID, v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink,
		v.FacebookLink, v.Website, pq.Array(nonNil(v.Genres)), v.SeekingTalent, v.SeekingDescription,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(op, res, storage.ErrVenueNotFound)
}

// DeleteVenue removes the venue together with all of its shows.
func (s *Storage) DeleteVenue(ctx context.Context, id int) error {
	const op = "storage.postgres.DeleteVenue"

	return s.deleteCascade(ctx, op, "venues", "venue_id", id, storage.ErrVenueNotFound)
}

func (s *Storage) CreateArtist(ctx context.Context, a *models.Artist) (int, error) {
	const op = "storage.postgres.CreateArtist"

	query := `
		INSERT INTO artists (name, city, state, phone, image_link,
			facebook_link, website, genres, seeking_venue, seeking_description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id int
	err := s.DB.QueryRowContext(ctx, query,
		a.Name, a.City, a.State, a.Phone, a.ImageLink,
		a.FacebookLink, a.Website, pq.Array(nonNil(a.Genres)), a.SeekingVenue, a.SeekingDescription,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetArtist(ctx context.Context, id int) (*models.Artist, error) {
	const op = "storage.postgres.GetArtist"

	query := `SELECT ` + artistColumns + ` FROM artists a WHERE a.id = $1`

	artist, err := scanArtist(s.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrArtistNotFound
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &artist, nil
}

func (s *Storage) GetArtistWithShows(ctx context.Context, id int) (*models.Artist, error) {
	const op = "storage.postgres.GetArtistWithShows"

	artist, err := s.GetArtist(ctx, id)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT s.id, s.venue_id, s.artist_id, s.start_time, v.name, v.image_link
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		WHERE s.artist_id = $1
		ORDER BY s.start_time ASC`

	rows, err := s.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	artist.Shows = []models.Show{}
	for rows.Next() {
		show := models.Show{Venue: &models.Venue{}}
		err = rows.Scan(
			&show.ID,
			&show.VenueID,
			&show.ArtistID,
			&show.StartTime,
			&show.Venue.Name,
			&show.Venue.ImageLink,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan show: %w", op, err)
		}
		show.Venue.ID = show.VenueID
		artist.Shows = append(artist.Shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artist, nil
}

func (s *Storage) GetAllArtists(ctx context.Context) ([]models.Artist, error) {
	const op = "storage.postgres.GetAllArtists"

	query := `SELECT ` + artistColumns + ` FROM artists a ORDER BY a.name`

	artists, err := s.queryArtists(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artists, nil
}

func (s *Storage) SearchArtists(ctx context.Context, term string) ([]models.Artist, error) {
	const op = "storage.postgres.SearchArtists"

	query := `SELECT ` + artistColumns + ` FROM artists a WHERE a.name ILIKE $1 ESCAPE '\' ORDER BY a.name`

	artists, err := s.queryArtists(ctx, query, "%"+escapeLike(term)+"%")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return artists, nil
}

func (s *Storage) queryArtists(ctx context.Context, query string, args ...any) ([]models.Artist, error) {
	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	artists := []models.Artist{}
	for rows.Next() {
		artist, err := scanArtist(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan artist: %w", err)
		}
		artists = append(artists, artist)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	ids := make([]int64, 0, len(artists))
	for _, a := range artists {
		ids = append(ids, int64(a.ID))
	}

	shows, err := s.showsBy(ctx, "artist_id", ids)
	if err != nil {
		return nil, err
	}

	for i := range artists {
		artists[i].Shows = shows[artists[i].ID]
	}

	return artists, nil
}

func (s *Storage) UpdateArtist(ctx context.Context, a *models.Artist) error {
	const op = "storage.postgres.UpdateArtist"

	query := `
		UPDATE artists
		SET name = $2, city = $3, state = $4, phone = $5, image_link = $6,
			facebook_link = $7, website = $8, genres = $9, seeking_venue = $10,
			seeking_description = $11
		WHERE id = $1`

	res, err := s.DB.ExecContext(ctx, query,
		a.ID, a.Name, a.City, a.State, a.Phone, a.ImageLink,
		a.FacebookLink, a.Website, pq.Array(nonNil(a.Genres)), a.SeekingVenue, a.SeekingDescription,
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return affected(op, res, storage.ErrArtistNotFound)
}

// DeleteArtist removes the artist together with all of their shows.
func (s *Storage) DeleteArtist(ctx context.Context, id int) error {
	const op = "storage.postgres.DeleteArtist"

	return s.deleteCascade(ctx, op, "artists", "artist_id", id, storage.ErrArtistNotFound)
}

// CreateShow checks that both the venue and the artist exist within the
// same transaction as the insert.
func (s *Storage) CreateShow(ctx context.Context, show *models.Show) (int, error) {
	const op = "storage.postgres.CreateShow"

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	var exists bool
	err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM venues WHERE id = $1)`, show.VenueID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return 0, storage.ErrVenueNotFound
	}

	err = tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM artists WHERE id = $1)`, show.ArtistID).Scan(&exists)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}
	if !exists {
		return 0, storage.ErrArtistNotFound
	}

	var id int
	err = tx.QueryRowContext(ctx, `
		INSERT INTO shows (venue_id, artist_id, start_time)
		VALUES ($1, $2, $3)
		RETURNING id`,
		show.VenueID, show.ArtistID, show.StartTime,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("%s: failed to create show: %w", op, err)
	}

	if err = tx.Commit(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *Storage) GetAllShows(ctx context.Context) ([]models.Show, error) {
	const op = "storage.postgres.GetAllShows"

	query := `
		SELECT s.id, s.venue_id, s.artist_id, s.start_time, v.name, v.image_link, a.name, a.image_link
		FROM shows s
		JOIN venues v ON v.id = s.venue_id
		JOIN artists a ON a.id = s.artist_id
		ORDER BY s.start_time ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	shows := []models.Show{}
	for rows.Next() {
		show := models.Show{Venue: &models.Venue{}, Artist: &models.Artist{}}
		err = rows.Scan(
			&show.ID,
			&show.VenueID,
			&show.ArtistID,
			&show.StartTime,
			&show.Venue.Name,
			&show.Venue.ImageLink,
			&show.Artist.Name,
			&show.Artist.ImageLink,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: failed to scan show: %w", op, err)
		}
		show.Venue.ID = show.VenueID
		show.Artist.ID = show.ArtistID
		shows = append(shows, show)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return shows, nil
}

// showsBy loads the shows whose column (venue_id or artist_id) is in ids,
// keyed by that column.
func (s *Storage) showsBy(ctx context.Context, column string, ids []int64) (map[int][]models.Show, error) {
	out := make(map[int][]models.Show, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	query := fmt.Sprintf(`
		SELECT id, venue_id, artist_id, start_time
		FROM shows
		WHERE %s = ANY($1)
		ORDER BY start_time ASC`, pq.QuoteIdentifier(column))

	rows, err := s.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to get shows: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var show models.Show
		if err = rows.Scan(&show.ID, &show.VenueID, &show.ArtistID, &show.StartTime); err != nil {
			return nil, fmt.Errorf("failed to scan show: %w", err)
		}

		key := show.VenueID
		if column == "artist_id" {
			key = show.ArtistID
		}
		out[key] = append(out[key], show)
	}

	return out, rows.Err()
}

func (s *Storage) deleteCascade(ctx context.Context, op, table, fk string, id int, notFound error) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to begin transaction: %w", op, err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM shows WHERE %s = $1`, pq.QuoteIdentifier(fk)), id)
	if err != nil {
		return fmt.Errorf("%s: failed to delete shows: %w", op, err)
	}

	res, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, pq.QuoteIdentifier(table)), id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err = affected(op, res, notFound); err != nil {
		return err
	}

	return tx.Commit()
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

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes term match literally inside an ILIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}
