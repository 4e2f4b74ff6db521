package venue

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/database/schema"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
	"github.com/taibuivan/fyyur/internal/platform/postgres"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// summaryQuery selects venue summaries with their upcoming show count.
// $1 is always "now"; where may reference further parameters.
func summaryQuery(where string) string {
	return fmt.Sprintf(`
		SELECT v.%s, v.%s, v.%s, v.%s,
		       COUNT(s.%s) FILTER (WHERE s.%s >= $1)
		FROM %s v
		LEFT JOIN %s s ON s.%s = v.%s
		%s
		GROUP BY v.%s
		ORDER BY v.%s ASC
	`,
		schema.CoreVenue.ID, schema.CoreVenue.Name, schema.CoreVenue.City, schema.CoreVenue.State,
		schema.CoreShow.ID, schema.CoreShow.StartTime,
		schema.CoreVenue.Table,
		schema.CoreShow.Table, schema.CoreShow.VenueID, schema.CoreVenue.ID,
		where,
		schema.CoreVenue.ID,
		schema.CoreVenue.ID,
	)
}

func (repository *PostgresRepository) querySummaries(ctx context.Context, action, query string, args ...any) ([]*Summary, error) {
	rows, err := repository.db.Query(ctx, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, action)
	}
	defer rows.Close()

	summaries := []*Summary{}
	for rows.Next() {
		s := &Summary{}
		if err := rows.Scan(&s.ID, &s.Name, &s.City, &s.State, &s.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_venue_summary")
		}
		summaries = append(summaries, s)
	}

	return summaries, dberr.Wrap(rows.Err(), action)
}

func (repository *PostgresRepository) ListVenueSummaries(ctx context.Context, now time.Time) ([]*Summary, error) {
	return repository.querySummaries(ctx, "list_venue_summaries", summaryQuery(""), now)
}

func (repository *PostgresRepository) SearchVenues(ctx context.Context, term string, now time.Time) ([]*Summary, error) {
	where := fmt.Sprintf(`WHERE v.%s ILIKE '%%' || $2 || '%%' ESCAPE '\'`, schema.CoreVenue.Name)
	return repository.querySummaries(ctx, "search_venues", summaryQuery(where), now, postgres.EscapeLike(term))
}

func (repository *PostgresRepository) GetVenue(ctx context.Context, id int) (*Venue, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.List("", schema.CoreVenue.Columns()...), schema.CoreVenue.Table, schema.CoreVenue.ID,
	)

	v := &Venue{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.Name, &v.City, &v.State, &v.Address, &v.Phone, &v.ImageLink, &v.FacebookLink,
		&v.WebsiteLink, &v.Genres, &v.SeekingTalent, &v.SeekingDescription, &v.CreatedAt, &v.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.NotFound(dberr.Wrap(err, "get_venue"), "Venue")
	}
	return v, nil
}

func (repository *PostgresRepository) ListVenueShows(ctx context.Context, venueID int) ([]*ShowRef, error) {
	query := fmt.Sprintf(`
		SELECT a.%s, a.%s, a.%s, s.%s
		FROM %s s
		JOIN %s a ON a.%s = s.%s
		WHERE s.%s = $1
		ORDER BY s.%s ASC, s.%s ASC
	`,
		schema.CoreArtist.ID, schema.CoreArtist.Name, schema.CoreArtist.ImageLink, schema.CoreShow.StartTime,
		schema.CoreShow.Table,
		schema.CoreArtist.Table, schema.CoreArtist.ID, schema.CoreShow.ArtistID,
		schema.CoreShow.VenueID,
		schema.CoreShow.StartTime, schema.CoreShow.ID,
	)

	rows, err := repository.db.Query(ctx, query, venueID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_venue_shows")
	}
	defer rows.Close()

	refs := []*ShowRef{}
	for rows.Next() {
		r := &ShowRef{}
		if err := rows.Scan(&r.ArtistID, &r.ArtistName, &r.ArtistImageLink, &r.StartTime); err != nil {
			return nil, dberr.Wrap(err, "scan_venue_show")
		}
		refs = append(refs, r)
	}

	return refs, dberr.Wrap(rows.Err(), "list_venue_shows")
}

// editableArgs returns v's editable fields in [schema.CoreVenueTable.Editable] order.
func editableArgs(v *Venue) []any {
	return []any{
		v.Name, v.City, v.State, v.Address, v.Phone, v.ImageLink, v.FacebookLink,
		v.WebsiteLink, v.Genres, v.SeekingTalent, v.SeekingDescription,
	}
}

func (repository *PostgresRepository) CreateVenue(ctx context.Context, v *Venue) error {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_create_venue")
	}
	defer transaction.Rollback(ctx)

	editable := schema.CoreVenue.Editable()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES (%s, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CoreVenue.Table, schema.List("", editable...), schema.CoreVenue.CreatedAt, schema.CoreVenue.UpdatedAt,
		schema.Placeholders(1, len(editable)),
		schema.CoreVenue.ID, schema.CoreVenue.CreatedAt, schema.CoreVenue.UpdatedAt,
	)

	if err := transaction.QueryRow(ctx, query, editableArgs(v)...).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return dberr.Wrap(err, "create_venue")
	}

	return dberr.Wrap(transaction.Commit(ctx), "commit_create_venue")
}

func (repository *PostgresRepository) UpdateVenue(ctx context.Context, v *Venue) error {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_update_venue")
	}
	defer transaction.Rollback(ctx)

	editable := schema.CoreVenue.Editable()
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CoreVenue.Table,
		schema.Assignments(2, editable...), schema.CoreVenue.UpdatedAt,
		schema.CoreVenue.ID,
		schema.CoreVenue.CreatedAt, schema.CoreVenue.UpdatedAt,
	)

	args := append([]any{v.ID}, editableArgs(v)...)
	if err := transaction.QueryRow(ctx, query, args...).Scan(&v.CreatedAt, &v.UpdatedAt); err != nil {
		return dberr.NotFound(dberr.Wrap(err, "update_venue"), "Venue")
	}

	return dberr.Wrap(transaction.Commit(ctx), "commit_update_venue")
}

func (repository *PostgresRepository) DeleteVenue(ctx context.Context, id int) error {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_venue")
	}
	defer transaction.Rollback(ctx)

	if err := deleteVenueRows(ctx, transaction, id); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(ctx), "commit_delete_venue")
}

// deleteVenueRows removes the venue's shows, then the venue itself.
func deleteVenueRows(ctx context.Context, transaction pgx.Tx, id int) error {
	showsQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreShow.Table, schema.CoreShow.VenueID)
	if _, err := transaction.Exec(ctx, showsQuery, id); err != nil {
		return dberr.Wrap(err, "delete_venue_shows")
	}

	venueQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreVenue.Table, schema.CoreVenue.ID)
	cmd, err := transaction.Exec(ctx, venueQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_venue")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Venue")
	}
	return nil
}
