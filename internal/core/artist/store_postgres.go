package artist

import (
	"context"
	"fmt"
	"time"

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

// summaryQuery selects artist summaries with their upcoming show count.
// $1 is always "now"; the tail may add WHERE/LIMIT clauses on further parameters.
func summaryQuery(where, tail string) string {
	return fmt.Sprintf(`
		SELECT a.%s, a.%s,
		       COUNT(s.%s) FILTER (WHERE s.%s >= $1)
		FROM %s a
		LEFT JOIN %s s ON s.%s = a.%s
		%s
		GROUP BY a.%s
		ORDER BY a.%s ASC
		%s
	`,
		schema.CoreArtist.ID, schema.CoreArtist.Name,
		schema.CoreShow.ID, schema.CoreShow.StartTime,
		schema.CoreArtist.Table,
		schema.CoreShow.Table, schema.CoreShow.ArtistID, schema.CoreArtist.ID,
		where,
		schema.CoreArtist.ID,
		schema.CoreArtist.ID,
		tail,
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
		if err := rows.Scan(&s.ID, &s.Name, &s.NumUpcomingShows); err != nil {
			return nil, dberr.Wrap(err, "scan_artist_summary")
		}
		summaries = append(summaries, s)
	}

	return summaries, dberr.Wrap(rows.Err(), action)
}

func (repository *PostgresRepository) ListArtists(ctx context.Context, limit, offset int, now time.Time) ([]*Summary, int, error) {
	countQuery := fmt.Sprintf(`SELECT count(*) FROM %s`, schema.CoreArtist.Table)

	var total int
	if err := repository.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, dberr.Wrap(err, "count_artists")
	}

	summaries, err := repository.querySummaries(ctx, "list_artists", summaryQuery("", "LIMIT $2 OFFSET $3"), now, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return summaries, total, nil
}

func (repository *PostgresRepository) SearchArtists(ctx context.Context, term string, now time.Time) ([]*Summary, error) {
	where := fmt.Sprintf(`WHERE a.%s ILIKE '%%' || $2 || '%%' ESCAPE '\'`, schema.CoreArtist.Name)
	return repository.querySummaries(ctx, "search_artists", summaryQuery(where, ""), now, postgres.EscapeLike(term))
}

func (repository *PostgresRepository) GetArtist(ctx context.Context, id int) (*Artist, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		schema.List("", schema.CoreArtist.Columns()...), schema.CoreArtist.Table, schema.CoreArtist.ID,
	)

	a := &Artist{}
	err := repository.db.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.City, &a.State, &a.Phone, &a.Genres, &a.ImageLink, &a.FacebookLink,
		&a.WebsiteLink, &a.SeekingVenue, &a.SeekingDescription, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.NotFound(dberr.Wrap(err, "get_artist"), "Artist")
	}
	return a, nil
}

func (repository *PostgresRepository) ListArtistShows(ctx context.Context, artistID int) ([]*ShowRef, error) {
	query := fmt.Sprintf(`
		SELECT v.%s, v.%s, v.%s, s.%s
		FROM %s s
		JOIN %s v ON v.%s = s.%s
		WHERE s.%s = $1
		ORDER BY s.%s ASC, s.%s ASC
	`,
		schema.CoreVenue.ID, schema.CoreVenue.Name, schema.CoreVenue.ImageLink, schema.CoreShow.StartTime,
		schema.CoreShow.Table,
		schema.CoreVenue.Table, schema.CoreVenue.ID, schema.CoreShow.VenueID,
		schema.CoreShow.ArtistID,
		schema.CoreShow.StartTime, schema.CoreShow.ID,
	)

	rows, err := repository.db.Query(ctx, query, artistID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_artist_shows")
	}
	defer rows.Close()

	refs := []*ShowRef{}
	for rows.Next() {
		r := &ShowRef{}
		if err := rows.Scan(&r.VenueID, &r.VenueName, &r.VenueImageLink, &r.StartTime); err != nil {
			return nil, dberr.Wrap(err, "scan_artist_show")
		}
		refs = append(refs, r)
	}

	return refs, dberr.Wrap(rows.Err(), "list_artist_shows")
}

// editableArgs returns a's editable fields in [schema.CoreArtistTable.Editable] order.
func editableArgs(a *Artist) []any {
	return []any{
		a.Name, a.City, a.State, a.Phone, a.Genres, a.ImageLink, a.FacebookLink,
		a.WebsiteLink, a.SeekingVenue, a.SeekingDescription,
	}
}

func (repository *PostgresRepository) CreateArtist(ctx context.Context, a *Artist) error {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_create_artist")
	}
	defer transaction.Rollback(ctx)

	editable := schema.CoreArtist.Editable()
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES (%s, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CoreArtist.Table, schema.List("", editable...), schema.CoreArtist.CreatedAt, schema.CoreArtist.UpdatedAt,
		schema.Placeholders(1, len(editable)),
		schema.CoreArtist.ID, schema.CoreArtist.CreatedAt, schema.CoreArtist.UpdatedAt,
	)

	if err := transaction.QueryRow(ctx, query, editableArgs(a)...).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return dberr.Wrap(err, "create_artist")
	}

	return dberr.Wrap(transaction.Commit(ctx), "commit_create_artist")
}

func (repository *PostgresRepository) UpdateArtist(ctx context.Context, a *Artist) error {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_update_artist")
	}
	defer transaction.Rollback(ctx)

	editable := schema.CoreArtist.Editable()
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CoreArtist.Table,
		schema.Assignments(2, editable...), schema.CoreArtist.UpdatedAt,
		schema.CoreArtist.ID,
		schema.CoreArtist.CreatedAt, schema.CoreArtist.UpdatedAt,
	)

	args := append([]any{a.ID}, editableArgs(a)...)
	if err := transaction.QueryRow(ctx, query, args...).Scan(&a.CreatedAt, &a.UpdatedAt); err != nil {
		return dberr.NotFound(dberr.Wrap(err, "update_artist"), "Artist")
	}

	return dberr.Wrap(transaction.Commit(ctx), "commit_update_artist")
}

func (repository *PostgresRepository) DeleteArtist(ctx context.Context, id int) error {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_delete_artist")
	}
	defer transaction.Rollback(ctx)

	// 1. Shows first so the artist row has no dependents
	showsQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreShow.Table, schema.CoreShow.ArtistID)
	if _, err := transaction.Exec(ctx, showsQuery, id); err != nil {
		return dberr.Wrap(err, "delete_artist_shows")
	}

	// 2. The artist itself
	artistQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreArtist.Table, schema.CoreArtist.ID)
	cmd, err := transaction.Exec(ctx, artistQuery, id)
	if err != nil {
		return dberr.Wrap(err, "delete_artist")
	}

	if cmd.RowsAffected() == 0 {
		return apperr.NotFound("Artist")
	}

	return dberr.Wrap(transaction.Commit(ctx), "commit_delete_artist")
}
