package show

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/fyyur/internal/platform/apperr"
	"github.com/taibuivan/fyyur/internal/platform/database/schema"
	"github.com/taibuivan/fyyur/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// listingQuery joins a show with its venue and artist names.
var listingQuery = fmt.Sprintf(`
	SELECT s.%s, v.%s, v.%s, a.%s, a.%s, a.%s, s.%s
	FROM %s s
	JOIN %s v ON v.%s = s.%s
	JOIN %s a ON a.%s = s.%s
`,
	schema.CoreShow.ID, schema.CoreVenue.ID, schema.CoreVenue.Name,
	schema.CoreArtist.ID, schema.CoreArtist.Name, schema.CoreArtist.ImageLink, schema.CoreShow.StartTime,
	schema.CoreShow.Table,
	schema.CoreVenue.Table, schema.CoreVenue.ID, schema.CoreShow.VenueID,
	schema.CoreArtist.Table, schema.CoreArtist.ID, schema.CoreShow.ArtistID,
)

func scanListing(row pgx.Row) (*Listing, error) {
	l := &Listing{}
	err := row.Scan(&l.ID, &l.VenueID, &l.VenueName, &l.ArtistID, &l.ArtistName, &l.ArtistImageLink, &l.StartTime)
	return l, err
}

func (repository *PostgresRepository) ListShows(ctx context.Context) ([]*Listing, error) {
	query := listingQuery + fmt.Sprintf(" ORDER BY s.%s ASC, s.%s ASC", schema.CoreShow.StartTime, schema.CoreShow.ID)

	rows, err := repository.db.Query(ctx, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_shows")
	}
	defer rows.Close()

	listings := []*Listing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, dberr.Wrap(err, "scan_show")
		}
		listings = append(listings, l)
	}

	return listings, dberr.Wrap(rows.Err(), "list_shows")
}

func (repository *PostgresRepository) GetShow(ctx context.Context, id int) (*Listing, error) {
	query := listingQuery + fmt.Sprintf(" WHERE s.%s = $1", schema.CoreShow.ID)

	l, err := scanListing(repository.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, dberr.NotFound(dberr.Wrap(err, "get_show"), "Show")
	}
	return l, nil
}

func (repository *PostgresRepository) CreateShow(ctx context.Context, s *Show) error {
	transaction, err := repository.db.Begin(ctx)
	if err != nil {
		return dberr.Wrap(err, "begin_create_show")
	}
	defer transaction.Rollback(ctx)

	// 1. Referenced rows must exist in this transaction's snapshot
	if err := requireRow(ctx, transaction, schema.CoreArtist.Table, schema.CoreArtist.ID, s.ArtistID, "Artist"); err != nil {
		return err
	}
	if err := requireRow(ctx, transaction, schema.CoreVenue.Table, schema.CoreVenue.ID, s.VenueID, "Venue"); err != nil {
		return err
	}

	// 2. Insert
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW())
		RETURNING %s, %s
	`,
		schema.CoreShow.Table, schema.CoreShow.ArtistID, schema.CoreShow.VenueID, schema.CoreShow.StartTime, schema.CoreShow.CreatedAt,
		schema.CoreShow.ID, schema.CoreShow.CreatedAt,
	)

	if err := transaction.QueryRow(ctx, query, s.ArtistID, s.VenueID, s.StartTime).Scan(&s.ID, &s.CreatedAt); err != nil {
		return dberr.Wrap(err, "create_show")
	}

	return dberr.Wrap(transaction.Commit(ctx), "commit_create_show")
}

// requireRow fails with a CONSTRAINT_VIOLATION when no row with the given id
// exists. The row is locked so a concurrent delete waits for this transaction.
func requireRow(ctx context.Context, transaction pgx.Tx, table, idColumn string, id int, resource string) error {
	query := fmt.Sprintf(`SELECT 1 FROM %s WHERE %s = $1 FOR KEY SHARE`, table, idColumn)

	var one int
	err := transaction.QueryRow(ctx, query, id).Scan(&one)
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.Constraint(resource + " does not exist")
	}
	return dberr.Wrap(err, "check_"+strings.ToLower(resource))
}
