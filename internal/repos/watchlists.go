package repos

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nydeyas/movie-maven/internal/catalog"
	"github.com/Nydeyas/movie-maven/internal/watchlist"
)

type WatchlistsRepo struct {
	db *pgxpool.Pool
}

// ListEntries returns the user's entries in date-added order.
func (r *WatchlistsRepo) ListEntries(ctx context.Context, userID int64) ([]watchlist.StoredEntry, error) {
	rows, err := r.db.Query(ctx, `
		SELECT title, year, rating, date_added
		FROM watchlist_entries WHERE user_id = $1 ORDER BY date_added, id`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []watchlist.StoredEntry
	for rows.Next() {
		var (
			e      watchlist.StoredEntry
			year   pgtype.Int4
			rating pgtype.Float8
		)
		if err := rows.Scan(&e.Title, &year, &rating, &e.DateAdded); err != nil {
			return nil, err
		}
		e.Year = int4Ptr(year)
		e.Rating = float8Ptr(rating)
		out = append(out, e)
	}
	return out, rows.Err()
}

// AddEntry inserts an entry unless the movie is already listed. Returns
// whether a row was inserted; the at-most-one-entry-per-movie invariant is
// the unique index.
func (r *WatchlistsRepo) AddEntry(ctx context.Context, userID int64, key catalog.Key, rating *float64, added time.Time) (bool, error) {
	if added.IsZero() {
		added = time.Now().UTC()
	}
	year := keyYearVal(key)
	tag, err := r.db.Exec(ctx, `
		INSERT INTO watchlist_entries (user_id, title, year, rating, date_added)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, title, identity_year) DO NOTHING`,
		userID, key.Title, year, float8Val(rating), added)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// RemoveEntry deletes the entry for the movie. Returns whether a row existed.
func (r *WatchlistsRepo) RemoveEntry(ctx context.Context, userID int64, key catalog.Key) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		DELETE FROM watchlist_entries
		WHERE user_id = $1 AND title = $2 AND identity_year = $3`,
		userID, key.Title, key.Year)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// SetRating updates the personal rating. Returns whether the entry existed.
func (r *WatchlistsRepo) SetRating(ctx context.Context, userID int64, key catalog.Key, rating float64) (bool, error) {
	tag, err := r.db.Exec(ctx, `
		UPDATE watchlist_entries SET rating = $4
		WHERE user_id = $1 AND title = $2 AND identity_year = $3`,
		userID, key.Title, key.Year, rating)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// keyYearVal converts the identity year back to a nullable column value.
func keyYearVal(key catalog.Key) pgtype.Int4 {
	if key.Year < 0 {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: int32(key.Year), Valid: true}
}
