package repos

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nydeyas/movie-maven/internal/catalog"
)

type MoviesRepo struct {
	db *pgxpool.Pool
}

// SiteNames lists the distinct source sites with stored movies.
func (r *MoviesRepo) SiteNames(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT DISTINCT site FROM movies ORDER BY site`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListBySite returns a site's movies in date-added order (insert order).
func (r *MoviesRepo) ListBySite(ctx context.Context, site string) ([]*catalog.Movie, error) {
	rows, err := r.db.Query(ctx, `
		SELECT title, description, show_type, tags, year, length_minutes,
		       rating, votes, countries, link, image_link
		FROM movies WHERE site = $1 ORDER BY id`, site)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*catalog.Movie
	for rows.Next() {
		var (
			m      catalog.Movie
			year   pgtype.Int4
			length pgtype.Int4
			rating pgtype.Float8
			votes  pgtype.Int4
		)
		if err := rows.Scan(&m.Title, &m.Description, &m.ShowType, &m.Tags,
			&year, &length, &rating, &votes, &m.Countries, &m.Link, &m.ImageLink); err != nil {
			return nil, err
		}
		m.Year = int4Ptr(year)
		m.Length = int4Ptr(length)
		m.Rating = float8Ptr(rating)
		m.Votes = int4Ptr(votes)
		out = append(out, &m)
	}
	return out, rows.Err()
}

// InsertNew inserts the movies that are not yet stored for the site, keeping
// input order. The (site, title, year) unique index suppresses duplicates.
// Returns the number actually inserted.
func (r *MoviesRepo) InsertNew(ctx context.Context, site string, movies []*catalog.Movie) (int, error) {
	count := 0
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		for _, m := range movies {
			tag, err := tx.Exec(ctx, `
				INSERT INTO movies (site, title, description, show_type, tags, year,
				                    length_minutes, rating, votes, countries, link, image_link)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
				ON CONFLICT (site, title, identity_year) DO NOTHING`,
				site, m.Title, m.Description, m.ShowType, m.Tags, int4Val(m.Year),
				int4Val(m.Length), float8Val(m.Rating), int4Val(m.Votes),
				m.Countries, m.Link, m.ImageLink)
			if err != nil {
				return err
			}
			count += int(tag.RowsAffected())
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *MoviesRepo) HasAny(ctx context.Context) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM movies)`).Scan(&exists)
	return exists, err
}

func (r *MoviesRepo) CountBySite(ctx context.Context, site string) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM movies WHERE site = $1`, site).Scan(&n)
	return n, err
}
