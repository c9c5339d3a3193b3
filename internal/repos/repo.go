package repos

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Nydeyas/movie-maven/internal/catalog"
	"github.com/Nydeyas/movie-maven/internal/watchlist"
)

type Repository struct {
	db *pgxpool.Pool

	Movies     *MoviesRepo
	Users      *UsersRepo
	Watchlists *WatchlistsRepo
}

func New(db *pgxpool.Pool) *Repository {
	r := &Repository{db: db}
	r.Movies = &MoviesRepo{db: db}
	r.Users = &UsersRepo{db: db}
	r.Watchlists = &WatchlistsRepo{db: db}
	return r
}

// Forwarders for the call sites that only need one method.

func (r *Repository) SiteNames(ctx context.Context) ([]string, error) {
	return r.Movies.SiteNames(ctx)
}

func (r *Repository) ListMoviesBySite(ctx context.Context, site string) ([]*catalog.Movie, error) {
	return r.Movies.ListBySite(ctx, site)
}

func (r *Repository) InsertNewMovies(ctx context.Context, site string, movies []*catalog.Movie) (int, error) {
	return r.Movies.InsertNew(ctx, site, movies)
}

func (r *Repository) HasMovies(ctx context.Context) (bool, error) { return r.Movies.HasAny(ctx) }

func (r *Repository) EnsureUser(ctx context.Context, id int64, name, displayName string) error {
	return r.Users.Ensure(ctx, id, name, displayName)
}

func (r *Repository) ListWatchlist(ctx context.Context, userID int64) ([]watchlist.StoredEntry, error) {
	return r.Watchlists.ListEntries(ctx, userID)
}

func (r *Repository) AddWatchlistEntry(ctx context.Context, userID int64, key catalog.Key, rating *float64, added time.Time) (bool, error) {
	return r.Watchlists.AddEntry(ctx, userID, key, rating, added)
}

func (r *Repository) RemoveWatchlistEntry(ctx context.Context, userID int64, key catalog.Key) (bool, error) {
	return r.Watchlists.RemoveEntry(ctx, userID, key)
}

func (r *Repository) SetWatchlistRating(ctx context.Context, userID int64, key catalog.Key, rating float64) (bool, error) {
	return r.Watchlists.SetRating(ctx, userID, key, rating)
}
