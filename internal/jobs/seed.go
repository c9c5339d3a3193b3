package jobs

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Nydeyas/movie-maven/internal/catalog"
	"github.com/Nydeyas/movie-maven/internal/repos"
)

// LoadLibrary rebuilds the library snapshot from the stored catalog and
// installs it atomically. Readers keep whatever snapshot they captured; the
// swap is the only visible transition.
func LoadLibrary(ctx context.Context, r *repos.Repository, lib *catalog.Library, defaultSite string) error {
	names, err := r.SiteNames(ctx)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		names = []string{defaultSite}
	}
	sites := make([]*catalog.Site, 0, len(names))
	total := 0
	for _, name := range names {
		movies, err := r.ListMoviesBySite(ctx, name)
		if err != nil {
			return err
		}
		sites = append(sites, catalog.NewSite(name, movies))
		total += len(movies)
	}
	lib.Replace(sites)
	log.Info().Int("sites", len(sites)).Int("movies", total).Msg("library snapshot installed")
	return nil
}
