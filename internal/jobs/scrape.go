package jobs

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Nydeyas/movie-maven/internal/catalog"
	"github.com/Nydeyas/movie-maven/internal/repos"
	"github.com/Nydeyas/movie-maven/pkg/cdahd"
)

// SiteCdaHd is the only scraped source right now.
const SiteCdaHd = "cda-hd"

// StartScrapeSync runs one scrape immediately and then on the given
// interval. Each cycle appends the newly found movies (duplicates
// suppressed by identity) and swaps in a fresh library snapshot.
func StartScrapeSync(ctx context.Context, r *repos.Repository, lib *catalog.Library, c *cdahd.Client, maxPages int, interval time.Duration) {
	if c == nil {
		log.Warn().Msg("scrape client not configured; skipping catalog sync")
		return
	}
	go func() {
		runScrape(ctx, r, lib, c, maxPages)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				runScrape(ctx, r, lib, c, maxPages)
			}
		}
	}()
}

func runScrape(ctx context.Context, r *repos.Repository, lib *catalog.Library, c *cdahd.Client, maxPages int) {
	start := time.Now()
	log.Info().Str("site", SiteCdaHd).Msg("collecting catalog data")

	payloads, err := c.FetchMovies(ctx, maxPages)
	if err != nil {
		log.Error().Err(err).Str("site", SiteCdaHd).Msg("scrape failed")
		return
	}

	movies := make([]*catalog.Movie, 0, len(payloads))
	for _, p := range payloads {
		movies = append(movies, toCatalog(p))
	}
	n, err := r.InsertNewMovies(ctx, SiteCdaHd, movies)
	if err != nil {
		log.Error().Err(err).Msg("persist scraped movies failed")
		return
	}

	if err := LoadLibrary(ctx, r, lib, SiteCdaHd); err != nil {
		log.Error().Err(err).Msg("library reload failed")
		return
	}
	log.Info().
		Int("scraped", len(movies)).
		Int("new", n).
		Dur("duration", time.Since(start)).
		Msg("catalog sync completed")
}

func toCatalog(p *cdahd.Movie) *catalog.Movie {
	return &catalog.Movie{
		Title:       p.Title,
		Description: p.Description,
		ShowType:    p.ShowType,
		Tags:        p.Tags,
		Year:        p.Year,
		Length:      p.Length,
		Rating:      p.Rating,
		Votes:       p.Votes,
		Countries:   p.Countries,
		Link:        p.Link,
		ImageLink:   p.ImageLink,
	}
}
