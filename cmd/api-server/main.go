package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Nydeyas/movie-maven/internal/catalog"
	"github.com/Nydeyas/movie-maven/internal/collation"
	"github.com/Nydeyas/movie-maven/internal/config"
	"github.com/Nydeyas/movie-maven/internal/deps"
	"github.com/Nydeyas/movie-maven/internal/jobs"
	"github.com/Nydeyas/movie-maven/internal/migrate"
	"github.com/Nydeyas/movie-maven/internal/repos"
	"github.com/Nydeyas/movie-maven/internal/search"
	"github.com/Nydeyas/movie-maven/internal/server"
	"github.com/Nydeyas/movie-maven/pkg/cache"
	"github.com/Nydeyas/movie-maven/pkg/cdahd"
	pkgdb "github.com/Nydeyas/movie-maven/pkg/db"
	"github.com/Nydeyas/movie-maven/pkg/signer"
)

func main() {
	_ = godotenv.Load() // best-effort
	cfg := config.FromEnv()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pkgdb.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer pool.Close()

	if err := migrate.Up(cfg.DatabaseURL); err != nil {
		log.Fatal().Err(err).Msg("migrations failed")
	}

	var c cache.Cache
	if addr := cfg.ValkeyAddr; addr != "" {
		vc, err := cache.NewValkey(addr, cfg.ValkeyPassword)
		if err != nil {
			log.Error().Err(err).Msg("valkey connect failed, using in-memory cache")
			c = cache.NewInMemory()
		} else {
			c = vc
		}
	} else {
		c = cache.NewInMemory()
	}

	repository := repos.New(pool)
	engine := search.NewEngine(collation.NewKeyer())
	library := catalog.NewLibrary()

	// Populate the library from whatever the catalog already holds; the
	// scrape job refreshes it afterwards.
	if err := jobs.LoadLibrary(ctx, repository, library, jobs.SiteCdaHd); err != nil {
		log.Error().Err(err).Msg("initial library load failed")
	}

	var scraper *cdahd.Client
	if cfg.ScrapeBaseURL != "" {
		scraper = cdahd.New(cfg.ScrapeBaseURL)
	}
	jobs.StartScrapeSync(ctx, repository, library, scraper, cfg.ScrapeMaxPages, cfg.ScrapeInterval)

	api := server.New(deps.ServerDeps{
		Repo:          repository,
		Library:       library,
		Engine:        engine,
		Cache:         c,
		Signer:        signer.NewHMAC(cfg.CursorSecret),
		MinScore:      cfg.SearchMinScore,
		SearchRows:    cfg.SearchMaxRows,
		WatchlistRows: cfg.WatchlistMaxRows,
		Name:          "filmoteka-server",
		StartedAt:     time.Now(),
	}, cfg.CORSAllowedOrigins)

	addr := ":" + cfg.Port
	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
		if err := server.StartHTTP(ctx, addr, api.Router()); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	_, _ = fmt.Fprintln(os.Stderr, "shutting down...")
	time.Sleep(200 * time.Millisecond)
}
