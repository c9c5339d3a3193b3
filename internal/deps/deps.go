package deps

import (
	"time"

	"github.com/Nydeyas/movie-maven/internal/catalog"
	"github.com/Nydeyas/movie-maven/internal/repos"
	"github.com/Nydeyas/movie-maven/internal/search"
	"github.com/Nydeyas/movie-maven/pkg/cache"
	"github.com/Nydeyas/movie-maven/pkg/signer"
)

// ServerDeps holds the dependencies required by handlers and server.
type ServerDeps struct {
	Repo    *repos.Repository
	Library *catalog.Library
	Engine  *search.Engine
	Cache   cache.Cache
	Signer  signer.Codec

	// Listing limits and the search threshold, from config.
	MinScore      float64
	SearchRows    int
	WatchlistRows int

	Name      string
	StartedAt time.Time
}
