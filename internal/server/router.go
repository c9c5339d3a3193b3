package server

import (
	"net/http"

	"github.com/Nydeyas/movie-maven/internal/deps"
	"github.com/Nydeyas/movie-maven/internal/routes"
)

type Server struct {
	deps.ServerDeps

	allowedOrigins []string
}

func New(d deps.ServerDeps, allowedOrigins []string) *Server {
	return &Server{ServerDeps: d, allowedOrigins: allowedOrigins}
}

func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()
	sd := s.ServerDeps

	// Endpoints declared here for easy scanning
	mux.HandleFunc("GET /health", routes.Health(sd))
	mux.HandleFunc("GET /movies/recent", routes.MoviesRecent(sd))
	mux.HandleFunc("GET /movies/search", routes.MoviesSearch(sd))
	mux.HandleFunc("GET /users/{id}/watchlist", routes.WatchlistGet(sd))
	mux.HandleFunc("POST /users/{id}/watchlist", routes.WatchlistAdd(sd))
	mux.HandleFunc("POST /users/{id}/watchlist/rating", routes.WatchlistRating(sd))
	mux.HandleFunc("DELETE /users/{id}/watchlist", routes.WatchlistRemove(sd))

	return withCorrelationID(withLogging(withCORS(s.allowedOrigins)(withSecurityHeaders(mux))))
}
