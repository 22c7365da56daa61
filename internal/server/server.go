package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/versescope/versescope/internal/utils"
	"github.com/versescope/versescope/pkg/catalog"
	"github.com/versescope/versescope/pkg/session"
)

// Server is the web front end of one shared session: it turns requests into
// controller events and paints the current state.
type Server struct {
	Ctrl     *session.Controller
	Catalog  *catalog.Catalog
	Username string
	Password string
}

func New(ctrl *session.Controller, cat *catalog.Catalog, user, pass string) *Server {
	return &Server{
		Ctrl:     ctrl,
		Catalog:  cat,
		Username: user,
		Password: pass,
	}
}

// Handler returns the routed, auth-wrapped handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	// API Group
	mux.HandleFunc("GET /api/state", s.handleState)
	mux.HandleFunc("GET /api/translations", s.handleTranslations)
	mux.HandleFunc("POST /api/selection", s.handleSelection)
	mux.HandleFunc("POST /api/reference", s.handleReference)
	mux.HandleFunc("POST /api/fetch", s.handleFetch)

	// Page
	mux.HandleFunc("GET /{$}", s.handlePage)

	return s.basicAuth(mux)
}

// Start serves until ctx is done.
func (s *Server) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	utils.Log.Infof("Starting server on %s", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.Username == "" && s.Password == "" {
			next.ServeHTTP(w, r)
			return
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != s.Username || pass != s.Password {
			w.Header().Set("WWW-Authenticate", `Basic realm="Restricted"`)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
