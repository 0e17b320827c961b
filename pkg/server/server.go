// Package server serves top-languages cards over HTTP.
//
// # Endpoints
//
//   - GET  /api/top-langs: render the statistics loaded at startup
//   - POST /api/top-langs: render statistics sent as the JSON request body
//   - GET  /healthz: liveness probe
//
// Card options come from the query string (see [options.FromQuery]).
// Rendering failures are served as an SVG error card with status 200 so
// embedded README images still show a message; malformed POST bodies get a
// 400 with the error code and bodies over 1 MiB a 413.
//
// The server computes cards on every request. It only sets Cache-Control
// so that image proxies cache them.
//
// [options.FromQuery]: github.com/matzehuels/toplangs/pkg/options.FromQuery
package server

import (
	"context"
	stderrors "errors"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/toplangs/pkg/errors"
	tlio "github.com/matzehuels/toplangs/pkg/io"
	"github.com/matzehuels/toplangs/pkg/langs"
	"github.com/matzehuels/toplangs/pkg/options"
	"github.com/matzehuels/toplangs/pkg/pipeline"
	"github.com/matzehuels/toplangs/pkg/render/card"
)

const (
	// DefaultAddr is the listen address when none is configured.
	DefaultAddr = ":8080"

	maxBodyBytes    = 1 << 20
	shutdownTimeout = 10 * time.Second
	svgContentType  = "image/svg+xml; charset=utf-8"
)

// Server renders cards for HTTP clients.
type Server struct {
	stats    langs.Set
	defaults options.RenderOptions
	resolver card.ColorResolver
	logger   *log.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithDefaults sets options applied before the query string.
func WithDefaults(o options.RenderOptions) Option { return func(s *Server) { s.defaults = o } }

// WithResolver sets the color resolver.
func WithResolver(r card.ColorResolver) Option { return func(s *Server) { s.resolver = r } }

// WithLogger sets the request logger.
func WithLogger(l *log.Logger) Option { return func(s *Server) { s.logger = l } }

// New creates a Server rendering stats for GET requests. stats may be nil
// when only POST is used.
func New(stats langs.Set, opts ...Option) *Server {
	s := &Server{
		stats:    stats,
		defaults: options.Defaults(),
		logger:   log.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler returns the chi router with all endpoints and middleware.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		fmt.Fprintln(w, "ok")
	})
	r.Route("/api/top-langs", func(r chi.Router) {
		r.Get("/", s.handleGet)
		r.Post("/", s.handlePost)
	})
	return r
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully. It returns ctx.Err() after a shutdown triggered by ctx.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	if addr == "" {
		addr = DefaultAddr
	}
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info("Listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func (s *Server) queryOptions(r *http.Request) options.RenderOptions {
	q := r.URL.Query()
	o := options.FromQuery(q)
	// Query values win over server defaults, but only when present.
	base := s.defaults
	for key := range q {
		switch key {
		case "hide":
			base.Hide = o.Hide
		case "hide_title":
			base.HideTitle = o.HideTitle
		case "hide_border":
			base.HideBorder = o.HideBorder
		case "card_width":
			base.CardWidth = o.CardWidth
		case "language_count":
			base.LanguageCount = o.LanguageCount
		case "layout":
			base.Layout = o.Layout
		case "custom_title":
			base.CustomTitle = o.CustomTitle
		case "title_color":
			base.TitleColor = o.TitleColor
		case "text_color":
			base.TextColor = o.TextColor
		case "bg_color":
			base.BgColor = o.BgColor
		case "border_color":
			base.BorderColor = o.BorderColor
		case "theme":
			base.Theme = o.Theme
		case "cache_seconds":
			base.CacheSeconds = o.CacheSeconds
		}
	}
	return base
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		s.writeErrorCard(w, r, errors.New(errors.ErrCodeNotFound, "no language statistics loaded"))
		return
	}
	s.writeCard(w, r, s.stats)
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	set, err := tlio.Decode(http.MaxBytesReader(w, r.Body, maxBodyBytes), tlio.FormatJSON)
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		err = errors.Wrap(errors.ErrCodeTooLarge, err, "stats body over %d bytes", tooLarge.Limit)
	}
	if err != nil {
		loggerFrom(r.Context(), s.logger).Warn("Rejected stats body", "err", err)
		http.Error(w, errors.UserMessage(err)+" ("+string(errors.GetCode(err))+")", errors.HTTPStatus(err))
		return
	}
	s.writeCard(w, r, set)
}

func (s *Server) writeCard(w http.ResponseWriter, r *http.Request, set langs.Set) {
	opts := s.queryOptions(r)
	result := pipeline.RunContext(r.Context(), set, opts, s.resolver)

	loggerFrom(r.Context(), s.logger).Debug("Rendered card",
		"languages", len(result.Selected), "layout", result.Fragment.Mode, "bytes", len(result.SVG))

	cacheSeconds := opts.CacheSeconds
	if cacheSeconds == 0 {
		cacheSeconds = options.DefaultCacheSeconds
	}
	w.Header().Set("Content-Type", svgContentType)
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", cacheSeconds))
	w.Write(result.SVG)
}

func (s *Server) writeErrorCard(w http.ResponseWriter, r *http.Request, err error) {
	loggerFrom(r.Context(), s.logger).Warn("Serving error card", "err", err)
	w.Header().Set("Content-Type", svgContentType)
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Write(card.RenderError(errors.UserMessage(err), string(errors.GetCode(err))))
}
