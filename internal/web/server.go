// Package web serves the calculator page and a small JSON API.
package web

import (
	"context"
	_ "embed"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/calculation"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/output"
	"github.com/JiachengMa-26/Real-Estate-ROI-NPV-Tool/internal/store"
)

//go:embed templates/page.html.tmpl
var pageTemplateSource string

var pageTemplate = template.Must(template.New("page").Funcs(output.TemplateFuncs).Parse(pageTemplateSource))

// Server holds the HTTP server dependencies
type Server struct {
	engine  *calculation.CalculationEngine
	prefs   *store.Preferences
	logger  calculation.Logger
	limiter *RateLimiter
	addr    string
}

// NewServer creates a server listening on addr. API and report downloads are
// limited to 60 requests per minute per client.
func NewServer(engine *calculation.CalculationEngine, prefs *store.Preferences, logger calculation.Logger, addr string) *Server {
	if logger == nil {
		logger = calculation.NopLogger{}
	}
	return &Server{
		engine:  engine,
		prefs:   prefs,
		logger:  logger,
		limiter: NewRateLimiter(60, time.Minute),
		addr:    addr,
	}
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.Index)
	mux.HandleFunc("/calculate", s.Calculate)
	mux.HandleFunc("/theme", s.ToggleTheme)
	mux.Handle("/api/analysis", RateLimitMiddleware(s.limiter, http.HandlerFunc(s.APIAnalysis)))
	mux.Handle("/report/", RateLimitMiddleware(s.limiter, http.HandlerFunc(s.Report)))
	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.limiter.Stop()

	server := &http.Server{
		Addr:         s.addr,
		Handler:      s.Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Infof("calculator running on http://%s", s.addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err, ok := <-serverErr:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Infof("shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Infof("server exited")
	return nil
}
