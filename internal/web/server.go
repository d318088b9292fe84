package web

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/auroraair/formkit/handler"
	"github.com/auroraair/formkit/pkg/environment"
	"github.com/auroraair/formkit/pkg/httpserver"
	"github.com/auroraair/formkit/pkg/i18n"
	"github.com/auroraair/formkit/pkg/logger"
	"github.com/auroraair/formkit/pkg/ratelimiter"
	"github.com/auroraair/formkit/pkg/requestid"
)

// Server is the portal's HTTP surface.
type Server struct {
	cfg       Config
	log       *slog.Logger
	tr        *i18n.Translator
	pages     *Pages
	submitter Submitter
	metrics   *Metrics
	errors    handler.ErrorHandler
	limits    *ratelimiter.MemoryStore
	live      func(http.Handler) http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSubmitter sets the receiver of valid submissions. Defaults to LogSubmitter.
func WithSubmitter(sub Submitter) Option {
	return func(s *Server) {
		if sub != nil {
			s.submitter = sub
		}
	}
}

// WithRegistry registers metrics with reg instead of a private registry.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(s *Server) {
		if reg != nil {
			s.metrics = NewMetrics(reg)
		}
	}
}

// New loads the embedded pages and message catalogs.
func New(cfg Config, opts ...Option) (*Server, error) {
	s := &Server{cfg: cfg, log: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.submitter == nil {
		s.submitter = LogSubmitter{Log: s.log}
	}
	if s.metrics == nil {
		s.metrics = NewMetrics(prometheus.NewRegistry())
	}
	if s.cfg.NotifyDisplay <= 0 {
		s.cfg.NotifyDisplay = 5 * time.Second
	}
	if s.cfg.NotifyExit <= 0 {
		s.cfg.NotifyExit = 300 * time.Millisecond
	}

	var err error
	if s.tr, err = NewTranslator(cfg.DefaultLang); err != nil {
		return nil, err
	}
	if s.pages, err = LoadPages(templateFS, "templates"); err != nil {
		return nil, err
	}

	s.errors = handler.NewErrorHandler(s.log, handler.ErrorHandlerConfig{
		ErrorPage: s.errorPage,
		Translate: func(lang, key string) string {
			return s.tr.T(lang, "error."+key, key)
		},
	})

	s.live = func(next http.Handler) http.Handler { return next }
	if cfg.Live.Enabled() {
		s.limits = ratelimiter.NewMemoryStore()
		bucket, err := ratelimiter.NewBucket(s.limits, cfg.Live)
		if err != nil {
			s.limits.Close()
			return nil, err
		}
		s.live = ratelimiter.Middleware(bucket, ratelimiter.RemoteIP, s.fail(handler.ErrTooManyRequests))
	}
	return s, nil
}

// Routes returns the portal router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer,
		requestid.Middleware,
		environment.Middleware(environment.Parse(s.cfg.Env)),
		i18n.Middleware(s.tr),
		s.logRequests,
	)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/login", http.StatusFound)
	})
	r.Get("/healthz", httpserver.HealthHandler(s.log))
	if s.cfg.MetricsEnabled {
		r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	}

	for _, spec := range formSpecs {
		r.Get("/"+spec.name, s.page(spec.page))
		r.Post("/"+spec.name, s.submit(spec))
	}
	r.With(s.live).Post("/forms/{form}/validate/{field}", s.validateField())

	r.Get("/upload", s.page(PageUpload))
	r.Post("/upload", s.upload())
	r.With(s.live).Get("/notify", s.notify())

	r.NotFound(s.fail(handler.ErrNotFound))
	r.MethodNotAllowed(s.fail(handler.ErrMethodNotAllowed))
	return r
}

// Close releases the rate limiter.
func (s *Server) Close() {
	if s.limits != nil {
		s.limits.Close()
	}
}

func (s *Server) fail(err error) http.HandlerFunc {
	return handler.Wrap(
		func(handler.Context, struct{}) handler.Response { return handler.Fail(err) },
		handler.WithErrorHandler[struct{}](s.errors),
	)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.Requests.WithLabelValues(r.Method, fmt.Sprint(status)).Inc()
		s.log.DebugContext(r.Context(), "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Status(status),
			logger.Duration(time.Since(start)),
		)
	})
}

func (s *Server) errorPage(p handler.ErrorPageParams) templ.Component {
	doc, err := s.pages.Open(PageError)
	if err != nil {
		return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
			_, err := io.WriteString(w, p.Error)
			return err
		})
	}
	setText(doc, "error-status", fmt.Sprint(p.StatusCode))
	setText(doc, "error-message", p.Error)
	setText(doc, "error-request-id", p.RequestID)
	if retry := doc.ByID("error-retry"); retry != nil && p.RetryURL != "" {
		retry.SetAttr("href", p.RetryURL)
	}
	return Component(doc)
}
