package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/HeroVerse_Go/internal/clock"
	"github.com/osse101/HeroVerse_Go/internal/database"
	"github.com/osse101/HeroVerse_Go/internal/economy"
	"github.com/osse101/HeroVerse_Go/internal/game"
	"github.com/osse101/HeroVerse_Go/internal/handler"
	"github.com/osse101/HeroVerse_Go/internal/leaderboard"
	"github.com/osse101/HeroVerse_Go/internal/logger"
	"github.com/osse101/HeroVerse_Go/internal/metrics"
	"github.com/osse101/HeroVerse_Go/internal/sse"
	"github.com/osse101/HeroVerse_Go/internal/wheel"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	Version        string
}

// Services are the session services exposed over HTTP
type Services struct {
	DBPool      database.Pool
	Game        game.Service
	Economy     economy.Service
	Leaderboard leaderboard.Service
	Wheel       wheel.Service
	SSEHub      *sse.Hub
	Clock       clock.Clock
}

// Server is the local HTTP API of the session daemon
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Exposed for tests.
func NewRouter(opts Options, svc Services) http.Handler {
	r := chi.NewRouter()

	// outermost first
	detector := NewSuspiciousActivityDetector()
	r.Use(loggingMiddleware)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RateLimitMiddleware(opts.TrustedProxies, detector))
	if opts.APIKey != "" {
		r.Use(AuthMiddleware(opts.APIKey, opts.TrustedProxies, detector))
	} else {
		logger.Warn(LogMsgAuthDisabled)
	}
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DBPool))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	heroes := handler.NewHeroHandler(svc.Game, svc.Clock)
	economyHandler := handler.NewEconomyHandler(svc.Economy, svc.Leaderboard)
	wheelHandler := handler.NewWheelHandler(svc.Wheel)

	r.Route("/api/v1", func(r chi.Router) {
		// streaming stays outside the gzip group
		if svc.SSEHub != nil {
			r.Get("/events", sse.Handler(svc.SSEHub))
		}

		r.Group(func(r chi.Router) {
			r.Use(gzipMiddleware)

			r.Route("/heroes", func(r chi.Router) {
				r.Get("/stacks", heroes.HandleGetStacks)
				r.Get("/instances", heroes.HandleGetInstances)
				r.Post("/instances/{id}/activate", heroes.HandleActivate)
				r.Post("/instances/{id}/deactivate", heroes.HandleDeactivate)
				r.Get("/catalog", heroes.HandleGetCatalog)
				r.Post("/catalog/reload", heroes.HandleReloadCatalog)
				r.Post("/starter/claim", heroes.HandleClaimStarter)
				r.Post("/{heroID}/activate-all", heroes.HandleActivateAll)
				r.Post("/{heroID}/deactivate-all", heroes.HandleDeactivateAll)
			})

			r.Route("/earnings", func(r chi.Router) {
				r.Get("/pending", heroes.HandleGetPending)
				r.Post("/collect", heroes.HandleCollect)
			})

			r.Post("/mystery-box/purchase", heroes.HandlePurchaseMysteryBox)
			r.Post("/store/refresh", heroes.HandleRefresh)

			r.Get("/profile", economyHandler.HandleGetProfile)
			r.Route("/economy", func(r chi.Router) {
				r.Post("/send", economyHandler.HandleSendSuperCash)
				r.Post("/referral", economyHandler.HandleApplyReferral)
			})
			r.Get("/leaderboard", economyHandler.HandleGetLeaderboard)

			r.Route("/wheel", func(r chi.Router) {
				r.Get("/", wheelHandler.HandleGetWheel)
				r.Post("/spin", wheelHandler.HandleSpin)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

func gzipMiddleware(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush keeps the SSE stream working through the wrapper
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header, len(r.Header))
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	logger.Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
