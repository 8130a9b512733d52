package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/FichasBot_Go/internal/casino"
	"github.com/osse101/FichasBot_Go/internal/catalog"
	"github.com/osse101/FichasBot_Go/internal/economy"
	"github.com/osse101/FichasBot_Go/internal/handler"
	"github.com/osse101/FichasBot_Go/internal/inventory"
	"github.com/osse101/FichasBot_Go/internal/logger"
	"github.com/osse101/FichasBot_Go/internal/metrics"
)

// Config holds the HTTP surface settings
type Config struct {
	Port           int
	APIKey         string
	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration
}

// Services are the collaborators the routes call
type Services struct {
	Store     handler.Pinger
	Casino    casino.Service
	Inventory inventory.Service
	Economy   economy.Service
	Catalog   catalog.Catalog
	Flavor    casino.FlavorGenerator
}

type Server struct {
	httpServer *http.Server
}

// NewServer wires the router and middleware stack
func NewServer(cfg Config, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           NewRouter(cfg, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
			WriteTimeout:      WriteTimeout,
			IdleTimeout:       IdleTimeout,
		},
	}
}

// NewRouter builds the chi router. Middleware runs outermost first.
func NewRouter(cfg Config, svc Services) http.Handler {
	r := chi.NewRouter()
	tracker := NewClientTracker(cfg.RateLimit, cfg.RateWindow)

	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(RateLimitMiddleware(cfg.TrustedProxies, tracker))
	r.Use(AuthMiddleware(cfg.APIKey, cfg.TrustedProxies, tracker))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.Store))
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		casinoHandler := handler.NewCasinoHandler(svc.Casino)
		r.Route("/casino", func(r chi.Router) {
			r.Post("/bet", casinoHandler.HandlePlaceBet)
			r.Post("/result", casinoHandler.HandleRegisterResult)
			r.Post("/exchange", casinoHandler.HandleExchange)
			r.Post("/buy-chips", casinoHandler.HandleBuyChips)
			r.Get("/stats", casinoHandler.HandleGetStats)
			r.Get("/chips", casinoHandler.HandleGetChips)
			r.Post("/slots", casinoHandler.HandleSpinSlots)
			r.Post("/roulette", casinoHandler.HandleSpinRoulette)
			r.Post("/dice", casinoHandler.HandleRollDice)
			r.Post("/blackjack", casinoHandler.HandlePlayBlackjack)
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleGetInventory(svc.Inventory))
			r.Get("/effects", handler.HandleActiveEffects(svc.Inventory))
			r.Route("/item", func(r chi.Router) {
				r.Post("/add", handler.HandleAddItem(svc.Inventory))
				r.Post("/remove", handler.HandleRemoveItem(svc.Inventory))
				r.Get("/has", handler.HandleHasItem(svc.Inventory))
				r.Post("/use", handler.HandleUseItem(svc.Inventory))
				r.Get("/status", handler.HandleItemStatus(svc.Inventory))
				r.Post("/buy", handler.HandleBuyItem(svc.Inventory))
			})
		})

		r.Get("/items", handler.HandleListItems(svc.Catalog))
		r.Get("/items/{id}", handler.HandleGetItem(svc.Catalog))
		r.Get("/wallet", handler.HandleGetWallet(svc.Economy))
		r.Post("/flavor", handler.HandleFlavor(svc.Flavor))
	})

	return r
}

// responseWriter captures the status code for request logging
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
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

// loggingMiddleware attaches a request id to the context and logs each
// request except health checks and scrapes
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if isPublic(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		start := time.Now()
		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" {
			requestID = logger.GenerateRequestID()
		}
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		w.Header().Set(HeaderRequestID, requestID)

		log := logger.FromContext(ctx)
		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)
		log.Debug(LogMsgRequestHeaders, "headers", redactHeaders(r.Header))

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for k, v := range h {
		if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
			out[k] = []string{RedactedValue}
			continue
		}
		out[k] = v
	}
	return out
}

// Start blocks serving HTTP until Stop is called
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully
func (s *Server) Stop(ctx context.Context) error {
	slog.Default().Info(LogMsgServerStopping)
	return s.httpServer.Shutdown(ctx)
}
