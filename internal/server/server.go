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

	"github.com/reverseludo/admin-api/internal/admin"
	"github.com/reverseludo/admin-api/internal/auth"
	"github.com/reverseludo/admin-api/internal/chat"
	"github.com/reverseludo/admin-api/internal/dailybonus"
	"github.com/reverseludo/admin-api/internal/dare"
	"github.com/reverseludo/admin-api/internal/database"
	"github.com/reverseludo/admin-api/internal/gift"
	"github.com/reverseludo/admin-api/internal/handler"
	"github.com/reverseludo/admin-api/internal/inventory"
	"github.com/reverseludo/admin-api/internal/logger"
	"github.com/reverseludo/admin-api/internal/metrics"
	"github.com/reverseludo/admin-api/internal/notification"
	"github.com/reverseludo/admin-api/internal/promotion"
	"github.com/reverseludo/admin-api/internal/room"
	"github.com/reverseludo/admin-api/internal/sse"
	"github.com/reverseludo/admin-api/internal/stats"
	"github.com/reverseludo/admin-api/internal/tournament"
	"github.com/reverseludo/admin-api/internal/user"
)

// Services groups every domain service the router depends on.
type Services struct {
	Auth         auth.Service
	User         user.Service
	Inventory    inventory.Service
	DailyBonus   dailybonus.Service
	Gift         gift.Service
	Notification notification.Service
	Tournament   tournament.Service
	Room         room.Service
	Dare         dare.Service
	Chat         chat.Service
	Promotion    promotion.Service
	Stats        stats.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
	hub        *sse.Hub
}

// NewServer creates a new Server instance. mediaRoot is served read-only
// under /media/ so stored item and banner images resolve as public URLs.
func NewServer(port int, trustedProxies []string, dbPool database.Pool, hub *sse.Hub, mediaRoot string, svcs Services) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(svcs.Auth, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(64 << 20)) // multipart image uploads
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// Stored images (public, referenced by item/banner URLs)
	r.Handle("/media/*", http.StripPrefix("/media/",
		http.FileServer(http.Dir(mediaRoot))))

	// Embedded dashboard frontend. The SPA itself is public; every API call
	// it makes still goes through auth.
	r.Handle("/admin", http.RedirectHandler("/admin/", http.StatusMovedPermanently))
	r.Handle("/admin/*", http.StripPrefix("/admin", admin.Handler()))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", handler.HandleLogin(svcs.Auth))

		r.Route("/users", func(r chi.Router) {
			r.Get("/", handler.HandleGetUsers(svcs.User))
			r.Patch("/", handler.HandleUpdateBalances(svcs.User))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Get("/", handler.HandleListItems(svcs.Inventory))
			r.Post("/", handler.HandleCreateItem(svcs.Inventory))
			r.Delete("/", handler.HandleDeleteItem(svcs.Inventory))
		})

		r.Route("/daily-bonus", func(r chi.Router) {
			r.Get("/", handler.HandleListRewards(svcs.DailyBonus))
			r.Post("/", handler.HandleCreateReward(svcs.DailyBonus))
			r.Put("/", handler.HandleUpdateReward(svcs.DailyBonus))
			r.Delete("/", handler.HandleDeleteReward(svcs.DailyBonus))
		})

		r.Route("/gifts", func(r chi.Router) {
			r.Post("/", handler.HandleSendGift(svcs.Gift))
			r.Get("/history", handler.HandleGiftHistory(svcs.Gift))
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", handler.HandleListNotifications(svcs.Notification))
			r.Post("/", handler.HandleBroadcastNotification(svcs.Notification))
		})

		r.Route("/tournaments", func(r chi.Router) {
			r.Get("/", handler.HandleListTournaments(svcs.Tournament))
			r.Get("/get", handler.HandleGetTournament(svcs.Tournament))
			r.Post("/", handler.HandleCreateTournament(svcs.Tournament))
			r.Patch("/", handler.HandleUpdateTournament(svcs.Tournament))
			r.Delete("/", handler.HandleDeleteTournament(svcs.Tournament))
		})

		r.Route("/rooms", func(r chi.Router) {
			r.Get("/", handler.HandleListRooms(svcs.Room))
			r.Delete("/", handler.HandleDeleteRoom(svcs.Room))
		})

		r.Route("/dares", func(r chi.Router) {
			r.Get("/", handler.HandleListDares(svcs.Dare))
			r.Post("/", handler.HandleCreateDare(svcs.Dare))
			r.Put("/", handler.HandleUpdateDare(svcs.Dare))
			r.Delete("/", handler.HandleDeleteDare(svcs.Dare))
		})

		r.Route("/chats", func(r chi.Router) {
			r.Get("/", handler.HandleListChats(svcs.Chat))
			r.Get("/events", sse.Handler(hub))
			r.Route("/{chatID}", func(r chi.Router) {
				r.Get("/messages", handler.HandleGetChatMessages(svcs.Chat))
				r.Post("/messages", handler.HandleSendChatMessage(svcs.Chat))
				r.Patch("/status", handler.HandleSetChatStatus(svcs.Chat))
			})
		})

		r.Route("/promotions", func(r chi.Router) {
			r.Get("/", handler.HandleListPromotions(svcs.Promotion))
			r.Post("/", handler.HandleCreatePromotion(svcs.Promotion))
			r.Put("/", handler.HandleUpdatePromotion(svcs.Promotion))
			r.Delete("/", handler.HandleDeletePromotion(svcs.Promotion))
		})

		r.Get("/stats", handler.HandleGetStats(svcs.Stats))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
		hub:    hub,
	}
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
		statusCode:     http.StatusOK, // default status
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

// Flush lets the SSE handler stream through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints, metrics, and media files
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") ||
			strings.HasPrefix(r.URL.Path, "/media/") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	s.hub.Stop()
	return s.httpServer.Shutdown(ctx)
}
