package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/adaeze/cv-studio/internal/assist"
	"github.com/adaeze/cv-studio/internal/config"
	"github.com/adaeze/cv-studio/internal/db"
	"github.com/adaeze/cv-studio/internal/export"
	"github.com/adaeze/cv-studio/internal/server/middleware"
	"github.com/adaeze/cv-studio/internal/server/ratelimit"
	"github.com/adaeze/cv-studio/internal/types"
)

// CVStore is the document persistence surface the handlers need. *db.DB
// satisfies it; tests substitute a stub.
type CVStore interface {
	CreateCV(ctx context.Context, userID uuid.UUID, doc types.CV) (*db.CVRecord, error)
	UpdateCV(ctx context.Context, userID, cvID uuid.UUID, doc types.CV) (*db.CVRecord, error)
	GetCV(ctx context.Context, userID, cvID uuid.UUID) (*db.CVRecord, error)
	ListCVs(ctx context.Context, userID uuid.UUID) ([]db.CVSummary, error)
	DeleteCV(ctx context.Context, userID, cvID uuid.UUID) (bool, error)
	CreateVersion(ctx context.Context, userID, cvID uuid.UUID, label string) (uuid.UUID, error)
	ListVersions(ctx context.Context, userID, cvID uuid.UUID) ([]db.Version, error)
	GetVersionSnapshot(ctx context.Context, userID, versionID uuid.UUID) (*types.CV, error)
}

// Server represents the HTTP server
type Server struct {
	httpServer  *http.Server
	db          *db.DB
	cvs         CVStore
	generator   *export.Generator
	assist      assist.Client // nil when no API key is configured
	appVersion  string
	rateLimiter *ratelimit.Limiter
	jwtService  *JWTService
	userService *UserService
	authHandler *AuthHandler
}

// Config holds server configuration
type Config struct {
	Port          int
	DatabaseURL   string
	AssistAPIKey  string
	AppVersion    string
	ExportTimeout time.Duration
}

// New creates a new server instance
func New(ctx context.Context, cfg Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	s := &Server{
		db:         database,
		cvs:        database,
		generator:  &export.Generator{Timeout: cfg.ExportTimeout},
		appVersion: cfg.AppVersion,
	}

	s.rateLimiter = ratelimit.NewLimiter(ratelimit.LoadConfig())

	passwordConfig, err := config.NewPasswordConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create password config: %w", err)
	}
	s.userService = NewUserService(database, passwordConfig)

	jwtConfig, err := config.NewJWTConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT config: %w", err)
	}
	s.jwtService = NewJWTService(jwtConfig)
	s.authHandler = NewAuthHandler(s.userService, s.jwtService)

	// Writing assistance is optional; the rest of the API works without it.
	if cfg.AssistAPIKey != "" {
		client, err := assist.NewGeminiClient(ctx, cfg.AssistAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to create assist client: %w", err)
		}
		s.assist = client
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRateLimit(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF export holds the connection
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request multiplexer. Auth, health, and the template
// catalog are public; everything touching documents requires a valid token.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /templates", s.handleListTemplates)
	mux.HandleFunc("POST /auth/register", s.authHandler.Register)
	mux.HandleFunc("POST /auth/login", s.authHandler.Login)

	authed := http.NewServeMux()
	authed.HandleFunc("PUT /auth/password", s.handleUpdatePassword)

	// CV documents
	authed.HandleFunc("GET /cvs", s.handleListCVs)
	authed.HandleFunc("POST /cvs", s.handleCreateCV)
	authed.HandleFunc("GET /cvs/{id}", s.handleGetCV)
	authed.HandleFunc("PUT /cvs/{id}", s.handleUpdateCV)
	authed.HandleFunc("DELETE /cvs/{id}", s.handleDeleteCV)

	// Version snapshots
	authed.HandleFunc("POST /cvs/{id}/versions", s.handleCreateVersion)
	authed.HandleFunc("GET /cvs/{id}/versions", s.handleListVersions)
	authed.HandleFunc("GET /versions/{id}", s.handleGetVersion)
	authed.HandleFunc("POST /cvs/{id}/versions/{version_id}/restore", s.handleRestoreVersion)

	// Rendering and portability
	authed.HandleFunc("GET /cvs/{id}/render", s.handleRenderCV)
	authed.HandleFunc("GET /cvs/{id}/preview", s.handlePreviewCV)
	authed.HandleFunc("POST /cvs/{id}/export/pdf", s.handleExportPDF)
	authed.HandleFunc("GET /cvs/{id}/export/json", s.handleExportJSON)
	authed.HandleFunc("POST /import", s.handleImport)

	// Writing assistance
	authed.HandleFunc("POST /assist/summary", s.handleAssistSummary)
	authed.HandleFunc("POST /assist/bullets", s.handleAssistBullets)

	mux.Handle("/", middleware.AuthMiddleware(s.jwtService.AsTokenValidator())(authed))
	return mux
}

// Start begins listening for requests
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	if s.assist != nil {
		_ = s.assist.Close()
	}

	s.db.Close()
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withRateLimit adds rate limiting middleware
func (s *Server) withRateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientID := s.extractClientID(r)

		allowed, info := s.rateLimiter.Allow(clientID, r.URL.Path, r.Method)
		s.setRateLimitHeaders(w, info)
		if !allowed {
			s.rateLimitResponse(w, info)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "database unreachable")
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleUpdatePassword changes the authenticated user's password.
func (s *Server) handleUpdatePassword(w http.ResponseWriter, r *http.Request) {
	userID, err := s.authedUser(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	s.authHandler.UpdatePasswordWithUserID(w, r, userID)
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}

// extractClientID extracts the client identifier from the request. This uses
// the IP from RemoteAddr; X-Forwarded-For would only be safe behind a
// trusted proxy.
func (s *Server) extractClientID(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// setRateLimitHeaders sets standard rate limit headers on the response.
func (s *Server) setRateLimitHeaders(w http.ResponseWriter, info ratelimit.Info) {
	if info.Limit > 0 {
		w.Header().Set("X-RateLimit-Limit", fmt.Sprintf("%d", info.Limit))
		w.Header().Set("X-RateLimit-Remaining", fmt.Sprintf("%d", info.Remaining))
		w.Header().Set("X-RateLimit-Reset", fmt.Sprintf("%d", info.ResetTime.Unix()))
	}
}

// rateLimitResponse writes a 429 Too Many Requests response.
func (s *Server) rateLimitResponse(w http.ResponseWriter, info ratelimit.Info) {
	response := map[string]any{
		"error":     "rate_limit_exceeded",
		"message":   "Rate limit exceeded. Please try again later.",
		"limit":     info.Limit,
		"remaining": info.Remaining,
		"reset_at":  info.ResetTime.Format(time.RFC3339),
	}

	if info.RetryAfter > 0 {
		response["retry_after"] = int(info.RetryAfter.Seconds())
		w.Header().Set("Retry-After", fmt.Sprintf("%d", int(info.RetryAfter.Seconds())))
	}

	log.Printf("[rate-limit] Rate limit exceeded: Limit=%d Remaining=%d Reset=%s",
		info.Limit, info.Remaining, info.ResetTime.Format(time.RFC3339))

	s.jsonResponse(w, http.StatusTooManyRequests, response)
}
