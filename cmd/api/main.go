// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/procurehq/reqflow/internal/audit"
	"github.com/procurehq/reqflow/internal/auth"
	"github.com/procurehq/reqflow/internal/config"
	"github.com/procurehq/reqflow/internal/email"
	"github.com/procurehq/reqflow/internal/handler"
	"github.com/procurehq/reqflow/internal/middleware"
	"github.com/procurehq/reqflow/internal/repository"
	"github.com/procurehq/reqflow/internal/service"
	"github.com/procurehq/reqflow/internal/storage"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// The audit trail writes through its own pgx pool so a busy ORM
	// connection pool never delays audit inserts.
	auditPool, err := pgxpool.New(context.Background(), cfg.DatabaseDSN())
	if err != nil {
		return fmt.Errorf("creating audit pool: %w", err)
	}
	defer auditPool.Close()
	auditLogger := audit.NewPgxLogger(auditPool)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	reqRepo := repository.NewRequisitionRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	accountRepo := repository.NewExpenseAccountRepository(db)
	catalogRepo := repository.NewCatalogItemRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	notifRepo := repository.NewNotificationRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)
	auditLogRepo := repository.NewWorkflowAuditLogRepository(db)

	// Initialize auth services
	passwordHasher := auth.NewPasswordHasher()
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Initialize email service
	emailService, err := email.NewEmailService(cfg, email.ProviderSendgrid)
	if err != nil {
		return fmt.Errorf("initializing email service: %w", err)
	}

	// Initialize object storage
	uploader, err := storage.NewUploader(cfg)
	if err != nil {
		return fmt.Errorf("initializing object storage: %w", err)
	}

	// Initialize cache service
	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         cfg.Cache.TTL,
		CleanupFreq: cfg.Cache.CleanupFreq,
	})
	defer cacheService.Close()

	// Initialize services
	sessionService := service.NewSessionService(orgRepo, cacheService)
	userService := service.NewUserService(userRepo, orgRepo, passwordHasher, tokenManager, emailService, cacheService, cfg)
	orgService := service.NewOrganizationService(orgRepo, userRepo, sessionService, emailService, cfg)
	reqService := service.NewRequisitionService(reqRepo, orgRepo, userRepo, notifRepo, auditLogger, emailService, cfg)
	projectService := service.NewProjectService(projectRepo)
	accountService := service.NewExpenseAccountService(accountRepo)
	catalogService := service.NewCatalogItemService(catalogRepo)
	templateService := service.NewTemplateService(templateRepo, reqService)
	notifService := service.NewNotificationService(notifRepo)
	attachmentService := service.NewAttachmentService(attachmentRepo, reqRepo, uploader)
	auditLogService := service.NewAuditLogService(auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userService)
	orgHandler := handler.NewOrganizationHandler(orgService)
	reqHandler := handler.NewRequisitionHandler(reqService)
	projectHandler := handler.NewProjectHandler(projectService)
	accountHandler := handler.NewExpenseAccountHandler(accountService)
	catalogHandler := handler.NewCatalogItemHandler(catalogService)
	templateHandler := handler.NewTemplateHandler(templateService)
	notifHandler := handler.NewNotificationHandler(notifService)
	attachmentHandler := handler.NewAttachmentHandler(attachmentService)
	auditLogHandler := handler.NewAuditLogHandler(auditLogService)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(recoveryMiddleware(logger))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", middleware.OrgHeader},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.Get("/signup/verify", authHandler.VerifyHandler)

			r.Group(func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))

				r.Post("/signup", authHandler.SignupHandler)
				r.Post("/login", authHandler.LoginHandler)
			})
		})

		// Authenticated, organization-independent routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))

			r.Get("/me", authHandler.MeHandler)
			r.With(chimw.AllowContentType("application/json")).
				Post("/orgs", orgHandler.Create)
		})

		// Tenant-scoped routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(tokenManager))
			r.Use(middleware.TenantMiddleware(sessionService))

			r.Route("/org", func(r chi.Router) {
				r.Get("/", orgHandler.Get)
				r.Get("/members", orgHandler.ListMembers)
				r.Post("/members", orgHandler.InviteMember)
				r.Put("/members/{userID}", orgHandler.UpdateMemberRole)
				r.Delete("/members/{userID}", orgHandler.RemoveMember)
				r.Get("/audit-logs", auditLogHandler.GetAuditLogs)
			})

			r.Route("/requisitions", func(r chi.Router) {
				r.Get("/", reqHandler.List)
				r.Post("/", reqHandler.Create)
				r.Get("/mine", reqHandler.ListMine)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", reqHandler.Get)
					r.Put("/", reqHandler.Update)
					r.Delete("/", reqHandler.Delete)
					r.Post("/transition", reqHandler.Transition)
					r.Get("/allowed-events", reqHandler.AllowedEvents)
					r.Get("/editable-fields", reqHandler.EditableFields)
					r.Get("/comments", reqHandler.ListComments)
					r.Post("/comments", reqHandler.AddComment)
					r.Get("/attachments", attachmentHandler.List)
					r.Post("/attachments", attachmentHandler.Upload)
					r.Delete("/attachments/{attachmentID}", attachmentHandler.Delete)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", projectHandler.List)
				r.Post("/", projectHandler.Create)
				r.Get("/{id}", projectHandler.Get)
				r.Put("/{id}", projectHandler.Update)
				r.Delete("/{id}", projectHandler.Delete)
			})

			r.Route("/expense-accounts", func(r chi.Router) {
				r.Get("/", accountHandler.List)
				r.Post("/", accountHandler.Create)
				r.Get("/{id}", accountHandler.Get)
				r.Put("/{id}", accountHandler.Update)
				r.Delete("/{id}", accountHandler.Delete)
			})

			r.Route("/catalog-items", func(r chi.Router) {
				r.Get("/", catalogHandler.List)
				r.Post("/", catalogHandler.Create)
				r.Get("/{id}", catalogHandler.Get)
				r.Put("/{id}", catalogHandler.Update)
				r.Delete("/{id}", catalogHandler.Delete)
			})

			r.Route("/templates", func(r chi.Router) {
				r.Get("/", templateHandler.List)
				r.Post("/", templateHandler.Create)
				r.Get("/{id}", templateHandler.Get)
				r.Delete("/{id}", templateHandler.Delete)
				r.Post("/{id}/instantiate", templateHandler.Instantiate)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", notifHandler.List)
				r.Put("/{id}/read", notifHandler.MarkRead)
			})
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		logger.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				logger.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					logger.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.Write([]byte("{\"error\":\"error encountered\"}"))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
