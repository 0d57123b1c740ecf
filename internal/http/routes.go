package http

import (
	"time"

	"taskmanager/internal/auth"
	"taskmanager/internal/config"
	"taskmanager/internal/http/handlers"
	"taskmanager/internal/http/middleware"
	"taskmanager/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Endpoint protection policy, declared in one place instead of scattered
// per route. Get-one is deliberately public; every other task operation
// requires a token.
var protectedOps = map[string]bool{
	"tasks.list":   true,
	"tasks.get":    false,
	"tasks.create": true,
	"tasks.update": true,
	"tasks.delete": true,
}

// RegisterRoutes wires the API surface onto the engine.
func RegisterRoutes(r *gin.Engine, dbPool *pgxpool.Pool, cfg *config.Config, version string) {
	tokens := auth.NewTokenManager(auth.TokenConfig{
		Secret:   cfg.JWTSecret,
		Issuer:   cfg.JWTIssuer,
		Audience: cfg.JWTAudience,
		TTL:      time.Duration(cfg.JWTExpiresMinutes) * time.Minute,
	})

	store := repository.NewTaskRepository(dbPool)
	h := handlers.NewHandler(store, tokens, cfg)
	healthHandler := handlers.NewHealthHandler(dbPool, version)

	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	guard := middleware.RequireAuth(tokens)
	maybeGuard := func(op string) gin.HandlerFunc {
		if protectedOps[op] {
			return guard
		}
		return func(c *gin.Context) { c.Next() }
	}

	api := r.Group("/api")

	api.POST("/auth/login",
		middleware.RedisRateLimit(cfg.AuthRateLimit, cfg.AuthRateWindow), h.Login)

	tasks := api.Group("/tasks")
	{
		tasks.GET("", maybeGuard("tasks.list"), h.ListTasks)
		tasks.GET("/:id", maybeGuard("tasks.get"), h.GetTask)
		tasks.POST("", maybeGuard("tasks.create"), h.CreateTask)
		tasks.PUT("/:id", maybeGuard("tasks.update"), h.UpdateTask)
		tasks.DELETE("/:id", maybeGuard("tasks.delete"), h.DeleteTask)
	}
}
