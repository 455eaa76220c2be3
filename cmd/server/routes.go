package main

import (
	"net/http"

	"github.com/astralabs/astra-advisor-go/internal/api"
	"github.com/astralabs/astra-advisor-go/internal/config"
	"github.com/astralabs/astra-advisor-go/internal/storage"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// setupRoutes configures all HTTP routes
func setupRoutes(router *gin.Engine, cfg *config.Config, handler *api.Handler, store *storage.MemoryStore, registry *prometheus.Registry) {
	// Root endpoint - basic service banner
	rootHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "astra-advisor",
			"status":  "ok",
		})
	}
	router.GET("/", rootHandler)
	router.HEAD("/", rootHandler)

	// Health check endpoints
	// Liveness Probe - checks if the application is alive (minimal check)
	// This should NEVER check dependencies - only that the process is running
	healthHandler := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
	router.GET("/healthz", healthHandler)
	router.HEAD("/healthz", healthHandler)

	// Readiness Probe - the store is in-process memory, so readiness reports
	// its current sizes rather than probing external dependencies
	readyHandler := func(c *gin.Context) {
		conversations, profiles, messages := store.Counts()
		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"generator": string(cfg.Generator),
			"store": gin.H{
				"conversations": conversations,
				"profiles":      profiles,
				"messages":      messages,
			},
		})
	}
	router.GET("/ready", readyHandler)
	router.HEAD("/ready", readyHandler)

	// Advisory chat API
	chatAPI := router.Group("/api")
	chatAPI.POST("/chat", handler.Chat)
	chatAPI.GET("/conversation/:id", handler.GetConversation)

	// Prometheus metrics endpoint, behind Basic Auth when a password is set
	metricsHandler := gin.WrapH(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	if cfg.MetricsPassword != "" {
		authorized := router.Group("/", gin.BasicAuth(gin.Accounts{
			cfg.MetricsUsername: cfg.MetricsPassword,
		}))
		authorized.GET("/metrics", metricsHandler)
	} else {
		router.GET("/metrics", metricsHandler)
	}
}
