package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/application/services"
	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/config"
	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/infrastructure/database"
	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/ingest"
	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/interfaces/middleware"
	"github.com/cthulhu-engineer/goit-cs-hw-06/internal/interfaces/rest"
)

func main() {
	// Load configuration from environment (.env is optional)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	db, err := database.GetInstance(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("✅ Database connection established")

	// Initialize service manager
	svcMgr := services.NewServiceManager(db)
	log.Println("🔧 Service manager initialized")

	// Start the UDP ingest worker. All message writes go through it.
	ingestSrv := ingest.NewServer(cfg.SocketAddr(), cfg.BufferSize, svcMgr.Messages)
	if err := ingestSrv.Start(); err != nil {
		log.Fatalf("Failed to start ingest server: %v", err)
	}

	forwarder := ingest.NewForwarder(cfg.SocketAddr(), cfg.BufferSize)

	// Create Gin router
	router := gin.Default()

	// CORS middleware - Allow credentials from any origin
	router.Use(middleware.Cors())

	// Templates and static assets
	router.LoadHTMLGlob(cfg.TemplateGlob)
	router.Static("/static", cfg.StaticDir)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
			"server": "golang",
		})
	})

	// Initialize handlers
	pageHandler := rest.NewPageHandler(cfg.StaticDir)
	messageHandler := rest.NewMessageHandler(svcMgr.Messages, forwarder)

	// Pages
	router.GET("/", pageHandler.Index)
	router.GET("/message", pageHandler.MessageForm)
	router.POST("/message", messageHandler.Submit)
	router.NoRoute(pageHandler.NotFound)

	// API routes
	api := router.Group("/api")
	{
		api.GET("/messages", messageHandler.GetMessages)
		api.GET("/messages/count", messageHandler.GetCount)
		api.GET("/messages/:id", messageHandler.GetMessage)
	}

	// Start server
	log.Println("🚀 Message board started")
	log.Printf("📍 Server:       http://%s", cfg.HTTPAddr())
	log.Printf("📨 Ingest:       socket://%s", cfg.SocketAddr())
	log.Printf("💾 Messages API: http://%s/api/messages", cfg.HTTPAddr())
	log.Printf("💚 Health check: http://%s/health", cfg.HTTPAddr())

	// Create HTTP Server
	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: router,
	}

	// Start server in a goroutine
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 5 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// Stop the ingest worker before tearing down HTTP
	ingestSrv.Stop()

	// The context is used to inform the server it has 5 seconds to finish
	// the request it is currently handling
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown: ", err)
	}

	if err := db.Close(ctx); err != nil {
		log.Printf("⚠️  Failed to close database connection: %v", err)
	}

	log.Println("Server exiting")
}
