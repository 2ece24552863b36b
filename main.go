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
	"github.com/joho/godotenv"

	"herbgarden/database"
	"herbgarden/handlers"
	"herbgarden/realtime"
	"herbgarden/routes"
	"herbgarden/websocket"
)

func main() {
	log.Println("🚀 Starting Virtual Herbal Garden Backend...")

	// .env is optional; real deployments set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Fatal("❌ JWT_SECRET must be set")
	}

	// ===== CONNECT TO MONGODB WITH RETRY =====
	log.Println("🔌 Connecting to MongoDB...")

	var dbErr error
	for i := 1; i <= 3; i++ {
		if err := database.ConnectMongo(); err != nil {
			dbErr = err
			log.Printf("❌ MongoDB connection attempt %d failed: %v", i, err)
			time.Sleep(2 * time.Second)
			continue
		}
		dbErr = nil
		break
	}

	if dbErr != nil {
		log.Fatal("❌ Failed to connect to MongoDB:", dbErr)
	}

	log.Println("✅ MongoDB connected successfully")

	// ===== GIN MODE =====
	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
		log.Println("⚙️ Running in RELEASE mode")
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("⚙️ Running in DEBUG mode")
	}

	// ===== ROUTER =====
	router := routes.SetupRouter()

	// Health check
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "Virtual Herbal Garden API Running 🌿",
			"service": "healthy",
		})
	})

	router.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// ===== WEBSOCKET + CHANGE STREAMS =====
	log.Println("🔌 Initializing WebSocket manager...")
	wsManager := websocket.NewManager()
	go wsManager.Start()

	handlers.SetWebSocketManager(wsManager)

	router.GET("/ws", func(c *gin.Context) {
		websocket.WebSocketHandler(wsManager)(c.Writer, c.Request)
	})

	watchCtx, stopWatchers := context.WithCancel(context.Background())
	watcher := realtime.NewWatcher(wsManager)
	go watcher.Watch(watchCtx, database.Posts, "post")
	go watcher.Watch(watchCtx, database.Spaces, "space")
	go watcher.Watch(watchCtx, database.Herbs, "herb")

	log.Println("✅ WebSocket endpoint: /ws")

	// ===== SERVER CONFIG =====
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		log.Printf("🌐 Server running on port %s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("❌ Server error:", err)
		}
	}()

	log.Println("✅ Server is ready and accepting connections")

	// ===== GRACEFUL SHUTDOWN =====
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	stopWatchers()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}

	if err := database.DisconnectMongo(); err != nil {
		log.Println("❌ MongoDB disconnect error:", err)
	}

	log.Println("👋 Server stopped gracefully")
}
