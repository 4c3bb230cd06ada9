package main

import (
	"log"
	"net/http"

	"crafts-server/config"
	"crafts-server/handlers"
	"crafts-server/render"
	"crafts-server/repository"
	"crafts-server/router"
	"crafts-server/session"
	"crafts-server/storage"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	flag "github.com/spf13/pflag"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Command-line flags override the environment
	port := flag.String("port", cfg.ServerPort, "port to listen on")
	dataDir := flag.String("data-dir", cfg.DataDir, "directory for the JSON key-value store")
	fetchDelay := flag.Duration("fetch-delay", cfg.FetchDelay, "simulated fetch latency")
	flag.Parse()
	cfg.ServerPort = *port
	cfg.DataDir = *dataDir
	cfg.FetchDelay = *fetchDelay

	// Open the key-value store and seed the catalog on first run
	store, err := storage.Open(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to open storage:", err)
	}
	if err := store.Seed(); err != nil {
		log.Fatal("Failed to seed data:", err)
	}

	repo := repository.New(store, cfg.FetchDelay)

	ctrl, err := session.New(repo)
	if err != nil {
		log.Fatal("Failed to restore session state:", err)
	}

	engine := render.New()

	// One router per surface; both share the repository and session.
	// Destructive admin actions are confirmed by the client, so no
	// server-side confirmation hook is installed.
	front := router.NewStorefront(repo, ctrl, engine, nil)
	admin := router.NewAdmin(repo, ctrl, engine, nil)

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create Gin router
	r := gin.Default()

	// Add CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"}, // Configure this properly for production
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handlers.New(cfg, front, admin).Register(r)

	// Start server
	log.Printf("Starting Artisanal Crafts Server on 0.0.0.0:%s (data dir %s)", cfg.ServerPort, cfg.DataDir)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.ServerPort, c.Handler(r)))
}
