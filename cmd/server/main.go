package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/draftpost/api/internal/client"
	"github.com/draftpost/api/internal/config"
	"github.com/draftpost/api/internal/server"
	"github.com/draftpost/api/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize validator
	validate := validator.New()

	// Initialize completion client (optional - template fallback if not configured)
	openaiClient := client.NewOpenAIClient(&cfg.OpenAI)
	if openaiClient.IsConfigured() {
		log.Printf("Info: completion provider configured (model %s)", cfg.OpenAI.Model)
	} else {
		log.Println("Info: OPENAI_API_KEY not set, serving template drafts only")
	}

	// Initialize services
	postService := service.NewPostService(openaiClient, time.Duration(cfg.OpenAI.Timeout)*time.Second)

	app := server.NewApp(cfg, postService, validate)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	// Start server
	addr := ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
