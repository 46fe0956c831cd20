package main

import (
	"fmt"
	"log"
	"os"

	"github.com/yussuf3468/HassanFinanceSystem-sub001/config"
	httpDelivery "github.com/yussuf3468/HassanFinanceSystem-sub001/internal/delivery/http"
	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/infrastructure/cache"
	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/infrastructure/store"
	"github.com/yussuf3468/HassanFinanceSystem-sub001/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting Storefront Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)
	log.Printf("Cache Type: %s", cfg.Cache.Type)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	log.Printf("Cache TTL: %s", cfg.Cache.TTL)

	storeClient := store.NewClient(cfg.Store.APIKey, cfg.Store.BaseURL)

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		storeClient.SetDebug(true)
		log.Printf("Store client debug mode enabled")
	}

	log.Printf("Table store configured: %s", cfg.Store.BaseURL)

	// Initialize usecase layer
	storefront := usecase.NewStorefrontService(
		memoryCache,
		storeClient,
		usecase.StorefrontConfig{
			CacheTTL:     cfg.Cache.TTL,
			SuggestLimit: cfg.Search.SuggestLimit,
			RecentLimit:  cfg.Search.RecentLimit,
			Search: usecase.SearchConfig{
				FuzzyThreshold:     cfg.Search.FuzzyThreshold,
				IncludeDescription: cfg.Search.IncludeDescription,
				MaxResults:         cfg.Search.MaxResults,
				EnableDebugLogging: cfg.Search.EnableDebugLogging,
			},
		},
	)

	log.Printf("Search: threshold=%.2f, descriptions=%v, max=%d, suggest=%d",
		cfg.Search.FuzzyThreshold,
		cfg.Search.IncludeDescription,
		cfg.Search.MaxResults,
		cfg.Search.SuggestLimit)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(storefront)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
