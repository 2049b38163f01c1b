package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/sademarquez/comunicaciones-storefront/internal/cart"
	"github.com/sademarquez/comunicaciones-storefront/internal/catalog"
	h "github.com/sademarquez/comunicaciones-storefront/internal/http"
	"github.com/sademarquez/comunicaciones-storefront/internal/state"
	"github.com/sademarquez/comunicaciones-storefront/internal/store"
)

type Config struct {
	HTTPPort        string
	DataDir         string
	CartStore       string
	CartStorageKey  string
	RedisAddr       string
	MongoURI        string
	MongoDBName     string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		DataDir:         getEnv("DATA_DIR", "data"),
		CartStore:       getEnv("CART_STORE", "memory"),
		CartStorageKey:  getEnv("CART_STORAGE_KEY", store.DefaultKey),
		RedisAddr:       getEnv("REDIS_ADDR", "localhost:6379"),
		MongoURI:        getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName:     getEnv("MONGO_DB_NAME", "storefront"),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()
	ctx := context.Background()

	// Durable cart storage
	var cartStore store.CartStore
	switch cfg.CartStore {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer client.Close()
		cartStore = store.NewRedisStore(client, cfg.CartStorageKey)
		log.Printf("using redis cart store at %s", cfg.RedisAddr)
	case "mongo":
		db, err := store.ConnectMongo(ctx, cfg.MongoURI, cfg.MongoDBName)
		if err != nil {
			log.Fatalf("Failed to connect to MongoDB: %v", err)
		}
		cartStore = store.NewMongoStore(db, cfg.CartStorageKey)
		log.Printf("using mongo cart store at %s", cfg.MongoURI)
	case "memory":
		cartStore = store.NewMemoryStore()
		log.Printf("using in-memory cart store, cart will not survive restarts")
	default:
		log.Fatalf("unknown CART_STORE %q (want redis, mongo or memory)", cfg.CartStore)
	}

	// Application state and initial data load
	appState := state.New()
	loader := catalog.NewLoader(cfg.DataDir)
	products, storeCfg, err := loader.Load()
	if err != nil {
		log.Fatalf("Failed to load catalog data: %v", err)
	}
	if err := appState.SetCatalog(products); err != nil {
		log.Fatalf("Invalid catalog: %v", err)
	}
	appState.SetConfig(storeCfg)
	log.Printf("catalog loaded, %d products", len(products))

	// Cart engine, rehydrated from durable storage
	engine := cart.NewService(appState, cartStore, cart.LogNotifier{})
	restoreCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	engine.Restore(restoreCtx)
	cancel()
	log.Printf("cart restored, %d items", engine.TotalItemCount())

	cartHandler := h.NewCartHandler(engine, cfg.RequestTimeout)
	catalogHandler := h.NewCatalogHandler(appState, loader)
	router := h.NewRouter(cartHandler, catalogHandler, cfg.RequestTimeout)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("storefront starting on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server...")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server exited")
}
