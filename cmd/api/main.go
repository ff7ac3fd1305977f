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

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	"github.com/als344572-ai/Rahal-store/internal/cache"
	"github.com/als344572-ai/Rahal-store/internal/cart"
	"github.com/als344572-ai/Rahal-store/internal/catalog"
	"github.com/als344572-ai/Rahal-store/internal/checkout"
	"github.com/als344572-ai/Rahal-store/internal/config"
	"github.com/als344572-ai/Rahal-store/internal/database"
	"github.com/als344572-ai/Rahal-store/internal/handlers"
	"github.com/als344572-ai/Rahal-store/internal/logger"
	"github.com/als344572-ai/Rahal-store/internal/repository"
	"github.com/als344572-ai/Rahal-store/internal/routes"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.LoadConfig()

	zl, err := logger.New(logger.Options{Mode: cfg.LogMode, Filename: cfg.LogFile})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		source   catalog.Source
		details  catalog.DetailSource
		products handlers.ProductStore
		lister   handlers.BookingLister
		media    handlers.MediaStore
		recorder checkout.BookingRecorder
	)

	var client *mongo.Client
	if cfg.HasBackend() {
		client, err = database.Connect(ctx, cfg.MongoURI)
		if err != nil {
			zl.Error("mongo unavailable, serving built-in catalog only", zap.Error(err))
		}
	} else {
		zl.Info("MONGO_URI not set, serving built-in catalog only")
	}
	if client != nil {
		db := client.Database(cfg.MongoDB)
		productRepo := repository.NewProductRepository(db)
		bookingRepo := repository.NewBookingRepository(db)
		mediaStore := repository.NewMediaStore(db, cfg.MediaBucket)

		source, details, products = productRepo, productRepo, productRepo
		lister, recorder = bookingRepo, bookingRepo
		media = mediaStore
		zl.Info("connected to mongo", zap.String("db", cfg.MongoDB))
	}

	kv := cache.New(cfg.CacheTTL, cache.DefaultCleanupInterval)
	defer kv.Close()

	loader := catalog.NewLoader(source, cfg.FetchTimeout, zl.Named("catalog"))
	detailResolver := catalog.NewDetails(details, kv, cfg.CacheTTL, cfg.FetchTimeout, zl.Named("catalog"))
	gateway := checkout.NewSimulatedGateway(cfg.PaymentPublishableKey)
	checkoutSvc := checkout.NewService(gateway, recorder, cfg.TaxRate, zl.Named("checkout"))

	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.Use(handlers.RequestLogger(zl.Named("http")), handlers.Recovery(zl))

	routes.RegisterRoutes(router, routes.Dependencies{
		Products:      handlers.NewProductHandler(loader, detailResolver, cfg.MaxPrice),
		Cart:          handlers.NewCartHandler(cart.NewStore(kv, cfg.CartTTL), detailResolver, checkoutSvc, cfg.TaxRate),
		Admin:         handlers.NewAdminHandler(products, lister, media, detailResolver, zl.Named("admin")),
		Media:         handlers.NewMediaHandler(media),
		Locale:        handlers.NewLocaleHandler(),
		DefaultLocale: cfg.DefaultLocale,
		CartTTL:       cfg.CartTTL,
		HasBackend:    client != nil,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server shutdown", zap.Error(err))
	}
	if client != nil {
		if err := client.Disconnect(shutdownCtx); err != nil {
			zl.Error("mongo disconnect", zap.Error(err))
		}
	}
}
