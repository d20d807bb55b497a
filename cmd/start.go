package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stock-audit/core/config"
	"stock-audit/core/database"
	"stock-audit/core/loader"
	"stock-audit/core/logger"
	"stock-audit/core/middleware/auth"
	"stock-audit/core/middleware/rayid"
	"stock-audit/core/storage"
	"stock-audit/feature/audit"
	"stock-audit/feature/history"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "stock-audit/docs/swagger"
)

// @title Stock Audit API
// @version 1.0
// @description Warehouse inventory reconciliation: load a manifest, scan, work the missing queue and export reports.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the audit server",
	Long:  `Starts the HTTP server exposing an audit session and the report archive.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// The archive is optional; the audit works without it.
		var db *gorm.DB
		if cfg.Database.Enabled {
			if conn, err := database.Connect(cfg.Database); err != nil {
				logg.Warn("Optional database connection failed", zap.Error(err))
			} else {
				db = conn
				logg.Info("Connected to archive database", zap.String("driver", cfg.Database.Driver))
			}
		}

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			logg.Fatal("Failed to create storage client", zap.Error(err))
		}
		bucket := storage.NewBucket(store, cfg.Storage.Bucket)
		ensureBucket(bucket, cfg, logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             cfg.Server.BodyLimitBytes,
		})

		historyFeature := history.NewFeature(db, logg)
		var archive audit.Archiver
		if historyFeature.IsEnabled() {
			archive = historyFeature.Repository()
		}

		mgr := loader.NewManager()
		mgr.Register(audit.NewFeature(bucket, audit.Options{Manifest: cfg.Manifest, Export: cfg.Export}, archive, logg))
		mgr.Register(historyFeature)

		// RayID first so every log line carries it.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		app.Get("/swagger/*", swagger.HandlerDefault)

		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey, Skip: []string{"/swagger"}}))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

// ensureBucket creates the bucket and its manifest/report folders. Failures
// are logged; uploads and listings will report them again when used.
func ensureBucket(bucket *storage.Bucket, cfg *config.Config, logg *zap.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Storage.TimeoutSeconds)*time.Second)
	defer cancel()

	created, err := bucket.Ensure(ctx, cfg.Storage.Region, cfg.Manifest.Prefix, cfg.Export.Prefix)
	if err != nil {
		logg.Warn("Storage not ready", zap.String("bucket", bucket.Name()), zap.Error(err))
		return
	}
	for _, folder := range created {
		logg.Info("Created missing folder", zap.String("folder", folder))
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
