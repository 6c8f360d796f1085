package cmd

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"interface-reconciler/core/loader"
	"interface-reconciler/core/logger"
	"interface-reconciler/core/middleware/auth"
	"interface-reconciler/core/middleware/rayid"

	"interface-reconciler/feature/integrity"
	"interface-reconciler/feature/interfaces"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "interface-reconciler/docs/swagger"
)

// @title Interface Reconciler API
// @version 1.0
// @description API for reconciling the interface catalog and checking column mappings.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the reconciler server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load configuration, logger, storage and the optional database
		rt, err := bootstrap(false)
		if err != nil {
			return err
		}
		logg := rt.logg
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Build the reconciliation wiring once, table metadata is shared across requests
		opts, err := rt.interfacesOptions(time.Duration(rt.cfg.Reconcile.SchemaTTLSeconds) * time.Second)
		if err != nil {
			return err
		}

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			ReadTimeout:           rt.cfg.Server.ReadTimeout(),
		})

		// 4. Initialize Feature Loader
		mgr := loader.NewManager()
		mgr.Register(integrity.NewFeature(rt.store, rt.cfg.Storage.Bucket, logg, rt.db, rt.cfg.Catalog))
		mgr.Register(interfaces.NewFeature(opts))

		// Middleware Registration
		// RayID must be first to trace everything
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

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth protects every route registered after it
		app.Use(auth.New(auth.Config{ApiKey: rt.cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", rt.cfg.Server.Address()))
			if err := app.Listen(rt.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
