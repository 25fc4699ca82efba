package commands

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/spf13/cobra"

	"github.com/jhoicas/pos-terminal/internal/infrastructure/memory"
	sandboxhttp "github.com/jhoicas/pos-terminal/internal/interfaces/http"
	"github.com/jhoicas/pos-terminal/pkg/config"
	"github.com/jhoicas/pos-terminal/pkg/logger"
)

var sandboxCmd = &cobra.Command{
	Use:   "sandbox",
	Short: "Levanta un backend de ventas en memoria para desarrollo",
	Long: `Levanta un backend sandbox local con dos tiendas y datos de
demostración. Implementa las tres operaciones que el terminal consume:

  GET  /api/stores/:storeId/catalog?search=
  POST /api/sales
  GET  /api/sales/:id

El estado vive en memoria y se pierde al detener el proceso.`,
	RunE: runSandbox,
}

func init() {
	rootCmd.AddCommand(sandboxCmd)
}

func runSandbox(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.Sandbox.Addr()).
		Msg("iniciando backend sandbox")

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-sandbox",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name + "-sandbox"})
	})

	sandboxhttp.Router(app, sandboxhttp.RouterDeps{
		Store: memory.SeedDemo(),
		Log:   log,
	})

	go func() {
		if err := app.Listen(cfg.Sandbox.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor sandbox finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando sandbox...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del sandbox")
	}

	log.Info().Msg("sandbox detenido")
	return nil
}
