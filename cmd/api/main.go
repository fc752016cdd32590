// @title           FoodHub API
// @version         1.0
// @description     Carta, pedido y herramientas del chef por sesión.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in              header
// @name            Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/swaggo/swag"

	"github.com/jhoicas/foodhub/docs"
	"github.com/jhoicas/foodhub/internal/application/checkout"
	"github.com/jhoicas/foodhub/internal/application/menu"
	"github.com/jhoicas/foodhub/internal/application/session"
	infrapdf "github.com/jhoicas/foodhub/internal/infrastructure/pdf"
	httpRouter "github.com/jhoicas/foodhub/internal/interfaces/http"
	"github.com/jhoicas/foodhub/pkg/config"
	"github.com/jhoicas/foodhub/pkg/logger"
)

// sweepInterval frecuencia del barrido de sesiones inactivas.
const sweepInterval = time.Minute

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	logCfg := logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level}
	if cfg.Log.File != "" {
		f, err := logger.OpenFile(cfg.Log.File)
		if err != nil {
			panic(err.Error())
		}
		defer f.Close()
		logCfg.Out = f
	}
	log := logger.New(logCfg)
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.Session.Secret == "" {
		log.Fatal().Msg("SESSION_SECRET es requerido")
	}

	sessions := session.NewManager(session.Config{
		TTL: cfg.Session.TTL(),
		ModelOptions: []menu.Option{
			menu.WithCurrencySymbol(cfg.Menu.CurrencySymbol),
			menu.WithCascadeRemovals(cfg.Menu.CascadeRemovals),
		},
	}, log.Zerolog())

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go sessions.Run(ctx, sweepInterval)

	// PDF: comprobante del último checkout
	receiptUC := checkout.NewReceiptUseCase(sessions, infrapdf.NewMarotoReceiptGenerator(), checkout.ReceiptHeader{
		RestaurantName: cfg.App.Name,
		CurrencySymbol: cfg.Menu.CurrencySymbol,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "FoodHub API",
	}))

	app.Get("/openapi.json", func(c *fiber.Ctx) error {
		doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.SendString(doc)
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "sessions": sessions.Len()})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		Sessions:          sessions,
		Receipts:          receiptUC,
		SessionSecret:     cfg.Session.Secret,
		SessionIssuer:     cfg.Session.Issuer,
		SessionTTLMinutes: cfg.Session.TTLMinutes,
		Log:               log.Zerolog(),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
