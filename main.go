package main

import (
	"log"
	"os"

	"halaqa_go/config"
	"halaqa_go/middleware"
	"halaqa_go/routes"
	"halaqa_go/services"
	"halaqa_go/services/websocket"
	"halaqa_go/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

func init() {
	setupLogging()
	config.LoadConfig()
}

func main() {
	// Persistence and domain store
	snapshotFile := storage.NewSnapshotFile(config.AppConfig.DataFile)
	store := services.NewAttendanceStore(snapshotFile)

	// WebSocket hub notifying the page after every mutation
	wsHub := websocket.NewHub()
	go wsHub.Run()
	store.Subscribe(func(event string) {
		wsHub.Broadcast(websocket.Message{Type: "snapshot-updated", Data: fiber.Map{"event": event}})
	})

	// Live-day rollover tracker
	dayTracker := services.NewDayTracker(wsHub)
	dayTracker.Start()

	// Optional LINE report sharing
	sharer := services.NewReportSharer(
		config.AppConfig.LineChannelSecret,
		config.AppConfig.LineChannelAccessToken,
		config.AppConfig.LineRecipientID,
	)
	if sharer.Enabled() {
		log.Println("✅ LINE report sharing enabled")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(helmet.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(middleware.LoggerMiddleware())

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":     "ok",
			"service":    "Halaqa Attendance API",
			"version":    "1.0.0",
			"live_day":   dayTracker.CurrentDay(),
			"students":   len(store.Students()),
			"snapshot":   snapshotFile.Path(),
			"ws_clients": wsHub.ClientCount(),
		})
	})

	// API routes
	routes.SetupRoutes(app, store, sharer, wsHub)
	routes.SetupStaticRoutes(app)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error":  "Route not found",
			"path":   c.Path(),
			"method": c.Method(),
		})
	})

	port := "localhost:" + config.AppConfig.Port
	log.Printf("🚀 Server starting on port %s", config.AppConfig.Port)
	log.Printf("📖 Halaqa Attendance API v1.0.0")
	log.Printf("🌍 Environment: %s", config.AppConfig.AppEnv)

	if err := app.Listen(port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

// setupLogging configures the logging system
func setupLogging() {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Warning: Could not create logs directory: %v", err)
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel("info")
	if err == nil {
		logrus.SetLevel(level)
	}

	if os.Getenv("APP_ENV") == "development" {
		logrus.SetOutput(os.Stdout)
	} else {
		file, err := os.OpenFile("logs/app.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
		if err == nil {
			logrus.SetOutput(file)
		}
	}
}

// customErrorHandler handles application errors
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	logrus.WithFields(logrus.Fields{
		"error":  err.Error(),
		"path":   c.Path(),
		"method": c.Method(),
		"ip":     c.IP(),
		"status": code,
	}).Error("Request error")

	return c.Status(code).JSON(fiber.Map{
		"error":  message,
		"code":   code,
		"path":   c.Path(),
		"method": c.Method(),
	})
}
