package main

import (
	"log"
	"time"

	config "github.com/accredia/naac_services/configs"
	"github.com/accredia/naac_services/database"
	"github.com/accredia/naac_services/handlers"
	"github.com/accredia/naac_services/jobs"
	"github.com/accredia/naac_services/notifications"
	"github.com/accredia/naac_services/routes"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/robfig/cron/v3"
)

func main() {
	startedAt := time.Now()

	dsn := database.DSN(
		config.ConfigDefault("DB_USER", "root"),
		config.ConfigDefault("DB_PASSWORD", "root"),
		config.ConfigDefault("DB_HOST", "localhost"),
		config.ConfigDefault("DB_PORT", "3306"),
		config.ConfigDefault("DB_NAME", "naac_nba_db"),
	)

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatalf("🔥 Failed to connect to database: %v", err)
	}
	log.Println("✅ Database connected successfully")

	if err := database.Migrate(db); err != nil {
		log.Fatalf("🔥 Failed to migrate database: %v", err)
	}
	log.Println("✅ Database migration successful")

	mailer := notifications.NewBrevoService(
		config.Config("BREVO_API_KEY"),
		config.Config("EMAIL_SENDER"),
		config.Config("EMAIL_SENDER_NAME"),
	)
	adminEmail := config.Config("ADMIN_EMAIL")

	serviceHandler := handlers.NewServiceHandler(db, startedAt)
	assessmentHandler := handlers.NewAssessmentHandler(db, mailer, adminEmail)
	demoHandler := handlers.NewDemoHandler(db, mailer, adminEmail)
	contactHandler := handlers.NewContactHandler(db, mailer, adminEmail)

	digest := &jobs.DigestJob{DB: db, Mailer: mailer, AdminEmail: adminEmail}
	c := cron.New()
	c.AddFunc("0 8 * * *", digest.SendDailyDigest)
	go c.Start()
	log.Println("✅ Cron job for daily digest scheduled successfully.")

	app := fiber.New(fiber.Config{
		Prefork:           false,
		AppName:           "NAAC NBA Services API",
		CaseSensitive:     true,
		StrictRouting:     true,
		EnablePrintRoutes: true,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}

			log.Printf("[ERROR] %v | Path: %s | Method: %s", err, c.Path(), c.Method())
			return c.Status(code).JSON(fiber.Map{
				"status":  "error",
				"code":    code,
				"message": err.Error(),
			})
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins:  "*",
		AllowHeaders:  "Origin, Content-Type, Accept, Authorization",
		AllowMethods:  "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders: "Content-Length",
		MaxAge:        86400,
	}))

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	app.Get("/", serviceHandler.Banner)
	app.Get("/health", serviceHandler.Health)

	routes.AssessmentRoutes(app, assessmentHandler)
	routes.DemoRoutes(app, demoHandler)
	routes.ContactRoutes(app, contactHandler)

	port := config.ConfigDefault("PORT", "8080")
	log.Printf("✅ Server is running on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("🔥 Server failed to start: %v", err)
	}
}
