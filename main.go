package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"

	"snapgram/audit"
	"snapgram/auth"
	"snapgram/initializers"
	"snapgram/routes"
	"snapgram/services"
	"snapgram/store"
)

func main() {
	config, err := initializers.LoadConfig(".")
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}

	db, err := initializers.ConnectDB(&config)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	st := store.NewGorm(db)

	hasher := auth.NewBcryptHasher()
	tokens := auth.NewTokenMaker(config.JwtSecret, config.JwtExpiresIn)

	sinks := audit.Fanout{audit.NewLogSink(config.AuditLogPath)}
	if config.AmqpURL != "" {
		amqpSink, err := audit.NewAMQPSink(config.AmqpURL, config.AmqpExchange)
		if err != nil {
			log.Printf("audit: amqp sink unavailable: %v", err)
		} else {
			sinks = append(sinks, amqpSink)
		}
	}

	if config.SeedDemoData {
		if err := initializers.Seed(st, hasher); err != nil {
			log.Fatalf("could not seed database: %v", err)
		}
	}

	content := services.New(st, hasher, tokens, sinks)

	app := fiber.New()
	app.Use(fiberlogger.New())

	routes.Register(app, content, &auth.Resolver{Tokens: tokens})
	routes.NotFoundRoute(app)

	sinks.Info("Server ready at :" + config.ServerPort)
	log.Fatal(app.Listen(":" + config.ServerPort))
}
