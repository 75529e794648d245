package main

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"travel-webapp/config"
	"travel-webapp/handlers"
	"travel-webapp/router"
	"travel-webapp/storage"
)

func main() {
	config.Load()

	store := storage.New()
	h := handlers.New(store)

	app := fiber.New()
	router.SetupRoutes(app, h)

	log.Fatal(app.Listen(":" + config.GetPort()))
}
