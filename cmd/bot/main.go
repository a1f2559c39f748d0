package main

import (
	"log"

	"github.com/jkivela/construct/internal/bot"
	"github.com/jkivela/construct/internal/config"
	"github.com/jkivela/construct/internal/logging"

	"github.com/joho/godotenv"
)

func main() {
	// Load from .env (if present) and then from the environment.
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not found or failed to load: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	logger, closeLog, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to set up logging: %v", err)
	}
	defer closeLog()

	discordBot, err := bot.New(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to create bot: %v", err)
	}

	if err := discordBot.Run(); err != nil {
		log.Fatalf("Error running bot: %v", err)
	}
}
