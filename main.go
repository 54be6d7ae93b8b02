package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/vladimirreshete-del/gde-dengi/internal/bot"
	"github.com/vladimirreshete-del/gde-dengi/internal/config"
	"github.com/vladimirreshete-del/gde-dengi/internal/database"
	"github.com/vladimirreshete-del/gde-dengi/internal/router"
)

func main() {
	// optional .env for local runs; real deployments use the environment
	_ = godotenv.Load()

	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	// amounts go out to the mini app as plain JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	// init database
	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}

	// run migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	// start the Telegram bot when a token is configured; the API keeps
	// running without it
	var tgBot *bot.Bot
	if cfg.Telegram.BotToken != "" {
		tgBot, err = bot.New(cfg.Telegram.BotToken, cfg.Telegram.WebAppURL)
		if err != nil {
			log.Printf("telegram bot disabled: %v", err)
			tgBot = nil
		} else {
			log.Printf("bot authorized as @%s", tgBot.Username())
			go tgBot.Run(context.Background())
		}
	}

	// setup router
	r := router.SetupRouter(cfg, db, tgBot)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	log.Printf("server listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("run server: %v", err)
	}
}
