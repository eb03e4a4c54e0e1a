package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/mapleleafu/gamenight-bot/config"
	"github.com/mapleleafu/gamenight-bot/gamelist"
	"github.com/mapleleafu/gamenight-bot/handlers"
	"github.com/mapleleafu/gamenight-bot/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading config from the environment")
	}
	cfg := config.LoadConfig()

	db, err := repository.ConnectToPostgreSQL(cfg)
	if err != nil {
		log.Fatalln("Error connecting to PostgreSQL:", err)
	}
	defer db.Close()

	// "gamenight init" creates the schema and exits.
	if len(os.Args) > 1 && os.Args[1] == "init" {
		if err := repository.InitSchema(db); err != nil {
			log.Fatalln("Error creating schema:", err)
		}
		log.Println("Schema ready")
		return
	}

	if cfg.DiscordToken == "" {
		log.Fatalln("DISCORD_TOKEN must be set")
	}
	if cfg.SpreadsheetID == "" {
		log.Fatalln("SPREADSHEET_ID must be set")
	}

	session, err := gamelist.NewSession(context.Background(), cfg.CredentialsFile)
	if err != nil {
		log.Fatalln("Error creating Sheets client:", err)
	}

	env := &handlers.Env{
		Config:  cfg,
		Store:   repository.Users{DB: db},
		Catalog: session,
	}
	registry := handlers.DefaultRegistry()

	dg, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalln("Error creating Discord session:", err)
	}
	handlers.AttachDiscord(dg, registry, env)

	if err := dg.Open(); err != nil {
		log.Fatalln("Error opening Discord connection:", err)
	}
	defer dg.Close()

	go func() {
		log.Println("Status API running on", cfg.HTTPAddr)
		if err := http.ListenAndServe(cfg.HTTPAddr, handlers.NewRouter(registry, env)); err != nil {
			log.Println("Status API stopped:", err)
		}
	}()

	log.Println("Bot is running. Press CTRL-C to exit.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
}
