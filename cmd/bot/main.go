package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/diegoclair/discord-timezone-bot/internal/config"
	"github.com/diegoclair/discord-timezone-bot/internal/database"
	"github.com/diegoclair/discord-timezone-bot/internal/discord"
	"github.com/diegoclair/discord-timezone-bot/internal/domain/service"
	"github.com/diegoclair/discord-timezone-bot/internal/timezone"
	"github.com/diegoclair/discord-timezone-bot/migrator/sqlite"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	dm := database.NewInstance(db)

	now := time.Now()
	catalog, err := timezone.LoadCatalog(now)
	if err != nil {
		log.Fatalf("Failed to load time zone catalog: %v", err)
	}
	index := timezone.BuildClasses(catalog, now)
	log.Printf("Classified %d time zones into %d groups", len(catalog), index.Size())

	session, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMembers

	services := service.NewInstance(dm, discord.NewClient(session), index)

	if err := services.Registry.LoadAll(context.Background()); err != nil {
		log.Fatalf("Failed to load guild registries: %v", err)
	}

	session.AddHandler(func(_ *discordgo.Session, g *discordgo.GuildCreate) {
		services.Synchronizer.OnGuildAvailable(g.ID)
	})

	if err := session.Open(); err != nil {
		log.Fatalf("Failed to connect to Discord: %v", err)
	}
	defer session.Close()

	services.Synchronizer.Start()
	defer services.Synchronizer.Stop()

	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	go func() {
		log.Printf("Health endpoint on port %s", cfg.Port)
		if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
			log.Printf("Health endpoint stopped: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("Shutting down...")
}
