package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/character-forge-discord/internal/clients/catalog"
	"github.com/KirkDiggler/character-forge-discord/internal/config"
	"github.com/KirkDiggler/character-forge-discord/internal/discord"
	"github.com/KirkDiggler/character-forge-discord/internal/domain/events"
	characterRepo "github.com/KirkDiggler/character-forge-discord/internal/repositories/characters"
	draftRepo "github.com/KirkDiggler/character-forge-discord/internal/repositories/draft"
	"github.com/KirkDiggler/character-forge-discord/internal/services/creation"
)

var serveGuildID string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Connect to Discord and run the character wizard",
	Long:  `Connects to Discord, registers the slash commands, and serves character creation until interrupted.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveGuildID, "guild", "", "register commands for a single guild instead of globally")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if serveGuildID != "" {
		cfg.Discord.GuildID = serveGuildID
	}

	log.Printf("Bot Token: %s...%s", cfg.Discord.Token[:8], cfg.Discord.Token[len(cfg.Discord.Token)-4:])
	log.Printf("Application ID: %s", cfg.Discord.AppID)
	if cfg.Discord.GuildID != "" {
		log.Printf("Guild ID: %s", cfg.Discord.GuildID)
	}

	logger := newLogger()

	// Create Discord session
	dg, err := discordgo.New("Bot " + cfg.Discord.Token)
	if err != nil {
		return fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Create the rules catalog client
	catalogClient, err := catalog.New(&catalog.Config{
		HttpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create catalog client: %w", err)
	}

	// Repositories start in-memory and upgrade to Redis when it answers
	drafts := draftRepo.NewInMemoryRepository()
	chars := characterRepo.NewInMemoryRepository()

	// Keep Redis client for cleanup
	var redisClient *redis.Client

	log.Printf("Connecting to Redis at: %s", cfg.Redis.Addr)
	redisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	// Test connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	pingErr := redisClient.Ping(pingCtx).Err()
	cancel()

	if pingErr != nil {
		log.Printf("Failed to connect to Redis: %v", pingErr)
		log.Println("Falling back to in-memory repositories")
		_ = redisClient.Close()
		redisClient = nil
	} else {
		log.Println("Successfully connected to Redis")

		drafts = draftRepo.NewRedisRepository(&draftRepo.RedisRepoConfig{
			Client: redisClient,
			TTL:    cfg.Draft.TTL,
		})
		chars = characterRepo.NewRedisRepository(&characterRepo.RedisRepoConfig{
			Client: redisClient,
		})

		log.Println("Using Redis for persistence")
	}

	bus := events.NewToolkitBus()
	logListener := events.NewLogListener(logger)
	for _, eventType := range events.AllEventTypes {
		bus.Subscribe(eventType, logListener)
	}

	svc := creation.NewService(&creation.ServiceConfig{
		DraftRepo:     drafts,
		CharacterRepo: chars,
		Catalog:       catalogClient,
		EventBus:      bus,
		Logger:        logger,
	})

	discord.Setup(&discord.Config{
		Session: dg,
		Service: svc,
		Logger:  logger,
	})

	// Open connection to Discord
	if err := dg.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}
	defer func() {
		if closeErr := dg.Close(); closeErr != nil {
			log.Printf("Failed to close Discord connection: %v", closeErr)
		}
	}()

	// Register commands
	// Use empty string for global commands, or set a guild ID for testing
	if err := discord.RegisterCommands(dg, cfg.Discord.GuildID); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	if cfg.Discord.GuildID != "" {
		log.Printf("Registered commands for guild: %s", cfg.Discord.GuildID)
	} else {
		log.Println("Registered global commands (may take up to 1 hour to propagate)")
	}

	fmt.Println("Bot is now running. Press CTRL-C to exit.")

	// Wait for interrupt signal
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	fmt.Println("Shutting down...")

	// Clean up Redis connection if we have one
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Printf("Error closing Redis connection: %v", err)
		} else {
			log.Println("Closed Redis connection")
		}
	}

	return nil
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
}
