package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"folio/internal/config"
	"folio/internal/content"
	"folio/internal/inbox"
	"folio/internal/queue"
	web "folio/internal/server"
	"folio/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	logger     *zap.Logger
	configPath string
	serverAddr string
	redisAddr  string
	badgerPath string
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio - portfolio content service",
}

// loadConfig reads the config and lets explicit flags win over it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("addr") {
		cfg.Server.Addr = serverAddr
	}
	if cmd.Flags().Changed("redis") {
		cfg.Redis.Addr = redisAddr
	}
	if cmd.Flags().Changed("badger") {
		cfg.Badger.Path = badgerPath
	}
	return cfg, nil
}

func dialRedis(addr string) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{Addr: addr})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	return rdb, nil
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and enrichment worker",
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			logger.Fatal("Failed to load config", zap.Error(err))
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		// Setup signal handling (Ctrl+C)
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			logger.Info("Shutting down...")
			cancel()
		}()

		// The content store lives only for this process; every start
		// begins from the seed set.
		store := content.NewStore()
		store.LoadSeed()
		logger.Info("Content store seeded", zap.Int("items", store.Len()))

		rdb, err := dialRedis(cfg.Redis.Addr)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()

		ib, err := inbox.New(rdb, cfg.Badger.Path)
		if err != nil {
			logger.Fatal("Failed to init inbox", zap.Error(err))
		}
		defer ib.Close()

		q := queue.NewEnrich(rdb)

		w := worker.NewWorker(store, q, logger, cfg.Enrich.Timeout)
		go w.Start(ctx)

		srv := web.NewServer(store, ib, q, logger)
		go func() {
			if err := srv.Start(cfg.Server.Addr); err != nil {
				logger.Error("Server stopped", zap.Error(err))
				cancel()
			}
		}()

		// Block until shutdown
		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Stop(shutdownCtx); err != nil {
			logger.Error("Graceful shutdown failed", zap.Error(err))
		}
		logger.Info("Goodbye!")
	},
}

var enrichCmd = &cobra.Command{
	Use:   "enrich [id]",
	Short: "Queue a project for enrichment",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			logger.Fatal("Failed to load config", zap.Error(err))
		}

		// Client mode: Redis only, the running server's worker does the
		// actual scraping.
		rdb, err := dialRedis(cfg.Redis.Addr)
		if err != nil {
			logger.Fatal("Failed to connect to redis", zap.Error(err))
		}
		defer rdb.Close()

		q := queue.NewEnrich(rdb)
		if err := q.Push(context.Background(), args[0]); err != nil {
			logger.Fatal("Failed to queue job", zap.Error(err))
		}

		logger.Info("Enrichment queued", zap.String("id", args[0]))
	},
}

func main() {
	var err error
	logger, err = zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")
	rootCmd.PersistentFlags().StringVar(&serverAddr, "addr", ":8080", "HTTP listen address")
	rootCmd.PersistentFlags().StringVar(&redisAddr, "redis", "localhost:6379", "Address of Redis server")
	rootCmd.PersistentFlags().StringVar(&badgerPath, "badger", "./folio-data", "Path to BadgerDB data directory")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(enrichCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
