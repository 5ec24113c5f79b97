package main

import (
	"Healthscan/ai"
	"Healthscan/bot"
	"Healthscan/core"
	"Healthscan/holder"
	"Healthscan/lib/sl"
	"Healthscan/storage"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	flag.Parse()

	conf := core.MustLoad(*configPath)
	log := setupLogger(conf.Env)
	log.With(
		slog.String("config", *configPath),
		slog.String("env", conf.Env),
		slog.String("port", conf.Port),
		sl.Secret(conf.LineChannelToken),
	).Info("starting health scanner bot")

	// Initialize session storage based on config
	var store storage.SessionStorage
	if conf.Mongo.Enabled {
		mongoURI := fmt.Sprintf("mongodb://%s:%s@%s:%s",
			conf.Mongo.User, conf.Mongo.Password,
			conf.Mongo.Host, conf.Mongo.Port)
		var err error
		store, err = storage.NewMongoStorage(mongoURI, conf.Mongo.Database, log)
		if err != nil {
			log.With(
				slog.String("db", conf.Mongo.Database),
				slog.String("user", conf.Mongo.User),
				slog.String("host", conf.Mongo.Host),
			).Error("falling back to memory", sl.Err(err))
			store = storage.NewMemoryStorage()
		} else {
			log.Info("using MongoDB session storage")
		}
	} else {
		store = storage.NewMemoryStorage()
		log.Info("using in-memory session storage")
	}

	files, err := storage.NewFileStore(conf.UploadDir)
	if err != nil {
		log.Error("creating file store", sl.Err(err))
		return
	}

	sessions := holder.NewManager(store, files, log)
	claude := ai.NewClaude(conf, log)

	lineBot, err := bot.NewLineBot(conf, log, sessions, claude)
	if err != nil {
		log.Error("creating line bot", sl.Err(err))
		return
	}

	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Start bot in goroutine
	go func() {
		if err := lineBot.Start(); err != nil {
			log.Error("bot stopped with error", sl.Err(err))
		}
	}()

	log.Info("bot started")

	// Wait for shutdown signal
	sig := <-sigChan
	log.Info("received signal, shutting down", slog.String("signal", sig.String()))

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := lineBot.Stop(ctx); err != nil {
		log.Error("stopping server", sl.Err(err))
	}

	// Close storage connection
	if err := sessions.Close(); err != nil {
		log.Error("error closing session storage", sl.Err(err))
	}

	log.Info("shutdown complete")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal, envDev:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	case envProd:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	default:
		log = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	}

	return log
}
