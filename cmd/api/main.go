package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/docsmith-ai/docsmith/internal/api"
	"github.com/docsmith-ai/docsmith/internal/config"
	"github.com/docsmith-ai/docsmith/internal/deck"
	"github.com/docsmith-ai/docsmith/internal/llm"
	"github.com/docsmith-ai/docsmith/internal/llm/gemini"
	"github.com/docsmith-ai/docsmith/internal/logger"
	"github.com/docsmith-ai/docsmith/internal/server"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		os.Stderr.WriteString("logger: " + err.Error() + "\n")
		os.Exit(1)
	}
	defer log.Sync()

	var textGen llm.Client = llm.PlaceholderClient{}
	if cfg.GeminiAPIKey != "" {
		textGen, err = gemini.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal("gemini client init failed", "error", err)
		}
		log.Info("text generation enabled", "model", cfg.GeminiModel)
	} else {
		log.Warn("GEMINI_API_KEY not set, generation endpoints will fail")
	}

	handler := api.NewHandler(textGen, deck.NewAssembler(log), log)
	router := server.NewRouter(cfg, log, handler)
	srv := server.NewHTTPServer(cfg, router)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
