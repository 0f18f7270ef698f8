package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"magis-backend/internal/config"
	"magis-backend/internal/metrics"
	"magis-backend/internal/notify"
	"magis-backend/internal/server"
	"magis-backend/internal/sheets"
	"magis-backend/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sheetsClient, err := sheets.New(cfg.GoogleServiceAccountJSON, cfg.SpreadsheetID)
	if err != nil {
		log.Fatalf("sheets: %v", err)
	}

	notifier, err := notify.NewTelegram(cfg.TelegramToken, cfg.TelegramChatID)
	if err != nil {
		log.Fatalf("telegram: %v", err)
	}

	assetStore, err := store.New(cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}

	// Download endpoints always read from the local upload directory,
	// whichever backend receives new uploads.
	localStore, err := store.NewLocal(cfg.UploadDir)
	if err != nil {
		log.Fatalf("upload dir: %v", err)
	}

	metrics.Register()

	httpSrv := server.New(cfg, notifier, sheetsClient, assetStore, localStore)

	go func() {
		log.Printf("HTTP listening on %s (storage backend: %s)", cfg.HTTPAddr, cfg.StorageBackend)
		if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http server: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Println("shutting down...")

	ctxTimeout, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = httpSrv.Shutdown(ctxTimeout)

	log.Println("bye")
}
