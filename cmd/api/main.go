package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/joho/godotenv"

	"github.com/Anshulmehra001/plantpal/backend/internal/config"
	"github.com/Anshulmehra001/plantpal/backend/internal/handler"
	"github.com/Anshulmehra001/plantpal/backend/internal/service/ai"
	"github.com/Anshulmehra001/plantpal/backend/internal/service/feedback"
	"github.com/Anshulmehra001/plantpal/backend/internal/service/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	store := session.NewStore(session.Config{
		Timeout:      cfg.Chat.SessionTimeout,
		MaxSessions:  cfg.Chat.MaxSessions,
		MaxMessages:  cfg.Chat.MaxMessages,
		HistoryCap:   cfg.Chat.HistoryCap,
		ActiveWindow: cfg.Chat.ActiveWindow,
	})

	sweeper, err := session.NewSweeper(store, cfg.Chat.SweepInterval)
	if err != nil {
		log.Fatalf("failed to initialize session sweeper: %v", err)
	}
	sweeper.Start()
	defer sweeper.Stop()

	var chatModel model.ChatModel
	if cfg.AI.Enabled() {
		chatModel, err = cfg.AI.NewChatModel(ctx)
		if err != nil {
			log.Printf("warning: failed to initialize chat model: %v", err)
			log.Println("continuing with fallback responses only")
			chatModel = nil
		} else {
			log.Println("chat model initialized successfully")
		}
	} else {
		log.Println("model credentials not configured, serving fallback responses only")
	}

	aiService, err := ai.NewService(ctx, chatModel, cfg.AI)
	if err != nil {
		log.Fatalf("failed to initialize AI service: %v", err)
	}

	feedbackStore := feedback.NewStore()

	router := handler.NewRouter(store, aiService, feedbackStore, cfg.Chat)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("PlantPal backend listening on %s", serverCfg.Addr)
	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
