package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"avesnavarre/backend/internal/config"
	"avesnavarre/backend/internal/httpserver"
	"avesnavarre/backend/internal/infrastructure/ebird"
	"avesnavarre/backend/internal/infrastructure/google"
	"avesnavarre/backend/internal/infrastructure/postgres"
	"avesnavarre/backend/internal/infrastructure/token"
	authusecase "avesnavarre/backend/internal/usecase/auth"
	birdusecase "avesnavarre/backend/internal/usecase/bird"
	favoriteusecase "avesnavarre/backend/internal/usecase/favorite"
	oauthusecase "avesnavarre/backend/internal/usecase/oauth"
	userusecase "avesnavarre/backend/internal/usecase/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	rootCtx := context.Background()
	db, err := postgres.New(rootCtx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()
	if err := db.Migrate(rootCtx); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	tokenManager := token.NewJWTManager(cfg.JWTSecret, cfg.JWTIssuer)
	userRepo := postgres.NewUserRepository(db.Pool)
	birdRepo := postgres.NewBirdRepository(db.Pool)
	favoriteRepo := postgres.NewFavoriteRepository(db.Pool)

	googleClient := google.New(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.JWTSecret)
	if !googleClient.Enabled() {
		log.Printf("google login disabled: missing GOOGLE_* configuration")
	}
	ebirdClient := ebird.NewClient(cfg.EBirdAPIKey)
	if !ebirdClient.Enabled() {
		log.Printf("ebird proxy disabled: missing EBIRD_API_KEY")
	}

	server := httpserver.NewServer(cfg, httpserver.Services{
		Auth:      authusecase.NewService(userRepo, tokenManager),
		OAuth:     oauthusecase.NewService(userRepo, tokenManager),
		Birds:     birdusecase.NewService(birdRepo),
		Favorites: favoriteusecase.NewService(favoriteRepo, birdRepo),
		Users:     userusecase.NewService(userRepo),
		Tokens:    tokenManager,
		Google:    googleClient,
		EBird:     ebirdClient,
	})
	log.Printf("HTTP server listening on %s", server.Addr())

	go func() {
		if err := server.Start(); err != nil {
			if errors.Is(err, http.ErrServerClosed) {
				log.Printf("HTTP server closed: %v", err)
				return
			}
			log.Fatalf("server error: %v", err)
		}
	}()

	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	} else {
		log.Printf("graceful shutdown completed")
	}
}
