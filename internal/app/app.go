package app

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/config"
	httpx "github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/http"
	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/http/handlers"
	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/http/middleware"
	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/infrastructure/auth"
	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/infrastructure/database"
	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/infrastructure/notifications"
	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/infrastructure/repositories"
	"github.com/LeonardoBai12/PokemonSimplifiedAPI/internal/services"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}
	defer logger.Sync()

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return err
	}

	rdb := database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := rdb.Ping(context.Background()); err != nil {
		return err
	}

	// Infrastructure services
	passwordSvc := auth.NewPasswordService()
	tokenSvc := auth.NewJWTService(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience, cfg.TokenTTL)
	smsSvc := notifications.NewTwilioService(cfg.TwilioSID, cfg.TwilioToken, cfg.TwilioFrom)

	// Repositories
	userRepo := repositories.NewUserRepository(gdb)
	cardRepo := repositories.NewCardRepository(gdb)
	codeRepo := repositories.NewVerificationRepository(rdb.Client, cfg.CodeTTL)
	sessionRepo := repositories.NewSessionRepository(rdb.Client, cfg.SessionTTL)

	// Domain services
	verificationSvc := services.NewVerificationService(codeRepo, smsSvc)
	sessionSvc := services.NewSessionService(sessionRepo, cfg.SessionTTL)
	accountSvc := services.NewAccountService(userRepo, verificationSvc, sessionSvc, passwordSvc, tokenSvc)

	// HTTP boundary
	accountH := handlers.NewAccountHandlers(accountSvc, sessionSvc, int(cfg.SessionTTL.Seconds()))
	cardH := handlers.NewCardHandlers(cardRepo)
	jwtMW := middleware.NewAuthMW(tokenSvc)

	r := httpx.BuildRouter(accountH, cardH, jwtMW, logger)

	addr := ":" + cfg.Port
	logger.Info("listening", zap.String("addr", addr))
	return http.ListenAndServe(addr, r)
}
