package main

import (
    "context"
    "errors"
    "fmt"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "github.com/getsentry/sentry-go"
    "go.uber.org/zap"

    "github.com/d60-Lab/gin-blog/config"
    "github.com/d60-Lab/gin-blog/internal/api"
    "github.com/d60-Lab/gin-blog/internal/api/handler"
    "github.com/d60-Lab/gin-blog/internal/mailer"
    "github.com/d60-Lab/gin-blog/internal/repository"
    "github.com/d60-Lab/gin-blog/internal/service"
    "github.com/d60-Lab/gin-blog/internal/storage"
    "github.com/d60-Lab/gin-blog/pkg/database"
    "github.com/d60-Lab/gin-blog/pkg/logger"
    "github.com/d60-Lab/gin-blog/pkg/tracing"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        fmt.Fprintln(os.Stderr, "config:", err)
        os.Exit(1)
    }

    logger.Init(cfg.Env)
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN, Environment: cfg.Env}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        } else {
            defer sentry.Flush(2 * time.Second)
        }
    }

    ctx := context.Background()
    shutdownTracing, err := tracing.Init(ctx, "gin-blog", cfg.Tracing.OTLPEndpoint)
    if err != nil {
        logger.Error("tracing init failed", zap.Error(err))
        os.Exit(1)
    }

    db, err := database.InitDB(cfg)
    if err != nil {
        logger.Error("database init failed", zap.Error(err))
        os.Exit(1)
    }

    avatars, err := storage.NewAvatarStore(cfg.Avatar.Dir)
    if err != nil {
        logger.Error("avatar store init failed", zap.Error(err))
        os.Exit(1)
    }

    userRepo := repository.NewUserRepository(db)
    postRepo := repository.NewPostRepository(db)

    authSvc := service.NewAuthService(userRepo)
    postSvc := service.NewPostService(postRepo, cfg.PageSize)
    accountSvc := service.NewAccountService(userRepo, avatars)
    tokenSvc := service.NewResetTokenService(userRepo, cfg.SecretKey, cfg.Reset.TokenTTL)
    mail := mailer.NewSMTPMailer(cfg)

    h := handler.New(authSvc, postSvc, accountSvc, tokenSvc, mail)
    router := api.NewRouter(cfg, h, userRepo)

    srv := &http.Server{
        Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Addr, cfg.HTTP.Port),
        Handler: router,
    }

    go func() {
        logger.Info("http server listening", zap.String("addr", srv.Addr))
        if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
            logger.Error("http server error", zap.Error(err))
            os.Exit(1)
        }
    }()

    quit := make(chan os.Signal, 1)
    signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
    <-quit
    logger.Info("shutting down")

    shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        logger.Error("http shutdown error", zap.Error(err))
    }
    if err := shutdownTracing(shutdownCtx); err != nil {
        logger.Error("tracing shutdown error", zap.Error(err))
    }
    logger.Info("server exited")
}
